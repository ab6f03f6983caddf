package services

import (
	"encoding/json"
	"sort"
	"time"

	"rewards-dashboard/internal/models"
)

// DefaultWindowMonths is the size of the rolling window used when no explicit range is applied:
// the current calendar month plus the two before it.
const DefaultWindowMonths = 3

type dateRangeProcessor struct {
	clock        Clock
	windowMonths int
}

type datedRecord struct {
	record *models.TransactionRecord
	date   time.Time
}

// NewDateRangeProcessor creates a processor reading "now" from clock
func NewDateRangeProcessor(clock Clock) DateRangeProcessorInterface {
	return NewDateRangeProcessorWithWindow(clock, DefaultWindowMonths)
}

// NewDateRangeProcessorWithWindow creates a processor with a custom default window size in months
func NewDateRangeProcessorWithWindow(clock Clock, windowMonths int) DateRangeProcessorInterface {
	if windowMonths <= 0 {
		windowMonths = DefaultWindowMonths
	}
	return &dateRangeProcessor{
		clock:        clock,
		windowMonths: windowMonths,
	}
}

// ProcessRaw decodes a feed payload and processes it. Anything other than a JSON array yields an empty result.
func (p *dateRangeProcessor) ProcessRaw(data json.RawMessage, params models.FilterParams) []models.TransactionRecord {
	records, ok := models.DecodeTransactionRecords(data)
	if !ok {
		return []models.TransactionRecord{}
	}
	return p.Process(records, params)
}

// Process filters records by date and sorts the survivors newest first.
//
// Records with an empty or unparseable date are dropped. Without ApplyFilter only records dated in
// the current month or the windowMonths-1 months before it are kept. With ApplyFilter both bounds
// must parse and from must not be after to, otherwise nothing is returned at all; records between
// the bounds, inclusive, are kept. The input slice is never modified.
func (p *dateRangeProcessor) Process(records []models.TransactionRecord, params models.FilterParams) []models.TransactionRecord {
	result := []models.TransactionRecord{}
	if len(records) == 0 {
		return result
	}

	now := p.clock.Now()
	loc := now.Location()

	var from, to time.Time
	if params.ApplyFilter {
		var ok bool
		if from, to, ok = parseRange(params, loc); !ok {
			return result
		}
	}

	kept := make([]datedRecord, 0, len(records))
	for i := range records {
		record := &records[i]
		if record.Date == "" {
			continue
		}

		date, ok := models.ParseRecordDate(record.Date, loc)
		if !ok {
			continue
		}

		if params.ApplyFilter {
			if date.Before(from) || date.After(to) {
				continue
			}
		} else {
			diff := monthsBetween(date, now)
			if diff < 0 || diff >= p.windowMonths {
				continue
			}
		}

		kept = append(kept, datedRecord{record: record, date: date})
	}

	if len(kept) == 0 {
		return result
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].date.After(kept[j].date)
	})

	result = make([]models.TransactionRecord, 0, len(kept))
	for _, k := range kept {
		result = append(result, *k.record)
	}

	return result
}

func parseRange(params models.FilterParams, loc *time.Location) (time.Time, time.Time, bool) {
	if params.FromDate == nil || params.ToDate == nil {
		return time.Time{}, time.Time{}, false
	}

	from, ok := models.ParseRecordDate(*params.FromDate, loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := models.ParseRecordDate(*params.ToDate, loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

// monthsBetween counts whole calendar months from date to now, ignoring days.
// It is negative when date falls in a later month than now.
func monthsBetween(date, now time.Time) int {
	return (now.Year()-date.Year())*12 + int(now.Month()-date.Month())
}

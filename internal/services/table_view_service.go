package services

import (
	"errors"
	"strings"

	"rewards-dashboard/internal/models"

	"github.com/google/uuid"
)

var (
	ErrInvalidPage     = errors.New("page must not be negative")
	ErrInvalidPageSize = errors.New("page size must be one of 10, 25, 75")
)

type tableViewService struct {
	newID func() uuid.UUID
}

// NewTableViewService creates a table view service using random row identities
func NewTableViewService() TableViewServiceInterface {
	return &tableViewService{newID: uuid.New}
}

func (s *tableViewService) SearchByCustomerName(records []models.TransactionRecord, search string) []models.TransactionRecord {
	if search == "" {
		return records
	}

	needle := strings.ToLower(search)
	matched := make([]models.TransactionRecord, 0, len(records))
	for i := range records {
		name := records[i].DisplayName()
		if name != "" && strings.Contains(strings.ToLower(name), needle) {
			matched = append(matched, records[i])
		}
	}
	return matched
}

func (s *tableViewService) BuildPage(records []models.TransactionRecord, query models.TableQuery) (*models.TablePage, error) {
	if query.Page < 0 {
		return nil, ErrInvalidPage
	}
	if query.PageSize == 0 {
		query.PageSize = models.DefaultTablePageSize
	}
	if !models.IsValidTablePageSize(query.PageSize) {
		return nil, ErrInvalidPageSize
	}

	matched := s.SearchByCustomerName(records, query.Search)

	page := &models.TablePage{
		Rows:     []models.TableRow{},
		Total:    len(matched),
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	start := query.Page * query.PageSize
	if start >= len(matched) {
		return page, nil
	}
	end := start + query.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	page.Rows = make([]models.TableRow, 0, end-start)
	for _, record := range matched[start:end] {
		page.Rows = append(page.Rows, models.TableRow{
			InternalID: s.newID(),
			Record:     record,
		})
	}

	return page, nil
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRecordDate(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{"date only", "2025-11-10", time.Date(2025, 11, 10, 0, 0, 0, 0, loc), true},
		{"date with surrounding spaces", " 2025-11-10 ", time.Date(2025, 11, 10, 0, 0, 0, 0, loc), true},
		{"local date time", "2025-11-10T08:30:00", time.Date(2025, 11, 10, 8, 30, 0, 0, loc), true},
		{"space separated", "2025-11-10 08:30:00", time.Date(2025, 11, 10, 8, 30, 0, 0, loc), true},
		{"utc timestamp converted", "2025-11-10T03:00:00Z", time.Date(2025, 11, 9, 22, 0, 0, 0, loc), true},
		{"minutes with zulu", "2025-11-10T10:00Z", time.Date(2025, 11, 10, 5, 0, 0, 0, loc), true},
		{"minutes with offset", "2025-11-10T10:00+01:00", time.Date(2025, 11, 10, 4, 0, 0, 0, loc), true},
		{"basic offset", "2025-11-10T10:00:00+0530", time.Date(2025, 11, 9, 23, 30, 0, 0, loc), true},
		{"fractional basic offset", "2025-11-10T10:00:00.250-0300", time.Date(2025, 11, 10, 8, 0, 0, 250000000, loc), true},
		{"minutes basic offset", "2025-11-10T10:00-0500", time.Date(2025, 11, 10, 10, 0, 0, 0, loc), true},
		{"local fractional", "2025-11-10T08:30:00.5", time.Date(2025, 11, 10, 8, 30, 0, 500000000, loc), true},
		{"year month", "2025-11", time.Date(2025, 11, 1, 0, 0, 0, 0, loc), true},
		{"garbage", "invalid", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"impossible day", "2025-02-30", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRecordDate(tt.value, loc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
			}
		})
	}
}

func TestParseRecordDate_NilLocationUsesUTC(t *testing.T) {
	got, ok := ParseRecordDate("2025-10-15", nil)
	assert.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
}

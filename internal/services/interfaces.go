package services

import (
	"context"
	"encoding/json"
	"time"

	"rewards-dashboard/internal/models"
)

// DateRangeProcessorInterface filters and orders transaction records by date
type DateRangeProcessorInterface interface {
	Process(records []models.TransactionRecord, params models.FilterParams) []models.TransactionRecord
	ProcessRaw(data json.RawMessage, params models.FilterParams) []models.TransactionRecord
}

// FilterStoreInterface is the shared handle to the dashboard's date-range filter state
type FilterStoreInterface interface {
	State() models.FilterState
	Dispatch(ctx context.Context, action models.FilterAction) models.FilterState
	Subscribe(listener FilterListener) (unsubscribe func())
}

// TransactionFeedInterface delivers the remote transaction feed together with its loading flag
type TransactionFeedInterface interface {
	// Current returns the loading flag and the last payload received (or restored from a snapshot)
	Current() models.FeedResult

	// Refresh fetches the feed once. Loading is true while it runs.
	Refresh(ctx context.Context) error

	// StartRefreshing fetches immediately, then every interval until ctx is done
	StartRefreshing(ctx context.Context, interval time.Duration)
}

// TableViewServiceInterface prepares processed records for the transaction table
type TableViewServiceInterface interface {
	// SearchByCustomerName keeps records whose customer name contains search, ignoring case
	SearchByCustomerName(records []models.TransactionRecord, search string) []models.TransactionRecord

	// BuildPage searches, assigns row identities and slices out the requested page
	BuildPage(records []models.TransactionRecord, query models.TableQuery) (*models.TablePage, error)
}

// DemoDataGeneratorInterface produces fake feed records for local development
type DemoDataGeneratorInterface interface {
	Generate(count, days int) []models.TransactionRecord
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

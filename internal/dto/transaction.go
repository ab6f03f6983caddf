package dto

import (
	"encoding/json"
	"time"

	"rewards-dashboard/internal/models"

	"github.com/google/uuid"
)

// Filter modes reported back to clients
const (
	FilterModeWindow = "window"
	FilterModeRange  = "range"
)

// ListTransactionsQuery contains the query parameters of the transaction table
type ListTransactionsQuery struct {
	From     *string `query:"from"`
	To       *string `query:"to"`
	Apply    *bool   `query:"apply"`
	Search   string  `query:"search" validate:"max=200"`
	Page     int     `query:"page" validate:"min=0"`
	PageSize int     `query:"page_size" validate:"omitempty,page_size"`
}

// HasFilterParams reports whether the request carries its own date filter
func (q *ListTransactionsQuery) HasFilterParams() bool {
	return q.From != nil || q.To != nil || q.Apply != nil
}

// FilterParams converts the query's date filter into processor parameters
func (q *ListTransactionsQuery) FilterParams() models.FilterParams {
	params := models.FilterParams{FromDate: q.From, ToDate: q.To}
	if q.Apply != nil {
		params.ApplyFilter = *q.Apply
	}
	return params
}

// TableQuery converts the search and paging parameters
func (q *ListTransactionsQuery) TableQuery() models.TableQuery {
	return models.TableQuery{Search: q.Search, Page: q.Page, PageSize: q.PageSize}
}

// TransactionRow is a feed record with its row identity. It serializes as the
// record's own fields plus internalId.
type TransactionRow struct {
	InternalID uuid.UUID
	Record     models.TransactionRecord
}

func (r TransactionRow) MarshalJSON() ([]byte, error) {
	fields := r.Record.Fields()
	fields["internalId"] = r.InternalID
	return json.Marshal(fields)
}

// AppliedFilter describes the date filter used to build a response
type AppliedFilter struct {
	Mode     string  `json:"mode"`
	FromDate *string `json:"fromDate,omitempty"`
	ToDate   *string `json:"toDate,omitempty"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	Total    int  `json:"total"`
	HasMore  bool `json:"hasMore"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionRow `json:"transactions"`
	Loading      bool             `json:"loading"`
	FromSnapshot bool             `json:"fromSnapshot,omitempty"`
	FetchedAt    *time.Time       `json:"fetchedAt,omitempty"`
	Filter       AppliedFilter    `json:"filter"`
	Pagination   PaginationInfo   `json:"pagination"`
}

// NewListTransactionsResponse builds the response body for one table page
func NewListTransactionsResponse(page *models.TablePage, feed models.FeedResult, params models.FilterParams) ListTransactionsResponse {
	rows := make([]TransactionRow, 0, len(page.Rows))
	for _, row := range page.Rows {
		rows = append(rows, TransactionRow{InternalID: row.InternalID, Record: row.Record})
	}

	filter := AppliedFilter{Mode: FilterModeWindow}
	if params.ApplyFilter {
		filter = AppliedFilter{Mode: FilterModeRange, FromDate: params.FromDate, ToDate: params.ToDate}
	}

	response := ListTransactionsResponse{
		Transactions: rows,
		Loading:      feed.Loading,
		FromSnapshot: feed.FromSnapshot,
		Filter:       filter,
		Pagination: PaginationInfo{
			Page:     page.Page,
			PageSize: page.PageSize,
			Total:    page.Total,
			HasMore:  page.HasMore(),
		},
	}
	if !feed.FetchedAt.IsZero() {
		fetchedAt := feed.FetchedAt
		response.FetchedAt = &fetchedAt
	}

	return response
}

// RefreshResponse reports the feed state after a manual refresh
type RefreshResponse struct {
	Loading      bool       `json:"loading"`
	FromSnapshot bool       `json:"fromSnapshot"`
	FetchedAt    *time.Time `json:"fetchedAt,omitempty"`
	Records      int        `json:"records"`
}

package models

import "github.com/google/uuid"

const DefaultTablePageSize = 10

// TablePageSizes are the page sizes the transaction table offers
var TablePageSizes = []int{10, 25, 75}

// IsValidTablePageSize checks if size is one of TablePageSizes
func IsValidTablePageSize(size int) bool {
	for _, s := range TablePageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// TableQuery selects rows of the transaction table
type TableQuery struct {
	Search   string
	Page     int
	PageSize int
}

// TableRow is a record with a render identity unique within one page build
type TableRow struct {
	InternalID uuid.UUID
	Record     TransactionRecord
}

// TablePage is one page of the searched rows
type TablePage struct {
	Rows     []TableRow
	Total    int
	Page     int
	PageSize int
}

// HasMore reports whether rows exist after this page
func (p *TablePage) HasMore() bool {
	return (p.Page+1)*p.PageSize < p.Total
}

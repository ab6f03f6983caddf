package models

// FilterParams are the inputs of the date-range processor besides the records.
// A nil bound means the caller did not supply it.
type FilterParams struct {
	FromDate    *string
	ToDate      *string
	ApplyFilter bool
}

// DefaultWindowParams selects the rolling current-plus-two-months window
func DefaultWindowParams() FilterParams {
	return FilterParams{}
}

// ExplicitRangeParams selects records between from and to, inclusive
func ExplicitRangeParams(from, to string) FilterParams {
	return FilterParams{FromDate: &from, ToDate: &to, ApplyFilter: true}
}

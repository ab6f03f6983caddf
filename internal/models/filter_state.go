package models

// FilterActionType names a transition of the date-range filter
type FilterActionType string

const (
	FilterActionSetFrom FilterActionType = "SET_FROM"
	FilterActionSetTo   FilterActionType = "SET_TO"
	FilterActionApply   FilterActionType = "APPLY"
	FilterActionReset   FilterActionType = "RESET"
)

// FilterState is the user's current date-range selection
type FilterState struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Active   bool   `json:"active"`
}

// DateRangePayload is the payload of an APPLY action
type DateRangePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FilterAction is dispatched against a FilterState.
// Payload is a string for SET_FROM and SET_TO, a DateRangePayload for APPLY and ignored otherwise.
type FilterAction struct {
	Type    FilterActionType
	Payload interface{}
}

// InitialFilterState returns the defaults: no dates, filter inactive
func InitialFilterState() FilterState {
	return FilterState{}
}

// IsKnownFilterActionType reports whether the reducer handles actionType
func IsKnownFilterActionType(actionType FilterActionType) bool {
	switch actionType {
	case FilterActionSetFrom, FilterActionSetTo, FilterActionApply, FilterActionReset:
		return true
	default:
		return false
	}
}

// ReduceFilterState returns the state following action. It never fails: unknown action
// types and payloads of the wrong type leave the state unchanged. Dates are not validated.
func ReduceFilterState(state FilterState, action FilterAction) FilterState {
	switch action.Type {
	case FilterActionSetFrom:
		if from, ok := action.Payload.(string); ok {
			state.FromDate = from
		}
		return state

	case FilterActionSetTo:
		if to, ok := action.Payload.(string); ok {
			state.ToDate = to
		}
		return state

	case FilterActionApply:
		payload, ok := applyPayload(action.Payload)
		if !ok {
			return state
		}
		state.FromDate = payload.From
		state.ToDate = payload.To
		state.Active = true
		return state

	case FilterActionReset:
		return InitialFilterState()

	default:
		return state
	}
}

// Params converts the state into processor parameters. Empty dates become absent bounds.
func (s FilterState) Params() FilterParams {
	params := FilterParams{ApplyFilter: s.Active}
	if s.FromDate != "" {
		from := s.FromDate
		params.FromDate = &from
	}
	if s.ToDate != "" {
		to := s.ToDate
		params.ToDate = &to
	}
	return params
}

func applyPayload(payload interface{}) (DateRangePayload, bool) {
	switch p := payload.(type) {
	case DateRangePayload:
		return p, true
	case *DateRangePayload:
		if p == nil {
			return DateRangePayload{}, false
		}
		return *p, true
	default:
		return DateRangePayload{}, false
	}
}

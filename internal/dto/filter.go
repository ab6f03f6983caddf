package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"rewards-dashboard/internal/models"
)

var (
	ErrInvalidActionPayload  = errors.New("invalid action payload")
	ErrActionPayloadRequired = fmt.Errorf("%w: payload is required", ErrInvalidActionPayload)
)

// FilterActionRequest is a filter state transition sent by the dashboard
type FilterActionRequest struct {
	Type    string          `json:"type" validate:"required,max=32"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DateRangePayloadRequest is the payload of an APPLY action
type DateRangePayloadRequest struct {
	From string `json:"from" validate:"omitempty,iso_date"`
	To   string `json:"to" validate:"omitempty,iso_date"`
}

// DatePayloadRequest wraps the string payload of SET_FROM and SET_TO so it can be validated
type DatePayloadRequest struct {
	Date string `json:"payload" validate:"omitempty,iso_date"`
}

// ToAction decodes the payload according to the action type. RESET and unknown
// types ignore the payload.
func (r *FilterActionRequest) ToAction() (models.FilterAction, interface{}, error) {
	action := models.FilterAction{Type: models.FilterActionType(r.Type)}

	switch action.Type {
	case models.FilterActionSetFrom, models.FilterActionSetTo:
		var date string
		if err := decodePayload(r.Payload, &date); err != nil {
			return action, nil, err
		}
		action.Payload = date
		return action, DatePayloadRequest{Date: date}, nil
	case models.FilterActionApply:
		var payload DateRangePayloadRequest
		if err := decodePayload(r.Payload, &payload); err != nil {
			return action, nil, err
		}
		action.Payload = models.DateRangePayload{From: payload.From, To: payload.To}
		return action, payload, nil
	default:
		return action, nil, nil
	}
}

func decodePayload(raw json.RawMessage, target interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrActionPayloadRequired
	}
	if err := json.Unmarshal(trimmed, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidActionPayload, err)
	}
	return nil
}

// FilterStateResponse is the shared date filter state
type FilterStateResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Active   bool   `json:"active"`
}

// NewFilterStateResponse converts a filter state
func NewFilterStateResponse(state models.FilterState) FilterStateResponse {
	return FilterStateResponse{
		FromDate: state.FromDate,
		ToDate:   state.ToDate,
		Active:   state.Active,
	}
}

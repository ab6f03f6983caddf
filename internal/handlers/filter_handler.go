package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"rewards-dashboard/internal/dto"
	"rewards-dashboard/internal/errors"
	"rewards-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// FilterHandler exposes the shared date filter state
type FilterHandler struct {
	filterStore services.FilterStoreInterface
	logger      *slog.Logger
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(filterStore services.FilterStoreInterface, logger *slog.Logger) *FilterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilterHandler{filterStore: filterStore, logger: logger}
}

// GetFilter returns the current filter state
// @Summary Get filter state
// @Tags Filter
// @Produce json
// @Success 200 {object} dto.FilterStateResponse
// @Router /api/v1/filter [get]
func (h *FilterHandler) GetFilter(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewFilterStateResponse(h.filterStore.State()))
}

// DispatchAction applies a filter action and returns the resulting state
// @Summary Dispatch filter action
// @Description SET_FROM and SET_TO take a date string, APPLY takes {from, to}, RESET takes nothing. Unknown types leave the state unchanged.
// @Tags Filter
// @Accept json
// @Produce json
// @Param request body dto.FilterActionRequest true "Filter action"
// @Success 200 {object} dto.FilterStateResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing type or payload"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid filter action"
// @Router /api/v1/filter/actions [post]
func (h *FilterHandler) DispatchAction(c echo.Context) error {
	var req dto.FilterActionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if req.Type == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("type is required"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationInvalidAction, errors.WithDetails(err.Error()))
	}

	action, payload, err := req.ToAction()
	if stderrors.Is(err, dto.ErrActionPayloadRequired) {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	}
	if err != nil {
		return SendError(c, errors.ValidationInvalidAction, errors.WithDetails(err.Error()))
	}

	if payload != nil {
		if err := c.Validate(payload); err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
	}

	state := h.filterStore.Dispatch(c.Request().Context(), action)

	h.logger.InfoContext(c.Request().Context(), "filter action applied",
		slog.String("client_ip", getClientIP(c)),
		slog.String("action", req.Type),
		slog.Bool("active", state.Active),
	)

	return c.JSON(http.StatusOK, dto.NewFilterStateResponse(state))
}

package handlers

import (
	"log/slog"
	"net/http"

	"rewards-dashboard/internal/dto"
	"rewards-dashboard/internal/errors"
	"rewards-dashboard/internal/models"
	"rewards-dashboard/internal/repositories"
	"rewards-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// Routes are registered only when APP_ENV=development.
type DevHandler struct {
	snapshotRepo repositories.FeedSnapshotRepositoryInterface
	generator    services.DemoDataGeneratorInterface
	logger       *slog.Logger
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	snapshotRepo repositories.FeedSnapshotRepositoryInterface,
	generator services.DemoDataGeneratorInterface,
	logger *slog.Logger,
) *DevHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DevHandler{
		snapshotRepo: snapshotRepo,
		generator:    generator,
		logger:       logger,
	}
}

// GenerateDemoSnapshot replaces the stored feed snapshot with generated records.
// The snapshot is what the dashboard serves while the remote feed is unreachable.
//
// Method: POST /api/v1/dev/demo-snapshot
// Environment: Development only
//
// Query parameters:
//   - count: Number of records to generate (default: 100, max: 1000)
//   - days: Days of history, counting today (default: 90, max: 365)
//
// Success Response: 201 Created with dto.DemoSnapshotResponse
//
// Error Responses:
//   - 400: VALIDATION_003 or VALIDATION_004
//   - 500: SYSTEM_002 when the snapshot could not be stored
func (h *DevHandler) GenerateDemoSnapshot(c echo.Context) error {
	query := dto.DemoSnapshotQuery{
		Count: dto.DefaultDemoRecordCount,
		Days:  dto.DefaultDemoDays,
	}
	err := echo.QueryParamsBinder(c).
		Int("count", &query.Count).
		Int("days", &query.Days).
		BindError()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	records := h.generator.Generate(query.Count, query.Days)

	snapshot := &models.FeedSnapshot{Source: "demo"}
	if err := h.snapshotRepo.SaveSnapshot(snapshot, records); err != nil {
		h.logger.ErrorContext(c.Request().Context(), "failed to store demo snapshot",
			slog.String("error", err.Error()),
		)
		return SendDatabaseError(c, err)
	}

	response := dto.DemoSnapshotResponse{
		SnapshotID:     snapshot.ID,
		RecordsCreated: snapshot.RecordCount,
		FetchedAt:      snapshot.FetchedAt,
	}
	for _, r := range records {
		if response.Earliest == "" || r.Date < response.Earliest {
			response.Earliest = r.Date
		}
		if r.Date > response.Latest {
			response.Latest = r.Date
		}
	}

	h.logger.InfoContext(c.Request().Context(), "demo snapshot stored",
		slog.String("snapshot_id", snapshot.ID.String()),
		slog.Int("records", snapshot.RecordCount),
	)

	return c.JSON(http.StatusCreated, response)
}

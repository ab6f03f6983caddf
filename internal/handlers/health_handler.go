package handlers

import (
	"net/http"
	"time"

	"rewards-dashboard/internal/errors"
	"rewards-dashboard/internal/repositories"
	"rewards-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db           *gorm.DB
	snapshotRepo repositories.FeedSnapshotRepositoryInterface
	feed         services.TransactionFeedInterface
}

// HealthResponse reports database and feed status
type HealthResponse struct {
	Status    string `json:"status"`
	Time      string `json:"time"`
	Feed      string `json:"feed"`
	Snapshots int64  `json:"snapshots"`
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(
	db *gorm.DB,
	snapshotRepo repositories.FeedSnapshotRepositoryInterface,
	feed services.TransactionFeedInterface,
) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, snapshotRepo: snapshotRepo, feed: feed}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check database connectivity, stored snapshots and feed status
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Snapshots could not be read"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	response := HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
		Feed:   h.feedStatus(),
	}

	if h.snapshotRepo != nil {
		count, err := h.snapshotRepo.CountSnapshots()
		if err != nil {
			return SendDatabaseError(c, err)
		}
		response.Snapshots = count
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthCheckHandler) feedStatus() string {
	if h.feed == nil {
		return "disabled"
	}
	current := h.feed.Current()
	switch {
	case current.Loading && current.Data == nil:
		return "loading"
	case current.Data == nil:
		return "unavailable"
	case current.FromSnapshot:
		return "snapshot"
	default:
		return "live"
	}
}

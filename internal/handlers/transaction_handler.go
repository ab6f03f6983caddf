package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"rewards-dashboard/internal/dto"
	"rewards-dashboard/internal/errors"
	"rewards-dashboard/internal/models"
	"rewards-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves the rewards transaction table
type TransactionHandler struct {
	feed        services.TransactionFeedInterface
	processor   services.DateRangeProcessorInterface
	filterStore services.FilterStoreInterface
	tableView   services.TableViewServiceInterface
	metrics     services.MetricsRecorderInterface
	logger      *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	feed services.TransactionFeedInterface,
	processor services.DateRangeProcessorInterface,
	filterStore services.FilterStoreInterface,
	tableView services.TableViewServiceInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) *TransactionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionHandler{
		feed:        feed,
		processor:   processor,
		filterStore: filterStore,
		tableView:   tableView,
		metrics:     metrics,
		logger:      logger,
	}
}

// ListTransactions returns one page of the filtered, sorted and searched transactions
// @Summary List transactions
// @Description Without from, to or apply the shared filter state is used. An incomplete or inverted range yields no rows.
// @Tags Transactions
// @Produce json
// @Param from query string false "Range start date"
// @Param to query string false "Range end date"
// @Param apply query bool false "Use the explicit range instead of the rolling window"
// @Param search query string false "Customer name search"
// @Param page query int false "Page number, 0-based"
// @Param page_size query int false "Page size (10, 25 or 75)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	query, err := bindListTransactionsQuery(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	params := h.filterStore.State().Params()
	if query.HasFilterParams() {
		params = query.FilterParams()
	}

	feed := h.feed.Current()

	start := time.Now()
	records := []models.TransactionRecord{}
	if feed.Data != nil {
		records = h.processor.ProcessRaw(feed.Data, params)
	}
	h.metrics.RecordProcessingTime("transactions.process", time.Since(start))

	page, err := h.tableView.BuildPage(records, query.TableQuery())
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidPage) || stderrors.Is(err, services.ErrInvalidPageSize) {
			return SendError(c, errors.ValidationInvalidPage, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	mode := dto.FilterModeWindow
	if params.ApplyFilter {
		mode = dto.FilterModeRange
	}
	h.metrics.IncrementCounter("transactions.served", map[string]string{"mode": mode})
	h.metrics.RecordGauge("transactions.matched", float64(page.Total), nil)

	h.logger.DebugContext(c.Request().Context(), "transactions listed",
		slog.String("mode", mode),
		slog.Int("matched", page.Total),
		slog.Int("page", page.Page),
		slog.Bool("loading", feed.Loading),
	)

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(page, feed, params))
}

// RefreshTransactions fetches the remote feed now
// @Summary Refresh transactions
// @Description Fetch the remote transaction feed immediately
// @Tags Transactions
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.RefreshResponse} "Feed refreshed"
// @Failure 502 {object} errors.ErrorResponse "FEED_001 - Feed unavailable, the previous payload is still served"
// @Failure 503 {object} errors.ErrorResponse "FEED_002 - Feed disabled after repeated failures"
// @Failure 503 {object} errors.ErrorResponse "FEED_003 - Fetch failed and nothing has been loaded yet"
// @Router /api/v1/transactions/refresh [post]
func (h *TransactionHandler) RefreshTransactions(c echo.Context) error {
	err := h.feed.Refresh(c.Request().Context())
	current := h.feed.Current()

	if err != nil && !current.FromSnapshot {
		h.logger.WarnContext(c.Request().Context(), "manual feed refresh failed",
			slog.String("error", err.Error()),
		)
		switch {
		case stderrors.Is(err, services.ErrCircuitBreakerOpen):
			return SendError(c, errors.FeedCircuitOpen)
		case current.Data == nil:
			return SendError(c, errors.FeedNotLoaded)
		case stderrors.Is(err, services.ErrFeedUnavailable),
			stderrors.Is(err, context.DeadlineExceeded):
			return SendError(c, errors.FeedUnavailable)
		default:
			return SendSystemError(c, err)
		}
	}

	records, _ := models.DecodeTransactionRecords(current.Data)
	response := dto.RefreshResponse{
		Loading:      current.Loading,
		FromSnapshot: current.FromSnapshot,
		Records:      len(records),
	}
	if !current.FetchedAt.IsZero() {
		fetchedAt := current.FetchedAt
		response.FetchedAt = &fetchedAt
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    response,
		Message: "Transaction feed refreshed",
	})
}

func bindListTransactionsQuery(c echo.Context) (*dto.ListTransactionsQuery, error) {
	query := &dto.ListTransactionsQuery{}
	values := c.QueryParams()

	if values.Has("from") {
		from := values.Get("from")
		query.From = &from
	}
	if values.Has("to") {
		to := values.Get("to")
		query.To = &to
	}

	var apply bool
	err := echo.QueryParamsBinder(c).
		Bool("apply", &apply).
		String("search", &query.Search).
		Int("page", &query.Page).
		Int("page_size", &query.PageSize).
		BindError()
	if err != nil {
		return nil, err
	}
	if values.Has("apply") {
		query.Apply = &apply
	}

	return query, nil
}

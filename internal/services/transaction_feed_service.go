package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"rewards-dashboard/internal/config"
	"rewards-dashboard/internal/models"
	"rewards-dashboard/internal/repositories"
)

const maxFeedBodyBytes = 32 << 20

var (
	ErrFeedUnavailable = errors.New("transaction feed unavailable")
)

// AuthTransport adds the feed API key to every request
type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

// transactionFeedService fetches the remote transaction feed and remembers the last payload
type transactionFeedService struct {
	config         *config.FeedConfig
	client         *http.Client
	snapshotRepo   repositories.FeedSnapshotRepositoryInterface
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	clock          Clock
	logger         *slog.Logger

	fetchMu sync.Mutex

	mu      sync.RWMutex
	current models.FeedResult
}

// NewTransactionFeedService creates a feed service. The feed reports loading until the first fetch ends.
func NewTransactionFeedService(
	cfg *config.FeedConfig,
	snapshotRepo repositories.FeedSnapshotRepositoryInterface,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
	logger *slog.Logger,
) TransactionFeedInterface {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.APIKey != "" {
		transport = &AuthTransport{
			apiKey: cfg.APIKey,
			base:   http.DefaultTransport,
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &transactionFeedService{
		config: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		snapshotRepo:   snapshotRepo,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
		clock:          clock,
		logger:         logger,
		current:        models.FeedResult{Loading: true},
	}
}

// Current returns the latest feed state
func (s *transactionFeedService) Current() models.FeedResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh fetches the feed once. On failure the previous payload is kept, or the stored
// snapshot is restored when nothing has been received yet.
func (s *transactionFeedService) Refresh(ctx context.Context) error {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	s.setLoading(true)
	start := time.Now()

	body, err := s.fetch(ctx)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime("feed.fetch", duration)

	if err != nil {
		s.metrics.IncrementCounter("feed.fetch.failed", map[string]string{"reason": failureReason(err)})
		s.logger.WarnContext(ctx, "transaction feed fetch failed",
			slog.String("url", s.config.URL),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", duration.Milliseconds()),
		)
		s.finishWithFallback(ctx)
		return err
	}

	s.metrics.IncrementCounter("feed.fetch.success", nil)

	fetchedAt := s.clock.Now()
	s.finish(models.FeedResult{Data: body, FetchedAt: fetchedAt})

	records, isArray := models.DecodeTransactionRecords(body)
	s.metrics.RecordGauge("feed.records", float64(len(records)), nil)
	s.logger.InfoContext(ctx, "transaction feed fetched",
		slog.String("url", s.config.URL),
		slog.Bool("is_array", isArray),
		slog.Int("records", len(records)),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)

	if isArray {
		snapshot := &models.FeedSnapshot{Source: s.config.URL, FetchedAt: fetchedAt}
		if err := s.snapshotRepo.SaveSnapshot(snapshot, records); err != nil {
			s.logger.ErrorContext(ctx, "failed to store feed snapshot",
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

// StartRefreshing fetches immediately and then on every tick until ctx is cancelled
func (s *transactionFeedService) StartRefreshing(ctx context.Context, interval time.Duration) {
	s.logger.Info("starting transaction feed refresh",
		slog.String("url", s.config.URL),
		slog.Duration("interval", interval),
	)

	_ = s.Refresh(ctx)

	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("transaction feed refresh stopped")
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

func (s *transactionFeedService) fetch(ctx context.Context) (json.RawMessage, error) {
	if s.circuitBreaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.circuitBreaker.RecordFailure()
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodyBytes))
	if err != nil {
		s.circuitBreaker.RecordFailure()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.circuitBreaker.RecordFailure()
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	s.circuitBreaker.RecordSuccess()
	return json.RawMessage(body), nil
}

func (s *transactionFeedService) finishWithFallback(ctx context.Context) {
	s.mu.RLock()
	hasData := s.current.Data != nil
	s.mu.RUnlock()

	if hasData || !s.config.SnapshotFallbackOnErr {
		s.setLoading(false)
		return
	}

	snapshot, records, err := s.snapshotRepo.GetLatest()
	if err != nil {
		if !errors.Is(err, repositories.ErrSnapshotNotFound) {
			s.logger.ErrorContext(ctx, "failed to load feed snapshot",
				slog.String("error", err.Error()),
			)
		}
		s.setLoading(false)
		return
	}

	data, err := json.Marshal(records)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode feed snapshot",
			slog.String("error", err.Error()),
		)
		s.setLoading(false)
		return
	}

	s.metrics.IncrementCounter("feed.snapshot.restored", nil)
	s.logger.InfoContext(ctx, "serving transaction feed from snapshot",
		slog.String("snapshot_id", snapshot.ID.String()),
		slog.Int("records", len(records)),
		slog.Time("fetched_at", snapshot.FetchedAt),
	)

	s.finish(models.FeedResult{Data: data, FetchedAt: snapshot.FetchedAt, FromSnapshot: true})
}

func (s *transactionFeedService) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Loading = loading
}

func (s *transactionFeedService) finish(result models.FeedResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result.Loading = false
	s.current = result
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrCircuitBreakerOpen):
		return "circuit_open"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrFeedUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

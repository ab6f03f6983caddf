package services

import (
	"context"
	"log/slog"
	"sync"

	"rewards-dashboard/internal/models"
)

// FilterListener is called after a dispatch changed the filter state
type FilterListener func(prev, next models.FilterState)

type filterStore struct {
	mu        sync.Mutex
	state     models.FilterState
	listeners map[int]FilterListener
	nextID    int
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewFilterStore creates a store holding the initial filter state
func NewFilterStore(metrics MetricsRecorderInterface, logger *slog.Logger) FilterStoreInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &filterStore{
		state:     models.InitialFilterState(),
		listeners: make(map[int]FilterListener),
		metrics:   metrics,
		logger:    logger,
	}
}

// State returns a copy of the current filter state
func (s *filterStore) State() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies action through the reducer and notifies listeners when the state changed
func (s *filterStore) Dispatch(ctx context.Context, action models.FilterAction) models.FilterState {
	s.mu.Lock()
	prev := s.state
	next := models.ReduceFilterState(prev, action)
	s.state = next
	listeners := make([]FilterListener, 0, len(s.listeners))
	if next != prev {
		for _, l := range s.listeners {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	known := models.IsKnownFilterActionType(action.Type)
	if s.metrics != nil {
		actionLabel := string(action.Type)
		if !known {
			actionLabel = "unknown"
		}
		s.metrics.IncrementCounter("filter.action", map[string]string{"action": actionLabel})
	}

	s.logger.DebugContext(ctx, "filter action dispatched",
		slog.String("action", string(action.Type)),
		slog.Bool("known_action", known),
		slog.Bool("changed", next != prev),
		slog.String("from_date", next.FromDate),
		slog.String("to_date", next.ToDate),
		slog.Bool("active", next.Active),
	)

	for _, l := range listeners {
		l(prev, next)
	}

	return next
}

// Subscribe registers listener and returns a function removing it
func (s *filterStore) Subscribe(listener FilterListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

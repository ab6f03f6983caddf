package services_test

import (
	"context"
	"sync"
	"testing"

	"rewards-dashboard/internal/models"
	"rewards-dashboard/internal/services"
	"rewards-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type FilterStoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
	store   services.FilterStoreInterface
}

func TestFilterStoreSuite(t *testing.T) {
	suite.Run(t, new(FilterStoreTestSuite))
}

func (s *FilterStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.store = services.NewFilterStore(s.metrics, nil)
}

func (s *FilterStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FilterStoreTestSuite) expectAction(action string) {
	s.metrics.EXPECT().IncrementCounter("filter.action", map[string]string{"action": action})
}

func (s *FilterStoreTestSuite) TestInitialState() {
	s.Equal(models.InitialFilterState(), s.store.State())
}

func (s *FilterStoreTestSuite) TestDispatch_SetAndApply() {
	s.expectAction("SET_FROM")
	s.expectAction("SET_TO")
	s.expectAction("APPLY")

	s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionSetFrom, Payload: "2025-10-01"})
	s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionSetTo, Payload: "2025-10-31"})
	state := s.store.Dispatch(s.ctx, models.FilterAction{
		Type:    models.FilterActionApply,
		Payload: models.DateRangePayload{From: "2025-10-02", To: "2025-10-30"},
	})

	expected := models.FilterState{FromDate: "2025-10-02", ToDate: "2025-10-30", Active: true}
	s.Equal(expected, state)
	s.Equal(expected, s.store.State())
}

func (s *FilterStoreTestSuite) TestDispatch_Reset() {
	s.expectAction("APPLY")
	s.expectAction("RESET")

	s.store.Dispatch(s.ctx, models.FilterAction{
		Type:    models.FilterActionApply,
		Payload: models.DateRangePayload{From: "2025-10-01", To: "2025-10-31"},
	})
	state := s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionReset})

	s.Equal(models.InitialFilterState(), state)
}

func (s *FilterStoreTestSuite) TestDispatch_UnknownActionIsNoop() {
	s.expectAction("SET_FROM")
	s.expectAction("unknown")

	s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionSetFrom, Payload: "2025-10-01"})
	before := s.store.State()
	after := s.store.Dispatch(s.ctx, models.FilterAction{Type: "TOGGLE"})

	s.Equal(before, after)
}

func (s *FilterStoreTestSuite) TestSubscribe_NotifiedOnChange() {
	s.metrics.EXPECT().IncrementCounter("filter.action", gomock.Any()).Times(3)

	var calls []models.FilterState
	unsubscribe := s.store.Subscribe(func(prev, next models.FilterState) {
		s.NotEqual(prev, next)
		calls = append(calls, next)
	})

	s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionSetFrom, Payload: "2025-10-01"})
	// same value again does not change the state
	s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionSetFrom, Payload: "2025-10-01"})

	unsubscribe()
	s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionReset})

	s.Require().Len(calls, 1)
	s.Equal("2025-10-01", calls[0].FromDate)
}

func (s *FilterStoreTestSuite) TestSubscribe_ListenerMayReadState() {
	s.metrics.EXPECT().IncrementCounter("filter.action", gomock.Any())

	var seen models.FilterState
	s.store.Subscribe(func(_, _ models.FilterState) {
		seen = s.store.State()
	})

	s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionSetTo, Payload: "2025-10-31"})

	s.Equal("2025-10-31", seen.ToDate)
}

func (s *FilterStoreTestSuite) TestDispatch_Concurrent() {
	s.metrics.EXPECT().IncrementCounter("filter.action", gomock.Any()).Times(100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionSetFrom, Payload: "2025-01-01"})
		}()
		go func() {
			defer wg.Done()
			s.store.Dispatch(s.ctx, models.FilterAction{Type: models.FilterActionSetTo, Payload: "2025-12-31"})
		}()
	}
	wg.Wait()

	state := s.store.State()
	s.Equal("2025-01-01", state.FromDate)
	s.Equal("2025-12-31", state.ToDate)
	s.False(state.Active)
}

func TestFilterStore_NilMetrics(t *testing.T) {
	store := services.NewFilterStore(nil, nil)

	state := store.Dispatch(context.Background(), models.FilterAction{Type: models.FilterActionSetFrom, Payload: "2025-10-01"})

	if state.FromDate != "2025-10-01" {
		t.Fatalf("expected from date to be set, got %q", state.FromDate)
	}
}

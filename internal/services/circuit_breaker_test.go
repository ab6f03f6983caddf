package services_test

import (
	"sync"
	"testing"
	"time"

	"rewards-dashboard/internal/models"
	"rewards-dashboard/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestBreaker(maxFailures int) (services.CircuitBreakerInterface, *manualClock, *[]models.CircuitBreakerState) {
	clock := &manualClock{now: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)}
	transitions := &[]models.CircuitBreakerState{}
	cb := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     maxFailures,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}, clock, func(_, newState models.CircuitBreakerState) {
		*transitions = append(*transitions, newState)
	})
	return cb, clock, transitions
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, _, transitions := newTestBreaker(3)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.GetFailureCount())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, services.StateOpen, cb.GetState())
	assert.Equal(t, []models.CircuitBreakerState{services.StateOpen}, *transitions)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _, _ := newTestBreaker(3)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()

	assert.Equal(t, 0, cb.GetFailureCount())
	assert.Equal(t, services.StateClosed, cb.GetState())
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	cb, clock, transitions := newTestBreaker(1)

	cb.RecordFailure()
	require.True(t, cb.IsOpen())

	clock.Advance(31 * time.Second)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, services.StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, services.StateClosed, cb.GetState())
	assert.Equal(t, []models.CircuitBreakerState{
		services.StateOpen,
		services.StateHalfOpen,
		services.StateClosed,
	}, *transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock, _ := newTestBreaker(1)

	cb.RecordFailure()
	clock.Advance(time.Minute)
	require.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb, _, _ := newTestBreaker(1)

	cb.RecordFailure()
	require.True(t, cb.IsOpen())

	cb.Reset()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 0, cb.GetFailureCount())
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", services.StateClosed.String())
	assert.Equal(t, "open", services.StateOpen.String())
	assert.Equal(t, "half_open", services.StateHalfOpen.String())
}

package services

import (
	"errors"
	"sync"
	"time"

	"rewards-dashboard/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// StateChangeFunc observes circuit breaker transitions
type StateChangeFunc func(oldState, newState models.CircuitBreakerState)

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	clock             Clock
	onStateChange     StateChangeFunc
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

// NewCircuitBreaker creates a closed breaker. onStateChange may be nil.
func NewCircuitBreaker(config CircuitBreakerConfig, clock Clock, onStateChange StateChangeFunc) CircuitBreakerInterface {
	if clock == nil {
		clock = NewSystemClock(nil)
	}
	return &CircuitBreaker{
		config:        config,
		clock:         clock,
		onStateChange: onStateChange,
		state:         StateClosed,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.clock.Now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.setState(StateHalfOpen)
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.setState(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.clock.Now()

	switch cb.state {
	case StateHalfOpen:
		cb.setState(StateOpen)
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.setState(StateOpen)
		}
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.setState(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

// setState must be called with mu held
func (cb *CircuitBreaker) setState(newState models.CircuitBreakerState) {
	oldState := cb.state
	cb.state = newState
	cb.halfOpenSuccesses = 0
	if newState == StateClosed {
		cb.failures = 0
	}
	if oldState != newState && cb.onStateChange != nil {
		cb.onStateChange(oldState, newState)
	}
}

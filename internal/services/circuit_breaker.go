package services

import (
	"errors"
	"sync"
	"time"

	"comodatos-admin/internal/config"
	"comodatos-admin/internal/models"
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

// CircuitBreakerConfigFromBackend applies the backend settings over the
// defaults, ignoring non-positive values.
func CircuitBreakerConfigFromBackend(cfg *config.BackendConfig) CircuitBreakerConfig {
	cb := DefaultCircuitBreakerConfig()
	if cfg.CBMaxFailures > 0 {
		cb.MaxFailures = cfg.CBMaxFailures
	}
	if cfg.CBResetTimeout > 0 {
		cb.ResetTimeout = cfg.CBResetTimeout
	}
	return cb
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// StateChangeFunc observes circuit breaker transitions. It runs with the
// breaker's lock released.
type StateChangeFunc func(from, to models.CircuitBreakerState)

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	onStateChange     StateChangeFunc
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig, onStateChange StateChangeFunc) *CircuitBreaker {
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config:        config,
		state:         StateClosed,
		onStateChange: onStateChange,
		now:           time.Now,
	}
}

// IsOpen reports whether calls must be rejected. Once the reset timeout has
// passed since the last failure an open breaker lets a trial call through.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		from := cb.setState(StateHalfOpen)
		cb.mu.Unlock()
		cb.notify(from, StateHalfOpen)
		return false
	}
	open := cb.state == StateOpen
	cb.mu.Unlock()
	return open
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			from := cb.setState(StateClosed)
			cb.mu.Unlock()
			cb.notify(from, StateClosed)
			return
		}
	case StateClosed:
		cb.failures = 0
	}
	cb.mu.Unlock()
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	cb.lastFailureTime = cb.now()

	trip := false
	switch cb.state {
	case StateHalfOpen:
		trip = true
	case StateClosed:
		cb.failures++
		trip = cb.failures >= cb.config.MaxFailures
	}
	if !trip {
		cb.mu.Unlock()
		return
	}

	from := cb.setState(StateOpen)
	cb.mu.Unlock()
	cb.notify(from, StateOpen)
}

// setState must be called with mu held. It returns the previous state.
func (cb *CircuitBreaker) setState(to models.CircuitBreakerState) models.CircuitBreakerState {
	from := cb.state
	cb.state = to
	cb.halfOpenSuccesses = 0
	if to == StateClosed {
		cb.failures = 0
	}
	return from
}

func (cb *CircuitBreaker) notify(from, to models.CircuitBreakerState) {
	if cb.onStateChange != nil && from != to {
		cb.onStateChange(from, to)
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	from := cb.setState(StateClosed)
	cb.mu.Unlock()
	cb.notify(from, StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

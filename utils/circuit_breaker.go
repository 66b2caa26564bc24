package utils

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrBreakerOpen is returned while the breaker refuses calls.
var ErrBreakerOpen = errors.New("circuit breaker is open")

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerHalfOpen
	BreakerOpen
)

type breakerCounts struct {
	requests             uint32
	totalFailures        uint32
	consecutiveFailures  uint32
	consecutiveSuccesses uint32
}

// CircuitBreaker guards the simulated authentication round-trip so a
// misbehaving backend trips fast instead of piling up slow failures.
type CircuitBreaker struct {
	name         string
	maxRequests  uint32
	interval     time.Duration
	timeout      time.Duration
	failureRatio float64

	mu         sync.Mutex
	state      BreakerState
	counts     breakerCounts
	generation uint64
	expiry     time.Time
}

func NewCircuitBreaker(name string) *CircuitBreaker {
	return &CircuitBreaker{
		name:         name,
		maxRequests:  100,
		interval:     60 * time.Second,
		timeout:      60 * time.Second,
		failureRatio: 0.6,
		state:        BreakerClosed,
	}
}

// Execute runs req under the breaker. While open it fails immediately with
// ErrBreakerOpen; a panic in req counts as a failure and is re-raised.
func (cb *CircuitBreaker) Execute(ctx context.Context, req func() (any, error)) (any, error) {
	generation, err := cb.beforeRequest()
	if err != nil {
		return nil, err
	}

	defer func() {
		if e := recover(); e != nil {
			cb.afterRequest(generation, false)
			panic(e)
		}
	}()

	result, err := req()
	cb.afterRequest(generation, err == nil)
	return result, err
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	state, _ := cb.currentState(time.Now())
	return state
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(time.Now())

	if state == BreakerOpen {
		return generation, ErrBreakerOpen
	}
	if state == BreakerHalfOpen && cb.counts.requests >= cb.maxRequests {
		return generation, ErrBreakerOpen
	}

	cb.counts.requests++
	return generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(time.Now())
	if generation != before {
		return
	}

	if success {
		cb.counts.consecutiveSuccesses++
		cb.counts.consecutiveFailures = 0
		if state == BreakerHalfOpen {
			cb.toState(BreakerClosed)
		}
		return
	}

	cb.counts.totalFailures++
	cb.counts.consecutiveFailures++
	cb.counts.consecutiveSuccesses = 0

	if cb.readyToTrip() || state == BreakerHalfOpen {
		cb.toState(BreakerOpen)
	}
}

func (cb *CircuitBreaker) readyToTrip() bool {
	return cb.counts.requests >= cb.maxRequests &&
		float64(cb.counts.totalFailures)/float64(cb.counts.requests) >= cb.failureRatio
}

func (cb *CircuitBreaker) currentState(now time.Time) (BreakerState, uint64) {
	switch cb.state {
	case BreakerClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.newGeneration(now)
		}
	case BreakerOpen:
		if cb.expiry.Before(now) {
			cb.state = BreakerHalfOpen
			cb.newGeneration(now)
		}
	}
	return cb.state, cb.generation
}

func (cb *CircuitBreaker) toState(state BreakerState) {
	cb.state = state
	cb.newGeneration(time.Now())
}

func (cb *CircuitBreaker) newGeneration(now time.Time) {
	cb.generation++
	cb.counts = breakerCounts{}

	switch cb.state {
	case BreakerClosed:
		cb.expiry = now.Add(cb.interval)
	case BreakerOpen:
		cb.expiry = now.Add(cb.timeout)
	default:
		cb.expiry = time.Time{}
	}
}

// Package circuitbreaker guards downstream dependencies (the carrier
// API and MongoDB) against cascading failures.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit is open and the call is
// rejected without reaching the dependency.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed passes requests through normally.
	StateClosed State = iota
	// StateOpen rejects requests immediately.
	StateOpen
	// StateHalfOpen lets a single probe request through.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker tuning.
type Config struct {
	// FailureThreshold is the number of consecutive failures before the
	// circuit opens.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive half-open successes
	// needed to close the circuit again.
	SuccessThreshold int
	// Cooldown is how long the circuit stays open before a probe is
	// allowed.
	Cooldown time.Duration
	// Name identifies the breaker in logs and health reports.
	Name string
}

// DefaultConfig returns the tuning used when none is provided.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Cooldown:         30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the circuit breaker pattern around a
// downstream call.
type CircuitBreaker struct {
	config Config

	mu            sync.Mutex
	state         State
	failures      int
	successes     int
	openedAt      time.Time
	probeInFlight bool
}

// New creates a circuit breaker in the closed state.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = DefaultConfig().FailureThreshold
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = DefaultConfig().SuccessThreshold
	}
	if config.Cooldown <= 0 {
		config.Cooldown = DefaultConfig().Cooldown
	}
	return &CircuitBreaker{config: config, state: StateClosed}
}

// Execute runs fn under breaker protection. It returns ErrCircuitOpen
// without calling fn when the circuit is open, and the context error
// when ctx is already done.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cb.allow(); err != nil {
		return err
	}

	err := fn()
	cb.record(err)
	return err
}

// allow decides whether a call may proceed, transitioning open
// circuits to half-open after the cooldown. In half-open only one
// probe runs at a time.
func (cb *CircuitBreaker) allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return nil
	case StateOpen:
		if time.Since(cb.openedAt) < cb.config.Cooldown {
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
		cb.successes = 0
		cb.probeInFlight = true
		log.Info().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker half-open, probing dependency")
		return nil
	case StateHalfOpen:
		if cb.probeInFlight {
			return ErrCircuitOpen
		}
		cb.probeInFlight = true
		return nil
	}
	return ErrCircuitOpen
}

// record applies the call outcome to the breaker state.
func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probeInFlight = false

	if err != nil {
		cb.failures++
		switch cb.state {
		case StateClosed:
			if cb.failures >= cb.config.FailureThreshold {
				cb.open()
			}
		case StateHalfOpen:
			cb.open()
		}
		return
	}

	cb.failures = 0
	if cb.state == StateHalfOpen {
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.successes = 0
			log.Info().
				Str("circuit_breaker", cb.config.Name).
				Msg("Circuit breaker closed after recovery")
		}
	}
}

func (cb *CircuitBreaker) open() {
	cb.state = StateOpen
	cb.openedAt = time.Now()
	log.Warn().
		Str("circuit_breaker", cb.config.Name).
		Int("failures", cb.failures).
		Msg("Circuit breaker opened")
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// IsOpen reports whether calls are currently rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state == StateOpen && time.Since(cb.openedAt) < cb.config.Cooldown
}

// Stats is a point-in-time snapshot for health reporting.
type Stats struct {
	Name       string    `json:"name"`
	State      string    `json:"state"`
	Failures   int       `json:"failures"`
	LastOpened time.Time `json:"last_opened,omitempty"`
	IsHealthy  bool      `json:"is_healthy"`
}

// GetStats returns a snapshot of the breaker.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return Stats{
		Name:       cb.config.Name,
		State:      cb.state.String(),
		Failures:   cb.failures,
		LastOpened: cb.openedAt,
		IsHealthy:  cb.state == StateClosed,
	}
}

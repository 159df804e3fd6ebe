// Package circuitbreaker implements a minimal circuit breaker for storage
// calls.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrOpen is returned while the circuit rejects calls.
var ErrOpen = errors.New("circuit breaker open")

// State is the breaker state.
type State int

const (
	// Closed passes calls through and counts failures.
	Closed State = iota
	// Open rejects calls until the cooldown elapses.
	Open
	// HalfOpen lets trial calls through to probe recovery.
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

// Config tunes a breaker.
type Config struct {
	// Name identifies the breaker in logs.
	Name string
	// FailureThreshold is consecutive failures before opening.
	FailureThreshold int
	// SuccessThreshold is consecutive half-open successes before closing.
	SuccessThreshold int
	// Cooldown is how long the circuit stays open before probing.
	Cooldown time.Duration
}

// DefaultConfig returns a sensible starting configuration.
func DefaultConfig() Config {
	return Config{
		Name:             "circuit-breaker",
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Cooldown:         30 * time.Second,
	}
}

// Breaker is a consecutive-failure circuit breaker.
type Breaker struct {
	cfg Config

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
}

// New creates a breaker in the closed state.
func New(cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = DefaultConfig().FailureThreshold
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = DefaultConfig().SuccessThreshold
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultConfig().Cooldown
	}
	return &Breaker{cfg: cfg}
}

// Do runs fn under the breaker. It returns ErrOpen without calling fn while
// the circuit is open, and otherwise returns fn's error.
func (b *Breaker) Do(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !b.allow() {
		return ErrOpen
	}

	err := fn()
	b.record(err == nil)
	return err
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Name returns the breaker's configured name.
func (b *Breaker) Name() string {
	return b.cfg.Name
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == Open {
		if time.Since(b.openedAt) < b.cfg.Cooldown {
			return false
		}
		b.state = HalfOpen
		b.successes = 0
		log.Info().Str("circuit_breaker", b.cfg.Name).Msg("Circuit breaker half-open")
	}
	return true
}

func (b *Breaker) record(ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !ok {
		b.failures++
		b.successes = 0
		if b.state == HalfOpen || (b.state == Closed && b.failures >= b.cfg.FailureThreshold) {
			b.state = Open
			b.openedAt = time.Now()
			log.Warn().
				Str("circuit_breaker", b.cfg.Name).
				Int("failures", b.failures).
				Msg("Circuit breaker opened")
		}
		return
	}

	b.failures = 0
	switch b.state {
	case HalfOpen:
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.state = Closed
			log.Info().Str("circuit_breaker", b.cfg.Name).Msg("Circuit breaker closed")
		}
	case Closed:
		// Nothing to do.
	}
}

package llm

import (
	"context"
	"errors"
	"sync"
	"time"
)

// BreakerState is the circuit breaker state.
type BreakerState int

const (
	// BreakerClosed passes every call through to the provider.
	BreakerClosed BreakerState = iota
	// BreakerOpen short-circuits every call until the cool-down elapses.
	BreakerOpen
	// BreakerHalfOpen allows a single trial call to decide closed vs open.
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// BreakerConfig configures the circuit breaker decorator.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive failures that trips
	// the breaker from closed to open.
	FailureThreshold int

	// CoolDown is how long the breaker stays open before allowing a
	// half-open trial call.
	CoolDown time.Duration
}

// DefaultBreakerConfig returns the standard breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		CoolDown:         60 * time.Second,
	}
}

// BreakerProvider is a decorator that short-circuits calls to a failing
// provider. It is an explicit three-state machine: consecutive failures
// trip it open, a cool-down window gates a single half-open trial, and
// the trial's outcome decides closed vs open again. While open, Generate
// returns *ErrBreakerOpen without touching the network so callers can
// dispatch their static fallback immediately.
type BreakerProvider struct {
	inner  Provider
	config BreakerConfig
	now    func() time.Time

	mu       sync.Mutex
	state    BreakerState
	failures int
	openedAt time.Time
	trialing bool
}

// WithBreaker wraps a Provider with circuit breaking.
func WithBreaker(p Provider, cfg BreakerConfig) *BreakerProvider {
	return &BreakerProvider{
		inner:  p,
		config: cfg,
		now:    time.Now,
	}
}

func (b *BreakerProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := b.admit(); err != nil {
		return nil, err
	}

	resp, err := b.inner.Generate(ctx, req)
	b.record(err)
	return resp, err
}

func (b *BreakerProvider) ModelID() string {
	return b.inner.ModelID()
}

// State returns the current breaker state.
func (b *BreakerProvider) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// admit decides whether a call may proceed, transitioning open to
// half-open when the cool-down has elapsed.
func (b *BreakerProvider) admit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		return nil
	case BreakerOpen:
		retryAt := b.openedAt.Add(b.config.CoolDown)
		if b.now().Before(retryAt) {
			return &ErrBreakerOpen{RetryAt: retryAt}
		}
		b.state = BreakerHalfOpen
		b.trialing = true
		return nil
	default: // BreakerHalfOpen
		if b.trialing {
			// A trial call is already in flight; hold everyone else off.
			return &ErrBreakerOpen{RetryAt: b.openedAt.Add(b.config.CoolDown)}
		}
		b.trialing = true
		return nil
	}
}

// record updates the state machine with the outcome of a call.
// Context cancellation says nothing about provider health and is ignored.
func (b *BreakerProvider) record(err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		b.mu.Lock()
		b.trialing = false
		b.mu.Unlock()
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.state = BreakerClosed
		b.failures = 0
		b.trialing = false
		return
	}

	if b.state == BreakerHalfOpen {
		// Trial failed, back to open for another cool-down.
		b.state = BreakerOpen
		b.openedAt = b.now()
		b.trialing = false
		return
	}

	b.failures++
	if b.failures >= b.config.FailureThreshold {
		b.state = BreakerOpen
		b.openedAt = b.now()
	}
}

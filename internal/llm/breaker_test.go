package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func breakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		CoolDown:         time.Minute,
	}
}

func failResponses(n int) []MockResponse {
	out := make([]MockResponse, n)
	for i := range out {
		out[i] = MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	}
	return out
}

func TestBreaker_StaysClosedBelowThreshold(t *testing.T) {
	mock := NewMockProvider(failResponses(4)...)
	b := WithBreaker(mock, breakerConfig())

	for range 4 {
		b.Generate(context.Background(), Request{})
	}
	if b.State() != BreakerClosed {
		t.Fatalf("state = %s, want closed", b.State())
	}
}

func TestBreaker_TripsOpenAtThreshold(t *testing.T) {
	mock := NewMockProvider(failResponses(5)...)
	b := WithBreaker(mock, breakerConfig())

	for range 5 {
		b.Generate(context.Background(), Request{})
	}
	if b.State() != BreakerOpen {
		t.Fatalf("state = %s, want open", b.State())
	}

	// While open, calls are short-circuited without touching the provider.
	_, err := b.Generate(context.Background(), Request{})
	var open *ErrBreakerOpen
	if !errors.As(err, &open) {
		t.Fatalf("expected ErrBreakerOpen, got %v", err)
	}
	if mock.CallCount() != 5 {
		t.Fatalf("provider called %d times, want 5 (no call while open)", mock.CallCount())
	}
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	responses := append(failResponses(4),
		MockResponse{Content: json.RawMessage(`{}`)})
	responses = append(responses, failResponses(4)...)
	mock := NewMockProvider(responses...)
	b := WithBreaker(mock, breakerConfig())

	for range 9 {
		b.Generate(context.Background(), Request{})
	}
	if b.State() != BreakerClosed {
		t.Fatalf("state = %s, want closed (success reset the count)", b.State())
	}
}

func TestBreaker_HalfOpenTrialCloses(t *testing.T) {
	responses := append(failResponses(5),
		MockResponse{Content: json.RawMessage(`{}`)})
	mock := NewMockProvider(responses...)
	b := WithBreaker(mock, breakerConfig())

	now := time.Now()
	b.now = func() time.Time { return now }

	for range 5 {
		b.Generate(context.Background(), Request{})
	}
	if b.State() != BreakerOpen {
		t.Fatalf("state = %s, want open", b.State())
	}

	// Advance past the cool-down; the next call is the half-open trial.
	now = now.Add(2 * time.Minute)
	_, err := b.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("trial call failed: %v", err)
	}
	if b.State() != BreakerClosed {
		t.Fatalf("state = %s, want closed after successful trial", b.State())
	}
}

func TestBreaker_HalfOpenTrialFailureReopens(t *testing.T) {
	mock := NewMockProvider(failResponses(6)...)
	b := WithBreaker(mock, breakerConfig())

	now := time.Now()
	b.now = func() time.Time { return now }

	for range 5 {
		b.Generate(context.Background(), Request{})
	}

	now = now.Add(2 * time.Minute)
	b.Generate(context.Background(), Request{}) // trial, fails
	if b.State() != BreakerOpen {
		t.Fatalf("state = %s, want open after failed trial", b.State())
	}
	if mock.CallCount() != 6 {
		t.Fatalf("provider called %d times, want 6", mock.CallCount())
	}
}

func TestBreaker_ContextCancellationNotCounted(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
		MockResponse{Err: context.Canceled},
		MockResponse{Err: context.Canceled},
		MockResponse{Err: context.Canceled},
		MockResponse{Err: context.Canceled},
	)
	b := WithBreaker(mock, breakerConfig())

	for range 5 {
		b.Generate(context.Background(), Request{})
	}
	if b.State() != BreakerClosed {
		t.Fatalf("state = %s, want closed (cancellations are not provider failures)", b.State())
	}
}

func TestBreaker_ModelIDDelegates(t *testing.T) {
	b := WithBreaker(NewMockProvider(), breakerConfig())
	if b.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", b.ModelID())
	}
}

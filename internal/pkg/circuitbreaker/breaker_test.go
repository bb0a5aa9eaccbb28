package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

var errDownstream = errors.New("downstream failed")

func fail(ctx context.Context) error    { return errDownstream }
func succeed(ctx context.Context) error { return nil }

func newTestBreaker(clock *time.Time) *CircuitBreaker {
	cfg := DefaultConfig("supabase-notifications")
	cfg.FailureThreshold = 2
	cfg.Timeout = time.Minute
	cb := New(cfg, logger.NewNopLogger())
	cb.now = func() time.Time { return *clock }
	return cb
}

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&clock)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, fail), errDownstream)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, fail), errDownstream)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
	assert.ErrorIs(t, cb.CheckHealth(ctx), ErrCircuitBreakerOpen)
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&clock)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	_ = cb.Execute(ctx, fail)
	assert.Equal(t, StateOpen, cb.State())

	clock = clock.Add(2 * time.Minute)
	assert.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, cb.CheckHealth(ctx))
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&clock)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	_ = cb.Execute(ctx, fail)

	clock = clock.Add(2 * time.Minute)
	assert.ErrorIs(t, cb.Execute(ctx, fail), errDownstream)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreakerIsFailure(t *testing.T) {
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	cfg := DefaultConfig("nats")
	cfg.FailureThreshold = 1
	cfg.IsFailure = func(err error) bool { return !errors.Is(err, context.Canceled) }
	cb := New(cfg, logger.NewNopLogger())
	cb.now = func() time.Time { return clock }

	_ = cb.Execute(context.Background(), func(ctx context.Context) error { return context.Canceled })
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.Counts().TotalSuccesses)
	assert.Equal(t, "nats", cb.Name())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
}

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestExecute(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		r := New(fastConfig(), logger.NewNopLogger())
		calls := 0
		err := r.Execute(context.Background(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection reset")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		r := New(fastConfig(), logger.NewNopLogger())
		calls := 0
		boom := errors.New("supabase unavailable")
		err := r.Execute(context.Background(), func(ctx context.Context) error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "retry limit exceeded after 4 attempts")
		assert.Equal(t, 4, calls)
	})

	t.Run("permanent errors stop immediately", func(t *testing.T) {
		r := New(fastConfig(), logger.NewNopLogger())
		calls := 0
		bad := errors.New("invalid payload")
		err := r.Execute(context.Background(), func(ctx context.Context) error {
			calls++
			return Permanent(bad)
		})
		assert.ErrorIs(t, err, bad)
		assert.True(t, IsPermanent(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("custom retryable func", func(t *testing.T) {
		cfg := fastConfig()
		cfg.RetryableFunc = func(err error) bool { return err.Error() != "fatal" }
		r := New(cfg, logger.NewNopLogger())
		calls := 0
		err := r.Execute(context.Background(), func(ctx context.Context) error {
			calls++
			return errors.New("fatal")
		})
		assert.EqualError(t, err, "fatal")
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		r := New(fastConfig(), logger.NewNopLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := r.Execute(ctx, func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBackoff(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2}, logger.NewNopLogger())

	assert.Equal(t, 100*time.Millisecond, r.Backoff(0))
	assert.Equal(t, 200*time.Millisecond, r.Backoff(1))
	assert.Equal(t, 800*time.Millisecond, r.Backoff(3))
	assert.Equal(t, time.Second, r.Backoff(10))

	jittered := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2, Jitter: true}, logger.NewNopLogger())
	d := jittered.Backoff(0)
	assert.GreaterOrEqual(t, d, 100*time.Millisecond)
	assert.LessOrEqual(t, d, 110*time.Millisecond)

	assert.Nil(t, Permanent(nil))
}

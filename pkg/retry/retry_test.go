package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	cfg := DefaultConfig()
	cfg.MaxAttempts = attempts
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 1*time.Second, cfg.InitialDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxDelay)
	assert.Equal(t, 2.0, cfg.Multiplier)
	assert.Empty(t, cfg.RetryableErrors)
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("success on first attempt", func(t *testing.T) {
		attempts := 0
		err := Do(ctx, fastConfig(3), func() error {
			attempts++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("success after retries", func(t *testing.T) {
		attempts := 0
		err := Do(ctx, fastConfig(3), func() error {
			attempts++
			if attempts < 3 {
				return errors.New("temporary error")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		attempts := 0
		err := Do(ctx, fastConfig(3), func() error {
			attempts++
			return errors.New("persistent error")
		})
		assert.EqualError(t, err, "persistent error")
		assert.Equal(t, 3, attempts)
	})

	t.Run("non retryable error stops immediately", func(t *testing.T) {
		cfg := fastConfig(5)
		cfg.RetryableErrors = []string{"connection refused"}
		attempts := 0
		err := Do(ctx, cfg, func() error {
			attempts++
			return errors.New("syntax error at or near")
		})
		assert.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("zero attempts is rejected", func(t *testing.T) {
		err := Do(ctx, Config{}, func() error { return nil })
		assert.ErrorContains(t, err, "MaxAttempts")
	})

	t.Run("on retry hook", func(t *testing.T) {
		cfg := fastConfig(3)
		var seen []int
		cfg.OnRetry = func(attempt int, _ time.Duration, err error) {
			seen = append(seen, attempt)
			assert.EqualError(t, err, "dial tcp: connection refused")
		}
		_ = Do(ctx, cfg, func() error { return errors.New("dial tcp: connection refused") })
		assert.Equal(t, []int{1, 2}, seen)
	})
}

func TestDo_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig(10)
	cfg.InitialDelay = 50 * time.Millisecond
	cfg.MaxDelay = 50 * time.Millisecond

	attempts := 0
	err := Do(ctx, cfg, func() error {
		attempts++
		cancel()
		return errors.New("error")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestDoWithResult(t *testing.T) {
	attempts := 0
	got, err := DoWithResult(context.Background(), fastConfig(3), func() (int, error) {
		attempts++
		if attempts == 1 {
			return 0, errors.New("connection reset by peer")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestBackoff(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2}

	assert.Equal(t, 100*time.Millisecond, Backoff(0, cfg))
	assert.Equal(t, 100*time.Millisecond, Backoff(1, cfg))
	assert.Equal(t, 200*time.Millisecond, Backoff(2, cfg))
	assert.Equal(t, 400*time.Millisecond, Backoff(3, cfg))
	assert.Equal(t, time.Second, Backoff(10, cfg))
}

func TestWithJitter(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := withJitter(time.Second)
		assert.GreaterOrEqual(t, d, 900*time.Millisecond)
		assert.LessOrEqual(t, d, 1100*time.Millisecond)
	}
	assert.Equal(t, time.Duration(0), withJitter(0))
}

func TestIsRetryable(t *testing.T) {
	cfg := PostgresConfig()

	assert.False(t, IsRetryable(nil, cfg))
	assert.True(t, IsRetryable(errors.New("dial tcp 10.0.0.1:5432: Connection Refused"), cfg))
	assert.True(t, IsRetryable(errors.New("FATAL: the database system is starting up"), cfg))
	assert.False(t, IsRetryable(errors.New("password authentication failed"), cfg))
	assert.True(t, IsRetryable(errors.New("anything"), DefaultConfig()))
}

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func testConfig() Config {
	return Config{
		Name:             "test",
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Cooldown:         50 * time.Millisecond,
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := b.Do(ctx, func() error { return errBoom })
		assert.ErrorIs(t, err, errBoom)
	}
	assert.Equal(t, Open, b.State())

	err := b.Do(ctx, func() error { return nil })
	assert.ErrorIs(t, err, ErrOpen)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_ = b.Do(ctx, func() error { return errBoom })
	}
	require.NoError(t, b.Do(ctx, func() error { return nil }))

	for i := 0; i < 2; i++ {
		_ = b.Do(ctx, func() error { return errBoom })
	}
	assert.Equal(t, Closed, b.State(), "failure streak was broken")
}

func TestBreaker_RecoversThroughHalfOpen(t *testing.T) {
	b := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = b.Do(ctx, func() error { return errBoom })
	}
	require.Equal(t, Open, b.State())

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, b.Do(ctx, func() error { return nil }))
	assert.Equal(t, HalfOpen, b.State())

	require.NoError(t, b.Do(ctx, func() error { return nil }))
	assert.Equal(t, Closed, b.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = b.Do(ctx, func() error { return errBoom })
	}
	time.Sleep(60 * time.Millisecond)

	_ = b.Do(ctx, func() error { return errBoom })
	assert.Equal(t, Open, b.State())
}

func TestBreaker_CancelledContext(t *testing.T) {
	b := New(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := b.Do(ctx, func() error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "half-open", HalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}

package searcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDeadline(t *testing.T) {
	t.Run("time above threshold", func(t *testing.T) {
		d := NewDeadline(context.Background(), func() time.Duration { return 50 * time.Millisecond }, 10*time.Millisecond)

		require.False(t, d.Exceeded())
		require.True(t, d.Remains())
		require.NoError(t, d.check())
	})

	t.Run("time below threshold", func(t *testing.T) {
		d := NewDeadline(context.Background(), func() time.Duration { return 5 * time.Millisecond }, 10*time.Millisecond)

		require.True(t, d.Exceeded())
		require.False(t, d.Remains())
		require.ErrorIs(t, d.check(), ErrTimeout)
	})

	t.Run("time exactly at threshold", func(t *testing.T) {
		d := NewDeadline(context.Background(), func() time.Duration { return 10 * time.Millisecond }, 10*time.Millisecond)

		require.False(t, d.Exceeded(), "Search may continue at the threshold")
		require.False(t, d.Remains(), "No new depth should start at the threshold")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		d := NewDeadline(ctx, func() time.Duration { return time.Hour }, time.Millisecond)
		require.False(t, d.Exceeded())

		cancel()

		require.True(t, d.Exceeded())
		require.False(t, d.Remains())
	})

	t.Run("no deadline", func(t *testing.T) {
		d := NoDeadline()

		require.False(t, d.Exceeded())
		require.True(t, d.Remains())
	})
}

func TestCountdown(t *testing.T) {
	timeLeft := Countdown(time.Hour)
	require.Greater(t, timeLeft(), 59*time.Minute)

	expired := Countdown(0)
	time.Sleep(time.Millisecond)
	require.Less(t, expired(), time.Duration(0))
}

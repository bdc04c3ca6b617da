package minesweeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerLifecycle(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	_, ok := timer.Elapsed()
	assert.False(t, ok, "stopped timer reports no elapsed time")
	assert.Equal(t, TimerStopped, timer.State())

	timer.Start()
	clock.Advance(1500 * time.Millisecond)
	d, ok := timer.Elapsed()
	require.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, d)

	timer.Stop()
	assert.Equal(t, TimerFrozen, timer.State())
	clock.Advance(time.Hour)
	d, ok = timer.Elapsed()
	require.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, d, "frozen timer must not advance")

	timer.Clear()
	_, ok = timer.Elapsed()
	assert.False(t, ok)
	assert.Equal(t, TimerStopped, timer.State())
}

func TestTimerStopWithoutStart(t *testing.T) {
	timer := NewTimer(newFakeClock())
	timer.Stop()
	d, ok := timer.Elapsed()
	require.True(t, ok)
	assert.Zero(t, d)
}

func TestTimerDefaultsToSystemClock(t *testing.T) {
	timer := NewTimer(nil)
	timer.Start()
	d, ok := timer.Elapsed()
	require.True(t, ok)
	assert.GreaterOrEqual(t, d, time.Duration(0))
}

package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, ticks <-chan time.Duration) []time.Duration {
	t.Helper()
	var got []time.Duration
	timeout := time.After(5 * time.Second)
	for {
		select {
		case d, ok := <-ticks:
			if !ok {
				return got
			}
			got = append(got, d)
		case <-timeout:
			t.Fatal("ticks channel was not closed")
			return got
		}
	}
}

func TestTimerCountsDownAndCompletes(t *testing.T) {
	completed := make(chan struct{})
	timer := NewPomodoroTimer(30*time.Millisecond, 10*time.Millisecond, func() { close(completed) })
	require.NoError(t, timer.Start())
	assert.ErrorIs(t, timer.Start(), ErrTimerStarted)

	got := drain(t, timer.Ticks())
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 10 * time.Millisecond, 0}, got)

	select {
	case <-completed:
	case <-time.After(time.Second):
		t.Fatal("completion callback did not run")
	}
	assert.Zero(t, timer.Remaining())
	assert.False(t, timer.Running())
}

func TestTimerPauseHoldsRemaining(t *testing.T) {
	timer := NewPomodoroTimer(time.Hour, 20*time.Millisecond, nil)
	require.NoError(t, timer.Start())
	timer.Pause()
	assert.False(t, timer.Running())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, time.Hour, timer.Remaining())

	timer.Resume()
	assert.True(t, timer.Running())
	assert.Eventually(t, func() bool { return timer.Remaining() < time.Hour }, 2*time.Second, 10*time.Millisecond)
	timer.Stop()
}

func TestTimerStopSkipsCompletion(t *testing.T) {
	called := false
	timer := NewPomodoroTimer(time.Hour, 10*time.Millisecond, func() { called = true })
	require.NoError(t, timer.Start())
	timer.Stop()

	drain(t, timer.Ticks())
	assert.False(t, called)
	assert.False(t, timer.Running())
	timer.Stop()
}

func TestTimerStopBeforeStart(t *testing.T) {
	timer := NewPomodoroTimer(time.Minute, time.Second, nil)
	timer.Stop()
	drain(t, timer.Ticks())
	assert.ErrorIs(t, timer.Start(), ErrTimerStarted)
	timer.Stop()
}

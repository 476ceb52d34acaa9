package client

import (
	"errors"
	"sync"
	"time"
)

// DefaultTickInterval is how often a running timer reports.
const DefaultTickInterval = time.Second

var ErrTimerStarted = errors.New("timer already started")

type timerState int

const (
	timerIdle timerState = iota
	timerRunning
	timerPaused
	timerDone
)

// PomodoroTimer counts a session down on a background goroutine. Each tick
// sends the remaining time on Ticks; ticks are dropped if nobody is reading.
// A timer runs once: Ticks is closed when it finishes or is stopped.
type PomodoroTimer struct {
	interval   time.Duration
	onComplete func()
	ticks      chan time.Duration

	mu        sync.Mutex
	state     timerState
	remaining time.Duration
	quit      chan struct{}
	done      chan struct{}
}

// NewPomodoroTimer makes a timer for duration. onComplete may be nil; it
// runs on the timer goroutine when the countdown reaches zero.
func NewPomodoroTimer(duration, interval time.Duration, onComplete func()) *PomodoroTimer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	buffered := int(duration/interval) + 1
	return &PomodoroTimer{
		interval:   interval,
		onComplete: onComplete,
		ticks:      make(chan time.Duration, buffered),
		remaining:  duration,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (t *PomodoroTimer) Ticks() <-chan time.Duration {
	return t.ticks
}

func (t *PomodoroTimer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *PomodoroTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == timerRunning
}

func (t *PomodoroTimer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != timerIdle {
		return ErrTimerStarted
	}
	t.state = timerRunning
	go t.run()
	return nil
}

// Pause freezes the countdown. It is a no-op unless the timer is running.
func (t *PomodoroTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == timerRunning {
		t.state = timerPaused
	}
}

func (t *PomodoroTimer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == timerPaused {
		t.state = timerRunning
	}
}

// Stop abandons the countdown without calling onComplete and waits for the
// goroutine to exit.
func (t *PomodoroTimer) Stop() {
	t.mu.Lock()
	switch t.state {
	case timerIdle:
		t.state = timerDone
		close(t.ticks)
		close(t.done)
		t.mu.Unlock()
		return
	case timerDone:
		t.mu.Unlock()
		<-t.done
		return
	}
	t.state = timerDone
	close(t.quit)
	t.mu.Unlock()
	<-t.done
}

func (t *PomodoroTimer) run() {
	defer close(t.done)
	defer close(t.ticks)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.quit:
			return
		case <-ticker.C:
		}

		t.mu.Lock()
		if t.state != timerRunning {
			t.mu.Unlock()
			continue
		}
		t.remaining -= t.interval
		if t.remaining < 0 {
			t.remaining = 0
		}
		left := t.remaining
		finished := left == 0
		if finished {
			t.state = timerDone
		}
		t.mu.Unlock()

		select {
		case t.ticks <- left:
		default:
		}
		if finished {
			if t.onComplete != nil {
				t.onComplete()
			}
			return
		}
	}
}

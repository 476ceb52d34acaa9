package scheduler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/cache"
	"planner/logging"
)

func TestScheduleIntervalRejectsNonPositive(t *testing.T) {
	s := New(nil)
	_, err := s.ScheduleInterval(0, func() {})
	assert.Error(t, err)
	_, err = s.ScheduleInterval(-time.Second, func() {})
	assert.Error(t, err)
	assert.Equal(t, 0, s.Entries())
}

func TestScheduleIntervalRegistersEntry(t *testing.T) {
	s := New(time.UTC)
	id, err := s.ScheduleInterval(500*time.Millisecond, func() {})
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, 1, s.Entries())
}

func TestPruneAllDropsExpiredEntries(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(log.New(&buf, "", 0))
	t.Cleanup(func() { logging.SetOutput(log.New(&bytes.Buffer{}, "", 0)) })

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	users := cache.NewTTL[string, int](time.Minute).WithClock(func() time.Time { return now })
	users.Set("a", 1)
	users.Set("b", 2)
	fresh := cache.NewTTL[string, int](time.Hour).WithClock(func() time.Time { return now })
	fresh.Set("c", 3)

	now = now.Add(2 * time.Minute)
	dropped := PruneAll(map[string]Pruner{"users": users, "dashboard": fresh})

	assert.Equal(t, 2, dropped)
	assert.Equal(t, 0, users.Len())
	assert.Equal(t, 1, fresh.Len())
	assert.Contains(t, buf.String(), "[cache_pruned] cache=users dropped=2")
	assert.NotContains(t, buf.String(), "cache=dashboard")
}

func TestStartStop(t *testing.T) {
	s := New(time.UTC)
	ran := make(chan struct{}, 1)
	_, err := s.ScheduleInterval(time.Second, func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	s.Start()
	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
	s.Stop()
}

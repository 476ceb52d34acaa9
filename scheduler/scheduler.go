// Package scheduler runs periodic housekeeping jobs on a cron runner.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"planner/logging"
)

// Pruner is anything that drops its own expired entries.
type Pruner interface {
	Prune() int
}

type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

// ScheduleInterval registers a job that runs every interval, rounded down to
// whole seconds with a one second floor.
func (s *Scheduler) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	return s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), job)
}

// PruneEvery schedules a sweep over the named caches.
func (s *Scheduler) PruneEvery(interval time.Duration, caches map[string]Pruner) (cron.EntryID, error) {
	return s.ScheduleInterval(interval, func() { PruneAll(caches) })
}

// PruneAll sweeps each cache once and logs the ones that dropped entries.
func PruneAll(caches map[string]Pruner) int {
	total := 0
	for name, c := range caches {
		n := c.Prune()
		if n > 0 {
			logging.Event("cache_pruned", "", map[string]interface{}{
				"cache":   name,
				"dropped": n,
			})
		}
		total += n
	}
	return total
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the runner and waits for running jobs to return.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

package services

import (
	"context"
	"time"

	"planner/cache"
	"planner/dto"
	"planner/model"
	"planner/store"
)

// DashboardTTL is how long a computed summary is served from cache.
const DashboardTTL = 30 * time.Second

// DashboardService summarizes the caller's data. Summaries are cached per
// user for DashboardTTL; New drops a user's entry whenever their tasks,
// projects, habits or sessions change.
type DashboardService struct {
	deps
	cache *cache.TTL[string, dto.DashboardSummary]
}

func NewDashboardService(s store.DocumentStore, summaries *cache.TTL[string, dto.DashboardSummary]) *DashboardService {
	return &DashboardService{deps: newDeps(s), cache: summaries}
}

func (s *DashboardService) Summary(ctx context.Context, userID string) (dto.DashboardSummary, error) {
	if cached, ok := s.cache.Get(userID); ok {
		return cached, nil
	}
	summary, err := s.compute(ctx, userID)
	if err != nil {
		return dto.DashboardSummary{}, err
	}
	s.cache.Set(userID, summary)
	return summary, nil
}

// Invalidate drops the cached summary for userID.
func (s *DashboardService) Invalidate(userID string) {
	s.cache.Delete(userID)
}

func (s *DashboardService) compute(ctx context.Context, userID string) (dto.DashboardSummary, error) {
	owner := store.Eq("userId", userID)
	now := s.timestamp()
	today := dayStart(now)
	tomorrow := today.AddDate(0, 0, 1)

	summary := dto.DashboardSummary{
		Tasks:       dto.TaskCounts{ByStatus: map[string]int{}},
		GeneratedAt: dto.FormatTime(now),
	}

	tasks, err := findRecords[model.Task](ctx, s.store, store.Tasks, owner)
	if err != nil {
		return summary, err
	}
	for _, t := range tasks {
		summary.Tasks.Total++
		summary.Tasks.ByStatus[string(t.Status)]++
		if t.DueDate == nil || t.Status == model.TaskDone {
			continue
		}
		due := t.DueDate.UTC()
		switch {
		case due.Before(today):
			summary.Tasks.Overdue++
		case due.Before(tomorrow):
			summary.Tasks.DueToday++
		}
	}

	projects, err := findRecords[model.Project](ctx, s.store, store.Projects, owner)
	if err != nil {
		return summary, err
	}
	for _, p := range projects {
		summary.Projects.Total++
		if p.Status == model.ProjectActive || p.Status == model.ProjectInProgress {
			summary.Projects.Active++
		}
	}

	habits, err := findRecords[model.Habit](ctx, s.store, store.Habits, owner)
	if err != nil {
		return summary, err
	}
	summary.Habits.Total = len(habits)
	if len(habits) > 0 {
		entries, err := findRecords[model.HabitEntry](ctx, s.store, store.HabitEntries,
			owner, store.Eq("date", today.Format(model.DateLayout)), store.Eq("completed", true))
		if err != nil {
			return summary, err
		}
		live := make(map[string]bool, len(habits))
		for _, h := range habits {
			live[h.ID] = true
		}
		for _, e := range entries {
			if live[e.HabitID] {
				summary.Habits.CompletedToday++
			}
		}
	}

	sessions, err := findRecords[model.PomodoroSession](ctx, s.store, store.PomodoroSessions, owner)
	if err != nil {
		return summary, err
	}
	stats := pomodoroStats(sessions, now)
	summary.Pomodoro.SessionsToday = stats.FocusSessions + stats.BreakSessions
	summary.Pomodoro.FocusMinutesToday = stats.FocusMinutes
	return summary, nil
}

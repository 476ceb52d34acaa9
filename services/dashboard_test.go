package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/dto"
)

func TestDashboardSummary(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	mk := func(title, status, due string) {
		req := dto.CreateTaskRequest{Title: title, Status: status}
		if due != "" {
			req.DueDate = &due
		}
		_, err := svc.Tasks.Create(ctx, alice.UserID, req)
		require.NoError(t, err)
	}
	mk("late", "TODO", "2026-03-01")
	mk("late but done", "DONE", "2026-03-01")
	mk("today", "IN_PROGRESS", "2026-03-10T18:00:00Z")
	mk("later", "TODO", "2026-04-01")

	_, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "p1"})
	require.NoError(t, err)
	_, err = svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "p2", Status: "ON_HOLD"})
	require.NoError(t, err)

	h, err := svc.Habits.Create(ctx, alice.UserID, dto.CreateHabitRequest{Name: "Run"})
	require.NoError(t, err)
	_, err = svc.Habits.Create(ctx, alice.UserID, dto.CreateHabitRequest{Name: "Read"})
	require.NoError(t, err)
	_, err = svc.Habits.RecordEntry(ctx, alice.UserID, h.ID, dto.HabitEntryRequest{Date: "2026-03-10"})
	require.NoError(t, err)

	_, err = svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{
		Type: "FOCUS", Duration: 25,
		StartTime: strPtr("2026-03-10T09:00:00Z"), EndTime: strPtr("2026-03-10T09:25:00Z"),
	})
	require.NoError(t, err)

	summary, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Tasks.Total)
	assert.Equal(t, map[string]int{"TODO": 2, "DONE": 1, "IN_PROGRESS": 1}, summary.Tasks.ByStatus)
	assert.Equal(t, 1, summary.Tasks.Overdue)
	assert.Equal(t, 1, summary.Tasks.DueToday)
	assert.Equal(t, dto.ProjectCounts{Total: 2, Active: 1}, summary.Projects)
	assert.Equal(t, dto.HabitCounts{Total: 2, CompletedToday: 1}, summary.Habits)
	assert.Equal(t, dto.PomodoroCounts{SessionsToday: 1, FocusMinutesToday: 25}, summary.Pomodoro)
	assert.Equal(t, "2026-03-10T15:00:00Z", summary.GeneratedAt)
}

func TestDashboardCacheWindow(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	first, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Tasks.Total)

	clock.Advance(10 * time.Second)
	cached, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	clock.Advance(DashboardTTL)
	fresh, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, first.GeneratedAt, fresh.GeneratedAt)
}

func TestDashboardRefreshesAfterWrites(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	first, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Tasks.Total)

	clock.Advance(5 * time.Second)
	task, err := svc.Tasks.Create(ctx, alice.UserID, dto.CreateTaskRequest{Title: "new"})
	require.NoError(t, err)
	afterCreate, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, afterCreate.Tasks.Total)

	// Another user's write leaves alice's cached summary alone.
	clock.Advance(5 * time.Second)
	_, err = svc.Tasks.Create(ctx, bob.UserID, dto.CreateTaskRequest{Title: "bob's"})
	require.NoError(t, err)
	unchanged, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, afterCreate, unchanged)

	clock.Advance(5 * time.Second)
	require.NoError(t, svc.Tasks.Delete(ctx, alice.UserID, task.ID))
	afterDelete, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, afterDelete.Tasks.Total)

	clock.Advance(5 * time.Second)
	_, err = svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "Launch"})
	require.NoError(t, err)
	afterProject, err := svc.Dashboard.Summary(ctx, alice.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, afterDelete.GeneratedAt, afterProject.GeneratedAt)

	svc.Dashboard.Invalidate(alice.UserID)
	_, ok := svc.DashboardCache.Get(alice.UserID)
	assert.False(t, ok)
}

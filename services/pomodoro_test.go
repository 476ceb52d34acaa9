package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/dto"
)

func TestPomodoroCreateDefaultsStartToNow(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	task, err := svc.Tasks.Create(ctx, alice.UserID, dto.CreateTaskRequest{Title: "Write report"})
	require.NoError(t, err)

	p, err := svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{Type: "FOCUS", Duration: 25, TaskID: &task.ID})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10T15:00:00Z", p.StartTime)
	assert.Nil(t, p.EndTime)
	require.NotNil(t, p.TaskTitle)
	assert.Equal(t, "Write report", *p.TaskTitle)
}

func TestPomodoroValidation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	_, err := svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{Type: "NAP", Duration: 25})
	requireIssue(t, err, "type")

	_, err = svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{Type: "FOCUS", Duration: 0})
	requireIssue(t, err, "duration")

	_, err = svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{
		Type: "FOCUS", Duration: 25,
		StartTime: strPtr("2026-03-10T10:00:00Z"),
		EndTime:   strPtr("2026-03-10T09:00:00Z"),
	})
	requireIssue(t, err, "endTime")

	p, err := svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{Type: "FOCUS", Duration: 25})
	require.NoError(t, err)
	_, err = svc.Pomodoro.Update(ctx, alice.UserID, p.ID, dto.UpdatePomodoroRequest{EndTime: strPtr("2026-03-10T14:00:00Z")})
	requireIssue(t, err, "endTime")
}

func TestPomodoroStatsAndOrder(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	finish := func(user, kind string, minutes int, start string) {
		p, err := svc.Pomodoro.Create(ctx, user, dto.CreatePomodoroRequest{Type: kind, Duration: minutes, StartTime: strPtr(start)})
		require.NoError(t, err)
		st, err := time.Parse(time.RFC3339, start)
		require.NoError(t, err)
		end := st.Add(time.Duration(minutes) * time.Minute).Format(time.RFC3339)
		_, err = svc.Pomodoro.Update(ctx, user, p.ID, dto.UpdatePomodoroRequest{EndTime: &end})
		require.NoError(t, err)
	}
	finish(alice.UserID, "FOCUS", 25, "2026-03-10T09:00:00Z")
	finish(alice.UserID, "SHORT_BREAK", 5, "2026-03-10T09:25:00Z")
	finish(alice.UserID, "FOCUS", 50, "2026-03-10T10:00:00Z")
	finish(alice.UserID, "FOCUS", 25, "2026-03-09T10:00:00Z")
	finish(bob.UserID, "FOCUS", 25, "2026-03-10T09:00:00Z")
	_, err := svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{Type: "FOCUS", Duration: 25})
	require.NoError(t, err)

	stats, err := svc.Pomodoro.Stats(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, dto.PomodoroStats{Date: "2026-03-10", FocusSessions: 2, FocusMinutes: 75, BreakSessions: 1}, stats)

	clock.Advance(time.Minute)
	list, err := svc.Pomodoro.List(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "2026-03-10T15:00:00Z", list[0].StartTime)
	assert.Equal(t, "2026-03-09T10:00:00Z", list[4].StartTime)
}

func TestPomodoroOwnership(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	bobTask, err := svc.Tasks.Create(ctx, bob.UserID, dto.CreateTaskRequest{Title: "bob's"})
	require.NoError(t, err)
	_, err = svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{Type: "FOCUS", Duration: 25, TaskID: &bobTask.ID})
	requireIssue(t, err, "taskId")

	p, err := svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{Type: "FOCUS", Duration: 25})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Pomodoro.Delete(ctx, bob.UserID, p.ID), ErrNotFound)
	require.NoError(t, svc.Pomodoro.Delete(ctx, alice.UserID, p.ID))
}

func TestPomodoroNonOwnerUpdateAndList(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	p, err := svc.Pomodoro.Create(ctx, alice.UserID, dto.CreatePomodoroRequest{Type: "FOCUS", Duration: 25})
	require.NoError(t, err)
	_, err = svc.Pomodoro.Create(ctx, bob.UserID, dto.CreatePomodoroRequest{Type: "SHORT_BREAK", Duration: 5})
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = svc.Pomodoro.Update(ctx, bob.UserID, p.ID, dto.UpdatePomodoroRequest{Duration: intPtr(50), Type: strPtr("LONG_BREAK")})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Pomodoro.Get(ctx, alice.UserID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	list, err := svc.Pomodoro.List(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
	assert.Equal(t, alice.UserID, list[0].UserID)
}

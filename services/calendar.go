package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"planner/dto"
	"planner/model"
	"planner/store"
)

const (
	defaultEventColor = "#6b7280"
	habitEventColor   = "#8b5cf6"
	eventTextColor    = "#ffffff"

	// habitWindowDays is how many trailing days of habit completions the
	// calendar shows, today included.
	habitWindowDays = 30
)

var taskStatusColors = map[model.TaskStatus]string{
	model.TaskTodo:       "#6b7280",
	model.TaskInProgress: "#3b82f6",
	model.TaskReview:     "#f59e0b",
	model.TaskDone:       "#10b981",
}

var projectStatusColors = map[model.ProjectStatus]string{
	model.ProjectActive:     "#3b82f6",
	model.ProjectPlanning:   "#8b5cf6",
	model.ProjectInProgress: "#f59e0b",
	model.ProjectOnHold:     "#6b7280",
	model.ProjectCompleted:  "#10b981",
}

var sessionTypeColors = map[model.SessionType]string{
	model.Focus:      "#ef4444",
	model.ShortBreak: "#10b981",
	model.LongBreak:  "#3b82f6",
}

var sessionTitles = map[model.SessionType]string{
	model.Focus:      "Focus session",
	model.ShortBreak: "Short break",
	model.LongBreak:  "Long break",
}

func colorFor[K comparable](palette map[K]string, key K) string {
	if c, ok := palette[key]; ok {
		return c
	}
	return defaultEventColor
}

func newEvent(id, title, start, color, kind string, allDay bool) dto.CalendarEvent {
	return dto.CalendarEvent{
		ID:              id,
		Title:           title,
		Start:           start,
		AllDay:          allDay,
		BackgroundColor: color,
		BorderColor:     color,
		TextColor:       eventTextColor,
		Type:            kind,
		ExtendedProps:   map[string]any{"type": kind},
	}
}

// CalendarService projects tasks, projects, habits and pomodoro sessions
// into calendar events. Nothing is stored.
type CalendarService struct {
	deps
}

func NewCalendarService(s store.DocumentStore) *CalendarService {
	return &CalendarService{deps: newDeps(s)}
}

func (s *CalendarService) Events(ctx context.Context, userID string) ([]dto.CalendarEvent, error) {
	owner := store.Eq("userId", userID)
	var events []dto.CalendarEvent

	tasks, err := findRecords[model.Task](ctx, s.store, store.Tasks, owner)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		ev := newEvent("task-"+t.ID, t.Title, dto.FormatTime(*t.DueDate), colorFor(taskStatusColors, t.Status), "task", true)
		ev.ExtendedProps["taskId"] = t.ID
		ev.ExtendedProps["status"] = string(t.Status)
		ev.ExtendedProps["priority"] = string(t.Priority)
		ev.ExtendedProps["severity"] = string(t.Severity)
		ev.ExtendedProps["projectId"] = t.ProjectID
		events = append(events, ev)
	}

	projects, err := findRecords[model.Project](ctx, s.store, store.Projects, owner)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.DueDate == nil {
			continue
		}
		ev := newEvent("project-"+p.ID, p.Name, dto.FormatTime(*p.DueDate), colorFor(projectStatusColors, p.Status), "project", true)
		ev.ExtendedProps["projectId"] = p.ID
		ev.ExtendedProps["status"] = string(p.Status)
		ev.ExtendedProps["description"] = p.Description
		events = append(events, ev)
	}

	habitEvents, err := s.habitEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	events = append(events, habitEvents...)

	sessions, err := findRecords[model.PomodoroSession](ctx, s.store, store.PomodoroSessions, owner)
	if err != nil {
		return nil, err
	}
	for _, p := range sessions {
		if p.EndTime == nil {
			continue
		}
		title, ok := sessionTitles[p.Type]
		if !ok {
			title = "Pomodoro"
		}
		ev := newEvent("pomodoro-"+p.ID, title, dto.FormatTime(p.StartTime), colorFor(sessionTypeColors, p.Type), "pomodoro", false)
		ev.End = dto.FormatTimePtr(p.EndTime)
		ev.ExtendedProps["sessionId"] = p.ID
		ev.ExtendedProps["sessionType"] = string(p.Type)
		ev.ExtendedProps["duration"] = p.Duration
		ev.ExtendedProps["taskId"] = p.TaskID
		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Start != events[j].Start {
			return events[i].Start < events[j].Start
		}
		return events[i].ID < events[j].ID
	})
	if events == nil {
		events = []dto.CalendarEvent{}
	}
	return events, nil
}

type habitRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// habitEvents merges completions in the trailing window into one all-day
// event per date.
func (s *CalendarService) habitEvents(ctx context.Context, userID string) ([]dto.CalendarEvent, error) {
	habits, err := findRecords[model.Habit](ctx, s.store, store.Habits, store.Eq("userId", userID))
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return nil, nil
	}
	byID := make(map[string]*model.Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}

	entries, err := findRecords[model.HabitEntry](ctx, s.store, store.HabitEntries,
		store.Eq("userId", userID), store.Eq("completed", true))
	if err != nil {
		return nil, err
	}

	today := dayStart(s.timestamp())
	from := today.AddDate(0, 0, -(habitWindowDays - 1)).Format(model.DateLayout)
	to := today.Format(model.DateLayout)

	byDate := map[string][]habitRef{}
	for _, e := range entries {
		h, ok := byID[e.HabitID]
		if !ok || e.Date < from || e.Date > to {
			continue
		}
		byDate[e.Date] = append(byDate[e.Date], habitRef{ID: h.ID, Name: h.Name, Color: h.Color})
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	events := make([]dto.CalendarEvent, 0, len(dates))
	for _, date := range dates {
		refs := byDate[date]
		sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
		names := make([]string, len(refs))
		for i, r := range refs {
			names[i] = r.Name
		}
		title := fmt.Sprintf("%d habit", len(refs))
		if len(refs) != 1 {
			title += "s"
		}
		title += " done: " + strings.Join(names, ", ")

		ev := newEvent("habits-"+date, title, date, habitEventColor, "habit", true)
		ev.ExtendedProps["date"] = date
		ev.ExtendedProps["habits"] = refs
		ev.ExtendedProps["count"] = len(refs)
		events = append(events, ev)
	}
	return events, nil
}

package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"planner/dto"
	"planner/model"
	"planner/store"
)

type HabitService struct {
	deps
}

func NewHabitService(s store.DocumentStore) *HabitService {
	return &HabitService{deps: newDeps(s)}
}

func (s *HabitService) owned(ctx context.Context, userID, id string) (*model.Habit, error) {
	h, err := getRecord[model.Habit](ctx, s.store, store.Habits, id)
	if err != nil {
		return nil, err
	}
	if h.UserID != userID {
		return nil, ErrNotFound
	}
	return h, nil
}

func (s *HabitService) today() string {
	return s.timestamp().Format(model.DateLayout)
}

func (s *HabitService) entries(ctx context.Context, userID, habitID string) ([]*model.HabitEntry, error) {
	return findRecords[model.HabitEntry](ctx, s.store, store.HabitEntries,
		store.Eq("habitId", habitID), store.Eq("userId", userID))
}

func (s *HabitService) respond(ctx context.Context, h *model.Habit) (dto.HabitResponse, error) {
	entries, err := s.entries(ctx, h.UserID, h.ID)
	if err != nil {
		return dto.HabitResponse{}, err
	}
	today := s.today()
	var dates []string
	completedToday := false
	for _, e := range entries {
		if !e.Completed {
			continue
		}
		dates = append(dates, e.Date)
		if e.Date == today {
			completedToday = true
		}
	}
	streak := currentStreak(h.Frequency, h.Target, dates, s.timestamp())
	return dto.NewHabitResponse(h, completedToday, streak), nil
}

// periodStart maps a day onto the first day of its period: the day itself,
// the Monday of its week, or the first of its month.
func periodStart(freq model.Frequency, day time.Time) time.Time {
	switch freq {
	case model.Weekly:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case model.Monthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return day
}

func previousPeriod(freq model.Frequency, start time.Time) time.Time {
	switch freq {
	case model.Weekly:
		return start.AddDate(0, 0, -7)
	case model.Monthly:
		return start.AddDate(0, -1, 0)
	}
	return start.AddDate(0, 0, -1)
}

// currentStreak counts consecutive satisfied periods ending at now. A period
// is satisfied when it holds at least target completed days. The current
// period only counts once it is satisfied, so an unfinished today does not
// break yesterday's streak.
func currentStreak(freq model.Frequency, target int, completedDates []string, now time.Time) int {
	if target < 1 {
		target = 1
	}
	counts := map[string]int{}
	key := func(t time.Time) string { return t.Format(model.DateLayout) }
	for _, d := range completedDates {
		day, err := time.Parse(model.DateLayout, d)
		if err != nil {
			continue
		}
		counts[key(periodStart(freq, day))]++
	}

	today := dayStart(now.UTC())
	period := periodStart(freq, today)
	if counts[key(period)] < target {
		period = previousPeriod(freq, period)
	}
	streak := 0
	for counts[key(period)] >= target {
		streak++
		period = previousPeriod(freq, period)
	}
	return streak
}

// List returns the caller's habits in creation order with today's status
// and the current streak.
func (s *HabitService) List(ctx context.Context, userID string) ([]dto.HabitResponse, error) {
	habits, err := findRecords[model.Habit](ctx, s.store, store.Habits, store.Eq("userId", userID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(habits, func(i, j int) bool { return habits[i].CreatedAt.Before(habits[j].CreatedAt) })

	out := make([]dto.HabitResponse, 0, len(habits))
	for _, h := range habits {
		resp, err := s.respond(ctx, h)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *HabitService) Get(ctx context.Context, userID, id string) (dto.HabitResponse, error) {
	h, err := s.owned(ctx, userID, id)
	if err != nil {
		return dto.HabitResponse{}, err
	}
	return s.respond(ctx, h)
}

func (s *HabitService) Create(ctx context.Context, userID string, req dto.CreateHabitRequest) (dto.HabitResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.HabitResponse{}, err
	}
	var is issues
	name := requireText(&is, "name", req.Name, 100)
	if err := is.err(); err != nil {
		return dto.HabitResponse{}, err
	}

	now := s.timestamp()
	h := &model.Habit{
		ID:          newID(),
		UserID:      userID,
		Name:        name,
		Description: req.Description,
		Frequency:   model.Daily,
		Target:      1,
		Color:       colorOrDefault(req.Color),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Frequency != "" {
		h.Frequency = model.Frequency(req.Frequency)
	}
	if req.Target > 0 {
		h.Target = req.Target
	}
	if err := s.store.Create(ctx, store.Habits, h.ID, h); err != nil {
		return dto.HabitResponse{}, err
	}
	s.touch(userID)
	return s.Get(ctx, userID, h.ID)
}

func (s *HabitService) Update(ctx context.Context, userID, id string, req dto.UpdateHabitRequest) (dto.HabitResponse, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return dto.HabitResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		return dto.HabitResponse{}, err
	}

	var is issues
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = requireText(&is, "name", *req.Name, 100)
	}
	if err := is.err(); err != nil {
		return dto.HabitResponse{}, err
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Frequency != nil {
		fields["frequency"] = *req.Frequency
	}
	if req.Target != nil {
		fields["target"] = *req.Target
	}
	if req.Color != nil {
		fields["color"] = colorOrDefault(*req.Color)
	}
	fields["updatedAt"] = s.timestamp()

	if err := updateRecord(ctx, s.store, store.Habits, id, fields); err != nil {
		return dto.HabitResponse{}, err
	}
	s.touch(userID)
	return s.Get(ctx, userID, id)
}

// Delete removes the habit. Its entries stay behind and are ignored.
func (s *HabitService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, store.Habits, id); err != nil {
		return err
	}
	s.touch(userID)
	return nil
}

// ListEntries returns a habit's entries within [from, to] by date, oldest
// first. Empty bounds are open.
func (s *HabitService) ListEntries(ctx context.Context, userID, habitID string, r dto.HabitEntryRange) ([]dto.HabitEntryResponse, error) {
	if _, err := s.owned(ctx, userID, habitID); err != nil {
		return nil, err
	}
	if err := validateRequest(r); err != nil {
		return nil, err
	}
	entries, err := s.entries(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	out := make([]dto.HabitEntryResponse, 0, len(entries))
	for _, e := range entries {
		if (r.From != "" && e.Date < r.From) || (r.To != "" && e.Date > r.To) {
			continue
		}
		out = append(out, dto.NewHabitEntryResponse(e))
	}
	return out, nil
}

func entryID(habitID, date string) string {
	return habitID + "_" + date
}

// RecordEntry creates or updates the single entry for (habit, date). The
// entry id is derived from both so repeated calls land on one document.
func (s *HabitService) RecordEntry(ctx context.Context, userID, habitID string, req dto.HabitEntryRequest) (dto.HabitEntryResponse, error) {
	if _, err := s.owned(ctx, userID, habitID); err != nil {
		return dto.HabitEntryResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		return dto.HabitEntryResponse{}, err
	}
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return dto.HabitEntryResponse{}, invalid("date", "must be a date in %s format", model.DateLayout)
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}
	value := 0
	if completed {
		value = 1
	}
	if req.Value != nil {
		value = *req.Value
	}

	id := entryID(habitID, req.Date)
	now := s.timestamp()
	entry := &model.HabitEntry{
		ID:        id,
		UserID:    userID,
		HabitID:   habitID,
		Date:      req.Date,
		Completed: completed,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.store.Create(ctx, store.HabitEntries, id, entry)
	if errors.Is(err, store.ErrAlreadyExists) {
		err = updateRecord(ctx, s.store, store.HabitEntries, id, map[string]any{
			"completed": completed,
			"value":     value,
			"updatedAt": now,
		})
	}
	if err != nil {
		return dto.HabitEntryResponse{}, err
	}
	s.touch(userID)

	saved, err := getRecord[model.HabitEntry](ctx, s.store, store.HabitEntries, id)
	if err != nil {
		return dto.HabitEntryResponse{}, err
	}
	return dto.NewHabitEntryResponse(saved), nil
}

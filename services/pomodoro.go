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

type PomodoroService struct {
	deps
}

func NewPomodoroService(s store.DocumentStore) *PomodoroService {
	return &PomodoroService{deps: newDeps(s)}
}

func (s *PomodoroService) owned(ctx context.Context, userID, id string) (*model.PomodoroSession, error) {
	p, err := getRecord[model.PomodoroSession](ctx, s.store, store.PomodoroSessions, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotFound
	}
	return p, nil
}

// taskTitle returns the title of an owned task, or nil.
func (s *PomodoroService) taskTitle(ctx context.Context, userID string, taskID *string) (*string, error) {
	if taskID == nil {
		return nil, nil
	}
	t, err := getRecord[model.Task](ctx, s.store, store.Tasks, *taskID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, nil
	}
	return &t.Title, nil
}

func (s *PomodoroService) checkTask(ctx context.Context, userID string, taskID *string) error {
	if taskID == nil {
		return nil
	}
	t, err := getRecord[model.Task](ctx, s.store, store.Tasks, *taskID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if err != nil || t.UserID != userID {
		return missingRef("taskId")
	}
	return nil
}

func (s *PomodoroService) respond(ctx context.Context, p *model.PomodoroSession) (dto.PomodoroResponse, error) {
	title, err := s.taskTitle(ctx, p.UserID, p.TaskID)
	if err != nil {
		return dto.PomodoroResponse{}, err
	}
	return dto.NewPomodoroResponse(p, title), nil
}

func (s *PomodoroService) sessions(ctx context.Context, userID string) ([]*model.PomodoroSession, error) {
	sessions, err := findRecords[model.PomodoroSession](ctx, s.store, store.PomodoroSessions, store.Eq("userId", userID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].StartTime.After(sessions[j].StartTime) })
	return sessions, nil
}

// List returns the caller's sessions, newest first.
func (s *PomodoroService) List(ctx context.Context, userID string) ([]dto.PomodoroResponse, error) {
	sessions, err := s.sessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PomodoroResponse, 0, len(sessions))
	for _, p := range sessions {
		resp, err := s.respond(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *PomodoroService) Get(ctx context.Context, userID, id string) (dto.PomodoroResponse, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return dto.PomodoroResponse{}, err
	}
	return s.respond(ctx, p)
}

func checkInterval(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return invalid("endTime", "must not be before startTime")
	}
	return nil
}

func (s *PomodoroService) Create(ctx context.Context, userID string, req dto.CreatePomodoroRequest) (dto.PomodoroResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.PomodoroResponse{}, err
	}
	now := s.timestamp()
	start, err := optionalTime("startTime", req.StartTime)
	if err != nil {
		return dto.PomodoroResponse{}, err
	}
	if start == nil {
		start = &now
	}
	end, err := optionalTime("endTime", req.EndTime)
	if err != nil {
		return dto.PomodoroResponse{}, err
	}
	if err := checkInterval(*start, end); err != nil {
		return dto.PomodoroResponse{}, err
	}
	taskID := ref(req.TaskID)
	if err := s.checkTask(ctx, userID, taskID); err != nil {
		return dto.PomodoroResponse{}, err
	}

	p := &model.PomodoroSession{
		ID:        newID(),
		UserID:    userID,
		TaskID:    taskID,
		Duration:  req.Duration,
		Type:      model.SessionType(req.Type),
		StartTime: *start,
		EndTime:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, store.PomodoroSessions, p.ID, p); err != nil {
		return dto.PomodoroResponse{}, err
	}
	s.touch(userID)
	return s.Get(ctx, userID, p.ID)
}

func (s *PomodoroService) Update(ctx context.Context, userID, id string, req dto.UpdatePomodoroRequest) (dto.PomodoroResponse, error) {
	existing, err := s.owned(ctx, userID, id)
	if err != nil {
		return dto.PomodoroResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		return dto.PomodoroResponse{}, err
	}

	fields := map[string]any{}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	start, end := existing.StartTime, existing.EndTime
	if req.StartTime != nil {
		t, err := dto.ParseTime(*req.StartTime)
		if err != nil {
			return dto.PomodoroResponse{}, invalid("startTime", "must be an ISO-8601 date-time")
		}
		start = t
		fields["startTime"] = t
	}
	if req.EndTime != nil {
		if end, err = optionalTime("endTime", req.EndTime); err != nil {
			return dto.PomodoroResponse{}, err
		}
		fields["endTime"] = end
	}
	if err := checkInterval(start, end); err != nil {
		return dto.PomodoroResponse{}, err
	}
	if req.TaskID != nil {
		taskID := ref(req.TaskID)
		if err := s.checkTask(ctx, userID, taskID); err != nil {
			return dto.PomodoroResponse{}, err
		}
		fields["taskId"] = taskID
	}
	fields["updatedAt"] = s.timestamp()

	if err := updateRecord(ctx, s.store, store.PomodoroSessions, id, fields); err != nil {
		return dto.PomodoroResponse{}, err
	}
	s.touch(userID)
	return s.Get(ctx, userID, id)
}

func (s *PomodoroService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, store.PomodoroSessions, id); err != nil {
		return err
	}
	s.touch(userID)
	return nil
}

// Stats counts today's finished sessions. A session belongs to the UTC day
// it started on and is finished once it has an end time.
func (s *PomodoroService) Stats(ctx context.Context, userID string) (dto.PomodoroStats, error) {
	sessions, err := s.sessions(ctx, userID)
	if err != nil {
		return dto.PomodoroStats{}, err
	}
	return pomodoroStats(sessions, s.timestamp()), nil
}

func pomodoroStats(sessions []*model.PomodoroSession, now time.Time) dto.PomodoroStats {
	today := dayStart(now.UTC())
	tomorrow := today.AddDate(0, 0, 1)
	stats := dto.PomodoroStats{Date: today.Format(model.DateLayout)}
	for _, p := range sessions {
		start := p.StartTime.UTC()
		if p.EndTime == nil || start.Before(today) || !start.Before(tomorrow) {
			continue
		}
		if p.Type == model.Focus {
			stats.FocusSessions++
			stats.FocusMinutes += p.Duration
		} else {
			stats.BreakSessions++
		}
	}
	return stats
}

package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"planner/dto"
	"planner/model"
	"planner/store"
)

type TaskService struct {
	deps
}

func NewTaskService(s store.DocumentStore) *TaskService {
	return &TaskService{deps: newDeps(s)}
}

func (s *TaskService) owned(ctx context.Context, userID, id string) (*model.Task, error) {
	t, err := getRecord[model.Task](ctx, s.store, store.Tasks, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, ErrNotFound
	}
	return t, nil
}

// projectNames resolves project display names, one lookup per distinct id.
type projectNames struct {
	store  store.DocumentStore
	userID string
	cache  map[string]*string
}

func newProjectNames(s store.DocumentStore, userID string) *projectNames {
	return &projectNames{store: s, userID: userID, cache: map[string]*string{}}
}

func (n *projectNames) lookup(ctx context.Context, projectID *string) (*string, error) {
	if projectID == nil {
		return nil, nil
	}
	if name, ok := n.cache[*projectID]; ok {
		return name, nil
	}
	var name *string
	p, err := getRecord[model.Project](ctx, n.store, store.Projects, *projectID)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return nil, err
	case p.UserID == n.userID:
		name = &p.Name
	}
	n.cache[*projectID] = name
	return name, nil
}

// ownedProject loads a project the caller owns; other users' projects are
// ErrNotFound.
func ownedProject(ctx context.Context, s store.DocumentStore, userID, id string) (*model.Project, error) {
	p, err := getRecord[model.Project](ctx, s, store.Projects, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotFound
	}
	return p, nil
}

// checkProject verifies that an optional project reference is one of the
// caller's projects.
func checkProject(ctx context.Context, s store.DocumentStore, userID string, projectID *string) error {
	if projectID == nil {
		return nil
	}
	_, err := ownedProject(ctx, s, userID, *projectID)
	if errors.Is(err, ErrNotFound) {
		return missingRef("projectId")
	}
	return err
}

// checkParent verifies the parent is one of the caller's tasks and that
// following parents up from it never reaches taskID.
func (s *TaskService) checkParent(ctx context.Context, userID, taskID string, parentID *string) error {
	if parentID == nil {
		return nil
	}
	if *parentID == taskID {
		return invalid("parentId", "a task cannot be its own parent")
	}
	parent, err := s.owned(ctx, userID, *parentID)
	if errors.Is(err, ErrNotFound) {
		return missingRef("parentId")
	}
	if err != nil {
		return err
	}

	seen := map[string]bool{parent.ID: true}
	for next := parent.ParentID; next != nil; {
		if *next == taskID {
			return invalid("parentId", "would make the task its own ancestor")
		}
		if seen[*next] {
			break
		}
		seen[*next] = true
		ancestor, err := s.owned(ctx, userID, *next)
		if errors.Is(err, ErrNotFound) {
			break
		}
		if err != nil {
			return err
		}
		next = ancestor.ParentID
	}
	return nil
}

// checkColumn verifies that a column exists and, when project-scoped, that
// the caller owns its project.
func checkColumn(ctx context.Context, s store.DocumentStore, userID string, columnID *string) error {
	if columnID == nil {
		return nil
	}
	col, err := getRecord[model.KanbanColumn](ctx, s, store.KanbanColumns, *columnID)
	if errors.Is(err, ErrNotFound) {
		return missingRef("kanbanColumnId")
	}
	if err != nil {
		return err
	}
	if col.ProjectID == nil {
		return nil
	}
	_, err = ownedProject(ctx, s, userID, *col.ProjectID)
	if errors.Is(err, ErrNotFound) {
		return missingRef("kanbanColumnId")
	}
	return err
}

// List returns the caller's tasks, newest first. projectID and status
// narrow the result when non-empty.
func (s *TaskService) List(ctx context.Context, userID string, filter dto.TaskFilter) ([]dto.TaskResponse, error) {
	if err := validateRequest(filter); err != nil {
		return nil, err
	}
	filters := []store.Filter{store.Eq("userId", userID)}
	if id := strings.TrimSpace(filter.ProjectID); id != "" {
		filters = append(filters, store.Eq("projectId", id))
	}
	if filter.Status != "" {
		filters = append(filters, store.Eq("status", filter.Status))
	}

	tasks, err := findRecords[model.Task](ctx, s.store, store.Tasks, filters...)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].CreatedAt.After(tasks[j].CreatedAt) })

	names := newProjectNames(s.store, userID)
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		name, err := names.lookup(ctx, t.ProjectID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.NewTaskResponse(t, name))
	}
	return out, nil
}

func (s *TaskService) Get(ctx context.Context, userID, id string) (dto.TaskResponse, error) {
	t, err := s.owned(ctx, userID, id)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	name, err := newProjectNames(s.store, userID).lookup(ctx, t.ProjectID)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	return dto.NewTaskResponse(t, name), nil
}

func (s *TaskService) Create(ctx context.Context, userID string, req dto.CreateTaskRequest) (dto.TaskResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.TaskResponse{}, err
	}
	var is issues
	title := requireText(&is, "title", req.Title, 200)
	if err := is.err(); err != nil {
		return dto.TaskResponse{}, err
	}
	dueDate, err := optionalTime("dueDate", req.DueDate)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	id := newID()
	projectID, parentID, columnID := ref(req.ProjectID), ref(req.ParentID), ref(req.KanbanColumnID)
	if err := checkProject(ctx, s.store, userID, projectID); err != nil {
		return dto.TaskResponse{}, err
	}
	if err := s.checkParent(ctx, userID, id, parentID); err != nil {
		return dto.TaskResponse{}, err
	}
	if err := checkColumn(ctx, s.store, userID, columnID); err != nil {
		return dto.TaskResponse{}, err
	}

	now := s.timestamp()
	t := &model.Task{
		ID:             id,
		UserID:         userID,
		ProjectID:      projectID,
		ParentID:       parentID,
		KanbanColumnID: columnID,
		Title:          title,
		Description:    req.Description,
		Status:         model.TaskTodo,
		Priority:       model.P2,
		Severity:       model.S2,
		DueDate:        dueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.Status != "" {
		t.Status = model.TaskStatus(req.Status)
	}
	if req.Priority != "" {
		t.Priority = model.Priority(req.Priority)
	}
	if req.Severity != "" {
		t.Severity = model.Severity(req.Severity)
	}
	if t.Status == model.TaskDone {
		t.CompletedAt = &now
	}

	if err := s.store.Create(ctx, store.Tasks, t.ID, t); err != nil {
		return dto.TaskResponse{}, err
	}
	s.touch(userID)
	return s.Get(ctx, userID, t.ID)
}

// Update patches a task. Moving into DONE stamps completedAt; moving out of
// DONE clears it.
func (s *TaskService) Update(ctx context.Context, userID, id string, req dto.UpdateTaskRequest) (dto.TaskResponse, error) {
	existing, err := s.owned(ctx, userID, id)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		return dto.TaskResponse{}, err
	}

	var is issues
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = requireText(&is, "title", *req.Title, 200)
	}
	if err := is.err(); err != nil {
		return dto.TaskResponse{}, err
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.Severity != nil {
		fields["severity"] = *req.Severity
	}
	if req.DueDate != nil {
		dueDate, err := optionalTime("dueDate", req.DueDate)
		if err != nil {
			return dto.TaskResponse{}, err
		}
		fields["dueDate"] = dueDate
	}
	if req.ProjectID != nil {
		projectID := ref(req.ProjectID)
		if err := checkProject(ctx, s.store, userID, projectID); err != nil {
			return dto.TaskResponse{}, err
		}
		fields["projectId"] = projectID
	}
	if req.ParentID != nil {
		parentID := ref(req.ParentID)
		if err := s.checkParent(ctx, userID, id, parentID); err != nil {
			return dto.TaskResponse{}, err
		}
		fields["parentId"] = parentID
	}
	if req.KanbanColumnID != nil {
		columnID := ref(req.KanbanColumnID)
		if err := checkColumn(ctx, s.store, userID, columnID); err != nil {
			return dto.TaskResponse{}, err
		}
		fields["kanbanColumnId"] = columnID
	}

	now := s.timestamp()
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		fields["status"] = *req.Status
		switch {
		case status == model.TaskDone && existing.Status != model.TaskDone:
			fields["completedAt"] = &now
		case status != model.TaskDone && existing.Status == model.TaskDone:
			fields["completedAt"] = (*time.Time)(nil)
		}
	}
	fields["updatedAt"] = now

	if err := updateRecord(ctx, s.store, store.Tasks, id, fields); err != nil {
		return dto.TaskResponse{}, err
	}
	s.touch(userID)
	return s.Get(ctx, userID, id)
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, store.Tasks, id); err != nil {
		return err
	}
	s.touch(userID)
	return nil
}

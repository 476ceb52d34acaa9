package services

import (
	"context"
	"errors"
	"sort"

	"planner/dto"
	"planner/model"
	"planner/store"
)

type ProjectService struct {
	deps
}

func NewProjectService(s store.DocumentStore) *ProjectService {
	return &ProjectService{deps: newDeps(s)}
}

func (s *ProjectService) owned(ctx context.Context, userID, id string) (*model.Project, error) {
	p, err := getRecord[model.Project](ctx, s.store, store.Projects, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotFound
	}
	return p, nil
}

// checkOrganization verifies that an optional organization reference
// belongs to the caller.
func (s *ProjectService) checkOrganization(ctx context.Context, userID string, orgID *string) error {
	if orgID == nil {
		return nil
	}
	org, err := getRecord[model.Organization](ctx, s.store, store.Organizations, *orgID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if err != nil || org.UserID != userID {
		return missingRef("organizationId")
	}
	return nil
}

func (s *ProjectService) organizationName(ctx context.Context, userID string, orgID *string) (*string, error) {
	if orgID == nil {
		return nil, nil
	}
	org, err := getRecord[model.Organization](ctx, s.store, store.Organizations, *orgID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if org.UserID != userID {
		return nil, nil
	}
	return &org.Name, nil
}

func (s *ProjectService) taskSummary(ctx context.Context, projectID string) (*dto.TaskSummary, error) {
	tasks, err := findRecords[model.Task](ctx, s.store, store.Tasks, store.Eq("projectId", projectID))
	if err != nil {
		return nil, err
	}
	summary := &dto.TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == model.TaskDone {
			summary.Completed++
		}
	}
	return summary, nil
}

func (s *ProjectService) respond(ctx context.Context, p *model.Project) (dto.ProjectResponse, error) {
	orgName, err := s.organizationName(ctx, p.UserID, p.OrganizationID)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	summary, err := s.taskSummary(ctx, p.ID)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	return dto.NewProjectResponse(p, orgName, summary), nil
}

// List returns the caller's projects, newest first, each with its
// organization name and task counts.
func (s *ProjectService) List(ctx context.Context, userID string) ([]dto.ProjectResponse, error) {
	projects, err := findRecords[model.Project](ctx, s.store, store.Projects, store.Eq("userId", userID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool { return projects[i].CreatedAt.After(projects[j].CreatedAt) })

	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp, err := s.respond(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *ProjectService) Get(ctx context.Context, userID, id string) (dto.ProjectResponse, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	return s.respond(ctx, p)
}

func (s *ProjectService) Create(ctx context.Context, userID string, req dto.CreateProjectRequest) (dto.ProjectResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.ProjectResponse{}, err
	}
	var is issues
	name := requireText(&is, "name", req.Name, 200)
	if err := is.err(); err != nil {
		return dto.ProjectResponse{}, err
	}
	dueDate, err := optionalTime("dueDate", req.DueDate)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	orgID := ref(req.OrganizationID)
	if err := s.checkOrganization(ctx, userID, orgID); err != nil {
		return dto.ProjectResponse{}, err
	}

	status := model.ProjectActive
	if req.Status != "" {
		status = model.ProjectStatus(req.Status)
	}

	now := s.timestamp()
	p := &model.Project{
		ID:             newID(),
		UserID:         userID,
		OrganizationID: orgID,
		Name:           name,
		Description:    req.Description,
		Status:         status,
		Color:          colorOrDefault(req.Color),
		DueDate:        dueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(ctx, store.Projects, p.ID, p); err != nil {
		return dto.ProjectResponse{}, err
	}
	s.touch(userID)
	return s.Get(ctx, userID, p.ID)
}

func (s *ProjectService) Update(ctx context.Context, userID, id string, req dto.UpdateProjectRequest) (dto.ProjectResponse, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return dto.ProjectResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		return dto.ProjectResponse{}, err
	}

	var is issues
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = requireText(&is, "name", *req.Name, 200)
	}
	if err := is.err(); err != nil {
		return dto.ProjectResponse{}, err
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Color != nil {
		fields["color"] = colorOrDefault(*req.Color)
	}
	if req.DueDate != nil {
		dueDate, err := optionalTime("dueDate", req.DueDate)
		if err != nil {
			return dto.ProjectResponse{}, err
		}
		fields["dueDate"] = dueDate
	}
	if req.OrganizationID != nil {
		orgID := ref(req.OrganizationID)
		if err := s.checkOrganization(ctx, userID, orgID); err != nil {
			return dto.ProjectResponse{}, err
		}
		fields["organizationId"] = orgID
	}
	fields["updatedAt"] = s.timestamp()

	if err := updateRecord(ctx, s.store, store.Projects, id, fields); err != nil {
		return dto.ProjectResponse{}, err
	}
	s.touch(userID)
	return s.Get(ctx, userID, id)
}

// Delete removes the project only; its tasks, notes and columns are left in
// place.
func (s *ProjectService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, store.Projects, id); err != nil {
		return err
	}
	s.touch(userID)
	return nil
}

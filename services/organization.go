package services

import (
	"context"
	"sort"

	"planner/dto"
	"planner/model"
	"planner/store"
)

type OrganizationService struct {
	deps
}

func NewOrganizationService(s store.DocumentStore) *OrganizationService {
	return &OrganizationService{deps: newDeps(s)}
}

func (s *OrganizationService) owned(ctx context.Context, userID, id string) (*model.Organization, error) {
	org, err := getRecord[model.Organization](ctx, s.store, store.Organizations, id)
	if err != nil {
		return nil, err
	}
	if org.UserID != userID {
		return nil, ErrNotFound
	}
	return org, nil
}

func (s *OrganizationService) projectCount(ctx context.Context, orgID string) (int, error) {
	docs, err := s.store.Find(ctx, store.Projects, store.Eq("organizationId", orgID))
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

func (s *OrganizationService) respond(ctx context.Context, org *model.Organization) (dto.OrganizationResponse, error) {
	n, err := s.projectCount(ctx, org.ID)
	if err != nil {
		return dto.OrganizationResponse{}, err
	}
	return dto.NewOrganizationResponse(org, n), nil
}

// List returns the caller's organizations, newest first.
func (s *OrganizationService) List(ctx context.Context, userID string) ([]dto.OrganizationResponse, error) {
	orgs, err := findRecords[model.Organization](ctx, s.store, store.Organizations, store.Eq("userId", userID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orgs, func(i, j int) bool { return orgs[i].CreatedAt.After(orgs[j].CreatedAt) })

	out := make([]dto.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		resp, err := s.respond(ctx, org)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *OrganizationService) Get(ctx context.Context, userID, id string) (dto.OrganizationResponse, error) {
	org, err := s.owned(ctx, userID, id)
	if err != nil {
		return dto.OrganizationResponse{}, err
	}
	return s.respond(ctx, org)
}

func (s *OrganizationService) Create(ctx context.Context, userID string, req dto.CreateOrganizationRequest) (dto.OrganizationResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.OrganizationResponse{}, err
	}
	var is issues
	name := requireText(&is, "name", req.Name, 100)
	if err := is.err(); err != nil {
		return dto.OrganizationResponse{}, err
	}

	now := s.timestamp()
	org := &model.Organization{
		ID:          newID(),
		UserID:      userID,
		Name:        name,
		Description: req.Description,
		Color:       colorOrDefault(req.Color),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Create(ctx, store.Organizations, org.ID, org); err != nil {
		return dto.OrganizationResponse{}, err
	}
	return s.Get(ctx, userID, org.ID)
}

func (s *OrganizationService) Update(ctx context.Context, userID, id string, req dto.UpdateOrganizationRequest) (dto.OrganizationResponse, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return dto.OrganizationResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		return dto.OrganizationResponse{}, err
	}

	var is issues
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = requireText(&is, "name", *req.Name, 100)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Color != nil {
		fields["color"] = colorOrDefault(*req.Color)
	}
	if err := is.err(); err != nil {
		return dto.OrganizationResponse{}, err
	}
	fields["updatedAt"] = s.timestamp()

	if err := updateRecord(ctx, s.store, store.Organizations, id, fields); err != nil {
		return dto.OrganizationResponse{}, err
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the organization only. Its projects keep a dangling
// organizationId.
func (s *OrganizationService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, store.Organizations, id)
}

package services

import (
	"context"
	"sort"

	"planner/dto"
	"planner/model"
	"planner/store"
)

type NoteService struct {
	deps
}

func NewNoteService(s store.DocumentStore) *NoteService {
	return &NoteService{deps: newDeps(s)}
}

func (s *NoteService) owned(ctx context.Context, userID, id string) (*model.Note, error) {
	n, err := getRecord[model.Note](ctx, s.store, store.Notes, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, ErrNotFound
	}
	return n, nil
}

// List returns the caller's notes, most recently edited first.
func (s *NoteService) List(ctx context.Context, userID string) ([]dto.NoteResponse, error) {
	notes, err := findRecords[model.Note](ctx, s.store, store.Notes, store.Eq("userId", userID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].UpdatedAt.After(notes[j].UpdatedAt) })

	names := newProjectNames(s.store, userID)
	out := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		name, err := names.lookup(ctx, n.ProjectID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.NewNoteResponse(n, name))
	}
	return out, nil
}

func (s *NoteService) Get(ctx context.Context, userID, id string) (dto.NoteResponse, error) {
	n, err := s.owned(ctx, userID, id)
	if err != nil {
		return dto.NoteResponse{}, err
	}
	name, err := newProjectNames(s.store, userID).lookup(ctx, n.ProjectID)
	if err != nil {
		return dto.NoteResponse{}, err
	}
	return dto.NewNoteResponse(n, name), nil
}

func (s *NoteService) Create(ctx context.Context, userID string, req dto.CreateNoteRequest) (dto.NoteResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.NoteResponse{}, err
	}
	var is issues
	title := requireText(&is, "title", req.Title, 200)
	if err := is.err(); err != nil {
		return dto.NoteResponse{}, err
	}
	projectID := ref(req.ProjectID)
	if err := checkProject(ctx, s.store, userID, projectID); err != nil {
		return dto.NoteResponse{}, err
	}

	now := s.timestamp()
	n := &model.Note{
		ID:        newID(),
		UserID:    userID,
		ProjectID: projectID,
		Title:     title,
		Content:   req.Content,
		Tags:      dto.JoinTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, store.Notes, n.ID, n); err != nil {
		return dto.NoteResponse{}, err
	}
	return s.Get(ctx, userID, n.ID)
}

func (s *NoteService) Update(ctx context.Context, userID, id string, req dto.UpdateNoteRequest) (dto.NoteResponse, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return dto.NoteResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		return dto.NoteResponse{}, err
	}

	var is issues
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = requireText(&is, "title", *req.Title, 200)
	}
	if err := is.err(); err != nil {
		return dto.NoteResponse{}, err
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Tags != nil {
		fields["tags"] = dto.JoinTags(*req.Tags)
	}
	if req.ProjectID != nil {
		projectID := ref(req.ProjectID)
		if err := checkProject(ctx, s.store, userID, projectID); err != nil {
			return dto.NoteResponse{}, err
		}
		fields["projectId"] = projectID
	}
	fields["updatedAt"] = s.timestamp()

	if err := updateRecord(ctx, s.store, store.Notes, id, fields); err != nil {
		return dto.NoteResponse{}, err
	}
	return s.Get(ctx, userID, id)
}

func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, store.Notes, id)
}

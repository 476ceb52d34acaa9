package services

import (
	"context"
	"sort"
	"strings"

	"planner/dto"
	"planner/model"
	"planner/store"
)

// KanbanService manages board columns. A column without a project is
// global and visible on every board; project columns are visible to the
// project's owner only.
type KanbanService struct {
	deps
}

func NewKanbanService(s store.DocumentStore) *KanbanService {
	return &KanbanService{deps: newDeps(s)}
}

// authorize allows changes to global columns and to columns of projects
// the caller owns. Any other column is reported as ErrNotFound.
func (s *KanbanService) authorize(ctx context.Context, userID string, col *model.KanbanColumn) error {
	if col.ProjectID == nil {
		return nil
	}
	_, err := ownedProject(ctx, s.store, userID, *col.ProjectID)
	return err
}

func (s *KanbanService) column(ctx context.Context, userID, id string) (*model.KanbanColumn, error) {
	col, err := getRecord[model.KanbanColumn](ctx, s.store, store.KanbanColumns, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, userID, col); err != nil {
		return nil, err
	}
	return col, nil
}

func sortColumns(cols []*model.KanbanColumn) {
	sort.Slice(cols, func(i, j int) bool {
		a, b := cols[i], cols[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func (s *KanbanService) visible(ctx context.Context, userID, projectID string) ([]*model.KanbanColumn, error) {
	cols, err := findRecords[model.KanbanColumn](ctx, s.store, store.KanbanColumns, store.Eq("projectId", nil))
	if err != nil {
		return nil, err
	}

	var projectIDs []string
	if projectID != "" {
		if _, err := ownedProject(ctx, s.store, userID, projectID); err != nil {
			return nil, err
		}
		projectIDs = []string{projectID}
	} else {
		projects, err := findRecords[model.Project](ctx, s.store, store.Projects, store.Eq("userId", userID))
		if err != nil {
			return nil, err
		}
		for _, p := range projects {
			projectIDs = append(projectIDs, p.ID)
		}
	}

	for _, id := range projectIDs {
		projectCols, err := findRecords[model.KanbanColumn](ctx, s.store, store.KanbanColumns, store.Eq("projectId", id))
		if err != nil {
			return nil, err
		}
		cols = append(cols, projectCols...)
	}
	sortColumns(cols)
	return cols, nil
}

// List returns global columns plus the caller's project columns ordered by
// order, then creation time, then id. A non-empty projectID narrows the
// project columns to that project.
func (s *KanbanService) List(ctx context.Context, userID, projectID string) ([]dto.ColumnResponse, error) {
	cols, err := s.visible(ctx, userID, strings.TrimSpace(projectID))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ColumnResponse, 0, len(cols))
	for _, c := range cols {
		out = append(out, dto.NewColumnResponse(c))
	}
	return out, nil
}

func (s *KanbanService) Get(ctx context.Context, userID, id string) (dto.ColumnResponse, error) {
	col, err := s.column(ctx, userID, id)
	if err != nil {
		return dto.ColumnResponse{}, err
	}
	return dto.NewColumnResponse(col), nil
}

// Create adds a column. Without an explicit order it goes after the last
// column on its own board: the global columns, or the project's columns.
func (s *KanbanService) Create(ctx context.Context, userID string, req dto.CreateColumnRequest) (dto.ColumnResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.ColumnResponse{}, err
	}
	var is issues
	name := requireText(&is, "name", req.Name, 100)
	if err := is.err(); err != nil {
		return dto.ColumnResponse{}, err
	}
	projectID := ref(req.ProjectID)
	if err := checkProject(ctx, s.store, userID, projectID); err != nil {
		return dto.ColumnResponse{}, err
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		existing, err := findRecords[model.KanbanColumn](ctx, s.store, store.KanbanColumns, store.Eq("projectId", projectID))
		if err != nil {
			return dto.ColumnResponse{}, err
		}
		for _, c := range existing {
			if c.Order >= order {
				order = c.Order + 1
			}
		}
	}

	now := s.timestamp()
	col := &model.KanbanColumn{
		ID:        newID(),
		ProjectID: projectID,
		Name:      name,
		Color:     colorOrDefault(req.Color),
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, store.KanbanColumns, col.ID, col); err != nil {
		return dto.ColumnResponse{}, err
	}
	return s.Get(ctx, userID, col.ID)
}

func (s *KanbanService) Update(ctx context.Context, userID, id string, req dto.UpdateColumnRequest) (dto.ColumnResponse, error) {
	if _, err := s.column(ctx, userID, id); err != nil {
		return dto.ColumnResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		return dto.ColumnResponse{}, err
	}

	var is issues
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = requireText(&is, "name", *req.Name, 100)
	}
	if err := is.err(); err != nil {
		return dto.ColumnResponse{}, err
	}
	if req.Color != nil {
		fields["color"] = colorOrDefault(*req.Color)
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	fields["updatedAt"] = s.timestamp()

	if err := updateRecord(ctx, s.store, store.KanbanColumns, id, fields); err != nil {
		return dto.ColumnResponse{}, err
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the column. Tasks pointing at it keep the stale id.
func (s *KanbanService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.column(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, store.KanbanColumns, id)
}

// Reorder sets each listed column's order to its index. Every column is
// checked before any is written.
func (s *KanbanService) Reorder(ctx context.Context, userID string, req dto.ReorderColumnsRequest) ([]dto.ColumnResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(req.ColumnIDs))
	cols := make([]*model.KanbanColumn, 0, len(req.ColumnIDs))
	for _, id := range req.ColumnIDs {
		if seen[id] {
			return nil, invalid("columnIds", "contains %s more than once", id)
		}
		seen[id] = true
		col, err := s.column(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	now := s.timestamp()
	out := make([]dto.ColumnResponse, 0, len(cols))
	for i, col := range cols {
		if err := updateRecord(ctx, s.store, store.KanbanColumns, col.ID, map[string]any{
			"order":     i,
			"updatedAt": now,
		}); err != nil {
			return nil, err
		}
		col.Order, col.UpdatedAt = i, now
		out = append(out, dto.NewColumnResponse(col))
	}
	return out, nil
}

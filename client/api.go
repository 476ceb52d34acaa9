package client

import (
	"context"
	"net/http"
	"net/url"

	"planner/dto"
)

// Signup registers a new account. It does not sign in.
func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) (dto.UserResponse, error) {
	return call[dto.UserResponse](ctx, c, http.MethodPost, "/api/auth/register", nil, req)
}

// Signin keeps the issued token for later calls.
func (c *Client) Signin(ctx context.Context, email, password string) (dto.SessionResponse, error) {
	session, err := call[dto.SessionResponse](ctx, c, http.MethodPost, "/api/auth/signin", nil, dto.SigninRequest{Email: email, Password: password})
	if err != nil {
		return session, err
	}
	c.SetToken(session.Token)
	return session, nil
}

func (c *Client) Signout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil, nil)
	c.SetToken("")
	return err
}

func (c *Client) Me(ctx context.Context) (dto.UserResponse, error) {
	return call[dto.UserResponse](ctx, c, http.MethodGet, "/api/auth/me", nil, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (dto.UserResponse, error) {
	return call[dto.UserResponse](ctx, c, http.MethodPut, "/api/user/profile", nil, req)
}

// Tasks

func (c *Client) ListTasks(ctx context.Context, filter dto.TaskFilter) ([]dto.TaskResponse, error) {
	q := url.Values{}
	if filter.ProjectID != "" {
		q.Set("projectId", filter.ProjectID)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	return call[[]dto.TaskResponse](ctx, c, http.MethodGet, "/api/tasks", q, nil)
}

func (c *Client) GetTask(ctx context.Context, id string) (dto.TaskResponse, error) {
	return call[dto.TaskResponse](ctx, c, http.MethodGet, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error) {
	return call[dto.TaskResponse](ctx, c, http.MethodPost, "/api/tasks", nil, req)
}

func (c *Client) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (dto.TaskResponse, error) {
	return call[dto.TaskResponse](ctx, c, http.MethodPut, "/api/tasks/"+url.PathEscape(id), nil, req)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil, nil)
}

// Projects

func (c *Client) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	return call[[]dto.ProjectResponse](ctx, c, http.MethodGet, "/api/projects", nil, nil)
}

func (c *Client) GetProject(ctx context.Context, id string) (dto.ProjectResponse, error) {
	return call[dto.ProjectResponse](ctx, c, http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (dto.ProjectResponse, error) {
	return call[dto.ProjectResponse](ctx, c, http.MethodPost, "/api/projects", nil, req)
}

func (c *Client) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (dto.ProjectResponse, error) {
	return call[dto.ProjectResponse](ctx, c, http.MethodPut, "/api/projects/"+url.PathEscape(id), nil, req)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, nil, nil)
}

// Organizations

func (c *Client) ListOrganizations(ctx context.Context) ([]dto.OrganizationResponse, error) {
	return call[[]dto.OrganizationResponse](ctx, c, http.MethodGet, "/api/organizations", nil, nil)
}

func (c *Client) GetOrganization(ctx context.Context, id string) (dto.OrganizationResponse, error) {
	return call[dto.OrganizationResponse](ctx, c, http.MethodGet, "/api/organizations/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest) (dto.OrganizationResponse, error) {
	return call[dto.OrganizationResponse](ctx, c, http.MethodPost, "/api/organizations", nil, req)
}

func (c *Client) UpdateOrganization(ctx context.Context, id string, req dto.UpdateOrganizationRequest) (dto.OrganizationResponse, error) {
	return call[dto.OrganizationResponse](ctx, c, http.MethodPut, "/api/organizations/"+url.PathEscape(id), nil, req)
}

func (c *Client) DeleteOrganization(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/organizations/"+url.PathEscape(id), nil, nil, nil)
}

// Notes

func (c *Client) ListNotes(ctx context.Context) ([]dto.NoteResponse, error) {
	return call[[]dto.NoteResponse](ctx, c, http.MethodGet, "/api/notes", nil, nil)
}

func (c *Client) GetNote(ctx context.Context, id string) (dto.NoteResponse, error) {
	return call[dto.NoteResponse](ctx, c, http.MethodGet, "/api/notes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateNote(ctx context.Context, req dto.CreateNoteRequest) (dto.NoteResponse, error) {
	return call[dto.NoteResponse](ctx, c, http.MethodPost, "/api/notes", nil, req)
}

func (c *Client) UpdateNote(ctx context.Context, id string, req dto.UpdateNoteRequest) (dto.NoteResponse, error) {
	return call[dto.NoteResponse](ctx, c, http.MethodPut, "/api/notes/"+url.PathEscape(id), nil, req)
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil, nil)
}

// Habits

func (c *Client) ListHabits(ctx context.Context) ([]dto.HabitResponse, error) {
	return call[[]dto.HabitResponse](ctx, c, http.MethodGet, "/api/habits", nil, nil)
}

func (c *Client) GetHabit(ctx context.Context, id string) (dto.HabitResponse, error) {
	return call[dto.HabitResponse](ctx, c, http.MethodGet, "/api/habits/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateHabit(ctx context.Context, req dto.CreateHabitRequest) (dto.HabitResponse, error) {
	return call[dto.HabitResponse](ctx, c, http.MethodPost, "/api/habits", nil, req)
}

func (c *Client) UpdateHabit(ctx context.Context, id string, req dto.UpdateHabitRequest) (dto.HabitResponse, error) {
	return call[dto.HabitResponse](ctx, c, http.MethodPut, "/api/habits/"+url.PathEscape(id), nil, req)
}

func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/habits/"+url.PathEscape(id), nil, nil, nil)
}

// ListHabitEntries returns entries between from and to (YYYY-MM-DD,
// inclusive); empty bounds are open.
func (c *Client) ListHabitEntries(ctx context.Context, habitID, from, to string) ([]dto.HabitEntryResponse, error) {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	return call[[]dto.HabitEntryResponse](ctx, c, http.MethodGet, "/api/habits/"+url.PathEscape(habitID)+"/entries", q, nil)
}

func (c *Client) RecordHabitEntry(ctx context.Context, habitID string, req dto.HabitEntryRequest) (dto.HabitEntryResponse, error) {
	return call[dto.HabitEntryResponse](ctx, c, http.MethodPost, "/api/habits/"+url.PathEscape(habitID)+"/entries", nil, req)
}

// Pomodoro

func (c *Client) ListPomodoroSessions(ctx context.Context) ([]dto.PomodoroResponse, error) {
	return call[[]dto.PomodoroResponse](ctx, c, http.MethodGet, "/api/pomodoro", nil, nil)
}

func (c *Client) CreatePomodoroSession(ctx context.Context, req dto.CreatePomodoroRequest) (dto.PomodoroResponse, error) {
	return call[dto.PomodoroResponse](ctx, c, http.MethodPost, "/api/pomodoro", nil, req)
}

func (c *Client) UpdatePomodoroSession(ctx context.Context, id string, req dto.UpdatePomodoroRequest) (dto.PomodoroResponse, error) {
	return call[dto.PomodoroResponse](ctx, c, http.MethodPut, "/api/pomodoro/"+url.PathEscape(id), nil, req)
}

func (c *Client) DeletePomodoroSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/pomodoro/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) PomodoroStats(ctx context.Context) (dto.PomodoroStats, error) {
	return call[dto.PomodoroStats](ctx, c, http.MethodGet, "/api/pomodoro/stats", nil, nil)
}

// Kanban columns

// ListColumns returns global columns plus the caller's project columns.
// A non-empty projectID narrows the list to that project and the globals.
func (c *Client) ListColumns(ctx context.Context, projectID string) ([]dto.ColumnResponse, error) {
	q := url.Values{}
	if projectID != "" {
		q.Set("projectId", projectID)
	}
	return call[[]dto.ColumnResponse](ctx, c, http.MethodGet, "/api/kanban/columns", q, nil)
}

func (c *Client) CreateColumn(ctx context.Context, req dto.CreateColumnRequest) (dto.ColumnResponse, error) {
	return call[dto.ColumnResponse](ctx, c, http.MethodPost, "/api/kanban/columns", nil, req)
}

func (c *Client) UpdateColumn(ctx context.Context, id string, req dto.UpdateColumnRequest) (dto.ColumnResponse, error) {
	return call[dto.ColumnResponse](ctx, c, http.MethodPut, "/api/kanban/columns/"+url.PathEscape(id), nil, req)
}

func (c *Client) DeleteColumn(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/kanban/columns/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ReorderColumns(ctx context.Context, columnIDs []string) ([]dto.ColumnResponse, error) {
	return call[[]dto.ColumnResponse](ctx, c, http.MethodPut, "/api/kanban/columns/reorder", nil, dto.ReorderColumnsRequest{ColumnIDs: columnIDs})
}

// Calendar and dashboard

func (c *Client) Calendar(ctx context.Context) ([]dto.CalendarEvent, error) {
	return call[[]dto.CalendarEvent](ctx, c, http.MethodGet, "/api/calendar", nil, nil)
}

func (c *Client) Dashboard(ctx context.Context) (dto.DashboardSummary, error) {
	return call[dto.DashboardSummary](ctx, c, http.MethodGet, "/api/dashboard", nil, nil)
}

package dto

import "planner/model"

type CreateProjectRequest struct {
	Name           string  `json:"name" binding:"required,max=200"`
	Description    string  `json:"description" binding:"max=5000"`
	Status         string  `json:"status" binding:"omitempty,oneof=ACTIVE PLANNING IN_PROGRESS ON_HOLD COMPLETED"`
	Color          string  `json:"color" binding:"omitempty,hexcolor"`
	DueDate        *string `json:"dueDate"`
	OrganizationID *string `json:"organizationId"`
}

// UpdateProjectRequest is a partial patch. An empty string clears
// dueDate or organizationId.
type UpdateProjectRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=5000"`
	Status         *string `json:"status" binding:"omitempty,oneof=ACTIVE PLANNING IN_PROGRESS ON_HOLD COMPLETED"`
	Color          *string `json:"color" binding:"omitempty,hexcolor"`
	DueDate        *string `json:"dueDate"`
	OrganizationID *string `json:"organizationId"`
}

type TaskSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type ProjectResponse struct {
	ID               string       `json:"id"`
	UserID           string       `json:"userId"`
	OrganizationID   *string      `json:"organizationId"`
	OrganizationName *string      `json:"organizationName"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Status           string       `json:"status"`
	Color            string       `json:"color"`
	DueDate          *string      `json:"dueDate"`
	Tasks            *TaskSummary `json:"tasks,omitempty"`
	CreatedAt        string       `json:"createdAt"`
	UpdatedAt        string       `json:"updatedAt"`
}

func NewProjectResponse(p *model.Project, organizationName *string, tasks *TaskSummary) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		OrganizationID:   p.OrganizationID,
		OrganizationName: organizationName,
		Name:             p.Name,
		Description:      p.Description,
		Status:           string(p.Status),
		Color:            p.Color,
		DueDate:          FormatTimePtr(p.DueDate),
		Tasks:            tasks,
		CreatedAt:        FormatTime(p.CreatedAt),
		UpdatedAt:        FormatTime(p.UpdatedAt),
	}
}

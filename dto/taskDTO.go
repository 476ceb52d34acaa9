package dto

import "planner/model"

type CreateTaskRequest struct {
	Title          string  `json:"title" binding:"required,max=200"`
	Description    string  `json:"description" binding:"max=5000"`
	Status         string  `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS REVIEW DONE"`
	Priority       string  `json:"priority" binding:"omitempty,oneof=P0 P1 P2 P3"`
	Severity       string  `json:"severity" binding:"omitempty,oneof=S0 S1 S2 S3"`
	DueDate        *string `json:"dueDate"`
	ProjectID      *string `json:"projectId"`
	ParentID       *string `json:"parentId"`
	KanbanColumnID *string `json:"kanbanColumnId"`
}

// UpdateTaskRequest is a partial patch. An empty string clears a nullable
// reference or the due date.
type UpdateTaskRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=5000"`
	Status         *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS REVIEW DONE"`
	Priority       *string `json:"priority" binding:"omitempty,oneof=P0 P1 P2 P3"`
	Severity       *string `json:"severity" binding:"omitempty,oneof=S0 S1 S2 S3"`
	DueDate        *string `json:"dueDate"`
	ProjectID      *string `json:"projectId"`
	ParentID       *string `json:"parentId"`
	KanbanColumnID *string `json:"kanbanColumnId"`
}

type TaskFilter struct {
	ProjectID string `form:"projectId"`
	Status    string `form:"status" binding:"omitempty,oneof=TODO IN_PROGRESS REVIEW DONE"`
}

type TaskResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	ProjectID      *string `json:"projectId"`
	ProjectName    *string `json:"projectName"`
	ParentID       *string `json:"parentId"`
	KanbanColumnID *string `json:"kanbanColumnId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	Severity       string  `json:"severity"`
	DueDate        *string `json:"dueDate"`
	CompletedAt    *string `json:"completedAt"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func NewTaskResponse(t *model.Task, projectName *string) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		UserID:         t.UserID,
		ProjectID:      t.ProjectID,
		ProjectName:    projectName,
		ParentID:       t.ParentID,
		KanbanColumnID: t.KanbanColumnID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		Severity:       string(t.Severity),
		DueDate:        FormatTimePtr(t.DueDate),
		CompletedAt:    FormatTimePtr(t.CompletedAt),
		CreatedAt:      FormatTime(t.CreatedAt),
		UpdatedAt:      FormatTime(t.UpdatedAt),
	}
}

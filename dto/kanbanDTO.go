package dto

import "planner/model"

type CreateColumnRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	Color     string  `json:"color" binding:"omitempty,hexcolor"`
	Order     *int    `json:"order" binding:"omitempty,min=0"`
	ProjectID *string `json:"projectId"`
}

type UpdateColumnRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
	Order *int    `json:"order" binding:"omitempty,min=0"`
}

type ReorderColumnsRequest struct {
	ColumnIDs []string `json:"columnIds" binding:"required,min=1,dive,required"`
}

type ColumnResponse struct {
	ID        string  `json:"id"`
	ProjectID *string `json:"projectId"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Order     int     `json:"order"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func NewColumnResponse(c *model.KanbanColumn) ColumnResponse {
	return ColumnResponse{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Name:      c.Name,
		Color:     c.Color,
		Order:     c.Order,
		CreatedAt: FormatTime(c.CreatedAt),
		UpdatedAt: FormatTime(c.UpdatedAt),
	}
}

package dto

import "planner/model"

type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateOrganizationRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
}

type OrganizationResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	ProjectCount int    `json:"projectCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func NewOrganizationResponse(o *model.Organization, projectCount int) OrganizationResponse {
	return OrganizationResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		Name:         o.Name,
		Description:  o.Description,
		Color:        o.Color,
		ProjectCount: projectCount,
		CreatedAt:    FormatTime(o.CreatedAt),
		UpdatedAt:    FormatTime(o.UpdatedAt),
	}
}

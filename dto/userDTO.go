package dto

import "planner/model"

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Password *string `json:"password"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: FormatTime(u.CreatedAt),
		UpdatedAt: FormatTime(u.UpdatedAt),
	}
}

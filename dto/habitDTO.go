package dto

import "planner/model"

type CreateHabitRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	Frequency   string `json:"frequency" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY"`
	Target      int    `json:"target" binding:"omitempty,min=1,max=1000"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateHabitRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Frequency   *string `json:"frequency" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY"`
	Target      *int    `json:"target" binding:"omitempty,min=1,max=1000"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
}

type HabitEntryRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Completed *bool  `json:"completed"`
	Value     *int   `json:"value" binding:"omitempty,min=0"`
}

type HabitEntryRange struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type HabitResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Frequency      string `json:"frequency"`
	Target         int    `json:"target"`
	Color          string `json:"color"`
	CompletedToday bool   `json:"completedToday"`
	CurrentStreak  int    `json:"currentStreak"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type HabitEntryResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	HabitID   string `json:"habitId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Value     int    `json:"value"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewHabitResponse(h *model.Habit, completedToday bool, streak int) HabitResponse {
	return HabitResponse{
		ID:             h.ID,
		UserID:         h.UserID,
		Name:           h.Name,
		Description:    h.Description,
		Frequency:      string(h.Frequency),
		Target:         h.Target,
		Color:          h.Color,
		CompletedToday: completedToday,
		CurrentStreak:  streak,
		CreatedAt:      FormatTime(h.CreatedAt),
		UpdatedAt:      FormatTime(h.UpdatedAt),
	}
}

func NewHabitEntryResponse(e *model.HabitEntry) HabitEntryResponse {
	return HabitEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		HabitID:   e.HabitID,
		Date:      e.Date,
		Completed: e.Completed,
		Value:     e.Value,
		CreatedAt: FormatTime(e.CreatedAt),
		UpdatedAt: FormatTime(e.UpdatedAt),
	}
}

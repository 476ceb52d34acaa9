package dto

import "planner/model"

type CreatePomodoroRequest struct {
	Type      string  `json:"type" binding:"required,oneof=FOCUS SHORT_BREAK LONG_BREAK"`
	Duration  int     `json:"duration" binding:"required,min=1,max=480"`
	TaskID    *string `json:"taskId"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// UpdatePomodoroRequest is a partial patch. An empty string clears taskId
// or endTime.
type UpdatePomodoroRequest struct {
	Type      *string `json:"type" binding:"omitempty,oneof=FOCUS SHORT_BREAK LONG_BREAK"`
	Duration  *int    `json:"duration" binding:"omitempty,min=1,max=480"`
	TaskID    *string `json:"taskId"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

type PomodoroResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	TaskID    *string `json:"taskId"`
	TaskTitle *string `json:"taskTitle"`
	Type      string  `json:"type"`
	Duration  int     `json:"duration"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type PomodoroStats struct {
	Date          string `json:"date"`
	FocusSessions int    `json:"focusSessions"`
	FocusMinutes  int    `json:"focusMinutes"`
	BreakSessions int    `json:"breakSessions"`
}

func NewPomodoroResponse(p *model.PomodoroSession, taskTitle *string) PomodoroResponse {
	return PomodoroResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		TaskID:    p.TaskID,
		TaskTitle: taskTitle,
		Type:      string(p.Type),
		Duration:  p.Duration,
		StartTime: FormatTime(p.StartTime),
		EndTime:   FormatTimePtr(p.EndTime),
		CreatedAt: FormatTime(p.CreatedAt),
		UpdatedAt: FormatTime(p.UpdatedAt),
	}
}

package dto

import (
	"encoding/json"
	"strings"

	"planner/model"
)

// Tags accepts either a JSON array of strings or one comma-separated string.
type Tags []string

func (t *Tags) UnmarshalJSON(b []byte) error {
	var joined string
	if err := json.Unmarshal(b, &joined); err == nil {
		*t = SplitTags(joined)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

type CreateNoteRequest struct {
	Title     string  `json:"title" binding:"required,max=200"`
	Content   string  `json:"content" binding:"max=50000"`
	Tags      Tags    `json:"tags" binding:"omitempty,max=50,dive,max=50"`
	ProjectID *string `json:"projectId"`
}

// UpdateNoteRequest is a partial patch. An empty projectId detaches the
// note from its project.
type UpdateNoteRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content   *string `json:"content" binding:"omitempty,max=50000"`
	Tags      *Tags   `json:"tags" binding:"omitempty,max=50,dive,max=50"`
	ProjectID *string `json:"projectId"`
}

type NoteResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	ProjectID   *string  `json:"projectId"`
	ProjectName *string  `json:"projectName"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// SplitTags parses the stored comma-joined form. Blank tags are dropped.
func SplitTags(joined string) []string {
	tags := []string{}
	for _, t := range strings.Split(joined, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags is the inverse of SplitTags.
func JoinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ", ")
}

func NewNoteResponse(n *model.Note, projectName *string) NoteResponse {
	return NoteResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		ProjectID:   n.ProjectID,
		ProjectName: projectName,
		Title:       n.Title,
		Content:     n.Content,
		Tags:        SplitTags(n.Tags),
		CreatedAt:   FormatTime(n.CreatedAt),
		UpdatedAt:   FormatTime(n.UpdatedAt),
	}
}

package model

import (
	"time"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return true
	}
	return false
}

// Priority runs from P0 (most urgent) to P3.
type Priority string

const (
	P0 Priority = "P0"
	P1 Priority = "P1"
	P2 Priority = "P2"
	P3 Priority = "P3"
)

func (p Priority) Valid() bool {
	switch p {
	case P0, P1, P2, P3:
		return true
	}
	return false
}

// Severity runs from S0 (critical) to S3.
type Severity string

const (
	S0 Severity = "S0"
	S1 Severity = "S1"
	S2 Severity = "S2"
	S3 Severity = "S3"
)

func (s Severity) Valid() bool {
	switch s {
	case S0, S1, S2, S3:
		return true
	}
	return false
}

type Task struct {
	ID             string     `firestore:"-" bson:"-" json:"-"`
	UserID         string     `firestore:"userId" bson:"userId" json:"userId"`
	ProjectID      *string    `firestore:"projectId" bson:"projectId" json:"projectId"`
	ParentID       *string    `firestore:"parentId" bson:"parentId" json:"parentId"`
	KanbanColumnID *string    `firestore:"kanbanColumnId" bson:"kanbanColumnId" json:"kanbanColumnId"`
	Title          string     `firestore:"title" bson:"title" json:"title"`
	Description    string     `firestore:"description" bson:"description" json:"description"`
	Status         TaskStatus `firestore:"status" bson:"status" json:"status"`
	Priority       Priority   `firestore:"priority" bson:"priority" json:"priority"`
	Severity       Severity   `firestore:"severity" bson:"severity" json:"severity"`
	DueDate        *time.Time `firestore:"dueDate" bson:"dueDate" json:"dueDate"`
	CompletedAt    *time.Time `firestore:"completedAt" bson:"completedAt" json:"completedAt"`
	CreatedAt      time.Time  `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

func (r *Task) SetID(id string) { r.ID = id }

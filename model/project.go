package model

import "time"

type ProjectStatus string

const (
	ProjectActive     ProjectStatus = "ACTIVE"
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
	ProjectCompleted  ProjectStatus = "COMPLETED"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPlanning, ProjectInProgress, ProjectOnHold, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	ID             string        `firestore:"-" bson:"-" json:"-"`
	UserID         string        `firestore:"userId" bson:"userId" json:"userId"`
	OrganizationID *string       `firestore:"organizationId" bson:"organizationId" json:"organizationId"`
	Name           string        `firestore:"name" bson:"name" json:"name"`
	Description    string        `firestore:"description" bson:"description" json:"description"`
	Status         ProjectStatus `firestore:"status" bson:"status" json:"status"`
	Color          string        `firestore:"color" bson:"color" json:"color"`
	DueDate        *time.Time    `firestore:"dueDate" bson:"dueDate" json:"dueDate"`
	CreatedAt      time.Time     `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

func (r *Project) SetID(id string) { r.ID = id }

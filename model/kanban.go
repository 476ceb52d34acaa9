package model

import "time"

// KanbanColumn with a nil ProjectID is global and shown on every board.
type KanbanColumn struct {
	ID        string    `firestore:"-" bson:"-" json:"-"`
	ProjectID *string   `firestore:"projectId" bson:"projectId" json:"projectId"`
	Name      string    `firestore:"name" bson:"name" json:"name"`
	Color     string    `firestore:"color" bson:"color" json:"color"`
	Order     int       `firestore:"order" bson:"order" json:"order"`
	CreatedAt time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

func (r *KanbanColumn) SetID(id string) { r.ID = id }

package model

import "time"

type Note struct {
	ID        string    `firestore:"-" bson:"-" json:"-"`
	UserID    string    `firestore:"userId" bson:"userId" json:"userId"`
	ProjectID *string   `firestore:"projectId" bson:"projectId" json:"projectId"`
	Title     string    `firestore:"title" bson:"title" json:"title"`
	Content   string    `firestore:"content" bson:"content" json:"content"`
	Tags      string    `firestore:"tags" bson:"tags" json:"tags"` // comma-joined
	CreatedAt time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

func (r *Note) SetID(id string) { r.ID = id }

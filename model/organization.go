package model

import "time"

type Organization struct {
	ID          string    `firestore:"-" bson:"-" json:"-"`
	UserID      string    `firestore:"userId" bson:"userId" json:"userId"`
	Name        string    `firestore:"name" bson:"name" json:"name"`
	Description string    `firestore:"description" bson:"description" json:"description"`
	Color       string    `firestore:"color" bson:"color" json:"color"`
	CreatedAt   time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

func (r *Organization) SetID(id string) { r.ID = id }

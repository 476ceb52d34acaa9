package model

import "time"

type User struct {
	UserID    string    `firestore:"-" bson:"-" json:"-"`
	Name      string    `firestore:"name" bson:"name" json:"name"`
	Email     string    `firestore:"email" bson:"email" json:"email"`
	Password  string    `firestore:"password" bson:"password" json:"password"` // bcrypt hash
	CreatedAt time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

// EmailReservation is keyed by the normalized email so that a second
// registration for the same address collides on document id.
type EmailReservation struct {
	UserID    string    `firestore:"userId" bson:"userId" json:"userId"`
	CreatedAt time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
}

func (u *User) SetID(id string) { u.UserID = id }

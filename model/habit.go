package model

import "time"

type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
)

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

type Habit struct {
	ID          string    `firestore:"-" bson:"-" json:"-"`
	UserID      string    `firestore:"userId" bson:"userId" json:"userId"`
	Name        string    `firestore:"name" bson:"name" json:"name"`
	Description string    `firestore:"description" bson:"description" json:"description"`
	Frequency   Frequency `firestore:"frequency" bson:"frequency" json:"frequency"`
	Target      int       `firestore:"target" bson:"target" json:"target"`
	Color       string    `firestore:"color" bson:"color" json:"color"`
	CreatedAt   time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

// DateLayout is the calendar-day format of HabitEntry.Date.
const DateLayout = "2006-01-02"

type HabitEntry struct {
	ID        string    `firestore:"-" bson:"-" json:"-"`
	UserID    string    `firestore:"userId" bson:"userId" json:"userId"`
	HabitID   string    `firestore:"habitId" bson:"habitId" json:"habitId"`
	Date      string    `firestore:"date" bson:"date" json:"date"`
	Completed bool      `firestore:"completed" bson:"completed" json:"completed"`
	Value     int       `firestore:"value" bson:"value" json:"value"`
	CreatedAt time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

func (h *Habit) SetID(id string) { h.ID = id }

func (e *HabitEntry) SetID(id string) { e.ID = id }

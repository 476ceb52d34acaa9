package model

import "time"

type SessionType string

const (
	Focus      SessionType = "FOCUS"
	ShortBreak SessionType = "SHORT_BREAK"
	LongBreak  SessionType = "LONG_BREAK"
)

func (t SessionType) Valid() bool {
	switch t {
	case Focus, ShortBreak, LongBreak:
		return true
	}
	return false
}

type PomodoroSession struct {
	ID        string      `firestore:"-" bson:"-" json:"-"`
	UserID    string      `firestore:"userId" bson:"userId" json:"userId"`
	TaskID    *string     `firestore:"taskId" bson:"taskId" json:"taskId"`
	Duration  int         `firestore:"duration" bson:"duration" json:"duration"` // minutes
	Type      SessionType `firestore:"type" bson:"type" json:"type"`
	StartTime time.Time   `firestore:"startTime" bson:"startTime" json:"startTime"`
	EndTime   *time.Time  `firestore:"endTime" bson:"endTime" json:"endTime"`
	CreatedAt time.Time   `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time   `firestore:"updatedAt" bson:"updatedAt" json:"updatedAt"`
}

func (r *PomodoroSession) SetID(id string) { r.ID = id }

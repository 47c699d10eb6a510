package models

import "time"

// Booking is a committed appointment record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	ConversationID  string    `bson:"conversationId,omitempty" json:"conversationId,omitempty"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Start           time.Time `bson:"start" json:"start"`
	End             time.Time `bson:"end" json:"end"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"` // "confirmed"
	CalendarEventID string    `bson:"calendarEventId,omitempty" json:"calendarEventId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

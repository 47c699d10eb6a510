package models

import "time"

// SlotTypeAvailable tags a candidate open interval.
const SlotTypeAvailable = "available"

// TimeSlot is a candidate open interval during which an appointment could be
// booked. Immutable once produced by the slot engine.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  string    `json:"type"`
}

// BusyInterval is an existing calendar commitment that excludes overlapping
// slots. Sourced from the calendar collaborator, never persisted.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CalendarEvent is the calendar collaborator's view of a created event.
type CalendarEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"startTime"`
	End      time.Time `json:"endTime"`
	HTMLLink string    `json:"htmlLink,omitempty"`
}

// Package calendar supplies busy intervals and event creation (the external
// calendar collaborator) and the pure slot engine that turns busy intervals
// into candidate open intervals.
package calendar

import (
	"context"
	"time"

	"bookwise/models"
)

// Service is the calendar collaborator contract consumed by the dialog agent
// and the HTTP handlers.
type Service interface {
	// BusyIntervals returns existing commitments within [start, end).
	BusyIntervals(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error)

	// Availability runs the slot engine over the window's busy intervals.
	// A backend query failure degrades to baseline template availability
	// rather than failing the turn.
	Availability(ctx context.Context, start, end time.Time) ([]models.TimeSlot, error)

	// CreateEvent books an event. Failure here is a booking failure and is
	// not retried internally.
	CreateEvent(ctx context.Context, title, description string, start, end time.Time) (*models.CalendarEvent, error)
}

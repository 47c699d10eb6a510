package calendar

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockService stands in when no calendar backend is configured. It reports
// no busy intervals, so availability is the bare business-hours template,
// and event creation fabricates an event without touching any backend.
type MockService struct {
	logger *zap.Logger
}

func NewMockService(logger *zap.Logger) *MockService {
	return &MockService{logger: logger}
}

func (m *MockService) BusyIntervals(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error) {
	return nil, nil
}

func (m *MockService) Availability(ctx context.Context, start, end time.Time) ([]models.TimeSlot, error) {
	return GenerateSlots(nil, start, end), nil
}

func (m *MockService) CreateEvent(ctx context.Context, title, description string, start, end time.Time) (*models.CalendarEvent, error) {
	event := &models.CalendarEvent{
		ID:       uuid.New().String(),
		Title:    title,
		Start:    start,
		End:      end,
		HTMLLink: fmt.Sprintf("https://calendar.google.com/calendar/event?eid=%s", uuid.New().String()),
	}
	m.logger.Info("Mock calendar event created",
		zap.String("eventID", event.ID),
		zap.String("title", title),
		zap.Time("start", start))
	return event, nil
}

package calendar

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarService talks to the Google Calendar API.
type GoogleCalendarService struct {
	svc        *gcal.Service
	calendarID string
	logger     *zap.Logger
}

// NewService builds the calendar collaborator. Without a credentials file
// (or when initialization fails) it returns the mock service, which serves
// the deterministic baseline availability.
func NewService(ctx context.Context, credentialsFile, calendarID string, logger *zap.Logger) Service {
	if credentialsFile == "" {
		logger.Warn("No Google Calendar credentials configured, using mock calendar service")
		return NewMockService(logger)
	}

	svc, err := gcal.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		logger.Error("Failed to initialize Google Calendar service, falling back to mock",
			zap.Error(err))
		return NewMockService(logger)
	}

	logger.Info("Google Calendar service initialized successfully")
	return &GoogleCalendarService{svc: svc, calendarID: calendarID, logger: logger}
}

// BusyIntervals lists events in the window and maps them to busy intervals.
func (g *GoogleCalendarService) BusyIntervals(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error) {
	events, err := g.svc.Events.List(g.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	var busy []models.BusyInterval
	for _, item := range events.Items {
		s, okStart := eventTime(item.Start)
		e, okEnd := eventTime(item.End)
		if !okStart || !okEnd {
			continue
		}
		busy = append(busy, models.BusyInterval{Start: s, End: e})
	}
	return busy, nil
}

// Availability runs the slot engine over the window. A query failure
// degrades to the baseline template (empty busy list) instead of erroring.
func (g *GoogleCalendarService) Availability(ctx context.Context, start, end time.Time) ([]models.TimeSlot, error) {
	busy, err := g.BusyIntervals(ctx, start, end)
	if err != nil {
		g.logger.Warn("Calendar query failed, serving baseline availability", zap.Error(err))
		busy = nil
	}
	return GenerateSlots(busy, start, end), nil
}

// CreateEvent inserts the event into the calendar.
func (g *GoogleCalendarService) CreateEvent(ctx context.Context, title, description string, start, end time.Time) (*models.CalendarEvent, error) {
	event := &gcal.Event{
		Summary:     title,
		Description: description,
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("create calendar event: %w", err)
	}

	return &models.CalendarEvent{
		ID:       created.Id,
		Title:    created.Summary,
		Start:    start,
		End:      end,
		HTMLLink: created.HtmlLink,
	}, nil
}

// eventTime extracts the instant from an event boundary, accepting both
// timed (dateTime) and all-day (date) events.
func eventTime(edt *gcal.EventDateTime) (time.Time, bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t, true
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

package agent

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bookwise/models"
	"bookwise/services/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Reference instant: Wednesday, March 12, 2025 at 10:00.
var testNow = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

type stubClassifier struct {
	intent string
	err    error
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (string, error) {
	return s.intent, s.err
}

type fakeCalendar struct {
	busy      []models.BusyInterval
	createErr error
	created   []*models.CalendarEvent
}

func (f *fakeCalendar) BusyIntervals(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error) {
	return f.busy, nil
}

func (f *fakeCalendar) Availability(ctx context.Context, start, end time.Time) ([]models.TimeSlot, error) {
	return calendar.GenerateSlots(f.busy, start, end), nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, title, description string, start, end time.Time) (*models.CalendarEvent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	event := &models.CalendarEvent{ID: "evt-1", Title: title, Start: start, End: end}
	f.created = append(f.created, event)
	return event, nil
}

type memStateStore struct {
	mu     sync.Mutex
	states map[string]models.ConversationState
}

func newMemStateStore() *memStateStore {
	return &memStateStore{states: make(map[string]models.ConversationState)}
}

func (m *memStateStore) Get(ctx context.Context, id string) (*models.ConversationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[id]; ok {
		copied := state
		return &copied, nil
	}
	return models.NewConversationState(), nil
}

func (m *memStateStore) Set(ctx context.Context, id string, state *models.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = *state
	return nil
}

func (m *memStateStore) Clear(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, id)
	return nil
}

type fakeBookings struct {
	created []models.Booking
	err     error
}

func (f *fakeBookings) Create(ctx context.Context, booking models.Booking) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	booking.ID = "bk-1"
	f.created = append(f.created, booking)
	return booking.ID, nil
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookings) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	return f.created, nil
}

func (f *fakeBookings) Recent(ctx context.Context, limit int64) ([]models.Booking, error) {
	return f.created, nil
}

type fakeReminders struct {
	scheduled []string
}

func (f *fakeReminders) ScheduleReminder(bookingID, title string, start time.Time) error {
	f.scheduled = append(f.scheduled, bookingID)
	return nil
}

func newTestAgent(classifier *stubClassifier, cal *fakeCalendar, bookings *fakeBookings) (*DefaultAgentService, *memStateStore) {
	store := newMemStateStore()
	svc := &DefaultAgentService{
		Classifier: classifier,
		Calendar:   cal,
		States:     store,
		Bookings:   bookings,
		Logger:     zap.NewNop(),
		Clock:      func() time.Time { return testNow },
	}
	return svc, store
}

func TestProcessTurnNonBookingIntent(t *testing.T) {
	svc, _ := newTestAgent(&stubClassifier{intent: "inquiry"}, &fakeCalendar{}, &fakeBookings{})

	reply, state := svc.ProcessTurn(context.Background(), "c1", "what's the weather like")

	assert.Equal(t, clarifyPrompt, reply)
	assert.Equal(t, models.StepClarify, state.Step)
	assert.Equal(t, "inquiry", state.Intent)
}

func TestProcessTurnUnresolvableDateTime(t *testing.T) {
	svc, _ := newTestAgent(&stubClassifier{intent: "booking"}, &fakeCalendar{}, &fakeBookings{})

	reply, state := svc.ProcessTurn(context.Background(), "c1", "book something for me")

	assert.Equal(t, clarifyTimePrompt, reply)
	assert.Equal(t, models.StepClarifyTime, state.Step)
	assert.Empty(t, state.RequestedDate)
}

func TestProcessTurnBookingRequestSuggestsSlots(t *testing.T) {
	svc, store := newTestAgent(&stubClassifier{intent: "booking"}, &fakeCalendar{}, &fakeBookings{})

	reply, state := svc.ProcessTurn(context.Background(), "c1", "I need a meeting tomorrow at 2 PM")

	assert.Equal(t, models.StepConfirmBooking, state.Step)
	assert.Equal(t, "2025-03-13", state.RequestedDate) // Thursday
	assert.Equal(t, "14:00", state.RequestedTime)
	assert.Equal(t, 60, state.DurationMinutes) // "meeting" keyword
	assert.Contains(t, reply, "1.")

	// Thursday 14:00-17:00 is open, so the afternoon slot leads the list.
	require.NotEmpty(t, state.AvailableSlots)
	first := state.AvailableSlots[0]
	assert.Equal(t, time.Date(2025, time.March, 13, 14, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.Date(2025, time.March, 13, 17, 0, 0, 0, time.UTC), first.End)

	// The replacement state is persisted.
	saved, err := store.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmBooking, saved.Step)
}

func TestProcessTurnAffirmBooksFirstSlot(t *testing.T) {
	cal := &fakeCalendar{}
	bookings := &fakeBookings{}
	reminders := &fakeReminders{}
	svc, _ := newTestAgent(&stubClassifier{intent: "booking"}, cal, bookings)
	svc.Reminders = reminders

	ctx := context.Background()
	_, first := svc.ProcessTurn(ctx, "c1", "I need a meeting tomorrow at 2 PM")
	require.Equal(t, models.StepConfirmBooking, first.Step)

	reply, state := svc.ProcessTurn(ctx, "c1", "yes")

	assert.Equal(t, models.StepBookAppointment, state.Step)
	require.NotNil(t, state.ConfirmedSlot)
	assert.Equal(t, first.AvailableSlots[0], *state.ConfirmedSlot)
	assert.Contains(t, reply, "I've booked your meeting")

	// Event end = slot start + duration, not slot end.
	require.Len(t, cal.created, 1)
	assert.Equal(t, state.ConfirmedSlot.Start, cal.created[0].Start)
	assert.Equal(t, state.ConfirmedSlot.Start.Add(60*time.Minute), cal.created[0].End)

	require.Len(t, bookings.created, 1)
	assert.Equal(t, "c1", bookings.created[0].ConversationID)
	assert.Equal(t, "Meeting", bookings.created[0].Title)
	assert.Equal(t, "evt-1", bookings.created[0].CalendarEventID)

	assert.Equal(t, []string{"bk-1"}, reminders.scheduled)
}

func TestProcessTurnNumericSelection(t *testing.T) {
	cal := &fakeCalendar{}
	svc, _ := newTestAgent(&stubClassifier{intent: "booking"}, cal, &fakeBookings{})

	ctx := context.Background()
	_, first := svc.ProcessTurn(ctx, "c1", "book a meeting tomorrow morning")
	require.Equal(t, models.StepConfirmBooking, first.Step)
	require.GreaterOrEqual(t, len(first.AvailableSlots), 3)

	_, state := svc.ProcessTurn(ctx, "c1", "2")

	assert.Equal(t, models.StepBookAppointment, state.Step)
	require.NotNil(t, state.ConfirmedSlot)
	assert.Equal(t, first.AvailableSlots[1], *state.ConfirmedSlot)
}

func TestProcessTurnSelectionOutOfRange(t *testing.T) {
	svc, _ := newTestAgent(&stubClassifier{intent: "booking"}, &fakeCalendar{}, &fakeBookings{})

	ctx := context.Background()
	_, first := svc.ProcessTurn(ctx, "c1", "book a meeting tomorrow morning")
	require.Equal(t, models.StepConfirmBooking, first.Step)
	slotCount := len(first.AvailableSlots)

	reply, state := svc.ProcessTurn(ctx, "c1", "99")

	assert.Equal(t, invalidSelectionPrompt, reply)
	assert.Equal(t, models.StepConfirmBooking, state.Step)
	assert.Nil(t, state.ConfirmedSlot)
	assert.Len(t, state.AvailableSlots, slotCount)
}

func TestProcessTurnDeclineThenNewTime(t *testing.T) {
	// The classifier deliberately reports "other": after a decline the agent
	// must parse the follow-up as a datetime without re-gating on intent.
	classifier := &stubClassifier{intent: "booking"}
	svc, _ := newTestAgent(classifier, &fakeCalendar{}, &fakeBookings{})

	ctx := context.Background()
	_, first := svc.ProcessTurn(ctx, "c1", "book a meeting tomorrow morning")
	require.Equal(t, models.StepConfirmBooking, first.Step)

	reply, state := svc.ProcessTurn(ctx, "c1", "no, that doesn't work")
	assert.Equal(t, modifyPrompt, reply)
	assert.Equal(t, models.StepModify, state.Step)

	classifier.intent = "other"
	_, state = svc.ProcessTurn(ctx, "c1", "friday at 10 am")
	assert.Equal(t, models.StepConfirmBooking, state.Step)
	assert.Equal(t, "2025-03-14", state.RequestedDate)
	assert.Equal(t, "10:00", state.RequestedTime)
}

func TestProcessTurnNoAvailability(t *testing.T) {
	// Every template window in the search week is busy.
	busy := []models.BusyInterval{
		{
			Start: time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC),
		},
	}
	svc, _ := newTestAgent(&stubClassifier{intent: "booking"}, &fakeCalendar{busy: busy}, &fakeBookings{})

	reply, state := svc.ProcessTurn(context.Background(), "c1", "book a meeting tomorrow at 2 pm")

	assert.Equal(t, models.StepNoAvailability, state.Step)
	assert.Contains(t, reply, "I don't see any available slots")
	assert.Empty(t, state.AvailableSlots)
}

func TestProcessTurnCalendarFailureOnCommit(t *testing.T) {
	cal := &fakeCalendar{}
	svc, _ := newTestAgent(&stubClassifier{intent: "booking"}, cal, &fakeBookings{})

	ctx := context.Background()
	_, first := svc.ProcessTurn(ctx, "c1", "book a meeting tomorrow at 2 pm")
	require.Equal(t, models.StepConfirmBooking, first.Step)

	cal.createErr = errors.New("calendar backend down")
	reply, state := svc.ProcessTurn(ctx, "c1", "yes")

	assert.Equal(t, bookingFailedPrompt, reply)
	assert.Equal(t, models.StepError, state.Step)
}

func TestProcessTurnClassifierFailureClarifies(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("model unavailable")}
	svc, _ := newTestAgent(classifier, &fakeCalendar{}, &fakeBookings{})

	reply, state := svc.ProcessTurn(context.Background(), "c1", "book a meeting tomorrow")

	// Classification failure degrades to "other" and the turn still
	// completes with a clarification prompt.
	assert.Equal(t, clarifyPrompt, reply)
	assert.Equal(t, models.StepClarify, state.Step)
}

func TestProcessTurnAlwaysReturnsReply(t *testing.T) {
	svc, _ := newTestAgent(&stubClassifier{intent: "booking"}, &fakeCalendar{}, &fakeBookings{})

	reply, state := svc.ProcessTurn(context.Background(), "c1", "")
	assert.NotEmpty(t, reply)
	require.NotNil(t, state)
	assert.True(t, state.Step.Valid())
}

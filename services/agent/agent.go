package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	bookingRepo "bookwise/database/repository/booking"
	"bookwise/models"
	"bookwise/services/calendar"
	"bookwise/services/intelligence"
	"bookwise/services/nlp"

	"go.uber.org/zap"
)

const (
	// Bounded timeout for each external collaborator call within a turn.
	externalCallTimeout = 8 * time.Second

	// How far past the requested instant the availability search looks.
	searchWindowDays = 7

	// How many slots are suggested per turn.
	maxSuggestedSlots = 3
)

const (
	clarifyPrompt = "I'd be happy to help you schedule an appointment! " +
		"Please let me know when you'd like to book a meeting. " +
		"For example, you could say: 'I need a meeting tomorrow at 2 PM' " +
		"or 'Do you have any time available this Friday afternoon?'"

	clarifyTimePrompt = "I need more specific information about when you'd like to schedule. " +
		"Could you please provide a date and time? For example: " +
		"'tomorrow at 2 PM' or 'next Friday morning'."

	modifyPrompt = "No problem! Please let me know what time you'd prefer, " +
		"and I'll check availability."

	invalidSelectionPrompt = "Please select a valid option number."

	repromptPrompt = "I didn't quite understand your preference. Could you please " +
		"confirm one of the suggested times or let me know what you'd prefer?"

	errorPrompt = "I apologize, but I encountered an issue processing your request. " +
		"Could you please try rephrasing your booking request? For example: " +
		"'I need to schedule a meeting for tomorrow at 2 PM'."

	bookingFailedPrompt = "I apologize, but I encountered an error while booking your appointment. " +
		"Please try again or contact support if the issue persists."
)

// DefaultAgentService is the production dialog agent. All collaborators are
// injected; Clock is overridable for deterministic tests.
type DefaultAgentService struct {
	Classifier intelligence.IntentClassifier
	Calendar   calendar.Service
	States     StateStore
	Bookings   bookingRepo.BookingRepository
	Reminders  ReminderScheduler
	Logger     *zap.Logger
	Clock      func() time.Time
}

func (s *DefaultAgentService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// ProcessTurn runs one full turn: load state, advance the machine, save the
// replacement state. The turn always completes with some reply, even when a
// step handler panics.
func (s *DefaultAgentService) ProcessTurn(ctx context.Context, conversationID, message string) (string, *models.ConversationState) {
	state, err := s.States.Get(ctx, conversationID)
	if err != nil {
		s.Logger.Warn("Failed to load conversation state, starting fresh",
			zap.String("conversationID", conversationID), zap.Error(err))
		state = models.NewConversationState()
	}
	if !state.Step.Valid() {
		state.Step = models.StepGreeting
	}

	next := s.runTurn(ctx, conversationID, message, state)
	if next.LastResponse == "" {
		next.LastResponse = errorPrompt
		next.Step = models.StepError
	}

	if err := s.States.Set(ctx, conversationID, next); err != nil {
		s.Logger.Error("Failed to persist conversation state",
			zap.String("conversationID", conversationID), zap.Error(err))
	}

	return next.LastResponse, next
}

// runTurn dispatches the message based on the persisted step. A panic in any
// handler routes to the error step; the turn still yields a reply.
func (s *DefaultAgentService) runTurn(ctx context.Context, conversationID, message string, prior *models.ConversationState) (out *models.ConversationState) {
	// Functional update: work on a copy, replace wholesale.
	work := *prior
	work.LastResponse = ""
	state := &work

	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("Panic in turn handler",
				zap.String("conversationID", conversationID), zap.Any("recover", r))
			state.Step = models.StepError
			state.LastResponse = errorPrompt
			out = state
		}
	}()

	switch {
	case state.Step == models.StepConfirmBooking && len(state.AvailableSlots) > 0:
		// The user is answering a slot suggestion.
		return s.handleConfirmation(ctx, conversationID, message, state)

	case state.Step == models.StepModify || state.Step == models.StepClarifyTime:
		// The user was asked for a (new) date/time; skip re-classification.
		return s.advanceBookingFlow(ctx, message, state)

	default:
		intent := s.classifyIntent(ctx, message)
		state.Intent = intent
		if intent != intelligence.IntentBooking {
			state.Step = models.StepClarify
			state.LastResponse = clarifyPrompt
			return state
		}
		return s.advanceBookingFlow(ctx, message, state)
	}
}

func (s *DefaultAgentService) classifyIntent(ctx context.Context, message string) string {
	ctx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	intent, err := s.Classifier.Classify(ctx, message)
	if err != nil {
		s.Logger.Warn("Intent classification failed",
			zap.Error(NewExternalFailure("classify", err)))
		return intelligence.IntentOther
	}
	return intent
}

// advanceBookingFlow runs parse -> availability -> suggest until one of them
// terminates the turn.
func (s *DefaultAgentService) advanceBookingFlow(ctx context.Context, message string, state *models.ConversationState) *models.ConversationState {
	if done := s.parseDateTime(message, state); done {
		return state
	}
	if done := s.checkAvailability(ctx, state); done {
		return state
	}
	s.suggestSlots(state)
	return state
}

// parseDateTime resolves the requested date/time and duration from the
// message. Returns true when the turn ends here (clarification needed).
func (s *DefaultAgentService) parseDateTime(message string, state *models.ConversationState) bool {
	resolved, ok := nlp.ResolveDateTime(message, s.now())
	if !ok {
		s.Logger.Debug("Could not resolve datetime",
			zap.Error(NewUnresolvedInput(message)))
		state.Step = models.StepClarifyTime
		state.LastResponse = clarifyTimePrompt
		return true
	}

	state.RequestedDate = resolved.Date()
	state.RequestedTime = resolved.Clock()
	if minutes, ok := nlp.ExtractDuration(message); ok {
		state.DurationMinutes = minutes
	} else {
		state.DurationMinutes = 60
	}
	state.Step = models.StepCheckAvailability
	return false
}

// checkAvailability queries the calendar collaborator over a one-week window
// anchored at the requested instant and runs the slot engine. Returns true
// when the turn ends here.
func (s *DefaultAgentService) checkAvailability(ctx context.Context, state *models.ConversationState) bool {
	start, err := s.requestedInstant(state)
	if err != nil {
		s.Logger.Error("Invalid requested date/time in state", zap.Error(err))
		state.Step = models.StepError
		state.LastResponse = errorPrompt
		return true
	}
	end := start.AddDate(0, 0, searchWindowDays)

	callCtx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()
	slots, err := s.Calendar.Availability(callCtx, start, end)
	if err != nil {
		s.Logger.Error("Availability check failed",
			zap.Error(NewExternalFailure("availability", err)))
		state.Step = models.StepError
		state.LastResponse = errorPrompt
		return true
	}

	state.AvailableSlots = slots
	if len(slots) == 0 {
		s.Logger.Info("No open slots in window",
			zap.Error(NewNoAvailability(start.Format(time.RFC3339))))
		state.Step = models.StepNoAvailability
		state.LastResponse = fmt.Sprintf(
			"I don't see any available slots around %s. "+
				"Would you like me to check a different time period?",
			nlp.FormatNatural(start, s.now()))
		return true
	}

	state.Step = models.StepSuggestSlots
	return false
}

// suggestSlots presents the top candidates and moves to confirmation.
func (s *DefaultAgentService) suggestSlots(state *models.ConversationState) {
	slots := state.AvailableSlots
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	if len(slots) == 0 {
		state.Step = models.StepAlternative
		state.LastResponse = "I couldn't find any slots that match your preferred time. " +
			"Would you like me to suggest alternative times?"
		return
	}

	top := slots
	if len(top) > maxSuggestedSlots {
		top = top[:maxSuggestedSlots]
	}

	// Only the presented options are selectable at the confirmation step.
	state.AvailableSlots = top
	state.Step = models.StepConfirmBooking
	state.LastResponse = fmt.Sprintf(
		"I found some available times for you:\n\n%s\n\n"+
			"Which time works best for you? Just let me know the number or "+
			"describe your preference.",
		nlp.FormatSlotList(top, s.now()))
}

// handleConfirmation interprets the user's answer to a slot suggestion.
func (s *DefaultAgentService) handleConfirmation(ctx context.Context, conversationID, message string, state *models.ConversationState) *models.ConversationState {
	outcome, index := parseConfirmation(message, len(state.AvailableSlots))

	switch outcome {
	case confirmAffirm:
		slot := state.AvailableSlots[0]
		state.ConfirmedSlot = &slot
		return s.bookAppointment(ctx, conversationID, state)

	case confirmSelect:
		slot := state.AvailableSlots[index]
		state.ConfirmedSlot = &slot
		return s.bookAppointment(ctx, conversationID, state)

	case confirmDecline:
		state.Step = models.StepModify
		state.LastResponse = modifyPrompt
		return state

	case confirmOutOfRange:
		s.Logger.Debug("Slot selection out of range",
			zap.Error(NewInvalidSelection(message)))
		state.Step = models.StepConfirmBooking
		state.LastResponse = invalidSelectionPrompt
		return state

	default:
		state.Step = models.StepConfirmBooking
		state.LastResponse = repromptPrompt
		return state
	}
}

// bookAppointment commits the confirmed slot: create the calendar event,
// append the booking record, schedule a reminder, format the confirmation.
// Always terminal for the turn.
func (s *DefaultAgentService) bookAppointment(ctx context.Context, conversationID string, state *models.ConversationState) *models.ConversationState {
	start := state.ConfirmedSlot.Start
	end := start.Add(state.Duration())
	title := state.Title()
	description := state.MeetingDescription
	if description == "" {
		description = "Scheduled via AI assistant"
	}

	callCtx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()
	event, err := s.Calendar.CreateEvent(callCtx, title, description, start, end)
	if err != nil {
		s.Logger.Error("Failed to create calendar event",
			zap.Error(NewExternalFailure("createEvent", err)))
		state.Step = models.StepError
		state.LastResponse = bookingFailedPrompt
		return state
	}

	if s.Bookings != nil {
		booking := models.Booking{
			ConversationID:  conversationID,
			Title:           title,
			Description:     state.MeetingDescription,
			Start:           start,
			End:             end,
			DurationMinutes: int(state.Duration().Minutes()),
			Status:          "confirmed",
			CalendarEventID: event.ID,
		}
		bookingID, err := s.Bookings.Create(ctx, booking)
		if err != nil {
			s.Logger.Error("Failed to save booking record",
				zap.Error(NewExternalFailure("appendBooking", err)))
			state.Step = models.StepError
			state.LastResponse = bookingFailedPrompt
			return state
		}

		if s.Reminders != nil {
			if err := s.Reminders.ScheduleReminder(bookingID, title, start); err != nil {
				s.Logger.Warn("Failed to schedule reminder",
					zap.String("bookingID", bookingID), zap.Error(err))
			}
		}
	}

	formatted := nlp.FormatNatural(start, s.now())
	state.Step = models.StepBookAppointment
	state.LastResponse = fmt.Sprintf(
		"Perfect! I've booked your %s for %s. "+
			"You should receive a calendar invitation shortly.\n\n"+
			"Event details:\n"+
			"- Title: %s\n"+
			"- Date & Time: %s\n"+
			"- Duration: %d minutes\n\n"+
			"Is there anything else I can help you with?",
		strings.ToLower(title), formatted, title, formatted,
		int(state.Duration().Minutes()))
	return state
}

// requestedInstant combines the persisted date and time strings.
func (s *DefaultAgentService) requestedInstant(state *models.ConversationState) (time.Time, error) {
	loc := s.now().Location()
	clock := state.RequestedTime
	if clock == "" {
		clock = "09:00"
	}
	return time.ParseInLocation("2006-01-02 15:04", state.RequestedDate+" "+clock, loc)
}

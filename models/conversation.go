package models

import "time"

// Step identifies the current position of a conversation in the dialog flow.
type Step string

const (
	StepGreeting          Step = "greeting"
	StepParseDateTime     Step = "parse_datetime"
	StepCheckAvailability Step = "check_availability"
	StepSuggestSlots      Step = "suggest_slots"
	StepConfirmBooking    Step = "confirm_booking"
	StepBookAppointment   Step = "book_appointment"
	StepError             Step = "error"

	// Turn-terminal steps: the conversation waits for the user to answer
	// a clarifying question before the flow can advance.
	StepClarify        Step = "clarify"
	StepClarifyTime    Step = "clarify_time"
	StepNoAvailability Step = "no_availability"
	StepAlternative    Step = "alternative"
	StepModify         Step = "modify"
	StepCancel         Step = "cancel"
)

// Valid reports whether s is one of the defined steps.
func (s Step) Valid() bool {
	switch s {
	case StepGreeting, StepParseDateTime, StepCheckAvailability, StepSuggestSlots,
		StepConfirmBooking, StepBookAppointment, StepError,
		StepClarify, StepClarifyTime, StepNoAvailability, StepAlternative,
		StepModify, StepCancel:
		return true
	}
	return false
}

// ConversationState is the single record threaded through one conversation.
// It is replaced wholesale every turn; a missing record means a fresh
// conversation starting at the greeting step.
type ConversationState struct {
	Intent             string     `json:"intent,omitempty"`
	RequestedDate      string     `json:"requestedDate,omitempty"` // "2006-01-02"
	RequestedTime      string     `json:"requestedTime,omitempty"` // "15:04"
	DurationMinutes    int        `json:"durationMinutes,omitempty"`
	MeetingTitle       string     `json:"meetingTitle,omitempty"`
	MeetingDescription string     `json:"meetingDescription,omitempty"`
	AvailableSlots     []TimeSlot `json:"availableSlots,omitempty"`
	ConfirmedSlot      *TimeSlot  `json:"confirmedSlot,omitempty"`
	Step               Step       `json:"step"`
	LastResponse       string     `json:"lastResponse,omitempty"`
}

// NewConversationState returns the all-default state for a fresh conversation.
func NewConversationState() *ConversationState {
	return &ConversationState{Step: StepGreeting}
}

// Duration returns the requested meeting length, defaulting to 60 minutes
// when the user never specified one.
func (s *ConversationState) Duration() time.Duration {
	minutes := s.DurationMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

// Title returns the meeting title, defaulting to "Meeting" at commit time.
func (s *ConversationState) Title() string {
	if s.MeetingTitle == "" {
		return "Meeting"
	}
	return s.MeetingTitle
}

// Conversation is the persisted record of a chat session.
type Conversation struct {
	ID        string            `bson:"id" json:"id"`
	State     ConversationState `bson:"state" json:"state"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
	Active    bool              `bson:"active" json:"active"`
}

// Message is a single chat message within a conversation.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	Role           string    `bson:"role" json:"role"` // "user" or "assistant"
	Content        string    `bson:"content" json:"content"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

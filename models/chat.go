package models

// ChatRequest is the payload for one conversation turn.
type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversationId,omitempty"`
}

// ChatResponse carries the assistant reply for one turn.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversationId"`
}

// BookEventRequest is the payload for a direct (non-conversational) booking.
type BookEventRequest struct {
	Title       string `json:"title" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	Description string `json:"description,omitempty"`
}

package agent

import "fmt"

// FlowError classifies turn-level failures. All of them are recoverable:
// the agent converts each into a user-facing prompt and the turn still
// completes with a reply.
type FlowError struct {
	Code    string
	Message string
	Err     error
}

func (e *FlowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *FlowError) Unwrap() error { return e.Err }

// NewUnresolvedInput marks text the parser could not extract a date/time from.
func NewUnresolvedInput(text string) error {
	return &FlowError{Code: "unresolvedInput", Message: text}
}

// NewNoAvailability marks a search window with zero open slots.
func NewNoAvailability(window string) error {
	return &FlowError{Code: "noAvailability", Message: window}
}

// NewInvalidSelection marks a slot choice that is out of range.
func NewInvalidSelection(choice string) error {
	return &FlowError{Code: "invalidSelection", Message: choice}
}

// NewExternalFailure wraps a classifier or calendar collaborator failure.
func NewExternalFailure(op string, err error) error {
	return &FlowError{Code: "externalFailure", Message: op, Err: err}
}

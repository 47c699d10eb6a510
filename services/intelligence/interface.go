// Package intelligence classifies user messages into coarse booking intents.
// The classifier output is an opaque capability to the dialog agent: a label,
// nothing more. Anything other than "booking" routes to clarification.
package intelligence

import "context"

// Intent labels returned by classifiers.
const (
	IntentBooking      = "booking"
	IntentInquiry      = "inquiry"
	IntentModification = "modification"
	IntentCancellation = "cancellation"
	IntentOther        = "other"
)

// IntentClassifier labels a user message with a coarse intent.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// NewClassifier picks the Gemini-backed classifier when an API key is
// configured, otherwise the keyword classifier.
func NewClassifier(apiKey string) IntentClassifier {
	if apiKey == "" {
		return &KeywordClassifier{}
	}
	return NewGeminiClassifier(apiKey)
}

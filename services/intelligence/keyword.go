package intelligence

import (
	"context"
	"strings"
)

// KeywordClassifier is the local fallback: literal substring matching on the
// lowercased message. Used when no Gemini key is configured and when the
// Gemini call fails.
type KeywordClassifier struct{}

func (k *KeywordClassifier) Classify(ctx context.Context, text string) (string, error) {
	return KeywordIntent(text), nil
}

// KeywordIntent maps a message to an intent label by keyword.
func KeywordIntent(text string) string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, "cancel"):
		return IntentCancellation
	case containsAny(lower, "reschedule", "move my", "change my"):
		return IntentModification
	case containsAny(lower, "book", "schedule", "appointment", "meeting", "available", "availability"):
		return IntentBooking
	case strings.Contains(lower, "?"):
		return IntentInquiry
	default:
		return IntentOther
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

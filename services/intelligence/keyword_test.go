package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"book verb", "I want to book a slot", IntentBooking},
		{"schedule verb", "can you schedule something for friday", IntentBooking},
		{"appointment noun", "I need an appointment", IntentBooking},
		{"meeting noun", "set up a meeting tomorrow", IntentBooking},
		{"availability noun", "what's your availability next week", IntentBooking},
		{"cancel beats booking", "cancel my meeting tomorrow", IntentCancellation},
		{"reschedule", "I'd like to reschedule", IntentModification},
		{"move my", "can we move my 2pm", IntentModification},
		{"change my", "please change my slot", IntentModification},
		{"bare question", "what are your hours?", IntentInquiry},
		{"no signal", "hello there", IntentOther},
		{"mixed case", "BOOK ME IN", IntentBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordIntent(tt.text))
		})
	}
}

func TestKeywordClassifierNeverErrors(t *testing.T) {
	c := &KeywordClassifier{}
	intent, err := c.Classify(context.Background(), "gibberish input")
	require.NoError(t, err)
	assert.Equal(t, IntentOther, intent)
}

func TestNewClassifierWithoutKey(t *testing.T) {
	c := NewClassifier("")
	assert.IsType(t, &KeywordClassifier{}, c)
}

package agent

import (
	"regexp"
	"strconv"
	"strings"
)

// confirmOutcome is the interpretation of a user reply at the confirmation step.
type confirmOutcome int

const (
	confirmAffirm confirmOutcome = iota
	confirmDecline
	confirmSelect
	confirmOutOfRange
	confirmUnknown
)

var (
	affirmWords  = []string{"yes", "confirm", "book", "schedule"}
	declineWords = []string{"no", "different", "other", "change"}
	integerRe    = regexp.MustCompile(`\d+`)
)

// parseConfirmation interprets a confirmation reply. Word matching is literal
// substring matching on the lowercased message, not semantic. A bare integer
// is a 1-based index into the suggested slots; the returned index is 0-based.
func parseConfirmation(message string, slotCount int) (confirmOutcome, int) {
	lower := strings.ToLower(message)

	for _, word := range affirmWords {
		if strings.Contains(lower, word) {
			return confirmAffirm, 0
		}
	}
	for _, word := range declineWords {
		if strings.Contains(lower, word) {
			return confirmDecline, 0
		}
	}

	if match := integerRe.FindString(lower); match != "" {
		selection, err := strconv.Atoi(match)
		if err != nil {
			return confirmUnknown, 0
		}
		index := selection - 1
		if index < 0 || index >= slotCount {
			return confirmOutOfRange, 0
		}
		return confirmSelect, index
	}

	return confirmUnknown, 0
}

package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursRe   = regexp.MustCompile(`(\d+)\s*(?:hours?|hrs?)`)
	minutesRe = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?)`)
)

// durationKeywords maps meeting-type words to a typical length in minutes.
var durationKeywords = []struct {
	words   []string
	minutes int
}{
	{[]string{"call", "quick", "brief"}, 30},
	{[]string{"meeting", "session"}, 60},
	{[]string{"workshop", "training"}, 120},
}

// ExtractDuration pulls a meeting duration in minutes out of free text.
// Numeric patterns win over keyword classes; with no signal at all it
// returns false and the caller applies its own default.
func ExtractDuration(text string) (int, bool) {
	text = strings.ToLower(text)

	if m := hoursRe.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return hours * 60, true
	}
	if m := minutesRe.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes, true
	}

	for _, class := range durationKeywords {
		for _, word := range class.words {
			if strings.Contains(text, word) {
				return class.minutes, true
			}
		}
	}

	return 0, false
}

// Package nlp turns free-form user text into structured temporal values:
// a resolved date and clock time, and a meeting duration. Parsing is
// best-effort lexical matching; a failed resolution is reported as a definite
// miss so the caller can ask a clarifying question instead of guessing.
package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolved is the outcome of a successful date/time resolution.
type Resolved struct {
	At time.Time // resolved date combined with resolved (or default) time
}

// Date returns the calendar-date portion as "2006-01-02".
func (r Resolved) Date() string { return r.At.Format("2006-01-02") }

// Clock returns the time-of-day portion as "15:04".
func (r Resolved) Clock() string { return r.At.Format("15:04") }

var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// ResolveDateTime resolves a natural-language datetime expression against a
// reference instant. It returns false when the text carries no date signal at
// all; it never silently defaults to "now".
func ResolveDateTime(text string, now time.Time) (Resolved, bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	date, ok := resolveDate(text, now)
	if !ok {
		return Resolved{}, false
	}

	hour, minute := 9, 0 // default to 9 AM if no time specified
	if h, m, ok := resolveTime(text); ok {
		hour, minute = h, m
	}

	at := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, now.Location())
	return Resolved{At: at}, true
}

// resolveDate walks the date ladder: relative keywords, weekday names,
// absolute numeric patterns, then the fuzzy word-window scan. First match wins.
func resolveDate(text string, now time.Time) (time.Time, bool) {
	switch {
	case strings.Contains(text, "tomorrow"):
		return now.AddDate(0, 0, 1), true
	case strings.Contains(text, "today"):
		return now, true
	case strings.Contains(text, "next week"):
		return now.AddDate(0, 0, 7), true
	case strings.Contains(text, "next month"):
		return now.AddDate(0, 1, 0), true
	}

	for _, wd := range weekdays {
		if !strings.Contains(text, wd.name) {
			continue
		}
		offset := int(wd.day) - int(now.Weekday())
		if offset <= 0 { // named day already happened this week
			offset += 7
		}
		if strings.Contains(text, "next") {
			offset += 7
		}
		return now.AddDate(0, 0, offset), true
	}

	return parseAbsoluteDate(text, now)
}

var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`), "1/2/2006"},   // MM/DD/YYYY
	{regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`), "1-2-2006"},   // MM-DD-YYYY
	{regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`), "2006-1-2"},   // YYYY-MM-DD
}

// Layouts tried by the fuzzy scan. Year-less layouts resolve against the
// reference year.
var fuzzyLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"January 2",
	"Jan 2",
	"2 January",
}

func parseAbsoluteDate(text string, now time.Time) (time.Time, bool) {
	for _, p := range datePatterns {
		if match := p.re.FindString(text); match != "" {
			if t, err := time.ParseInLocation(p.layout, match, now.Location()); err == nil {
				return t, true
			}
		}
	}

	// Fuzzy scan: slide a window of 1-3 consecutive words across the text and
	// accept the first candidate resolving to a date on or after the reference.
	words := strings.Fields(text)
	for i := range words {
		for j := i + 1; j <= min(i+3, len(words)); j++ {
			candidate := strings.TrimRight(strings.Join(words[i:j], " "), ".!?")
			for _, layout := range fuzzyLayouts {
				t, err := time.ParseInLocation(layout, candidate, now.Location())
				if err != nil {
					continue
				}
				if t.Year() == 0 {
					t = t.AddDate(now.Year(), 0, 0)
				}
				if !dateBefore(t, now) {
					return t, true
				}
			}
		}
	}

	return time.Time{}, false
}

// dateBefore compares calendar dates, ignoring time of day.
func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

var (
	exactTimeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?`)
	hourAmPmRe  = regexp.MustCompile(`(\d{1,2})\s*(am|pm)\b`)
	oclockRe    = regexp.MustCompile(`(\d{1,2})\s*o'?clock`)
)

// resolveTime extracts a clock time from the text. Checked in order:
// HH:MM (optional am/pm), H am/pm, H o'clock, then daypart keywords.
func resolveTime(text string) (hour, minute int, ok bool) {
	if m := exactTimeRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		hour = to24Hour(hour, m[3])
		return hour, minute, true
	}

	if m := hourAmPmRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		return to24Hour(hour, m[2]), 0, true
	}

	if m := oclockRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		// Favor business hours: a bare "3 o'clock" means afternoon.
		if hour < 8 {
			hour += 12
		}
		return hour, 0, true
	}

	switch {
	case strings.Contains(text, "morning"):
		return 9, 0, true
	case strings.Contains(text, "afternoon"):
		return 14, 0, true
	case strings.Contains(text, "evening"):
		return 18, 0, true
	case strings.Contains(text, "noon"):
		return 12, 0, true
	}

	return 0, 0, false
}

// to24Hour applies the standard 12-hour to 24-hour conversion.
func to24Hour(hour int, ampm string) int {
	switch ampm {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

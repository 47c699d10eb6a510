package nlp

import (
	"fmt"
	"strings"
	"time"

	"bookwise/models"
)

// FormatNatural renders a datetime relative to a reference instant:
// "Today at 2:00 PM", "Tomorrow at 9:00 AM", "This Friday at 2:00 PM",
// or the full "Friday, March 14, 2025 at 2:00 PM" form beyond a week out.
func FormatNatural(t, now time.Time) string {
	clock := t.Format("3:04 PM")

	daysDiff := daysBetween(now, t)
	switch {
	case daysDiff == 0:
		return fmt.Sprintf("Today at %s", clock)
	case daysDiff == 1:
		return fmt.Sprintf("Tomorrow at %s", clock)
	case daysDiff < 7:
		return fmt.Sprintf("This %s at %s", t.Weekday(), clock)
	default:
		return fmt.Sprintf("%s, %s %d, %d at %s",
			t.Weekday(), t.Month(), t.Day(), t.Year(), clock)
	}
}

// FormatSlotList renders slots as a 1-based numbered list, one line per slot.
func FormatSlotList(slots []models.TimeSlot, now time.Time) string {
	lines := make([]string, 0, len(slots))
	for i, slot := range slots {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, FormatNatural(slot.Start, now)))
	}
	return strings.Join(lines, "\n")
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

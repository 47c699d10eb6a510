package calendar

import (
	"time"

	"bookwise/models"
)

// Fixed business-hours template: two candidate windows per weekday.
var candidateWindows = []struct {
	startHour, endHour int
}{
	{9, 12},  // morning
	{14, 17}, // afternoon
}

// GenerateSlots produces candidate open intervals for each weekday in
// [windowStart, windowEnd), using the business-hours template. A candidate
// is emitted when it overlaps no busy interval. With an empty busy list the
// template still applies (deterministic baseline availability), but each
// candidate must then lie fully inside the search window.
func GenerateSlots(busy []models.BusyInterval, windowStart, windowEnd time.Time) []models.TimeSlot {
	var slots []models.TimeSlot

	day := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(),
		0, 0, 0, 0, windowStart.Location())

	for ; day.Before(windowEnd); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		for _, w := range candidateWindows {
			start := day.Add(time.Duration(w.startHour) * time.Hour)
			end := day.Add(time.Duration(w.endHour) * time.Hour)

			if len(busy) == 0 {
				if start.Before(windowStart) || end.After(windowEnd) {
					continue
				}
			} else if ConflictsAny(start, end, busy) {
				continue
			}

			slots = append(slots, models.TimeSlot{
				Start: start,
				End:   end,
				Type:  models.SlotTypeAvailable,
			})
		}
	}

	return slots
}

// Overlaps reports whether [start, end) intersects [busyStart, busyEnd).
// Exactly-touching intervals and zero-length candidates do not conflict.
func Overlaps(start, end, busyStart, busyEnd time.Time) bool {
	return start.Before(busyEnd) && end.After(busyStart)
}

// ConflictsAny reports whether a candidate interval overlaps any busy interval.
func ConflictsAny(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

package calendar

import (
	"testing"
	"time"

	"bookwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d, hour int) time.Time {
	return time.Date(2025, time.March, d, hour, 0, 0, 0, time.UTC)
}

func TestGenerateSlotsBaselineTemplate(t *testing.T) {
	// Monday March 10 through Friday March 14, no busy intervals.
	slots := GenerateSlots(nil, day(10, 0), day(15, 0))

	// Five weekdays, two windows each.
	require.Len(t, slots, 10)
	assert.Equal(t, day(10, 9), slots[0].Start)
	assert.Equal(t, day(10, 12), slots[0].End)
	assert.Equal(t, day(10, 14), slots[1].Start)
	assert.Equal(t, day(10, 17), slots[1].End)

	for _, s := range slots {
		assert.Equal(t, models.SlotTypeAvailable, s.Type)
		wd := s.Start.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestGenerateSlotsChronologicalOrder(t *testing.T) {
	slots := GenerateSlots(nil, day(10, 0), day(22, 0))
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
}

func TestGenerateSlotsWeekendOnlyWindow(t *testing.T) {
	// Saturday March 15 through Sunday March 16.
	slots := GenerateSlots(nil, day(15, 0), day(17, 0))
	assert.Empty(t, slots)
}

func TestGenerateSlotsClipsToWindowWithoutBusy(t *testing.T) {
	// Window opens Thursday 14:00: the Thursday morning slot falls outside.
	slots := GenerateSlots(nil, day(13, 14), day(14, 18))

	require.Len(t, slots, 3)
	assert.Equal(t, day(13, 14), slots[0].Start) // Thursday afternoon
	assert.Equal(t, day(14, 9), slots[1].Start)  // Friday morning
	assert.Equal(t, day(14, 14), slots[2].Start) // Friday afternoon
}

func TestGenerateSlotsNeverOverlapsBusy(t *testing.T) {
	busy := []models.BusyInterval{
		{Start: day(10, 10), End: day(10, 11)},  // inside Monday morning
		{Start: day(11, 8), End: day(11, 13)},   // covers Tuesday morning
		{Start: day(12, 13), End: day(12, 18)},  // covers Wednesday afternoon
		{Start: day(13, 0), End: day(14, 0)},    // all of Thursday
	}

	slots := GenerateSlots(busy, day(10, 0), day(15, 0))
	require.NotEmpty(t, slots)

	for _, s := range slots {
		for _, b := range busy {
			assert.False(t, Overlaps(s.Start, s.End, b.Start, b.End),
				"slot %v-%v overlaps busy %v-%v", s.Start, s.End, b.Start, b.End)
		}
	}

	// Monday morning, Tuesday morning, Wednesday afternoon and both Thursday
	// windows are blocked; 5 of the 10 template windows remain.
	assert.Len(t, slots, 5)
}

func TestOverlapsTouchingIntervals(t *testing.T) {
	// Exactly-touching intervals are not conflicts.
	assert.False(t, Overlaps(day(10, 14), day(10, 17), day(10, 12), day(10, 14)))
	assert.False(t, Overlaps(day(10, 9), day(10, 12), day(10, 12), day(10, 14)))
	assert.True(t, Overlaps(day(10, 9), day(10, 12), day(10, 11), day(10, 14)))
}

func TestOverlapsZeroLengthCandidate(t *testing.T) {
	at := day(10, 10)
	assert.False(t, Overlaps(at, at, day(10, 9), day(10, 12)))
}

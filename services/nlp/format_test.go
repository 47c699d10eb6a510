package nlp

import (
	"testing"
	"time"

	"bookwise/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatNaturalDayBoundaries(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name       string
		offsetDays int
		want       string
	}{
		{"same day", 0, "Today at 2:00 PM"},
		{"next day", 1, "Tomorrow at 2:00 PM"},
		{"within a week", 3, "This Saturday at 2:00 PM"},
		{"beyond a week", 10, "Saturday, March 22, 2025 at 2:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2025, time.March, 12+tt.offsetDays, 14, 0, 0, 0, time.UTC)
			assert.Equal(t, tt.want, FormatNatural(at, now))
		})
	}
}

func TestFormatNaturalMorningClock(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	at := time.Date(2025, time.March, 13, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "Tomorrow at 9:30 AM", FormatNatural(at, now))
}

func TestFormatSlotList(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	slots := []models.TimeSlot{
		{Start: time.Date(2025, time.March, 13, 9, 0, 0, 0, time.UTC), Type: models.SlotTypeAvailable},
		{Start: time.Date(2025, time.March, 13, 14, 0, 0, 0, time.UTC), Type: models.SlotTypeAvailable},
		{Start: time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC), Type: models.SlotTypeAvailable},
	}

	want := "1. Tomorrow at 9:00 AM\n" +
		"2. Tomorrow at 2:00 PM\n" +
		"3. This Friday at 9:00 AM"
	assert.Equal(t, want, FormatSlotList(slots, now))
}

func TestFormatSlotListEmpty(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "", FormatSlotList(nil, now))
}

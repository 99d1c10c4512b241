package listing

import (
	"testing"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLegacyAvailabilitySpansDayparts(t *testing.T) {
	legacy := models.LegacyAvailability{
		AvailableDays: []string{"MONDAY"},
		TimeSlots: map[string][]models.LegacyTimeSlot{
			"MONDAY": {{Start: "10:00", End: "19:00", Active: true}},
		},
	}

	week := MigrateLegacyAvailability(legacy)
	require.Len(t, week, 7)

	monday := week[0]
	require.Equal(t, "MONDAY", monday.Day)
	assert.True(t, monday.Available)

	// 10:00-19:00 overlaps all three dayparts, clamped at each boundary.
	assert.True(t, monday.Morning)
	assert.Equal(t, "10:00", monday.MorningStart)
	assert.Equal(t, "12:00", monday.MorningEnd)

	assert.True(t, monday.Afternoon)
	assert.Equal(t, "12:00", monday.AfternoonStart)
	assert.Equal(t, "17:00", monday.AfternoonEnd)

	assert.True(t, monday.Evening)
	assert.Equal(t, "17:00", monday.EveningStart)
	assert.Equal(t, "19:00", monday.EveningEnd)

	// The other six days come back closed.
	for _, day := range week[1:] {
		assert.False(t, day.Available, day.Day)
		assert.False(t, day.Morning || day.Afternoon || day.Evening, day.Day)
	}
}

func TestMigrateLegacyAvailabilitySkipsBadSlots(t *testing.T) {
	legacy := models.LegacyAvailability{
		AvailableDays: []string{"tuesday"},
		TimeSlots: map[string][]models.LegacyTimeSlot{
			"Tuesday": {
				{Start: "09:00", End: "11:00", Active: false}, // inactive
				{Start: "25:00", End: "26:00", Active: true},  // unparseable
				{Start: "14:00", End: "14:00", Active: true},  // empty window
				{Start: "18:00", End: "20:00", Active: true},
			},
		},
	}

	week := MigrateLegacyAvailability(legacy)
	tuesday := week[1]
	require.Equal(t, "TUESDAY", tuesday.Day)
	assert.True(t, tuesday.Available, "day names match case-insensitively")

	assert.False(t, tuesday.Morning)
	assert.False(t, tuesday.Afternoon)
	assert.True(t, tuesday.Evening)
	assert.Equal(t, "18:00", tuesday.EveningStart)
	assert.Equal(t, "20:00", tuesday.EveningEnd)
}

func TestMigrateLegacyAvailabilityIsDeterministic(t *testing.T) {
	legacy := models.LegacyAvailability{
		AvailableDays: []string{"SATURDAY", "SUNDAY"},
		TimeSlots: map[string][]models.LegacyTimeSlot{
			"SATURDAY": {{Start: "08:00", End: "12:00", Active: true}},
			"SUNDAY":   {{Start: "13:00", End: "16:30", Active: true}},
		},
	}

	first := MigrateLegacyAvailability(legacy)
	second := MigrateLegacyAvailability(legacy)
	assert.Equal(t, first, second)
}

func TestApplyLegacyAvailability(t *testing.T) {
	form := models.NewTrailerFormData()
	original := make([]models.DayAvailability, len(form.WeeklyAvailability))
	copy(original, form.WeeklyAvailability)

	// Nil legacy input leaves the canonical field untouched.
	ApplyLegacyAvailability(&form, nil)
	assert.Equal(t, original, form.WeeklyAvailability)

	legacy := &models.LegacyAvailability{AvailableDays: []string{"FRIDAY"}}
	ApplyLegacyAvailability(&form, legacy)
	assert.False(t, form.WeeklyAvailability[0].Available)
	assert.True(t, form.WeeklyAvailability[4].Available)
}

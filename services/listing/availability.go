package listing

import (
	"fmt"
	"strconv"
	"strings"

	"trailhub/models"
)

// Legacy availability migration. Older clients submit a nested
// timeSlots/availableDays structure; it is converted into the canonical
// weekly representation exactly once, at load time. Everything downstream
// reads only the canonical shape.

// daypart windows in minutes from midnight.
var dayparts = []struct {
	name  string
	start int
	end   int
}{
	{"morning", 0, models.MorningEndHour * 60},
	{"afternoon", models.MorningEndHour * 60, models.AfternoonEndHour * 60},
	{"evening", models.AfternoonEndHour * 60, 24 * 60},
}

// MigrateLegacyAvailability converts the legacy shape into one canonical
// week. A slot is bucketed into every daypart it overlaps; start/end times
// are clamped to the daypart window, which makes the conversion lossy for
// slots spanning a boundary — an accepted approximation.
func MigrateLegacyAvailability(legacy models.LegacyAvailability) []models.DayAvailability {
	available := make(map[string]bool, len(legacy.AvailableDays))
	for _, day := range legacy.AvailableDays {
		available[strings.ToUpper(strings.TrimSpace(day))] = true
	}

	week := make([]models.DayAvailability, 0, len(models.DayNames))
	for _, dayName := range models.DayNames {
		entry := models.DayAvailability{
			Day:       dayName,
			Available: available[dayName],
		}
		for _, slot := range slotsForDay(legacy.TimeSlots, dayName) {
			if !slot.Active {
				continue
			}
			start, err := parseClock(slot.Start)
			if err != nil {
				continue
			}
			end, err := parseClock(slot.End)
			if err != nil || end <= start {
				continue
			}
			applySlot(&entry, start, end)
		}
		week = append(week, entry)
	}
	return week
}

// ApplyLegacyAvailability migrates legacy input onto a form in place. When
// no legacy structure is supplied the canonical field is left as-is.
func ApplyLegacyAvailability(form *models.TrailerFormData, legacy *models.LegacyAvailability) {
	if legacy == nil {
		return
	}
	form.WeeklyAvailability = MigrateLegacyAvailability(*legacy)
}

func slotsForDay(timeSlots map[string][]models.LegacyTimeSlot, dayName string) []models.LegacyTimeSlot {
	for key, slots := range timeSlots {
		if strings.EqualFold(strings.TrimSpace(key), dayName) {
			return slots
		}
	}
	return nil
}

// applySlot flags every daypart the slot overlaps and records the clamped
// start/end times for each.
func applySlot(entry *models.DayAvailability, start, end int) {
	for _, part := range dayparts {
		if start >= part.end || end <= part.start {
			continue
		}
		partStart := formatClock(max(start, part.start))
		partEnd := formatClock(min(end, part.end))
		switch part.name {
		case "morning":
			entry.Morning = true
			entry.MorningStart = partStart
			entry.MorningEnd = partEnd
		case "afternoon":
			entry.Afternoon = true
			entry.AfternoonStart = partStart
			entry.AfternoonEnd = partEnd
		case "evening":
			entry.Evening = true
			entry.EveningStart = partStart
			entry.EveningEnd = partEnd
		}
	}
}

// parseClock parses "HH:MM" into minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hours*60 + minutes, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

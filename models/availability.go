package models

// Daypart boundaries, in hours from midnight. A slot starting before
// MorningEndHour belongs to the morning, before AfternoonEndHour to the
// afternoon, anything later to the evening.
const (
	MorningEndHour   = 12
	AfternoonEndHour = 17
)

// DayNames lists the seven weekday identifiers used on the wire.
var DayNames = []string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

// DayAvailability is the canonical per-day availability representation.
// Legacy timeSlots/availableDays input is migrated into this shape once at
// load time; everything downstream reads only this.
type DayAvailability struct {
	Day            string `bson:"day" json:"day"`
	Available      bool   `bson:"available" json:"available"`
	Morning        bool   `bson:"morning" json:"morning"`
	Afternoon      bool   `bson:"afternoon" json:"afternoon"`
	Evening        bool   `bson:"evening" json:"evening"`
	MorningStart   string `bson:"morningStart,omitempty" json:"morningStart,omitempty"`
	MorningEnd     string `bson:"morningEnd,omitempty" json:"morningEnd,omitempty"`
	AfternoonStart string `bson:"afternoonStart,omitempty" json:"afternoonStart,omitempty"`
	AfternoonEnd   string `bson:"afternoonEnd,omitempty" json:"afternoonEnd,omitempty"`
	EveningStart   string `bson:"eveningStart,omitempty" json:"eveningStart,omitempty"`
	EveningEnd     string `bson:"eveningEnd,omitempty" json:"eveningEnd,omitempty"`
}

// LegacyTimeSlot is a raw time window from the pre-migration form schema.
type LegacyTimeSlot struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

// LegacyAvailability carries the old nested availability schema as received.
type LegacyAvailability struct {
	AvailableDays []string                    `json:"availableDays"`
	TimeSlots     map[string][]LegacyTimeSlot `json:"timeSlots"`
}

// DefaultWeeklyAvailability returns every day open for all three dayparts.
// Used both as the fully-shaped form default and as the formatter's fallback.
func DefaultWeeklyAvailability() []DayAvailability {
	week := make([]DayAvailability, 0, len(DayNames))
	for _, day := range DayNames {
		week = append(week, DayAvailability{
			Day:            day,
			Available:      true,
			Morning:        true,
			Afternoon:      true,
			Evening:        true,
			MorningStart:   "08:00",
			MorningEnd:     "12:00",
			AfternoonStart: "12:00",
			AfternoonEnd:   "17:00",
			EveningStart:   "17:00",
			EveningEnd:     "22:00",
		})
	}
	return week
}

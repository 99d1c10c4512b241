package models

import "time"

// Draft save status values surfaced on the session.
const (
	SaveStatusIdle   = "idle"
	SaveStatusSaving = "saving"
	SaveStatusSaved  = "saved"
	SaveStatusError  = "error"
)

// ListingSession is the server-held state of one listing creation flow:
// the form snapshot plus the per-section expanded/completed flags. At most
// one section is expanded at a time; the expansion controller enforces it.
type ListingSession struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	FormData         TrailerFormData `json:"formData"`
	Expanded         SectionsState   `json:"expanded"`
	Completed        SectionsState   `json:"completed"`
	DraftID          string          `json:"draftId,omitempty"`
	EditingTrailerID string          `json:"editingTrailerId,omitempty"`
	SaveStatus       string          `json:"saveStatus"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// ExpandedSection returns the currently expanded section, if any.
func (s *ListingSession) ExpandedSection() (FormSection, bool) {
	for _, sec := range SectionOrder {
		if s.Expanded[sec] {
			return sec, true
		}
	}
	return "", false
}

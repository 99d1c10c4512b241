package models

import "time"

// Draft is a persisted snapshot of an in-progress listing form. The display
// name is regenerated from form content on every save; identity is the ID.
// Drafts opened from an existing listing carry the trailer ID as an explicit
// foreign key so the edit-session draft can be found by direct lookup.
type Draft struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	AutoName         string          `json:"autoName"`
	EditingTrailerID string          `json:"editingTrailerId,omitempty"`
	FormData         TrailerFormData `json:"formData"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// DraftSummary is the list-view projection of a draft.
type DraftSummary struct {
	ID               string    `json:"id"`
	AutoName         string    `json:"autoName"`
	EditingTrailerID string    `json:"editingTrailerId,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

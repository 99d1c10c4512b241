package listing

import (
	"trailhub/models"
	"trailhub/services/trailer"
)

// ListingService drives the sectioned listing-creation workflow: one
// session per flow, holding the form snapshot and section state, with
// debounced draft persistence and a final submit into the trailer service.
type ListingService interface {
	// Session lifecycle.
	InitiateSession(userID string) (*models.ListingSession, error)
	InitiateEditSession(userID, trailerID string) (*models.ListingSession, error)
	GetSession(sessionID, userID string) (*models.ListingSession, error)
	CancelSession(sessionID, userID string) error

	// Form state transitions. Legacy availability, when present, is
	// migrated into the form's canonical week before the snapshot is stored.
	UpdateFormData(sessionID, userID string, form models.TrailerFormData, legacy *models.LegacyAvailability) (*models.ListingSession, error)
	ToggleSection(sessionID, userID string, section models.FormSection) (*models.ListingSession, error)
	CompleteSection(sessionID, userID string, section models.FormSection) (*models.ListingSession, error)

	// Submit.
	ConfirmListing(sessionID, userID string) (*models.Trailer, error)

	// Draft management for the dashboard.
	GetDrafts(userID string) ([]models.DraftSummary, error)
	GetDraft(userID, draftID string) (*models.Draft, error)
	DeleteDraft(userID, draftID string) error
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Sessions   SessionStore
	Drafts     DraftStore
	TrailerSvc trailer.TrailerService
	AutoSaver  *AutoSaver
}

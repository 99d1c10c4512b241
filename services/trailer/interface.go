package trailer

import (
	trailerRepo "trailhub/database/repository/trailer"
	"trailhub/models"
	"trailhub/services/storage"
)

// TrailerService manages published listings.
type TrailerService interface {
	// CreateFromListing publishes a new trailer from a formatted payload.
	CreateFromListing(ownerID string, data models.TrailerApiData) (*models.Trailer, error)
	// UpdateFromListing replaces a trailer's content from a formatted payload.
	UpdateFromListing(ownerID, trailerID string, data models.TrailerApiData) (*models.Trailer, error)
	GetTrailer(id string) (*models.Trailer, error)
	GetByOwner(ownerID string) ([]models.Trailer, error)
	Search(criteria models.TrailerSearchCriteria) ([]models.Trailer, error)
	DeleteTrailer(ownerID, trailerID string) error
	SetAvailable(ownerID, trailerID string, available bool) error
	// RefreshRating recomputes the aggregate review score of a trailer.
	RefreshRating(trailerID string, rating float64, count int) error
}

// DefaultTrailerService is the production implementation. Storage is used
// to clean up image assets when a trailer is deleted; a nil Storage skips
// the cleanup.
type DefaultTrailerService struct {
	Repo    trailerRepo.TrailerRepository
	Storage storage.StorageService
}

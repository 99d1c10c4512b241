package trailerRepo

import (
	"trailhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TrailerRepository defines methods for trailer listing data access.
type TrailerRepository interface {
	// GetByID retrieves a trailer by its unique ID.
	GetByID(id string) (*models.Trailer, error)
	// GetByOwner retrieves all trailers published by one owner.
	GetByOwner(ownerID string) ([]models.Trailer, error)
	// Create inserts a new trailer record.
	Create(trailer *models.Trailer) error
	// Update replaces an existing trailer record.
	Update(trailer *models.Trailer) error
	// UpdateWithDocument patches a trailer document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a trailer record by its ID.
	Delete(id string) error
	// Search performs a public search based on the given criteria.
	Search(criteria models.TrailerSearchCriteria) ([]models.Trailer, error)
	// GetByIDWithProjection retrieves a trailer by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Trailer, error)
}

package rentalRepo

import "trailhub/models"

// RentalRepository defines methods for rental data access.
type RentalRepository interface {
	// GetByID retrieves a rental by its unique ID.
	GetByID(id string) (*models.Rental, error)
	// GetByRenter retrieves all rentals requested by a user.
	GetByRenter(renterID string) ([]models.Rental, error)
	// GetByOwner retrieves all rentals on a user's listings.
	GetByOwner(ownerID string) ([]models.Rental, error)
	// GetOverlapping returns non-cancelled rentals of a trailer overlapping
	// the given date range (inclusive, "2006-01-02" strings).
	GetOverlapping(trailerID, startDate, endDate string) ([]models.Rental, error)
	// Create inserts a new rental record.
	Create(rental *models.Rental) error
	// UpdateStatus transitions a rental to the given status.
	UpdateStatus(id, status string) error
	// MarkReviewed flags a rental as reviewed.
	MarkReviewed(id string) error
}

package rental

import (
	rentalRepo "trailhub/database/repository/rental"
	trailerRepo "trailhub/database/repository/trailer"
	userRepo "trailhub/database/repository/user"
	"trailhub/models"
	"trailhub/services/notification"
)

type RentalService interface {
	// RequestRental creates a booking request for a trailer. Owners with
	// auto-approve enabled get an immediately approved rental.
	RequestRental(renterID string, req models.RentalRequest) (*models.Rental, error)

	GetRental(rentalID, userID string) (*models.Rental, error)
	GetByRenter(renterID string) ([]models.Rental, error)
	GetByOwner(ownerID string) ([]models.Rental, error)

	// Owner decisions.
	ApproveRental(rentalID, ownerID string) (*models.Rental, error)
	RejectRental(rentalID, ownerID string) (*models.Rental, error)

	// Either party can cancel before completion.
	CancelRental(rentalID, userID string) (*models.Rental, error)
	// CompleteRental closes an approved rental after the end date.
	CompleteRental(rentalID, ownerID string) (*models.Rental, error)
}

// DefaultRentalService is the production implementation.
type DefaultRentalService struct {
	Repo     rentalRepo.RentalRepository
	Trailers trailerRepo.TrailerRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
}

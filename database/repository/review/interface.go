package reviewRepo

import "trailhub/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// GetByTrailer retrieves all reviews of one trailer, newest first.
	GetByTrailer(trailerID string) ([]models.Review, error)
	// GetByReviewee retrieves all reviews received by a user, newest first.
	GetByReviewee(userID string) ([]models.Review, error)
	// AggregateForTrailer returns the average rating and count for a trailer.
	AggregateForTrailer(trailerID string) (float64, int, error)
	// AggregateForUser returns the average rating and count for a reviewee.
	AggregateForUser(userID string) (float64, int, error)
}

package review

import (
	"errors"
	"fmt"
	"time"

	rentalRepo "trailhub/database/repository/rental"
	reviewRepo "trailhub/database/repository/review"
	trailerRepo "trailhub/database/repository/trailer"
	userRepo "trailhub/database/repository/user"
	"trailhub/models"
	"trailhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type ReviewService interface {
	// CreateReview submits feedback on a completed rental. The reviewer must
	// be the renter or the owner; each rental takes one review from the
	// renter side, which also feeds the trailer's aggregate.
	CreateReview(reviewerID string, req models.ReviewRequest) (*models.Review, error)
	GetByTrailer(trailerID string) ([]models.Review, error)
	GetByUser(userID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Rentals  rentalRepo.RentalRepository
	Trailers trailerRepo.TrailerRepository
	Users    userRepo.UserRepository
}

var (
	ErrRentalNotFound     = errors.New("rental not found")
	ErrRentalNotCompleted = errors.New("rental is not completed yet")
	ErrNotParticipant     = errors.New("rental does not involve this user")
	ErrAlreadyReviewed    = errors.New("rental has already been reviewed")
	ErrRatingOutOfRange   = errors.New("rating must be between 1 and 5")
)

func (s *DefaultReviewService) CreateReview(reviewerID string, req models.ReviewRequest) (*models.Review, error) {
	logger := utils.GetLogger()

	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	rental, err := s.Rentals.GetByID(req.RentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	if rental == nil {
		return nil, ErrRentalNotFound
	}
	if rental.Status != models.RentalStatusCompleted {
		return nil, ErrRentalNotCompleted
	}
	if rental.RenterID != reviewerID && rental.OwnerID != reviewerID {
		return nil, ErrNotParticipant
	}

	renterReview := reviewerID == rental.RenterID
	if renterReview && rental.Reviewed {
		return nil, ErrAlreadyReviewed
	}

	revieweeID := rental.RenterID
	if renterReview {
		revieweeID = rental.OwnerID
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		TrailerID:  rental.TrailerID,
		RentalID:   rental.ID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(review); err != nil {
		logger.Error("CreateReview: failed to create review",
			zap.String("rentalID", rental.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if renterReview {
		if err := s.Rentals.MarkReviewed(rental.ID); err != nil {
			logger.Warn("CreateReview: failed to mark rental reviewed",
				zap.String("rentalID", rental.ID), zap.Error(err))
		}
		s.refreshTrailerAggregate(rental.TrailerID)
	}
	s.refreshUserAggregate(revieweeID)

	return review, nil
}

func (s *DefaultReviewService) GetByTrailer(trailerID string) ([]models.Review, error) {
	return s.Repo.GetByTrailer(trailerID)
}

func (s *DefaultReviewService) GetByUser(userID string) ([]models.Review, error) {
	return s.Repo.GetByReviewee(userID)
}

// refreshTrailerAggregate recomputes and stores the trailer's rating.
func (s *DefaultReviewService) refreshTrailerAggregate(trailerID string) {
	logger := utils.GetLogger()
	avg, count, err := s.Repo.AggregateForTrailer(trailerID)
	if err != nil {
		logger.Warn("failed to aggregate trailer reviews",
			zap.String("trailerID", trailerID), zap.Error(err))
		return
	}
	err = s.Trailers.UpdateWithDocument(trailerID, bson.M{
		"rating":      avg,
		"reviewCount": count,
		"updatedAt":   time.Now(),
	})
	if err != nil {
		logger.Warn("failed to store trailer rating",
			zap.String("trailerID", trailerID), zap.Error(err))
	}
}

// refreshUserAggregate recomputes and stores the reviewee's rating.
func (s *DefaultReviewService) refreshUserAggregate(userID string) {
	logger := utils.GetLogger()
	avg, count, err := s.Repo.AggregateForUser(userID)
	if err != nil {
		logger.Warn("failed to aggregate user reviews",
			zap.String("userID", userID), zap.Error(err))
		return
	}
	err = s.Users.UpdateWithDocument(userID, bson.M{
		"rating":      avg,
		"reviewCount": count,
		"updatedAt":   time.Now(),
	})
	if err != nil {
		logger.Warn("failed to store user rating",
			zap.String("userID", userID), zap.Error(err))
	}
}

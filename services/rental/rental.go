package rental

import (
	"fmt"
	"time"

	"trailhub/models"
	"trailhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// RequestRental books a trailer for a date range. The price is computed
// server side from the trailer's day rate; overlapping pending or approved
// rentals block the request. Owners with auto-approve skip the pending
// state.
func (s *DefaultRentalService) RequestRental(renterID string, req models.RentalRequest) (*models.Rental, error) {
	logger := utils.GetLogger()

	days, err := rentalDays(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	trailer, err := s.Trailers.GetByIDWithProjection(req.TrailerID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load trailer: %w", err)
	}
	if trailer == nil || !trailer.Available {
		return nil, ErrTrailerUnavailable
	}
	if trailer.OwnerID == renterID {
		return nil, ErrOwnRental
	}
	if days < trailer.MinRentalDuration {
		return nil, fmt.Errorf("minimum rental duration is %d days", trailer.MinRentalDuration)
	}
	if trailer.MaxRentalDuration != nil && days > *trailer.MaxRentalDuration {
		return nil, fmt.Errorf("maximum rental duration is %d days", *trailer.MaxRentalDuration)
	}

	overlapping, err := s.Repo.GetOverlapping(req.TrailerID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, ErrTrailerUnavailable
	}

	owner, err := s.Users.GetByIDWithProjection(trailer.OwnerID, bson.M{
		"id": 1, "lessorSettings": 1, "fcmToken": 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	status := models.RentalStatusPending
	if owner != nil && owner.LessorSettings.AutoApprove {
		status = models.RentalStatusApproved
	}

	now := time.Now()
	rental := &models.Rental{
		ID:         uuid.New().String(),
		TrailerID:  req.TrailerID,
		RenterID:   renterID,
		OwnerID:    trailer.OwnerID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     status,
		TotalPrice: float64(days) * trailer.PricePerDay,
		Message:    req.Message,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(rental); err != nil {
		logger.Error("RequestRental: failed to create rental",
			zap.String("trailerID", req.TrailerID), zap.Error(err))
		return nil, fmt.Errorf("failed to create rental: %w", err)
	}

	if owner != nil {
		title := "Nieuwe huuraanvraag"
		body := fmt.Sprintf("Aanvraag voor %s van %s t/m %s", trailer.Title, rental.StartDate, rental.EndDate)
		if status == models.RentalStatusApproved {
			title = "Nieuwe verhuur"
		}
		s.Notifier.SendToToken(owner.FCMToken, title, body, map[string]string{
			"rentalId": rental.ID,
			"type":     "rental_request",
		})
	}
	return rental, nil
}

func (s *DefaultRentalService) GetRental(rentalID, userID string) (*models.Rental, error) {
	rental, err := s.loadRental(rentalID)
	if err != nil {
		return nil, err
	}
	if rental.RenterID != userID && rental.OwnerID != userID {
		return nil, ErrNotParticipant
	}
	return rental, nil
}

func (s *DefaultRentalService) GetByRenter(renterID string) ([]models.Rental, error) {
	return s.Repo.GetByRenter(renterID)
}

func (s *DefaultRentalService) GetByOwner(ownerID string) ([]models.Rental, error) {
	return s.Repo.GetByOwner(ownerID)
}

// ApproveRental accepts a pending request.
func (s *DefaultRentalService) ApproveRental(rentalID, ownerID string) (*models.Rental, error) {
	return s.ownerDecision(rentalID, ownerID, models.RentalStatusApproved,
		"Aanvraag geaccepteerd", "Je huuraanvraag is geaccepteerd")
}

// RejectRental declines a pending request.
func (s *DefaultRentalService) RejectRental(rentalID, ownerID string) (*models.Rental, error) {
	return s.ownerDecision(rentalID, ownerID, models.RentalStatusRejected,
		"Aanvraag afgewezen", "Je huuraanvraag is afgewezen")
}

func (s *DefaultRentalService) ownerDecision(rentalID, ownerID, status, title, body string) (*models.Rental, error) {
	rental, err := s.loadRental(rentalID)
	if err != nil {
		return nil, err
	}
	if rental.OwnerID != ownerID {
		return nil, ErrNotParticipant
	}
	if rental.Status != models.RentalStatusPending {
		return nil, ErrInvalidTransition
	}
	if err := s.Repo.UpdateStatus(rentalID, status); err != nil {
		return nil, fmt.Errorf("failed to update rental: %w", err)
	}
	rental.Status = status
	rental.UpdatedAt = time.Now()

	s.notifyUser(rental.RenterID, title, body, rental.ID)
	return rental, nil
}

// CancelRental cancels a pending or approved rental. Both parties may
// cancel; the other side is notified.
func (s *DefaultRentalService) CancelRental(rentalID, userID string) (*models.Rental, error) {
	rental, err := s.loadRental(rentalID)
	if err != nil {
		return nil, err
	}
	if rental.RenterID != userID && rental.OwnerID != userID {
		return nil, ErrNotParticipant
	}
	if rental.Status != models.RentalStatusPending && rental.Status != models.RentalStatusApproved {
		return nil, ErrInvalidTransition
	}
	if err := s.Repo.UpdateStatus(rentalID, models.RentalStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel rental: %w", err)
	}
	rental.Status = models.RentalStatusCancelled
	rental.UpdatedAt = time.Now()

	counterparty := rental.OwnerID
	if userID == rental.OwnerID {
		counterparty = rental.RenterID
	}
	s.notifyUser(counterparty, "Verhuur geannuleerd",
		fmt.Sprintf("De verhuur van %s t/m %s is geannuleerd", rental.StartDate, rental.EndDate),
		rental.ID)
	return rental, nil
}

// CompleteRental closes an approved rental once the end date has passed,
// unlocking the review flow.
func (s *DefaultRentalService) CompleteRental(rentalID, ownerID string) (*models.Rental, error) {
	rental, err := s.loadRental(rentalID)
	if err != nil {
		return nil, err
	}
	if rental.OwnerID != ownerID {
		return nil, ErrNotParticipant
	}
	if rental.Status != models.RentalStatusApproved {
		return nil, ErrInvalidTransition
	}
	end, err := time.Parse(dateLayout, rental.EndDate)
	if err != nil || time.Now().Before(end) {
		return nil, ErrInvalidTransition
	}
	if err := s.Repo.UpdateStatus(rentalID, models.RentalStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete rental: %w", err)
	}
	rental.Status = models.RentalStatusCompleted
	rental.UpdatedAt = time.Now()
	return rental, nil
}

func (s *DefaultRentalService) loadRental(rentalID string) (*models.Rental, error) {
	rental, err := s.Repo.GetByID(rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	if rental == nil {
		return nil, ErrRentalNotFound
	}
	return rental, nil
}

func (s *DefaultRentalService) notifyUser(userID, title, body, rentalID string) {
	user, err := s.Users.GetByIDWithProjection(userID, bson.M{"id": 1, "fcmToken": 1})
	if err != nil || user == nil {
		return
	}
	s.Notifier.SendToToken(user.FCMToken, title, body, map[string]string{
		"rentalId": rentalID,
		"type":     "rental_update",
	})
}

// rentalDays counts the days of an inclusive date range.
func rentalDays(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

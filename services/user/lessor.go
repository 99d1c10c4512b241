package user

import (
	"fmt"
	"time"

	"trailhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultUserService) GetLessorSettings(userID string) (*models.LessorSettings, error) {
	user, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "lessorSettings": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessor settings: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &user.LessorSettings, nil
}

// UpdateLessorSettings replaces the lessor settings wholesale and flags the
// account as a lessor.
func (s *DefaultUserService) UpdateLessorSettings(userID string, settings models.LessorSettings) (*models.LessorSettings, error) {
	if settings.MinRentalDuration < 0 || settings.MaxRentalDuration < 0 {
		return nil, fmt.Errorf("rental durations cannot be negative")
	}
	if settings.MaxRentalDuration > 0 && settings.MaxRentalDuration < settings.MinRentalDuration {
		return nil, fmt.Errorf("maximum rental duration cannot be below the minimum")
	}

	err := s.Repo.UpdateWithDocument(userID, bson.M{
		"lessorSettings": settings,
		"isLessor":       true,
		"updatedAt":      time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update lessor settings: %w", err)
	}
	return &settings, nil
}

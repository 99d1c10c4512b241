package user

import (
	"fmt"
	"time"

	"trailhub/models"
	"trailhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	user, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser applies a partial profile update. Only non-empty fields are
// written.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		updateDoc["phoneNumber"] = req.PhoneNumber
	}
	if req.ProfileImage != "" {
		updateDoc["profileImage"] = req.ProfileImage
	}
	if req.FCMToken != "" {
		updateDoc["fcmToken"] = req.FCMToken
	}
	if req.IsLessor != nil {
		updateDoc["isLessor"] = *req.IsLessor
	}

	if err := s.Repo.UpdateWithDocument(req.ID, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateUser: failed to update user",
			zap.String("userID", req.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetUserByID(req.ID)
}

// UpdateUserPassword verifies the current password before replacing it. The
// token hash is cleared so every session has to sign in again.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	user, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	user.TokenHash = ""
	user.UpdatedAt = time.Now()
	if err := s.Repo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	s.clearAuthCache(userID)
	return nil
}

func (s *DefaultUserService) DeleteUser(userID string) error {
	user, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1})
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.clearAuthCache(userID)
	return nil
}

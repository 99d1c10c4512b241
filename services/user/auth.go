package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"trailhub/models"
	"trailhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// verifyPasswordComplexity checks that the password contains at least one
// lowercase letter, one uppercase letter and one digit.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

// RegisterUser creates a new account, issues a token and stores its hash.
func (s *DefaultUserService) RegisterUser(reg models.UserRegistration) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if err := verifyPasswordComplexity(reg.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		logger.Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		PasswordHash: string(hashedPassword),
		License:      models.DriverLicense{Category: "none"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(user.ID, user.Email, 24*time.Hour)
	if err != nil {
		logger.Error("RegisterUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	user.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&user); err != nil {
		logger.Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:          user.ID,
		Token:       token,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}, nil
}

// AuthenticateUser verifies credentials, rotates the token and clears the
// auth cache entry so the new token hash takes effect immediately.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, 24*time.Hour)
	if err != nil {
		logger.Error("AuthenticateUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	user.TokenHash = utils.HashToken(token)
	user.UpdatedAt = time.Now()
	if err := s.Repo.Update(user); err != nil {
		logger.Error("AuthenticateUser: failed to update token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	s.clearAuthCache(user.ID)

	return &AuthResponse{
		ID:           user.ID,
		Token:        token,
		Name:         user.Name,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		ProfileImage: user.ProfileImage,
		IsLessor:     user.IsLessor,
	}, nil
}

// RevokeUserAuthToken logs the user out everywhere by clearing the stored
// token hash and the cached copy.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	logger := utils.GetLogger()

	user, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		logger.Error("RevokeUserAuthToken: failed to retrieve user",
			zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.TokenHash = ""
	user.UpdatedAt = time.Now()
	if err := s.Repo.Update(user); err != nil {
		logger.Error("RevokeUserAuthToken: failed to clear token hash",
			zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}
	s.clearAuthCache(userID)
	return nil
}

func (s *DefaultUserService) clearAuthCache(userID string) {
	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userID
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to clear auth cache",
			zap.String("userID", userID), zap.Error(err))
	}
}

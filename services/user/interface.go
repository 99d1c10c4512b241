package user

import (
	userRepo "trailhub/database/repository/user"
	"trailhub/models"
)

type UserService interface {
	// Registration and authentication.
	RegisterUser(reg models.UserRegistration) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	RevokeUserAuthToken(userID string) error

	// Profile management.
	GetUserByID(userID string) (*models.User, error)
	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error

	// Lessor settings.
	GetLessorSettings(userID string) (*models.LessorSettings, error)
	UpdateLessorSettings(userID string, settings models.LessorSettings) (*models.LessorSettings, error)

	// Driver's license verification.
	SubmitLicense(userID string, license models.DriverLicense) (*models.DriverLicense, error)

	// Stripe payment methods.
	AttachPaymentMethod(userID string, req models.AttachPaymentMethodRequest) (*models.PaymentMethodInfo, error)
	ListPaymentMethods(userID string) ([]models.PaymentMethodInfo, error)
	DetachPaymentMethod(userID, paymentMethodID string) error
	SetDefaultPaymentMethod(userID, paymentMethodID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and profile details.
type AuthResponse struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsLessor     bool   `json:"isLessor"`
}

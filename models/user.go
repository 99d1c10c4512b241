package models

import "time"

// User is a marketplace account. Every user can rent; lessor mode is
// activated by publishing a listing or setting LessorSettings.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PhoneNumber  string `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash" json:"-"`
	ProfileImage string `bson:"profileImage" json:"profileImage,omitempty"`

	IsLessor       bool           `bson:"isLessor" json:"isLessor"`
	LessorSettings LessorSettings `bson:"lessorSettings" json:"lessorSettings"`
	License        DriverLicense  `bson:"license" json:"license"`

	// Stripe-related.
	StripeCustomerID       string `bson:"stripeCustomerId,omitempty" json:"-"`
	DefaultPaymentMethodID string `bson:"defaultPaymentMethodId,omitempty" json:"defaultPaymentMethodId,omitempty"`

	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"reviewCount" json:"reviewCount"`
	FCMToken    string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LessorSettings controls how incoming rental requests are handled for a
// user's listings.
type LessorSettings struct {
	AutoApprove        bool   `bson:"autoApprove" json:"autoApprove"`
	MinRentalDuration  int    `bson:"minRentalDuration" json:"minRentalDuration"`
	MaxRentalDuration  int    `bson:"maxRentalDuration" json:"maxRentalDuration"`
	CancellationPolicy string `bson:"cancellationPolicy" json:"cancellationPolicy"`
	PayoutIBAN         string `bson:"payoutIban,omitempty" json:"payoutIban,omitempty"`
}

// DriverLicense records the outcome of a license verification.
type DriverLicense struct {
	Number      string     `bson:"number,omitempty" json:"number,omitempty"`
	CountryCode string     `bson:"countryCode,omitempty" json:"countryCode,omitempty"`
	Category    string     `bson:"category,omitempty" json:"category,omitempty"` // "B", "BE", "none"
	Verified    bool       `bson:"verified" json:"verified"`
	VerifiedAt  *time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	ExpiresAt   *time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
}

// UserRegistration is the register-endpoint payload.
type UserRegistration struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required"`
}

// UserUpdateRequest carries partial profile updates.
type UserUpdateRequest struct {
	ID           string `json:"-"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phoneNumber"`
	ProfileImage string `json:"profileImage"`
	FCMToken     string `json:"fcmToken"`
	IsLessor     *bool  `json:"isLessor"`
}

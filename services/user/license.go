package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"trailhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// licenseNumberPattern matches Dutch driving licence numbers (10 digits).
var licenseNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

var licenseCategories = map[string]bool{
	"B":  true,
	"BE": true,
}

// SubmitLicense validates and records a driver's license. Verification here
// is a format and expiry check; document verification runs out of band.
func (s *DefaultUserService) SubmitLicense(userID string, license models.DriverLicense) (*models.DriverLicense, error) {
	user, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	license.Category = strings.ToUpper(strings.TrimSpace(license.Category))
	if !licenseCategories[license.Category] {
		return nil, fmt.Errorf("unsupported license category %q", license.Category)
	}
	if license.CountryCode == "" {
		license.CountryCode = "NL"
	}
	if license.CountryCode == "NL" && !licenseNumberPattern.MatchString(license.Number) {
		return nil, fmt.Errorf("invalid license number format")
	}
	if license.ExpiresAt != nil && license.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("license has expired")
	}

	now := time.Now()
	license.Verified = true
	license.VerifiedAt = &now

	err = s.Repo.UpdateWithDocument(userID, bson.M{
		"license":   license,
		"updatedAt": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store license: %w", err)
	}
	return &license, nil
}

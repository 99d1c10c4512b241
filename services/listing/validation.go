package listing

import (
	"strconv"
	"strings"

	"trailhub/models"
)

// ValidateSection reports whether a section's fields satisfy its business
// rules. Pure: no side effects, identical input gives identical output.
func ValidateSection(section models.FormSection, form models.TrailerFormData) bool {
	switch section {
	case models.SectionType:
		return validateType(form)
	case models.SectionDetails:
		return validateDetails(form)
	case models.SectionLocation:
		return validateLocation(form)
	case models.SectionAvailability:
		return validateAvailability(form)
	case models.SectionPricing:
		return validatePricing(form)
	case models.SectionAccessories:
		// Optional section, always valid.
		return true
	case models.SectionPhotos:
		return validatePhotos(form)
	case models.SectionExtra:
		return validateExtra(form)
	default:
		return false
	}
}

func validateType(form models.TrailerFormData) bool {
	if strings.TrimSpace(form.TrailerType) == "" {
		return false
	}
	// "Overig" needs the free-text type filled in as well.
	if form.TrailerType == "Overig" && strings.TrimSpace(form.CustomType) == "" {
		return false
	}
	return true
}

func validateDetails(form models.TrailerFormData) bool {
	// Height, weight and capacity are optional.
	return strings.TrimSpace(form.Length) != "" && strings.TrimSpace(form.Width) != ""
}

func validateLocation(form models.TrailerFormData) bool {
	if strings.TrimSpace(form.Address) == "" ||
		strings.TrimSpace(form.City) == "" ||
		strings.TrimSpace(form.PostalCode) == "" {
		return false
	}
	// Text fields alone are not enough: a map pin must have been placed.
	return form.Latitude != nil && form.Longitude != nil
}

// validateAvailability enforces the two-part rule: at least one day is
// available, and at least one available day has at least one open daypart.
func validateAvailability(form models.TrailerFormData) bool {
	anyDay := false
	anyOpenPart := false
	for _, day := range form.WeeklyAvailability {
		if !day.Available {
			continue
		}
		anyDay = true
		if day.Morning || day.Afternoon || day.Evening {
			anyOpenPart = true
		}
	}
	return anyDay && anyOpenPart
}

func validatePricing(form models.TrailerFormData) bool {
	// Presence only; numeric range checking happens at the API layer.
	return strings.TrimSpace(form.PricePerDay) != ""
}

// minUploadedPhotos is the cardinality requirement of the photos section.
const minUploadedPhotos = 3

func validatePhotos(form models.TrailerFormData) bool {
	count := 0
	for _, img := range form.Images {
		if img.Uploaded {
			count++
		}
	}
	return count >= minUploadedPhotos
}

func validateExtra(form models.TrailerFormData) bool {
	if form.HomeDelivery && strings.TrimSpace(form.MaxDeliveryDistance) == "" {
		return false
	}
	if form.RequiresDriversLicense && (form.LicenseType == "" || form.LicenseType == "none") {
		return false
	}
	minDur, err := strconv.Atoi(strings.TrimSpace(form.MinRentalDuration))
	if err != nil || minDur < 1 {
		return false
	}
	if strings.TrimSpace(form.MaxRentalDuration) != "" {
		maxDur, err := strconv.Atoi(strings.TrimSpace(form.MaxRentalDuration))
		if err != nil || maxDur < minDur {
			return false
		}
	}
	return true
}

// gatingSections must all be completed before a listing can be submitted.
var gatingSections = []models.FormSection{
	models.SectionType,
	models.SectionDetails,
	models.SectionLocation,
	models.SectionAvailability,
	models.SectionPricing,
	models.SectionPhotos,
	models.SectionExtra,
}

// ReadyToSubmit reports whether every gating section validates against the
// current form snapshot.
func ReadyToSubmit(form models.TrailerFormData) bool {
	for _, section := range gatingSections {
		if !ValidateSection(section, form) {
			return false
		}
	}
	return true
}

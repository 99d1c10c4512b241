package listing

import (
	"encoding/json"
	"strconv"
	"strings"

	"trailhub/models"
)

// FormatTrailerForAPI maps the form snapshot onto the wire payload. Pure
// and deterministic: numeric strings parse to 0 (or null for nullable
// fields) on failure, never an error; only server-confirmed images are
// included; a malformed availability shape degrades to the all-open
// default instead of propagating.
func FormatTrailerForAPI(form models.TrailerFormData) models.TrailerApiData {
	trailerType := form.TrailerType
	if trailerType == "Overig" && strings.TrimSpace(form.CustomType) != "" {
		trailerType = strings.TrimSpace(form.CustomType)
	}

	images := make([]models.TrailerImage, 0, len(form.Images))
	for _, img := range form.UploadedImages() {
		// Fresh uploads carry the storage public ID in the item ID; images
		// restored into an edit session carry a synthetic "existing-" ID and
		// keep whatever public ID the stored trailer had.
		publicID := img.ID
		if strings.HasPrefix(publicID, "existing-") {
			publicID = ""
		}
		images = append(images, models.TrailerImage{URL: img.URL, PublicID: publicID})
	}

	return models.TrailerApiData{
		Type:                   trailerType,
		Title:                  form.Title,
		Description:            form.Description,
		Address:                form.Address,
		City:                   form.City,
		PostalCode:             form.PostalCode,
		Country:                form.Country,
		Latitude:               floatValue(form.Latitude),
		Longitude:              floatValue(form.Longitude),
		Length:                 parseFloatOrZero(form.Length),
		Width:                  parseFloatOrZero(form.Width),
		Height:                 parseFloatOrZero(form.Height),
		Weight:                 parseFloatOrZero(form.Weight),
		Capacity:               parseFloatOrZero(form.Capacity),
		PricePerDay:            parseFloatOrZero(form.PricePerDay),
		SecurityDeposit:        parseFloatOrZero(form.SecurityDeposit),
		CancellationPolicy:     form.CancellationPolicy,
		MinRentalDuration:      parseIntOrZero(form.MinRentalDuration),
		MaxRentalDuration:      parseIntOrNil(form.MaxRentalDuration),
		Features:               encodeFeatures(form.Accessories),
		RequiresDriversLicense: form.RequiresDriversLicense,
		LicenseType:            licenseType(form),
		IncludesInsurance:      form.IncludesInsurance,
		HomeDelivery:           form.HomeDelivery,
		DeliveryFee:            parseFloatOrZero(form.DeliveryFee),
		MaxDeliveryDistance:    parseIntOrNil(form.MaxDeliveryDistance),
		Instructions:           form.Instructions,
		Images:                 images,
		Availability:           formatAvailability(form.WeeklyAvailability),
	}
}

// formatAvailability passes the canonical week through, falling back to
// every day all dayparts open when the shape is unusable.
func formatAvailability(week []models.DayAvailability) []models.DayAvailability {
	if len(week) != len(models.DayNames) {
		return models.DefaultWeeklyAvailability()
	}
	seen := make(map[string]bool, len(week))
	for _, entry := range week {
		known := false
		for _, day := range models.DayNames {
			if entry.Day == day {
				known = true
				break
			}
		}
		if !known || seen[entry.Day] {
			return models.DefaultWeeklyAvailability()
		}
		seen[entry.Day] = true
	}
	return week
}

// encodeFeatures serializes the selected accessories for the features
// column. Price and slug ID travel along; the selected flag does not.
func encodeFeatures(accessories []models.Accessory) string {
	type feature struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price,omitempty"`
	}
	features := make([]feature, 0, len(accessories))
	for _, acc := range SelectedAccessories(accessories) {
		features = append(features, feature{ID: acc.ID, Name: acc.Name, Price: acc.Price})
	}
	data, err := json.Marshal(features)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func licenseType(form models.TrailerFormData) string {
	if !form.RequiresDriversLicense {
		return ""
	}
	return form.LicenseType
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Tolerate decimal input for whole-number fields.
		if f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return v
}

func parseIntOrNil(s string) *int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := parseIntOrZero(s)
	if v == 0 {
		return nil
	}
	return &v
}

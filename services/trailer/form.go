package trailer

import (
	"encoding/json"
	"strconv"

	"trailhub/models"
)

// FormDataFromTrailer rebuilds an editable form snapshot from a published
// trailer, for edit sessions. The stored payload may predate the current
// schema, so every field read is defensive.
func FormDataFromTrailer(t *models.Trailer) models.TrailerFormData {
	form := models.NewTrailerFormData()

	form.TrailerType = t.Type
	form.Title = t.Title
	form.Description = t.Description
	form.Address = t.Address
	form.City = t.City
	form.PostalCode = t.PostalCode
	if t.Country != "" {
		form.Country = t.Country
	}
	if t.Latitude != 0 || t.Longitude != 0 {
		lat, lng := t.Latitude, t.Longitude
		form.Latitude = &lat
		form.Longitude = &lng
	}

	form.Length = formatDimension(t.Length)
	form.Width = formatDimension(t.Width)
	form.Height = formatDimension(t.Height)
	form.Weight = formatDimension(t.Weight)
	form.Capacity = formatDimension(t.Capacity)
	form.PricePerDay = formatDimension(t.PricePerDay)
	form.SecurityDeposit = formatDimension(t.SecurityDeposit)
	form.DeliveryFee = formatDimension(t.DeliveryFee)

	if t.CancellationPolicy != "" {
		form.CancellationPolicy = t.CancellationPolicy
	}
	if t.MinRentalDuration > 0 {
		form.MinRentalDuration = strconv.Itoa(t.MinRentalDuration)
	}
	if t.MaxRentalDuration != nil {
		form.MaxRentalDuration = strconv.Itoa(*t.MaxRentalDuration)
	}
	form.RequiresDriversLicense = t.RequiresDriversLicense
	if t.LicenseType != "" {
		form.LicenseType = t.LicenseType
	}
	form.IncludesInsurance = t.IncludesInsurance
	form.HomeDelivery = t.HomeDelivery
	if t.MaxDeliveryDistance != nil {
		form.MaxDeliveryDistance = strconv.Itoa(*t.MaxDeliveryDistance)
	}
	form.Instructions = t.Instructions
	form.AgreeToTerms = true

	form.Accessories = decodeFeatures(t.Features)

	form.Images = make([]models.ImageItem, 0, len(t.Images))
	for i, img := range t.Images {
		id := img.PublicID
		if id == "" {
			id = "existing-" + strconv.Itoa(i)
		}
		form.Images = append(form.Images, models.ImageItem{
			ID:       id,
			Name:     img.URL,
			URL:      img.URL,
			Uploaded: true,
		})
	}

	if len(t.Availability) > 0 {
		form.WeeklyAvailability = t.Availability
	}

	return form
}

// decodeFeatures parses the stored features column back into accessories,
// all marked selected. Malformed data degrades to an empty list.
func decodeFeatures(features string) []models.Accessory {
	if features == "" {
		return []models.Accessory{}
	}
	var entries []struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := json.Unmarshal([]byte(features), &entries); err != nil {
		return []models.Accessory{}
	}
	accessories := make([]models.Accessory, 0, len(entries))
	for _, e := range entries {
		id := e.ID
		if id == "" {
			id = models.AccessorySlug(e.Name)
		}
		accessories = append(accessories, models.Accessory{
			ID:       id,
			Name:     e.Name,
			Price:    e.Price,
			Selected: true,
		})
	}
	return accessories
}

func formatDimension(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

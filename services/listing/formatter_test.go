package listing

import (
	"encoding/json"
	"testing"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTrailerForAPINumericParsing(t *testing.T) {
	form := validForm()
	form.Length = "250"
	form.PricePerDay = "25.00"
	form.Weight = "abc"
	form.SecurityDeposit = ""

	data := FormatTrailerForAPI(form)
	assert.Equal(t, 250.0, data.Length)
	assert.Equal(t, 25.0, data.PricePerDay)
	assert.Equal(t, 0.0, data.Weight, "unparseable input becomes zero, never an error")
	assert.Equal(t, 0.0, data.SecurityDeposit)
}

func TestFormatTrailerForAPINullableInts(t *testing.T) {
	form := validForm()
	form.MaxRentalDuration = ""
	form.MaxDeliveryDistance = "0"

	data := FormatTrailerForAPI(form)
	assert.Nil(t, data.MaxRentalDuration)
	assert.Nil(t, data.MaxDeliveryDistance, "zero collapses to null for nullable fields")

	form.MaxRentalDuration = "14"
	data = FormatTrailerForAPI(form)
	require.NotNil(t, data.MaxRentalDuration)
	assert.Equal(t, 14, *data.MaxRentalDuration)
}

func TestFormatTrailerForAPICustomType(t *testing.T) {
	form := validForm()
	form.TrailerType = "Overig"
	form.CustomType = " Voertuigtrailer "

	data := FormatTrailerForAPI(form)
	assert.Equal(t, "Voertuigtrailer", data.Type)

	form.TrailerType = "Aanhanger"
	form.CustomType = "genegeerd"
	data = FormatTrailerForAPI(form)
	assert.Equal(t, "Aanhanger", data.Type)
}

func TestFormatTrailerForAPIFiltersImages(t *testing.T) {
	form := validForm()
	form.Images = []models.ImageItem{
		{ID: "trailers/a", Uploaded: true, URL: "https://cdn/a.jpg"},
		{ID: "b", Uploading: true},
		{ID: "c", Uploaded: true, URL: ""},
	}

	data := FormatTrailerForAPI(form)
	require.Len(t, data.Images, 1)
	assert.Equal(t, "https://cdn/a.jpg", data.Images[0].URL)
	assert.Equal(t, "trailers/a", data.Images[0].PublicID, "fresh uploads keep their storage handle")
}

func TestFormatTrailerForAPIExistingImagesCarryNoPublicID(t *testing.T) {
	form := validForm()
	form.Images = []models.ImageItem{
		{ID: "existing-0", Uploaded: true, URL: "https://cdn/old.jpg"},
	}

	data := FormatTrailerForAPI(form)
	require.Len(t, data.Images, 1)
	assert.Empty(t, data.Images[0].PublicID)
}

func TestFormatTrailerForAPIEncodesSelectedAccessories(t *testing.T) {
	form := validForm()
	form.Accessories = []models.Accessory{
		{ID: "disselslot", Name: "Disselslot", Price: 2.5, Selected: true},
		{ID: "net", Name: "Net", Price: 1, Selected: false},
	}

	data := FormatTrailerForAPI(form)
	var features []map[string]any
	require.NoError(t, json.Unmarshal([]byte(data.Features), &features))
	require.Len(t, features, 1)
	assert.Equal(t, "disselslot", features[0]["id"])
	assert.Equal(t, "Disselslot", features[0]["name"])

	form.Accessories = nil
	data = FormatTrailerForAPI(form)
	assert.Equal(t, "[]", data.Features)
}

func TestFormatTrailerForAPILicenseGating(t *testing.T) {
	form := validForm()
	form.RequiresDriversLicense = false
	form.LicenseType = "BE"

	data := FormatTrailerForAPI(form)
	assert.Empty(t, data.LicenseType, "license type only travels when a license is required")

	form.RequiresDriversLicense = true
	data = FormatTrailerForAPI(form)
	assert.Equal(t, "BE", data.LicenseType)
}

func TestFormatAvailabilityFallback(t *testing.T) {
	// Fewer than seven days degrades to the default week.
	short := models.DefaultWeeklyAvailability()[:5]
	assert.Equal(t, models.DefaultWeeklyAvailability(), formatAvailability(short))

	// Duplicate days degrade too.
	dup := models.DefaultWeeklyAvailability()
	dup[1].Day = dup[0].Day
	assert.Equal(t, models.DefaultWeeklyAvailability(), formatAvailability(dup))

	// Unknown day names degrade.
	unknown := models.DefaultWeeklyAvailability()
	unknown[3].Day = "FUNDAY"
	assert.Equal(t, models.DefaultWeeklyAvailability(), formatAvailability(unknown))

	// A well-shaped week passes through unchanged.
	week := models.DefaultWeeklyAvailability()
	week[2].Morning = false
	assert.Equal(t, week, formatAvailability(week))
}

func TestFormatTrailerForAPILatitudeLongitude(t *testing.T) {
	form := validForm()
	data := FormatTrailerForAPI(form)
	assert.Equal(t, 52.3702, data.Latitude)
	assert.Equal(t, 4.8952, data.Longitude)

	form.Latitude = nil
	form.Longitude = nil
	data = FormatTrailerForAPI(form)
	assert.Zero(t, data.Latitude)
	assert.Zero(t, data.Longitude)
}

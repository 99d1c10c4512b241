package trailer

import (
	"testing"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedTrailer() *models.Trailer {
	maxDuration := 14
	return &models.Trailer{
		ID:                "trailer-1",
		OwnerID:           "user-1",
		Type:              "Bagagewagen",
		Title:             "Ruime bagagewagen",
		Address:           "Keizersgracht 1",
		City:              "Amsterdam",
		PostalCode:        "1015 CJ",
		Latitude:          52.3702,
		Longitude:         4.8952,
		Length:            250,
		Width:             150.5,
		PricePerDay:       25,
		MinRentalDuration: 2,
		MaxRentalDuration: &maxDuration,
		Features:          `[{"id":"disselslot","name":"Disselslot","price":2.5}]`,
		Images: []models.TrailerImage{
			{URL: "https://cdn/a.jpg"},
			{URL: "https://cdn/b.jpg", PublicID: "trailers/b"},
		},
	}
}

func TestFormDataFromTrailerMapsFields(t *testing.T) {
	form := FormDataFromTrailer(publishedTrailer())

	assert.Equal(t, "Bagagewagen", form.TrailerType)
	assert.Equal(t, "Ruime bagagewagen", form.Title)
	assert.Equal(t, "Amsterdam", form.City)
	require.NotNil(t, form.Latitude)
	require.NotNil(t, form.Longitude)
	assert.Equal(t, 52.3702, *form.Latitude)
	assert.Equal(t, 4.8952, *form.Longitude)

	// Numeric columns come back as form strings, trailing zeros trimmed.
	assert.Equal(t, "250", form.Length)
	assert.Equal(t, "150.5", form.Width)
	assert.Equal(t, "", form.Height, "zero means unset, not 0")
	assert.Equal(t, "25", form.PricePerDay)
	assert.Equal(t, "2", form.MinRentalDuration)
	assert.Equal(t, "14", form.MaxRentalDuration)

	// Edit sessions start with the terms already accepted.
	assert.True(t, form.AgreeToTerms)
}

func TestFormDataFromTrailerRestoresImages(t *testing.T) {
	form := FormDataFromTrailer(publishedTrailer())

	require.Len(t, form.Images, 2)
	assert.Equal(t, "existing-0", form.Images[0].ID, "images without a public ID get a synthetic one")
	assert.Equal(t, "https://cdn/a.jpg", form.Images[0].URL)
	assert.True(t, form.Images[0].Uploaded)
	assert.False(t, form.Images[0].Uploading)

	// The storage public ID survives the round trip into the form.
	assert.Equal(t, "trailers/b", form.Images[1].ID)
}

func TestFormDataFromTrailerDecodesFeatures(t *testing.T) {
	form := FormDataFromTrailer(publishedTrailer())

	require.Len(t, form.Accessories, 1)
	acc := form.Accessories[0]
	assert.Equal(t, "disselslot", acc.ID)
	assert.Equal(t, "Disselslot", acc.Name)
	assert.Equal(t, 2.5, acc.Price)
	assert.True(t, acc.Selected)
}

func TestDecodeFeaturesDegradesGracefully(t *testing.T) {
	assert.Empty(t, decodeFeatures(""))
	assert.Empty(t, decodeFeatures("not json"))
	assert.Empty(t, decodeFeatures(`{"id":"x"}`), "a non-array payload is dropped")

	// Entries without an id get one derived from the name.
	accessories := decodeFeatures(`[{"name":"Disselslot","price":2.5}]`)
	require.Len(t, accessories, 1)
	assert.Equal(t, models.AccessorySlug("Disselslot"), accessories[0].ID)
}

func TestFormDataFromTrailerMissingLocationStaysNil(t *testing.T) {
	trailer := publishedTrailer()
	trailer.Latitude = 0
	trailer.Longitude = 0

	form := FormDataFromTrailer(trailer)
	assert.Nil(t, form.Latitude)
	assert.Nil(t, form.Longitude)
}

func TestFormDataFromTrailerKeepsDefaultAvailability(t *testing.T) {
	trailer := publishedTrailer()
	trailer.Availability = nil

	form := FormDataFromTrailer(trailer)
	assert.Equal(t, models.DefaultWeeklyAvailability(), form.WeeklyAvailability)

	week := models.DefaultWeeklyAvailability()
	week[0].Available = false
	trailer.Availability = week

	form = FormDataFromTrailer(trailer)
	assert.False(t, form.WeeklyAvailability[0].Available)
}

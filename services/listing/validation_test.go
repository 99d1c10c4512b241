package listing

import (
	"testing"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
)

// validForm builds a form snapshot that passes every gating section.
func validForm() models.TrailerFormData {
	lat, lng := 52.3702, 4.8952
	form := models.NewTrailerFormData()
	form.TrailerType = "Aanhanger"
	form.Length = "250"
	form.Width = "150"
	form.Address = "Keizersgracht 1"
	form.City = "Amsterdam"
	form.PostalCode = "1015 CJ"
	form.Latitude = &lat
	form.Longitude = &lng
	form.PricePerDay = "25"
	form.Images = []models.ImageItem{
		{ID: "a", Uploaded: true, URL: "https://cdn/a.jpg"},
		{ID: "b", Uploaded: true, URL: "https://cdn/b.jpg"},
		{ID: "c", Uploaded: true, URL: "https://cdn/c.jpg"},
	}
	form.AgreeToTerms = true
	return form
}

func TestValidateTypeSection(t *testing.T) {
	form := models.NewTrailerFormData()
	assert.False(t, ValidateSection(models.SectionType, form))

	form.TrailerType = "Aanhanger"
	assert.True(t, ValidateSection(models.SectionType, form))

	form.TrailerType = "Overig"
	form.CustomType = ""
	assert.False(t, ValidateSection(models.SectionType, form))

	form.CustomType = "Voertuigtrailer"
	assert.True(t, ValidateSection(models.SectionType, form))

	form.CustomType = "   "
	assert.False(t, ValidateSection(models.SectionType, form))
}

func TestValidateDetailsSection(t *testing.T) {
	form := models.NewTrailerFormData()
	assert.False(t, ValidateSection(models.SectionDetails, form))

	form.Length = "250"
	assert.False(t, ValidateSection(models.SectionDetails, form))

	form.Width = "150"
	assert.True(t, ValidateSection(models.SectionDetails, form))

	// Height, weight and capacity remain optional.
	form.Height = ""
	form.Weight = ""
	form.Capacity = ""
	assert.True(t, ValidateSection(models.SectionDetails, form))
}

func TestValidateLocationRequiresMapPin(t *testing.T) {
	form := models.NewTrailerFormData()
	form.Address = "Keizersgracht 1"
	form.City = "Amsterdam"
	form.PostalCode = "1015 CJ"
	assert.False(t, ValidateSection(models.SectionLocation, form),
		"text fields alone must not complete the location section")

	lat, lng := 52.3702, 4.8952
	form.Latitude = &lat
	assert.False(t, ValidateSection(models.SectionLocation, form))

	form.Longitude = &lng
	assert.True(t, ValidateSection(models.SectionLocation, form))
}

func TestValidateAvailabilityTwoPartRule(t *testing.T) {
	form := models.NewTrailerFormData()
	assert.True(t, ValidateSection(models.SectionAvailability, form),
		"the all-open default must validate")

	// No day available at all.
	for i := range form.WeeklyAvailability {
		form.WeeklyAvailability[i].Available = false
	}
	assert.False(t, ValidateSection(models.SectionAvailability, form))

	// A day available but with every daypart closed.
	form.WeeklyAvailability[0].Available = true
	form.WeeklyAvailability[0].Morning = false
	form.WeeklyAvailability[0].Afternoon = false
	form.WeeklyAvailability[0].Evening = false
	assert.False(t, ValidateSection(models.SectionAvailability, form))

	// One open daypart on an available day satisfies both parts.
	form.WeeklyAvailability[0].Evening = true
	assert.True(t, ValidateSection(models.SectionAvailability, form))

	// Open dayparts on an unavailable day do not count.
	form.WeeklyAvailability[0].Available = false
	assert.False(t, ValidateSection(models.SectionAvailability, form))
}

func TestValidatePhotosCardinality(t *testing.T) {
	form := models.NewTrailerFormData()

	addUploaded := func(n int) {
		form.Images = nil
		for i := 0; i < n; i++ {
			form.Images = append(form.Images, models.ImageItem{Uploaded: true})
		}
	}

	addUploaded(2)
	assert.False(t, ValidateSection(models.SectionPhotos, form))
	addUploaded(3)
	assert.True(t, ValidateSection(models.SectionPhotos, form))
	addUploaded(4)
	assert.True(t, ValidateSection(models.SectionPhotos, form))

	// Pending uploads do not count toward the minimum.
	form.Images = []models.ImageItem{
		{Uploaded: true}, {Uploaded: true}, {Uploading: true},
	}
	assert.False(t, ValidateSection(models.SectionPhotos, form))
}

func TestValidateExtraSection(t *testing.T) {
	form := models.NewTrailerFormData()
	assert.True(t, ValidateSection(models.SectionExtra, form))

	// Home delivery requires a max distance.
	form.HomeDelivery = true
	form.MaxDeliveryDistance = ""
	assert.False(t, ValidateSection(models.SectionExtra, form))
	form.MaxDeliveryDistance = "15"
	assert.True(t, ValidateSection(models.SectionExtra, form))

	// A required license needs a concrete category.
	form.RequiresDriversLicense = true
	form.LicenseType = "none"
	assert.False(t, ValidateSection(models.SectionExtra, form))
	form.LicenseType = "BE"
	assert.True(t, ValidateSection(models.SectionExtra, form))

	// Minimum duration must be a whole number of at least one day.
	form.MinRentalDuration = "0"
	assert.False(t, ValidateSection(models.SectionExtra, form))
	form.MinRentalDuration = "abc"
	assert.False(t, ValidateSection(models.SectionExtra, form))
	form.MinRentalDuration = "2"
	assert.True(t, ValidateSection(models.SectionExtra, form))

	// Maximum, when present, cannot undercut the minimum.
	form.MaxRentalDuration = "1"
	assert.False(t, ValidateSection(models.SectionExtra, form))
	form.MaxRentalDuration = "2"
	assert.True(t, ValidateSection(models.SectionExtra, form))
	form.MaxRentalDuration = ""
	assert.True(t, ValidateSection(models.SectionExtra, form))
}

func TestAccessoriesSectionAlwaysValid(t *testing.T) {
	form := models.NewTrailerFormData()
	assert.True(t, ValidateSection(models.SectionAccessories, form))
}

func TestUnknownSectionIsInvalid(t *testing.T) {
	assert.False(t, ValidateSection(models.FormSection("bogus"), validForm()))
}

func TestReadyToSubmit(t *testing.T) {
	form := validForm()
	assert.True(t, ReadyToSubmit(form))

	// Accessories never gate submission.
	form.Accessories = nil
	assert.True(t, ReadyToSubmit(form))

	// Any gating section failing blocks submission.
	broken := form
	broken.PricePerDay = ""
	assert.False(t, ReadyToSubmit(broken))

	broken = form
	broken.Images = broken.Images[:2]
	assert.False(t, ReadyToSubmit(broken))
}

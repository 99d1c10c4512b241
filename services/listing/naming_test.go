package listing

import (
	"testing"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDraftAutoName(t *testing.T) {
	form := models.NewTrailerFormData()
	assert.Equal(t, "Nieuwe aanhanger", GenerateDraftAutoName(form, ""))

	form.TrailerType = "Bagagewagen"
	assert.Equal(t, "Bagagewagen", GenerateDraftAutoName(form, ""))

	form.City = "Utrecht"
	assert.Equal(t, "Bagagewagen - Utrecht", GenerateDraftAutoName(form, ""))

	form.Length = "200"
	form.Width = "120"
	assert.Equal(t, "Bagagewagen - Utrecht - 200x120 cm", GenerateDraftAutoName(form, ""))

	// Dimensions need both length and width.
	form.Width = ""
	assert.Equal(t, "Bagagewagen - Utrecht", GenerateDraftAutoName(form, ""))
}

func TestGenerateDraftAutoNameCustomType(t *testing.T) {
	form := models.NewTrailerFormData()
	form.TrailerType = "Overig"
	form.CustomType = "Boottrailer"
	assert.Equal(t, "Boottrailer", GenerateDraftAutoName(form, ""))

	// "Overig" without a custom type falls back to the literal value.
	form.CustomType = ""
	assert.Equal(t, "Overig", GenerateDraftAutoName(form, ""))
}

func TestGenerateDraftAutoNameEditPrefix(t *testing.T) {
	form := models.NewTrailerFormData()
	form.TrailerType = "Aanhanger"
	assert.Equal(t, "Bewerken: Aanhanger", GenerateDraftAutoName(form, "trailer-1"))
}

func TestShouldTriggerAutoSave(t *testing.T) {
	form := models.NewTrailerFormData()
	assert.False(t, ShouldTriggerAutoSave(form), "an untouched form is not worth a draft")

	form.City = "Leiden"
	assert.True(t, ShouldTriggerAutoSave(form))
}

func TestToggleAccessory(t *testing.T) {
	accessories := []models.Accessory{
		{ID: "disselslot", Name: "Disselslot"},
		{ID: "net", Name: "Net"},
	}

	toggled := ToggleAccessory(accessories, "net")
	assert.True(t, toggled[1].Selected)
	assert.False(t, accessories[1].Selected, "input slice stays untouched")

	// Double toggle restores the original state.
	restored := ToggleAccessory(toggled, "net")
	assert.Equal(t, accessories, restored)

	// Unknown IDs change nothing.
	assert.Equal(t, accessories, ToggleAccessory(accessories, "bogus"))
}

func TestSelectedAccessories(t *testing.T) {
	accessories := []models.Accessory{
		{ID: "a", Selected: true},
		{ID: "b"},
		{ID: "c", Selected: true},
	}
	selected := SelectedAccessories(accessories)
	assert.Len(t, selected, 2)
	assert.Equal(t, "a", selected[0].ID)
	assert.Equal(t, "c", selected[1].ID)
}

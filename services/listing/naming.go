package listing

import (
	"strings"

	"trailhub/models"
)

// GenerateDraftAutoName derives a display name from the current form
// content. It is regenerated on every save, so the name sharpens as the
// user fills in identifying fields. Edit-session drafts get a fixed prefix.
func GenerateDraftAutoName(form models.TrailerFormData, editingTrailerID string) string {
	parts := make([]string, 0, 3)

	switch {
	case form.TrailerType == "Overig" && strings.TrimSpace(form.CustomType) != "":
		parts = append(parts, strings.TrimSpace(form.CustomType))
	case strings.TrimSpace(form.TrailerType) != "":
		parts = append(parts, strings.TrimSpace(form.TrailerType))
	}
	if strings.TrimSpace(form.City) != "" {
		parts = append(parts, strings.TrimSpace(form.City))
	}
	if strings.TrimSpace(form.Length) != "" && strings.TrimSpace(form.Width) != "" {
		parts = append(parts, form.Length+"x"+form.Width+" cm")
	}

	name := strings.Join(parts, " - ")
	if name == "" {
		name = "Nieuwe aanhanger"
	}
	if editingTrailerID != "" {
		name = "Bewerken: " + name
	}
	return name
}

// ShouldTriggerAutoSave gates the debounced save: an entirely empty form is
// not worth persisting.
func ShouldTriggerAutoSave(form models.TrailerFormData) bool {
	return !form.IsEmpty()
}

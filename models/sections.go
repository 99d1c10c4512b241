package models

// FormSection identifies one collapsible section of the listing form.
type FormSection string

const (
	SectionType         FormSection = "type"
	SectionDetails      FormSection = "details"
	SectionLocation     FormSection = "location"
	SectionAvailability FormSection = "availability"
	SectionPricing      FormSection = "pricing"
	SectionAccessories  FormSection = "accessories"
	SectionPhotos       FormSection = "photos"
	SectionExtra        FormSection = "extra"
)

// SectionOrder is the fixed order sections are completed in.
var SectionOrder = []FormSection{
	SectionType,
	SectionDetails,
	SectionLocation,
	SectionAvailability,
	SectionPricing,
	SectionAccessories,
	SectionPhotos,
	SectionExtra,
}

// SectionsState maps each section to a boolean flag. It is used twice per
// session: once for "expanded" and once for "completed".
type SectionsState map[FormSection]bool

// NewSectionsState returns a state with every section set to false.
func NewSectionsState() SectionsState {
	s := make(SectionsState, len(SectionOrder))
	for _, sec := range SectionOrder {
		s[sec] = false
	}
	return s
}

// IsValidSection reports whether the given identifier names a known section.
func IsValidSection(s FormSection) bool {
	for _, sec := range SectionOrder {
		if sec == s {
			return true
		}
	}
	return false
}

// SectionIndex returns the position of a section in SectionOrder, or -1.
func SectionIndex(s FormSection) int {
	for i, sec := range SectionOrder {
		if sec == s {
			return i
		}
	}
	return -1
}

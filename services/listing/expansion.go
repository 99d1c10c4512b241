package listing

import "trailhub/models"

// The expansion controller. All transitions keep the invariant that at most
// one section is expanded at a time.

// toggleExpanded expands the target section and collapses every other one.
// Re-clicking the already-expanded section is a no-op: sections cannot be
// collapsed by toggling. Returns whether the state changed.
func toggleExpanded(s *models.ListingSession, section models.FormSection) bool {
	if s.Expanded[section] {
		return false
	}
	for _, sec := range models.SectionOrder {
		s.Expanded[sec] = false
	}
	s.Expanded[section] = true
	return true
}

// expandNext closes all sections and opens the one after current in the
// fixed order. No-op when current is the last section.
func expandNext(s *models.ListingSession, current models.FormSection) {
	idx := models.SectionIndex(current)
	if idx < 0 || idx >= len(models.SectionOrder)-1 {
		return
	}
	for _, sec := range models.SectionOrder {
		s.Expanded[sec] = false
	}
	s.Expanded[models.SectionOrder[idx+1]] = true
}

// completeSection validates the section against the current form snapshot,
// records the result, and only on success collapses the section and
// auto-advances. On failure the section stays expanded so the user can fix
// it. Returns the validation outcome.
func completeSection(s *models.ListingSession, section models.FormSection) bool {
	valid := ValidateSection(section, s.FormData)
	s.Completed[section] = valid
	if valid {
		expandNext(s, section)
	}
	return valid
}

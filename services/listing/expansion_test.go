package listing

import (
	"testing"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *models.ListingSession {
	return &models.ListingSession{
		ID:        "sess-1",
		UserID:    "user-1",
		FormData:  models.NewTrailerFormData(),
		Expanded:  models.NewSectionsState(),
		Completed: models.NewSectionsState(),
	}
}

// expandedCount counts the open sections; the controller keeps it at most 1.
func expandedCount(s *models.ListingSession) int {
	n := 0
	for _, sec := range models.SectionOrder {
		if s.Expanded[sec] {
			n++
		}
	}
	return n
}

func TestToggleExpandedOpensOneSection(t *testing.T) {
	s := newTestSession()

	assert.True(t, toggleExpanded(s, models.SectionDetails))
	assert.True(t, s.Expanded[models.SectionDetails])
	assert.Equal(t, 1, expandedCount(s))

	// Opening another section closes the first.
	assert.True(t, toggleExpanded(s, models.SectionPricing))
	assert.False(t, s.Expanded[models.SectionDetails])
	assert.True(t, s.Expanded[models.SectionPricing])
	assert.Equal(t, 1, expandedCount(s))
}

func TestToggleExpandedIsIdempotentOnOpenSection(t *testing.T) {
	s := newTestSession()
	toggleExpanded(s, models.SectionPhotos)

	// Re-clicking the open section does not collapse it.
	assert.False(t, toggleExpanded(s, models.SectionPhotos))
	assert.True(t, s.Expanded[models.SectionPhotos])
	assert.Equal(t, 1, expandedCount(s))
}

func TestExpandNextAdvancesInOrder(t *testing.T) {
	s := newTestSession()
	toggleExpanded(s, models.SectionType)

	expandNext(s, models.SectionType)
	assert.True(t, s.Expanded[models.SectionOrder[1]])
	assert.Equal(t, 1, expandedCount(s))
}

func TestExpandNextNoOpOnLastSection(t *testing.T) {
	s := newTestSession()
	last := models.SectionOrder[len(models.SectionOrder)-1]
	toggleExpanded(s, last)

	expandNext(s, last)
	assert.True(t, s.Expanded[last])
	assert.Equal(t, 1, expandedCount(s))
}

func TestCompleteSectionAdvancesOnSuccess(t *testing.T) {
	s := newTestSession()
	s.FormData = validForm()
	toggleExpanded(s, models.SectionType)

	require.True(t, completeSection(s, models.SectionType))
	assert.True(t, s.Completed[models.SectionType])
	assert.False(t, s.Expanded[models.SectionType])
	assert.True(t, s.Expanded[models.SectionDetails])
}

func TestCompleteSectionStaysOpenOnFailure(t *testing.T) {
	s := newTestSession()
	toggleExpanded(s, models.SectionType)

	require.False(t, completeSection(s, models.SectionType))
	assert.False(t, s.Completed[models.SectionType])
	assert.True(t, s.Expanded[models.SectionType],
		"a failing section must stay expanded for correction")
}

func TestCompleteSectionRevalidatesStaleResult(t *testing.T) {
	s := newTestSession()
	s.FormData = validForm()
	require.True(t, completeSection(s, models.SectionPricing))

	// The form regresses after completion; re-completing records failure.
	s.FormData.PricePerDay = ""
	require.False(t, completeSection(s, models.SectionPricing))
	assert.False(t, s.Completed[models.SectionPricing])
}

package listing

import (
	"testing"
	"time"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListingService(t *testing.T) (*DefaultListingService, *memSessionStore, *memDraftStore) {
	t.Helper()
	sessions := newMemSessionStore()
	drafts := &memDraftStore{}
	return &DefaultListingService{
		Sessions:  sessions,
		Drafts:    drafts,
		AutoSaver: NewAutoSaver(sessions, drafts, 20*time.Millisecond),
	}, sessions, drafts
}

func TestUpdateFormDataMigratesLegacyAvailability(t *testing.T) {
	svc, sessions, _ := newTestListingService(t)
	session := storeSession(t, sessions, models.NewTrailerFormData())

	legacy := &models.LegacyAvailability{
		AvailableDays: []string{"FRIDAY"},
		TimeSlots: map[string][]models.LegacyTimeSlot{
			"friday": {{Start: "10:00", End: "19:00", Active: true}},
		},
	}

	updated, err := svc.UpdateFormData(session.ID, session.UserID, validForm(), legacy)
	require.NoError(t, err)
	require.Len(t, updated.FormData.WeeklyAvailability, len(models.DayNames))

	friday := updated.FormData.WeeklyAvailability[4]
	assert.True(t, friday.Available)
	assert.Equal(t, "10:00", friday.MorningStart)
	assert.Equal(t, "19:00", friday.EveningEnd)
	assert.False(t, updated.FormData.WeeklyAvailability[0].Available, "monday stays closed")
	assert.Equal(t, models.SaveStatusSaving, updated.SaveStatus)

	// The migrated week is what lands in the store, not the raw legacy shape.
	stored := sessions.snapshot(session.ID)
	assert.True(t, stored.FormData.WeeklyAvailability[4].Available)
	assert.False(t, stored.FormData.WeeklyAvailability[0].Available)
}

func TestUpdateFormDataWithoutLegacyKeepsCanonicalWeek(t *testing.T) {
	svc, sessions, _ := newTestListingService(t)
	session := storeSession(t, sessions, models.NewTrailerFormData())

	form := validForm()
	form.WeeklyAvailability[2].Available = false

	updated, err := svc.UpdateFormData(session.ID, session.UserID, form, nil)
	require.NoError(t, err)
	assert.False(t, updated.FormData.WeeklyAvailability[2].Available)
	assert.True(t, updated.FormData.WeeklyAvailability[0].Available)
}

func TestFormUpdateLegacy(t *testing.T) {
	var update models.FormUpdate
	assert.Nil(t, update.Legacy(), "no legacy fields, no migration")

	update.AvailableDays = []string{"MONDAY"}
	legacy := update.Legacy()
	require.NotNil(t, legacy)
	assert.Equal(t, []string{"MONDAY"}, legacy.AvailableDays)
}

package listing

import (
	"fmt"
	"sort"
	"time"

	"trailhub/models"
	"trailhub/services/trailer"
	"trailhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession opens a fresh listing flow: default form snapshot, the
// first section expanded, nothing completed.
func (s *DefaultListingService) InitiateSession(userID string) (*models.ListingSession, error) {
	session := newSession(userID)
	session.Expanded[models.SectionOrder[0]] = true
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to create listing session: %w", err)
	}
	return session, nil
}

// InitiateEditSession opens a flow seeded from a published trailer. When a
// previous edit of the same trailer left a draft behind, the draft snapshot
// wins over the published one so unsaved edits survive.
func (s *DefaultListingService) InitiateEditSession(userID, trailerID string) (*models.ListingSession, error) {
	logger := utils.GetLogger()

	t, err := s.TrailerSvc.GetTrailer(trailerID)
	if err != nil {
		return nil, err
	}
	if t.OwnerID != userID {
		return nil, ErrNotSessionOwner
	}

	session := newSession(userID)
	session.EditingTrailerID = trailerID
	session.FormData = trailer.FormDataFromTrailer(t)
	session.Expanded[models.SectionOrder[0]] = true

	if draft, derr := s.Drafts.GetByEditingTrailer(userID, trailerID); derr == nil && draft != nil {
		session.FormData = draft.FormData
		session.DraftID = draft.ID
	} else if derr != nil {
		logger.Warn("InitiateEditSession: draft lookup failed, using published data",
			zap.String("trailerID", trailerID), zap.Error(derr))
	}

	// Published listings pass validation by construction; mark all sections
	// so the user only reopens what they want to change.
	for _, sec := range models.SectionOrder {
		session.Completed[sec] = ValidateSection(sec, session.FormData)
	}

	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to create edit session: %w", err)
	}
	return session, nil
}

func (s *DefaultListingService) GetSession(sessionID, userID string) (*models.ListingSession, error) {
	return s.ownedSession(sessionID, userID)
}

// CancelSession abandons the flow. Any draft persisted along the way is
// kept for the dashboard; only the live session state goes.
func (s *DefaultListingService) CancelSession(sessionID, userID string) error {
	if _, err := s.ownedSession(sessionID, userID); err != nil {
		return err
	}
	s.AutoSaver.Cancel(sessionID)
	return s.Sessions.Delete(sessionID)
}

// UpdateFormData replaces the session's form snapshot and schedules the
// debounced draft save. Legacy availability payloads are migrated to the
// canonical week before the snapshot is stored.
func (s *DefaultListingService) UpdateFormData(sessionID, userID string, form models.TrailerFormData, legacy *models.LegacyAvailability) (*models.ListingSession, error) {
	session, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	ApplyLegacyAvailability(&form, legacy)
	session.FormData = form
	session.SaveStatus = models.SaveStatusSaving
	session.LastUpdatedAt = time.Now()
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.AutoSaver.Schedule(sessionID)
	return session, nil
}

// ToggleSection expands the target section, collapsing any other.
func (s *DefaultListingService) ToggleSection(sessionID, userID string, section models.FormSection) (*models.ListingSession, error) {
	if !models.IsValidSection(section) {
		return nil, ErrUnknownSection
	}
	session, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if !toggleExpanded(session, section) {
		return session, nil
	}
	session.LastUpdatedAt = time.Now()
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// CompleteSection validates the section, records the outcome and, on
// success, auto-advances to the next section in order.
func (s *DefaultListingService) CompleteSection(sessionID, userID string, section models.FormSection) (*models.ListingSession, error) {
	if !models.IsValidSection(section) {
		return nil, ErrUnknownSection
	}
	session, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	completeSection(session, section)
	session.LastUpdatedAt = time.Now()
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// ConfirmListing submits the flow: every gating section must validate and
// the terms must be accepted. On success the formatted payload is published
// (or, for edit sessions, replaces the existing trailer), the draft and the
// session are removed and any pending auto-save is cancelled.
func (s *DefaultListingService) ConfirmListing(sessionID, userID string) (*models.Trailer, error) {
	logger := utils.GetLogger()

	session, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if !ReadyToSubmit(session.FormData) {
		return nil, ErrIncompleteSections
	}
	if !session.FormData.AgreeToTerms {
		return nil, ErrTermsNotAccepted
	}

	payload := FormatTrailerForAPI(session.FormData)

	var published *models.Trailer
	if session.EditingTrailerID != "" {
		published, err = s.TrailerSvc.UpdateFromListing(userID, session.EditingTrailerID, payload)
	} else {
		published, err = s.TrailerSvc.CreateFromListing(userID, payload)
	}
	if err != nil {
		return nil, err
	}

	s.AutoSaver.Cancel(sessionID)
	if session.DraftID != "" {
		if derr := s.Drafts.DeleteDraft(userID, session.DraftID); derr != nil {
			logger.Warn("ConfirmListing: failed to delete draft after publish",
				zap.String("draftID", session.DraftID), zap.Error(derr))
		}
	}
	if derr := s.Sessions.Delete(sessionID); derr != nil {
		logger.Warn("ConfirmListing: failed to delete session after publish",
			zap.String("sessionID", sessionID), zap.Error(derr))
	}
	return published, nil
}

// GetDrafts lists the user's drafts for the dashboard, newest first.
func (s *DefaultListingService) GetDrafts(userID string) ([]models.DraftSummary, error) {
	drafts, err := s.Drafts.GetDrafts(userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.DraftSummary, 0, len(drafts))
	for _, d := range drafts {
		summaries = append(summaries, models.DraftSummary{
			ID:               d.ID,
			AutoName:         d.AutoName,
			EditingTrailerID: d.EditingTrailerID,
			UpdatedAt:        d.UpdatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

func (s *DefaultListingService) GetDraft(userID, draftID string) (*models.Draft, error) {
	return s.Drafts.GetDraft(userID, draftID)
}

func (s *DefaultListingService) DeleteDraft(userID, draftID string) error {
	if _, err := s.Drafts.GetDraft(userID, draftID); err != nil {
		return err
	}
	return s.Drafts.DeleteDraft(userID, draftID)
}

// ownedSession loads a session and enforces ownership.
func (s *DefaultListingService) ownedSession(sessionID, userID string) (*models.ListingSession, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionOwner
	}
	return session, nil
}

func newSession(userID string) *models.ListingSession {
	now := time.Now()
	return &models.ListingSession{
		ID:            uuid.New().String(),
		UserID:        userID,
		FormData:      models.NewTrailerFormData(),
		Expanded:      models.NewSectionsState(),
		Completed:     models.NewSectionsState(),
		SaveStatus:    models.SaveStatusIdle,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

package listing

import (
	"sync"
	"time"

	"trailhub/models"
	"trailhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AutoSaver debounces draft persistence: every form mutation schedules a
// save after the debounce window, cancelling any pending timer (trailing
// edge, not a throttle). Save failures mark the session with a transient
// error status that resets to idle after ErrorReset; there is no retry and
// the in-memory form state is untouched.
type AutoSaver struct {
	Sessions   SessionStore
	Drafts     DraftStore
	Debounce   time.Duration
	ErrorReset time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewAutoSaver creates an AutoSaver with the given debounce window.
func NewAutoSaver(sessions SessionStore, drafts DraftStore, debounce time.Duration) *AutoSaver {
	return &AutoSaver{
		Sessions:   sessions,
		Drafts:     drafts,
		Debounce:   debounce,
		ErrorReset: 3 * time.Second,
		timers:     make(map[string]*time.Timer),
	}
}

// Schedule (re)arms the debounce timer for a session.
func (a *AutoSaver) Schedule(sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if t, ok := a.timers[sessionID]; ok {
		t.Stop()
	}
	a.timers[sessionID] = time.AfterFunc(a.Debounce, func() {
		a.mu.Lock()
		delete(a.timers, sessionID)
		a.mu.Unlock()
		a.save(sessionID)
	})
}

// Cancel drops any pending save for a session.
func (a *AutoSaver) Cancel(sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if t, ok := a.timers[sessionID]; ok {
		t.Stop()
		delete(a.timers, sessionID)
	}
}

// save persists the latest session snapshot as a draft. Reads the session
// fresh so the write always reflects the last mutation before the timer
// fired.
func (a *AutoSaver) save(sessionID string) {
	logger := utils.GetLogger()

	session, err := a.Sessions.Get(sessionID)
	if err != nil {
		// Session confirmed or cancelled while the timer was pending.
		return
	}
	if !ShouldTriggerAutoSave(session.FormData) {
		return
	}
	if !a.Drafts.IsDraftSupported() {
		logger.Warn("AutoSaver: draft store unavailable, skipping save",
			zap.String("sessionID", sessionID))
		return
	}

	draft := &models.Draft{
		ID:               session.DraftID,
		UserID:           session.UserID,
		AutoName:         GenerateDraftAutoName(session.FormData, session.EditingTrailerID),
		EditingTrailerID: session.EditingTrailerID,
		FormData:         session.FormData,
	}

	var saveErr error
	if draft.ID == "" {
		draft.ID = uuid.New().String()
		saveErr = a.Drafts.CreateDraft(draft)
	} else {
		saveErr = a.Drafts.UpdateDraft(draft)
	}

	if saveErr != nil {
		logger.Warn("AutoSaver: draft save failed",
			zap.String("sessionID", sessionID), zap.Error(saveErr))
		a.setSaveStatus(sessionID, models.SaveStatusError)
		time.AfterFunc(a.ErrorReset, func() {
			a.resetErrorStatus(sessionID)
		})
		return
	}

	a.recordDraftSaved(sessionID, draft.ID)
}

// recordDraftSaved re-reads the session before writing DraftID and the saved
// status back, so a form update that landed while the draft write was in
// flight is not overwritten with the stale pre-save snapshot.
func (a *AutoSaver) recordDraftSaved(sessionID, draftID string) {
	session, err := a.Sessions.Get(sessionID)
	if err != nil {
		return
	}
	session.DraftID = draftID
	session.SaveStatus = models.SaveStatusSaved
	if err := a.Sessions.Save(session); err != nil {
		utils.GetLogger().Warn("AutoSaver: failed to record draft id on session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}

func (a *AutoSaver) setSaveStatus(sessionID, status string) {
	session, err := a.Sessions.Get(sessionID)
	if err != nil {
		return
	}
	session.SaveStatus = status
	_ = a.Sessions.Save(session)
}

// resetErrorStatus returns the save indicator to idle, but only if it still
// shows the error (a successful later save must not be clobbered).
func (a *AutoSaver) resetErrorStatus(sessionID string) {
	session, err := a.Sessions.Get(sessionID)
	if err != nil {
		return
	}
	if session.SaveStatus != models.SaveStatusError {
		return
	}
	session.SaveStatus = models.SaveStatusIdle
	_ = a.Sessions.Save(session)
}

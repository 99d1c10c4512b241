package listing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore is an in-memory SessionStore for exercising the AutoSaver
// without Redis. Timer callbacks run on their own goroutines, so access is
// guarded.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.ListingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.ListingSession)}
}

func (m *memSessionStore) Save(session *models.ListingSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = *session
	return nil
}

func (m *memSessionStore) Get(sessionID string) (*models.ListingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *memSessionStore) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *memSessionStore) snapshot(sessionID string) models.ListingSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[sessionID]
}

// memDraftStore records writes and can be told to fail them.
type memDraftStore struct {
	mu      sync.Mutex
	creates int
	updates int
	last    models.Draft
	failErr error
}

func (m *memDraftStore) IsDraftSupported() bool { return true }

func (m *memDraftStore) CreateDraft(draft *models.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.creates++
	m.last = *draft
	return nil
}

func (m *memDraftStore) UpdateDraft(draft *models.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.updates++
	m.last = *draft
	return nil
}

func (m *memDraftStore) DeleteDraft(userID, draftID string) error { return nil }

func (m *memDraftStore) GetDraft(userID, draftID string) (*models.Draft, error) {
	return nil, ErrDraftNotFound
}

func (m *memDraftStore) GetDrafts(userID string) ([]models.Draft, error) { return nil, nil }

func (m *memDraftStore) GetByEditingTrailer(userID, trailerID string) (*models.Draft, error) {
	return nil, nil
}

func (m *memDraftStore) counts() (creates, updates int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creates, m.updates
}

func (m *memDraftStore) lastDraft() models.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func newTestAutoSaver(t *testing.T) (*AutoSaver, *memSessionStore, *memDraftStore) {
	t.Helper()
	sessions := newMemSessionStore()
	drafts := &memDraftStore{}
	saver := NewAutoSaver(sessions, drafts, 20*time.Millisecond)
	saver.ErrorReset = 40 * time.Millisecond
	return saver, sessions, drafts
}

func storeSession(t *testing.T, sessions *memSessionStore, form models.TrailerFormData) *models.ListingSession {
	t.Helper()
	session := newTestSession()
	session.FormData = form
	require.NoError(t, sessions.Save(session))
	return session
}

func TestAutoSaverTrailingEdgeDebounce(t *testing.T) {
	saver, sessions, drafts := newTestAutoSaver(t)
	session := storeSession(t, sessions, validForm())

	// A burst of mutations arms the timer over and over; only the last one
	// may fire.
	for i := 0; i < 5; i++ {
		saver.Schedule(session.ID)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		creates, _ := drafts.counts()
		return creates == 1
	}, time.Second, 5*time.Millisecond)

	// No second save sneaks in after the burst.
	time.Sleep(3 * saver.Debounce)
	creates, updates := drafts.counts()
	assert.Equal(t, 1, creates)
	assert.Zero(t, updates)
}

func TestAutoSaverCancelDropsPendingSave(t *testing.T) {
	saver, sessions, drafts := newTestAutoSaver(t)
	session := storeSession(t, sessions, validForm())

	saver.Schedule(session.ID)
	saver.Cancel(session.ID)

	time.Sleep(3 * saver.Debounce)
	creates, updates := drafts.counts()
	assert.Zero(t, creates)
	assert.Zero(t, updates)
}

func TestAutoSaverCreatesThenUpdates(t *testing.T) {
	saver, sessions, drafts := newTestAutoSaver(t)
	session := storeSession(t, sessions, validForm())

	saver.Schedule(session.ID)
	require.Eventually(t, func() bool {
		creates, _ := drafts.counts()
		return creates == 1
	}, time.Second, 5*time.Millisecond)

	saved := sessions.snapshot(session.ID)
	assert.NotEmpty(t, saved.DraftID, "the generated draft id is recorded on the session")
	assert.Equal(t, models.SaveStatusSaved, saved.SaveStatus)
	assert.Equal(t, saved.DraftID, drafts.lastDraft().ID)
	assert.Equal(t, session.UserID, drafts.lastDraft().UserID)
	assert.NotEmpty(t, drafts.lastDraft().AutoName)

	// The next save reuses the draft id and goes through update.
	saver.Schedule(session.ID)
	require.Eventually(t, func() bool {
		_, updates := drafts.counts()
		return updates == 1
	}, time.Second, 5*time.Millisecond)

	creates, _ := drafts.counts()
	assert.Equal(t, 1, creates)
}

// hookedDraftStore runs a callback while CreateDraft is in flight, so tests
// can interleave session writes with the draft save.
type hookedDraftStore struct {
	memDraftStore
	onCreate func()
}

func (h *hookedDraftStore) CreateDraft(draft *models.Draft) error {
	if h.onCreate != nil {
		h.onCreate()
	}
	return h.memDraftStore.CreateDraft(draft)
}

func TestAutoSaverKeepsFormUpdatedDuringSave(t *testing.T) {
	sessions := newMemSessionStore()
	drafts := &hookedDraftStore{}
	saver := NewAutoSaver(sessions, drafts, 20*time.Millisecond)
	session := storeSession(t, sessions, validForm())

	// While the draft write runs, a form update lands on the session.
	drafts.onCreate = func() {
		current, err := sessions.Get(session.ID)
		require.NoError(t, err)
		current.FormData.City = "Rotterdam"
		current.SaveStatus = models.SaveStatusSaving
		require.NoError(t, sessions.Save(current))
	}

	saver.Schedule(session.ID)
	require.Eventually(t, func() bool {
		creates, _ := drafts.counts()
		return creates == 1
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return sessions.snapshot(session.ID).SaveStatus == models.SaveStatusSaved
	}, time.Second, 5*time.Millisecond)

	saved := sessions.snapshot(session.ID)
	assert.Equal(t, "Rotterdam", saved.FormData.City,
		"a form update landing mid-save must not be rolled back")
	assert.NotEmpty(t, saved.DraftID)
}

func TestAutoSaverSkipsEmptyForm(t *testing.T) {
	saver, sessions, drafts := newTestAutoSaver(t)
	session := storeSession(t, sessions, models.NewTrailerFormData())

	saver.Schedule(session.ID)
	time.Sleep(3 * saver.Debounce)

	creates, updates := drafts.counts()
	assert.Zero(t, creates)
	assert.Zero(t, updates)
}

func TestAutoSaverIgnoresVanishedSession(t *testing.T) {
	saver, sessions, drafts := newTestAutoSaver(t)
	session := storeSession(t, sessions, validForm())

	saver.Schedule(session.ID)
	require.NoError(t, sessions.Delete(session.ID))

	time.Sleep(3 * saver.Debounce)
	creates, _ := drafts.counts()
	assert.Zero(t, creates)
}

func TestAutoSaverErrorStatusResetsToIdle(t *testing.T) {
	saver, sessions, drafts := newTestAutoSaver(t)
	drafts.failErr = errors.New("store down")
	session := storeSession(t, sessions, validForm())

	saver.Schedule(session.ID)

	require.Eventually(t, func() bool {
		return sessions.snapshot(session.ID).SaveStatus == models.SaveStatusError
	}, time.Second, 5*time.Millisecond)

	// The form itself survives the failed save.
	assert.Equal(t, "Amsterdam", sessions.snapshot(session.ID).FormData.City)

	require.Eventually(t, func() bool {
		return sessions.snapshot(session.ID).SaveStatus == models.SaveStatusIdle
	}, time.Second, 5*time.Millisecond)
}

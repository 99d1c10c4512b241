package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trailhub/models"
	"trailhub/utils"

	"github.com/go-redis/redis/v8"
)

// DraftStore persists in-progress listing snapshots.
type DraftStore interface {
	// IsDraftSupported reports whether the backing store is reachable.
	IsDraftSupported() bool
	CreateDraft(draft *models.Draft) error
	UpdateDraft(draft *models.Draft) error
	DeleteDraft(userID, draftID string) error
	GetDraft(userID, draftID string) (*models.Draft, error)
	GetDrafts(userID string) ([]models.Draft, error)
	// GetByEditingTrailer finds the draft of an edit session by its trailer
	// foreign key.
	GetByEditingTrailer(userID, trailerID string) (*models.Draft, error)
}

// RedisDraftStore keeps drafts in Redis, one key per draft plus a per-user
// index set. Drafts are retained indefinitely until deleted.
type RedisDraftStore struct {
	Client *redis.Client
}

// NewRedisDraftStore creates a draft store on the given Redis client.
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{Client: client}
}

func draftKey(userID, draftID string) string {
	return utils.DraftPrefix + userID + ":" + draftID
}

func (st *RedisDraftStore) IsDraftSupported() bool {
	if st.Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return st.Client.Ping(ctx).Err() == nil
}

func (st *RedisDraftStore) CreateDraft(draft *models.Draft) error {
	draft.CreatedAt = time.Now()
	draft.UpdatedAt = draft.CreatedAt
	return st.write(draft)
}

func (st *RedisDraftStore) UpdateDraft(draft *models.Draft) error {
	draft.UpdatedAt = time.Now()
	return st.write(draft)
}

func (st *RedisDraftStore) write(draft *models.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	ctx := context.Background()
	pipe := st.Client.TxPipeline()
	pipe.Set(ctx, draftKey(draft.UserID, draft.ID), data, 0)
	pipe.SAdd(ctx, utils.DraftIndexPrefix+draft.UserID, draft.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (st *RedisDraftStore) DeleteDraft(userID, draftID string) error {
	ctx := context.Background()
	pipe := st.Client.TxPipeline()
	pipe.Del(ctx, draftKey(userID, draftID))
	pipe.SRem(ctx, utils.DraftIndexPrefix+userID, draftID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func (st *RedisDraftStore) GetDraft(userID, draftID string) (*models.Draft, error) {
	ctx := context.Background()
	data, err := st.Client.Get(ctx, draftKey(userID, draftID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	var draft models.Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

func (st *RedisDraftStore) GetDrafts(userID string) ([]models.Draft, error) {
	ctx := context.Background()
	ids, err := st.Client.SMembers(ctx, utils.DraftIndexPrefix+userID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	drafts := make([]models.Draft, 0, len(ids))
	for _, id := range ids {
		draft, err := st.GetDraft(userID, id)
		if err != nil {
			if errors.Is(err, ErrDraftNotFound) {
				// Index out of sync with a deleted key; drop the stale entry.
				_ = st.Client.SRem(ctx, utils.DraftIndexPrefix+userID, id).Err()
				continue
			}
			return nil, err
		}
		drafts = append(drafts, *draft)
	}
	return drafts, nil
}

// GetByEditingTrailer looks up the edit-session draft for a trailer via its
// explicit foreign key. Returns nil when no such draft exists.
func (st *RedisDraftStore) GetByEditingTrailer(userID, trailerID string) (*models.Draft, error) {
	drafts, err := st.GetDrafts(userID)
	if err != nil {
		return nil, err
	}
	for i := range drafts {
		if drafts[i].EditingTrailerID == trailerID {
			return &drafts[i], nil
		}
	}
	return nil, nil
}

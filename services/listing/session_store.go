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

// SessionStore persists listing sessions between requests.
type SessionStore interface {
	Save(session *models.ListingSession) error
	Get(sessionID string) (*models.ListingSession, error)
	Delete(sessionID string) error
}

// RedisSessionStore keeps listing sessions in Redis with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore creates a session store on the given Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: utils.ListingSessionTTL}
}

func (st *RedisSessionStore) Save(session *models.ListingSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal listing session: %w", err)
	}
	ctx := context.Background()
	key := utils.ListingSessionPrefix + session.ID
	if err := st.Client.Set(ctx, key, data, st.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save listing session: %w", err)
	}
	return nil
}

func (st *RedisSessionStore) Get(sessionID string) (*models.ListingSession, error) {
	ctx := context.Background()
	data, err := st.Client.Get(ctx, utils.ListingSessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load listing session: %w", err)
	}
	var session models.ListingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing session: %w", err)
	}
	return &session, nil
}

func (st *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	return st.Client.Del(ctx, utils.ListingSessionPrefix+sessionID).Err()
}

package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketq/models"
)

// SessionPersister is the durable storage for the single session record.
type SessionPersister interface {
	Save(ctx context.Context, rec models.SessionRecord) error
	Load(ctx context.Context) (models.SessionRecord, bool)
	Clear(ctx context.Context) error
}

// SessionStore keeps one opaque session record in Redis under a fixed key.
// A missing or unreadable record is treated as "no session".
type SessionStore struct {
	Redis *redis.Client
	key   string
	ttl   time.Duration
}

func NewSessionStore(redisClient *redis.Client, key string, ttl time.Duration) *SessionStore {
	return &SessionStore{
		Redis: redisClient,
		key:   key,
		ttl:   ttl,
	}
}

func (s *SessionStore) Save(ctx context.Context, rec models.SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, s.key, data, s.ttl).Err()
}

func (s *SessionStore) Load(ctx context.Context) (models.SessionRecord, bool) {
	data, err := s.Redis.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return models.SessionRecord{}, false
	} else if err != nil {
		slog.Warn("session store read failed", "error", err)
		return models.SessionRecord{}, false
	}

	var rec models.SessionRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil || rec.UserID == "" {
		// Corrupt record: same as no session.
		slog.Warn("discarding unreadable session record", "key", s.key)
		return models.SessionRecord{}, false
	}

	return rec, true
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.Redis.Del(ctx, s.key).Err()
}

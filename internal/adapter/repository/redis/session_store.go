package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

// SessionStore implements usecase.SessionStore using Redis. Entries expire
// with the session.
type SessionStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

var _ usecase.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
		now:    time.Now,
	}
}

// Load returns the session or domain.ErrNoSession.
func (s *SessionStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &sess, nil
}

// Save stores the session until its expiry.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("%w: session id", domain.ErrInvalidInput)
	}

	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return domain.ErrExpiredToken
		}
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+session.ID, raw, ttl).Err()
}

// Clear removes the session.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}

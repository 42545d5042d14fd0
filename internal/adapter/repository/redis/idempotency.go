package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/searn/hubadmin/internal/usecase"
)

const pendingMarker = "pending"

// IdempotencyStore implements usecase.IdempotencyStore using Redis.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

var _ usecase.IdempotencyStore = (*IdempotencyStore)(nil)

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idempotency:",
	}
}

// Reserve claims key for the caller. When a reply was already stored it is
// returned; when another request holds the key, reply is nil and reserved
// is false.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (*usecase.IdempotentReply, bool, error) {
	fullKey := s.prefix + key

	set, err := s.client.SetNX(ctx, fullKey, pendingMarker, ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if set {
		return nil, true, nil
	}

	raw, err := s.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		// released between SETNX and GET
		return s.Reserve(ctx, key, ttl)
	}
	if err != nil {
		return nil, false, err
	}
	if string(raw) == pendingMarker {
		return nil, false, nil
	}

	var reply usecase.IdempotentReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, false, err
	}
	return &reply, false, nil
}

// Complete stores the final reply for key.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, reply *usecase.IdempotentReply, ttl time.Duration) error {
	raw, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+key, raw, ttl).Err()
}

// Release drops a reservation so the request may be retried.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/searn/hubadmin/internal/domain"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "platforms:catalog", `[{"_id":"p1"}]`, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "platforms:catalog")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != `[{"_id":"p1"}]` {
		t.Fatalf("unexpected value %s", val)
	}
	if !mr.Exists("cache:platforms:catalog") {
		t.Fatalf("expected prefixed key in redis")
	}
}

func TestCacheMissIsNotFound(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	_, err := NewCache(client).Get(context.Background(), "absent")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCacheExpiresAndDeletes(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "a", "1", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := cache.Get(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected expired key, got %v", err)
	}

	if err := cache.Set(ctx, "b", "2", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Delete(ctx, "b"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := cache.Get(ctx, "b"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected deleted key, got %v", err)
	}
}

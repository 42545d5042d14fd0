package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/searn/hubadmin/internal/domain"
)

func TestSessionStore_SaveLoadClear(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	sess := &domain.Session{
		ID:        "01HSESSION",
		Token:     "backend-token",
		Principal: domain.Principal{UserID: "u1", Email: "a@hub.io", Role: domain.RoleStoreAdmin, MerchantID: "M1"},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	ttl := mr.TTL("session:01HSESSION")
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	got, err := store.Load(ctx, "01HSESSION")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Token != "backend-token" || got.Principal.MerchantID != "M1" || got.Principal.Role != domain.RoleStoreAdmin {
		t.Fatalf("unexpected session %+v", got)
	}
	if !got.ExpiresAt.Equal(sess.ExpiresAt) {
		t.Fatalf("expiry mismatch: %v vs %v", got.ExpiresAt, sess.ExpiresAt)
	}

	if err := store.Clear(ctx, "01HSESSION"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := store.Load(ctx, "01HSESSION"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestSessionStore_ExpiresWithSession(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	sess := &domain.Session{ID: "s1", Token: "t", ExpiresAt: time.Now().Add(time.Minute)}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.Load(ctx, "s1"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestSessionStore_RejectsExpiredOrAnonymous(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	err := store.Save(ctx, &domain.Session{ID: "old", ExpiresAt: time.Now().Add(-time.Second)})
	if !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}

	if err := store.Save(ctx, &domain.Session{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

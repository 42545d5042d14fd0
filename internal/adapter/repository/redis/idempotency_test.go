package redis

import (
	"context"
	"testing"
	"time"

	"github.com/searn/hubadmin/internal/usecase"
)

func TestIdempotencyStore_ReserveNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	reply, reserved, err := store.Reserve(ctx, "u1:k1", time.Minute)
	if err != nil || !reserved || reply != nil {
		t.Fatalf("unexpected result: reply=%v reserved=%v err=%v", reply, reserved, err)
	}

	val, err := client.Get(ctx, store.prefix+"u1:k1").Result()
	if err != nil || val != pendingMarker {
		t.Fatalf("expected pending marker, got val=%s err=%v", val, err)
	}
}

func TestIdempotencyStore_ReserveWhilePending(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.Reserve(ctx, "k", time.Minute); err != nil {
		t.Fatalf("first reserve failed: %v", err)
	}

	reply, reserved, err := store.Reserve(ctx, "k", time.Minute)
	if err != nil || reserved || reply != nil {
		t.Fatalf("expected key held by first request, got reply=%v reserved=%v err=%v", reply, reserved, err)
	}
}

func TestIdempotencyStore_CompleteThenReplay(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.Reserve(ctx, "k", time.Minute); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if err := store.Complete(ctx, "k", &usecase.IdempotentReply{Status: 201, Body: []byte(`{"ok":true}`)}, time.Minute); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	reply, reserved, err := store.Reserve(ctx, "k", time.Minute)
	if err != nil || reserved || reply == nil {
		t.Fatalf("expected stored reply, got reply=%v reserved=%v err=%v", reply, reserved, err)
	}
	if reply.Status != 201 || string(reply.Body) != `{"ok":true}` {
		t.Fatalf("unexpected reply %+v", reply)
	}
}

func TestIdempotencyStore_Release(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.Reserve(ctx, "k", time.Minute); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if err := store.Release(ctx, "k"); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	_, reserved, err := store.Reserve(ctx, "k", time.Minute)
	if err != nil || !reserved {
		t.Fatalf("expected key to be free after release, reserved=%v err=%v", reserved, err)
	}
}

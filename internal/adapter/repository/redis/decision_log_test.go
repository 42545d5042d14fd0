package redis

import (
	"context"
	"testing"

	"github.com/searn/hubadmin/internal/domain"
)

func TestDecisionLog_AppendAssignsIDAndCaps(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	log := NewDecisionLog(client, 2)
	ctx := context.Background()

	for _, user := range []string{"u1", "u2", "u3"} {
		e := &domain.DecisionEntry{UserID: user, Resource: domain.ResourceUser, Action: domain.ActionDelete, Outcome: domain.OutcomeDeny}
		if err := log.Append(ctx, e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if e.ID == "" || e.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamp, got %+v", e)
		}
	}

	entries, err := log.Recent(ctx, domain.AuditFilter{})
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after trim, got %d", len(entries))
	}
	if entries[0].UserID != "u3" || entries[1].UserID != "u2" {
		t.Fatalf("expected newest first, got %s, %s", entries[0].UserID, entries[1].UserID)
	}
}

func TestDecisionLog_RecentFilters(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	log := NewDecisionLog(client, 0)
	ctx := context.Background()

	seed := []*domain.DecisionEntry{
		{UserID: "u1", Outcome: domain.OutcomeDeny},
		{UserID: "u2", Outcome: domain.OutcomeDeny},
		{UserID: "u1", Outcome: domain.OutcomeAllow},
		{UserID: "u1", Outcome: domain.OutcomeDeny},
	}
	for _, e := range seed {
		if err := log.Append(ctx, e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	got, err := log.Recent(ctx, domain.AuditFilter{UserID: "u1", Outcome: domain.OutcomeDeny})
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	got, err = log.Recent(ctx, domain.AuditFilter{Limit: 1})
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(got) != 1 || got[0].Outcome != domain.OutcomeDeny || got[0].UserID != "u1" {
		t.Fatalf("unexpected limited result %+v", got)
	}
}

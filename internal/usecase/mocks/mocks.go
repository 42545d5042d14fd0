package mocks

import (
	"context"
	"sync"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

// MemorySessionStore is an in-memory implementation of SessionStore.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	SaveFunc func(ctx context.Context, session *domain.Session) error
}

var _ usecase.SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

func (m *MemorySessionStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrNoSession
}

func (m *MemorySessionStore) Save(ctx context.Context, session *domain.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *session
	m.sessions[session.ID] = &cp
	return nil
}

func (m *MemorySessionStore) Clear(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// MemoryAuditLog is an in-memory implementation of DecisionAuditLog.
type MemoryAuditLog struct {
	mu      sync.Mutex
	entries []*domain.DecisionEntry

	AppendFunc func(ctx context.Context, entry *domain.DecisionEntry) error
}

var _ usecase.DecisionAuditLog = (*MemoryAuditLog)(nil)

func NewMemoryAuditLog() *MemoryAuditLog {
	return &MemoryAuditLog{}
}

func (m *MemoryAuditLog) Append(ctx context.Context, entry *domain.DecisionEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]*domain.DecisionEntry{entry}, m.entries...)
	return nil
}

func (m *MemoryAuditLog) Recent(ctx context.Context, filter domain.AuditFilter) ([]*domain.DecisionEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.DecisionEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.Outcome != "" && e.Outcome != filter.Outcome {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// Entries returns a snapshot of the appended entries, newest first.
func (m *MemoryAuditLog) Entries() []*domain.DecisionEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.DecisionEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// CountingRecorder tallies decisions by outcome.
type CountingRecorder struct {
	mu      sync.Mutex
	Allowed int
	Denied  int
}

var _ usecase.DecisionRecorder = (*CountingRecorder)(nil)

func (r *CountingRecorder) RecordDecision(_ domain.Resource, _ domain.Action, allowed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if allowed {
		r.Allowed++
	} else {
		r.Denied++
	}
}

// StaticIDGenerator returns ids from a fixed sequence, then repeats the last.
type StaticIDGenerator struct {
	mu  sync.Mutex
	IDs []string
	n   int
}

func (g *StaticIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.IDs) == 0 {
		return "id"
	}
	i := g.n
	if i >= len(g.IDs) {
		i = len(g.IDs) - 1
	}
	g.n++
	return g.IDs[i]
}

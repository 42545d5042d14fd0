package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

// DefaultDecisionLogSize bounds the decision log.
const DefaultDecisionLogSize = 10000

// DecisionLog implements usecase.DecisionAuditLog as a capped Redis list,
// newest entry first.
type DecisionLog struct {
	client  *redis.Client
	key     string
	maxSize int64
	now     func() time.Time
}

var _ usecase.DecisionAuditLog = (*DecisionLog)(nil)

// NewDecisionLog creates a decision log keeping at most maxSize entries.
func NewDecisionLog(client *redis.Client, maxSize int) *DecisionLog {
	if maxSize <= 0 {
		maxSize = DefaultDecisionLogSize
	}
	return &DecisionLog{
		client:  client,
		key:     "audit:decisions",
		maxSize: int64(maxSize),
		now:     time.Now,
	}
}

// Append assigns the entry an id and timestamp and pushes it.
func (l *DecisionLog) Append(ctx context.Context, entry *domain.DecisionEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = l.now().UTC()
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, l.key, raw)
		pipe.LTrim(ctx, l.key, 0, l.maxSize-1)
		return nil
	})
	return err
}

// Recent returns the newest entries matching filter.
func (l *DecisionLog) Recent(ctx context.Context, filter domain.AuditFilter) ([]*domain.DecisionEntry, error) {
	raws, err := l.client.LRange(ctx, l.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = len(raws)
	}

	out := make([]*domain.DecisionEntry, 0, min(limit, len(raws)))
	for _, raw := range raws {
		if len(out) >= limit {
			break
		}
		var e domain.DecisionEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.Outcome != "" && e.Outcome != filter.Outcome {
			continue
		}
		out = append(out, &e)
	}
	return out, nil
}

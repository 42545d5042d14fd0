package usecase

import (
	"context"

	"github.com/searn/hubadmin/internal/domain"
)

type requestIDKey struct{}

// WithRequestID stores the request id for audit entries.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the stored request id, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type sessionKey struct{}

// WithSession stores the authenticated session.
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the authenticated session, if any.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return sess, ok && sess != nil
}

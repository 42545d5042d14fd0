package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/usecase"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayHeader marks a reply served from the store.
	IdempotencyReplayHeader = "X-Idempotency-Replay"

	defaultIdempotencyTTL = 24 * time.Hour
	maxIdempotencyKeyLen  = 128
)

// IdempotencyMiddleware replays the stored reply of a mutation retried with
// the same Idempotency-Key. Keys are scoped to the authenticated user, so it
// must run after AuthMiddleware.
type IdempotencyMiddleware struct {
	store   usecase.IdempotencyStore
	ttl     time.Duration
	replays prometheus.Counter
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware. replays may
// be nil.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, ttl time.Duration, replays prometheus.Counter) *IdempotencyMiddleware {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyMiddleware{store: store, ttl: ttl, replays: replays}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isMutation(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			writeError(w, http.StatusBadRequest, "idempotency key too long")
			return
		}

		sess, ok := usecase.SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		scoped := sess.Principal.UserID + ":" + r.Method + ":" + r.URL.Path + ":" + key

		ctx := r.Context()
		reply, reserved, err := m.store.Reserve(ctx, scoped, m.ttl)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("idempotency check failed")
			writeError(w, http.StatusInternalServerError, "idempotency check failed")
			return
		}

		if reply != nil {
			if m.replays != nil {
				m.replays.Inc()
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(IdempotencyReplayHeader, "true")
			w.WriteHeader(reply.Status)
			_, _ = w.Write(reply.Body)
			return
		}
		if !reserved {
			writeError(w, http.StatusConflict, "request with this idempotency key is in progress")
			return
		}

		// Release the key unless the reply was stored, including when the
		// handler panics.
		completed := false
		defer func() {
			if completed {
				return
			}
			if err := m.store.Release(ctx, scoped); err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to release idempotency key")
			}
		}()

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode < 200 || recorder.statusCode >= 300 {
			return
		}
		stored := &usecase.IdempotentReply{Status: recorder.statusCode, Body: recorder.body.Bytes()}
		if err := m.store.Complete(ctx, scoped, stored, m.ttl); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to store idempotent reply")
			return
		}
		completed = true
	})
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/infrastructure/auth"
	"github.com/searn/hubadmin/internal/usecase"
)

// TokenVerifier validates access tokens.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// SessionResolver loads the live session behind a token.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}

// AuthMiddleware creates an authentication middleware. A request passes only
// when its bearer token verifies and the session it names is still open and
// belongs to the same principal.
func AuthMiddleware(tokens TokenVerifier, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing or malformed authorization header")
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			sess, err := sessions.Resolve(r.Context(), claims.SessionID)
			if err != nil {
				status := http.StatusUnauthorized
				if !isAuthError(err) {
					zerolog.Ctx(r.Context()).Error().Err(err).Msg("session lookup failed")
					status = http.StatusServiceUnavailable
				}
				writeError(w, status, "session unavailable")
				return
			}

			p := claims.Principal()
			if sess.Principal.UserID != p.UserID || sess.Principal.Role != p.Role {
				zerolog.Ctx(r.Context()).Warn().
					Str("session_id", claims.SessionID).
					Str("user_id", p.UserID).
					Msg("token does not match session")
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := usecase.WithSession(r.Context(), sess)
			logger := zerolog.Ctx(ctx).With().
				Str("user_id", sess.Principal.UserID).
				Str("role", string(sess.Principal.Role)).
				Logger()
			ctx = logger.WithContext(ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func isAuthError(err error) bool {
	return errors.Is(err, domain.ErrNoSession) ||
		errors.Is(err, domain.ErrExpiredToken) ||
		errors.Is(err, domain.ErrInvalidToken) ||
		errors.Is(err, domain.ErrUnauthorized)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

package handler

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
	"github.com/searn/hubadmin/internal/usecase"
)

// AuthService defines the behavior needed by AuthHandler.
type AuthService interface {
	Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)
	Logout(ctx context.Context, sessionID string) error
	ChangeOwnPassword(ctx context.Context, session *domain.Session, current, next string) error
}

// LoginRecorder counts login attempts.
type LoginRecorder interface {
	RecordLogin(ok bool)
}

// AuthHandler handles console login and session endpoints.
type AuthHandler struct {
	authUC   AuthService
	recorder LoginRecorder
}

// NewAuthHandler creates a new auth handler. recorder may be nil.
func NewAuthHandler(authUC AuthService, recorder LoginRecorder) *AuthHandler {
	return &AuthHandler{
		authUC:   authUC,
		recorder: recorder,
	}
}

// Login opens a console session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.authUC.Login(r.Context(), req.ToUseCaseInput())
	if h.recorder != nil {
		h.recorder.RecordLogin(err == nil)
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Info().Err(err).Str("email", req.Email).Msg("login rejected")
		handleError(w, r, "login failed", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromLogin(out))
}

// Logout closes the caller's session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.authUC.Logout(r.Context(), sess.ID); err != nil {
		handleError(w, r, "logout failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me returns the caller's principal and capabilities.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionResponse{
		ExpiresAt:    sess.ExpiresAt,
		Principal:    sess.Principal,
		Capabilities: policy.GetCapabilities(sess.Principal.Role),
	})
}

// ChangePassword changes the caller's own password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.ChangeOwnPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.authUC.ChangeOwnPassword(r.Context(), sess, req.OldPassword, req.NewPassword); err != nil {
		handleError(w, r, "failed to change password", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

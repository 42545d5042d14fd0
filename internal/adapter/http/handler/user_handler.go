package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

// UserService defines the behavior needed by UserHandler.
type UserService interface {
	ListUsers(ctx context.Context, sess *domain.Session) ([]usecase.Row[*domain.User], error)
	CreateUser(ctx context.Context, sess *domain.Session, input usecase.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, sess *domain.Session, id string, patch usecase.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, sess *domain.Session, id string) error
	ChangeUserPassword(ctx context.Context, sess *domain.Session, id, password string) error
}

// UserHandler handles console account management.
type UserHandler struct {
	userUC UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUC UserService) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// List lists the accounts visible to the caller.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	rows, err := h.userUC.ListUsers(r.Context(), sess)
	if err != nil {
		handleError(w, r, "failed to list users", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(rows))
}

// Create creates an account.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.userUC.CreateUser(r.Context(), sess, req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to create user", err)
		return
	}

	writeJSON(w, http.StatusCreated, u)
}

// Update edits an account.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.userUC.UpdateUser(r.Context(), sess, chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to update user", err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// Delete removes an account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.userUC.DeleteUser(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		handleError(w, r, "failed to delete user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangePassword sets another account's password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.SetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.userUC.ChangeUserPassword(r.Context(), sess, chi.URLParam(r, "id"), req.NewPassword); err != nil {
		handleError(w, r, "failed to change password", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

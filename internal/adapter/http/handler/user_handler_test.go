package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

type userServiceStub struct {
	listFn     func(ctx context.Context, sess *domain.Session) ([]usecase.Row[*domain.User], error)
	createFn   func(ctx context.Context, sess *domain.Session, input usecase.CreateUserInput) (*domain.User, error)
	updateFn   func(ctx context.Context, sess *domain.Session, id string, patch usecase.UserPatch) (*domain.User, error)
	deleteFn   func(ctx context.Context, sess *domain.Session, id string) error
	passwordFn func(ctx context.Context, sess *domain.Session, id, password string) error
}

func (s *userServiceStub) ListUsers(ctx context.Context, sess *domain.Session) ([]usecase.Row[*domain.User], error) {
	return s.listFn(ctx, sess)
}

func (s *userServiceStub) CreateUser(ctx context.Context, sess *domain.Session, input usecase.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, sess, input)
}

func (s *userServiceStub) UpdateUser(ctx context.Context, sess *domain.Session, id string, patch usecase.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, sess, id, patch)
}

func (s *userServiceStub) DeleteUser(ctx context.Context, sess *domain.Session, id string) error {
	return s.deleteFn(ctx, sess, id)
}

func (s *userServiceStub) ChangeUserPassword(ctx context.Context, sess *domain.Session, id, password string) error {
	return s.passwordFn(ctx, sess, id, password)
}

func TestUserHandler_Create(t *testing.T) {
	var captured usecase.CreateUserInput
	h := NewUserHandler(&userServiceStub{
		createFn: func(ctx context.Context, sess *domain.Session, input usecase.CreateUserInput) (*domain.User, error) {
			captured = input
			return &domain.User{ID: "u2", Email: input.Email, Role: input.Role}, nil
		},
	})

	body := dto.CreateUserRequest{Email: "cashier@hub.io", Password: "secret1", Role: " Store_Cashier "}
	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(t, http.MethodPost, "/users", body, storeAdmin))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Role != domain.RoleStoreCashier {
		t.Fatalf("expected normalized role, got %q", captured.Role)
	}
}

func TestUserHandler_CreateOutranked(t *testing.T) {
	h := NewUserHandler(&userServiceStub{
		createFn: func(ctx context.Context, sess *domain.Session, input usecase.CreateUserInput) (*domain.User, error) {
			return nil, fmt.Errorf("%w: cannot assign role %s", domain.ErrForbidden, input.Role)
		},
	})

	body := dto.CreateUserRequest{Email: "boss@hub.io", Password: "secret1", Role: domain.RoleSuperManager}
	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(t, http.MethodPost, "/users", body, storeAdmin))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUserHandler_Update(t *testing.T) {
	var captured usecase.UserPatch
	h := NewUserHandler(&userServiceStub{
		updateFn: func(ctx context.Context, sess *domain.Session, id string, patch usecase.UserPatch) (*domain.User, error) {
			captured = patch
			return &domain.User{ID: id}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Update(rec, newRequest(t, http.MethodPut, "/users/u2", `{"role":"store_manager"}`, storeAdmin, "id", "u2"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Role == nil || *captured.Role != domain.RoleStoreManager || captured.Email != nil {
		t.Fatalf("unexpected patch %+v", captured)
	}
}

func TestUserHandler_DeleteNotFound(t *testing.T) {
	h := NewUserHandler(&userServiceStub{
		deleteFn: func(ctx context.Context, sess *domain.Session, id string) error {
			return domain.ErrNotFound
		},
	})

	rec := httptest.NewRecorder()
	h.Delete(rec, newRequest(t, http.MethodDelete, "/users/u9", nil, superAdmin, "id", "u9"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_ChangePassword(t *testing.T) {
	var gotID, gotPassword string
	h := NewUserHandler(&userServiceStub{
		passwordFn: func(ctx context.Context, sess *domain.Session, id, password string) error {
			gotID, gotPassword = id, password
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.ChangePassword(rec, newRequest(t, http.MethodPost, "/users/u2/change-password", `{"newPassword":"fresh-pass"}`, storeAdmin, "id", "u2"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "u2" || gotPassword != "fresh-pass" {
		t.Fatalf("unexpected call %q %q", gotID, gotPassword)
	}
}

func TestUserHandler_ListRequiresSession(t *testing.T) {
	h := NewUserHandler(&userServiceStub{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

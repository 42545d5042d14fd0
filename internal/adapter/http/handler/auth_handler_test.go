package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
	"github.com/searn/hubadmin/internal/usecase"
)

type authServiceStub struct {
	loginFn  func(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)
	logoutFn func(ctx context.Context, sessionID string) error
	changeFn func(ctx context.Context, session *domain.Session, current, next string) error
}

func (s *authServiceStub) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *authServiceStub) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *authServiceStub) ChangeOwnPassword(ctx context.Context, session *domain.Session, current, next string) error {
	return s.changeFn(ctx, session, current, next)
}

type loginCounter struct {
	ok, failed int
}

func (c *loginCounter) RecordLogin(ok bool) {
	if ok {
		c.ok++
		return
	}
	c.failed++
}

func TestAuthHandler_Login_Success(t *testing.T) {
	counter := &loginCounter{}
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	h := NewAuthHandler(&authServiceStub{
		loginFn: func(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
			if input.Email != "owner@hub.io" || input.Password != "secret" {
				t.Fatalf("unexpected input %+v", input)
			}
			return &usecase.LoginOutput{
				AccessToken:  "jwt",
				Session:      &domain.Session{ID: "s1", Principal: storeAdmin, ExpiresAt: expires},
				Capabilities: policy.GetCapabilities(domain.RoleStoreAdmin),
			}, nil
		},
	}, counter)

	req := newRequest(t, http.MethodPost, "/auth/login", dto.LoginRequest{Email: "owner@hub.io", Password: "secret"}, domain.Principal{})
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token        string           `json:"token"`
		Principal    domain.Principal `json:"principal"`
		Capabilities struct {
			Role string `json:"role"`
		} `json:"capabilities"`
	}
	decodeResponse(t, rec, &resp)
	if resp.Token != "jwt" || resp.Principal.MerchantID != "M1" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Capabilities.Role != string(domain.RoleStoreAdmin) {
		t.Fatalf("expected store_admin capabilities, got %q", resp.Capabilities.Role)
	}
	if counter.ok != 1 || counter.failed != 0 {
		t.Fatalf("expected one successful login recorded, got %+v", counter)
	}
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	counter := &loginCounter{}
	h := NewAuthHandler(&authServiceStub{
		loginFn: func(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domain.ErrUnauthorized
		},
	}, counter)

	req := newRequest(t, http.MethodPost, "/auth/login", dto.LoginRequest{Email: "owner@hub.io", Password: "wrong"}, domain.Principal{})
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if counter.failed != 1 {
		t.Fatalf("expected failed login recorded, got %+v", counter)
	}
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{}, nil)

	req := newRequest(t, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`, domain.Principal{})
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var closed string
	h := NewAuthHandler(&authServiceStub{
		logoutFn: func(ctx context.Context, sessionID string) error {
			closed = sessionID
			return nil
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, newRequest(t, http.MethodPost, "/auth/logout", nil, storeAdmin))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if closed != "sess-1" {
		t.Fatalf("expected session sess-1 closed, got %q", closed)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{}, nil)

	rec := httptest.NewRecorder()
	h.Me(rec, newRequest(t, http.MethodGet, "/auth/me", nil, storeAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Token        string           `json:"token"`
		Principal    domain.Principal `json:"principal"`
		Capabilities struct {
			NavSections []string `json:"navSections"`
		} `json:"capabilities"`
	}
	decodeResponse(t, rec, &resp)
	if resp.Token != "" {
		t.Fatalf("expected no token on /me, got %q", resp.Token)
	}
	if resp.Principal.Role != domain.RoleStoreAdmin {
		t.Fatalf("unexpected principal %+v", resp.Principal)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{
		changeFn: func(ctx context.Context, session *domain.Session, current, next string) error {
			if current != "old-pass" || next != "new-pass" {
				t.Fatalf("unexpected passwords %q %q", current, next)
			}
			return nil
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.ChangePassword(rec, newRequest(t, http.MethodPost, "/auth/change-password",
		dto.ChangeOwnPasswordRequest{OldPassword: "old-pass", NewPassword: "new-pass"}, storeAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_ChangePasswordTooShort(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{}, nil)

	rec := httptest.NewRecorder()
	h.ChangePassword(rec, newRequest(t, http.MethodPost, "/auth/change-password",
		dto.ChangeOwnPasswordRequest{OldPassword: "old-pass", NewPassword: "x"}, storeAdmin))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

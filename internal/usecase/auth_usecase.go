package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
)

// DefaultSessionTTL is how long a console session lives without a config override.
const DefaultSessionTTL = 12 * time.Hour

// AuthUseCase handles console login and session lifecycle.
type AuthUseCase struct {
	backend  AuthBackend
	sessions SessionStore
	tokens   TokenIssuer
	idGen    IDGenerator
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthUseCase creates a new auth use case.
func NewAuthUseCase(backend AuthBackend, sessions SessionStore, tokens TokenIssuer, idGen IDGenerator, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthUseCase{
		backend:  backend,
		sessions: sessions,
		tokens:   tokens,
		idGen:    idGen,
		ttl:      ttl,
		now:      time.Now,
	}
}

// LoginInput represents login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is returned after a successful login.
type LoginOutput struct {
	AccessToken  string
	Session      *domain.Session
	Capabilities *policy.Capabilities
}

// Login authenticates against the backend, opens a session and issues an
// access token bound to it.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	res, err := uc.backend.Login(ctx, email, input.Password)
	if err != nil {
		return nil, err
	}
	if res == nil || res.User == nil || res.Token == "" {
		return nil, fmt.Errorf("%w: empty login response", domain.ErrBackendError)
	}

	principal := domain.PrincipalFromUser(res.User)
	if !principal.Role.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRole, res.User.Role)
	}

	now := uc.now().UTC()
	session := &domain.Session{
		ID:        uc.idGen.Generate(),
		Token:     res.Token,
		Principal: principal,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	accessToken, err := uc.tokens.Generate(principal, session.ID)
	if err != nil {
		_ = uc.sessions.Clear(ctx, session.ID)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginOutput{
		AccessToken:  accessToken,
		Session:      session,
		Capabilities: policy.GetCapabilities(principal.Role),
	}, nil
}

// Resolve loads the session for an authenticated request.
func (uc *AuthUseCase) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrNoSession
	}

	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsExpired(uc.now()) {
		_ = uc.sessions.Clear(ctx, sessionID)
		return nil, domain.ErrExpiredToken
	}

	return session, nil
}

// Logout clears the session. Logging out of a missing session succeeds.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Clear(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNoSession) {
		return err
	}
	return nil
}

// ChangeOwnPassword changes the caller's password on the backend.
func (uc *AuthUseCase) ChangeOwnPassword(ctx context.Context, session *domain.Session, current, next string) error {
	if current == "" {
		return fmt.Errorf("%w: current password is required", domain.ErrInvalidInput)
	}
	if err := domain.ValidatePassword(next); err != nil {
		return err
	}
	return uc.backend.ChangeOwnPassword(ctx, session.Token, current, next)
}

package usecase

import (
	"context"
	"time"

	"github.com/searn/hubadmin/internal/domain"
)

// LoginResult is the backend's reply to a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthBackend authenticates console users against the remote API.
type AuthBackend interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ChangeOwnPassword(ctx context.Context, token, current, next string) error
}

// MerchantBackend manages hubs on the remote API.
type MerchantBackend interface {
	ListMerchants(ctx context.Context, token string) ([]*domain.Merchant, error)
	GetMerchant(ctx context.Context, token, id string) (*domain.Merchant, error)
	CreateMerchant(ctx context.Context, token string, merchant *domain.Merchant) (*domain.Merchant, error)
	UpdateMerchant(ctx context.Context, token, id string, patch map[string]any) (*domain.Merchant, error)
	DeleteMerchant(ctx context.Context, token, id string) error
	SetMerchantDisabled(ctx context.Context, token, id string, disabled bool) error
	SetMerchantWithdrawals(ctx context.Context, token, id string, enabled bool) error
	MerchantBalance(ctx context.Context, token string) (*domain.MerchantBalance, error)
	MerchantDeposit(ctx context.Context, token string, req domain.FundsRequest) (*domain.FundsResult, error)
	MerchantWithdraw(ctx context.Context, token string, req domain.FundsRequest) (*domain.FundsResult, error)
}

// UserBackend manages console accounts on the remote API.
type UserBackend interface {
	ListUsers(ctx context.Context, token string) ([]*domain.User, error)
	GetUser(ctx context.Context, token, id string) (*domain.User, error)
	CreateUser(ctx context.Context, token string, u *domain.User, password string) (*domain.User, error)
	UpdateUser(ctx context.Context, token, id string, patch map[string]any) (*domain.User, error)
	DeleteUser(ctx context.Context, token, id string) error
	ChangeUserPassword(ctx context.Context, token, id, password string) error
}

// BlockedIPBackend manages IP blocks on the remote API.
type BlockedIPBackend interface {
	ListBlockedIPs(ctx context.Context, token, ip string) ([]*domain.BlockedIP, error)
	GetBlockedIP(ctx context.Context, token, id string) (*domain.BlockedIP, error)
	CreateBlockedIP(ctx context.Context, token string, b *domain.BlockedIP) (*domain.BlockedIP, error)
	UpdateBlockedIP(ctx context.Context, token, id string, b *domain.BlockedIP) (*domain.BlockedIP, error)
	DeleteBlockedIP(ctx context.Context, token, id string) error
}

// CatalogBackend serves the remaining read-mostly collections.
type CatalogBackend interface {
	ListTransactions(ctx context.Context, token string, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	ListPlatforms(ctx context.Context, token string) ([]*domain.Platform, error)
	CreatePlatform(ctx context.Context, token, name string) (*domain.Platform, error)
	UpdatePlatform(ctx context.Context, token, id, name string) (*domain.Platform, error)
	DeletePlatform(ctx context.Context, token, id string) error
	ListActivityLogs(ctx context.Context, token string, limit, offset int) ([]*domain.ActivityLog, error)
	HubReport(ctx context.Context, token string, filter domain.ReportFilter) ([]*domain.HubReport, error)
	DashboardStats(ctx context.Context, token string) (*domain.DashboardStats, error)
}

// Backend is the full remote console API.
type Backend interface {
	AuthBackend
	MerchantBackend
	UserBackend
	BlockedIPBackend
	CatalogBackend
}

// SessionStore keeps console sessions between requests.
type SessionStore interface {
	Load(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context, id string) error
}

// DecisionAuditLog records gate decisions for later review.
type DecisionAuditLog interface {
	Append(ctx context.Context, entry *domain.DecisionEntry) error
	Recent(ctx context.Context, filter domain.AuditFilter) ([]*domain.DecisionEntry, error)
}

// DecisionRecorder counts gate decisions.
type DecisionRecorder interface {
	RecordDecision(resource domain.Resource, action domain.Action, allowed bool)
}

// TokenIssuer signs access tokens for a session.
type TokenIssuer interface {
	Generate(p domain.Principal, sessionID string) (string, error)
}

// IDGenerator produces unique identifiers.
type IDGenerator interface {
	Generate() string
}

// Cache stores short-lived shared values. Get returns domain.ErrNotFound on
// a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotentReply is the stored reply to a keyed mutation.
type IdempotentReply struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// IdempotencyStore remembers replies to keyed mutations. Reserve returns the
// stored reply if one exists, or reserved=false while another request holds
// the key.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (reply *IdempotentReply, reserved bool, err error)
	Complete(ctx context.Context, key string, reply *IdempotentReply, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

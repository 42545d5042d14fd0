package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
)

// Row is a record annotated with the actions the caller may take on it.
type Row[T any] struct {
	Item    T               `json:"item"`
	Actions []domain.Action `json:"actions"`
}

// ConsoleUseCase serves the console screens: it fetches from the backend,
// drops records outside the caller's scope and gates every mutation.
type ConsoleUseCase struct {
	backend  Backend
	access   *AccessUseCase
	cache    Cache
	cacheTTL time.Duration
}

// NewConsoleUseCase creates a new console use case.
func NewConsoleUseCase(backend Backend, access *AccessUseCase) *ConsoleUseCase {
	return &ConsoleUseCase{
		backend: backend,
		access:  access,
	}
}

// platformCatalogKey holds the shared platform catalog. Platforms are global
// so one entry serves every session.
const platformCatalogKey = "platforms:catalog"

// WithCache enables caching of the platform catalog.
func (uc *ConsoleUseCase) WithCache(c Cache, ttl time.Duration) *ConsoleUseCase {
	uc.cache = c
	uc.cacheTTL = ttl
	return uc
}

func (uc *ConsoleUseCase) platforms(ctx context.Context, token string) ([]*domain.Platform, error) {
	if uc.cache != nil {
		raw, err := uc.cache.Get(ctx, platformCatalogKey)
		if err == nil {
			var items []*domain.Platform
			if err := json.Unmarshal([]byte(raw), &items); err == nil {
				return items, nil
			}
		} else if !errors.Is(err, domain.ErrNotFound) {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("platform cache read failed")
		}
	}

	items, err := uc.backend.ListPlatforms(ctx, token)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := uc.cache.Set(ctx, platformCatalogKey, string(raw), uc.cacheTTL); err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Msg("platform cache write failed")
			}
		}
	}
	return items, nil
}

func (uc *ConsoleUseCase) invalidatePlatforms(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, platformCatalogKey); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("platform cache invalidation failed")
	}
}

func annotate[T policy.Scoped](gate policy.Gate, p domain.Principal, resource domain.Resource, items []T) []Row[T] {
	visible := policy.FilterVisible(p, resource, items)
	rows := make([]Row[T], 0, len(visible))
	for _, item := range visible {
		rows = append(rows, Row[T]{Item: item, Actions: gate.AllowedActions(p, resource, item.Instance())})
	}
	return rows
}

func requireSession(sess *domain.Session) error {
	if sess == nil || sess.Token == "" {
		return domain.ErrUnauthorized
	}
	return nil
}

// list checks collection-level view access before fetching.
func (uc *ConsoleUseCase) list(ctx context.Context, sess *domain.Session, resource domain.Resource) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return uc.access.Authorize(ctx, sess.Principal, resource, nil, domain.ActionView)
}

// ListMerchants lists the hubs the caller may view.
func (uc *ConsoleUseCase) ListMerchants(ctx context.Context, sess *domain.Session) ([]Row[*domain.Merchant], error) {
	if err := uc.list(ctx, sess, domain.ResourceMerchant); err != nil {
		return nil, err
	}
	items, err := uc.backend.ListMerchants(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	return annotate(uc.access.Gate(), sess.Principal, domain.ResourceMerchant, items), nil
}

// GetMerchant returns one hub if the caller may view it.
func (uc *ConsoleUseCase) GetMerchant(ctx context.Context, sess *domain.Session, id string) (*Row[*domain.Merchant], error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	m, err := uc.backend.GetMerchant(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourceMerchant, m.Instance(), domain.ActionView); err != nil {
		return nil, err
	}
	return &Row[*domain.Merchant]{
		Item:    m,
		Actions: uc.access.Gate().AllowedActions(sess.Principal, domain.ResourceMerchant, m.Instance()),
	}, nil
}

// ListUsers lists the console accounts the caller may view.
func (uc *ConsoleUseCase) ListUsers(ctx context.Context, sess *domain.Session) ([]Row[*domain.User], error) {
	if err := uc.list(ctx, sess, domain.ResourceUser); err != nil {
		return nil, err
	}
	items, err := uc.backend.ListUsers(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	return annotate(uc.access.Gate(), sess.Principal, domain.ResourceUser, items), nil
}

// ListTransactions lists transactions. Store roles are always narrowed to
// their own hub, on the backend query and again on the result.
func (uc *ConsoleUseCase) ListTransactions(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter) ([]Row[*domain.Transaction], error) {
	if err := uc.list(ctx, sess, domain.ResourceTransaction); err != nil {
		return nil, err
	}
	if sess.Principal.Role.IsTenantBound() {
		filter.MerchantID = sess.Principal.Tenant()
	}
	filter.Limit, filter.Offset, _ = domain.ValidatePagination(filter.Limit, filter.Offset)

	items, err := uc.backend.ListTransactions(ctx, sess.Token, filter)
	if err != nil {
		return nil, err
	}
	return annotate(uc.access.Gate(), sess.Principal, domain.ResourceTransaction, items), nil
}

// ListBlockedIPs lists IP blocks, optionally for one address.
func (uc *ConsoleUseCase) ListBlockedIPs(ctx context.Context, sess *domain.Session, ip string) ([]Row[*domain.BlockedIP], error) {
	if err := uc.list(ctx, sess, domain.ResourceBlockedIP); err != nil {
		return nil, err
	}
	items, err := uc.backend.ListBlockedIPs(ctx, sess.Token, strings.TrimSpace(ip))
	if err != nil {
		return nil, err
	}
	return annotate(uc.access.Gate(), sess.Principal, domain.ResourceBlockedIP, items), nil
}

// ListPlatforms lists game platforms.
func (uc *ConsoleUseCase) ListPlatforms(ctx context.Context, sess *domain.Session) ([]Row[*domain.Platform], error) {
	if err := uc.list(ctx, sess, domain.ResourcePlatform); err != nil {
		return nil, err
	}
	items, err := uc.platforms(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	return annotate(uc.access.Gate(), sess.Principal, domain.ResourcePlatform, items), nil
}

// PlatformOptions lists platforms for the hub form's platform picker. Store
// roles cannot manage platforms but may link them to their own hub.
func (uc *ConsoleUseCase) PlatformOptions(ctx context.Context, sess *domain.Session) ([]*domain.Platform, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	p := sess.Principal
	caps := uc.access.Capabilities(p.Role)
	linkable := caps.Grant(domain.ResourceMerchant, domain.ActionEdit) != policy.GrantNone &&
		caps.CanEditField(domain.ResourceMerchant, domain.FieldMerchantPlatforms)
	if !linkable && !uc.access.Gate().CanPerform(p, domain.ResourcePlatform, nil, domain.ActionView) {
		return nil, fmt.Errorf("%w: platform options", domain.ErrForbidden)
	}
	return uc.platforms(ctx, sess.Token)
}

// ListActivityLogs lists console activity.
func (uc *ConsoleUseCase) ListActivityLogs(ctx context.Context, sess *domain.Session, limit, offset int) ([]Row[*domain.ActivityLog], error) {
	if err := uc.list(ctx, sess, domain.ResourceActivityLog); err != nil {
		return nil, err
	}
	limit, offset, _ = domain.ValidatePagination(limit, offset)
	items, err := uc.backend.ListActivityLogs(ctx, sess.Token, limit, offset)
	if err != nil {
		return nil, err
	}
	return annotate(uc.access.Gate(), sess.Principal, domain.ResourceActivityLog, items), nil
}

// HubReport returns per-hub totals.
func (uc *ConsoleUseCase) HubReport(ctx context.Context, sess *domain.Session, filter domain.ReportFilter) ([]*domain.HubReport, error) {
	if err := uc.list(ctx, sess, domain.ResourceReport); err != nil {
		return nil, err
	}
	rows, err := uc.backend.HubReport(ctx, sess.Token, filter)
	if err != nil {
		return nil, err
	}
	return policy.FilterVisible(sess.Principal, domain.ResourceReport, rows), nil
}

// DashboardStats returns the platform overview. Only roles with the
// overview feature see it; store roles get their hub balance instead.
func (uc *ConsoleUseCase) DashboardStats(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error) {
	if err := uc.requireFeature(sess, policy.FeaturePlatformOverview); err != nil {
		return nil, err
	}
	return uc.backend.DashboardStats(ctx, sess.Token)
}

// requireFeature fails with ErrForbidden when the role lacks the feature.
func (uc *ConsoleUseCase) requireFeature(sess *domain.Session, f policy.Feature) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if !uc.access.Capabilities(sess.Principal.Role).HasFeature(f) {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, f)
	}
	if sess.Principal.Role.IsTenantBound() && !sess.Principal.HasTenant() {
		return fmt.Errorf("%w: no hub bound to session", domain.ErrForbidden)
	}
	return nil
}

package usecase

import (
	"context"
	"strings"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
)

// BlockedIPInput carries block form values.
type BlockedIPInput struct {
	IP            string
	BlockedForAll *bool
	MerchantIDs   []string
	Reason        *string
}

// scopeBlock fills the scope fields a role is allowed to choose. Super roles
// block platform-wide unless told otherwise; store roles always block for
// their own hub only.
func scopeBlock(p domain.Principal, b *domain.BlockedIP, input BlockedIPInput) {
	if p.Role.IsTenantBound() {
		b.BlockedForAll = false
		b.Merchants = domain.OwnerRefs{{ID: p.Tenant()}}
		return
	}
	b.BlockedForAll = input.BlockedForAll == nil || *input.BlockedForAll
	if b.BlockedForAll {
		b.Merchants = nil
		return
	}
	refs := make(domain.OwnerRefs, 0, len(input.MerchantIDs))
	for _, id := range input.MerchantIDs {
		if id = strings.TrimSpace(id); id != "" {
			refs = append(refs, domain.OwnerRef{ID: id})
		}
	}
	b.Merchants = refs
}

// CreateBlockedIP blocks an address.
func (uc *ConsoleUseCase) CreateBlockedIP(ctx context.Context, sess *domain.Session, input BlockedIPInput) (*domain.BlockedIP, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	p := sess.Principal

	b := &domain.BlockedIP{IP: strings.TrimSpace(input.IP)}
	if input.Reason != nil {
		b.Reason = strings.TrimSpace(*input.Reason)
	}
	scopeBlock(p, b, input)

	if err := uc.access.Authorize(ctx, p, domain.ResourceBlockedIP, b.Instance(), domain.ActionCreate); err != nil {
		return nil, err
	}
	if err := domain.ValidateBlockedIP(b); err != nil {
		return nil, err
	}

	return uc.backend.CreateBlockedIP(ctx, sess.Token, b)
}

// UpdateBlockedIP edits a block. The address itself is immutable, and store
// roles may only change the reason.
func (uc *ConsoleUseCase) UpdateBlockedIP(ctx context.Context, sess *domain.Session, id string, input BlockedIPInput) (*domain.BlockedIP, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	p := sess.Principal

	current, err := uc.backend.GetBlockedIP(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	if err := uc.access.Authorize(ctx, p, domain.ResourceBlockedIP, current.Instance(), domain.ActionEdit); err != nil {
		return nil, err
	}

	next := *current
	if input.Reason != nil && uc.access.Gate().CanEditField(p, domain.ResourceBlockedIP, current.Instance(), domain.FieldBlockedIPReason) {
		next.Reason = strings.TrimSpace(*input.Reason)
	}
	if uc.access.Gate().CanEditField(p, domain.ResourceBlockedIP, current.Instance(), domain.FieldBlockedIPForAll) {
		scope := input
		if scope.BlockedForAll == nil {
			forAll := current.BlockedForAll
			scope.BlockedForAll = &forAll
		}
		if scope.MerchantIDs == nil {
			scope.MerchantIDs = current.Merchants.IDs()
		}
		scopeBlock(p, &next, scope)
	}

	if err := domain.ValidateBlockedIP(&next); err != nil {
		return nil, err
	}

	return uc.backend.UpdateBlockedIP(ctx, sess.Token, id, &next)
}

// DeleteBlockedIP lifts a block.
func (uc *ConsoleUseCase) DeleteBlockedIP(ctx context.Context, sess *domain.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	b, err := uc.backend.GetBlockedIP(ctx, sess.Token, id)
	if err != nil {
		return err
	}
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourceBlockedIP, b.Instance(), domain.ActionDelete); err != nil {
		return err
	}
	return uc.backend.DeleteBlockedIP(ctx, sess.Token, id)
}

// QuickBlockIP blocks the address seen on a transaction row. An existing
// block that already covers the caller's scope is returned unchanged with
// created set to false.
func (uc *ConsoleUseCase) QuickBlockIP(ctx context.Context, sess *domain.Session, ip, reason string) (block *domain.BlockedIP, created bool, err error) {
	if err := uc.requireFeature(sess, policy.FeatureQuickBlockIP); err != nil {
		return nil, false, err
	}
	ip = strings.TrimSpace(ip)
	if err := domain.ValidateIP(ip); err != nil {
		return nil, false, err
	}

	p := sess.Principal
	existing, err := uc.backend.ListBlockedIPs(ctx, sess.Token, ip)
	if err != nil {
		return nil, false, err
	}
	// Global blocks are out of scope for store roles but still cover their hub.
	for _, b := range existing {
		if b.IP == ip && b.BlockedForAll {
			return b, false, nil
		}
	}
	for _, b := range policy.FilterVisible(p, domain.ResourceBlockedIP, existing) {
		if b.IP == ip && p.Role.IsTenantBound() && b.Owner().Includes(p.Tenant()) {
			return b, false, nil
		}
	}

	block, err = uc.CreateBlockedIP(ctx, sess, BlockedIPInput{IP: ip, Reason: &reason})
	if err != nil {
		return nil, false, err
	}
	return block, true, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
)

// MerchantPatch carries hub form values. Nil fields are left unchanged.
type MerchantPatch struct {
	Name                   *string
	APIKey                 *string
	TelegramChannelID      *string
	Subdomain              *string
	BannerImage            *string
	SupportLink            *string
	AdminCommissionPercent *decimal.Decimal
	WithdrawalsEnabled     *bool
	MinimumDeposit         *decimal.Decimal
	MinimumWithdraw        *decimal.Decimal
	MaximumWithdraw        *decimal.Decimal
	Platforms              []string
}

// Fields returns the set values keyed by form field.
func (p *MerchantPatch) Fields() map[domain.Field]any {
	out := make(map[domain.Field]any)
	setStr := func(f domain.Field, v *string) {
		if v != nil {
			out[f] = strings.TrimSpace(*v)
		}
	}
	setDec := func(f domain.Field, v *decimal.Decimal) {
		if v != nil {
			out[f] = *v
		}
	}
	setStr(domain.FieldMerchantName, p.Name)
	setStr(domain.FieldMerchantAPIKey, p.APIKey)
	setStr(domain.FieldMerchantTelegramChannel, p.TelegramChannelID)
	setStr(domain.FieldMerchantSubdomain, p.Subdomain)
	setStr(domain.FieldMerchantBannerImage, p.BannerImage)
	setStr(domain.FieldMerchantSupportLink, p.SupportLink)
	setDec(domain.FieldMerchantCommission, p.AdminCommissionPercent)
	setDec(domain.FieldMerchantMinDeposit, p.MinimumDeposit)
	setDec(domain.FieldMerchantMinWithdraw, p.MinimumWithdraw)
	setDec(domain.FieldMerchantMaxWithdraw, p.MaximumWithdraw)
	if p.WithdrawalsEnabled != nil {
		out[domain.FieldMerchantWithdrawals] = *p.WithdrawalsEnabled
	}
	if p.Platforms != nil {
		out[domain.FieldMerchantPlatforms] = p.Platforms
	}
	return out
}

func applyMerchantField(m *domain.Merchant, f domain.Field, v any) {
	switch f {
	case domain.FieldMerchantName:
		m.Name = v.(string)
	case domain.FieldMerchantAPIKey:
		m.APIKey = v.(string)
	case domain.FieldMerchantTelegramChannel:
		m.TelegramChannelID = v.(string)
	case domain.FieldMerchantSubdomain:
		m.Subdomain = strings.ToLower(v.(string))
	case domain.FieldMerchantBannerImage:
		m.BannerImage = v.(string)
	case domain.FieldMerchantSupportLink:
		m.SupportLink = v.(string)
	case domain.FieldMerchantCommission:
		m.AdminCommissionPercent = v.(decimal.Decimal)
	case domain.FieldMerchantMinDeposit:
		m.MinimumDeposit = v.(decimal.Decimal)
	case domain.FieldMerchantMinWithdraw:
		m.MinimumWithdraw = v.(decimal.Decimal)
	case domain.FieldMerchantMaxWithdraw:
		m.MaximumWithdraw = v.(decimal.Decimal)
	case domain.FieldMerchantWithdrawals:
		m.WithdrawalsEnabled = v.(bool)
	case domain.FieldMerchantPlatforms:
		ids := v.([]string)
		refs := make(domain.OwnerRefs, 0, len(ids))
		for _, id := range ids {
			if id = strings.TrimSpace(id); id != "" {
				refs = append(refs, domain.OwnerRef{ID: id})
			}
		}
		m.Platforms = refs
	}
}

// hubOnlyFields are the merchant fields that do not require full form validation.
var hubOnlyFields = map[domain.Field]bool{
	domain.FieldMerchantWithdrawals: true,
	domain.FieldMerchantPlatforms:   true,
}

// CreateMerchant creates a hub with platform defaults for blank limits.
func (uc *ConsoleUseCase) CreateMerchant(ctx context.Context, sess *domain.Session, patch MerchantPatch) (*domain.Merchant, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	p := sess.Principal
	if err := uc.access.Authorize(ctx, p, domain.ResourceMerchant, nil, domain.ActionCreate); err != nil {
		return nil, err
	}

	m := &domain.Merchant{WithdrawalsEnabled: true}
	for f, v := range patch.Fields() {
		if !uc.access.Gate().CanEditField(p, domain.ResourceMerchant, nil, f) {
			return nil, fmt.Errorf("%w: field %s", domain.ErrForbidden, f)
		}
		applyMerchantField(m, f, v)
	}
	m.ApplyDefaults()

	if err := domain.ValidateMerchant(m, true); err != nil {
		return nil, err
	}

	return uc.backend.CreateMerchant(ctx, sess.Token, m)
}

// UpdateMerchant applies the fields the caller may edit. Fields outside the
// caller's reach are dropped; a patch with nothing left is refused.
func (uc *ConsoleUseCase) UpdateMerchant(ctx context.Context, sess *domain.Session, id string, patch MerchantPatch) (*domain.Merchant, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	p := sess.Principal

	current, err := uc.backend.GetMerchant(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	inst := current.Instance()
	if err := uc.access.Authorize(ctx, p, domain.ResourceMerchant, inst, domain.ActionEdit); err != nil {
		return nil, err
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}

	next := *current
	body := make(map[string]any, len(fields))
	general := false
	for f, v := range fields {
		if !uc.access.Gate().CanEditField(p, domain.ResourceMerchant, inst, f) {
			continue
		}
		applyMerchantField(&next, f, v)
		body[string(f)] = v
		if !hubOnlyFields[f] {
			general = true
		}
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: no editable fields in update", domain.ErrForbidden)
	}

	if general {
		_, apiKeyTouched := body[string(domain.FieldMerchantAPIKey)]
		if err := domain.ValidateMerchant(&next, apiKeyTouched); err != nil {
			return nil, err
		}
	}

	return uc.backend.UpdateMerchant(ctx, sess.Token, id, body)
}

// DeleteMerchant deletes a hub.
func (uc *ConsoleUseCase) DeleteMerchant(ctx context.Context, sess *domain.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	m, err := uc.backend.GetMerchant(ctx, sess.Token, id)
	if err != nil {
		return err
	}
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourceMerchant, m.Instance(), domain.ActionDelete); err != nil {
		return err
	}
	return uc.backend.DeleteMerchant(ctx, sess.Token, id)
}

// SetMerchantDisabled enables or disables a hub.
func (uc *ConsoleUseCase) SetMerchantDisabled(ctx context.Context, sess *domain.Session, id string, disabled bool) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	m, err := uc.backend.GetMerchant(ctx, sess.Token, id)
	if err != nil {
		return err
	}
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourceMerchant, m.Instance(), domain.ActionToggleStatus); err != nil {
		return err
	}
	return uc.backend.SetMerchantDisabled(ctx, sess.Token, id, disabled)
}

// SetMerchantWithdrawals switches player withdrawals for a hub.
func (uc *ConsoleUseCase) SetMerchantWithdrawals(ctx context.Context, sess *domain.Session, id string, enabled bool) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	m, err := uc.backend.GetMerchant(ctx, sess.Token, id)
	if err != nil {
		return err
	}
	inst := m.Instance()
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourceMerchant, inst, domain.ActionEdit); err != nil {
		return err
	}
	if !uc.access.Gate().CanEditField(sess.Principal, domain.ResourceMerchant, inst, domain.FieldMerchantWithdrawals) {
		return fmt.Errorf("%w: field %s", domain.ErrForbidden, domain.FieldMerchantWithdrawals)
	}
	return uc.backend.SetMerchantWithdrawals(ctx, sess.Token, id, enabled)
}

// MerchantBalance returns the caller's hub balance.
func (uc *ConsoleUseCase) MerchantBalance(ctx context.Context, sess *domain.Session) (*domain.MerchantBalance, error) {
	if err := uc.requireFeature(sess, policy.FeatureMerchantBalance); err != nil {
		return nil, err
	}
	return uc.backend.MerchantBalance(ctx, sess.Token)
}

// MerchantDeposit requests a deposit into the caller's hub balance.
func (uc *ConsoleUseCase) MerchantDeposit(ctx context.Context, sess *domain.Session, req domain.FundsRequest) (*domain.FundsResult, error) {
	if err := uc.requireFeature(sess, policy.FeatureMerchantFunds); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	req.All = false
	return uc.backend.MerchantDeposit(ctx, sess.Token, req)
}

// MerchantWithdraw requests a withdrawal from the caller's hub balance, or
// of the whole balance when req.All is set.
func (uc *ConsoleUseCase) MerchantWithdraw(ctx context.Context, sess *domain.Session, req domain.FundsRequest) (*domain.FundsResult, error) {
	if err := uc.requireFeature(sess, policy.FeatureMerchantFunds); err != nil {
		return nil, err
	}
	if !req.All {
		if err := domain.ValidateAmount(req.Amount); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: withdraw address is required", domain.ErrInvalidInput)
	}
	return uc.backend.MerchantWithdraw(ctx, sess.Token, req)
}

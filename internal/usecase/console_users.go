package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/searn/hubadmin/internal/domain"
)

// CreateUserInput represents input for creating a console user.
type CreateUserInput struct {
	Email            string
	Password         string
	Role             domain.Role
	MerchantID       string
	TelegramUsername string
}

// UserPatch carries user form values. Nil fields are left unchanged.
type UserPatch struct {
	Email            *string
	Role             *domain.Role
	MerchantID       *string
	TelegramUsername *string
}

// CreateUser creates a console user. Store roles always create users in
// their own hub; super roles are never bound to one.
func (uc *ConsoleUseCase) CreateUser(ctx context.Context, sess *domain.Session, input CreateUserInput) (*domain.User, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	p := sess.Principal

	u := &domain.User{
		Email:            strings.TrimSpace(strings.ToLower(input.Email)),
		Role:             domain.ParseRole(string(input.Role)),
		Merchant:         domain.OwnerRef{ID: strings.TrimSpace(input.MerchantID)},
		TelegramUsername: strings.TrimSpace(input.TelegramUsername),
	}
	if p.Role.IsTenantBound() {
		u.Merchant = domain.OwnerRef{ID: p.Tenant()}
	}
	if u.Role.IsSuper() {
		u.Merchant = domain.OwnerRef{}
	}

	if err := uc.access.Authorize(ctx, p, domain.ResourceUser, u.Instance(), domain.ActionCreate); err != nil {
		return nil, err
	}

	if err := domain.ValidateUser(u, input.Password, true); err != nil {
		return nil, err
	}

	return uc.backend.CreateUser(ctx, sess.Token, u, input.Password)
}

// UpdateUser applies the fields the caller may edit. A role or hub change is
// gated again against the resulting account.
func (uc *ConsoleUseCase) UpdateUser(ctx context.Context, sess *domain.Session, id string, patch UserPatch) (*domain.User, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	p := sess.Principal

	current, err := uc.backend.GetUser(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	inst := current.Instance()
	if err := uc.access.Authorize(ctx, p, domain.ResourceUser, inst, domain.ActionEdit); err != nil {
		return nil, err
	}

	gate := uc.access.Gate()
	next := *current
	body := make(map[string]any)

	if patch.Email != nil && gate.CanEditField(p, domain.ResourceUser, inst, domain.FieldUserEmail) {
		next.Email = strings.TrimSpace(strings.ToLower(*patch.Email))
		body[string(domain.FieldUserEmail)] = next.Email
	}
	if patch.TelegramUsername != nil && gate.CanEditField(p, domain.ResourceUser, inst, domain.FieldUserTelegram) {
		next.TelegramUsername = strings.TrimSpace(*patch.TelegramUsername)
		body[string(domain.FieldUserTelegram)] = next.TelegramUsername
	}
	if patch.Role != nil && gate.CanEditField(p, domain.ResourceUser, inst, domain.FieldUserRole) {
		next.Role = domain.ParseRole(string(*patch.Role))
		body[string(domain.FieldUserRole)] = next.Role
	}
	if patch.MerchantID != nil && gate.CanEditField(p, domain.ResourceUser, inst, domain.FieldUserMerchant) {
		next.Merchant = domain.OwnerRef{ID: strings.TrimSpace(*patch.MerchantID)}
		body[string(domain.FieldUserMerchant)] = next.Merchant.ID
	}
	if next.Role.IsSuper() && next.Merchant.ID != "" {
		next.Merchant = domain.OwnerRef{}
		body[string(domain.FieldUserMerchant)] = nil
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: no editable fields in update", domain.ErrForbidden)
	}

	if next.Role != current.Role || next.Merchant.ID != current.Merchant.ID {
		if err := uc.access.Authorize(ctx, p, domain.ResourceUser, next.Instance(), domain.ActionEdit); err != nil {
			return nil, err
		}
	}

	if err := domain.ValidateUser(&next, "", false); err != nil {
		return nil, err
	}

	return uc.backend.UpdateUser(ctx, sess.Token, id, body)
}

// DeleteUser deletes a console user.
func (uc *ConsoleUseCase) DeleteUser(ctx context.Context, sess *domain.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	u, err := uc.backend.GetUser(ctx, sess.Token, id)
	if err != nil {
		return err
	}
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourceUser, u.Instance(), domain.ActionDelete); err != nil {
		return err
	}
	return uc.backend.DeleteUser(ctx, sess.Token, id)
}

// ChangeUserPassword sets a new password for another console user.
func (uc *ConsoleUseCase) ChangeUserPassword(ctx context.Context, sess *domain.Session, id, password string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	u, err := uc.backend.GetUser(ctx, sess.Token, id)
	if err != nil {
		return err
	}
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourceUser, u.Instance(), domain.ActionChangePassword); err != nil {
		return err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return err
	}
	return uc.backend.ChangeUserPassword(ctx, sess.Token, id, password)
}

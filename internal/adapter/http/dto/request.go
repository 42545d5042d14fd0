package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request's struct tags.
func Validate(req any) error {
	return validate.Struct(req)
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ToUseCaseInput converts to use case input.
func (r *LoginRequest) ToUseCaseInput() usecase.LoginInput {
	return usecase.LoginInput{Email: r.Email, Password: r.Password}
}

// ChangeOwnPasswordRequest changes the caller's password.
type ChangeOwnPasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=128"`
}

// SetPasswordRequest sets another account's password.
type SetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6,max=128"`
}

// MerchantRequest carries hub form values. Omitted fields are left unchanged.
type MerchantRequest struct {
	Name                   *string          `json:"name"                   validate:"omitempty,max=255"`
	APIKey                 *string          `json:"apiKey"`
	TelegramChannelID      *string          `json:"telegramChannelId"`
	Subdomain              *string          `json:"subdomain"              validate:"omitempty,max=63"`
	BannerImage            *string          `json:"bannerImage"`
	SupportLink            *string          `json:"supportLink"`
	AdminCommissionPercent *decimal.Decimal `json:"adminCommissionPercent"`
	WithdrawalsEnabled     *bool            `json:"withdrawalsEnabled"`
	MinimumDeposit         *decimal.Decimal `json:"minimumDeposit"`
	MinimumWithdraw        *decimal.Decimal `json:"minimumWithdraw"`
	MaximumWithdraw        *decimal.Decimal `json:"maximumWithdraw"`
	Platforms              []string         `json:"platforms"              validate:"omitempty,dive,required"`
}

// ToUseCaseInput converts to use case input.
func (r *MerchantRequest) ToUseCaseInput() usecase.MerchantPatch {
	return usecase.MerchantPatch{
		Name:                   r.Name,
		APIKey:                 r.APIKey,
		TelegramChannelID:      r.TelegramChannelID,
		Subdomain:              r.Subdomain,
		BannerImage:            r.BannerImage,
		SupportLink:            r.SupportLink,
		AdminCommissionPercent: r.AdminCommissionPercent,
		WithdrawalsEnabled:     r.WithdrawalsEnabled,
		MinimumDeposit:         r.MinimumDeposit,
		MinimumWithdraw:        r.MinimumWithdraw,
		MaximumWithdraw:        r.MaximumWithdraw,
		Platforms:              r.Platforms,
	}
}

// ToggleRequest flips a boolean hub setting.
type ToggleRequest struct {
	Disabled           *bool `json:"disabled"`
	WithdrawalsEnabled *bool `json:"withdrawalsEnabled"`
}

// FundsRequest moves hub funds.
type FundsRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	AmountSats int64           `json:"amountSats" validate:"gte=0"`
	Network    string          `json:"network"    validate:"omitempty,oneof=lightning onchain"`
	Address    string          `json:"address"`
	All        bool            `json:"all"`
}

// ToDomain converts to a domain funds request.
func (r *FundsRequest) ToDomain() domain.FundsRequest {
	return domain.FundsRequest{
		Amount:     r.Amount,
		AmountSats: r.AmountSats,
		Network:    strings.TrimSpace(r.Network),
		Address:    strings.TrimSpace(r.Address),
		All:        r.All,
	}
}

// CreateUserRequest creates a console account.
type CreateUserRequest struct {
	Email            string      `json:"email"            validate:"required,email"`
	Password         string      `json:"password"         validate:"required,min=6,max=128"`
	Role             domain.Role `json:"role"             validate:"required"`
	MerchantID       string      `json:"merchantId"`
	TelegramUsername string      `json:"telegramUsername"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:            r.Email,
		Password:         r.Password,
		Role:             domain.ParseRole(string(r.Role)),
		MerchantID:       r.MerchantID,
		TelegramUsername: r.TelegramUsername,
	}
}

// UpdateUserRequest edits a console account. Omitted fields are left
// unchanged.
type UpdateUserRequest struct {
	Email            *string      `json:"email"      validate:"omitempty,email"`
	Role             *domain.Role `json:"role"`
	MerchantID       *string      `json:"merchantId"`
	TelegramUsername *string      `json:"telegramUsername"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateUserRequest) ToUseCaseInput() usecase.UserPatch {
	patch := usecase.UserPatch{
		Email:            r.Email,
		MerchantID:       r.MerchantID,
		TelegramUsername: r.TelegramUsername,
	}
	if r.Role != nil {
		role := domain.ParseRole(string(*r.Role))
		patch.Role = &role
	}
	return patch
}

// BlockedIPRequest creates or edits an IP block.
type BlockedIPRequest struct {
	IP            string   `json:"ip"            validate:"required,ip"`
	BlockedForAll *bool    `json:"blockedForAll"`
	MerchantIDs   []string `json:"merchantIds"   validate:"omitempty,dive,required"`
	Reason        *string  `json:"reason"        validate:"omitempty,max=500"`
}

// ToUseCaseInput converts to use case input.
func (r *BlockedIPRequest) ToUseCaseInput() usecase.BlockedIPInput {
	return usecase.BlockedIPInput{
		IP:            r.IP,
		BlockedForAll: r.BlockedForAll,
		MerchantIDs:   r.MerchantIDs,
		Reason:        r.Reason,
	}
}

// QuickBlockRequest blocks the address seen on a transaction.
type QuickBlockRequest struct {
	IP     string `json:"ip"     validate:"required,ip"`
	Reason string `json:"reason" validate:"max=500"`
}

// PlatformRequest creates or renames a platform.
type PlatformRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CheckRequest asks whether the caller may act on a resource.
type CheckRequest struct {
	Resource domain.Resource `json:"resource" validate:"required"`
	Action   domain.Action   `json:"action"`
	Instance *InstanceInput  `json:"instance"`
	Field    domain.Field    `json:"field"`
}

// InstanceInput describes a record by its raw ownership field.
type InstanceInput struct {
	ID            string          `json:"id"`
	Owner         json.RawMessage `json:"owner"`
	TargetRole    domain.Role     `json:"targetRole"`
	BlockedForAll bool            `json:"blockedForAll"`
}

// ToDomain resolves the instance's ownership.
func (i *InstanceInput) ToDomain(resource domain.Resource) *domain.Instance {
	if i == nil {
		return nil
	}
	return &domain.Instance{
		ID:            i.ID,
		Kind:          resource,
		Owner:         domain.ParseOwnerField(i.Owner, i.BlockedForAll),
		TargetRole:    domain.ParseRole(string(i.TargetRole)),
		BlockedForAll: i.BlockedForAll,
	}
}

// ScopeRequest asks whether an ownership field is in the caller's scope.
type ScopeRequest struct {
	Owner         json.RawMessage `json:"owner"`
	BlockedForAll bool            `json:"blockedForAll"`
}

// TransactionQuery is the parsed transaction filter.
type TransactionQuery struct {
	MerchantID string `validate:"omitempty,max=64"`
	Type       string `validate:"omitempty,oneof=deposit withdrawal"`
	Status     string `validate:"omitempty,oneof=completed pending failed"`
	From       string `validate:"omitempty,datetime=2006-01-02"`
	To         string `validate:"omitempty,datetime=2006-01-02"`
	Search     string `validate:"max=200"`
	Limit      int    `validate:"gte=0"`
	Offset     int    `validate:"gte=0"`
}

// ToDomain converts to a domain filter. To is inclusive of the whole day.
func (q *TransactionQuery) ToDomain() domain.TransactionFilter {
	f := domain.TransactionFilter{
		MerchantID: q.MerchantID,
		Type:       q.Type,
		Status:     q.Status,
		Search:     strings.TrimSpace(q.Search),
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
	if t, err := time.Parse(time.DateOnly, q.From); err == nil {
		f.From = &t
	}
	if t, err := time.Parse(time.DateOnly, q.To); err == nil {
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}
	return f
}

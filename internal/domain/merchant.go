package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Merchant is a gaming hub, the platform's tenant.
type Merchant struct {
	ID                     string          `json:"_id"`
	Name                   string          `json:"name"`
	APIKey                 string          `json:"apiKey,omitempty"`
	TelegramChannelID      string          `json:"telegramChannelId,omitempty"`
	Subdomain              string          `json:"subdomain,omitempty"`
	BannerImage            string          `json:"bannerImage,omitempty"`
	SupportLink            string          `json:"supportLink,omitempty"`
	AdminCommissionPercent decimal.Decimal `json:"adminCommissionPercent"`
	WithdrawalsEnabled     bool            `json:"withdrawalsEnabled"`
	MinimumDeposit         decimal.Decimal `json:"minimumDeposit"`
	MinimumWithdraw        decimal.Decimal `json:"minimumWithdraw"`
	MaximumWithdraw        decimal.Decimal `json:"maximumWithdraw"`
	Platforms              OwnerRefs       `json:"platforms,omitempty"`
	Disabled               bool            `json:"disabled"`
	CreatedAt              time.Time       `json:"createdAt,omitempty"`
}

// Instance returns the policy view. A hub is owned by itself.
func (m *Merchant) Instance() *Instance {
	return &Instance{ID: m.ID, Kind: ResourceMerchant, Owner: SingleOwner(m.ID)}
}

// MerchantBalance is a hub's spendable balance as reported by the backend.
type MerchantBalance struct {
	MerchantID  string          `json:"merchantId,omitempty"`
	BalanceUSD  decimal.Decimal `json:"balanceUsd"`
	BalanceSats int64           `json:"balanceSats"`
}

// FundsRequest asks the backend to move hub funds. All withdraws the whole
// balance and ignores the amounts.
type FundsRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	AmountSats int64           `json:"amountSats,omitempty"`
	Network    string          `json:"network,omitempty"`
	Address    string          `json:"address,omitempty"`
	All        bool            `json:"-"`
}

// FundsResult is the backend's reply to a deposit or withdraw request.
type FundsResult struct {
	ID      string          `json:"_id,omitempty"`
	Status  string          `json:"status,omitempty"`
	Address string          `json:"address,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
	Network string          `json:"network,omitempty"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
)

// Transaction statuses.
const (
	TransactionCompleted = "completed"
	TransactionPending   = "pending"
	TransactionFailed    = "failed"
)

// Transaction is a player deposit or withdrawal on a hub.
type Transaction struct {
	ID               string          `json:"_id"`
	TransactionID    string          `json:"transactionId,omitempty"`
	Merchant         OwnerRef        `json:"merchantId"`
	Platform         OwnerRef        `json:"platformId"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	Network          string          `json:"network,omitempty"`
	GameID           string          `json:"gameId,omitempty"`
	OrderID          string          `json:"orderId,omitempty"`
	Address          string          `json:"address,omitempty"`
	IP               string          `json:"ip,omitempty"`
	IsInternal       bool            `json:"isInternal,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Instance returns the policy view of the transaction.
func (t *Transaction) Instance() *Instance {
	return &Instance{ID: t.ID, Kind: ResourceTransaction, Owner: t.Merchant.Owner()}
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	MerchantID string
	Type       string
	Status     string
	From       *time.Time
	To         *time.Time
	Search     string
	Limit      int
	Offset     int
}

package domain

import "github.com/shopspring/decimal"

// HubReport is one row of the per-hub totals report.
type HubReport struct {
	MerchantID                   string          `json:"merchantId"`
	MerchantName                 string          `json:"merchantName"`
	StoreAdmins                  []string        `json:"storeAdmins,omitempty"`
	TotalDeposit                 decimal.Decimal `json:"totalDeposit"`
	TotalWithdraw                decimal.Decimal `json:"totalWithdraw"`
	TotalCommission              decimal.Decimal `json:"totalCommission"`
	TotalPendingWithdrawRequests int             `json:"totalPendingWithdrawRequests"`
	CurrentBalance               decimal.Decimal `json:"currentBalance"`
}

// Net returns deposits minus withdrawals.
func (r *HubReport) Net() decimal.Decimal {
	return r.TotalDeposit.Sub(r.TotalWithdraw)
}

// Instance returns the policy view. Reports span all hubs.
func (r *HubReport) Instance() *Instance {
	return &Instance{ID: r.MerchantID, Kind: ResourceReport, Owner: GlobalOwner()}
}

// DashboardStats is the platform-wide overview shown to super roles.
type DashboardStats struct {
	TotalDeposit                 decimal.Decimal `json:"totalDeposit"`
	TotalDepositCustomers        int             `json:"totalDepositCustomers"`
	TotalWithdraw                decimal.Decimal `json:"totalWithdraw"`
	TotalPendingWithdrawRequests int             `json:"totalPendingWithdrawRequests"`
	PendingWithdrawAmount        decimal.Decimal `json:"pendingWithdrawAmount"`
	GamingPartners               int             `json:"gamingPartners"`
	TotalCommission              decimal.Decimal `json:"totalCommission"`
	GamesCount                   int             `json:"gamesCount"`
}

// ReportFilter narrows the hub report.
type ReportFilter struct {
	MerchantID string
	From       string
	To         string
}

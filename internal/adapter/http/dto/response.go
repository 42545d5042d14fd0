package dto

import (
	"time"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
	"github.com/searn/hubadmin/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SessionResponse is returned after login and by /me.
type SessionResponse struct {
	Token        string               `json:"token,omitempty"`
	ExpiresAt    time.Time            `json:"expiresAt"`
	Principal    domain.Principal     `json:"principal"`
	Capabilities *policy.Capabilities `json:"capabilities"`
}

// SessionFromLogin converts a login result to a response.
func SessionFromLogin(out *usecase.LoginOutput) *SessionResponse {
	return &SessionResponse{
		Token:        out.AccessToken,
		ExpiresAt:    out.Session.ExpiresAt,
		Principal:    out.Session.Principal,
		Capabilities: out.Capabilities,
	}
}

// ListResponse wraps a collection.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse builds a list response; a nil slice renders as [].
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// CheckResponse answers a permission check.
type CheckResponse struct {
	Allowed bool            `json:"allowed"`
	Actions []domain.Action `json:"actions"`
}

// ScopeResponse answers a scope check.
type ScopeResponse struct {
	InScope bool         `json:"inScope"`
	Owner   domain.Owner `json:"owner"`
}

// QuickBlockResponse is the result of a quick block.
type QuickBlockResponse struct {
	Block   *domain.BlockedIP `json:"block"`
	Created bool              `json:"created"`
}

// HubReportRow adds the derived net to a report row.
type HubReportRow struct {
	*domain.HubReport
	Net string `json:"net"`
}

// HubReportFromDomain converts report rows.
func HubReportFromDomain(rows []*domain.HubReport) []HubReportRow {
	out := make([]HubReportRow, len(rows))
	for i, r := range rows {
		out[i] = HubReportRow{HubReport: r, Net: r.Net().StringFixed(domain.AmountPlaces)}
	}
	return out
}

package domain

import "strings"

// Principal is the acting console user. It is created at login and lives only
// for the session.
type Principal struct {
	UserID     string `json:"userId,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       Role   `json:"role"`
	MerchantID string `json:"merchantId,omitempty"` // empty for super roles
}

// HasTenant reports whether the principal carries a hub id.
func (p Principal) HasTenant() bool {
	return strings.TrimSpace(p.MerchantID) != ""
}

// Tenant returns the normalized hub id.
func (p Principal) Tenant() string {
	return strings.TrimSpace(p.MerchantID)
}

package domain

import "time"

// ActivityLog records an admin action performed through the console.
type ActivityLog struct {
	ID        string         `json:"_id"`
	Action    string         `json:"action"`
	UserEmail string         `json:"userEmail,omitempty"`
	UserRole  Role           `json:"userRole,omitempty"`
	Merchant  OwnerRef       `json:"merchantId"`
	IP        string         `json:"ip,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Instance returns the policy view. Entries without a hub are unknown-owned.
func (a *ActivityLog) Instance() *Instance {
	return &Instance{ID: a.ID, Kind: ResourceActivityLog, Owner: a.Merchant.Owner()}
}

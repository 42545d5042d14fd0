package domain

import (
	"time"
)

// Decision outcomes
const (
	OutcomeAllow = "allow"
	OutcomeDeny  = "deny"
)

// DecisionEntry is an audit record of a gate decision.
type DecisionEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	Email      string    `json:"email,omitempty"`
	Role       Role      `json:"role"`
	MerchantID string    `json:"merchantId,omitempty"`
	Resource   Resource  `json:"resource"`
	Action     Action    `json:"action"`
	InstanceID string    `json:"instanceId,omitempty"`
	Outcome    string    `json:"outcome"`
	RequestID  string    `json:"requestId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewDecisionEntry builds an entry for the principal's decision. The id and
// timestamp are assigned by the audit log.
func NewDecisionEntry(p Principal, resource Resource, inst *Instance, action Action, allowed bool) *DecisionEntry {
	e := &DecisionEntry{
		UserID:     p.UserID,
		Email:      p.Email,
		Role:       p.Role,
		MerchantID: p.Tenant(),
		Resource:   resource,
		Action:     action,
		Outcome:    OutcomeDeny,
	}
	if allowed {
		e.Outcome = OutcomeAllow
	}
	if inst != nil {
		e.InstanceID = inst.ID
	}
	return e
}

// AuditFilter narrows an audit listing.
type AuditFilter struct {
	UserID  string
	Outcome string
	Limit   int
}

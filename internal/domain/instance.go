package domain

// Instance is the policy view of a single resource record.
type Instance struct {
	ID            string   `json:"id,omitempty"`
	Kind          Resource `json:"kind"`
	Owner         Owner    `json:"owner"`
	TargetRole    Role     `json:"targetRole,omitempty"` // users only
	BlockedForAll bool     `json:"blockedForAll,omitempty"`
}

// IsProtected reports whether the instance is a super_admin account.
func (i *Instance) IsProtected() bool {
	return i != nil && i.TargetRole == RoleSuperAdmin
}

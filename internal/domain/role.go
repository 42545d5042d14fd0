package domain

import "strings"

// Role represents a console user's access level.
type Role string

const (
	// RoleSuperAdmin owns the platform and is never managed by anyone else.
	RoleSuperAdmin Role = "super_admin"

	// RoleSuperManager is platform staff with a reduced super-level toolset.
	RoleSuperManager Role = "super_manager"

	// RoleStoreAdmin owns a single gaming hub.
	RoleStoreAdmin Role = "store_admin"

	// RoleStoreManager manages a hub on behalf of its owner.
	RoleStoreManager Role = "store_manager"

	// RoleStoreCashier works withdraw requests and views transactions of one hub.
	RoleStoreCashier Role = "store_cashier"
)

// Rank orders roles from least to most privileged. Unknown roles rank 0.
var roleRank = map[Role]int{
	RoleStoreCashier: 1,
	RoleStoreManager: 2,
	RoleStoreAdmin:   3,
	RoleSuperManager: 4,
	RoleSuperAdmin:   5,
}

// Roles lists every known role from most to least privileged.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleSuperManager, RoleStoreAdmin, RoleStoreManager, RoleStoreCashier}
}

// ParseRole normalizes case and surrounding whitespace. The result may still be
// invalid; callers check IsValid.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank returns the role's position in the hierarchy.
func (r Role) Rank() int {
	return roleRank[r]
}

// IsSuper reports whether the role is platform-wide.
func (r Role) IsSuper() bool {
	return r == RoleSuperAdmin || r == RoleSuperManager
}

// IsTenantBound reports whether the role is bound to exactly one hub.
func (r Role) IsTenantBound() bool {
	return r == RoleStoreAdmin || r == RoleStoreManager || r == RoleStoreCashier
}

// Outranks reports whether r sits strictly above other.
func (r Role) Outranks(other Role) bool {
	return r.Rank() > other.Rank()
}

// Label is the human readable name used in listings.
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleSuperManager:
		return "Super Manager"
	case RoleStoreAdmin:
		return "Store Admin"
	case RoleStoreManager:
		return "Store Manager"
	case RoleStoreCashier:
		return "Store Cashier"
	default:
		return "Unknown"
	}
}

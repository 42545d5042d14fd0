package policy

import (
	"encoding/json"

	"github.com/searn/hubadmin/internal/domain"
)

// IsInScope reports whether a record with the given owner is visible to the
// principal. Super roles see everything. Store roles see a record only when
// their hub is one of its owners; global, unknown and empty owners are out of
// scope, as is everything when the principal carries no hub.
func IsInScope(p domain.Principal, owner domain.Owner) bool {
	if p.Role.IsSuper() {
		return true
	}
	if !p.Role.IsTenantBound() || !p.HasTenant() {
		return false
	}
	return owner.Includes(p.Tenant())
}

// IsInScopeRaw resolves a raw ownership field before checking scope.
func IsInScopeRaw(p domain.Principal, raw json.RawMessage, blockedForAll bool) bool {
	return IsInScope(p, domain.ParseOwnerField(raw, blockedForAll))
}

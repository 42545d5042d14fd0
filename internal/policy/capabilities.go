// Package policy decides what a console principal may see and do. Every
// function is pure and total: unknown roles, missing tenants and malformed
// owner fields resolve to a deny, never to an error.
package policy

import (
	"encoding/json"

	"github.com/searn/hubadmin/internal/domain"
)

// Grant is the reach of a role's permission for one resource action.
type Grant uint8

const (
	// GrantNone denies the action.
	GrantNone Grant = iota
	// GrantOwn permits the action on records owned by the principal's hub.
	GrantOwn
	// GrantAll permits the action on every record.
	GrantAll
)

func (g Grant) String() string {
	switch g {
	case GrantOwn:
		return "own"
	case GrantAll:
		return "all"
	default:
		return "none"
	}
}

// MarshalText renders the grant name.
func (g Grant) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Feature is a console affordance that is not a resource action.
type Feature string

const (
	// FeatureMerchantBalance shows the hub balance on the dashboard.
	FeatureMerchantBalance Feature = "merchant_balance"
	// FeatureQuickBlockIP offers the block prompt on a transaction row.
	FeatureQuickBlockIP Feature = "quick_block_ip"
	// FeaturePlatformOverview shows platform-wide dashboard totals.
	FeaturePlatformOverview Feature = "platform_overview"
	// FeatureMerchantFunds allows deposit and withdraw from the hub balance.
	FeatureMerchantFunds Feature = "merchant_funds"
	// FeatureDecisionAudit allows reading the policy decision log.
	FeatureDecisionAudit Feature = "decision_audit"
)

// Capabilities is the immutable descriptor of what a role may do. Instances
// are built once per role and shared; accessors return copies.
type Capabilities struct {
	role       domain.Role
	nav        []domain.NavSection
	grants     map[domain.Resource]map[domain.Action]Grant
	fields     map[domain.Resource][]domain.Field
	assignable []domain.Role
	deletable  []domain.Role
	passwords  []domain.Role
	features   []Feature
}

// Role returns the role the descriptor was built for. For an unknown role this
// is the role as given.
func (c *Capabilities) Role() domain.Role {
	return c.role
}

// NavSections returns the visible sections in sidebar order.
func (c *Capabilities) NavSections() []domain.NavSection {
	out := make([]domain.NavSection, len(c.nav))
	copy(out, c.nav)
	return out
}

// HasNav reports whether the section is visible.
func (c *Capabilities) HasNav(s domain.NavSection) bool {
	for _, n := range c.nav {
		if n == s {
			return true
		}
	}
	return false
}

// Grant returns the reach of the role's permission for the action.
func (c *Capabilities) Grant(r domain.Resource, a domain.Action) Grant {
	return c.grants[r][a]
}

// EditableFields returns the form fields the role may set on the resource.
func (c *Capabilities) EditableFields(r domain.Resource) []domain.Field {
	src := c.fields[r]
	out := make([]domain.Field, len(src))
	copy(out, src)
	return out
}

// CanEditField reports whether the role may set the field on the resource.
func (c *Capabilities) CanEditField(r domain.Resource, f domain.Field) bool {
	for _, field := range c.fields[r] {
		if field == f {
			return true
		}
	}
	return false
}

// AssignableRoles returns the roles the principal may create or edit users as.
func (c *Capabilities) AssignableRoles() []domain.Role {
	return copyRoles(c.assignable)
}

// CanAssign reports whether the role may create or edit a user holding target.
func (c *Capabilities) CanAssign(target domain.Role) bool {
	return containsRole(c.assignable, target)
}

// CanDeleteRole reports whether the role may delete a user holding target.
func (c *Capabilities) CanDeleteRole(target domain.Role) bool {
	return containsRole(c.deletable, target)
}

// CanResetPassword reports whether the role may change a password for a user
// holding target.
func (c *Capabilities) CanResetPassword(target domain.Role) bool {
	return containsRole(c.passwords, target)
}

// HasFeature reports whether the feature is enabled for the role.
func (c *Capabilities) HasFeature(f Feature) bool {
	for _, feat := range c.features {
		if feat == f {
			return true
		}
	}
	return false
}

type capabilitiesJSON struct {
	Role            domain.Role                                 `json:"role"`
	NavSections     []domain.NavSection                         `json:"navSections"`
	Grants          map[domain.Resource]map[domain.Action]Grant `json:"grants"`
	EditableFields  map[domain.Resource][]domain.Field          `json:"editableFields"`
	AssignableRoles []domain.Role                               `json:"assignableRoles"`
	Features        []Feature                                   `json:"features"`
}

// MarshalJSON renders the descriptor. Grants of GrantNone are omitted.
func (c *Capabilities) MarshalJSON() ([]byte, error) {
	grants := make(map[domain.Resource]map[domain.Action]Grant, len(c.grants))
	for r, actions := range c.grants {
		for a, g := range actions {
			if g == GrantNone {
				continue
			}
			if grants[r] == nil {
				grants[r] = make(map[domain.Action]Grant)
			}
			grants[r][a] = g
		}
	}
	fields := make(map[domain.Resource][]domain.Field, len(c.fields))
	for r, f := range c.fields {
		if len(f) > 0 {
			fields[r] = f
		}
	}
	return json.Marshal(capabilitiesJSON{
		Role:            c.role,
		NavSections:     c.nav,
		Grants:          grants,
		EditableFields:  fields,
		AssignableRoles: nonNilRoles(c.assignable),
		Features:        nonNilFeatures(c.features),
	})
}

// GetCapabilities returns the shared descriptor for the role. Unknown roles get
// the minimal descriptor, which shows the dashboard and grants nothing.
func GetCapabilities(role domain.Role) *Capabilities {
	if c, ok := table[role]; ok {
		return c
	}
	if role == "" {
		return minimal
	}
	// Same minimal content, reported under the role that was asked for.
	c := *minimal
	c.role = role
	return &c
}

// Features lists every known feature.
func Features() []Feature {
	return []Feature{FeatureMerchantBalance, FeatureQuickBlockIP, FeaturePlatformOverview, FeatureMerchantFunds, FeatureDecisionAudit}
}

func copyRoles(in []domain.Role) []domain.Role {
	out := make([]domain.Role, len(in))
	copy(out, in)
	return out
}

func containsRole(list []domain.Role, r domain.Role) bool {
	for _, x := range list {
		if x == r {
			return true
		}
	}
	return false
}

func nonNilRoles(in []domain.Role) []domain.Role {
	if in == nil {
		return []domain.Role{}
	}
	return in
}

func nonNilFeatures(in []Feature) []Feature {
	if in == nil {
		return []Feature{}
	}
	return in
}

package policy

import (
	"github.com/searn/hubadmin/internal/domain"
)

// Gate answers every access question the console asks. Handlers and use cases
// receive it by injection so that no caller re-derives role rules.
type Gate interface {
	Capabilities(role domain.Role) *Capabilities
	InScope(p domain.Principal, owner domain.Owner) bool
	CanPerform(p domain.Principal, resource domain.Resource, inst *domain.Instance, action domain.Action) bool
	CanEditField(p domain.Principal, resource domain.Resource, inst *domain.Instance, field domain.Field) bool
	AllowedActions(p domain.Principal, resource domain.Resource, inst *domain.Instance) []domain.Action
}

// DefaultGate implements Gate with the package functions.
type DefaultGate struct{}

var _ Gate = DefaultGate{}

func (DefaultGate) Capabilities(role domain.Role) *Capabilities { return GetCapabilities(role) }

func (DefaultGate) InScope(p domain.Principal, owner domain.Owner) bool { return IsInScope(p, owner) }

func (DefaultGate) CanPerform(p domain.Principal, resource domain.Resource, inst *domain.Instance, action domain.Action) bool {
	return CanPerform(p, resource, inst, action)
}

func (DefaultGate) CanEditField(p domain.Principal, resource domain.Resource, inst *domain.Instance, field domain.Field) bool {
	return CanEditField(p, resource, inst, field)
}

func (DefaultGate) AllowedActions(p domain.Principal, resource domain.Resource, inst *domain.Instance) []domain.Action {
	return AllowedActions(p, resource, inst)
}

// CanPerform decides whether the principal may take the action on the
// instance. A nil instance asks about the collection: whether the role may
// list or create records of the resource at all. Lists are then narrowed with
// FilterVisible.
func CanPerform(p domain.Principal, resource domain.Resource, inst *domain.Instance, action domain.Action) bool {
	if !resource.IsValid() || !action.IsValid() {
		return false
	}

	caps := GetCapabilities(p.Role)
	grant := caps.Grant(resource, action)
	if grant == GrantNone {
		return false
	}
	if grant == GrantOwn && !p.HasTenant() {
		return false
	}

	if inst == nil {
		return true
	}

	// super_admin accounts are untouchable by anyone else.
	if inst.IsProtected() && p.Role != domain.RoleSuperAdmin {
		return false
	}

	// Platform-wide blocks belong to super roles.
	if inst.BlockedForAll && p.Role.IsTenantBound() && action.IsMutation() {
		return false
	}

	if !IsInScope(p, inst.Owner) {
		return false
	}

	if resource == domain.ResourceUser {
		return permitsTarget(caps, inst.TargetRole, action)
	}

	return true
}

// permitsTarget applies the role hierarchy to user records.
func permitsTarget(caps *Capabilities, target domain.Role, action domain.Action) bool {
	switch action {
	case domain.ActionView:
		return true
	case domain.ActionCreate, domain.ActionEdit:
		return caps.CanAssign(target)
	case domain.ActionDelete:
		return caps.CanDeleteRole(target)
	case domain.ActionChangePassword:
		return caps.CanResetPassword(target)
	default:
		return false
	}
}

// CanEditField reports whether the principal may set the field. A nil instance
// is a create form; otherwise the instance is being edited.
func CanEditField(p domain.Principal, resource domain.Resource, inst *domain.Instance, field domain.Field) bool {
	action := domain.ActionEdit
	if inst == nil {
		action = domain.ActionCreate
	}
	if !CanPerform(p, resource, inst, action) {
		return false
	}
	return GetCapabilities(p.Role).CanEditField(resource, field)
}

// AllowedActions returns the permitted actions in display order.
func AllowedActions(p domain.Principal, resource domain.Resource, inst *domain.Instance) []domain.Action {
	allowed := make([]domain.Action, 0, len(domain.Actions()))
	for _, a := range domain.Actions() {
		if CanPerform(p, resource, inst, a) {
			allowed = append(allowed, a)
		}
	}
	return allowed
}

// Scoped is anything that exposes a policy view of itself.
type Scoped interface {
	Instance() *domain.Instance
}

// FilterVisible returns the items the principal may view, preserving order.
func FilterVisible[T Scoped](p domain.Principal, resource domain.Resource, items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if CanPerform(p, resource, item.Instance(), domain.ActionView) {
			out = append(out, item)
		}
	}
	return out
}

package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
)

// AccessUseCase puts the policy gate behind metrics and an audit trail.
type AccessUseCase struct {
	gate     policy.Gate
	recorder DecisionRecorder
	audit    DecisionAuditLog
}

// NewAccessUseCase creates a new access use case. recorder and audit may be
// nil.
func NewAccessUseCase(gate policy.Gate, recorder DecisionRecorder, audit DecisionAuditLog) *AccessUseCase {
	if gate == nil {
		gate = policy.DefaultGate{}
	}
	return &AccessUseCase{
		gate:     gate,
		recorder: recorder,
		audit:    audit,
	}
}

// Gate returns the underlying gate for read-only checks such as row
// annotation.
func (uc *AccessUseCase) Gate() policy.Gate {
	return uc.gate
}

// Capabilities returns the descriptor for the role.
func (uc *AccessUseCase) Capabilities(role domain.Role) *policy.Capabilities {
	return uc.gate.Capabilities(role)
}

// InScope reports whether a record with the given owner is visible.
func (uc *AccessUseCase) InScope(p domain.Principal, owner domain.Owner) bool {
	return uc.gate.InScope(p, owner)
}

// Decide evaluates the gate and records the outcome. Denied mutations are
// appended to the audit log; a failing audit log never changes the decision.
func (uc *AccessUseCase) Decide(ctx context.Context, p domain.Principal, resource domain.Resource, inst *domain.Instance, action domain.Action) bool {
	allowed := uc.gate.CanPerform(p, resource, inst, action)

	if uc.recorder != nil {
		uc.recorder.RecordDecision(resource, action, allowed)
	}

	if !allowed && action.IsMutation() && uc.audit != nil {
		entry := domain.NewDecisionEntry(p, resource, inst, action, allowed)
		entry.RequestID = RequestIDFromContext(ctx)
		if err := uc.audit.Append(ctx, entry); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).
				Str("resource", string(resource)).
				Str("action", string(action)).
				Msg("failed to append decision audit entry")
		}
	}

	return allowed
}

// Authorize is Decide returning domain.ErrForbidden on deny.
func (uc *AccessUseCase) Authorize(ctx context.Context, p domain.Principal, resource domain.Resource, inst *domain.Instance, action domain.Action) error {
	if !uc.Decide(ctx, p, resource, inst, action) {
		return fmt.Errorf("%w: %s %s", domain.ErrForbidden, action, resource)
	}
	return nil
}

// RecentDecisions lists audited decisions. Only super_admin may read them.
func (uc *AccessUseCase) RecentDecisions(ctx context.Context, p domain.Principal, filter domain.AuditFilter) ([]*domain.DecisionEntry, error) {
	if !uc.gate.Capabilities(p.Role).HasFeature(policy.FeatureDecisionAudit) {
		return nil, fmt.Errorf("%w: audit log", domain.ErrForbidden)
	}
	if uc.audit == nil {
		return []*domain.DecisionEntry{}, nil
	}
	limit, _, _ := domain.ValidatePagination(filter.Limit, 0)
	filter.Limit = limit
	return uc.audit.Recent(ctx, filter)
}

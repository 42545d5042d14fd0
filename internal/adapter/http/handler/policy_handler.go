package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
)

// AccessService defines the behavior needed by PolicyHandler.
type AccessService interface {
	Capabilities(role domain.Role) *policy.Capabilities
	InScope(p domain.Principal, owner domain.Owner) bool
	Gate() policy.Gate
	RecentDecisions(ctx context.Context, p domain.Principal, filter domain.AuditFilter) ([]*domain.DecisionEntry, error)
}

// PolicyHandler exposes the capability table and the action gate.
type PolicyHandler struct {
	accessUC AccessService
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(accessUC AccessService) *PolicyHandler {
	return &PolicyHandler{accessUC: accessUC}
}

// Roles lists the capability descriptor of every role.
func (h *PolicyHandler) Roles(w http.ResponseWriter, r *http.Request) {
	out := make(map[domain.Role]*policy.Capabilities)
	for _, role := range domain.Roles() {
		out[role] = h.accessUC.Capabilities(role)
	}
	writeJSON(w, http.StatusOK, out)
}

// Capabilities returns one role's descriptor. Unknown roles get the minimal
// descriptor.
func (h *PolicyHandler) Capabilities(w http.ResponseWriter, r *http.Request) {
	role := domain.ParseRole(chi.URLParam(r, "role"))
	writeJSON(w, http.StatusOK, h.accessUC.Capabilities(role))
}

// Check decides whether the caller may act on a resource or edit a field.
func (h *PolicyHandler) Check(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.CheckRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Resource.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown resource", string(req.Resource))
		return
	}
	if req.Action != "" && !req.Action.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown action", string(req.Action))
		return
	}

	p := sess.Principal
	inst := req.Instance.ToDomain(req.Resource)
	gate := h.accessUC.Gate()

	var allowed bool
	switch {
	case req.Field != "":
		allowed = gate.CanEditField(p, req.Resource, inst, req.Field)
	case req.Action != "":
		allowed = gate.CanPerform(p, req.Resource, inst, req.Action)
	default:
		allowed = gate.CanPerform(p, req.Resource, inst, domain.ActionView)
	}

	actions := gate.AllowedActions(p, req.Resource, inst)
	if actions == nil {
		actions = []domain.Action{}
	}

	writeJSON(w, http.StatusOK, dto.CheckResponse{
		Allowed: allowed,
		Actions: actions,
	})
}

// Scope reports whether an ownership field falls in the caller's scope.
func (h *PolicyHandler) Scope(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.ScopeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	owner := domain.ParseOwnerField(req.Owner, req.BlockedForAll)
	writeJSON(w, http.StatusOK, dto.ScopeResponse{
		InScope: h.accessUC.InScope(sess.Principal, owner),
		Owner:   owner,
	})
}

// Decisions lists recently denied mutations.
func (h *PolicyHandler) Decisions(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := domain.AuditFilter{
		UserID:  q.Get("userId"),
		Outcome: q.Get("outcome"),
		Limit:   parseIntQuery(r, "limit", 50),
	}

	entries, err := h.accessUC.RecentDecisions(r.Context(), sess.Principal, filter)
	if err != nil {
		handleError(w, r, "failed to list decisions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(entries))
}

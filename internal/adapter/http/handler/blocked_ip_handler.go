package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

// BlockedIPService defines the behavior needed by BlockedIPHandler.
type BlockedIPService interface {
	ListBlockedIPs(ctx context.Context, sess *domain.Session, ip string) ([]usecase.Row[*domain.BlockedIP], error)
	CreateBlockedIP(ctx context.Context, sess *domain.Session, input usecase.BlockedIPInput) (*domain.BlockedIP, error)
	UpdateBlockedIP(ctx context.Context, sess *domain.Session, id string, input usecase.BlockedIPInput) (*domain.BlockedIP, error)
	DeleteBlockedIP(ctx context.Context, sess *domain.Session, id string) error
	QuickBlockIP(ctx context.Context, sess *domain.Session, ip, reason string) (*domain.BlockedIP, bool, error)
}

// BlockedIPHandler handles IP block requests.
type BlockedIPHandler struct {
	blockUC BlockedIPService
}

// NewBlockedIPHandler creates a new BlockedIPHandler.
func NewBlockedIPHandler(blockUC BlockedIPService) *BlockedIPHandler {
	return &BlockedIPHandler{blockUC: blockUC}
}

// List lists blocks, optionally for the address in ?ip=.
func (h *BlockedIPHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	rows, err := h.blockUC.ListBlockedIPs(r.Context(), sess, r.URL.Query().Get("ip"))
	if err != nil {
		handleError(w, r, "failed to list blocked ips", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(rows))
}

// Create blocks an address.
func (h *BlockedIPHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.BlockedIPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b, err := h.blockUC.CreateBlockedIP(r.Context(), sess, req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to block ip", err)
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

// Update edits a block.
func (h *BlockedIPHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.BlockedIPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b, err := h.blockUC.UpdateBlockedIP(r.Context(), sess, chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to update blocked ip", err)
		return
	}

	writeJSON(w, http.StatusOK, b)
}

// Delete lifts a block.
func (h *BlockedIPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.blockUC.DeleteBlockedIP(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		handleError(w, r, "failed to delete blocked ip", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// QuickBlock blocks an address straight from a transaction row.
func (h *BlockedIPHandler) QuickBlock(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.QuickBlockRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b, created, err := h.blockUC.QuickBlockIP(r.Context(), sess, req.IP, req.Reason)
	if err != nil {
		handleError(w, r, "failed to block ip", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, dto.QuickBlockResponse{Block: b, Created: created})
}

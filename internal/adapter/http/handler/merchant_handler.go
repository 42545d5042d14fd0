package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

// MerchantService defines the behavior needed by MerchantHandler.
type MerchantService interface {
	ListMerchants(ctx context.Context, sess *domain.Session) ([]usecase.Row[*domain.Merchant], error)
	GetMerchant(ctx context.Context, sess *domain.Session, id string) (*usecase.Row[*domain.Merchant], error)
	CreateMerchant(ctx context.Context, sess *domain.Session, patch usecase.MerchantPatch) (*domain.Merchant, error)
	UpdateMerchant(ctx context.Context, sess *domain.Session, id string, patch usecase.MerchantPatch) (*domain.Merchant, error)
	DeleteMerchant(ctx context.Context, sess *domain.Session, id string) error
	SetMerchantDisabled(ctx context.Context, sess *domain.Session, id string, disabled bool) error
	SetMerchantWithdrawals(ctx context.Context, sess *domain.Session, id string, enabled bool) error
	MerchantBalance(ctx context.Context, sess *domain.Session) (*domain.MerchantBalance, error)
	MerchantDeposit(ctx context.Context, sess *domain.Session, req domain.FundsRequest) (*domain.FundsResult, error)
	MerchantWithdraw(ctx context.Context, sess *domain.Session, req domain.FundsRequest) (*domain.FundsResult, error)
}

// MerchantHandler handles hub management requests.
type MerchantHandler struct {
	merchantUC MerchantService
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(merchantUC MerchantService) *MerchantHandler {
	return &MerchantHandler{merchantUC: merchantUC}
}

// List lists the hubs visible to the caller.
func (h *MerchantHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	rows, err := h.merchantUC.ListMerchants(r.Context(), sess)
	if err != nil {
		handleError(w, r, "failed to list merchants", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(rows))
}

// Get returns one hub.
func (h *MerchantHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	row, err := h.merchantUC.GetMerchant(r.Context(), sess, chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, "failed to get merchant", err)
		return
	}

	writeJSON(w, http.StatusOK, row)
}

// Create creates a hub.
func (h *MerchantHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.MerchantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m, err := h.merchantUC.CreateMerchant(r.Context(), sess, req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to create merchant", err)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

// Update edits a hub.
func (h *MerchantHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.MerchantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m, err := h.merchantUC.UpdateMerchant(r.Context(), sess, chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		handleError(w, r, "failed to update merchant", err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// Delete removes a hub.
func (h *MerchantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.merchantUC.DeleteMerchant(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		handleError(w, r, "failed to delete merchant", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDisabled enables or disables a hub.
func (h *MerchantHandler) SetDisabled(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.ToggleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Disabled == nil {
		writeError(w, http.StatusBadRequest, "validation failed", "disabled is required")
		return
	}

	if err := h.merchantUC.SetMerchantDisabled(r.Context(), sess, chi.URLParam(r, "id"), *req.Disabled); err != nil {
		handleError(w, r, "failed to update merchant", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"disabled": *req.Disabled})
}

// SetWithdrawals turns player withdrawals on or off for a hub.
func (h *MerchantHandler) SetWithdrawals(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.ToggleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.WithdrawalsEnabled == nil {
		writeError(w, http.StatusBadRequest, "validation failed", "withdrawalsEnabled is required")
		return
	}

	if err := h.merchantUC.SetMerchantWithdrawals(r.Context(), sess, chi.URLParam(r, "id"), *req.WithdrawalsEnabled); err != nil {
		handleError(w, r, "failed to update merchant", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"withdrawalsEnabled": *req.WithdrawalsEnabled})
}

// Balance returns the caller's hub balance.
func (h *MerchantHandler) Balance(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	bal, err := h.merchantUC.MerchantBalance(r.Context(), sess)
	if err != nil {
		handleError(w, r, "failed to get balance", err)
		return
	}

	writeJSON(w, http.StatusOK, bal)
}

// Deposit requests a deposit into the caller's hub.
func (h *MerchantHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.FundsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.merchantUC.MerchantDeposit(r.Context(), sess, req.ToDomain())
	if err != nil {
		handleError(w, r, "deposit failed", err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Withdraw requests a withdrawal from the caller's hub.
func (h *MerchantHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.FundsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.merchantUC.MerchantWithdraw(r.Context(), sess, req.ToDomain())
	if err != nil {
		handleError(w, r, "withdraw failed", err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

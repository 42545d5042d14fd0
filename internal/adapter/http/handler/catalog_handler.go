package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

// CatalogService defines the behavior needed by CatalogHandler.
type CatalogService interface {
	ListTransactions(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter) ([]usecase.Row[*domain.Transaction], error)
	ExportTransactionsCSV(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter, w io.Writer) (int, error)
	ListPlatforms(ctx context.Context, sess *domain.Session) ([]usecase.Row[*domain.Platform], error)
	PlatformOptions(ctx context.Context, sess *domain.Session) ([]*domain.Platform, error)
	CreatePlatform(ctx context.Context, sess *domain.Session, name string) (*domain.Platform, error)
	RenamePlatform(ctx context.Context, sess *domain.Session, id, name string) (*domain.Platform, error)
	DeletePlatform(ctx context.Context, sess *domain.Session, id string) error
	ListActivityLogs(ctx context.Context, sess *domain.Session, limit, offset int) ([]usecase.Row[*domain.ActivityLog], error)
	HubReport(ctx context.Context, sess *domain.Session, filter domain.ReportFilter) ([]*domain.HubReport, error)
	DashboardStats(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error)
}

// CatalogHandler serves transactions, platforms, activity logs and reports.
type CatalogHandler struct {
	catalogUC CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogUC CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

func transactionQuery(w http.ResponseWriter, r *http.Request) (domain.TransactionFilter, bool) {
	q := r.URL.Query()
	tq := dto.TransactionQuery{
		MerchantID: q.Get("merchantId"),
		Type:       q.Get("type"),
		Status:     q.Get("status"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		Search:     q.Get("search"),
		Limit:      parseIntQuery(r, "limit", 50),
		Offset:     parseIntQuery(r, "offset", 0),
	}
	if err := dto.Validate(&tq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid query", err.Error())
		return domain.TransactionFilter{}, false
	}
	return tq.ToDomain(), true
}

// Transactions lists transactions.
func (h *CatalogHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	filter, ok := transactionQuery(w, r)
	if !ok {
		return
	}

	rows, err := h.catalogUC.ListTransactions(r.Context(), sess, filter)
	if err != nil {
		handleError(w, r, "failed to list transactions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(rows))
}

// csvResponse sets the download headers on the first write so that an
// error before any row can still be reported as JSON.
type csvResponse struct {
	w       http.ResponseWriter
	started bool
}

func (c *csvResponse) Write(p []byte) (int, error) {
	if !c.started {
		c.started = true
		c.w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		c.w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
		c.w.WriteHeader(http.StatusOK)
	}
	return c.w.Write(p)
}

// ExportTransactions streams the filtered transactions as CSV.
func (h *CatalogHandler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	filter, ok := transactionQuery(w, r)
	if !ok {
		return
	}

	out := &csvResponse{w: w}
	n, err := h.catalogUC.ExportTransactionsCSV(r.Context(), sess, filter, out)
	if err != nil {
		if !out.started {
			handleError(w, r, "failed to export transactions", err)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int("rows", n).Msg("transaction export aborted")
		return
	}

	zerolog.Ctx(r.Context()).Debug().Int("rows", n).Msg("transactions exported")
}

// Platforms lists game platforms.
func (h *CatalogHandler) Platforms(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	rows, err := h.catalogUC.ListPlatforms(r.Context(), sess)
	if err != nil {
		handleError(w, r, "failed to list platforms", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(rows))
}

// PlatformOptions lists platforms for the hub form picker.
func (h *CatalogHandler) PlatformOptions(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	items, err := h.catalogUC.PlatformOptions(r.Context(), sess)
	if err != nil {
		handleError(w, r, "failed to list platforms", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(items))
}

// CreatePlatform adds a platform.
func (h *CatalogHandler) CreatePlatform(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.PlatformRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.catalogUC.CreatePlatform(r.Context(), sess, req.Name)
	if err != nil {
		handleError(w, r, "failed to create platform", err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// RenamePlatform renames a platform.
func (h *CatalogHandler) RenamePlatform(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req dto.PlatformRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.catalogUC.RenamePlatform(r.Context(), sess, chi.URLParam(r, "id"), req.Name)
	if err != nil {
		handleError(w, r, "failed to rename platform", err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// DeletePlatform removes a platform.
func (h *CatalogHandler) DeletePlatform(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.catalogUC.DeletePlatform(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		handleError(w, r, "failed to delete platform", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ActivityLogs lists console activity.
func (h *CatalogHandler) ActivityLogs(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	rows, err := h.catalogUC.ListActivityLogs(r.Context(), sess, parseIntQuery(r, "limit", 50), parseIntQuery(r, "offset", 0))
	if err != nil {
		handleError(w, r, "failed to list activity logs", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(rows))
}

// HubReport returns per-hub totals.
func (h *CatalogHandler) HubReport(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	rows, err := h.catalogUC.HubReport(r.Context(), sess, domain.ReportFilter{
		MerchantID: q.Get("merchantId"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	})
	if err != nil {
		handleError(w, r, "failed to build report", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.HubReportFromDomain(rows)))
}

// DashboardStats returns the platform overview totals.
func (h *CatalogHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	stats, err := h.catalogUC.DashboardStats(r.Context(), sess)
	if err != nil {
		handleError(w, r, "failed to load dashboard stats", err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

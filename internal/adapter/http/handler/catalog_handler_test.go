package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/searn/hubadmin/internal/adapter/http/dto"
	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

type catalogServiceStub struct {
	transactionsFn func(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter) ([]usecase.Row[*domain.Transaction], error)
	exportFn       func(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter, w io.Writer) (int, error)
	platformsFn    func(ctx context.Context, sess *domain.Session) ([]usecase.Row[*domain.Platform], error)
	optionsFn      func(ctx context.Context, sess *domain.Session) ([]*domain.Platform, error)
	createFn       func(ctx context.Context, sess *domain.Session, name string) (*domain.Platform, error)
	renameFn       func(ctx context.Context, sess *domain.Session, id, name string) (*domain.Platform, error)
	deleteFn       func(ctx context.Context, sess *domain.Session, id string) error
	activityFn     func(ctx context.Context, sess *domain.Session, limit, offset int) ([]usecase.Row[*domain.ActivityLog], error)
	reportFn       func(ctx context.Context, sess *domain.Session, filter domain.ReportFilter) ([]*domain.HubReport, error)
	statsFn        func(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error)
}

func (s *catalogServiceStub) ListTransactions(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter) ([]usecase.Row[*domain.Transaction], error) {
	return s.transactionsFn(ctx, sess, filter)
}

func (s *catalogServiceStub) ExportTransactionsCSV(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter, w io.Writer) (int, error) {
	return s.exportFn(ctx, sess, filter, w)
}

func (s *catalogServiceStub) ListPlatforms(ctx context.Context, sess *domain.Session) ([]usecase.Row[*domain.Platform], error) {
	return s.platformsFn(ctx, sess)
}

func (s *catalogServiceStub) PlatformOptions(ctx context.Context, sess *domain.Session) ([]*domain.Platform, error) {
	return s.optionsFn(ctx, sess)
}

func (s *catalogServiceStub) CreatePlatform(ctx context.Context, sess *domain.Session, name string) (*domain.Platform, error) {
	return s.createFn(ctx, sess, name)
}

func (s *catalogServiceStub) RenamePlatform(ctx context.Context, sess *domain.Session, id, name string) (*domain.Platform, error) {
	return s.renameFn(ctx, sess, id, name)
}

func (s *catalogServiceStub) DeletePlatform(ctx context.Context, sess *domain.Session, id string) error {
	return s.deleteFn(ctx, sess, id)
}

func (s *catalogServiceStub) ListActivityLogs(ctx context.Context, sess *domain.Session, limit, offset int) ([]usecase.Row[*domain.ActivityLog], error) {
	return s.activityFn(ctx, sess, limit, offset)
}

func (s *catalogServiceStub) HubReport(ctx context.Context, sess *domain.Session, filter domain.ReportFilter) ([]*domain.HubReport, error) {
	return s.reportFn(ctx, sess, filter)
}

func (s *catalogServiceStub) DashboardStats(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error) {
	return s.statsFn(ctx, sess)
}

func TestCatalogHandler_TransactionsParsesQuery(t *testing.T) {
	var captured domain.TransactionFilter
	h := NewCatalogHandler(&catalogServiceStub{
		transactionsFn: func(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter) ([]usecase.Row[*domain.Transaction], error) {
			captured = filter
			return nil, nil
		},
	})

	target := "/transactions?merchantId=M1&type=withdrawal&status=pending&from=2026-03-01&to=2026-03-31&limit=20&offset=40"
	rec := httptest.NewRecorder()
	h.Transactions(rec, newRequest(t, http.MethodGet, target, nil, superAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.MerchantID != "M1" || captured.Type != domain.TransactionWithdrawal || captured.Status != domain.TransactionPending {
		t.Fatalf("unexpected filter %+v", captured)
	}
	if captured.Limit != 20 || captured.Offset != 40 {
		t.Fatalf("unexpected paging %d/%d", captured.Limit, captured.Offset)
	}
	if captured.From == nil || !captured.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected from %v", captured.From)
	}
	if captured.To == nil || captured.To.Day() != 31 || captured.To.Hour() != 23 {
		t.Fatalf("expected to to cover the whole day, got %v", captured.To)
	}
}

func TestCatalogHandler_TransactionsRejectsBadQuery(t *testing.T) {
	h := NewCatalogHandler(&catalogServiceStub{})

	for _, target := range []string{"/transactions?type=refund", "/transactions?from=03/01/2026"} {
		rec := httptest.NewRecorder()
		h.Transactions(rec, newRequest(t, http.MethodGet, target, nil, superAdmin))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestCatalogHandler_ExportTransactions(t *testing.T) {
	h := NewCatalogHandler(&catalogServiceStub{
		exportFn: func(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter, w io.Writer) (int, error) {
			_, err := io.WriteString(w, "id,transactionId\nt1,x1\n")
			return 1, err
		},
	})

	rec := httptest.NewRecorder()
	h.ExportTransactions(rec, newRequest(t, http.MethodGet, "/transactions/export", nil, storeAdmin))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected csv content type, got %q", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "transactions.csv") {
		t.Fatalf("expected attachment header, got %q", rec.Header().Get("Content-Disposition"))
	}
	if !strings.HasPrefix(rec.Body.String(), "id,transactionId") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestCatalogHandler_ExportForbiddenBeforeRows(t *testing.T) {
	h := NewCatalogHandler(&catalogServiceStub{
		exportFn: func(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter, w io.Writer) (int, error) {
			return 0, fmt.Errorf("%w: view transaction", domain.ErrForbidden)
		},
	})

	rec := httptest.NewRecorder()
	h.ExportTransactions(rec, newRequest(t, http.MethodGet, "/transactions/export", nil, storeAdmin))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json error, got %q", ct)
	}
}

func TestCatalogHandler_ExportAbortedMidStream(t *testing.T) {
	h := NewCatalogHandler(&catalogServiceStub{
		exportFn: func(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter, w io.Writer) (int, error) {
			_, _ = io.WriteString(w, "id\n")
			return 0, errors.New("backend went away")
		},
	})

	rec := httptest.NewRecorder()
	h.ExportTransactions(rec, newRequest(t, http.MethodGet, "/transactions/export", nil, superAdmin))

	if rec.Code != http.StatusOK || rec.Body.String() != "id\n" {
		t.Fatalf("expected partial csv left untouched, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestCatalogHandler_CreatePlatform(t *testing.T) {
	h := NewCatalogHandler(&catalogServiceStub{
		createFn: func(ctx context.Context, sess *domain.Session, name string) (*domain.Platform, error) {
			return &domain.Platform{ID: "p1", Name: name}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.CreatePlatform(rec, newRequest(t, http.MethodPost, "/platforms", dto.PlatformRequest{Name: "Orion"}, superAdmin))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.CreatePlatform(rec, newRequest(t, http.MethodPost, "/platforms", `{"name":""}`, superAdmin))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty name, got %d", rec.Code)
	}
}

func TestCatalogHandler_ActivityLogsPaging(t *testing.T) {
	var gotLimit, gotOffset int
	h := NewCatalogHandler(&catalogServiceStub{
		activityFn: func(ctx context.Context, sess *domain.Session, limit, offset int) ([]usecase.Row[*domain.ActivityLog], error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	h.ActivityLogs(rec, newRequest(t, http.MethodGet, "/activity-logs?limit=10&offset=30", nil, superAdmin))

	if gotLimit != 10 || gotOffset != 30 {
		t.Fatalf("unexpected paging %d/%d", gotLimit, gotOffset)
	}
}

func TestCatalogHandler_HubReportAddsNet(t *testing.T) {
	h := NewCatalogHandler(&catalogServiceStub{
		reportFn: func(ctx context.Context, sess *domain.Session, filter domain.ReportFilter) ([]*domain.HubReport, error) {
			if filter.From != "2026-01-01" {
				t.Fatalf("unexpected filter %+v", filter)
			}
			return []*domain.HubReport{{
				MerchantID:    "M1",
				TotalDeposit:  decimal.RequireFromString("100.5"),
				TotalWithdraw: decimal.RequireFromString("40.25"),
			}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.HubReport(rec, newRequest(t, http.MethodGet, "/reports/hubs?from=2026-01-01", nil, superAdmin))

	var resp struct {
		Items []struct {
			MerchantID string `json:"merchantId"`
			Net        string `json:"net"`
		} `json:"items"`
	}
	decodeResponse(t, rec, &resp)
	if len(resp.Items) != 1 || resp.Items[0].Net != "60.25" {
		t.Fatalf("unexpected report %+v", resp)
	}
}

func TestCatalogHandler_DashboardStats(t *testing.T) {
	h := NewCatalogHandler(&catalogServiceStub{
		statsFn: func(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error) {
			if sess.Principal.Role != domain.RoleSuperAdmin {
				return nil, fmt.Errorf("%w: platform_overview", domain.ErrForbidden)
			}
			return &domain.DashboardStats{
				TotalDeposit:          decimal.RequireFromString("1200.5"),
				TotalDepositCustomers: 9,
				GamesCount:            14,
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.DashboardStats(rec, newRequest(t, http.MethodGet, "/dashboard/stats", nil, superAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		TotalDeposit          string `json:"totalDeposit"`
		TotalDepositCustomers int    `json:"totalDepositCustomers"`
		GamesCount            int    `json:"gamesCount"`
	}
	decodeResponse(t, rec, &resp)
	if resp.TotalDeposit != "1200.5" || resp.TotalDepositCustomers != 9 || resp.GamesCount != 14 {
		t.Fatalf("unexpected stats %+v", resp)
	}

	rec = httptest.NewRecorder()
	h.DashboardStats(rec, newRequest(t, http.MethodGet, "/dashboard/stats", nil, storeAdmin))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for store admin, got %d", rec.Code)
	}
}

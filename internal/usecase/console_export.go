package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
)

// exportPageSize is the largest page the backend serves.
const exportPageSize = 1000

var transactionCSVHeader = []string{
	"id", "transactionId", "merchantId", "merchantName", "platformId", "type",
	"status", "amount", "commission", "network", "gameId", "orderId", "ip", "createdAt",
}

// ExportTransactionsCSV writes every transaction the caller may view that
// matches filter, paging through the backend. It returns the row count.
func (uc *ConsoleUseCase) ExportTransactionsCSV(ctx context.Context, sess *domain.Session, filter domain.TransactionFilter, w io.Writer) (int, error) {
	if err := uc.list(ctx, sess, domain.ResourceTransaction); err != nil {
		return 0, err
	}
	p := sess.Principal
	if p.Role.IsTenantBound() {
		filter.MerchantID = p.Tenant()
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(transactionCSVHeader); err != nil {
		return 0, err
	}

	filter.Limit = exportPageSize
	filter.Offset = 0
	written := 0
	for {
		page, err := uc.backend.ListTransactions(ctx, sess.Token, filter)
		if err != nil {
			return written, err
		}
		for _, t := range policy.FilterVisible(p, domain.ResourceTransaction, page) {
			if err := cw.Write(transactionRecord(t)); err != nil {
				return written, err
			}
			written++
		}
		if len(page) < exportPageSize {
			break
		}
		filter.Offset += exportPageSize
	}

	cw.Flush()
	return written, cw.Error()
}

func transactionRecord(t *domain.Transaction) []string {
	created := ""
	if !t.CreatedAt.IsZero() {
		created = t.CreatedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		t.ID,
		t.TransactionID,
		t.Merchant.ID,
		t.Merchant.Name,
		t.Platform.ID,
		t.Type,
		t.Status,
		t.Amount.StringFixed(domain.AmountPlaces),
		t.CommissionAmount.StringFixed(domain.AmountPlaces),
		t.Network,
		t.GameID,
		t.OrderID,
		t.IP,
		created,
	}
}

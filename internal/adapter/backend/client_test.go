package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searn/hubadmin/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := New(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	c.retrier.initialInterval = time.Millisecond
	c.retrier.maxInterval = 5 * time.Millisecond
	return c
}

func TestLogin(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@hub.io", body["email"])
		assert.Equal(t, "secret", body["password"])

		_, _ = io.WriteString(w, `{"token":"tok","user":{"_id":"u1","email":"a@hub.io","role":"store_admin","merchantId":{"_id":"m1","name":"Hub"}}}`)
	})

	res, err := c.Login(context.Background(), "a@hub.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "m1", res.User.Merchant.ID)
	assert.Equal(t, domain.RoleStoreAdmin, res.User.Role)
}

func TestStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusTeapot, domain.ErrBackendError},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = io.WriteString(w, `{"error":"nope"}`)
		})

		err := c.DeleteUser(context.Background(), "tok", "u1")
		require.Error(t, err)
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "nope", se.Message)
	}
}

func TestGetRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"_id":"p1","name":"Orion"}]`)
	})

	items, err := c.ListPlatforms(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Orion", items[0].Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetGivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ListMerchants(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrBackendError)
	assert.Equal(t, int32(4), calls.Load())
}

func TestWritesAreNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.CreatePlatform(context.Background(), "tok", "Orion")
	assert.ErrorIs(t, err, domain.ErrBackendError)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.ListUsers(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetMerchantScansList(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"_id":"m1","name":"One"},{"_id":"m2","name":"Two"}]}`)
	})

	m, err := c.GetMerchant(context.Background(), "tok", "m2")
	require.NoError(t, err)
	assert.Equal(t, "Two", m.Name)

	_, err = c.GetMerchant(context.Background(), "tok", "m9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListTransactionsQuery(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "m1", q.Get("merchantId"))
		assert.Equal(t, "deposit", q.Get("type"))
		assert.Equal(t, "2024-03-01T00:00:00Z", q.Get("from"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.Empty(t, q.Get("offset"))
		_, _ = io.WriteString(w, `[{"_id":"t1","merchantId":"m1","type":"deposit","status":"completed","amount":"12.5","commissionAmount":0}]`)
	})

	items, err := c.ListTransactions(context.Background(), "tok", domain.TransactionFilter{
		MerchantID: "m1",
		Type:       domain.TransactionDeposit,
		From:       &from,
		Limit:      50,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Amount.Equal(decimal.RequireFromString("12.5")))
}

func TestMerchantWithdrawAll(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/merchants/withdraw-all", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "amount")
		assert.Equal(t, "bc1qaddr", body["address"])
		_, _ = io.WriteString(w, `{"status":"pending"}`)
	})

	res, err := c.MerchantWithdraw(context.Background(), "tok", domain.FundsRequest{
		All:     true,
		Network: "lightning",
		Address: "bc1qaddr",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", res.Status)
}

func TestCreateBlockedIPSendsIDs(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IP            string   `json:"ip"`
			BlockedForAll bool     `json:"blockedForAll"`
			MerchantIDs   []string `json:"merchantIds"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"m1"}, body.MerchantIDs)
		assert.False(t, body.BlockedForAll)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"_id":"b1","ip":"1.2.3.4","blockedForAll":false,"merchantIds":[{"_id":"m1","name":"Hub"}]}`)
	})

	b, err := c.CreateBlockedIP(context.Background(), "tok", &domain.BlockedIP{
		IP:        "1.2.3.4",
		Merchants: domain.OwnerRefs{{ID: "m1", Name: "Hub"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	assert.True(t, b.Owner().Includes("m1"))
}

func TestSetMerchantWithdrawalsChecksEcho(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		_, _ = io.WriteString(w, `{"withdrawalsEnabled":false}`)
	})

	err := c.SetMerchantWithdrawals(context.Background(), "tok", "m1", true)
	assert.ErrorIs(t, err, domain.ErrBackendError)
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/stats", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"totalDeposit":1500.75,"totalDepositCustomers":12,"totalWithdraw":"300","totalPendingWithdrawRequests":2,"pendingWithdrawAmount":45,"gamingPartners":4,"totalCommission":"12.5","gamesCount":31}`)
	})

	stats, err := c.DashboardStats(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, stats.TotalDeposit.Equal(decimal.RequireFromString("1500.75")))
	assert.True(t, stats.TotalWithdraw.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 12, stats.TotalDepositCustomers)
	assert.Equal(t, 2, stats.TotalPendingWithdrawRequests)
	assert.Equal(t, 31, stats.GamesCount)
}

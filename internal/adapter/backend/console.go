package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/usecase"
)

var _ usecase.Backend = (*Client)(nil)

// Login exchanges credentials for a backend token.
func (c *Client) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	var res usecase.LoginResult
	payload := map[string]string{"email": email, "password": password}
	if err := c.sendJSON(ctx, http.MethodPost, "", "/admin/login", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ChangeOwnPassword changes the caller's password.
func (c *Client) ChangeOwnPassword(ctx context.Context, token, current, next string) error {
	payload := map[string]string{"oldPassword": current, "newPassword": next}
	return c.sendJSON(ctx, http.MethodPost, token, "/admin/change-password", payload, nil)
}

// ListMerchants returns every hub visible to the token.
func (c *Client) ListMerchants(ctx context.Context, token string) ([]*domain.Merchant, error) {
	return listOf[domain.Merchant](ctx, c, token, "/merchants", nil)
}

// GetMerchant returns one hub.
func (c *Client) GetMerchant(ctx context.Context, token, id string) (*domain.Merchant, error) {
	items, err := c.ListMerchants(ctx, token)
	if err != nil {
		return nil, err
	}
	return findByID(items, id, func(m *domain.Merchant) string { return m.ID })
}

// CreateMerchant registers a hub.
func (c *Client) CreateMerchant(ctx context.Context, token string, m *domain.Merchant) (*domain.Merchant, error) {
	var out domain.Merchant
	if err := c.sendJSON(ctx, http.MethodPost, token, "/merchants", merchantBody(m), &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return m, nil
	}
	return &out, nil
}

// UpdateMerchant applies a field patch to a hub.
func (c *Client) UpdateMerchant(ctx context.Context, token, id string, patch map[string]any) (*domain.Merchant, error) {
	var out domain.Merchant
	if err := c.sendJSON(ctx, http.MethodPut, token, "/merchants/"+escape(id), patch, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return c.GetMerchant(ctx, token, id)
	}
	return &out, nil
}

// DeleteMerchant removes a hub.
func (c *Client) DeleteMerchant(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, token, "/merchants/"+escape(id), nil, nil)
}

// SetMerchantDisabled enables or disables a hub.
func (c *Client) SetMerchantDisabled(ctx context.Context, token, id string, disabled bool) error {
	payload := map[string]bool{"disabled": disabled}
	return c.sendJSON(ctx, http.MethodPut, token, "/merchants/"+escape(id)+"/disabled", payload, nil)
}

// SetMerchantWithdrawals switches player withdrawals for a hub.
func (c *Client) SetMerchantWithdrawals(ctx context.Context, token, id string, enabled bool) error {
	payload := map[string]bool{"withdrawalsEnabled": enabled}
	var out struct {
		WithdrawalsEnabled *bool `json:"withdrawalsEnabled"`
	}
	if err := c.sendJSON(ctx, http.MethodPatch, token, "/merchants/"+escape(id)+"/withdrawals", payload, &out); err != nil {
		return err
	}
	if out.WithdrawalsEnabled != nil && *out.WithdrawalsEnabled != enabled {
		return fmt.Errorf("%w: withdrawals flag not applied", domain.ErrBackendError)
	}
	return nil
}

// MerchantBalance returns the caller's hub balance.
func (c *Client) MerchantBalance(ctx context.Context, token string) (*domain.MerchantBalance, error) {
	var out domain.MerchantBalance
	if err := c.getJSON(ctx, token, "/merchants/balance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MerchantDeposit requests a deposit invoice for the caller's hub.
func (c *Client) MerchantDeposit(ctx context.Context, token string, req domain.FundsRequest) (*domain.FundsResult, error) {
	payload := map[string]any{
		"amount":  req.Amount.Round(domain.AmountPlaces),
		"network": req.Network,
	}
	var out domain.FundsResult
	if err := c.sendJSON(ctx, http.MethodPost, token, "/merchants/deposit", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MerchantWithdraw withdraws from the caller's hub balance.
func (c *Client) MerchantWithdraw(ctx context.Context, token string, req domain.FundsRequest) (*domain.FundsResult, error) {
	path := "/merchants/withdraw"
	payload := map[string]any{
		"network": req.Network,
		"address": req.Address,
	}
	if req.All {
		path = "/merchants/withdraw-all"
	} else {
		payload["amount"] = req.Amount.Round(domain.AmountPlaces)
		if req.AmountSats > 0 {
			payload["amountSats"] = req.AmountSats
		}
	}
	var out domain.FundsResult
	if err := c.sendJSON(ctx, http.MethodPost, token, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns the console accounts visible to the token.
func (c *Client) ListUsers(ctx context.Context, token string) ([]*domain.User, error) {
	return listOf[domain.User](ctx, c, token, "/admin/users", nil)
}

// GetUser returns one console account.
func (c *Client) GetUser(ctx context.Context, token, id string) (*domain.User, error) {
	items, err := c.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	return findByID(items, id, func(u *domain.User) string { return u.ID })
}

// CreateUser creates a console account.
func (c *Client) CreateUser(ctx context.Context, token string, u *domain.User, password string) (*domain.User, error) {
	payload := map[string]any{
		"email":    u.Email,
		"password": password,
		"role":     u.Role,
	}
	if u.Merchant.ID != "" {
		payload["merchantId"] = u.Merchant.ID
	}
	if u.TelegramUsername != "" {
		payload["telegramUsername"] = u.TelegramUsername
	}
	var out domain.User
	if err := c.sendJSON(ctx, http.MethodPost, token, "/admin/users", payload, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return u, nil
	}
	return &out, nil
}

// UpdateUser applies a field patch to a console account.
func (c *Client) UpdateUser(ctx context.Context, token, id string, patch map[string]any) (*domain.User, error) {
	var out domain.User
	if err := c.sendJSON(ctx, http.MethodPut, token, "/admin/users/"+escape(id), patch, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return c.GetUser(ctx, token, id)
	}
	return &out, nil
}

// DeleteUser removes a console account.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, token, "/admin/users/"+escape(id), nil, nil)
}

// ChangeUserPassword sets another account's password.
func (c *Client) ChangeUserPassword(ctx context.Context, token, id, password string) error {
	payload := map[string]string{"newPassword": password}
	return c.sendJSON(ctx, http.MethodPost, token, "/admin/users/"+escape(id)+"/change-password", payload, nil)
}

// ListBlockedIPs returns blocks, optionally narrowed to one address.
func (c *Client) ListBlockedIPs(ctx context.Context, token, ip string) ([]*domain.BlockedIP, error) {
	var q url.Values
	if ip = strings.TrimSpace(ip); ip != "" {
		q = url.Values{"ip": {ip}}
	}
	return listOf[domain.BlockedIP](ctx, c, token, "/blocked-ips", q)
}

// GetBlockedIP returns one block.
func (c *Client) GetBlockedIP(ctx context.Context, token, id string) (*domain.BlockedIP, error) {
	items, err := c.ListBlockedIPs(ctx, token, "")
	if err != nil {
		return nil, err
	}
	return findByID(items, id, func(b *domain.BlockedIP) string { return b.ID })
}

// CreateBlockedIP blocks an address.
func (c *Client) CreateBlockedIP(ctx context.Context, token string, b *domain.BlockedIP) (*domain.BlockedIP, error) {
	var out domain.BlockedIP
	if err := c.sendJSON(ctx, http.MethodPost, token, "/blocked-ips", blockBody(b), &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return b, nil
	}
	return &out, nil
}

// UpdateBlockedIP replaces a block.
func (c *Client) UpdateBlockedIP(ctx context.Context, token, id string, b *domain.BlockedIP) (*domain.BlockedIP, error) {
	var out domain.BlockedIP
	if err := c.sendJSON(ctx, http.MethodPut, token, "/blocked-ips/"+escape(id), blockBody(b), &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		updated := *b
		updated.ID = id
		return &updated, nil
	}
	return &out, nil
}

// DeleteBlockedIP lifts a block.
func (c *Client) DeleteBlockedIP(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, token, "/blocked-ips/"+escape(id), nil, nil)
}

// ListTransactions returns transactions matching the filter.
func (c *Client) ListTransactions(ctx context.Context, token string, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	return listOf[domain.Transaction](ctx, c, token, "/transactions", transactionQuery(filter))
}

// ListPlatforms returns the game platform catalog.
func (c *Client) ListPlatforms(ctx context.Context, token string) ([]*domain.Platform, error) {
	return listOf[domain.Platform](ctx, c, token, "/platforms", nil)
}

// CreatePlatform adds a platform.
func (c *Client) CreatePlatform(ctx context.Context, token, name string) (*domain.Platform, error) {
	var out domain.Platform
	if err := c.sendJSON(ctx, http.MethodPost, token, "/platforms", map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		out.Name = name
	}
	return &out, nil
}

// UpdatePlatform renames a platform.
func (c *Client) UpdatePlatform(ctx context.Context, token, id, name string) (*domain.Platform, error) {
	var out domain.Platform
	if err := c.sendJSON(ctx, http.MethodPut, token, "/platforms/"+escape(id), map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = id
	}
	if out.Name == "" {
		out.Name = name
	}
	return &out, nil
}

// DeletePlatform removes a platform.
func (c *Client) DeletePlatform(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, token, "/platforms/"+escape(id), nil, nil)
}

// ListActivityLogs returns a page of the activity log.
func (c *Client) ListActivityLogs(ctx context.Context, token string, limit, offset int) ([]*domain.ActivityLog, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return listOf[domain.ActivityLog](ctx, c, token, "/admin/activity-logs", q)
}

// HubReport returns per-hub totals.
func (c *Client) HubReport(ctx context.Context, token string, filter domain.ReportFilter) ([]*domain.HubReport, error) {
	q := url.Values{}
	if filter.MerchantID != "" {
		q.Set("merchantId", filter.MerchantID)
	}
	if filter.From != "" {
		q.Set("from", filter.From)
	}
	if filter.To != "" {
		q.Set("to", filter.To)
	}
	return listOf[domain.HubReport](ctx, c, token, "/reports/hubs", q)
}

// DashboardStats returns the platform overview totals.
func (c *Client) DashboardStats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.getJSON(ctx, token, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func merchantBody(m *domain.Merchant) map[string]any {
	body := map[string]any{
		"name":                   m.Name,
		"apiKey":                 m.APIKey,
		"telegramChannelId":      m.TelegramChannelID,
		"subdomain":              m.Subdomain,
		"adminCommissionPercent": m.AdminCommissionPercent,
		"withdrawalsEnabled":     m.WithdrawalsEnabled,
		"minimumDeposit":         m.MinimumDeposit,
		"minimumWithdraw":        m.MinimumWithdraw,
		"maximumWithdraw":        m.MaximumWithdraw,
		"platforms":              m.Platforms.IDs(),
	}
	if m.BannerImage != "" {
		body["bannerImage"] = m.BannerImage
	}
	if m.SupportLink != "" {
		body["supportLink"] = m.SupportLink
	}
	return body
}

func blockBody(b *domain.BlockedIP) map[string]any {
	ids := b.Merchants.IDs()
	if b.BlockedForAll {
		ids = []string{}
	}
	body := map[string]any{
		"ip":            b.IP,
		"blockedForAll": b.BlockedForAll,
		"merchantIds":   ids,
	}
	if b.Reason != "" {
		body["reason"] = b.Reason
	}
	return body
}

func transactionQuery(f domain.TransactionFilter) url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(k, v)
		}
	}
	set("merchantId", f.MerchantID)
	set("type", f.Type)
	set("status", f.Status)
	set("search", f.Search)
	if f.From != nil {
		q.Set("from", f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		q.Set("to", f.To.UTC().Format(time.RFC3339))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	return q
}

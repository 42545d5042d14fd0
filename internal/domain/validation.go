package domain

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordTooWeak   = errors.New("password does not meet requirements")
	ErrInvalidMerchant   = errors.New("invalid merchant")
	ErrInvalidUser       = errors.New("invalid user")
	ErrInvalidIP         = errors.New("invalid IP address")
	ErrInvalidCommission = errors.New("commission out of range")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrAmountPrecision   = errors.New("amount has too many decimal places")
)

// Validation constants
const (
	MinPasswordLength    = 6
	MaxPasswordLength    = 128
	MaxNameLength        = 255
	MinCommissionPercent = 0
	MaxCommissionPercent = 20
	AmountPlaces         = 2
)

// Merchant defaults applied when a form leaves a value blank.
var (
	DefaultCommissionPercent = decimal.NewFromInt(1)
	DefaultMinimumDeposit    = decimal.NewFromInt(5)
	DefaultMinimumWithdraw   = decimal.NewFromInt(5)
	DefaultMaximumWithdraw   = decimal.NewFromInt(1000)
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	subdomainRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
)

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword checks the length bounds the console enforces.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}

	return nil
}

// ApplyDefaults fills blank numeric settings with the platform defaults.
func (m *Merchant) ApplyDefaults() {
	if m.AdminCommissionPercent.IsZero() {
		m.AdminCommissionPercent = DefaultCommissionPercent
	}
	if m.MinimumDeposit.IsZero() {
		m.MinimumDeposit = DefaultMinimumDeposit
	}
	if m.MinimumWithdraw.IsZero() {
		m.MinimumWithdraw = DefaultMinimumWithdraw
	}
	if m.MaximumWithdraw.IsZero() {
		m.MaximumWithdraw = DefaultMaximumWithdraw
	}
}

// ValidateMerchant validates a hub form. requireAPIKey is set when the caller
// edits the api key field.
func ValidateMerchant(m *Merchant, requireAPIKey bool) error {
	if m == nil {
		return fmt.Errorf("%w: missing body", ErrInvalidMerchant)
	}

	name := strings.TrimSpace(m.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMerchant)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidMerchant, MaxNameLength)
	}

	if strings.TrimSpace(m.TelegramChannelID) == "" {
		return fmt.Errorf("%w: telegram channel is required", ErrInvalidMerchant)
	}

	sub := strings.ToLower(strings.TrimSpace(m.Subdomain))
	if sub == "" {
		return fmt.Errorf("%w: subdomain is required", ErrInvalidMerchant)
	}
	if !subdomainRegex.MatchString(sub) {
		return fmt.Errorf("%w: subdomain %q is not a valid DNS label", ErrInvalidMerchant, m.Subdomain)
	}

	if requireAPIKey && strings.TrimSpace(m.APIKey) == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidMerchant)
	}

	if m.AdminCommissionPercent.LessThan(decimal.NewFromInt(MinCommissionPercent)) ||
		m.AdminCommissionPercent.GreaterThan(decimal.NewFromInt(MaxCommissionPercent)) {
		return fmt.Errorf("%w: must be between %d and %d", ErrInvalidCommission, MinCommissionPercent, MaxCommissionPercent)
	}

	if m.MinimumDeposit.IsNegative() || m.MinimumWithdraw.IsNegative() || m.MaximumWithdraw.IsNegative() {
		return fmt.Errorf("%w: limits must not be negative", ErrInvalidMerchant)
	}
	if !m.MaximumWithdraw.IsZero() && m.MaximumWithdraw.LessThan(m.MinimumWithdraw) {
		return fmt.Errorf("%w: maximum withdraw below minimum withdraw", ErrInvalidMerchant)
	}

	for _, link := range []string{m.SupportLink, m.BannerImage} {
		if err := validateOptionalURL(link); err != nil {
			return err
		}
	}

	return nil
}

func validateOptionalURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}

// ValidateUser validates a user form. Passwords are only checked on create.
func ValidateUser(u *User, password string, create bool) error {
	if u == nil {
		return fmt.Errorf("%w: missing body", ErrInvalidUser)
	}

	if err := ValidateEmail(u.Email); err != nil {
		return err
	}

	if !u.Role.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownRole, u.Role)
	}

	if create {
		if err := ValidatePassword(password); err != nil {
			return err
		}
	}

	if u.Role.IsTenantBound() && u.Merchant.ID == "" {
		return fmt.Errorf("%w: %s requires a hub", ErrInvalidUser, u.Role)
	}

	return nil
}

// ValidateIP checks for a parseable IPv4 or IPv6 address.
func ValidateIP(ip string) error {
	if net.ParseIP(strings.TrimSpace(ip)) == nil {
		return fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}
	return nil
}

// ValidateBlockedIP validates a block form. A block must name at least one hub
// unless it applies to all of them.
func ValidateBlockedIP(b *BlockedIP) error {
	if b == nil {
		return fmt.Errorf("%w: missing body", ErrInvalidInput)
	}
	if err := ValidateIP(b.IP); err != nil {
		return err
	}
	if !b.BlockedForAll && len(b.Merchants.IDs()) == 0 {
		return fmt.Errorf("%w: select at least one hub or block for all", ErrInvalidInput)
	}
	return nil
}

// ValidateAmount validates a deposit/withdraw amount
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !amount.Equal(amount.Round(AmountPlaces)) {
		return fmt.Errorf("%w: at most %d places", ErrAmountPrecision, AmountPlaces)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}

package domain

// Resource is a kind of managed entity.
type Resource string

const (
	ResourceMerchant    Resource = "merchant"
	ResourceUser        Resource = "user"
	ResourceTransaction Resource = "transaction"
	ResourceBlockedIP   Resource = "blocked_ip"
	ResourcePlatform    Resource = "platform"
	ResourceReport      Resource = "report"
	ResourceActivityLog Resource = "activity_log"
)

var validResources = map[Resource]bool{
	ResourceMerchant:    true,
	ResourceUser:        true,
	ResourceTransaction: true,
	ResourceBlockedIP:   true,
	ResourcePlatform:    true,
	ResourceReport:      true,
	ResourceActivityLog: true,
}

// IsValid checks if the resource is known.
func (r Resource) IsValid() bool {
	return validResources[r]
}

// Action is something a principal may do to a resource.
type Action string

const (
	ActionView           Action = "view"
	ActionCreate         Action = "create"
	ActionEdit           Action = "edit"
	ActionDelete         Action = "delete"
	ActionToggleStatus   Action = "toggle_status"
	ActionChangePassword Action = "change_password"
)

// Actions lists every action in display order.
func Actions() []Action {
	return []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionToggleStatus, ActionChangePassword}
}

// IsValid checks if the action is known.
func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionCreate, ActionEdit, ActionDelete, ActionToggleStatus, ActionChangePassword:
		return true
	}
	return false
}

// IsMutation reports whether the action changes state on the backend.
func (a Action) IsMutation() bool {
	return a.IsValid() && a != ActionView
}

// NavSection is a top-level console screen.
type NavSection string

const (
	NavDashboard    NavSection = "dashboard"
	NavTransactions NavSection = "transactions"
	NavPlatforms    NavSection = "platforms"
	NavMerchants    NavSection = "merchants"
	NavUsers        NavSection = "users"
	NavReports      NavSection = "reports"
	NavBlockedIPs   NavSection = "blocked_ips"
	NavActivityLogs NavSection = "activity_logs"
)

// Field names an editable attribute of a resource form.
type Field string

// Merchant form fields.
const (
	FieldMerchantName            Field = "name"
	FieldMerchantAPIKey          Field = "apiKey"
	FieldMerchantTelegramChannel Field = "telegramChannelId"
	FieldMerchantSubdomain       Field = "subdomain"
	FieldMerchantBannerImage     Field = "bannerImage"
	FieldMerchantSupportLink     Field = "supportLink"
	FieldMerchantCommission      Field = "adminCommissionPercent"
	FieldMerchantWithdrawals     Field = "withdrawalsEnabled"
	FieldMerchantMinDeposit      Field = "minimumDeposit"
	FieldMerchantMinWithdraw     Field = "minimumWithdraw"
	FieldMerchantMaxWithdraw     Field = "maximumWithdraw"
	FieldMerchantPlatforms       Field = "platforms"
)

// User form fields.
const (
	FieldUserEmail    Field = "email"
	FieldUserPassword Field = "password"
	FieldUserRole     Field = "role"
	FieldUserMerchant Field = "merchantId"
	FieldUserTelegram Field = "telegramUsername"
)

// Blocked IP form fields.
const (
	FieldBlockedIPAddress   Field = "ip"
	FieldBlockedIPForAll    Field = "blockedForAll"
	FieldBlockedIPMerchants Field = "merchantIds"
	FieldBlockedIPReason    Field = "reason"
)

// Platform form fields.
const (
	FieldPlatformName Field = "name"
)

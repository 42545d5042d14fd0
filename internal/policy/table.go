package policy

import "github.com/searn/hubadmin/internal/domain"

type grants = map[domain.Resource]map[domain.Action]Grant

var (
	merchantFieldsAll = []domain.Field{
		domain.FieldMerchantName,
		domain.FieldMerchantAPIKey,
		domain.FieldMerchantTelegramChannel,
		domain.FieldMerchantSubdomain,
		domain.FieldMerchantBannerImage,
		domain.FieldMerchantSupportLink,
		domain.FieldMerchantCommission,
		domain.FieldMerchantWithdrawals,
		domain.FieldMerchantMinDeposit,
		domain.FieldMerchantMinWithdraw,
		domain.FieldMerchantMaxWithdraw,
		domain.FieldMerchantPlatforms,
	}
	merchantFieldsHub = []domain.Field{
		domain.FieldMerchantWithdrawals,
		domain.FieldMerchantPlatforms,
	}
	userFieldsAll = []domain.Field{
		domain.FieldUserEmail,
		domain.FieldUserPassword,
		domain.FieldUserRole,
		domain.FieldUserMerchant,
		domain.FieldUserTelegram,
	}
	// Store roles cannot move a user to another hub.
	userFieldsHub = []domain.Field{
		domain.FieldUserEmail,
		domain.FieldUserPassword,
		domain.FieldUserRole,
		domain.FieldUserTelegram,
	}
	blockedIPFieldsAll = []domain.Field{
		domain.FieldBlockedIPAddress,
		domain.FieldBlockedIPForAll,
		domain.FieldBlockedIPMerchants,
		domain.FieldBlockedIPReason,
	}
	// Store roles always block for their own hub only.
	blockedIPFieldsHub = []domain.Field{
		domain.FieldBlockedIPAddress,
		domain.FieldBlockedIPReason,
	}
	platformFields = []domain.Field{domain.FieldPlatformName}
)

func without(fields []domain.Field, drop domain.Field) []domain.Field {
	out := make([]domain.Field, 0, len(fields))
	for _, f := range fields {
		if f != drop {
			out = append(out, f)
		}
	}
	return out
}

func crud(g Grant) map[domain.Action]Grant {
	return map[domain.Action]Grant{
		domain.ActionView:   g,
		domain.ActionCreate: g,
		domain.ActionEdit:   g,
		domain.ActionDelete: g,
	}
}

func viewOnly(g Grant) map[domain.Action]Grant {
	return map[domain.Action]Grant{domain.ActionView: g}
}

var minimal = &Capabilities{
	nav:    []domain.NavSection{domain.NavDashboard},
	grants: grants{},
	fields: map[domain.Resource][]domain.Field{},
}

var table = map[domain.Role]*Capabilities{
	domain.RoleSuperAdmin: {
		role: domain.RoleSuperAdmin,
		nav: []domain.NavSection{
			domain.NavDashboard, domain.NavTransactions, domain.NavPlatforms, domain.NavMerchants,
			domain.NavUsers, domain.NavReports, domain.NavBlockedIPs, domain.NavActivityLogs,
		},
		grants: grants{
			domain.ResourceMerchant: {
				domain.ActionView:         GrantAll,
				domain.ActionCreate:       GrantAll,
				domain.ActionEdit:         GrantAll,
				domain.ActionDelete:       GrantAll,
				domain.ActionToggleStatus: GrantAll,
			},
			domain.ResourceUser: {
				domain.ActionView:           GrantAll,
				domain.ActionCreate:         GrantAll,
				domain.ActionEdit:           GrantAll,
				domain.ActionDelete:         GrantAll,
				domain.ActionChangePassword: GrantAll,
			},
			domain.ResourceTransaction: viewOnly(GrantAll),
			domain.ResourceBlockedIP:   crud(GrantAll),
			domain.ResourcePlatform:    crud(GrantAll),
			domain.ResourceReport:      viewOnly(GrantAll),
			domain.ResourceActivityLog: viewOnly(GrantAll),
		},
		fields: map[domain.Resource][]domain.Field{
			domain.ResourceMerchant:  merchantFieldsAll,
			domain.ResourceUser:      userFieldsAll,
			domain.ResourceBlockedIP: blockedIPFieldsAll,
			domain.ResourcePlatform:  platformFields,
		},
		assignable: []domain.Role{domain.RoleSuperManager, domain.RoleStoreAdmin, domain.RoleStoreManager, domain.RoleStoreCashier},
		deletable:  []domain.Role{domain.RoleSuperManager, domain.RoleStoreAdmin, domain.RoleStoreManager, domain.RoleStoreCashier},
		passwords:  []domain.Role{domain.RoleSuperManager, domain.RoleStoreAdmin, domain.RoleStoreManager, domain.RoleStoreCashier},
		features:   []Feature{FeatureQuickBlockIP, FeaturePlatformOverview, FeatureDecisionAudit},
	},
	domain.RoleSuperManager: {
		role: domain.RoleSuperManager,
		nav: []domain.NavSection{
			domain.NavDashboard, domain.NavTransactions, domain.NavPlatforms, domain.NavMerchants,
			domain.NavUsers, domain.NavBlockedIPs, domain.NavActivityLogs,
		},
		grants: grants{
			domain.ResourceMerchant: {
				domain.ActionView:         GrantAll,
				domain.ActionEdit:         GrantAll,
				domain.ActionToggleStatus: GrantAll,
			},
			domain.ResourceUser:        crud(GrantAll),
			domain.ResourceTransaction: viewOnly(GrantAll),
			domain.ResourceBlockedIP:   crud(GrantAll),
			domain.ResourcePlatform:    crud(GrantAll),
			domain.ResourceActivityLog: viewOnly(GrantAll),
		},
		fields: map[domain.Resource][]domain.Field{
			domain.ResourceMerchant:  without(merchantFieldsAll, domain.FieldMerchantAPIKey),
			domain.ResourceUser:      userFieldsAll,
			domain.ResourceBlockedIP: blockedIPFieldsAll,
			domain.ResourcePlatform:  platformFields,
		},
		assignable: []domain.Role{domain.RoleSuperManager, domain.RoleStoreAdmin, domain.RoleStoreManager, domain.RoleStoreCashier},
		deletable:  []domain.Role{domain.RoleSuperManager, domain.RoleStoreAdmin, domain.RoleStoreManager, domain.RoleStoreCashier},
		features:   []Feature{FeatureQuickBlockIP, FeaturePlatformOverview},
	},
	domain.RoleStoreAdmin: {
		role: domain.RoleStoreAdmin,
		nav: []domain.NavSection{
			domain.NavDashboard, domain.NavTransactions, domain.NavMerchants,
			domain.NavBlockedIPs, domain.NavUsers, domain.NavActivityLogs,
		},
		grants: grants{
			domain.ResourceMerchant: {
				domain.ActionView: GrantOwn,
				domain.ActionEdit: GrantOwn,
			},
			domain.ResourceUser: {
				domain.ActionView:           GrantOwn,
				domain.ActionCreate:         GrantOwn,
				domain.ActionEdit:           GrantOwn,
				domain.ActionDelete:         GrantOwn,
				domain.ActionChangePassword: GrantOwn,
			},
			domain.ResourceTransaction: viewOnly(GrantOwn),
			domain.ResourceBlockedIP:   crud(GrantOwn),
			domain.ResourceActivityLog: viewOnly(GrantOwn),
		},
		fields: map[domain.Resource][]domain.Field{
			domain.ResourceMerchant:  merchantFieldsHub,
			domain.ResourceUser:      userFieldsHub,
			domain.ResourceBlockedIP: blockedIPFieldsHub,
		},
		assignable: []domain.Role{domain.RoleStoreAdmin, domain.RoleStoreManager, domain.RoleStoreCashier},
		deletable:  []domain.Role{domain.RoleStoreAdmin, domain.RoleStoreManager, domain.RoleStoreCashier},
		passwords:  []domain.Role{domain.RoleStoreManager, domain.RoleStoreCashier},
		features:   []Feature{FeatureMerchantBalance, FeatureQuickBlockIP, FeatureMerchantFunds},
	},
	domain.RoleStoreManager: {
		role: domain.RoleStoreManager,
		nav: []domain.NavSection{
			domain.NavDashboard, domain.NavTransactions, domain.NavMerchants,
			domain.NavBlockedIPs, domain.NavUsers,
		},
		grants: grants{
			domain.ResourceMerchant: {
				domain.ActionView: GrantOwn,
				domain.ActionEdit: GrantOwn,
			},
			domain.ResourceUser: {
				domain.ActionView:           GrantOwn,
				domain.ActionCreate:         GrantOwn,
				domain.ActionEdit:           GrantOwn,
				domain.ActionChangePassword: GrantOwn,
			},
			domain.ResourceTransaction: viewOnly(GrantOwn),
			domain.ResourceBlockedIP:   crud(GrantOwn),
		},
		fields: map[domain.Resource][]domain.Field{
			domain.ResourceMerchant:  merchantFieldsHub,
			domain.ResourceUser:      userFieldsHub,
			domain.ResourceBlockedIP: blockedIPFieldsHub,
		},
		assignable: []domain.Role{domain.RoleStoreManager, domain.RoleStoreCashier},
		passwords:  []domain.Role{domain.RoleStoreCashier},
		features:   []Feature{FeatureQuickBlockIP},
	},
	domain.RoleStoreCashier: {
		role: domain.RoleStoreCashier,
		nav:  []domain.NavSection{domain.NavDashboard, domain.NavTransactions},
		grants: grants{
			domain.ResourceTransaction: viewOnly(GrantOwn),
		},
		fields: map[domain.Resource][]domain.Field{},
	},
}

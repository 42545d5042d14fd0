package domain

import (
	"time"
)

// User is a console account managed through the user screens.
type User struct {
	ID               string    `json:"_id"`
	Email            string    `json:"email"`
	Role             Role      `json:"role"`
	Merchant         OwnerRef  `json:"merchantId"`
	TelegramUsername string    `json:"telegramUsername,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
}

// Instance returns the policy view of the account.
func (u *User) Instance() *Instance {
	return &Instance{ID: u.ID, Kind: ResourceUser, Owner: u.Merchant.Owner(), TargetRole: u.Role}
}

package domain

import "time"

// Session binds a console principal to the backend token issued at login.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// PrincipalFromUser derives the acting principal from the backend's user
// record. Super roles never carry a hub.
func PrincipalFromUser(u *User) Principal {
	p := Principal{
		UserID: u.ID,
		Email:  u.Email,
		Role:   ParseRole(string(u.Role)),
	}
	if !p.Role.IsSuper() {
		p.MerchantID = u.Merchant.ID
	}
	return p
}

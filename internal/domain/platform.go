package domain

import "time"

// Platform is a game platform hubs can link to.
type Platform struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Instance returns the policy view. Platforms are platform-wide.
func (p *Platform) Instance() *Instance {
	return &Instance{ID: p.ID, Kind: ResourcePlatform, Owner: GlobalOwner()}
}

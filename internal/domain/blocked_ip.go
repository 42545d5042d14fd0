package domain

import "time"

// Actor is the user recorded as having performed an action.
type Actor struct {
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// BlockedIP is an address blocked either for a set of hubs or platform-wide.
type BlockedIP struct {
	ID            string    `json:"_id"`
	IP            string    `json:"ip"`
	BlockedForAll bool      `json:"blockedForAll"`
	Merchants     OwnerRefs `json:"merchantIds"`
	Reason        string    `json:"reason,omitempty"`
	CreatedBy     *Actor    `json:"createdBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// Owner returns global for platform-wide blocks, otherwise the listed hubs.
func (b *BlockedIP) Owner() Owner {
	if b.BlockedForAll {
		return GlobalOwner()
	}
	return b.Merchants.Owner()
}

// Instance returns the policy view of the block.
func (b *BlockedIP) Instance() *Instance {
	return &Instance{ID: b.ID, Kind: ResourceBlockedIP, Owner: b.Owner(), BlockedForAll: b.BlockedForAll}
}

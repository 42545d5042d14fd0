package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// OwnerKind tags the shape of an ownership field.
type OwnerKind uint8

const (
	// OwnerUnknown is the zero value: missing or unrecognized shape.
	OwnerUnknown OwnerKind = iota
	// OwnerSingle is owned by exactly one hub.
	OwnerSingle
	// OwnerMany is owned by a set of hubs (possibly empty).
	OwnerMany
	// OwnerGlobal applies platform-wide.
	OwnerGlobal
)

func (k OwnerKind) String() string {
	switch k {
	case OwnerSingle:
		return "single"
	case OwnerMany:
		return "many"
	case OwnerGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Owner is the normalized ownership of a resource instance. Ids are bare hub
// identifiers; populated sub-objects are reduced to their id on construction.
type Owner struct {
	kind OwnerKind
	ids  []string
}

// SingleOwner builds an owner for one hub. A blank id yields an unknown owner.
func SingleOwner(id string) Owner {
	id = strings.TrimSpace(id)
	if id == "" {
		return Owner{}
	}
	return Owner{kind: OwnerSingle, ids: []string{id}}
}

// ManyOwners builds an owner for a set of hubs. Blank ids are dropped.
func ManyOwners(ids ...string) Owner {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return Owner{kind: OwnerMany, ids: out}
}

// GlobalOwner builds a platform-wide owner.
func GlobalOwner() Owner {
	return Owner{kind: OwnerGlobal}
}

// Kind returns the owner's shape.
func (o Owner) Kind() OwnerKind {
	return o.kind
}

// IsGlobal reports whether the owner is platform-wide.
func (o Owner) IsGlobal() bool {
	return o.kind == OwnerGlobal
}

// IDs returns a copy of the owning hub ids.
func (o Owner) IDs() []string {
	out := make([]string, len(o.ids))
	copy(out, o.ids)
	return out
}

// Includes reports whether the hub id is one of the owners. Global and
// unknown owners never include a specific hub.
func (o Owner) Includes(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	if o.kind != OwnerSingle && o.kind != OwnerMany {
		return false
	}
	for _, own := range o.ids {
		if own == id {
			return true
		}
	}
	return false
}

// MarshalJSON renders the owner as {"kind": ..., "ids": [...]}.
func (o Owner) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string   `json:"kind"`
		IDs  []string `json:"ids,omitempty"`
	}{Kind: o.kind.String(), IDs: o.ids})
}

// NormalizeID reduces an id field to a bare identifier. It accepts a string,
// a JSON number, or an embedded object carrying "_id" or "id".
func NormalizeID(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		t = strings.TrimSpace(t)
		return t, t != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case map[string]any:
		if id, ok := t["_id"]; ok {
			return NormalizeID(id)
		}
		if id, ok := t["id"]; ok {
			return NormalizeID(id)
		}
		return "", false
	case OwnerRef:
		return t.ID, t.ID != ""
	case *OwnerRef:
		if t == nil {
			return "", false
		}
		return t.ID, t.ID != ""
	default:
		return "", false
	}
}

// OwnerFromValue classifies a decoded ownership field. Arrays become a
// many-owner (unrecognized elements are dropped); a single id or embedded
// object becomes a single owner; anything else is unknown.
func OwnerFromValue(v any) Owner {
	if v == nil {
		return Owner{}
	}
	if list, ok := v.([]any); ok {
		ids := make([]string, 0, len(list))
		for _, item := range list {
			if id, ok := NormalizeID(item); ok {
				ids = append(ids, id)
			}
		}
		return ManyOwners(ids...)
	}
	if list, ok := v.([]string); ok {
		return ManyOwners(list...)
	}
	if id, ok := NormalizeID(v); ok {
		return SingleOwner(id)
	}
	return Owner{}
}

// ParseOwnerField decodes a raw ownership field. When blockedForAll is set the
// owner is global regardless of the listed hubs.
func ParseOwnerField(raw json.RawMessage, blockedForAll bool) Owner {
	if blockedForAll {
		return GlobalOwner()
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Owner{}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Owner{}
	}
	return OwnerFromValue(v)
}

// OwnerRef decodes a hub reference that arrives either as a bare id or as a
// populated {_id, name, subdomain} object.
type OwnerRef struct {
	ID        string `json:"_id"`
	Name      string `json:"name,omitempty"`
	Subdomain string `json:"subdomain,omitempty"`
}

// UnmarshalJSON accepts a string, a number, an object, or null.
func (r *OwnerRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = OwnerRef{}
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			ID        any    `json:"_id"`
			AltID     any    `json:"id"`
			Name      string `json:"name"`
			Subdomain string `json:"subdomain"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		id, ok := NormalizeID(obj.ID)
		if !ok {
			id, _ = NormalizeID(obj.AltID)
		}
		*r = OwnerRef{ID: id, Name: obj.Name, Subdomain: obj.Subdomain}
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	id, _ := NormalizeID(v)
	*r = OwnerRef{ID: id}
	return nil
}

// MarshalJSON renders null for an empty reference.
func (r OwnerRef) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	type plain OwnerRef
	return json.Marshal(plain(r))
}

// Owner converts the reference into a single owner.
func (r OwnerRef) Owner() Owner {
	return SingleOwner(r.ID)
}

// OwnerRefs is a list of hub references in either wire shape.
type OwnerRefs []OwnerRef

// IDs returns the bare ids, skipping unrecognized entries.
func (rs OwnerRefs) IDs() []string {
	ids := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Owner converts the references into a many-owner.
func (rs OwnerRefs) Owner() Owner {
	return ManyOwners(rs.IDs()...)
}

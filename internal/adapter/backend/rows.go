package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/searn/hubadmin/internal/domain"
)

// rowKeys are the envelope keys the remote API wraps lists in, in lookup
// order.
var rowKeys = []string{"data", "rows", "items", "result"}

// decodeRows decodes a list reply. The list may be the whole body or sit
// one or two envelopes deep, e.g. {"data": {"rows": [...]}}. A body with no
// recognizable list yields an empty slice.
func decodeRows[T any](body []byte) ([]*T, error) {
	raw := findRows(bytes.TrimSpace(body), 0)
	if raw == nil {
		return []*T{}, nil
	}
	var rows []*T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode rows: %v", domain.ErrBackendError, err)
	}
	out := rows[:0]
	for _, r := range rows {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func findRows(raw json.RawMessage, depth int) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '[' {
		return raw
	}
	if raw[0] != '{' || depth > 1 {
		return nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}
	keys := rowKeys
	if depth == 0 {
		keys = append(keys[:len(keys):len(keys)], "payload")
	}
	for _, k := range keys {
		if v, ok := env[k]; ok {
			if rows := findRows(bytes.TrimSpace(v), depth+1); rows != nil {
				return rows
			}
		}
	}
	return nil
}

package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID string `json:"id"`
}

func TestDecodeRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`, 2},
		{"data envelope", `{"data":[{"id":"a"}]}`, 1},
		{"rows envelope", `{"rows":[{"id":"a"}],"total":1}`, 1},
		{"items envelope", `{"items":[{"id":"a"}]}`, 1},
		{"result envelope", `{"result":[{"id":"a"}]}`, 1},
		{"nested data rows", `{"data":{"rows":[{"id":"a"},{"id":"b"}]}}`, 2},
		{"nested payload items", `{"payload":{"items":[{"id":"a"}]}}`, 1},
		{"null entries dropped", `[{"id":"a"},null]`, 1},
		{"no list", `{"ok":true}`, 0},
		{"empty body", ``, 0},
		{"too deep", `{"data":{"data":{"rows":[{"id":"a"}]}}}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rows, err := decodeRows[row]([]byte(tt.body))
			require.NoError(t, err)
			assert.NotNil(t, rows)
			assert.Len(t, rows, tt.want)
		})
	}
}

func TestDecodeRowsRejectsBadElements(t *testing.T) {
	t.Parallel()

	_, err := decodeRows[row]([]byte(`[1,2]`))
	assert.Error(t, err)
}

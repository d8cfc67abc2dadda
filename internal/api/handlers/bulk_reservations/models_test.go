package bulk_reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkRequest_ParseIDs(t *testing.T) {
	tests := []struct {
		name        string
		ids         string
		expected    []int64
		invalid     int
		expectError bool
	}{
		{"plain list", "1,2,3", []int64{1, 2, 3}, 0, false},
		{"whitespace tolerated", " 1 , 2 ", []int64{1, 2}, 0, false},
		{"malformed token does not abort the batch", "1,abc,3", []int64{1, 3}, 1, false},
		{"non-positive ids are counted as invalid", "0,-5,7", []int64{7}, 2, false},
		{"all tokens invalid", "abc,xyz", []int64{}, 2, false},
		{"empty string", "", nil, 0, true},
		{"only separators", ",,", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &BulkRequest{IDs: tt.ids}

			ids, invalid, err := req.ParseIDs()

			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
			assert.Equal(t, tt.invalid, invalid)
		})
	}
}

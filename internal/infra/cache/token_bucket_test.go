//go:build unit

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		name    string
		vals    any
		want    Decision
		wantErr bool
	}{
		{
			name: "allowed",
			vals: []any{int64(1), int64(59), int64(0)},
			want: Decision{Allowed: true, Limit: 60, Remaining: 59},
		},
		{
			name: "blocked with retry",
			vals: []any{int64(0), int64(0), int64(1500)},
			want: Decision{Allowed: false, Limit: 60, Remaining: 0, RetryAfter: 1500 * time.Millisecond},
		},
		{
			name: "string encoded numbers",
			vals: []any{"1", "3", "0"},
			want: Decision{Allowed: true, Limit: 60, Remaining: 3},
		},
		{name: "wrong arity", vals: []any{int64(1)}, wantErr: true},
		{name: "not an array", vals: "OK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDecision(tt.vals, 60)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

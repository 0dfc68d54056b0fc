package lexspan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/ulight/ucode"
)

func TestMatchDigits(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		base          int
		wantLength    int
		wantErroneous bool
	}{
		{"plain", "123x", 10, 3, false},
		{"separated", "1_000", 10, 5, false},
		{"leading underscore", "_1", 10, 2, true},
		{"trailing underscore", "1_", 10, 2, true},
		{"double underscore", "1__2", 10, 4, true},
		{"hex", "ffZ", 16, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchDigits([]byte(tt.in), tt.base, ucode.Default)
			assert.Equal(t, tt.wantLength, got.Length)
			assert.Equal(t, tt.wantErroneous, got.Erroneous)
		})
	}
}

func TestMatchNumericLiteral(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		wantLength    int
		wantErroneous bool
		wantMatched   bool
	}{
		{"integer", "42rest", 2, false, true},
		{"hex", "0x1F", 4, false, true},
		{"octal", "0o17", 4, false, true},
		{"binary erroneous digit", "0b12", 4, true, true},
		{"bigint", "1_000_000n", 10, false, true},
		{"fraction no leading digit", ".5", 2, false, true},
		{"dot alone not a number", ".x", 0, false, false},
		{"trailing dot", "1.", 2, false, true},
		{"exponent", "1e10", 4, false, true},
		{"exponent with sign", "1e-10", 5, false, true},
		{"exponent missing digits", "1e", 2, true, true},
		{"bigint with fraction is erroneous", "1.5n", 4, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchNumericLiteral([]byte(tt.in), ucode.Default)
			assert.Equal(t, tt.wantMatched, got.Matched())
			if tt.wantMatched {
				assert.Equal(t, tt.wantLength, got.Length)
				assert.Equal(t, tt.wantErroneous, got.Erroneous)
			}
		})
	}
}

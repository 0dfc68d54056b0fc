package lexspan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ulight/token"
	"github.com/example/ulight/ucode"
)

func TestMatchOperatorOrPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want token.TokenType
	}{
		{"===x", token.StrictEqual},
		{"==x", token.Equal},
		{"=x", token.Assign},
		{"=>x", token.Arrow},
		{">>>=x", token.UnsignedRightShiftEqual},
		{">>>x", token.UnsignedRightShift},
		{">>=x", token.RightShiftEqual},
		{">>x", token.RightShift},
		{">=x", token.GreaterEqual},
		{">x", token.GreaterThan},
		{"??=x", token.NullishCoalescingEqual},
		{"??x", token.NullishCoalescing},
		{"?.x", token.OptionalChaining},
		{"?x", token.Conditional},
		{"...x", token.Ellipsis},
		{".x", token.Dot},
		{"&&=x", token.LogicalAndEqual},
		{"&&x", token.LogicalAnd},
		{"&=x", token.BitwiseAndEqual},
		{"&x", token.BitwiseAnd},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := MatchOperatorOrPunctuation([]byte(tt.in))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchOperatorOrPunctuation_none(t *testing.T) {
	_, ok := MatchOperatorOrPunctuation([]byte("abc"))
	assert.False(t, ok)
	_, ok = MatchOperatorOrPunctuation(nil)
	assert.False(t, ok)
}

func TestMatchRegex(t *testing.T) {
	r := MatchRegex([]byte("/a\\/b[/]c/gi rest"), ucode.Default, ucode.DefaultDecoder)
	require.True(t, r.Matched())
	assert.True(t, r.Terminated)
	assert.Equal(t, 10, r.Body)
	assert.Equal(t, 2, r.Flags)

	unterminated := MatchRegex([]byte("/abc\ndef"), ucode.Default, ucode.DefaultDecoder)
	assert.False(t, unterminated.Terminated)
}

package ucode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJSWhitespace(t *testing.T) {
	cc := ASCIIUnicode{}
	assert.True(t, cc.IsJSWhitespace(' '))
	assert.True(t, cc.IsJSWhitespace('\t'))
	assert.True(t, cc.IsJSWhitespace(nbsp))
	assert.False(t, cc.IsJSWhitespace('x'))
}

func TestIsJSIdentifier(t *testing.T) {
	cc := ASCIIUnicode{}
	assert.True(t, cc.IsJSIdentifierStart('$'))
	assert.True(t, cc.IsJSIdentifierStart('_'))
	assert.True(t, cc.IsJSIdentifierStart('a'))
	assert.False(t, cc.IsJSIdentifierStart('1'))
	assert.True(t, cc.IsJSIdentifierPart('1'))
	assert.False(t, cc.IsJSIdentifierPart(' '))
}

func TestIsASCIIDigitBase(t *testing.T) {
	cc := ASCIIUnicode{}
	assert.True(t, cc.IsASCIIDigitBase('1', 2))
	assert.False(t, cc.IsASCIIDigitBase('2', 2))
	assert.True(t, cc.IsASCIIDigitBase('7', 8))
	assert.False(t, cc.IsASCIIDigitBase('8', 8))
	assert.True(t, cc.IsASCIIDigitBase('f', 16))
	assert.True(t, cc.IsASCIIDigitBase('F', 16))
	assert.False(t, cc.IsASCIIDigitBase('g', 16))
}

func TestUTF8Decoder(t *testing.T) {
	r, size, ok := UTF8{}.Decode([]byte("é"))
	assert.True(t, ok)
	assert.Equal(t, 2, size)
	assert.Equal(t, 'é', r)

	_, _, ok = UTF8{}.Decode(nil)
	assert.False(t, ok)
}

package lexspan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/ulight/ucode"
)

func TestMatchIdentifier(t *testing.T) {
	assert.Equal(t, 5, MatchIdentifier([]byte("hello world"), ucode.Default, ucode.DefaultDecoder))
	assert.Equal(t, 4, MatchIdentifier([]byte("$_a1-b"), ucode.Default, ucode.DefaultDecoder))
	assert.Equal(t, 0, MatchIdentifier([]byte("1abc"), ucode.Default, ucode.DefaultDecoder))
}

func TestMatchJSXIdentifier(t *testing.T) {
	assert.Equal(t, 6, MatchJSXIdentifier([]byte("data-x rest"), ucode.Default, ucode.DefaultDecoder))
}

func TestMatchJSXElementName(t *testing.T) {
	assert.Equal(t, 11, MatchJSXElementName([]byte("Foo.Bar.Baz>"), ucode.Default, ucode.DefaultDecoder))
	assert.Equal(t, 8, MatchJSXElementName([]byte("svg:rect "), ucode.Default, ucode.DefaultDecoder))
}

func TestMatchJSXAttributeName(t *testing.T) {
	assert.Equal(t, 8, MatchJSXAttributeName([]byte("xml:lang="), ucode.Default, ucode.DefaultDecoder))
	// Attribute names do not chain with '.'.
	assert.Equal(t, 3, MatchJSXAttributeName([]byte("foo.bar="), ucode.Default, ucode.DefaultDecoder))
}

func TestMatchPrivateIdentifier(t *testing.T) {
	assert.Equal(t, 4, MatchPrivateIdentifier([]byte("#abc = 1"), ucode.Default, ucode.DefaultDecoder))
	assert.Equal(t, 0, MatchPrivateIdentifier([]byte("#"), ucode.Default, ucode.DefaultDecoder))
	assert.Equal(t, 0, MatchPrivateIdentifier([]byte("abc"), ucode.Default, ucode.DefaultDecoder))
}

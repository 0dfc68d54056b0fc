package jsonout

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ulight/highlight"
	"github.com/example/ulight/token"
)

func TestRender(t *testing.T) {
	tokens := []highlight.Token{
		{Begin: 0, Length: 3, Kind: token.KindID},
		{Begin: 4, Length: 1, Kind: token.KindSymOp},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []byte("abc =y"), tokens))
	got := buf.String()
	assert.Contains(t, got, `"begin":0`)
	assert.Contains(t, got, `"kind":"id"`)
	assert.Contains(t, got, `"kind":"sym-op"`)
}

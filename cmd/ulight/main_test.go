package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRootCmd_ansiDefault(t *testing.T) {
	got := runCmd(t, "let x = 1;")
	assert.Contains(t, got, "\x1b[")
}

func TestRootCmd_jsonFormat(t *testing.T) {
	got := runCmd(t, "let x = 1;", "--format", "json")
	assert.Contains(t, got, `"kind"`)
}

func TestRootCmd_htmlFormat(t *testing.T) {
	got := runCmd(t, "let x = 1;", "-f", "html")
	assert.Contains(t, got, "<span")
}

func TestRootCmd_langJSDisablesJSX(t *testing.T) {
	got := runCmd(t, "a<b>c", "-f", "json", "-l", "js")
	assert.Contains(t, got, `"kind":"sym-op"`)
}

func TestRootCmd_unknownFormat(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(bytes.NewBufferString("x"))
	cmd.SetArgs([]string{"--format", "bogus"})
	err := cmd.Execute()
	assert.Error(t, err)
}

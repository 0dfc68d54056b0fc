package lexspan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/ulight/ucode"
)

func TestMatchWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"spaces", "   x", 3},
		{"tab and nbsp", "\t x", 3},
		{"none", "x", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchWhitespace([]byte(tt.in), ucode.Default, ucode.DefaultDecoder)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchLineComment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"to eol", "// hi\nrest", 5},
		{"to eof", "// hi", 5},
		{"not a comment", "/ hi", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchLineComment([]byte(tt.in)))
		})
	}
}

func TestMatchBlockComment(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantLength   int
		wantTerminated bool
	}{
		{"terminated", "/* hi */x", 8, true},
		{"unterminated", "/* hi", 5, false},
		{"not a comment", "/ hi", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchBlockComment([]byte(tt.in))
			assert.Equal(t, tt.wantLength, got.Length)
			assert.Equal(t, tt.wantTerminated, got.IsTerminated)
		})
	}
}

func TestMatchHashbangComment(t *testing.T) {
	assert.Equal(t, 8, MatchHashbangComment([]byte("#!/bin/x\n"), true))
	assert.Equal(t, 0, MatchHashbangComment([]byte("#!/bin/x\n"), false))
	assert.Equal(t, 0, MatchHashbangComment([]byte("x"), true))
}

func TestMatchLineTerminatorSequence(t *testing.T) {
	assert.Equal(t, 2, MatchLineTerminatorSequence([]byte("\r\n")))
	assert.Equal(t, 1, MatchLineTerminatorSequence([]byte("\n")))
	assert.Equal(t, 3, MatchLineTerminatorSequence([]byte(" ")))
	assert.Equal(t, 3, MatchLineTerminatorSequence([]byte(" ")))
	assert.Equal(t, 0, MatchLineTerminatorSequence([]byte("x")))
}

func TestMatchLineContinuation(t *testing.T) {
	assert.Equal(t, 2, MatchLineContinuation([]byte("\\\nrest")))
	assert.Equal(t, 0, MatchLineContinuation([]byte("\\x")))
}

func TestMatchWhitespaceCommentSequence(t *testing.T) {
	in := "  // c\n/* d */  x"
	got := MatchWhitespaceCommentSequence([]byte(in))
	assert.Equal(t, len(in)-len("x"), got)
}

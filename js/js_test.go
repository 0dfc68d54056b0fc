package js

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/example/ulight/sink"
	"github.com/example/ulight/token"
)

// span is a compact (kind, text) pair used to describe expected token
// sequences without hard-coding byte offsets.
type span struct {
	Kind token.HighlightKind
	Text string
}

func highlightAll(t *testing.T, source string, opts Options) []span {
	t.Helper()
	buf := sink.NewBuffer(make([]token.Token, 0, len(source)+1), opts.Coalescing)
	ok := Highlight(context.Background(), buf, []byte(source), opts)
	require.True(t, ok)
	spans := make([]span, 0, len(buf.Tokens()))
	for _, tok := range buf.Tokens() {
		spans = append(spans, span{Kind: tok.Kind, Text: source[tok.Begin:tok.End()]})
	}
	return spans
}

func TestHighlight_keywordsAndIdentifiers(t *testing.T) {
	got := highlightAll(t, "let x = 1;", Options{})
	want := []span{
		{token.KindKeywordOther, "let"},
		{token.KindID, "x"},
		{token.KindSymOp, "="},
		{token.KindNumber, "1"},
		{token.KindSymPunc, ";"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestHighlight_regexVsDivide(t *testing.T) {
	got := highlightAll(t, "return /abc/g;", Options{})
	want := []span{
		{token.KindKeywordControl, "return"},
		{token.KindString, "/abc/g"},
		{token.KindSymPunc, ";"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	got = highlightAll(t, "a / b / c;", Options{})
	want = []span{
		{token.KindID, "a"},
		{token.KindSymOp, "/"},
		{token.KindID, "b"},
		{token.KindSymOp, "/"},
		{token.KindID, "c"},
		{token.KindSymPunc, ";"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestHighlight_numericBoundaryCases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind token.HighlightKind
	}{
		{"erroneous binary digit", "0b12", token.KindError},
		{"bigint with separators", "1_000_000n", token.KindNumber},
		{"double separator", "1__2", token.KindError},
		{"leading dot fraction", ".5", token.KindNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := highlightAll(t, tt.in, Options{})
			require.Len(t, got, 1)
			require.Equal(t, tt.kind, got[0].Kind)
			require.Equal(t, tt.in, got[0].Text)
		})
	}
}

func TestHighlight_dotIsNotANumber(t *testing.T) {
	got := highlightAll(t, "a.b", Options{})
	want := []span{
		{token.KindID, "a"},
		{token.KindSymPunc, "."},
		{token.KindID, "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestHighlight_unterminatedString(t *testing.T) {
	got := highlightAll(t, `"abc`, Options{})
	want := []span{
		{token.KindStringDelim, `"`},
		{token.KindString, "abc"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestHighlight_templateSubstitution(t *testing.T) {
	got := highlightAll(t, "`a${1 + x}b`", Options{})
	want := []span{
		{token.KindStringDelim, "`"},
		{token.KindString, "a"},
		{token.KindEscape, "${"},
		{token.KindNumber, "1"},
		{token.KindSymOp, "+"},
		{token.KindID, "x"},
		{token.KindEscape, "}"},
		{token.KindString, "b"},
		{token.KindStringDelim, "`"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestHighlight_jsxElement(t *testing.T) {
	got := highlightAll(t, `const el = <div id="x">hi {1}</div>;`, Options{})
	want := []span{
		{token.KindKeywordOther, "const"},
		{token.KindID, "el"},
		{token.KindSymOp, "="},
		{token.KindSymPunc, "<"},
		{token.KindMarkupTag, "div"},
		{token.KindMarkupTag, "id"},
		{token.KindSymPunc, "="},
		{token.KindStringDelim, `"`},
		{token.KindString, "x"},
		{token.KindStringDelim, `"`},
		{token.KindSymPunc, ">"},
		{token.KindSymBrace, "{"},
		{token.KindNumber, "1"},
		{token.KindSymBrace, "}"},
		{token.KindSymPunc, "</"},
		{token.KindMarkupTag, "div"},
		{token.KindSymPunc, ">"},
		{token.KindSymPunc, ";"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestHighlight_jsxDisabledForPlainJS(t *testing.T) {
	got := highlightAll(t, "a<b>c", Options{DisableJSX: true})
	want := []span{
		{token.KindID, "a"},
		{token.KindSymOp, "<"},
		{token.KindID, "b"},
		{token.KindSymOp, ">"},
		{token.KindID, "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestHighlight_coalescing(t *testing.T) {
	withCoalescing := highlightAll(t, "abc def", Options{Coalescing: true})
	require.Len(t, withCoalescing, 2)
}

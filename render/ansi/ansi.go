// Package ansi renders a highlighted document for terminal preview,
// wrapping each token in an ANSI SGR escape sequence. Zero-dependency
// by design, for a "just look at it" CLI output mode that doesn't need
// a browser.
package ansi

import (
	"io"

	"github.com/example/ulight/highlight"
	"github.com/example/ulight/token"
)

const reset = "\x1b[0m"

var sgr = [...]string{
	token.KindError:            "\x1b[1;97;41m", // bold white on red
	token.KindKeywordType:      "\x1b[35m",       // magenta
	token.KindKeywordControl:   "\x1b[35m",
	token.KindKeywordOther:     "\x1b[35m",
	token.KindID:               "",
	token.KindNumber:           "\x1b[33m", // yellow
	token.KindString:           "\x1b[32m", // green
	token.KindStringDelim:      "\x1b[32m",
	token.KindEscape:           "\x1b[36m", // cyan
	token.KindComment:          "\x1b[90m", // bright black
	token.KindCommentDelimiter: "\x1b[90m",
	token.KindSymPunc:          "",
	token.KindSymBrace:         "",
	token.KindSymOp:            "\x1b[34m", // blue
	token.KindMarkupTag:        "\x1b[31m", // red
}

// Render writes source to w, wrapping each token in tokens with the SGR
// sequence for its HighlightKind.
func Render(w io.Writer, source []byte, tokens []highlight.Token) error {
	pos := uint32(0)
	for _, t := range tokens {
		if t.Begin > pos {
			if _, err := w.Write(source[pos:t.Begin]); err != nil {
				return err
			}
		}
		seq := sgr[t.Kind]
		if seq != "" {
			if _, err := io.WriteString(w, seq); err != nil {
				return err
			}
		}
		if _, err := w.Write(source[t.Begin:t.End()]); err != nil {
			return err
		}
		if seq != "" {
			if _, err := io.WriteString(w, reset); err != nil {
				return err
			}
		}
		pos = t.End()
	}
	if int(pos) < len(source) {
		_, err := w.Write(source[pos:])
		return err
	}
	return nil
}

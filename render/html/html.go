// Package html renders a highlighted document as HTML, wrapping each
// token in a <span> tagged with its highlight kind's CSS class.
package html

import (
	"fmt"
	"html"
	"io"

	"github.com/example/ulight/highlight"
)

// Render writes source to w, wrapping each token in
// tokens in `<span class="ulight-{kind}">...</span>` and HTML-escaping
// all text content. Bytes of source not covered by any token (runs of
// whitespace the lexer does not tokenize) are escaped and written as-is
// between spans.
func Render(w io.Writer, source []byte, tokens []highlight.Token) error {
	pos := uint32(0)
	for _, t := range tokens {
		if t.Begin > pos {
			if err := writeEscaped(w, source[pos:t.Begin]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<span class="ulight-%s">`, t.Kind.CSSClass()); err != nil {
			return err
		}
		if err := writeEscaped(w, source[t.Begin:t.End()]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</span>"); err != nil {
			return err
		}
		pos = t.End()
	}
	if int(pos) < len(source) {
		return writeEscaped(w, source[pos:])
	}
	return nil
}

func writeEscaped(w io.Writer, b []byte) error {
	_, err := io.WriteString(w, html.EscapeString(string(b)))
	return err
}

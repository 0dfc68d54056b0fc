// Package highlight is the public entry point for highlighting
// JavaScript/JSX source. It re-exports the token and option types the
// js package's driver uses, so callers never need to import js
// directly.
package highlight

import (
	"context"

	"github.com/example/ulight/js"
	"github.com/example/ulight/sink"
	"github.com/example/ulight/token"
)

// Token is a highlighted span of source text.
type Token = token.Token

// HighlightKind is the presentational classification a Token carries.
type HighlightKind = token.HighlightKind

// Options configures a highlighting run. The zero value is valid.
type Options = js.Options

// Highlight scans source as JavaScript/JSX and emits tokens into s.
// It returns false only if ctx is canceled before the scan completes.
func Highlight(ctx context.Context, s sink.Sink, source []byte, opts Options) bool {
	return js.Highlight(ctx, s, source, opts)
}

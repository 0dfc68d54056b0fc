package js

import (
	"github.com/example/ulight/lexspan"
	"github.com/example/ulight/token"
)

// consumeSymbols matches an IdentifierName and classifies it as a
// keyword (via token.Lookup) or a plain identifier. Keywords that
// precede an expression (token.ExpressionKeywords) leave canBeRegex
// set; every other keyword behaves like an identifier and clears it,
// since both end an expression rather than starting one.
func (h *highlighter) consumeSymbols() bool {
	rest := h.remainder()
	n := lexspan.MatchIdentifier(rest, h.opts.charClasses(), h.opts.decoder())
	if n == 0 {
		return false
	}
	word := string(rest[:n])
	if t, ok := token.Lookup(word); ok {
		h.emit(n, token.Highlight(t), token.Source(t))
		h.canBeRegex = token.ExpressionKeywords[t]
		return true
	}
	h.emitCore(n, token.KindID)
	h.canBeRegex = false
	return true
}

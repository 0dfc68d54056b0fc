package js

import (
	"github.com/example/ulight/lexspan"
	"github.com/example/ulight/token"
)

// consumeStringLiteral handles a single- or double-quoted string.
func (h *highlighter) consumeStringLiteral() bool {
	rest := h.remainder()
	if len(rest) == 0 || (rest[0] != '\'' && rest[0] != '"') {
		return false
	}
	r := lexspan.MatchStringLiteral(rest)
	if !r.Matched() {
		return false
	}
	h.emitCore(1, token.KindStringDelim)
	body := r.Length - 1
	if r.Terminated {
		body--
	}
	h.emitCore(body, token.KindString)
	if r.Terminated {
		h.emitCore(1, token.KindStringDelim)
	}
	h.canBeRegex = false
	return true
}

// consumeNumericLiteral handles a numeric literal, marking the whole
// literal as erroneous if any of its segments were.
func (h *highlighter) consumeNumericLiteral() bool {
	r := lexspan.MatchNumericLiteral(h.remainder(), h.opts.charClasses())
	if !r.Matched() {
		return false
	}
	kind := token.KindNumber
	if r.Erroneous {
		kind = token.KindError
	}
	h.emitCore(r.Length, kind)
	h.canBeRegex = false
	return true
}

// consumePrivateIdentifier handles "#name" class-field references.
func (h *highlighter) consumePrivateIdentifier() bool {
	n := lexspan.MatchPrivateIdentifier(h.remainder(), h.opts.charClasses(), h.opts.decoder())
	if n == 0 {
		return false
	}
	h.emitCore(n, token.KindID)
	h.canBeRegex = false
	return true
}

// consumeRegex handles a RegularExpressionLiteral, only ever attempted
// when h.canBeRegex is true (i.e. a '/' here cannot be the divide
// operator).
func (h *highlighter) consumeRegex() bool {
	r := lexspan.MatchRegex(h.remainder(), h.opts.charClasses(), h.opts.decoder())
	if !r.Matched() {
		return false
	}
	h.emitCore(r.Length, token.KindString)
	h.canBeRegex = false
	return true
}

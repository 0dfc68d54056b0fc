package js

import (
	"github.com/example/ulight/lexspan"
	"github.com/example/ulight/token"
)

// matchAndEmitOperator matches and emits the longest operator or
// punctuation token at the scan position, updating canBeRegex from
// token.NonRegexOperators, and reports which TokenType it emitted.
func (h *highlighter) matchAndEmitOperator() (token.TokenType, bool) {
	t, ok := lexspan.MatchOperatorOrPunctuation(h.remainder())
	if !ok {
		return token.Illegal, false
	}
	h.emit(token.Length(t), token.Highlight(t), token.Source(t))
	h.canBeRegex = !token.NonRegexOperators[t]
	return t, true
}

// consumeOperatorOrPunctuation is matchAndEmitOperator without exposing
// which TokenType matched, for the main dispatch loop.
func (h *highlighter) consumeOperatorOrPunctuation() bool {
	_, ok := h.matchAndEmitOperator()
	return ok
}

// consumeBeforeClosingBrace scans and highlights JS content up to (but
// not including) the '}' that matches the brace already emitted by the
// caller, tracking nested '{'/'}' pairs so that object literals and
// blocks inside the expression don't terminate it early. Shared between
// template literal substitutions and JSX braced expressions.
func (h *highlighter) consumeBeforeClosingBrace() {
	depth := 0
	baseJSXDepth := h.jsxDepth
	for {
		if h.ctx.Err() != nil {
			return
		}
		rest := h.remainder()
		if len(rest) == 0 {
			return
		}
		if rest[0] == '}' && depth == 0 {
			return
		}

		// Content directly inside this brace is JS, not JSX children,
		// even though an enclosing element's jsxDepth is still nonzero.
		// Only route through consumeJSXChildren once a tag opened
		// inside this expression has pushed jsxDepth past its starting
		// value, meaning the scan is now inside that tag's own body.
		if h.jsxDepth > baseJSXDepth && h.consumeJSXChildren() {
			continue
		}
		if h.consumeWhitespaceOrComment() {
			continue
		}
		if h.consumeStringLiteral() {
			continue
		}
		if h.consumeTemplateLiteral() {
			continue
		}
		if h.consumePrivateIdentifier() {
			continue
		}
		if h.consumeNumericLiteral() {
			continue
		}
		if h.consumeSymbols() {
			continue
		}
		if h.consumeJSXTagIfApplicable() {
			continue
		}
		if h.canBeRegex && h.consumeRegex() {
			continue
		}
		if t, ok := h.matchAndEmitOperator(); ok {
			switch t {
			case token.LeftBrace:
				depth++
			case token.RightBrace:
				depth--
			}
			continue
		}

		h.consumeError()
	}
}

package js

import (
	"github.com/example/ulight/lexspan"
	"github.com/example/ulight/token"
)

// consumeTemplateLiteral handles a backtick-delimited template literal,
// recursing into the shared brace-scanning routine for each "${...}"
// substitution (the same routine JSX braced expressions use).
// https://262.ecma-international.org/15.0/index.html#sec-template-literal-lexical-components
func (h *highlighter) consumeTemplateLiteral() bool {
	rest := h.remainder()
	if len(rest) == 0 || rest[0] != '`' {
		return false
	}
	h.emitCore(1, token.KindStringDelim)
	h.canBeRegex = false

	for {
		rest = h.remainder()
		if len(rest) == 0 {
			return true
		}
		switch {
		case rest[0] == '`':
			h.emitCore(1, token.KindStringDelim)
			return true
		case rest[0] == '\\':
			if n := lexspan.MatchLineContinuation(rest); n != 0 {
				h.emitCore(1, token.KindEscape)
				h.emitCore(n-1, token.KindString)
				continue
			}
			h.emitCore(templateTextRun(rest), token.KindString)
		case len(rest) >= 2 && rest[0] == '$' && rest[1] == '{':
			h.emitCore(2, token.KindEscape)
			h.canBeRegex = true
			h.consumeBeforeClosingBrace()
			if r := h.remainder(); len(r) > 0 && r[0] == '}' {
				h.emitCore(1, token.KindEscape)
			}
			h.canBeRegex = false
		default:
			h.emitCore(templateTextRun(rest), token.KindString)
		}
	}
}

// templateTextRun returns the length of the longest run of literal
// template text before a backtick, "${", or a line-continuing
// backslash. A backslash that does not start a line continuation is
// ordinary text and stays part of the run.
func templateTextRun(s []byte) int {
	i := 0
	for i < len(s) {
		if s[i] == '`' {
			break
		}
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			break
		}
		if s[i] == '\\' && lexspan.MatchLineContinuation(s[i:]) != 0 {
			break
		}
		i++
	}
	if i == 0 {
		return 1
	}
	return i
}

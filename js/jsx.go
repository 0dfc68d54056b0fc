package js

import (
	"github.com/example/ulight/jsx"
	"github.com/example/ulight/lexspan"
	"github.com/example/ulight/token"
)

// emittingConsumer drives jsx.Consume, turning each grammar piece into
// emitted tokens. It mirrors the original's Matching_JSX_Tag_Consumer:
// unlike the lookahead-only countingConsumer in package jsx, it has
// access to the highlighter and recurses into consumeBeforeClosingBrace
// for braced attribute values.
type emittingConsumer struct{ h *highlighter }

func (c emittingConsumer) Whitespace(n int) { c.h.advance(n) }

func (c emittingConsumer) TagOpen(closing bool) {
	if closing {
		c.h.emitCore(2, token.KindSymPunc)
		return
	}
	c.h.emitCore(1, token.KindSymPunc)
}

func (c emittingConsumer) ElementName(n int) { c.h.emitCore(n, token.KindMarkupTag) }

func (c emittingConsumer) AttributeName(n int) { c.h.emitCore(n, token.KindMarkupTag) }

func (c emittingConsumer) AttributeEquals() { c.h.emitCore(1, token.KindSymPunc) }

func (c emittingConsumer) AttributeStringValue(r lexspan.StringLiteralResult) {
	h := c.h
	h.emitCore(1, token.KindStringDelim)
	body := r.Length - 1
	if r.Terminated {
		body--
	}
	h.emitCore(body, token.KindString)
	if r.Terminated {
		h.emitCore(1, token.KindStringDelim)
	}
}

// AttributeBracedValue ignores s: by the time matchTagImpl calls it,
// h.index has already tracked the walk in lockstep through every prior
// consumer callback, so h.remainder() already starts at the same '{'.
func (c emittingConsumer) AttributeBracedValue(s []byte) int {
	h := c.h
	start := h.index
	h.emitCore(1, token.KindSymBrace)
	savedCanBeRegex := h.canBeRegex
	h.canBeRegex = true
	h.consumeBeforeClosingBrace()
	h.canBeRegex = savedCanBeRegex
	if rest := h.remainder(); len(rest) > 0 && rest[0] == '}' {
		h.emitCore(1, token.KindSymBrace)
	}
	return int(h.index - start)
}

func (c emittingConsumer) SelfClosingSlash() { c.h.emitCore(1, token.KindSymPunc) }

func (c emittingConsumer) TagClose() { c.h.emitCore(1, token.KindSymPunc) }

// consumeJSXTagIfApplicable attempts to trial-parse a '<' at the scan
// position as the start of a top-level JSX element. Gated on
// canBeRegex, the same "an expression is expected here" heuristic used
// to disambiguate regex literals from the divide operator, so that
// "a<b>c" still parses as comparisons rather than a misidentified tag.
func (h *highlighter) consumeJSXTagIfApplicable() bool {
	if h.opts.DisableJSX || !h.canBeRegex {
		return false
	}
	rest := h.remainder()
	if len(rest) == 0 || rest[0] != '<' {
		return false
	}
	if !jsx.MatchTag(rest, jsx.SubsetNonClosing).Matched() {
		return false
	}
	r := jsx.Consume(rest, jsx.SubsetNonClosing, emittingConsumer{h: h})
	if !r.Matched() {
		return false
	}
	if r.Type != jsx.TagSelfClosing {
		h.jsxDepth++
	}
	h.canBeRegex = false
	return true
}

// consumeJSXChildren scans one piece of JSX element content: an HTML
// character reference, literal text, a braced expression, a nested
// child element, or this element's own closing tag (which decrements
// jsxDepth). Only called while jsxDepth > 0.
func (h *highlighter) consumeJSXChildren() bool {
	rest := h.remainder()
	if len(rest) == 0 {
		return false
	}
	switch {
	case rest[0] == '&':
		if n := h.opts.htmlref().Match(rest); n > 0 {
			h.emitCore(n, token.KindEscape)
			return true
		}
		h.advance(1)
		return true

	case rest[0] == '{':
		h.emitCore(1, token.KindSymBrace)
		savedCanBeRegex := h.canBeRegex
		h.canBeRegex = true
		h.consumeBeforeClosingBrace()
		h.canBeRegex = savedCanBeRegex
		if r := h.remainder(); len(r) > 0 && r[0] == '}' {
			h.emitCore(1, token.KindSymBrace)
		}
		return true

	case rest[0] == '<' && len(rest) > 1 && rest[1] == '/':
		r := jsx.Consume(rest, jsx.SubsetAll, emittingConsumer{h: h})
		if r.Matched() {
			h.jsxDepth--
			return true
		}
		h.emitCore(2, token.KindError)
		return true

	case rest[0] == '<':
		if jsx.MatchTag(rest, jsx.SubsetNonClosing).Matched() {
			r := jsx.Consume(rest, jsx.SubsetNonClosing, emittingConsumer{h: h})
			if r.Matched() {
				if r.Type != jsx.TagSelfClosing {
					h.jsxDepth++
				}
				return true
			}
		}
		h.emitCore(1, token.KindError)
		return true

	case rest[0] == '>':
		h.emitCore(1, token.KindError)
		return true

	case rest[0] == '}':
		h.emitCore(1, token.KindError)
		return true

	default:
		h.advance(jsxTextRun(rest))
		return true
	}
}

// jsxTextRun returns the length of the longest run of JSX child text
// before the next '&', '{', '<', '>', or '}'. Only called when s[0] is
// none of those, so the result is always at least 1.
func jsxTextRun(s []byte) int {
	i := 1
	for i < len(s) {
		switch s[i] {
		case '&', '{', '<', '>', '}':
			return i
		}
		i++
	}
	return i
}

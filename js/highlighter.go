// Package js implements the JavaScript/JSX syntax highlighter: a
// single-pass, stateful driver over the primitive matchers in lexspan
// and the JSX grammar in jsx, emitting presentation tokens into a
// sink.Sink. See the highlight package for the public entry point.
package js

import (
	"context"

	"github.com/example/ulight/htmlref"
	"github.com/example/ulight/sink"
	"github.com/example/ulight/token"
	"github.com/example/ulight/ucode"
)

// Options configures a highlighting run. The zero value is valid:
// Coalescing is off unless set, and every capability field falls back
// to its package default when nil.
type Options struct {
	// Coalescing merges adjacent tokens of the same Kind and Source,
	// across whatever intervening calls to emit produced them, into a
	// single token in the sink.
	Coalescing bool

	// DisableJSX turns off JSX tag/children recognition, so that '<'
	// is always the less-than or generic/type-argument operator. Set
	// this for plain .js sources, where a stray JSX-looking comparison
	// should never be mistaken for markup.
	DisableJSX bool

	CharClasses ucode.CharClasses
	Decoder     ucode.Decoder
	HTMLRef     htmlref.Matcher
}

func (o Options) charClasses() ucode.CharClasses {
	if o.CharClasses != nil {
		return o.CharClasses
	}
	return ucode.Default
}

func (o Options) decoder() ucode.Decoder {
	if o.Decoder != nil {
		return o.Decoder
	}
	return ucode.DefaultDecoder
}

func (o Options) htmlref() htmlref.Matcher {
	if o.HTMLRef != nil {
		return o.HTMLRef
	}
	return htmlref.Common{}
}

// highlighter holds all state for one run: the read-only source, the
// write-only sink, and the few bits of context needed to disambiguate
// the grammar (canBeRegex, atStartOfFile, jsxDepth) plus the current
// scan position.
type highlighter struct {
	ctx    context.Context
	out    sink.Sink
	source []byte
	opts   Options

	index         uint32
	canBeRegex    bool
	atStartOfFile bool
	jsxDepth      int
}

// Highlight runs the JS/JSX highlighter over source, emitting tokens
// into s. It returns false only if ctx is canceled before the scan
// completes; malformed input is always highlighted to the best of the
// driver's ability and never causes a false return.
func Highlight(ctx context.Context, s sink.Sink, source []byte, opts Options) bool {
	h := &highlighter{
		ctx:           ctx,
		out:           s,
		source:        source,
		opts:          opts,
		canBeRegex:    true,
		atStartOfFile: true,
	}
	return h.run()
}

// remainder returns the unscanned suffix of the source.
func (h *highlighter) remainder() []byte {
	if int(h.index) >= len(h.source) {
		return nil
	}
	return h.source[h.index:]
}

// advance moves the scan position forward by n bytes without emitting
// anything (used for whitespace and other non-highlighted spans).
func (h *highlighter) advance(n int) {
	h.index += uint32(n)
	if n > 0 {
		h.atStartOfFile = false
	}
}

// emit appends a token covering the next length bytes with the given
// kind and source, then advances past it.
func (h *highlighter) emit(length int, kind token.HighlightKind, src token.FeatureSource) {
	if length <= 0 {
		return
	}
	if h.opts.Coalescing {
		if last, ok := h.out.Back(); ok && last.End() == h.index && last.Kind == kind && last.Source == src {
			h.out.SetBackLength(last.Length + uint32(length))
			h.index += uint32(length)
			h.atStartOfFile = false
			return
		}
	}
	h.out.EmplaceBack(token.Token{Begin: h.index, Length: uint32(length), Kind: kind, Source: src})
	h.index += uint32(length)
	h.atStartOfFile = false
}

// emitCore is emit with FeatureCore, the common case.
func (h *highlighter) emitCore(length int, kind token.HighlightKind) {
	h.emit(length, kind, token.FeatureCore)
}

// run is the top-level driver loop, equivalent to the original
// Highlighter::operator().
func (h *highlighter) run() bool {
	for {
		if err := h.ctx.Err(); err != nil {
			return false
		}
		rest := h.remainder()
		if len(rest) == 0 {
			return true
		}

		if h.jsxDepth > 0 {
			if h.consumeJSXChildren() {
				continue
			}
		}

		if h.consumeWhitespaceOrComment() {
			continue
		}
		if h.atStartOfFile && h.consumeHashbangComment() {
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
		if h.consumeOperatorOrPunctuation() {
			continue
		}

		h.consumeError()
	}
}

// consumeError emits a single erroneous byte and moves on, guaranteeing
// forward progress on input nothing else recognizes.
func (h *highlighter) consumeError() {
	h.emitCore(1, token.KindError)
}

package js

import (
	"github.com/example/ulight/lexspan"
	"github.com/example/ulight/token"
)

// emittingWSC drives lexspan.WalkWhitespaceCommentSequence, emitting a
// comment token (with delimiter sub-highlighting for "//"/"/*"/"*/")
// for each comment and silently advancing past whitespace.
type emittingWSC struct{ h *highlighter }

func (w emittingWSC) Whitespace(n int) { w.h.advance(n) }

func (w emittingWSC) BlockComment(r lexspan.CommentResult) {
	h := w.h
	h.emitCore(2, token.KindCommentDelimiter) // "/*"
	body := r.Length - 2
	if r.IsTerminated {
		body -= 2
	}
	h.emitCore(body, token.KindComment)
	if r.IsTerminated {
		h.emitCore(2, token.KindCommentDelimiter) // "*/"
	}
	h.canBeRegex = true
}

func (w emittingWSC) LineComment(n int) {
	h := w.h
	h.emitCore(2, token.KindCommentDelimiter) // "//"
	h.emitCore(n-2, token.KindComment)
	h.canBeRegex = true
}

// consumeWhitespaceOrComment consumes one run of interleaved whitespace
// and comments, if any is present, and reports whether it consumed
// anything. After a comment, a regex literal can appear (the comment
// text can't have been part of an expression), so canBeRegex is forced
// true; plain whitespace leaves canBeRegex unchanged.
func (h *highlighter) consumeWhitespaceOrComment() bool {
	before := h.index
	rest := h.remainder()
	lexspan.WalkWhitespaceCommentSequence(emittingWSC{h}, rest)
	return h.index != before
}

// consumeHashbangComment handles a "#!" comment, valid only as the very
// first bytes of the source.
func (h *highlighter) consumeHashbangComment() bool {
	n := lexspan.MatchHashbangComment(h.remainder(), h.atStartOfFile)
	if n == 0 {
		return false
	}
	h.emitCore(2, token.KindCommentDelimiter)
	h.emitCore(n-2, token.KindComment)
	return true
}

// Package sink defines the non-owning, bounded output destination that
// the highlighter writes tokens into. A Sink never allocates or grows;
// once full it silently stops accepting further tokens, the same way a
// fixed-capacity output span would in the original implementation.
package sink

import "github.com/example/ulight/token"

// Sink receives highlighted tokens in strictly increasing, non-overlapping
// Begin order.
type Sink interface {
	// EmplaceBack appends t, or does nothing if the sink is full.
	EmplaceBack(t token.Token)
	// Back returns the most recently appended token and true, or the
	// zero Token and false if the sink is empty.
	Back() (token.Token, bool)
	// Empty reports whether no tokens have been appended.
	Empty() bool
	// SetBackLength overwrites the Length of the most recently appended
	// token, used to extend a token in place when coalescing adjacent
	// runs of the same kind.
	SetBackLength(length uint32)
}

// Buffer is a Sink backed by a caller-owned, fixed-capacity slice. It
// never reallocates: EmplaceBack past capacity is a silent no-op.
type Buffer struct {
	tokens    []token.Token
	coalesce  bool
	truncated bool
}

// NewBuffer returns a Buffer that appends into storage (len 0, some
// capacity up to the desired limit) and, if coalesce is true, merges an
// incoming token into the previous one when they are adjacent and share
// the same Kind and Source.
func NewBuffer(storage []token.Token, coalesce bool) *Buffer {
	return &Buffer{tokens: storage[:0], coalesce: coalesce}
}

func (b *Buffer) EmplaceBack(t token.Token) {
	if b.coalesce && len(b.tokens) > 0 {
		last := &b.tokens[len(b.tokens)-1]
		if last.End() == t.Begin && last.Kind == t.Kind && last.Source == t.Source {
			last.Length += t.Length
			return
		}
	}
	if len(b.tokens) == cap(b.tokens) {
		b.truncated = true
		return
	}
	b.tokens = append(b.tokens, t)
}

func (b *Buffer) Back() (token.Token, bool) {
	if len(b.tokens) == 0 {
		return token.Token{}, false
	}
	return b.tokens[len(b.tokens)-1], true
}

func (b *Buffer) Empty() bool { return len(b.tokens) == 0 }

func (b *Buffer) SetBackLength(length uint32) {
	if len(b.tokens) == 0 {
		return
	}
	b.tokens[len(b.tokens)-1].Length = length
}

// Tokens returns the tokens appended so far. The returned slice aliases
// Buffer's internal storage and is invalidated by further EmplaceBack
// calls.
func (b *Buffer) Tokens() []token.Token { return b.tokens }

// Truncated reports whether at least one token was dropped because the
// buffer's capacity was exhausted.
func (b *Buffer) Truncated() bool { return b.truncated }

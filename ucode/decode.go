package ucode

import "unicode/utf8"

// Decoder is the capability interface used to decode one code point from
// the head of a byte slice. The default implementation defers to the
// standard library's UTF-8 decoder, matching the teacher lexer's use of
// utf8.DecodeRuneInString; no example in the retrieved pack carries a
// third-party UTF-8 decoding library, so the standard library is used
// directly here (see DESIGN.md).
type Decoder interface {
	// Decode returns the code point at the start of s and its length in
	// bytes. ok is false if s is empty or begins with invalid UTF-8, in
	// which case the caller should treat one byte as an error token.
	Decode(s []byte) (r rune, size int, ok bool)
}

// UTF8 is the default Decoder, backed by unicode/utf8.
type UTF8 struct{}

func (UTF8) Decode(s []byte) (rune, int, bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	r, size := utf8.DecodeRune(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, false
	}
	return r, size, true
}

// DefaultDecoder is the Decoder implementation used when Options leaves
// the field unset.
var DefaultDecoder Decoder = UTF8{}

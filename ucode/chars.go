// Package ucode provides the character-classification and UTF-8 decoding
// capabilities that the js package consumes as external collaborators
// rather than hard-coding.
package ucode

import "unicode"

// CharClasses is the capability interface the lexer consumes for every
// character-class predicate it needs. A caller embedding the highlighter
// in a context with its own Unicode tables (e.g. a trie-based
// identifier-classification table) can supply an alternative
// implementation through Options instead of forking the driver.
type CharClasses interface {
	IsJSWhitespace(c rune) bool
	IsJSIdentifierStart(c rune) bool
	IsJSIdentifierPart(c rune) bool
	IsASCIIDigit(c byte) bool
	IsASCIIDigitBase(c byte, base int) bool
}

// ASCIIUnicode is the default CharClasses implementation: ASCII fast
// paths backed by the standard unicode tables for anything beyond ASCII.
type ASCIIUnicode struct{}

const (
	bom     rune = '\uFEFF'
	nbsp    rune = ' '
	lineSep rune = ' '
	paraSep rune = ' '
	zwnj    rune = '‌'
	zwj     rune = '‍'
)

// IsJSWhitespace reports whether c is JS "white space" per
// https://262.ecma-international.org/15.0/index.html#sec-white-space,
// i.e. any of the explicitly named separators, a BOM, or any other code
// point in Unicode category Zs (Space_Separator).
func (ASCIIUnicode) IsJSWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\n', '\r', bom, nbsp, lineSep, paraSep:
		return true
	}
	return unicode.In(c, unicode.Zs)
}

// IsJSIdentifierStart reports whether c may begin a JS IdentifierName:
// '$', '_', or a Unicode letter (an approximation of ID_Start, matching
// the classification the teacher lexer used).
func (ASCIIUnicode) IsJSIdentifierStart(c rune) bool {
	return c == '$' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c > unicode.MaxASCII && unicode.IsLetter(c))
}

// IsJSIdentifierPart reports whether c may continue a JS IdentifierName:
// anything IsJSIdentifierStart accepts, plus ASCII digits, plus the
// zero-width joiner/non-joiner code points the grammar special-cases,
// plus Unicode digits and combining marks (an approximation of
// ID_Continue).
func (a ASCIIUnicode) IsJSIdentifierPart(c rune) bool {
	if a.IsJSIdentifierStart(c) {
		return true
	}
	if c >= '0' && c <= '9' {
		return true
	}
	if c == zwnj || c == zwj {
		return true
	}
	return c > unicode.MaxASCII && (unicode.IsDigit(c) || unicode.In(c, unicode.Mn, unicode.Mc, unicode.Pc))
}

// IsASCIIDigit reports whether c is an ASCII decimal digit.
func (ASCIIUnicode) IsASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsASCIIDigitBase reports whether c is a digit in the given base
// (2, 8, 10, or 16).
func (ASCIIUnicode) IsASCIIDigitBase(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return c >= '0' && c <= '9'
	}
}

// Default is the CharClasses implementation used when Options leaves the
// field unset.
var Default CharClasses = ASCIIUnicode{}

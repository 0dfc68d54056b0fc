// Package lexspan implements the JS lexer's primitive matchers (§4.3 of
// the highlighting specification): pure functions over a byte slice that
// report how many leading bytes belong to some lexical construct, with no
// side effects and no retained state. Every matcher returns a zero-value
// result (Length 0, or an empty struct) when it does not apply at the
// start of the slice.
package lexspan

// CommentResult describes a matched block comment.
type CommentResult struct {
	Length       int
	IsTerminated bool
}

// Matched reports whether the match succeeded (Length > 0).
func (r CommentResult) Matched() bool { return r.Length > 0 }

// StringLiteralResult describes a matched single- or double-quoted string.
type StringLiteralResult struct {
	Length     int
	Terminated bool
}

func (r StringLiteralResult) Matched() bool { return r.Length > 0 }

// DigitsResult describes a matched digit run (with '_' separators).
type DigitsResult struct {
	Length    int
	Erroneous bool
}

// NumericResult describes a segmented numeric literal. Length is always
// the sum of the other five length fields.
type NumericResult struct {
	Length     int
	Prefix     int
	Integer    int
	Fractional int
	Exponent   int
	Suffix     int
	Erroneous  bool
}

func (r NumericResult) Matched() bool { return r.Length > 0 }

package lexspan

import "github.com/example/ulight/ucode"

// MatchWhitespace returns the length of the longest prefix of s consisting
// entirely of JS whitespace code points.
// https://262.ecma-international.org/15.0/index.html#sec-white-space
func MatchWhitespace(s []byte, cc ucode.CharClasses, dec ucode.Decoder) int {
	length := 0
	for length < len(s) {
		r, size, ok := dec.Decode(s[length:])
		if !ok || !cc.IsJSWhitespace(r) {
			break
		}
		length += size
	}
	return length
}

// MatchLineComment matches a "//" comment through end-of-line, exclusive
// of the terminating '\n'. Returns 0 if s does not start with "//".
// https://262.ecma-international.org/15.0/index.html#prod-SingleLineComment
func MatchLineComment(s []byte) int {
	if !hasPrefix(s, "//") {
		return 0
	}
	length := 2
	for length < len(s) {
		if s[length] == '\n' {
			return length
		}
		length++
	}
	return length
}

// MatchBlockComment matches a "/* ... */" comment, including an
// unterminated comment running to end-of-source.
// https://262.ecma-international.org/15.0/index.html#prod-MultiLineComment
func MatchBlockComment(s []byte) CommentResult {
	if !hasPrefix(s, "/*") {
		return CommentResult{}
	}
	length := 2
	for length < len(s)-1 {
		if s[length] == '*' && s[length+1] == '/' {
			return CommentResult{Length: length + 2, IsTerminated: true}
		}
		length++
	}
	return CommentResult{Length: len(s), IsTerminated: false}
}

// MatchHashbangComment matches a "#!" comment through end-of-line,
// exclusive of the '\n', like MatchLineComment does for "//". It returns
// 0 when atStartOfFile is false.
func MatchHashbangComment(s []byte, atStartOfFile bool) int {
	if !atStartOfFile || !hasPrefix(s, "#!") {
		return 0
	}
	length := 2
	for length < len(s) {
		if s[length] == '\n' {
			return length
		}
		length++
	}
	return length
}

// MatchLineTerminatorSequence recognizes "\n", "\r\n", U+2028, or U+2029.
// https://262.ecma-international.org/15.0/index.html#prod-LineTerminatorSequence
func MatchLineTerminatorSequence(s []byte) int {
	switch {
	case hasPrefix(s, "\r\n"):
		return 2
	case hasPrefix(s, "\n"):
		return 1
	case hasPrefix(s, "\u2028"):
		return 3
	case hasPrefix(s, "\u2029"):
		return 3
	default:
		return 0
	}
}

// MatchLineContinuation recognizes a '\\' immediately followed by a line
// terminator sequence.
// https://262.ecma-international.org/15.0/index.html#prod-LineContinuation
func MatchLineContinuation(s []byte) int {
	if !hasPrefix(s, "\\") {
		return 0
	}
	if t := MatchLineTerminatorSequence(s[1:]); t != 0 {
		return t + 1
	}
	return 0
}

func hasPrefix(s []byte, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return string(s[:len(prefix)]) == prefix
}

// WhitespaceCommentWalker receives each whitespace/comment run as
// MatchWhitespaceCommentSequence walks s.
type WhitespaceCommentWalker interface {
	Whitespace(n int)
	BlockComment(r CommentResult)
	LineComment(n int)
}

// WalkWhitespaceCommentSequence consumes a run of interleaved whitespace,
// block comments, and line comments from the start of s, notifying w of
// each piece, and returns the unconsumed remainder.
func WalkWhitespaceCommentSequence(w WhitespaceCommentWalker, s []byte) []byte {
	for len(s) > 0 {
		if n := MatchWhitespace(s, ucode.Default, ucode.DefaultDecoder); n > 0 {
			w.Whitespace(n)
			s = s[n:]
			continue
		}
		if b := MatchBlockComment(s); b.Matched() {
			w.BlockComment(b)
			s = s[b.Length:]
			continue
		}
		if n := MatchLineComment(s); n > 0 {
			w.LineComment(n)
			s = s[n:]
			continue
		}
		break
	}
	return s
}

type countingWSC struct{ length int }

func (c *countingWSC) Whitespace(n int)             { c.length += n }
func (c *countingWSC) BlockComment(r CommentResult) { c.length += r.Length }
func (c *countingWSC) LineComment(n int)            { c.length += n }

// MatchWhitespaceCommentSequence returns the total length of a run of
// interleaved whitespace and comments at the start of s.
func MatchWhitespaceCommentSequence(s []byte) int {
	c := &countingWSC{}
	WalkWhitespaceCommentSequence(c, s)
	return c.length
}

package lexspan

import "github.com/example/ulight/ucode"

// RegexResult describes a matched regular expression literal. Body
// spans from the opening '/' through the closing '/', inclusive; Flags
// is the length of the trailing flag run. Length is Body+Flags.
type RegexResult struct {
	Length     int
	Body       int
	Flags      int
	Terminated bool
}

func (r RegexResult) Matched() bool { return r.Length > 0 }

// MatchRegex matches a RegularExpressionLiteral: a '/'-delimited body,
// with '\' escapes and a bracketed character class (inside which an
// unescaped '/' does not terminate the body), followed by a run of
// identifier-part flag characters.
// https://262.ecma-international.org/15.0/index.html#sec-literals-regular-expression-literals
func MatchRegex(s []byte, cc ucode.CharClasses, dec ucode.Decoder) RegexResult {
	if len(s) == 0 || s[0] != '/' {
		return RegexResult{}
	}
	length := 1
	escaped := false
	inClass := false

	for length < len(s) {
		c := s[length]
		switch {
		case c == '\n':
			return RegexResult{Length: length, Body: length, Terminated: false}
		case escaped:
			escaped = false
			length++
		case c == '\\':
			escaped = true
			length++
		case c == '[':
			inClass = true
			length++
		case c == ']':
			inClass = false
			length++
		case c == '/' && !inClass:
			length++
			flags := matchFlags(s[length:], cc, dec)
			return RegexResult{Length: length + flags, Body: length, Flags: flags, Terminated: true}
		default:
			length++
		}
	}
	return RegexResult{Length: length, Body: length, Terminated: false}
}

// matchFlags consumes a run of identifier-part code points, decoded as
// UTF-8 (rather than naively truncated to a single byte), matching
// spec's resolution of the trailing-flags ambiguity.
func matchFlags(s []byte, cc ucode.CharClasses, dec ucode.Decoder) int {
	length := 0
	for length < len(s) {
		r, size, ok := dec.Decode(s[length:])
		if !ok || !cc.IsJSIdentifierPart(r) {
			break
		}
		length += size
	}
	return length
}

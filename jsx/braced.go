package jsx

import "github.com/example/ulight/lexspan"

// BracedResult describes a matched "{ ... }" JSX expression container
// (an attribute value or a child expression), as used by
// MatchBraced for structural lookahead. Length spans from the opening
// '{' through the matching '}', inclusive.
type BracedResult struct {
	Length int
	Closed bool
}

// Matched reports whether the match succeeded (Length > 0).
func (r BracedResult) Matched() bool { return r.Length > 0 }

// MatchBraced performs a structural, non-highlighting scan of a JSX
// braced expression for lookahead purposes: it determines where the
// matching '}' falls by tracking nested brace depth and skipping over
// string and template literals, without otherwise understanding JS
// grammar. The committed highlighting of the braced content is always
// performed separately, by the same recursive JS-scanning routine used
// for template literal substitutions.
// https://262.ecma-international.org/15.0/index.html#sec-jsx (JSXExpressionContainer)
func MatchBraced(s []byte) BracedResult {
	if len(s) == 0 || s[0] != '{' {
		return BracedResult{}
	}
	depth := 1
	i := 1
	for i < len(s) {
		switch s[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
			if depth == 0 {
				return BracedResult{Length: i, Closed: true}
			}
		case '\'', '"':
			r := lexspan.MatchStringLiteral(s[i:])
			if r.Length == 0 {
				i++
				continue
			}
			i += r.Length
		case '`':
			n := matchTemplateSkip(s[i:])
			i += n
		default:
			i++
		}
	}
	return BracedResult{Length: i, Closed: false}
}

// matchTemplateSkip skips a template literal starting at s[0] == '`' for
// MatchBraced's lookahead-only brace counting, recursing into "${...}"
// substitutions so that braces inside them do not desynchronize the
// outer depth count.
func matchTemplateSkip(s []byte) int {
	i := 1
	for i < len(s) {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i += 2
		case s[i] == '`':
			return i + 1
		case s[i] == '$' && i+1 < len(s) && s[i+1] == '{':
			depth := 1
			i += 2
			for i < len(s) && depth > 0 {
				switch s[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				i++
			}
		default:
			i++
		}
	}
	return i
}

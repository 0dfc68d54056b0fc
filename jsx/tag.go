package jsx

import (
	"github.com/example/ulight/lexspan"
	"github.com/example/ulight/ucode"
)

// TagType identifies which grammar production a matched tag belongs to.
type TagType int

const (
	TagOpening TagType = iota
	TagClosing
	TagSelfClosing
)

// TagSubset restricts MatchTag/Consume to a subset of the JSXElement
// grammar. Used by the JS driver while it is still trial-parsing a '<'
// as a possible JSX tag but has not yet committed: a bare "</" can only
// ever begin a closing tag, which is meaningless without an enclosing
// open tag, so lookahead only needs to consider non-closing tags.
type TagSubset int

const (
	SubsetAll TagSubset = iota
	SubsetNonClosing
)

// TagResult describes a matched JSX tag.
type TagResult struct {
	Length int
	Type   TagType
}

// Matched reports whether the match succeeded (Length > 0).
func (r TagResult) Matched() bool { return r.Length > 0 }

// Consumer receives each piece of a JSX tag as matchTagImpl walks it.
// Implementations may be counting-only (for lookahead, see
// countingConsumer) or emitting (see the js package's highlighter,
// which also recurses into braced attribute values to highlight their
// JS content).
type Consumer interface {
	Whitespace(n int)
	TagOpen(closing bool)
	ElementName(n int)
	AttributeName(n int)
	AttributeEquals()
	AttributeStringValue(r lexspan.StringLiteralResult)
	// AttributeBracedValue is given s starting at the attribute value's
	// opening '{' and must consume and return the length of the whole
	// "{ ... }" expression, including both braces.
	AttributeBracedValue(s []byte) int
	SelfClosingSlash()
	TagClose()
}

// MatchTag performs lookahead-only matching of subset starting at s,
// without emitting anything.
func MatchTag(s []byte, subset TagSubset) TagResult {
	c := &countingConsumer{}
	n, ok := matchTagImpl(s, subset, c)
	if !ok {
		return TagResult{}
	}
	return TagResult{Length: n, Type: c.typ}
}

// Consume matches subset starting at s, driving c with every piece of
// the grammar as it is recognized, and returns the same result MatchTag
// would.
func Consume(s []byte, subset TagSubset, c Consumer) TagResult {
	n, ok := matchTagImpl(s, subset, c)
	if !ok {
		return TagResult{}
	}
	return TagResult{Length: n, Type: MatchTag(s, subset).Type}
}

// matchTagImpl implements the JSXElement opening/closing/self-closing
// tag grammar:
//
//	OpeningTag      ::= '<' JSXElementName Attribute* '/'? '>'
//	ClosingTag      ::= '<' '/' JSXElementName? '>'
//	Attribute       ::= JSXAttributeName ('=' AttributeValue)?
//	AttributeValue  ::= StringLiteral | '{' JSExpression '}'
//
// https://facebook.github.io/jsx/
func matchTagImpl(s []byte, subset TagSubset, c Consumer) (int, bool) {
	if len(s) == 0 || s[0] != '<' {
		return 0, false
	}
	i := 1
	closing := i < len(s) && s[i] == '/'
	if closing {
		if subset == SubsetNonClosing {
			return 0, false
		}
		i++
	}
	c.TagOpen(closing)

	i += skipWhitespace(s[i:], c)

	if name := lexspan.MatchJSXElementName(s[i:], ucode.Default, ucode.DefaultDecoder); name > 0 {
		c.ElementName(name)
		i += name
	} else if !closing {
		return 0, false
	}

	if closing {
		i += skipWhitespace(s[i:], c)
		if i >= len(s) || s[i] != '>' {
			return 0, false
		}
		c.TagClose()
		return i + 1, true
	}

	for {
		wsLen := skipWhitespace(s[i:], c)
		i += wsLen
		attrName := lexspan.MatchJSXAttributeName(s[i:], ucode.Default, ucode.DefaultDecoder)
		if attrName == 0 {
			break
		}
		c.AttributeName(attrName)
		i += attrName

		save := i
		wsLen = skipWhitespace(s[i:], c)
		if save+wsLen < len(s) && s[save+wsLen] == '=' {
			i = save + wsLen + 1
			c.AttributeEquals()
			i += skipWhitespace(s[i:], c)
			if i >= len(s) {
				return 0, false
			}
			switch {
			case s[i] == '\'' || s[i] == '"':
				r := lexspan.MatchStringLiteral(s[i:])
				if !r.Matched() {
					return 0, false
				}
				c.AttributeStringValue(r)
				i += r.Length
			case s[i] == '{':
				n := c.AttributeBracedValue(s[i:])
				if n == 0 {
					return 0, false
				}
				i += n
			default:
				return 0, false
			}
		} else {
			i = save + wsLen
		}
	}

	i += skipWhitespace(s[i:], c)
	if i < len(s) && s[i] == '/' {
		c.SelfClosingSlash()
		i++
		i += skipWhitespace(s[i:], c)
	}
	if i >= len(s) || s[i] != '>' {
		return 0, false
	}
	c.TagClose()
	return i + 1, true
}

func skipWhitespace(s []byte, c Consumer) int {
	n := lexspan.MatchWhitespace(s, ucode.Default, ucode.DefaultDecoder)
	if n > 0 {
		c.Whitespace(n)
	}
	return n
}

// countingConsumer drives matchTagImpl for lookahead-only matching: it
// records nothing but the tag's TagType and lets BracedResult's own
// structural scan determine each braced value's length.
type countingConsumer struct {
	typ          TagType
	sawClosing   bool
	sawSelfClose bool
}

func (c *countingConsumer) Whitespace(int)     {}
func (c *countingConsumer) TagOpen(closing bool) {
	c.sawClosing = closing
	if closing {
		c.typ = TagClosing
	}
}
func (c *countingConsumer) ElementName(int)     {}
func (c *countingConsumer) AttributeName(int)   {}
func (c *countingConsumer) AttributeEquals()    {}
func (c *countingConsumer) AttributeStringValue(lexspan.StringLiteralResult) {}

func (c *countingConsumer) AttributeBracedValue(s []byte) int {
	return MatchBraced(s).Length
}

func (c *countingConsumer) SelfClosingSlash() {
	c.sawSelfClose = true
	if !c.sawClosing {
		c.typ = TagSelfClosing
	}
}

func (c *countingConsumer) TagClose() {
	if !c.sawClosing && !c.sawSelfClose {
		c.typ = TagOpening
	}
}

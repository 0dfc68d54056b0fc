package lexspan

import "github.com/example/ulight/ucode"

// NameVariant selects which grammar MatchName applies.
type NameVariant int

const (
	// NameIdentifier matches a plain JS IdentifierName.
	NameIdentifier NameVariant = iota
	// NameJSXIdentifier additionally permits '-' after the first
	// character, per JSXIdentifier.
	NameJSXIdentifier
	// NameJSXElementName matches a JSXIdentifier, optionally followed
	// by one or more ".Identifier" or ":Identifier" qualifiers.
	NameJSXElementName
	// NameJSXAttributeName matches a JSXIdentifier, optionally followed
	// by one ":Identifier" qualifier (JSXNamespacedName).
	NameJSXAttributeName
)

// MatchName matches an identifier-like name under the given variant.
// https://262.ecma-international.org/15.0/index.html#prod-IdentifierName
func MatchName(s []byte, variant NameVariant, cc ucode.CharClasses, dec ucode.Decoder) int {
	length := matchNamePart(s, variant, cc, dec)
	if length == 0 {
		return length
	}
	if variant != NameJSXElementName && variant != NameJSXAttributeName {
		return length
	}

	for {
		if length >= len(s) {
			break
		}
		sep := s[length]
		if sep != '.' && sep != ':' {
			break
		}
		if variant == NameJSXAttributeName && sep == '.' {
			break
		}
		part := matchNamePart(s[length+1:], variant, cc, dec)
		if part == 0 {
			break
		}
		length += 1 + part
		if variant == NameJSXAttributeName {
			break
		}
	}
	return length
}

// matchNamePart matches a single JSXIdentifier/Identifier segment
// without qualifier chaining.
func matchNamePart(s []byte, variant NameVariant, cc ucode.CharClasses, dec ucode.Decoder) int {
	r, size, ok := dec.Decode(s)
	if !ok || !cc.IsJSIdentifierStart(r) {
		return 0
	}
	length := size
	allowHyphen := variant == NameJSXIdentifier || variant == NameJSXElementName || variant == NameJSXAttributeName

	for length < len(s) {
		r, size, ok = dec.Decode(s[length:])
		if !ok {
			break
		}
		if cc.IsJSIdentifierPart(r) || (allowHyphen && r == '-') {
			length += size
			continue
		}
		break
	}
	return length
}

// MatchIdentifier matches a plain IdentifierName.
func MatchIdentifier(s []byte, cc ucode.CharClasses, dec ucode.Decoder) int {
	return MatchName(s, NameIdentifier, cc, dec)
}

// MatchJSXIdentifier matches a JSXIdentifier (identifier characters plus
// '-').
func MatchJSXIdentifier(s []byte, cc ucode.CharClasses, dec ucode.Decoder) int {
	return MatchName(s, NameJSXIdentifier, cc, dec)
}

// MatchJSXElementName matches a JSXElementName: a JSXIdentifier followed
// by any number of ".member" or "ns:local" qualifiers.
func MatchJSXElementName(s []byte, cc ucode.CharClasses, dec ucode.Decoder) int {
	return MatchName(s, NameJSXElementName, cc, dec)
}

// MatchJSXAttributeName matches a JSXAttributeName: a JSXIdentifier
// optionally followed by one "ns:local" qualifier.
func MatchJSXAttributeName(s []byte, cc ucode.CharClasses, dec ucode.Decoder) int {
	return MatchName(s, NameJSXAttributeName, cc, dec)
}

// MatchPrivateIdentifier matches a '#' followed by an IdentifierName.
// https://262.ecma-international.org/15.0/index.html#prod-PrivateIdentifier
func MatchPrivateIdentifier(s []byte, cc ucode.CharClasses, dec ucode.Decoder) int {
	if len(s) == 0 || s[0] != '#' {
		return 0
	}
	name := MatchIdentifier(s[1:], cc, dec)
	if name == 0 {
		return 0
	}
	return 1 + name
}

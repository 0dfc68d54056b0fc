package lexspan

import "github.com/example/ulight/ucode"

// MatchNumericLiteral matches a JS numeric literal: an optional radix
// prefix ("0x"/"0o"/"0b"), an integer digit run, an optional fractional
// part, an optional exponent (decimal only), and an optional BigInt "n"
// suffix. Each segment's length is reported separately; Length is their
// sum.
//
// A literal consisting of a bare "." not followed by a digit is not a
// number at all (e.g. the "." in "a.b"), so that case reports no match
// rather than a zero-length numeric literal with an erroneous fractional
// part.
// https://262.ecma-international.org/15.0/index.html#sec-literals-numeric-literals
func MatchNumericLiteral(s []byte, cc ucode.CharClasses) NumericResult {
	if len(s) == 0 {
		return NumericResult{}
	}

	if s[0] == '.' {
		if len(s) < 2 || !cc.IsASCIIDigit(s[1]) {
			return NumericResult{}
		}
	} else if !cc.IsASCIIDigit(s[0]) {
		return NumericResult{}
	}

	base := 10
	prefix := 0
	if s[0] == '0' && len(s) > 1 {
		switch s[1] {
		case 'x', 'X':
			base, prefix = 16, 2
		case 'o', 'O':
			base, prefix = 8, 2
		case 'b', 'B':
			base, prefix = 2, 2
		}
	}

	erroneous := false
	rest := s[prefix:]

	integer := 0
	if base != 10 || (len(rest) > 0 && rest[0] != '.') {
		d := MatchDigits(rest, base, cc)
		integer = d.Length
		erroneous = erroneous || d.Erroneous
		rest = rest[integer:]
	}
	if prefix > 0 && integer == 0 {
		erroneous = true
	}

	fractional := 0
	if base == 10 && len(rest) > 0 && rest[0] == '.' {
		d := MatchDigits(rest[1:], 10, cc)
		fractional = 1 + d.Length
		erroneous = erroneous || d.Erroneous
		rest = rest[fractional:]
	}
	if fractional == 1 && integer == 0 {
		// "." alone, with no leading digit either: already excluded above,
		// but a leading-integer literal like "1." is fine with zero
		// fractional digits.
	}

	exponent := 0
	if base == 10 && len(rest) > 0 && (rest[0] == 'e' || rest[0] == 'E') {
		n := 1
		if n < len(rest) && (rest[n] == '+' || rest[n] == '-') {
			n++
		}
		d := MatchDigits(rest[n:], 10, cc)
		if d.Length == 0 {
			erroneous = true
		}
		exponent = n + d.Length
		erroneous = erroneous || d.Erroneous
		rest = rest[exponent:]
	}

	suffix := 0
	if len(rest) > 0 && rest[0] == 'n' {
		if fractional > 0 || exponent > 0 || (prefix == 0 && len(s) > 0 && s[0] == '0' && integer > 1) {
			erroneous = true
		}
		suffix = 1
	}

	length := prefix + integer + fractional + exponent + suffix
	if length == 0 {
		return NumericResult{}
	}
	return NumericResult{
		Length:     length,
		Prefix:     prefix,
		Integer:    integer,
		Fractional: fractional,
		Exponent:   exponent,
		Suffix:     suffix,
		Erroneous:  erroneous,
	}
}

package lexspan

import "github.com/example/ulight/ucode"

// MatchDigits matches a run of digits in the given base (2, 8, 10, or 16),
// permitting '_' as a digit separator. The run is erroneous if it starts or
// ends with '_', or contains "__".
// https://262.ecma-international.org/15.0/index.html#prod-NumericLiteralSeparator
func MatchDigits(s []byte, base int, cc ucode.CharClasses) DigitsResult {
	length := 0
	erroneous := false
	var previous byte

	for length < len(s) {
		c := s[length]
		if c == '_' {
			if previous == 0 || previous == '_' {
				erroneous = true
			}
			previous = '_'
			length++
			continue
		}
		switch {
		case cc.IsASCIIDigitBase(c, base):
			previous = c
			length++
		case base != 16 && cc.IsASCIIDigit(c):
			// An ASCII digit outside the current base (e.g. '2' in a
			// binary literal) still belongs to the digit run; it just
			// makes the run erroneous instead of ending it.
			erroneous = true
			previous = c
			length++
		default:
			return finishDigits(length, erroneous, previous)
		}
	}
	return finishDigits(length, erroneous, previous)
}

func finishDigits(length int, erroneous bool, previous byte) DigitsResult {
	if length > 0 && previous == '_' {
		erroneous = true
	}
	return DigitsResult{Length: length, Erroneous: erroneous}
}

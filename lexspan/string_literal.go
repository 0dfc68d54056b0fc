package lexspan

// MatchStringLiteral matches a single- or double-quoted string literal,
// tracking a one-byte "escaped" flag so that an escaped quote or newline
// does not terminate the literal.
// https://262.ecma-international.org/15.0/index.html#sec-literals-string-literals
func MatchStringLiteral(s []byte) StringLiteralResult {
	if len(s) == 0 || (s[0] != '\'' && s[0] != '"') {
		return StringLiteralResult{}
	}
	quote := s[0]
	length := 1
	escaped := false

	for length < len(s) {
		c := s[length]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			return StringLiteralResult{Length: length + 1, Terminated: true}
		case c == '\n':
			return StringLiteralResult{Length: length, Terminated: false}
		}
		length++
	}
	return StringLiteralResult{Length: length, Terminated: false}
}

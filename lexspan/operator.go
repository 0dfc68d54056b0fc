package lexspan

import "github.com/example/ulight/token"

// MatchOperatorOrPunctuation matches the longest operator or punctuation
// token starting at s, dispatching on the first byte the way js.cpp's
// match_operator_or_punctuation does. Keywords are not handled here; they
// are recognized by matching an identifier and consulting token.Lookup.
func MatchOperatorOrPunctuation(s []byte) (token.TokenType, bool) {
	if len(s) == 0 {
		return token.Illegal, false
	}
	switch s[0] {
	case '!':
		if hasPrefix(s, "!==") {
			return token.StrictNotEqual, true
		}
		if hasPrefix(s, "!=") {
			return token.NotEqual, true
		}
		return token.LogicalNot, true
	case '%':
		if hasPrefix(s, "%=") {
			return token.ModuloEqual, true
		}
		return token.Modulo, true
	case '&':
		if hasPrefix(s, "&&=") {
			return token.LogicalAndEqual, true
		}
		if hasPrefix(s, "&&") {
			return token.LogicalAnd, true
		}
		if hasPrefix(s, "&=") {
			return token.BitwiseAndEqual, true
		}
		return token.BitwiseAnd, true
	case '(':
		return token.LeftParen, true
	case ')':
		return token.RightParen, true
	case '*':
		if hasPrefix(s, "**=") {
			return token.ExponentEqual, true
		}
		if hasPrefix(s, "**") {
			return token.Exponent, true
		}
		if hasPrefix(s, "*=") {
			return token.MultiplyEqual, true
		}
		return token.Multiply, true
	case '+':
		if hasPrefix(s, "++") {
			return token.Increment, true
		}
		if hasPrefix(s, "+=") {
			return token.PlusEqual, true
		}
		return token.Plus, true
	case ',':
		return token.Comma, true
	case '-':
		if hasPrefix(s, "--") {
			return token.Decrement, true
		}
		if hasPrefix(s, "-=") {
			return token.MinusEqual, true
		}
		return token.Minus, true
	case '.':
		if hasPrefix(s, "...") {
			return token.Ellipsis, true
		}
		return token.Dot, true
	case '/':
		if hasPrefix(s, "/=") {
			return token.DivideEqual, true
		}
		return token.Divide, true
	case ':':
		return token.Colon, true
	case ';':
		return token.Semicolon, true
	case '<':
		if hasPrefix(s, "<<=") {
			return token.LeftShiftEqual, true
		}
		if hasPrefix(s, "<<") {
			return token.LeftShift, true
		}
		if hasPrefix(s, "<=") {
			return token.LessEqual, true
		}
		return token.LessThan, true
	case '=':
		if hasPrefix(s, "===") {
			return token.StrictEqual, true
		}
		if hasPrefix(s, "==") {
			return token.Equal, true
		}
		if hasPrefix(s, "=>") {
			return token.Arrow, true
		}
		return token.Assign, true
	case '>':
		if hasPrefix(s, ">>>=") {
			return token.UnsignedRightShiftEqual, true
		}
		if hasPrefix(s, ">>>") {
			return token.UnsignedRightShift, true
		}
		if hasPrefix(s, ">>=") {
			return token.RightShiftEqual, true
		}
		if hasPrefix(s, ">>") {
			return token.RightShift, true
		}
		if hasPrefix(s, ">=") {
			return token.GreaterEqual, true
		}
		return token.GreaterThan, true
	case '?':
		if hasPrefix(s, "??=") {
			return token.NullishCoalescingEqual, true
		}
		if hasPrefix(s, "??") {
			return token.NullishCoalescing, true
		}
		if hasPrefix(s, "?.") {
			// "?." followed by a digit is the conditional operator
			// applied to a numeric literal branch, e.g. "a ?.5 : b".
			if len(s) > 2 && s[2] >= '0' && s[2] <= '9' {
				return token.Conditional, true
			}
			return token.OptionalChaining, true
		}
		return token.Conditional, true
	case '[':
		return token.LeftBracket, true
	case ']':
		return token.RightBracket, true
	case '^':
		if hasPrefix(s, "^=") {
			return token.BitwiseXorEqual, true
		}
		return token.BitwiseXor, true
	case '{':
		return token.LeftBrace, true
	case '|':
		if hasPrefix(s, "||=") {
			return token.LogicalOrEqual, true
		}
		if hasPrefix(s, "||") {
			return token.LogicalOr, true
		}
		if hasPrefix(s, "|=") {
			return token.BitwiseOrEqual, true
		}
		return token.BitwiseOr, true
	case '}':
		return token.RightBrace, true
	case '~':
		return token.BitwiseNot, true
	default:
		return token.Illegal, false
	}
}

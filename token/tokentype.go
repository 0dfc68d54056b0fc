// Package token defines the closed TokenType enumeration used internally
// by the JS lexer to identify every keyword, operator, and punctuation
// mark, plus the externally visible HighlightKind each one maps to.
package token

import "sort"

// FeatureSource tags which part of the language a TokenType belongs to,
// for provenance (e.g. so a consumer could dim non-core-JS syntax). It is
// plumbed through per spec, but no renderer in this repository uses it.
type FeatureSource int

const (
	FeatureCore    FeatureSource = iota // every token not tagged FeatureModern
	FeatureModern                       // ES2020+ operators (??, ?., &&=, ||=, ??=)
	FeatureJSXExt                       // reserved for JSX-only keywords; unused today
)

// TokenType identifies every keyword, operator, and punctuation mark the
// JS lexer recognizes. Zero value (Illegal) is not present in the table.
type TokenType int

const (
	Illegal TokenType = iota

	// Punctuation and operators.
	LogicalNot
	NotEqual
	StrictNotEqual
	Modulo
	ModuloEqual
	BitwiseAnd
	LogicalAnd
	LogicalAndEqual
	BitwiseAndEqual
	LeftParen
	RightParen
	Multiply
	Exponent
	ExponentEqual
	MultiplyEqual
	Plus
	Increment
	PlusEqual
	Comma
	Minus
	Decrement
	MinusEqual
	Dot
	Ellipsis
	Divide
	DivideEqual
	Colon
	Semicolon
	LessThan
	LeftShift
	LeftShiftEqual
	LessEqual
	Assign
	Equal
	StrictEqual
	Arrow
	GreaterThan
	GreaterEqual
	RightShift
	RightShiftEqual
	UnsignedRightShift
	UnsignedRightShiftEqual
	Conditional
	OptionalChaining
	NullishCoalescing
	NullishCoalescingEqual
	LeftBracket
	RightBracket
	BitwiseXor
	BitwiseXorEqual
	LeftBrace
	BitwiseOr
	BitwiseOrEqual
	LogicalOr
	LogicalOrEqual
	RightBrace
	BitwiseNot

	// Keywords.
	KwAs
	KwAsync
	KwAwait
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDebugger
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwExport
	KwExtends
	KwFalse
	KwFinally
	KwFor
	KwFrom
	KwFunction
	KwGet
	KwIf
	KwImport
	KwIn
	KwInstanceof
	KwLet
	KwNew
	KwNull
	KwOf
	KwReturn
	KwSet
	KwStatic
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwTypeof
	KwUndefined
	KwVar
	KwVoid
	KwWhile
	KwWith
	KwYield

	numTokenTypes
)

type entry struct {
	typ       TokenType
	code      string
	highlight HighlightKind
	source    FeatureSource
}

// data lists every TokenType's literal bytes, HighlightKind, and
// FeatureSource. It is declared in a human-readable (not byte-sorted)
// order; codes, lengths, highlights, sources, and the byte-sorted lookup
// table below are all derived from it at init time, matching spec's
// requirement that the table be sorted for binary search without
// burdening maintainers with hand-sorted literals.
var data = []entry{
	{LogicalNot, "!", KindSymOp, FeatureCore},
	{NotEqual, "!=", KindSymOp, FeatureCore},
	{StrictNotEqual, "!==", KindSymOp, FeatureCore},
	{Modulo, "%", KindSymOp, FeatureCore},
	{ModuloEqual, "%=", KindSymOp, FeatureCore},
	{BitwiseAnd, "&", KindSymOp, FeatureCore},
	{LogicalAnd, "&&", KindSymOp, FeatureCore},
	{LogicalAndEqual, "&&=", KindSymOp, FeatureModern},
	{BitwiseAndEqual, "&=", KindSymOp, FeatureCore},
	{LeftParen, "(", KindSymPunc, FeatureCore},
	{RightParen, ")", KindSymPunc, FeatureCore},
	{Multiply, "*", KindSymOp, FeatureCore},
	{Exponent, "**", KindSymOp, FeatureCore},
	{ExponentEqual, "**=", KindSymOp, FeatureCore},
	{MultiplyEqual, "*=", KindSymOp, FeatureCore},
	{Plus, "+", KindSymOp, FeatureCore},
	{Increment, "++", KindSymOp, FeatureCore},
	{PlusEqual, "+=", KindSymOp, FeatureCore},
	{Comma, ",", KindSymPunc, FeatureCore},
	{Minus, "-", KindSymOp, FeatureCore},
	{Decrement, "--", KindSymOp, FeatureCore},
	{MinusEqual, "-=", KindSymOp, FeatureCore},
	{Dot, ".", KindSymPunc, FeatureCore},
	{Ellipsis, "...", KindSymPunc, FeatureCore},
	{Divide, "/", KindSymOp, FeatureCore},
	{DivideEqual, "/=", KindSymOp, FeatureCore},
	{Colon, ":", KindSymPunc, FeatureCore},
	{Semicolon, ";", KindSymPunc, FeatureCore},
	{LessThan, "<", KindSymOp, FeatureCore},
	{LeftShift, "<<", KindSymOp, FeatureCore},
	{LeftShiftEqual, "<<=", KindSymOp, FeatureCore},
	{LessEqual, "<=", KindSymOp, FeatureCore},
	{Assign, "=", KindSymOp, FeatureCore},
	{Equal, "==", KindSymOp, FeatureCore},
	{StrictEqual, "===", KindSymOp, FeatureCore},
	{Arrow, "=>", KindSymOp, FeatureCore},
	{GreaterThan, ">", KindSymOp, FeatureCore},
	{GreaterEqual, ">=", KindSymOp, FeatureCore},
	{RightShift, ">>", KindSymOp, FeatureCore},
	{RightShiftEqual, ">>=", KindSymOp, FeatureCore},
	{UnsignedRightShift, ">>>", KindSymOp, FeatureCore},
	{UnsignedRightShiftEqual, ">>>=", KindSymOp, FeatureCore},
	{Conditional, "?", KindSymOp, FeatureCore},
	{OptionalChaining, "?.", KindSymOp, FeatureModern},
	{NullishCoalescing, "??", KindSymOp, FeatureModern},
	{NullishCoalescingEqual, "??=", KindSymOp, FeatureModern},
	{LeftBracket, "[", KindSymPunc, FeatureCore},
	{RightBracket, "]", KindSymPunc, FeatureCore},
	{BitwiseXor, "^", KindSymOp, FeatureCore},
	{BitwiseXorEqual, "^=", KindSymOp, FeatureCore},
	{LeftBrace, "{", KindSymBrace, FeatureCore},
	{BitwiseOr, "|", KindSymOp, FeatureCore},
	{BitwiseOrEqual, "|=", KindSymOp, FeatureCore},
	{LogicalOr, "||", KindSymOp, FeatureCore},
	{LogicalOrEqual, "||=", KindSymOp, FeatureModern},
	{RightBrace, "}", KindSymBrace, FeatureCore},
	{BitwiseNot, "~", KindSymOp, FeatureCore},

	{KwAs, "as", KindKeywordOther, FeatureCore},
	{KwAsync, "async", KindKeywordOther, FeatureCore},
	{KwAwait, "await", KindKeywordOther, FeatureCore},
	{KwBreak, "break", KindKeywordControl, FeatureCore},
	{KwCase, "case", KindKeywordControl, FeatureCore},
	{KwCatch, "catch", KindKeywordControl, FeatureCore},
	{KwClass, "class", KindKeywordType, FeatureCore},
	{KwConst, "const", KindKeywordOther, FeatureCore},
	{KwContinue, "continue", KindKeywordControl, FeatureCore},
	{KwDebugger, "debugger", KindKeywordOther, FeatureCore},
	{KwDefault, "default", KindKeywordControl, FeatureCore},
	{KwDelete, "delete", KindKeywordOther, FeatureCore},
	{KwDo, "do", KindKeywordControl, FeatureCore},
	{KwElse, "else", KindKeywordControl, FeatureCore},
	{KwExport, "export", KindKeywordOther, FeatureCore},
	{KwExtends, "extends", KindKeywordType, FeatureCore},
	{KwFalse, "false", KindKeywordOther, FeatureCore},
	{KwFinally, "finally", KindKeywordControl, FeatureCore},
	{KwFor, "for", KindKeywordControl, FeatureCore},
	{KwFrom, "from", KindKeywordOther, FeatureCore},
	{KwFunction, "function", KindKeywordType, FeatureCore},
	{KwGet, "get", KindKeywordOther, FeatureCore},
	{KwIf, "if", KindKeywordControl, FeatureCore},
	{KwImport, "import", KindKeywordOther, FeatureCore},
	{KwIn, "in", KindKeywordOther, FeatureCore},
	{KwInstanceof, "instanceof", KindKeywordOther, FeatureCore},
	{KwLet, "let", KindKeywordOther, FeatureCore},
	{KwNew, "new", KindKeywordType, FeatureCore},
	{KwNull, "null", KindKeywordOther, FeatureCore},
	{KwOf, "of", KindKeywordOther, FeatureCore},
	{KwReturn, "return", KindKeywordControl, FeatureCore},
	{KwSet, "set", KindKeywordOther, FeatureCore},
	{KwStatic, "static", KindKeywordOther, FeatureCore},
	{KwSuper, "super", KindKeywordType, FeatureCore},
	{KwSwitch, "switch", KindKeywordControl, FeatureCore},
	{KwThis, "this", KindKeywordOther, FeatureCore},
	{KwThrow, "throw", KindKeywordControl, FeatureCore},
	{KwTrue, "true", KindKeywordOther, FeatureCore},
	{KwTry, "try", KindKeywordControl, FeatureCore},
	{KwTypeof, "typeof", KindKeywordOther, FeatureCore},
	{KwUndefined, "undefined", KindKeywordOther, FeatureCore},
	{KwVar, "var", KindKeywordOther, FeatureCore},
	{KwVoid, "void", KindKeywordOther, FeatureCore},
	{KwWhile, "while", KindKeywordControl, FeatureCore},
	{KwWith, "with", KindKeywordOther, FeatureCore},
	{KwYield, "yield", KindKeywordOther, FeatureCore},
}

var (
	codes      [numTokenTypes]string
	highlights [numTokenTypes]HighlightKind
	sources    [numTokenTypes]FeatureSource
	sortedByCode []entry
)

func init() {
	for _, e := range data {
		codes[e.typ] = e.code
		highlights[e.typ] = e.highlight
		sources[e.typ] = e.source
	}
	sortedByCode = make([]entry, len(data))
	copy(sortedByCode, data)
	sort.Slice(sortedByCode, func(i, j int) bool {
		return sortedByCode[i].code < sortedByCode[j].code
	})
}

// Code returns the literal UTF-8 bytes of t.
func Code(t TokenType) string { return codes[t] }

// Length is equivalent to len(Code(t)).
func Length(t TokenType) int { return len(codes[t]) }

// Highlight returns the HighlightKind t maps to.
func Highlight(t TokenType) HighlightKind { return highlights[t] }

// Source returns the FeatureSource t belongs to.
func Source(t TokenType) FeatureSource { return sources[t] }

// Lookup performs a binary search of the sorted TokenType table for an
// exact match of code, returning (type, true) on success. Used to
// classify an already-matched identifier as a keyword.
func Lookup(code string) (TokenType, bool) {
	i := sort.Search(len(sortedByCode), func(i int) bool {
		return sortedByCode[i].code >= code
	})
	if i < len(sortedByCode) && sortedByCode[i].code == code {
		return sortedByCode[i].typ, true
	}
	return Illegal, false
}

// ExpressionKeywords is the set of keywords after which a following '/'
// must be interpreted as a regex literal rather than the divide operator,
// because an expression is expected next. Lifted from js.cpp's
// expr_keywords table (original_source/src/main/cpp/js.cpp).
var ExpressionKeywords = map[TokenType]bool{
	KwReturn:     true,
	KwThrow:      true,
	KwCase:       true,
	KwDelete:     true,
	KwVoid:       true,
	KwTypeof:     true,
	KwYield:      true,
	KwAwait:      true,
	KwInstanceof: true,
	KwIn:         true,
	KwNew:        true,
}

// NonRegexOperators is the set of operator/punctuation TokenTypes after
// which a following '/' is the divide operator, because they end an
// expression rather than starting one. Lifted from js.cpp's
// non_regex_ops table.
var NonRegexOperators = map[TokenType]bool{
	Increment:   true,
	Decrement:   true,
	RightParen:  true,
	RightBracket: true,
	RightBrace:  true,
	Plus:        true,
	Minus:       true,
}

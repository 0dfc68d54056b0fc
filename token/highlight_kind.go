package token

// HighlightKind is the closed set of presentational categories a token can
// carry. Renderers map each kind to a CSS class or terminal color; the
// exact class spelling is the renderer's choice, not the lexer's.
type HighlightKind int

const (
	KindError HighlightKind = iota
	KindKeywordType
	KindKeywordControl
	KindKeywordOther
	KindID
	KindNumber
	KindString
	KindStringDelim
	KindEscape
	KindComment
	KindCommentDelimiter
	KindSymPunc
	KindSymBrace
	KindSymOp
	KindMarkupTag
)

// cssClass is the canonical "ulight-" CSS class for each kind, used by
// render/html. It is not consumed by the lexer itself.
var cssClass = [...]string{
	KindError:            "error",
	KindKeywordType:      "kw-type",
	KindKeywordControl:   "kw-control",
	KindKeywordOther:     "kw-other",
	KindID:               "id",
	KindNumber:           "number",
	KindString:           "string",
	KindStringDelim:      "string-delim",
	KindEscape:           "escape",
	KindComment:          "comment",
	KindCommentDelimiter: "comment-delimiter",
	KindSymPunc:          "sym-punc",
	KindSymBrace:         "sym-brace",
	KindSymOp:            "sym-op",
	KindMarkupTag:        "markup-tag",
}

// CSSClass returns the renderer-facing CSS class name for k.
func (k HighlightKind) CSSClass() string {
	if int(k) < 0 || int(k) >= len(cssClass) {
		return "unknown"
	}
	return cssClass[k]
}

func (k HighlightKind) String() string {
	return k.CSSClass()
}

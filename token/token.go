package token

// Token is the lexer's sole output: a highlighted span. Not a parser
// token — it carries no semantic information beyond its presentational
// kind.
type Token struct {
	Begin  uint32
	Length uint32
	Kind   HighlightKind

	// Source is the feature-source provenance of the keyword/operator
	// that produced this token, or FeatureCore for everything else
	// (identifiers, strings, numbers, comments, markup). Not consumed by
	// any renderer in this repository; plumbed through per spec's
	// data-model requirement that TokenType carry provenance.
	Source FeatureSource
}

// End returns the exclusive end offset of the token.
func (t Token) End() uint32 { return t.Begin + t.Length }

// Package render holds the shared shape the CLI passes to whichever
// render/* subpackage its --format flag selects.
package render

import "github.com/example/ulight/highlight"

// Document is the output of one highlighting run, ready to hand to a
// renderer.
type Document struct {
	Source []byte
	Tokens []highlight.Token
	Lang   string
}

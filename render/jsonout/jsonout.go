// Package jsonout renders a highlighted document as a JSON array of
// token records, writing each record through jsontext.Encoder as it
// goes rather than building an intermediate []any. Render takes the
// complete token slice, so it runs after highlighting has finished.
package jsonout

import (
	"io"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/example/ulight/highlight"
)

// Render writes tokens to w as a JSON array of
// {"begin":int,"length":int,"kind":string} records, in source order.
func Render(w io.Writer, source []byte, tokens []highlight.Token) error {
	enc := jsontext.NewEncoder(w)
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	for _, t := range tokens {
		if err := writeTokenObject(enc, t); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndArray)
}

func writeTokenObject(enc *jsontext.Encoder, t highlight.Token) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	pairs := []jsontext.Token{
		jsontext.String("begin"), jsontext.Int(int64(t.Begin)),
		jsontext.String("length"), jsontext.Int(int64(t.Length)),
		jsontext.String("kind"), jsontext.String(t.Kind.CSSClass()),
	}
	for _, tok := range pairs {
		if err := enc.WriteToken(tok); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

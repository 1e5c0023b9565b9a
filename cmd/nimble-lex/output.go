package main

import (
	"encoding/json"
	"fmt"
	"io"

	istrings "github.com/Ctl-F/nimble/internal/strings"
	"github.com/Ctl-F/nimble/lexer"
)

// formats maps output format names to token writers.
var formats = map[string]func(io.Writer, []lexer.Token) error{
	"text": writeText,
	"json": writeJSON,
}

func writeText(w io.Writer, tokens []lexer.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}

// tokenJSON is the wire shape of one token. Value carries the decoded
// form of string and character literals, Uint and Float the parsed
// numbers.
type tokenJSON struct {
	Type   string   `json:"type"`
	Text   string   `json:"text"`
	Line   int      `json:"line"`
	Column int      `json:"column"`
	Offset int      `json:"offset"`
	Value  *string  `json:"value,omitempty"`
	Uint   *uint64  `json:"uint,omitempty"`
	Float  *float64 `json:"float,omitempty"`
	Base   int      `json:"base,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func writeJSON(w io.Writer, tokens []lexer.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		j := tokenJSON{
			Type:   tok.Type.String(),
			Text:   string(tok.Text),
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
			Offset: tok.Pos.Offset,
		}

		switch tok.Type {
		case lexer.ImmediateStringToken:
			if value, err := istrings.Unquote(string(tok.Text)); err == nil {
				j.Value = &value
			}
		case lexer.ImmediateCharToken:
			if b, err := istrings.UnquoteChar(string(tok.Text)); err == nil {
				value := string(b)
				j.Value = &value
			}
		case lexer.ImmediateIntegerToken:
			value := tok.Num.Uint
			j.Uint = &value
			j.Base = tok.Num.Base
		case lexer.ImmediateFloatToken:
			value := tok.Num.Float
			j.Float = &value
			j.Base = tok.Num.Base
		case lexer.ErrorToken:
			j.Error = tok.Err.Error()
		}

		out = append(out, j)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

package nimble

import (
	"github.com/mitchellh/hashstructure"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/Ctl-F/nimble/lexer"
)

// Scan tokenizes src in one pass and returns every token through the end
// marker, error tokens included. The scanner itself reports problems as
// tokens and never aborts, so the returned slice always covers the whole
// input.
func Scan(filename string, src []byte) []lexer.Token {
	span := opentracing.GlobalTracer().StartSpan(
		"scan", opentracing.Tag{Key: "file", Value: filename})
	defer span.Finish()

	l := lexer.New(filename, src)

	var tokens []lexer.Token
	errs := 0
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == lexer.ErrorToken {
			errs++
		}
		if tok.Type == lexer.EOFToken {
			break
		}
	}

	span.SetTag("tokens", len(tokens))
	span.SetTag("errors", errs)
	logrus.WithFields(logrus.Fields{
		"file":   filename,
		"tokens": len(tokens),
		"errors": errs,
	}).Debugf("scanned %d bytes", len(src))

	return tokens
}

// Errors returns the error tokens of a scan, in order. The scanner keeps
// going after a malformed literal, so one pass surfaces every problem in
// the file at once.
func Errors(tokens []lexer.Token) []lexer.Token {
	var errs []lexer.Token
	for _, tok := range tokens {
		if tok.Type == lexer.ErrorToken {
			errs = append(errs, tok)
		}
	}
	return errs
}

// WithoutComments returns the token stream with comment tokens filtered
// out. The scanner emits comments like any other token; consumers that do
// not care drop them here.
func WithoutComments(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != lexer.CommentToken {
			out = append(out, tok)
		}
	}
	return out
}

type fingerprintEntry struct {
	Type lexer.TokenType
	Text string
}

// Fingerprint hashes the (type, text) sequence of a token stream.
// Positions are left out on purpose: reformatting a file moves its tokens
// but does not change what they say, and the fingerprint only answers
// whether the code itself changed.
func Fingerprint(tokens []lexer.Token) (uint64, error) {
	entries := make([]fingerprintEntry, len(tokens))
	for i, tok := range tokens {
		entries[i] = fingerprintEntry{tok.Type, string(tok.Text)}
	}
	return hashstructure.Hash(entries, nil)
}

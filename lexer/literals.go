package lexer

import "gopkg.in/src-d/go-errors.v1"

// isEscapeByte reports whether b may follow a backslash inside a string or
// character literal. An escaped newline continues a literal onto the next
// line.
func isEscapeByte(b byte) bool {
	switch b {
	case 'n', 't', 'r', '\'', '"', '\\', '\n', '0':
		return true
	}
	return false
}

// firstErr keeps the earliest failure of a literal scan; later problems in
// the same literal never override it.
func firstErr(recorded error, fallback *errors.Kind) error {
	if recorded != nil {
		return recorded
	}
	return fallback.New()
}

// scanString matches a double-quoted string literal, delimiters included.
// The scan runs to the closing quote even after a failure so that one
// malformed literal yields exactly one error token covering its whole
// span. An unescaped newline never closes a string; an escaped one is
// consumed into a multi-line body.
func scanString(c cursor) (Token, cursor, bool) {
	if c.eof() || c.view[0] != '"' {
		return Token{}, c, false
	}

	n := 1
	var scanErr error
	for n < len(c.view) {
		switch b := c.view[n]; {
		case b == '"':
			n++
			if scanErr != nil {
				tok, rest := c.fail(n, scanErr)
				return tok, rest, true
			}
			tok, rest := c.token(ImmediateStringToken, n)
			return tok, rest, true
		case b == '\n':
			tok, rest := c.fail(n, firstErr(scanErr, ErrUnclosedStringLiteral))
			return tok, rest, true
		case b == '\\':
			if n+1 == len(c.view) {
				tok, rest := c.fail(n+1, firstErr(scanErr, ErrUnclosedStringLiteral))
				return tok, rest, true
			}
			if e := c.view[n+1]; !isEscapeByte(e) && scanErr == nil {
				scanErr = ErrInvalidEscapeCharacter.New(e)
			}
			n += 2
		default:
			n++
		}
	}

	tok, rest := c.fail(n, firstErr(scanErr, ErrUnclosedStringLiteral))
	return tok, rest, true
}

// scanChar matches a single-quoted character literal, delimiters included.
// Exactly one character, plain or escaped, must sit between the quotes;
// the escape check wins over the count check when both fail.
func scanChar(c cursor) (Token, cursor, bool) {
	if c.eof() || c.view[0] != '\'' {
		return Token{}, c, false
	}

	n := 1
	count := 0
	var scanErr error
	for n < len(c.view) {
		switch b := c.view[n]; {
		case b == '\'':
			n++
			if scanErr == nil && count != 1 {
				scanErr = ErrInvalidCharLiteral.New(count)
			}
			if scanErr != nil {
				tok, rest := c.fail(n, scanErr)
				return tok, rest, true
			}
			tok, rest := c.token(ImmediateCharToken, n)
			return tok, rest, true
		case b == '\n':
			tok, rest := c.fail(n, firstErr(scanErr, ErrUnclosedCharLiteral))
			return tok, rest, true
		case b == '\\':
			if n+1 == len(c.view) {
				tok, rest := c.fail(n+1, firstErr(scanErr, ErrUnclosedCharLiteral))
				return tok, rest, true
			}
			if e := c.view[n+1]; !isEscapeByte(e) && scanErr == nil {
				scanErr = ErrInvalidEscapeCharacter.New(e)
			}
			n += 2
			count++
		default:
			n++
			count++
		}
	}

	tok, rest := c.fail(n, firstErr(scanErr, ErrUnclosedCharLiteral))
	return tok, rest, true
}

// scanComment matches a line comment from its `//` through the newline
// that ends it, newline included; at end of input the comment runs to the
// last byte. Comments are ordinary tokens here; dropping them is the
// consumer's call.
func scanComment(c cursor) (Token, cursor, bool) {
	if len(c.view) < 2 || c.view[0] != '/' || c.view[1] != '/' {
		return Token{}, c, false
	}

	n := 2
	for n < len(c.view) {
		if c.view[n] == '\n' {
			n++
			break
		}
		n++
	}
	tok, rest := c.token(CommentToken, n)
	return tok, rest, true
}

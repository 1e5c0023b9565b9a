package lexer

// cursor is the scanner's view of the unconsumed input: a shrinking suffix
// of the source buffer plus the position of its first byte. Classifiers
// take it by value and hand back the advanced copy, so a failed match
// leaves no trace and each classifier can be exercised on its own.
type cursor struct {
	view []byte
	pos  Position
}

func (c cursor) eof() bool {
	return len(c.view) == 0
}

// advance consumes n bytes, keeping line and column in step with every
// newline crossed.
func (c cursor) advance(n int) cursor {
	for _, b := range c.view[:n] {
		if b == '\n' {
			c.pos.Line++
			c.pos.Column = 1
		} else {
			c.pos.Column++
		}
	}
	c.pos.Offset += n
	c.view = c.view[n:]
	return c
}

// token slices the next length bytes out of the view as a token stamped
// with the position of its first byte.
func (c cursor) token(typ TokenType, length int) (Token, cursor) {
	tok := Token{Type: typ, Text: c.view[:length], Pos: c.pos}
	return tok, c.advance(length)
}

// fail consumes the examined span as an error token. Error paths must
// still advance the cursor past everything they looked at, or the next
// call would chew on the same bytes forever.
func (c cursor) fail(length int, err error) (Token, cursor) {
	tok, rest := c.token(ErrorToken, length)
	tok.Err = err
	return tok, rest
}

func skipWhitespace(c cursor) cursor {
	n := 0
	for n < len(c.view) && isWhitespace(c.view[n]) {
		n++
	}
	return c.advance(n)
}

// classifier attempts to match one token shape at the front of the view,
// reporting the token, the cursor past it, and whether it matched.
type classifier func(cursor) (Token, cursor, bool)

// classifiers in dispatch priority order. Comments and numbers outrank the
// operator table so that `//` is a comment rather than two slashes and
// `.5` a float rather than a dot; keywords rely on the word-boundary check
// in scanKeyword to lose against longer identifiers.
var classifiers = []classifier{
	scanKeyword,
	scanComment,
	scanIdentifier,
	scanNumber,
	scanString,
	scanChar,
	scanOperator,
}

// Lexer produces the tokens of a source buffer, front to back. It owns all
// cursor progress; a buffer is scanned once, and re-scanning means
// constructing a fresh Lexer. Not safe for concurrent use.
type Lexer struct {
	cur cursor
}

// New returns a Lexer over src. The buffer is borrowed, not copied, and
// must not change for the Lexer's lifetime; tokens alias it.
func New(filename string, src []byte) *Lexer {
	return &Lexer{
		cur: cursor{
			view: src,
			pos:  Position{Filename: filename, Line: 1, Column: 1},
		},
	}
}

// Next returns the next token. At end of input it returns an EOFToken and
// keeps returning it on every further call. Malformed input comes back as
// error tokens that consume at least one byte, so a scan loop always
// terminates.
func (l *Lexer) Next() Token {
	l.cur = skipWhitespace(l.cur)
	if l.cur.eof() {
		return Token{Type: EOFToken, Pos: l.cur.pos}
	}

	for _, scan := range classifiers {
		if tok, rest, ok := scan(l.cur); ok {
			l.cur = rest
			return tok
		}
	}

	tok, rest := l.cur.fail(1, ErrUnexpectedCharacter.New(l.cur.view[0]))
	l.cur = rest
	return tok
}

// Line reports the line the scanner is currently stopped on, for
// diagnostics between calls; tokens carry their own positions.
func (l *Lexer) Line() int {
	return l.cur.pos.Line
}

// scanIdentifier matches a maximal run of lowercase letters, digits and
// underscores that does not start with a digit. Uppercase is not part of
// the language's identifier alphabet.
func scanIdentifier(c cursor) (Token, cursor, bool) {
	if c.eof() || !isIdentStart(c.view[0]) {
		return Token{}, c, false
	}
	n := 1
	for n < len(c.view) && isIdentPart(c.view[n]) {
		n++
	}
	tok, rest := c.token(IdentifierToken, n)
	return tok, rest, true
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isBinDigit(b byte) bool {
	return b == '0' || b == '1'
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// isWordByte is the boundary alphabet for keyword matching: anything that
// could visually extend a word, uppercase included, even though
// identifiers themselves are lowercase-only.
func isWordByte(b byte) bool {
	return isIdentPart(b) || (b >= 'A' && b <= 'Z')
}

package lexer

import "strconv"

// scanNumber matches a numeric literal, trying formats in order: hex,
// binary, bare decimal. A prefix with no digits after it rejects that
// format and falls through to the next, so `0x` on its own lexes as the
// integer 0 followed by an identifier. Overflow makes the whole classifier
// decline; the first byte then surfaces as an unexpected-character error.
// No signs, no exponents, no digit separators.
func scanNumber(c cursor) (Token, cursor, bool) {
	if tok, rest, ok, delimited := scanBaseLiteral(c, 'x', 'X', 16, isHexDigit); delimited {
		return tok, rest, ok
	}
	if tok, rest, ok, delimited := scanBaseLiteral(c, 'b', 'B', 2, isBinDigit); delimited {
		return tok, rest, ok
	}
	return scanDecimal(c)
}

// scanBaseLiteral matches 0<marker> followed by at least one digit of the
// base. delimited reports whether such a run was found at all: a delimited
// run that overflows returns delimited with ok false, so scanNumber does
// not retry the leading 0 as a decimal.
func scanBaseLiteral(c cursor, marker, altMarker byte, base int, digit func(byte) bool) (tok Token, rest cursor, ok, delimited bool) {
	if len(c.view) < 3 || c.view[0] != '0' {
		return Token{}, c, false, false
	}
	if c.view[1] != marker && c.view[1] != altMarker {
		return Token{}, c, false, false
	}

	n := 2
	for n < len(c.view) && digit(c.view[n]) {
		n++
	}
	if n == 2 {
		return Token{}, c, false, false
	}

	value, err := strconv.ParseUint(string(c.view[2:n]), base, 64)
	if err != nil {
		return Token{}, c, false, true
	}

	tok, rest = c.token(ImmediateIntegerToken, n)
	tok.Num = Number{Uint: value, Base: base, Sign: 1}
	return tok, rest, true, true
}

// scanDecimal matches a run of digits with at most one dot anywhere in it,
// leading dot allowed; a second dot ends the run rather than erroring. A
// dotted run is a float, a plain one an integer.
func scanDecimal(c cursor) (Token, cursor, bool) {
	n := 0
	dot := -1
	for n < len(c.view) {
		b := c.view[n]
		if b == '.' {
			if dot >= 0 {
				break
			}
			dot = n
			n++
			continue
		}
		if !isDigit(b) {
			break
		}
		n++
	}
	if n == 0 {
		return Token{}, c, false
	}

	text := string(c.view[:n])
	if dot >= 0 {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			// a lone dot reaches here; it belongs to the operator table
			return Token{}, c, false
		}
		tok, rest := c.token(ImmediateFloatToken, n)
		tok.Num = Number{Float: value, Base: 10, Sign: 1}
		return tok, rest, true
	}

	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return Token{}, c, false
	}
	tok, rest := c.token(ImmediateIntegerToken, n)
	tok.Num = Number{Uint: value, Base: 10, Sign: 1}
	return tok, rest, true
}

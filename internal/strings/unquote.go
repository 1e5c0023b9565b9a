package strings

import (
	"bytes"

	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrNotQuoted is returned when the input is not a complete quoted
	// literal, delimiters included.
	ErrNotQuoted = errors.NewKind("%q is not a quoted literal")

	// ErrBadEscape is returned when a backslash is followed by a
	// character outside the escape allow-list.
	ErrBadEscape = errors.NewKind("unknown escape character %q")

	// ErrNotChar is returned when a character literal does not decode to
	// exactly one byte.
	ErrNotChar = errors.NewKind("character literal %q does not decode to one byte")
)

// Unquote decodes a scanned string literal, delimiters included, to the
// text it denotes. An escaped line break joins the two source lines
// without contributing a byte; every other escape stands for exactly one.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", ErrNotQuoted.New(s)
	}
	return decode(s[1 : len(s)-1])
}

// UnquoteChar decodes a scanned character literal, delimiters included,
// to its byte value.
func UnquoteChar(s string) (byte, error) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return 0, ErrNotQuoted.New(s)
	}
	body, err := decode(s[1 : len(s)-1])
	if err != nil {
		return 0, err
	}
	if len(body) != 1 {
		return 0, ErrNotChar.New(s)
	}
	return body[0], nil
}

func decode(body string) (string, error) {
	var ret bytes.Buffer
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b != '\\' {
			ret.WriteByte(b)
			continue
		}

		i++
		if i == len(body) {
			return "", ErrBadEscape.New(byte('\\'))
		}
		switch body[i] {
		case 'n':
			ret.WriteByte('\n')
		case 't':
			ret.WriteByte('\t')
		case 'r':
			ret.WriteByte('\r')
		case '\'':
			ret.WriteByte('\'')
		case '"':
			ret.WriteByte('"')
		case '\\':
			ret.WriteByte('\\')
		case '0':
			ret.WriteByte(0)
		case '\n':
			// line continuation
		default:
			return "", ErrBadEscape.New(body[i])
		}
	}
	return ret.String(), nil
}

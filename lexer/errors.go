package lexer

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnclosedStringLiteral is set on the error token produced when a
	// string literal runs off the end of a line or of the buffer before
	// its closing quote.
	ErrUnclosedStringLiteral = errors.NewKind("unclosed string literal")

	// ErrUnclosedCharLiteral is set on the error token produced when a
	// character literal runs off the end of a line or of the buffer
	// before its closing quote.
	ErrUnclosedCharLiteral = errors.NewKind("unclosed character literal")

	// ErrInvalidEscapeCharacter is set on the error token produced when a
	// backslash inside a string or character literal is followed by a
	// character outside the escape allow-list.
	ErrInvalidEscapeCharacter = errors.NewKind("invalid escape character %q")

	// ErrInvalidCharLiteral is set on the error token produced when a
	// character literal closes around anything other than exactly one
	// character.
	ErrInvalidCharLiteral = errors.NewKind("character literal must contain exactly one character, found %d")

	// ErrUnexpectedCharacter is set on the error token produced when no
	// token class matches the input. The scanner consumes the offending
	// byte and carries on.
	ErrUnexpectedCharacter = errors.NewKind("unexpected character %q")
)

package lexer

import "fmt"

// TokenType identifies the class of a scanned token.
type TokenType uint

const (
	ErrorToken TokenType = iota
	EOFToken

	CommentToken
	IdentifierToken
	ImmediateIntegerToken
	ImmediateFloatToken
	ImmediateStringToken
	ImmediateCharToken

	AsToken
	BreakToken
	CaseToken
	ConstToken
	ContinueToken
	DefaultToken
	DoToken
	ElseToken
	EnumToken
	ExportToken
	FalseToken
	FnToken
	ForToken
	IfToken
	ImportToken
	LetToken
	NullToken
	ReturnToken
	SizeofToken
	StructToken
	SwitchToken
	TrueToken
	TypeToken
	UnionToken
	WhileToken

	LShiftEqualsToken
	RShiftEqualsToken
	LShiftToken
	RShiftToken
	LessEqualsToken
	GreaterEqualsToken
	EqualsEqualsToken
	NotEqualsToken
	AmpersandAmpersandToken
	PipePipeToken
	PlusEqualsToken
	MinusEqualsToken
	StarEqualsToken
	SlashEqualsToken
	PercentEqualsToken
	ArrowToken
	PlusToken
	MinusToken
	StarToken
	SlashToken
	PercentToken
	EqualsToken
	LessToken
	GreaterToken
	NotToken
	AmpersandToken
	PipeToken
	CaretToken
	TildeToken
	LParenToken
	RParenToken
	LBraceToken
	RBraceToken
	LBracketToken
	RBracketToken
	CommaToken
	SemicolonToken
	ColonToken
	DotToken
)

// IsKeyword reports whether the type is one of the reserved words.
func (t TokenType) IsKeyword() bool {
	return t >= AsToken && t <= WhileToken
}

// IsOperator reports whether the type is an operator or punctuation mark.
func (t TokenType) IsOperator() bool {
	return t >= LShiftEqualsToken && t <= DotToken
}

// IsLiteral reports whether the type is one of the literal or structural
// classes, comments and identifiers included.
func (t TokenType) IsLiteral() bool {
	return t >= CommentToken && t <= ImmediateCharToken
}

var tokenNames = map[TokenType]string{
	ErrorToken:            "Error",
	EOFToken:              "EOF",
	CommentToken:          "Comment",
	IdentifierToken:       "Identifier",
	ImmediateIntegerToken: "ImmediateInteger",
	ImmediateFloatToken:   "ImmediateFloat",
	ImmediateStringToken:  "ImmediateString",
	ImmediateCharToken:    "ImmediateChar",
}

func init() {
	for _, e := range keywords {
		tokenNames[e.typ] = string(e.text)
	}
	for _, e := range operators {
		tokenNames[e.typ] = string(e.text)
	}
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", uint(t))
}

// Position locates a byte in the source buffer. Line and Column are
// 1-based and count bytes, not runes.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Number is the decoded payload of a numeric literal.
type Number struct {
	Uint  uint64
	Float float64
	Base  int
	Sign  int
}

// Token is one classified unit of source text. Text aliases the original
// buffer; it is never a copy. For error tokens Text is the full span the
// scanner examined before giving up, so a token stream always accounts for
// every non-whitespace byte of its input.
type Token struct {
	Type TokenType
	Text []byte
	Pos  Position

	// Num is set for ImmediateIntegerToken and ImmediateFloatToken.
	Num Number
	// Err is set for ErrorToken. It is always one of the Err* kinds
	// declared in this package.
	Err error
}

func (t Token) String() string {
	switch t.Type {
	case EOFToken:
		return fmt.Sprintf("%s @ %s", t.Type, t.Pos)
	case ErrorToken:
		return fmt.Sprintf("%s(%q) @ %s: %s", t.Type, t.Text, t.Pos, t.Err)
	}
	return fmt.Sprintf("%s(%q) @ %s", t.Type, t.Text, t.Pos)
}

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"
)

type scanCase struct {
	input    string
	expected string
	typ      TokenType
}

// testScan runs a classifier against synthetic cursors. An empty expected
// text means the classifier must decline the input entirely.
func testScan(t *testing.T, cases []scanCase, scan classifier) {
	for _, c := range cases {
		tok, rest, ok := scan(testCursor(c.input))
		if c.expected == "" {
			assert.False(t, ok, "input %q should not match", c.input)
			continue
		}

		assert.True(t, ok, "input %q should match", c.input)
		assert.Equal(t, c.typ, tok.Type, "input %q", c.input)
		assert.Equal(t, c.expected, string(tok.Text), "input %q", c.input)
		assert.Equal(t, len(c.input)-len(c.expected), len(rest.view), "input %q", c.input)
	}
}

func testCursor(input string) cursor {
	return cursor{view: []byte(input), pos: Position{Line: 1, Column: 1}}
}

func TestScanKeyword(t *testing.T) {
	cases := []scanCase{
		{"for", "for", ForToken},
		{"for (", "for", ForToken},
		{"fortune", "", 0},
		{"format ", "", 0},
		{"forX", "", 0},
		{"for_each", "", 0},
		{"if(x)", "if", IfToken},
		{"iffy", "", 0},
		{"true||false", "true", TrueToken},
		{"return;", "return", ReturnToken},
		{"sizeof(t)", "sizeof", SizeofToken},
		{"x", "", 0},
	}

	testScan(t, cases, scanKeyword)
}

func TestScanOperator(t *testing.T) {
	cases := []scanCase{
		{">>= 2", ">>=", RShiftEqualsToken},
		{">> 2", ">>", RShiftToken},
		{"> 2", ">", GreaterToken},
		{"<<=1", "<<=", LShiftEqualsToken},
		{"<=1", "<=", LessEqualsToken},
		{"->x", "->", ArrowToken},
		{"-x", "-", MinusToken},
		{"==0", "==", EqualsEqualsToken},
		{"=0", "=", EqualsToken},
		{"&&", "&&", AmpersandAmpersandToken},
		{"&x", "&", AmpersandToken},
		{"~v", "~", TildeToken},
		{".", ".", DotToken},
		{"abc", "", 0},
		{"@", "", 0},
	}

	testScan(t, cases, scanOperator)
}

func TestScanIdentifier(t *testing.T) {
	cases := []scanCase{
		{"fortune ", "fortune", IdentifierToken},
		{"x", "x", IdentifierToken},
		{"_tmp1", "_tmp1", IdentifierToken},
		{"snake_case_99+", "snake_case_99", IdentifierToken},
		{"value.field", "value", IdentifierToken},
		{"9lives", "", 0},
		{"Upper", "", 0},
		{"+x", "", 0},
	}

	testScan(t, cases, scanIdentifier)
}

func TestScanNumber(t *testing.T) {
	cases := []scanCase{
		{"100", "100", ImmediateIntegerToken},
		{"100;", "100", ImmediateIntegerToken},
		{"0xFF", "0xFF", ImmediateIntegerToken},
		{"0Xff", "0Xff", ImmediateIntegerToken},
		{"0b101", "0b101", ImmediateIntegerToken},
		{"0B101", "0B101", ImmediateIntegerToken},
		{"3.14", "3.14", ImmediateFloatToken},
		{".1234", ".1234", ImmediateFloatToken},
		{"12.45.", "12.45", ImmediateFloatToken},
		{"7.", "7.", ImmediateFloatToken},
		// a bare prefix is not a hex literal, the zero stands alone
		{"0x", "0", ImmediateIntegerToken},
		{"0xg", "0", ImmediateIntegerToken},
		{"0b2", "0", ImmediateIntegerToken},
		{".", "", 0},
		{".x", "", 0},
		{"abc", "", 0},
		// one past the top of uint64; the leading 0 of an overflowing
		// hex or binary run must not resurface as a decimal zero
		{"18446744073709551616", "", 0},
		{"0x10000000000000000", "", 0},
		{"0b10000000000000000000000000000000000000000000000000000000000000000", "", 0},
	}

	testScan(t, cases, scanNumber)
}

func TestScanNumberValues(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		input string
		num   Number
	}{
		{"0xFF", Number{Uint: 255, Base: 16, Sign: 1}},
		{"0b101", Number{Uint: 5, Base: 2, Sign: 1}},
		{"100", Number{Uint: 100, Base: 10, Sign: 1}},
		{"18446744073709551615", Number{Uint: 18446744073709551615, Base: 10, Sign: 1}},
		{"3.14", Number{Float: 3.14, Base: 10, Sign: 1}},
		{".1234", Number{Float: 0.1234, Base: 10, Sign: 1}},
	}

	for _, c := range cases {
		tok, _, ok := scanNumber(testCursor(c.input))
		require.True(ok, "input %q", c.input)
		require.Equal(c.num, tok.Num, "input %q", c.input)
	}
}

func TestScanComment(t *testing.T) {
	cases := []scanCase{
		{"//Hello world", "//Hello world", CommentToken},
		{"// x\nrest", "// x\n", CommentToken},
		{"//\nrest", "//\n", CommentToken},
		{"//", "//", CommentToken},
		{"/ /", "", 0},
		{"/", "", 0},
	}

	testScan(t, cases, scanComment)
}

func TestScanString(t *testing.T) {
	cases := []scanCase{
		{`"hello" tail`, `"hello"`, ImmediateStringToken},
		{`"Hello\n\tWorld"`, `"Hello\n\tWorld"`, ImmediateStringToken},
		{`"esc \" quote"`, `"esc \" quote"`, ImmediateStringToken},
		{`"\0\r\\"`, `"\0\r\\"`, ImmediateStringToken},
		{"\"multi\\\nline\"", "\"multi\\\nline\"", ImmediateStringToken},
		{`""`, `""`, ImmediateStringToken},
		{`'c'`, "", 0},
		{`x"y"`, "", 0},
	}

	testScan(t, cases, scanString)
}

func TestScanStringErrors(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		input    string
		examined string
		kind     *errors.Kind
	}{
		{`"Hello World`, `"Hello World`, ErrUnclosedStringLiteral},
		{`"Hello \z"`, `"Hello \z"`, ErrInvalidEscapeCharacter},
		{"\"ab\ncd\"", `"ab`, ErrUnclosedStringLiteral},
		{`"trailing \`, `"trailing \`, ErrUnclosedStringLiteral},
		{`"`, `"`, ErrUnclosedStringLiteral},
		// the escape failure is recorded first and wins over the missing quote
		{`"\z abc`, `"\z abc`, ErrInvalidEscapeCharacter},
	}

	for _, c := range cases {
		tok, rest, ok := scanString(testCursor(c.input))
		require.True(ok, "input %q", c.input)
		require.Equal(ErrorToken, tok.Type, "input %q", c.input)
		require.Equal(c.examined, string(tok.Text), "input %q", c.input)
		require.True(c.kind.Is(tok.Err), "input %q: got %v", c.input, tok.Err)
		require.Equal(len(c.input)-len(c.examined), len(rest.view), "input %q", c.input)
	}
}

func TestScanChar(t *testing.T) {
	cases := []scanCase{
		{`'a' x`, `'a'`, ImmediateCharToken},
		{`'\n'`, `'\n'`, ImmediateCharToken},
		{`'\''`, `'\''`, ImmediateCharToken},
		{`'\\'`, `'\\'`, ImmediateCharToken},
		{`'\0'`, `'\0'`, ImmediateCharToken},
		{`"a"`, "", 0},
		{`a'b'`, "", 0},
	}

	testScan(t, cases, scanChar)
}

func TestScanCharErrors(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		input    string
		examined string
		kind     *errors.Kind
	}{
		{`'abc'`, `'abc'`, ErrInvalidCharLiteral},
		{`''`, `''`, ErrInvalidCharLiteral},
		{`'\z'`, `'\z'`, ErrInvalidEscapeCharacter},
		{`'a`, `'a`, ErrUnclosedCharLiteral},
		{"'a\nb'", `'a`, ErrUnclosedCharLiteral},
		{`'`, `'`, ErrUnclosedCharLiteral},
		{`'\`, `'\`, ErrUnclosedCharLiteral},
		// escape validity is checked before the character count
		{`'\z\z'`, `'\z\z'`, ErrInvalidEscapeCharacter},
	}

	for _, c := range cases {
		tok, rest, ok := scanChar(testCursor(c.input))
		require.True(ok, "input %q", c.input)
		require.Equal(ErrorToken, tok.Type, "input %q", c.input)
		require.Equal(c.examined, string(tok.Text), "input %q", c.input)
		require.True(c.kind.Is(tok.Err), "input %q: got %v", c.input, tok.Err)
		require.Equal(len(c.input)-len(c.examined), len(rest.view), "input %q", c.input)
	}
}

const program = `// sum of the first n squares
fn sum_squares(n: u32) -> u32 {
	let total = 0;
	for (let i = 0; i <= n; i += 1) {
		total += i * i;
	}
	return total;
}
`

func TestNextProgram(t *testing.T) {
	expected := []struct {
		typ TokenType
		val string
	}{
		{CommentToken, "// sum of the first n squares\n"},
		{FnToken, "fn"},
		{IdentifierToken, "sum_squares"},
		{LParenToken, "("},
		{IdentifierToken, "n"},
		{ColonToken, ":"},
		{IdentifierToken, "u32"},
		{RParenToken, ")"},
		{ArrowToken, "->"},
		{IdentifierToken, "u32"},
		{LBraceToken, "{"},
		{LetToken, "let"},
		{IdentifierToken, "total"},
		{EqualsToken, "="},
		{ImmediateIntegerToken, "0"},
		{SemicolonToken, ";"},
		{ForToken, "for"},
		{LParenToken, "("},
		{LetToken, "let"},
		{IdentifierToken, "i"},
		{EqualsToken, "="},
		{ImmediateIntegerToken, "0"},
		{SemicolonToken, ";"},
		{IdentifierToken, "i"},
		{LessEqualsToken, "<="},
		{IdentifierToken, "n"},
		{SemicolonToken, ";"},
		{IdentifierToken, "i"},
		{PlusEqualsToken, "+="},
		{ImmediateIntegerToken, "1"},
		{RParenToken, ")"},
		{LBraceToken, "{"},
		{IdentifierToken, "total"},
		{PlusEqualsToken, "+="},
		{IdentifierToken, "i"},
		{StarToken, "*"},
		{IdentifierToken, "i"},
		{SemicolonToken, ";"},
		{RBraceToken, "}"},
		{ReturnToken, "return"},
		{IdentifierToken, "total"},
		{SemicolonToken, ";"},
		{RBraceToken, "}"},
	}

	l := New("program.nim", []byte(program))
	for _, e := range expected {
		tk := l.Next()
		assert.Equal(t, e.typ, tk.Type)
		assert.Equal(t, e.val, string(tk.Text))
	}

	assert.Equal(t, EOFToken, l.Next().Type)
}

func TestNextErrorRecovery(t *testing.T) {
	require := require.New(t)

	l := New("", []byte("'ab' + 1"))

	tk := l.Next()
	require.Equal(ErrorToken, tk.Type)
	require.True(ErrInvalidCharLiteral.Is(tk.Err))
	require.Equal("'ab'", string(tk.Text))

	tk = l.Next()
	require.Equal(PlusToken, tk.Type)

	tk = l.Next()
	require.Equal(ImmediateIntegerToken, tk.Type)
	require.Equal(uint64(1), tk.Num.Uint)

	require.Equal(EOFToken, l.Next().Type)
}

func TestNextUnexpectedCharacter(t *testing.T) {
	require := require.New(t)

	l := New("", []byte("let @x"))

	require.Equal(LetToken, l.Next().Type)

	tk := l.Next()
	require.Equal(ErrorToken, tk.Type)
	require.True(ErrUnexpectedCharacter.Is(tk.Err))
	require.Equal("@", string(tk.Text))

	tk = l.Next()
	require.Equal(IdentifierToken, tk.Type)
	require.Equal("x", string(tk.Text))

	require.Equal(EOFToken, l.Next().Type)
}

func TestNextNumericOverflow(t *testing.T) {
	require := require.New(t)

	l := New("", []byte("0x10000000000000000"))

	tk := l.Next()
	require.Equal(ErrorToken, tk.Type)
	require.True(ErrUnexpectedCharacter.Is(tk.Err))
	require.Equal("0", string(tk.Text))

	tk = l.Next()
	require.Equal(IdentifierToken, tk.Type)
	require.Equal("x10000000000000000", string(tk.Text))

	require.Equal(EOFToken, l.Next().Type)
}

func TestNextEOFIdempotent(t *testing.T) {
	require := require.New(t)

	l := New("", []byte("x"))
	require.Equal(IdentifierToken, l.Next().Type)

	end := l.Next()
	require.Equal(EOFToken, end.Type)
	for i := 0; i < 3; i++ {
		require.Equal(end, l.Next())
	}
}

func TestNextPositions(t *testing.T) {
	require := require.New(t)

	l := New("pos.nim", []byte("let x\n\ty = 2"))

	expected := []struct {
		val                  string
		offset, line, column int
	}{
		{"let", 0, 1, 1},
		{"x", 4, 1, 5},
		{"y", 7, 2, 2},
		{"=", 9, 2, 4},
		{"2", 11, 2, 6},
	}

	for _, e := range expected {
		tk := l.Next()
		require.Equal(e.val, string(tk.Text))
		require.Equal("pos.nim", tk.Pos.Filename)
		require.Equal(e.offset, tk.Pos.Offset)
		require.Equal(e.line, tk.Pos.Line)
		require.Equal(e.column, tk.Pos.Column)
	}

	end := l.Next()
	require.Equal(EOFToken, end.Type)
	require.Equal(12, end.Pos.Offset)
}

func TestNextMultilineString(t *testing.T) {
	require := require.New(t)

	l := New("", []byte("\"a\\\nb\" x"))

	tk := l.Next()
	require.Equal(ImmediateStringToken, tk.Type)
	require.Equal("\"a\\\nb\"", string(tk.Text))
	require.Equal(1, tk.Pos.Line)

	tk = l.Next()
	require.Equal(IdentifierToken, tk.Type)
	require.Equal(2, tk.Pos.Line)
	require.Equal(4, tk.Pos.Column)
}

func TestLine(t *testing.T) {
	require := require.New(t)

	l := New("", []byte("a\nb\nc"))
	require.Equal(1, l.Line())

	l.Next()
	require.Equal(1, l.Line())
	l.Next()
	require.Equal(2, l.Line())
	l.Next()
	require.Equal(3, l.Line())
}

func TestNextAllocations(t *testing.T) {
	src := []byte("let x = y + z; // neat")
	avg := testing.AllocsPerRun(100, func() {
		l := New("alloc", src)
		for tok := l.Next(); tok.Type != EOFToken; tok = l.Next() {
		}
	})

	// tokens alias the buffer; the Lexer itself is the only allocation
	assert.True(t, avg <= 1, "allocations per scan: %v", avg)
}

func BenchmarkNext(b *testing.B) {
	src := []byte(program)
	b.SetBytes(int64(len(src)))

	for i := 0; i < b.N; i++ {
		l := New("bench.nim", src)
		for tok := l.Next(); tok.Type != EOFToken; tok = l.Next() {
		}
	}
}

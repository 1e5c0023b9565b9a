package lexer

import "bytes"

type tableEntry struct {
	text []byte
	typ  TokenType
}

// keywords, alphabetical. Matching is first byte-exact prefix, so order
// only matters for readability here; the word-boundary check in
// scanKeyword is what keeps `for` from matching inside `fortune`.
var keywords = []tableEntry{
	{[]byte("as"), AsToken},
	{[]byte("break"), BreakToken},
	{[]byte("case"), CaseToken},
	{[]byte("const"), ConstToken},
	{[]byte("continue"), ContinueToken},
	{[]byte("default"), DefaultToken},
	{[]byte("do"), DoToken},
	{[]byte("else"), ElseToken},
	{[]byte("enum"), EnumToken},
	{[]byte("export"), ExportToken},
	{[]byte("false"), FalseToken},
	{[]byte("fn"), FnToken},
	{[]byte("for"), ForToken},
	{[]byte("if"), IfToken},
	{[]byte("import"), ImportToken},
	{[]byte("let"), LetToken},
	{[]byte("null"), NullToken},
	{[]byte("return"), ReturnToken},
	{[]byte("sizeof"), SizeofToken},
	{[]byte("struct"), StructToken},
	{[]byte("switch"), SwitchToken},
	{[]byte("true"), TrueToken},
	{[]byte("type"), TypeToken},
	{[]byte("union"), UnionToken},
	{[]byte("while"), WhileToken},
}

// operators, longest first. The match is first-prefix-wins and does not
// sort by length itself, so every operator must come before its own
// prefixes; grouping by descending length satisfies that wholesale.
var operators = []tableEntry{
	{[]byte("<<="), LShiftEqualsToken},
	{[]byte(">>="), RShiftEqualsToken},

	{[]byte("<<"), LShiftToken},
	{[]byte(">>"), RShiftToken},
	{[]byte("<="), LessEqualsToken},
	{[]byte(">="), GreaterEqualsToken},
	{[]byte("=="), EqualsEqualsToken},
	{[]byte("!="), NotEqualsToken},
	{[]byte("&&"), AmpersandAmpersandToken},
	{[]byte("||"), PipePipeToken},
	{[]byte("+="), PlusEqualsToken},
	{[]byte("-="), MinusEqualsToken},
	{[]byte("*="), StarEqualsToken},
	{[]byte("/="), SlashEqualsToken},
	{[]byte("%="), PercentEqualsToken},
	{[]byte("->"), ArrowToken},

	{[]byte("+"), PlusToken},
	{[]byte("-"), MinusToken},
	{[]byte("*"), StarToken},
	{[]byte("/"), SlashToken},
	{[]byte("%"), PercentToken},
	{[]byte("="), EqualsToken},
	{[]byte("<"), LessToken},
	{[]byte(">"), GreaterToken},
	{[]byte("!"), NotToken},
	{[]byte("&"), AmpersandToken},
	{[]byte("|"), PipeToken},
	{[]byte("^"), CaretToken},
	{[]byte("~"), TildeToken},
	{[]byte("("), LParenToken},
	{[]byte(")"), RParenToken},
	{[]byte("{"), LBraceToken},
	{[]byte("}"), RBraceToken},
	{[]byte("["), LBracketToken},
	{[]byte("]"), RBracketToken},
	{[]byte(","), CommaToken},
	{[]byte(";"), SemicolonToken},
	{[]byte(":"), ColonToken},
	{[]byte("."), DotToken},
}

// scanKeyword matches a reserved word. A table hit only counts when the
// byte after it could not extend an identifier, in either case; `for` must
// lose against `fortune` and `forX` alike.
func scanKeyword(c cursor) (Token, cursor, bool) {
	for _, e := range keywords {
		if !bytes.HasPrefix(c.view, e.text) {
			continue
		}
		if len(c.view) > len(e.text) && isWordByte(c.view[len(e.text)]) {
			continue
		}
		tok, rest := c.token(e.typ, len(e.text))
		return tok, rest, true
	}
	return Token{}, c, false
}

// scanOperator matches the longest operator or punctuation mark at the
// front of the view. No boundary check: `<<=42` is `<<=` then `42`.
func scanOperator(c cursor) (Token, cursor, bool) {
	for _, e := range operators {
		if bytes.HasPrefix(c.view, e.text) {
			tok, rest := c.token(e.typ, len(e.text))
			return tok, rest, true
		}
	}
	return Token{}, c, false
}

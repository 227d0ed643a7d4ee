/*
File    : lynx/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents a test case for ConsumeTokens: source in,
// expected token stream out.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `let five = 5;`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "five"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `fn add(x, y) { return x + y; }`,
			ExpectedTokens: []Token{
				NewToken(FUNC_KEY, "fn"),
				NewToken(IDENTIFIER_ID, "add"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `1 == 1; 1 != 2; 1 <= 2; 2 >= 1;`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "1"),
				NewToken(EQ_OP, "=="),
				NewToken(INT_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_LIT, "1"),
				NewToken(NE_OP, "!="),
				NewToken(INT_LIT, "2"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_LIT, "1"),
				NewToken(LE_OP, "<="),
				NewToken(INT_LIT, "2"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_LIT, "2"),
				NewToken(GE_OP, ">="),
				NewToken(INT_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `"hello world"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "hello world"),
			},
		},
		{
			Input: `[1, 2][0]; {"a": 1}; while (true) { break; }`,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACKET, "["),
				NewToken(INT_LIT, "1"),
				NewToken(COMMA_DELIM, ","),
				NewToken(INT_LIT, "2"),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(INT_LIT, "0"),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(STRING_LIT, "a"),
				NewToken(COLON_DELIM, ":"),
				NewToken(INT_LIT, "1"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(WHILE_KEY, "while"),
				NewToken(LEFT_PAREN, "("),
				NewToken(TRUE_KEY, "true"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(BREAK_KEY, "break"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `@`,
			ExpectedTokens: []Token{
				NewToken(INVALID_TYPE, "@"),
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		tokens := lex.ConsumeTokens()

		assert.Equal(t, len(tt.ExpectedTokens), len(tokens), "token count mismatch for input %q", tt.Input)
		for i, expected := range tt.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type, "token %d type mismatch for input %q", i, tt.Input)
			assert.Equal(t, expected.Literal, tokens[i].Literal, "token %d literal mismatch for input %q", i, tt.Input)
		}
	}
}

func TestLexer_LineAndColumnTracking(t *testing.T) {
	lex := NewLexer("let a = 1;\nlet b = 2;")
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 1, tokens[0].Line)
	// "let" on the second line should report Line == 2.
	var secondLet Token
	for _, tok := range tokens {
		if tok.Type == LET_KEY && tok.Line == 2 {
			secondLet = tok
		}
	}
	assert.Equal(t, "let", secondLet.Literal)
}

func TestLexer_EOFIsSticky(t *testing.T) {
	lex := NewLexer("")
	first := lex.NextToken()
	second := lex.NextToken()
	assert.Equal(t, EOF_TYPE, first.Type)
	assert.Equal(t, EOF_TYPE, second.Type)
}

/*
File    : lynx/parser/parser.go
*/

// Package parser implements a Pratt (top-down operator precedence) parser
// that consumes a lexer.Lexer's tokens and builds an *ast.Program. Parsing
// is strictly syntactic: it never evaluates anything, and it collects a
// list of ParseErrors instead of ever panicking.
package parser

import (
	"fmt"

	"github.com/lynxlang/lynx/ast"
	"github.com/lynxlang/lynx/lexer"
)

// ParseError is one diagnostic produced while parsing, carrying enough
// source position to point a user at the offending token.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (pe ParseError) String() string {
	return fmt.Sprintf("[%d:%d] parse error: %s", pe.Line, pe.Column, pe.Message)
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the parser's state machine: the current and lookahead
// tokens, the prefix/infix parselet tables keyed by token type, and the
// accumulated parse errors.
type Parser struct {
	lex lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []ParseError

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over src and primes curToken/peekToken so Parse can
// begin immediately.
func New(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENTIFIER_ID, p.parseIdentifier)
	p.registerPrefix(lexer.INT_LIT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING_LIT, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE_KEY, p.parseBooleanLiteral)
	p.registerPrefix(lexer.FALSE_KEY, p.parseBooleanLiteral)
	p.registerPrefix(lexer.NOT_OP, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS_OP, p.parsePrefixExpression)
	p.registerPrefix(lexer.LEFT_PAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.LEFT_BRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LEFT_BRACE, p.parseHashLiteral)
	p.registerPrefix(lexer.IF_KEY, p.parseIfExpression)
	p.registerPrefix(lexer.WHILE_KEY, p.parseWhileExpression)
	p.registerPrefix(lexer.BREAK_KEY, p.parseBreakExpression)
	p.registerPrefix(lexer.FUNC_KEY, p.parseFunctionLiteral)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	p.registerInfix(lexer.PLUS_OP, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS_OP, p.parseInfixExpression)
	p.registerInfix(lexer.MUL_OP, p.parseInfixExpression)
	p.registerInfix(lexer.DIV_OP, p.parseInfixExpression)
	p.registerInfix(lexer.EQ_OP, p.parseInfixExpression)
	p.registerInfix(lexer.NE_OP, p.parseInfixExpression)
	p.registerInfix(lexer.LT_OP, p.parseInfixExpression)
	p.registerInfix(lexer.GT_OP, p.parseInfixExpression)
	p.registerInfix(lexer.LE_OP, p.parseInfixExpression)
	p.registerInfix(lexer.GE_OP, p.parseInfixExpression)
	p.registerInfix(lexer.LEFT_PAREN, p.parseCallExpression)
	p.registerInfix(lexer.LEFT_BRACKET, p.parseIndexExpression)
	p.registerInfix(lexer.ASSIGN_OP, p.parseAssignExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tt lexer.TokenType, fn prefixParseFn) { p.prefixParseFns[tt] = fn }
func (p *Parser) registerInfix(tt lexer.TokenType, fn infixParseFn)   { p.infixParseFns[tt] = fn }

// Errors returns every ParseError collected so far.
func (p *Parser) Errors() []ParseError { return p.errors }

// HasErrors reports whether parsing encountered any errors.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, ParseError{
		Line:    p.curToken.Line,
		Column:  p.curToken.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// nextToken pumps the token stream forward by one, preserving the
// "current is the last token consumed by this rule" invariant every
// grammar rule below relies on.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(tt lexer.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt lexer.TokenType) bool { return p.peekToken.Type == tt }

// expectPeek checks the peek token's type by direct equality, never
// through a bound pattern variable that would always match, and advances
// past it on success.
func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.addError("expected next token to be %s, got %s instead", tt, p.peekToken.Type)
	return false
}

// Parse consumes the entire token stream and returns the resulting
// Program. Parsing always terminates (Parser totality): every statement
// parse advances at least one token, and a malformed top-level statement
// is skipped up to and including the next `;` rather than looping.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(lexer.EOF_TYPE) {
		errorsBefore := len(p.errors)
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		if len(p.errors) > errorsBefore {
			for !p.curTokenIs(lexer.SEMICOLON_DELIM) && !p.curTokenIs(lexer.EOF_TYPE) {
				p.nextToken()
			}
		}
		p.nextToken()
	}
	return program
}

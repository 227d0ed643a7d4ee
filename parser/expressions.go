/*
File    : lynx/parser/expressions.go
*/
package parser

import (
	"strconv"

	"github.com/lynxlang/lynx/ast"
	"github.com/lynxlang/lynx/lexer"
)

// parseExpression is the core Pratt loop: dispatch on curToken's prefix
// parselet, then keep consuming infix continuations while the peek token
// binds tighter than minPrecedence.
func (p *Parser) parseExpression(minPrecedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError("no prefix parse function for %s found", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON_DELIM) && minPrecedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError("could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE_KEY)}
}

// parsePrefixExpression parses `!x` or `-x`, binding the operand at PREFIX
// precedence so e.g. `-a * b` parses as `(-a) * b`.
func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

// parseInfixExpression parses a left-associative binary operator: the
// right operand is parsed at the operator's own precedence, so a repeated
// operator like `a - b - c` nests as `(a - b) - c`.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseAssignExpression parses `identifier = expr`. left must already be
// an *ast.Identifier; anything else is a parse error, since Lynx has no
// other assignable expression form (no index-assignment, no field
// assignment).
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.addError("left-hand side of assignment must be an identifier, got %T", left)
		return nil
	}
	expr := &ast.AssignExpression{Token: p.curToken, Name: ident}
	p.nextToken()
	expr.Value = p.parseExpression(ASSIGN)
	return expr
}

// parseGroupedExpression parses `( expr )`.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseArrayLiteral parses `[ e1, e2, ... ]`.
func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curToken}
	arr.Elements = p.parseExpressionList(lexer.RIGHT_BRACKET)
	return arr
}

// parseHashLiteral parses `{ k1: v1, k2: v2, ... }`.
func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.curToken}

	for !p.peekTokenIs(lexer.RIGHT_BRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.COLON_DELIM) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if !p.peekTokenIs(lexer.RIGHT_BRACE) && !p.expectPeek(lexer.COMMA_DELIM) {
			return nil
		}
	}

	if !p.expectPeek(lexer.RIGHT_BRACE) {
		return nil
	}
	return hash
}

// parseExpressionList parses a comma-separated list of expressions up to
// (and consuming) the end token. Shared by array literals and call
// arguments.
func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA_DELIM) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// parseIfExpression parses `if` `(`? condition `)`? `{` consequence `}`
// [`else` `{` alternative `}`], with the parentheses around the condition
// optional.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	hasParen := p.peekTokenIs(lexer.LEFT_PAREN)
	if hasParen {
		p.nextToken()
	}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)
	if hasParen && !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}

	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(lexer.ELSE_KEY) {
		p.nextToken()
		if !p.expectPeek(lexer.LEFT_BRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}
	return expr
}

// parseWhileExpression parses `while` `(`? condition `)`? `{` body `}`.
func (p *Parser) parseWhileExpression() ast.Expression {
	expr := &ast.WhileExpression{Token: p.curToken}

	hasParen := p.peekTokenIs(lexer.LEFT_PAREN)
	if hasParen {
		p.nextToken()
	}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)
	if hasParen && !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}

	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	expr.Body = p.parseBlockStatement()
	return expr
}

func (p *Parser) parseBreakExpression() ast.Expression {
	return &ast.BreakExpression{Token: p.curToken}
}

// parseFunctionLiteral parses `fn` [name] `(` params `)` `{` body `}`. A
// bare identifier right after `fn` (not `(`) names a declaration; its
// absence produces an anonymous function literal.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.curToken}

	if p.peekTokenIs(lexer.IDENTIFIER_ID) {
		p.nextToken()
		fn.Name = p.curToken.Literal
	}

	if !p.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	return fn
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.peekTokenIs(lexer.RIGHT_PAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(lexer.COMMA_DELIM) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return params
}

// parseCallExpression parses `<function>(<args>)`.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Function: function}
	expr.Arguments = p.parseExpressionList(lexer.RIGHT_PAREN)
	return expr
}

// parseIndexExpression parses `<left>[<index>]`.
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RIGHT_BRACKET) {
		return nil
	}
	return expr
}

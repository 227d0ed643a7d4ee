/*
File    : lynx/parser/statements.go
*/
package parser

import (
	"github.com/lynxlang/lynx/ast"
	"github.com/lynxlang/lynx/lexer"
)

// parseStatement dispatches to the grammar rule for the statement starting
// at curToken. Anything that isn't `let` or `return` is an expression
// statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.LET_KEY:
		return p.parseLetStatement()
	case lexer.RETURN_KEY:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let identifier = expr ;`.
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(lexer.IDENTIFIER_ID) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.ASSIGN_OP) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}
	return stmt
}

// parseReturnStatement parses `return expr ;`.
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}
	return stmt
}

// parseExpressionStatement parses a bare expression; the trailing `;` is
// optional.
func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}
	return stmt
}

// parseBlockStatement parses `{ statements... }`, assuming curToken is the
// opening `{`. It stops at the matching `}` or at EOF, so a missing close
// brace still terminates parsing instead of looping.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()

	for !p.curTokenIs(lexer.RIGHT_BRACE) && !p.curTokenIs(lexer.EOF_TYPE) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

/*
File    : lynx/parser/precedence.go
*/
package parser

import "github.com/lynxlang/lynx/lexer"

// Operator precedence levels, lowest to highest. LOWEST is the sentinel
// every top-level parseExpression call starts from; ASSIGN sits one level
// above it so `=` still binds more loosely than every other operator
// (parseAssignExpression parses its right-hand side at ASSIGN precedence,
// so `x = a + b` consumes the whole `a + b` as the value, since SUM
// outranks ASSIGN, while `x = y = z` does not chain, since assignment is
// not part of the grammar as a general sub-expression).
const (
	_ int = iota
	LOWEST
	ASSIGN
	EQUALS      // == != <= >=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN_OP:    ASSIGN,
	lexer.EQ_OP:        EQUALS,
	lexer.NE_OP:        EQUALS,
	lexer.LE_OP:        EQUALS,
	lexer.GE_OP:        EQUALS,
	lexer.LT_OP:        LESSGREATER,
	lexer.GT_OP:        LESSGREATER,
	lexer.PLUS_OP:      SUM,
	lexer.MINUS_OP:     SUM,
	lexer.MUL_OP:       PRODUCT,
	lexer.DIV_OP:       PRODUCT,
	lexer.LEFT_PAREN:   CALL,
	lexer.LEFT_BRACKET: INDEX,
}

// peekPrecedence returns the binding power of the peek token, or LOWEST if
// it is not an infix operator.
func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// curPrecedence returns the binding power of the current token, or LOWEST
// if it is not an infix operator.
func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

/*
File    : lynx/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/lynxlang/lynx/ast"
	"github.com/lynxlang/lynx/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src)
	program := p.Parse()
	if p.HasErrors() {
		for _, err := range p.Errors() {
			t.Logf("parse error: %s", err.String())
		}
		require.False(t, p.HasErrors(), "expected no parse errors")
	}
	return program
}

func TestLetStatement(t *testing.T) {
	program := parseProgram(t, `let x = 5;`)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.LetStatement)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Name.Value)

	intLit, ok := stmt.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), intLit.Value)
}

func TestReturnStatement(t *testing.T) {
	program := parseProgram(t, `return 10;`)
	require.Len(t, program.Statements, 1)
	_, ok := program.Statements[0].(*ast.ReturnStatement)
	assert.True(t, ok)
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b * c", "(a + (b * c))"},
		{"(a + b) * c", "((a + b) * c)"},
		{"a > b == c < d", "((a > b) == (c < d))"},
		{"a + add(b, c)", "(a + add(b, c))"},
		{"a * [1, 2, 3][b * c] * d", "((a * ([1, 2, 3][(b * c)])) * d)"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)
		assert.Equal(t, tt.expected, program.Statements[0].String(), "for input %q", tt.input)
	}
}

func TestAssignExpressionBindsLooserThanSum(t *testing.T) {
	program := parseProgram(t, `x = a + b;`)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)

	assign, ok := stmt.Expression.(*ast.AssignExpression)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Value)

	_, ok = assign.Value.(*ast.InfixExpression)
	assert.True(t, ok, "expected assignment value to parse as the whole `a + b` infix expression")
}

func TestAssignRequiresIdentifierLHS(t *testing.T) {
	p := New(`5 = 1;`)
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestIfExpressionWithoutParens(t *testing.T) {
	program := parseProgram(t, `if x < y { x } else { y }`)
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ifExpr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	assert.NotNil(t, ifExpr.Alternative)
}

func TestWhileExpression(t *testing.T) {
	program := parseProgram(t, `while (i < 10) { i = i + 1; }`)
	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	_, ok := stmt.Expression.(*ast.WhileExpression)
	assert.True(t, ok)
}

func TestFunctionLiteralNamedAndAnonymous(t *testing.T) {
	program := parseProgram(t, `fn add(x, y) { x + y } let f = fn(x) { x };`)
	require.Len(t, program.Statements, 2)

	named := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.FunctionLiteral)
	assert.Equal(t, "add", named.Name)
	assert.Len(t, named.Parameters, 2)

	letStmt := program.Statements[1].(*ast.LetStatement)
	anon := letStmt.Value.(*ast.FunctionLiteral)
	assert.Equal(t, "", anon.Name)
}

func TestHashLiteral(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	require.True(t, ok)
	assert.Len(t, hash.Pairs, 2)
}

func TestIndexExpression(t *testing.T) {
	program := parseProgram(t, `myArray[1 + 1]`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.IndexExpression)
	require.True(t, ok)
	assert.Equal(t, "myArray", idx.Left.(*ast.Identifier).Value)
}

func TestParserReportsErrorInstead0fPanicking(t *testing.T) {
	p := New(`let x = ;`)
	p.Parse()
	assert.True(t, p.HasErrors())
	for _, err := range p.Errors() {
		assert.NotEmpty(t, err.String())
	}
}

func TestLookaheadHelpersCompareByDirectEquality(t *testing.T) {
	// Regression test for the "lookahead no-ops" bug: expectPeek must fail
	// for a type it was not asked to match, not vacuously succeed.
	p := New(`+`)
	ok := p.expectPeek(lexer.TokenType("NOT_A_REAL_TYPE"))
	assert.False(t, ok)
}

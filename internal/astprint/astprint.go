/*
File    : lynx/internal/astprint/astprint.go
*/

// Package astprint renders an *ast.Program as an indented debug tree,
// using a plain type switch over ast.Node to match the rest of this
// module's AST-dispatch convention.
package astprint

import (
	"bytes"
	"fmt"

	"github.com/lynxlang/lynx/ast"
)

const indentSize = 2

// Printer accumulates an indented textual rendering of an AST.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// New creates an empty Printer.
func New() *Printer {
	return &Printer{}
}

// Print renders node and everything beneath it, returning the accumulated
// text.
func (p *Printer) Print(node ast.Node) string {
	p.visit(node)
	return p.buf.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	fmt.Fprintf(&p.buf, format+"\n", args...)
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *Printer) visit(node ast.Node) {
	switch n := node.(type) {

	case *ast.Program:
		p.line("Program")
		p.nested(func() {
			for _, stmt := range n.Statements {
				p.visit(stmt)
			}
		})

	case *ast.LetStatement:
		p.line("Let %s", n.Name.Value)
		p.nested(func() { p.visit(n.Value) })

	case *ast.ReturnStatement:
		p.line("Return")
		p.nested(func() { p.visit(n.Value) })

	case *ast.ExpressionStatement:
		p.visit(n.Expression)

	case *ast.BlockStatement:
		p.line("Block")
		p.nested(func() {
			for _, stmt := range n.Statements {
				p.visit(stmt)
			}
		})

	case *ast.Identifier:
		p.line("Identifier %s", n.Value)

	case *ast.IntegerLiteral:
		p.line("Integer %d", n.Value)

	case *ast.StringLiteral:
		p.line("String %q", n.Value)

	case *ast.BooleanLiteral:
		p.line("Boolean %t", n.Value)

	case *ast.ArrayLiteral:
		p.line("Array")
		p.nested(func() {
			for _, el := range n.Elements {
				p.visit(el)
			}
		})

	case *ast.HashLiteral:
		p.line("Hash")
		p.nested(func() {
			for _, pair := range n.Pairs {
				p.line("Pair")
				p.nested(func() {
					p.visit(pair.Key)
					p.visit(pair.Value)
				})
			}
		})

	case *ast.PrefixExpression:
		p.line("Prefix %s", n.Operator)
		p.nested(func() { p.visit(n.Right) })

	case *ast.InfixExpression:
		p.line("Infix %s", n.Operator)
		p.nested(func() {
			p.visit(n.Left)
			p.visit(n.Right)
		})

	case *ast.AssignExpression:
		p.line("Assign %s", n.Name.Value)
		p.nested(func() { p.visit(n.Value) })

	case *ast.IndexExpression:
		p.line("Index")
		p.nested(func() {
			p.visit(n.Left)
			p.visit(n.Index)
		})

	case *ast.IfExpression:
		p.line("If")
		p.nested(func() {
			p.visit(n.Condition)
			p.visit(n.Consequence)
			if n.Alternative != nil {
				p.visit(n.Alternative)
			}
		})

	case *ast.WhileExpression:
		p.line("While")
		p.nested(func() {
			p.visit(n.Condition)
			p.visit(n.Body)
		})

	case *ast.BreakExpression:
		p.line("Break")

	case *ast.FunctionLiteral:
		name := n.Name
		if name == "" {
			name = "<anonymous>"
		}
		p.line("Function %s", name)
		p.nested(func() { p.visit(n.Body) })

	case *ast.CallExpression:
		p.line("Call")
		p.nested(func() {
			p.visit(n.Function)
			for _, a := range n.Arguments {
				p.visit(a)
			}
		})

	default:
		p.line("<unknown node %T>", n)
	}
}

/*
File    : lynx/evaluator/evaluator.go
*/

// Package evaluator walks an *ast.Program against an *environment.Environment
// and produces an object.Object. Dispatch is an exhaustive type switch over
// ast.Expression/ast.Statement: Expression, Statement and Value are closed
// sums handled by sealed-variant case analysis rather than a Visitor/Accept
// double dispatch (see DESIGN.md).
package evaluator

import (
	"io"

	"github.com/lynxlang/lynx/ast"
	"github.com/lynxlang/lynx/builtin"
	"github.com/lynxlang/lynx/environment"
	"github.com/lynxlang/lynx/object"
)

// Evaluator holds the state needed across a sequence of Eval calls: the
// output stream the `print` builtin writes to, and (during applyFunction)
// the current call depth, bounded to keep a runaway recursive Lynx program
// from crashing the host process with a Go stack overflow.
type Evaluator struct {
	Writer       io.Writer
	callDepth    int
	maxCallDepth int
}

// defaultMaxCallDepth bounds recursive Lynx function calls so a runaway
// recursive program fails with a runtime Error instead of a Go stack
// overflow.
const defaultMaxCallDepth = 1024

// New creates an Evaluator that writes `print` output to w.
func New(w io.Writer) *Evaluator {
	return &Evaluator{Writer: w, maxCallDepth: defaultMaxCallDepth}
}

// NewGlobalEnvironment returns an environment pre-populated with the
// builtin registry.
func NewGlobalEnvironment() *environment.Environment {
	env := environment.NewEnvironment()
	for _, b := range builtin.All() {
		env.Set(b.Name, b)
	}
	return env
}

// Eval dispatches on the dynamic type of node and returns the resulting
// Object. node is either a Statement or an Expression (ast.BlockStatement
// implements both, since it appears in both statement and expression
// positions in the grammar).
func (e *Evaluator) Eval(node ast.Node, env *environment.Environment) object.Object {
	switch node := node.(type) {

	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *ast.LetStatement:
		val := e.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return object.NULL

	case *ast.ReturnStatement:
		val := e.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.BooleanLiteral:
		return object.NativeBool(node.Value)

	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}

	case *ast.HashLiteral:
		return e.evalHashLiteral(node, env)

	case *ast.IndexExpression:
		return e.evalIndexExpression(node, env)

	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *ast.AssignExpression:
		val := e.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		if _, ok := env.Assign(node.Name.Value, val); !ok {
			return object.NewError("no identifier found: %s", node.Name.Value)
		}
		return val

	case *ast.IfExpression:
		return e.evalIfExpression(node, env)

	case *ast.WhileExpression:
		return e.evalWhileExpression(node, env)

	case *ast.BreakExpression:
		return &object.Break{}

	case *ast.FunctionLiteral:
		fn := &object.Function{Name: node.Name, Parameters: node.Parameters, Body: node.Body, Env: env}
		if node.Name != "" {
			env.Set(node.Name, fn)
			return object.NULL
		}
		return fn

	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	}

	return object.NewError("unhandled AST node: %T", node)
}

// evalProgram evaluates each top-level statement in order, unwrapping a
// ReturnValue sentinel reaching the top level (a bare `return` outside any
// function is not an error in this evaluator; its value simply becomes the
// program's value) and stopping on the first Error.
func (e *Evaluator) evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = object.NULL
	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)
		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}
	return result
}

// evalBlockStatement evaluates a block's statements in order. Its value is
// that of the last statement; a Return or Break sentinel produced partway
// through stops the block immediately and propagates the sentinel
// unchanged to the caller (a function-call boundary unwraps Return; a
// while-loop boundary unwraps Break).
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	var result object.Object = object.NULL
	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)
		if result != nil {
			rt := result.Type()
			if rt == object.ReturnValueObj || rt == object.BreakObj || rt == object.ErrorObj {
				return result
			}
		}
	}
	return result
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return object.NewError("no identifier found: %s", node.Value)
}

func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *environment.Environment) []object.Object {
	result := make([]object.Object, 0, len(exprs))
	for _, expr := range exprs {
		val := e.Eval(expr, env)
		if isError(val) {
			return []object.Object{val}
		}
		result = append(result, val)
	}
	return result
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *environment.Environment) object.Object {
	condition := e.Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}
	if object.IsTruthy(condition) {
		return e.Eval(node.Consequence, env)
	}
	if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return object.NULL
}

// evalWhileExpression repeatedly evaluates body while condition is truthy,
// stopping either on a falsy condition or on the body producing a Break
// sentinel. The loop's own value is always Null; an Error produced by the
// body or condition propagates immediately.
func (e *Evaluator) evalWhileExpression(node *ast.WhileExpression, env *environment.Environment) object.Object {
	for {
		condition := e.Eval(node.Condition, env)
		if isError(condition) {
			return condition
		}
		if !object.IsTruthy(condition) {
			return object.NULL
		}

		result := e.Eval(node.Body, env)
		if isError(result) {
			return result
		}
		if _, ok := result.(*object.Break); ok {
			return object.NULL
		}
	}
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *environment.Environment) object.Object {
	fn := e.Eval(node.Function, env)
	if isError(fn) {
		return fn
	}
	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}
	return e.applyFunction(fn, args)
}

// applyFunction dispatches a call by the callee's runtime type:
//   - *object.Builtin invokes the host function directly.
//   - *object.Function creates a new environment parented to the
//     function's *captured* environment (never the caller's), binds
//     parameters positionally, evaluates the body, and unwraps a
//     ReturnValue if the body produced one. Excess arguments are ignored;
//     missing ones are bound to Null.
//   - anything else is a runtime Error.
func (e *Evaluator) applyFunction(fn object.Object, args []object.Object) object.Object {
	switch fn := fn.(type) {
	case *object.Builtin:
		return fn.Fn(e.Writer, args...)

	case *object.Function:
		capturedEnv, ok := fn.Env.(*environment.Environment)
		if !ok {
			return object.NewError("function closure has no evaluable environment")
		}

		e.callDepth++
		defer func() { e.callDepth-- }()
		if e.callDepth > e.maxCallDepth {
			return object.NewError("call stack exceeded depth %d", e.maxCallDepth)
		}

		callEnv := environment.NewEnclosedEnvironment(capturedEnv)
		for i, param := range fn.Parameters {
			if i < len(args) {
				callEnv.Set(param.Value, args[i])
			} else {
				callEnv.Set(param.Value, object.NULL)
			}
		}

		evaluated := e.Eval(fn.Body, callEnv)
		if returnValue, ok := evaluated.(*object.ReturnValue); ok {
			return returnValue.Value
		}
		return evaluated

	default:
		return object.NewError("not a function: %s", fn.Type())
	}
}

func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	_, ok := obj.(*object.Error)
	return ok
}

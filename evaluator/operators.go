/*
File    : lynx/evaluator/operators.go
*/
package evaluator

import (
	"github.com/lynxlang/lynx/ast"
	"github.com/lynxlang/lynx/environment"
	"github.com/lynxlang/lynx/object"
)

// evalPrefixExpression dispatches `!` and `-` by operator literal; any
// other prefix operator reaching here would be a parser bug (the prefix
// parselet table only ever registers these two).
func (e *Evaluator) evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return object.NativeBool(!object.IsTruthy(right))
	case "-":
		return evalMinusPrefix(right)
	default:
		return object.NewError("unknown operator: %s%s", operator, right.Type())
	}
}

// evalMinusPrefix negates an Integer. The integer type is signed int64
// (the "Unary minus" Open Question decision), so this never underflows;
// applying `-` to anything else is a runtime Error.
func evalMinusPrefix(right object.Object) object.Object {
	intVal, ok := right.(*object.Integer)
	if !ok {
		return object.NewError("unknown operator: -%s", right.Type())
	}
	return &object.Integer{Value: -intVal.Value}
}

// evalInfixExpression dispatches on the runtime types of both operands,
// not just the operator, since the legal operator set differs by type
// (arithmetic only applies to two integers; strings only support `+` and
// equality; booleans only support equality).
func (e *Evaluator) evalInfixExpression(operator string, left, right object.Object) object.Object {
	switch {
	case left.Type() == object.IntegerObj && right.Type() == object.IntegerObj:
		return evalIntegerInfixExpression(operator, left.(*object.Integer), right.(*object.Integer))

	case left.Type() == object.StringObj && right.Type() == object.StringObj:
		return evalStringInfixExpression(operator, left.(*object.String), right.(*object.String))

	case left.Type() == object.BooleanObj && right.Type() == object.BooleanObj:
		return evalBooleanInfixExpression(operator, left.(*object.Boolean), right.(*object.Boolean))

	case left.Type() != right.Type():
		return object.NewError("type mismatch: %s %s %s", left.Type(), operator, right.Type())

	default:
		return object.NewError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalIntegerInfixExpression(operator string, left, right *object.Integer) object.Object {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return object.NewError("division by zero")
		}
		// Go's integer division already truncates toward zero.
		return &object.Integer{Value: left.Value / right.Value}
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	case "<=":
		return object.NativeBool(left.Value <= right.Value)
	case ">=":
		return object.NativeBool(left.Value >= right.Value)
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return object.NewError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalStringInfixExpression supports concatenation and equality only.
// Ordering operators on strings are deliberately not added (see
// DESIGN.md).
func evalStringInfixExpression(operator string, left, right *object.String) object.Object {
	switch operator {
	case "+":
		return &object.String{Value: left.Value + right.Value}
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return object.NewError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalBooleanInfixExpression(operator string, left, right *object.Boolean) object.Object {
	switch operator {
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return object.NewError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalHashLiteral evaluates each key/value pair in source order; later
// duplicate keys overwrite earlier ones. Only Integer, String and Boolean
// keys hash; any other key expression is an Error, rejected instead of
// collapsing every non-scalar key into one bucket.
func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *environment.Environment) object.Object {
	pairs := make(map[object.HashKey]object.HashPair)

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key, env)
		if isError(key) {
			return key
		}

		hashable, ok := key.(object.Hashable)
		if !ok {
			return object.NewError("unusable as hash key: %s", key.Type())
		}

		value := e.Eval(pair.Value, env)
		if isError(value) {
			return value
		}

		pairs[hashable.HashKey()] = object.HashPair{Key: key, Value: value}
	}
	return &object.Hash{Pairs: pairs}
}

// evalIndexExpression evaluates `left[index]`. Array indexing bounds-checks
// (out of range yields Null, matching the rest of this evaluator's
// "missing is Null, not an error" convention for array builtins); Hash
// indexing looks up by HashKey (a missing key yields Null). Indexing
// anything else is an Error.
func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *environment.Environment) object.Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if isError(index) {
		return index
	}

	switch left := left.(type) {
	case *object.Array:
		idx, ok := index.(*object.Integer)
		if !ok {
			return object.NewError("array index must be an integer, got %s", index.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(left.Elements)) {
			return object.NULL
		}
		return left.Elements[idx.Value]

	case *object.Hash:
		hashable, ok := index.(object.Hashable)
		if !ok {
			return object.NewError("unusable as hash key: %s", index.Type())
		}
		pair, ok := left.Pairs[hashable.HashKey()]
		if !ok {
			return object.NULL
		}
		return pair.Value

	default:
		return object.NewError("index operator not supported: %s", left.Type())
	}
}

/*
File    : lynx/builtin/builtin.go
*/

// Package builtin implements Lynx's fixed table of host-provided functions:
// len, first, last, rest, push, unshift and print. The table is not
// extensible at runtime (there is no package/import system); it is small
// and closed.
package builtin

import (
	"fmt"
	"io"

	"github.com/lynxlang/lynx/object"
)

// All returns the full builtin registry. For every builtin except the
// variadic `print`, wrong arity is a runtime Error, never silent
// Null-padding, so a caller that passes the wrong number of arguments
// finds out immediately rather than on some spooky later lookup of a Null.
func All() []*object.Builtin {
	return []*object.Builtin{
		{Name: "len", Fn: builtinLen},
		{Name: "first", Fn: builtinFirst},
		{Name: "last", Fn: builtinLast},
		{Name: "rest", Fn: builtinRest},
		{Name: "push", Fn: builtinPush},
		{Name: "unshift", Fn: builtinUnshift},
		{Name: "print", Fn: builtinPrint},
	}
}

func wrongArgCount(name string, got, want int) *object.Error {
	return object.NewError("wrong number of arguments to `%s`: got=%d, want=%d", name, got, want)
}

// builtinLen reports the element count of an Array or the byte length of a
// String. Any other argument type is an Error.
func builtinLen(_ io.Writer, args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("len", len(args), 1)
	}
	switch arg := args[0].(type) {
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	default:
		return object.NewError("argument to `len` not supported, got %s", args[0].Type())
	}
}

// builtinFirst returns the first element of an Array, or Null for an empty
// array.
func builtinFirst(_ io.Writer, args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("first", len(args), 1)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NULL
	}
	return arr.Elements[0]
}

// builtinLast returns the last element of an Array, or Null for an empty
// array.
func builtinLast(_ io.Writer, args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("last", len(args), 1)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

// builtinRest returns a new Array holding every element but the first, or
// Null for an empty array. It never mutates its argument.
func builtinRest(_ io.Writer, args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("rest", len(args), 1)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NULL
	}
	rest := make([]object.Object, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &object.Array{Elements: rest}
}

// builtinPush returns a new Array with val appended, leaving the original
// array untouched (builtin purity: push/unshift must not mutate their
// input).
func builtinPush(_ io.Writer, args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount("push", len(args), 2)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	newElements := make([]object.Object, len(arr.Elements), len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements = append(newElements, args[1])
	return &object.Array{Elements: newElements}
}

// builtinUnshift returns a new Array with val prepended, leaving the
// original array untouched.
func builtinUnshift(_ io.Writer, args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount("unshift", len(args), 2)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("argument to `unshift` must be ARRAY, got %s", args[0].Type())
	}
	newElements := make([]object.Object, 0, len(arr.Elements)+1)
	newElements = append(newElements, args[1])
	newElements = append(newElements, arr.Elements...)
	return &object.Array{Elements: newElements}
}

// builtinPrint writes the Inspect representation of every argument,
// space-separated, followed by a newline, to the Evaluator's configured
// writer rather than hardcoding os.Stdout, so the REPL and server
// transports can each direct output where they need it.
func builtinPrint(w io.Writer, args ...object.Object) object.Object {
	parts := make([]interface{}, len(args))
	for i, arg := range args {
		parts[i] = arg.Inspect()
	}
	fmt.Fprintln(w, parts...)
	return object.NULL
}

/*
File    : lynx/environment/environment.go
*/

// Package environment implements Lynx's lexical scope chain: a tree of
// name-to-value bindings rooted at a global environment that holds the
// builtin registry. Closures capture an Environment by shared reference,
// never by a copy-style snapshot (see DESIGN.md).
package environment

import "github.com/lynxlang/lynx/object"

// Environment is a single scope's variable bindings plus an optional
// pointer to the enclosing scope. Environments form a tree, not a stack:
// because closures can outlive the call that created them, an Environment
// must be allowed to stay reachable (via a captured Function) long after
// its defining block has returned.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// NewEnvironment creates a root environment with no parent.
// evaluator.NewGlobalEnvironment builds on it and installs the builtin
// registry into it; NewEnclosedEnvironment also starts from it.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosedEnvironment creates a new environment parented to outer. The
// evaluator uses it for function calls (blocks do not get their own
// scope): the new environment is parented to the function's *captured*
// environment, not the caller's. This is what makes scoping lexical rather than
// dynamic.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in this environment, then walks outward through outer
// environments until it is found or the chain is exhausted.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in THIS environment only, shadowing any binding of
// the same name in an outer scope. This is how `let` always creates a new
// binding in the innermost scope, never mutating an existing one further
// out.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}

// Assign mutates an existing binding of name in place, searching this
// environment and then outward through outer environments for the scope
// that owns it. It never creates a new binding: the second return value
// is false if name is unbound anywhere in the chain, in which case the
// caller (the evaluator) surfaces an *object.Error. This is the operation
// behind the `=` assignment expression added to let `while` loops make
// progress (see DESIGN.md).
func (e *Environment) Assign(name string, val object.Object) (object.Object, bool) {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return val, true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return nil, false
}

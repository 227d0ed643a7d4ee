/*
File    : lynx/builtin/builtin_test.go
*/
package builtin

import (
	"bytes"
	"testing"

	"github.com/lynxlang/lynx/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, name string) *object.Builtin {
	t.Helper()
	for _, b := range All() {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("no builtin named %q", name)
	return nil
}

func TestLen(t *testing.T) {
	lenFn := lookup(t, "len").Fn

	result := lenFn(nil, &object.String{Value: "hello"})
	assert.Equal(t, int64(5), result.(*object.Integer).Value)

	result = lenFn(nil, &object.Array{Elements: []object.Object{&object.Integer{Value: 1}, &object.Integer{Value: 2}}})
	assert.Equal(t, int64(2), result.(*object.Integer).Value)

	result = lenFn(nil, &object.Integer{Value: 1})
	_, ok := result.(*object.Error)
	assert.True(t, ok)

	result = lenFn(nil, &object.String{Value: "a"}, &object.String{Value: "b"})
	_, ok = result.(*object.Error)
	assert.True(t, ok)
}

func TestFirstLastRest(t *testing.T) {
	arr := &object.Array{Elements: []object.Object{
		&object.Integer{Value: 1}, &object.Integer{Value: 2}, &object.Integer{Value: 3},
	}}

	first := lookup(t, "first").Fn(nil, arr)
	assert.Equal(t, int64(1), first.(*object.Integer).Value)

	last := lookup(t, "last").Fn(nil, arr)
	assert.Equal(t, int64(3), last.(*object.Integer).Value)

	rest := lookup(t, "rest").Fn(nil, arr).(*object.Array)
	require.Len(t, rest.Elements, 2)
	assert.Equal(t, int64(2), rest.Elements[0].(*object.Integer).Value)

	// original array untouched
	assert.Len(t, arr.Elements, 3)

	empty := &object.Array{}
	assert.Equal(t, object.NULL, lookup(t, "first").Fn(nil, empty))
	assert.Equal(t, object.NULL, lookup(t, "last").Fn(nil, empty))
	assert.Equal(t, object.NULL, lookup(t, "rest").Fn(nil, empty))
}

func TestPushUnshiftDoNotMutateInput(t *testing.T) {
	arr := &object.Array{Elements: []object.Object{&object.Integer{Value: 1}}}

	pushed := lookup(t, "push").Fn(nil, arr, &object.Integer{Value: 2}).(*object.Array)
	require.Len(t, pushed.Elements, 2)
	assert.Len(t, arr.Elements, 1, "push must not mutate its input array")

	unshifted := lookup(t, "unshift").Fn(nil, arr, &object.Integer{Value: 0}).(*object.Array)
	require.Len(t, unshifted.Elements, 2)
	assert.Equal(t, int64(0), unshifted.Elements[0].(*object.Integer).Value)
	assert.Len(t, arr.Elements, 1, "unshift must not mutate its input array")
}

func TestWrongArityIsError(t *testing.T) {
	result := lookup(t, "push").Fn(nil, &object.Array{})
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errObj.Message, "wrong number of arguments")
}

func TestPrintWritesSpaceSeparatedInspectValues(t *testing.T) {
	var buf bytes.Buffer
	result := lookup(t, "print").Fn(&buf, &object.Integer{Value: 1}, &object.String{Value: "two"})
	assert.Equal(t, object.NULL, result)
	assert.Equal(t, "1 two\n", buf.String())
}

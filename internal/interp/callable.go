package interp

import "github.com/loxscript/lox/internal/runtime"

// Callable is satisfied by anything that can appear as the callee of a
// Call expression: user functions, classes (construction) and builtins.
type Callable interface {
	runtime.Value
	Arity() int
	Call(interp *Interpreter, args []runtime.Value) (runtime.Value, error)
}

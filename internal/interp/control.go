package interp

import "github.com/loxscript/lox/internal/runtime"

// controlReturn is the internal non-local exit used by `return` (spec.md
// §9). It satisfies the `error` interface purely so it can travel up
// through Exec's normal error return path; it is never shown to a user
// and is intercepted exclusively inside LoxFunction.Call. This replaces
// the teacher's struct-field signal flags (exitSignal/breakSignal/
// continueSignal on the Interpreter) with a single typed value, since Lox
// only needs to unwind for function return, not for break/continue/exit.
type controlReturn struct {
	value runtime.Value
}

func (*controlReturn) Error() string { return "return outside of function" }

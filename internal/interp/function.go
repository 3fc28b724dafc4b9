package interp

import (
	"github.com/loxscript/lox/internal/ast"
	"github.com/loxscript/lox/internal/runtime"
)

var _ Callable = (*LoxFunction)(nil)

// LoxFunction is a user-defined function or method: the declaration AST
// plus the environment captured at definition time (its closure), grounded
// on spec.md §4.5 and on the teacher's LoxFunction-equivalent
// internal/interp value wrappers (one struct holding the declaration and
// its defining environment).
type LoxFunction struct {
	declaration   *ast.Function
	closure       *runtime.Environment
	isInitializer bool
}

func newLoxFunction(declaration *ast.Function, closure *runtime.Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *LoxFunction) Type() string   { return "FUNCTION" }
func (f *LoxFunction) String() string { return "<fn " + f.declaration.Name.Lexeme + ">" }
func (f *LoxFunction) Arity() int     { return len(f.declaration.Params) }

// Bind produces a new LoxFunction whose closure is a fresh child
// environment of the original closure with `this` bound to instance. Used
// when a method is read off an instance via `.`. Grounded on
// other_examples' leonardinius-golox lox_function.go, which returns a new
// LoxFunction rather than mutating the receiver for the same reason: two
// instances of the same class must not share a `this` binding.
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := runtime.NewEnclosed(f.closure)
	env.Define("this", instance)
	return newLoxFunction(f.declaration, env, f.isInitializer)
}

// Call allocates a fresh child environment of the closure, binds each
// parameter to its argument, and executes the body.
func (f *LoxFunction) Call(interp *Interpreter, args []runtime.Value) (runtime.Value, error) {
	env := runtime.NewEnclosed(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(*controlReturn); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return runtime.Nil, nil
}

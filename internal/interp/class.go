package interp

import (
	"github.com/dolthub/swiss"
	"github.com/loxscript/lox/internal/runtime"
)

var _ Callable = (*LoxClass)(nil)

// LoxClass is itself Callable: calling it constructs a LoxInstance and, if
// an `init` method exists anywhere in the superclass chain, invokes it.
// Method storage is backed by github.com/dolthub/swiss, the same
// SwissTable wired into internal/runtime.Environment, for the same O(1)
// name->value lookup rationale.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	methods    *swiss.Map[string, *LoxFunction]
}

func newLoxClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	m := swiss.NewMap[string, *LoxFunction](uint32(len(methods)))
	for k, v := range methods {
		m.Put(k, v)
	}
	return &LoxClass{Name: name, Superclass: superclass, methods: m}
}

func (c *LoxClass) Type() string   { return "CLASS" }
func (c *LoxClass) String() string { return c.Name }

// FindMethod looks up name in this class's method table, then the
// superclass chain.
func (c *LoxClass) FindMethod(name string) (*LoxFunction, bool) {
	if fn, ok := c.methods.Get(name); ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity equals the `init` method's arity if present, else 0.
func (c *LoxClass) Arity() int {
	if initializer, ok := c.FindMethod("init"); ok {
		return initializer.Arity()
	}
	return 0
}

// Call constructs a fresh LoxInstance, then binds and invokes `init` if
// one exists anywhere in the chain.
func (c *LoxClass) Call(interp *Interpreter, args []runtime.Value) (runtime.Value, error) {
	instance := newLoxInstance(c)
	if initializer, ok := c.FindMethod("init"); ok {
		if _, err := initializer.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

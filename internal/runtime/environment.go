package runtime

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Environment is a chained scope of name -> Value bindings, grounded on
// the teacher's internal/interp/runtime.Environment{store, outer}, backed
// by a SwissTable (github.com/dolthub/swiss, wired from the mna-nenuphar
// example's lang/machine.Map) instead of a builtin map for O(1)-per-hop
// access on the hot get/assign path spec.md §4.4 calls for. Unlike the
// teacher's ident.Map-backed store, keys are not case-normalized: Lox is
// case-sensitive.
type Environment struct {
	store     *swiss.Map[string, Value]
	enclosing *Environment
}

// New creates a root-level environment with no enclosing scope, used for
// interpreter globals.
func New() *Environment {
	return &Environment{store: swiss.NewMap[string, Value](8)}
}

// NewEnclosed creates a child scope of outer, used for blocks, function
// calls, and the `super`/`this` binding scopes the resolver/interpreter
// open around class bodies and method closures.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: swiss.NewMap[string, Value](8), enclosing: outer}
}

// Define binds name to value in this scope. Redefinition in the same
// scope is allowed (spec.md §4.4): this is how the REPL re-binds globals
// across successive lines.
func (e *Environment) Define(name string, value Value) {
	e.store.Put(name, value)
}

// Get searches this scope then the enclosing chain.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.store.Get(name); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign overwrites an existing binding found anywhere along the chain.
func (e *Environment) Assign(name string, value Value) error {
	if e.store.Has(name) {
		e.store.Put(name, value)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks exactly distance hops up the enclosing chain.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt short-circuits to the ancestor exactly distance hops away, used
// when the resolver produced a depth for this access.
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.ancestor(distance).store.Get(name)
	return v
}

// AssignAt is the GetAt counterpart for writes.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).store.Put(name, value)
}

// Enclosing returns the parent scope, or nil at the root.
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/loxscript/lox/internal/runtime"
)

var _ runtime.Value = (*LoxInstance)(nil)

// LoxInstance is a mutable bag of fields coupled to a class for method
// lookup (spec.md §3). Field storage is backed by the same SwissTable map
// as Environment and LoxClass.methods.
type LoxInstance struct {
	class  *LoxClass
	fields *swiss.Map[string, runtime.Value]
}

func newLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: swiss.NewMap[string, runtime.Value](4)}
}

func (i *LoxInstance) Type() string   { return "INSTANCE" }
func (i *LoxInstance) String() string { return fmt.Sprintf("%s instance", i.class.Name) }

// Get returns a field if present, else resolves and binds a method from
// the class chain. The caller is responsible for reporting "undefined
// property" as a runtime error when both miss.
func (i *LoxInstance) Get(name string) (runtime.Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if method, ok := i.class.FindMethod(name); ok {
		return method.Bind(i), true
	}
	return nil, false
}

// Set creates or overwrites a field, possibly shadowing a method of the
// same name (spec.md §3: "Fields may be created by assignment, overriding
// methods").
func (i *LoxInstance) Set(name string, value runtime.Value) {
	i.fields.Put(name, value)
}

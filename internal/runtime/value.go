// Package runtime defines the Lox runtime value algebra and the
// Environment chain, grounded on the teacher's internal/interp/value.go
// (one Go struct per value kind, Type()/String() rather than interface{}
// boxing) and internal/interp/runtime/environment.go (Environment{store,
// outer}).
package runtime

import (
	"strconv"
	"strings"
)

// Value is any runtime value Lox programs can hold. It mirrors the
// teacher's Value interface shape, narrowed to Lox's four primitive kinds
// plus callables and instances (those live in internal/interp, which
// depends on this package, not the reverse).
type Value interface {
	Type() string
	String() string
}

// Nil is the singleton `nil` value. spec.md requires Nil == Nil, so a
// single shared instance makes Go's `==` do the right thing for free.
var Nil = NilValue{}

// NilValue represents Lox's `nil`.
type NilValue struct{}

func (NilValue) Type() string   { return "NIL" }
func (NilValue) String() string { return "nil" }

// BoolValue represents `true`/`false`.
type BoolValue bool

func (b BoolValue) Type() string { return "BOOL" }
func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

// NumberValue is Lox's single numeric kind, a float64 (spec.md §3).
type NumberValue float64

func (NumberValue) Type() string { return "NUMBER" }

// String formats the number as a decimal and trims a trailing ".0", per
// spec.md's stringification rule. This is formatting only, never rounding:
// values themselves stay full-precision float64.
func (n NumberValue) String() string {
	s := strconv.FormatFloat(float64(n), 'f', -1, 64)
	if strings.HasSuffix(s, ".0") {
		s = strings.TrimSuffix(s, ".0")
	}
	return s
}

// StringValue is a Lox string.
type StringValue string

func (StringValue) Type() string     { return "STRING" }
func (s StringValue) String() string { return string(s) }

// Truthy implements spec.md's truthiness rule: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return bool(val)
	default:
		return true
	}
}

// Equal implements spec.md's `==`/`!=` semantics: Nil==Nil only among
// nils, then structural equality for primitives, identity for anything
// else (callables/instances fall through to Go's own `==` on the
// interface values, which compares their pointers).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	default:
		return a == b
	}
}

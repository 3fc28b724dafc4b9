// Package interp implements the tree-walking evaluator: AST in, runtime
// Values out. Dispatch is an exhaustive Go type switch, grounded
// structurally on the teacher's internal/interp/interpreter.go
// `Eval(node ast.Node) Value` switch, narrowed to Lox's node set and
// changed to thread an `error` return instead of the teacher's
// `*ErrorValue` sentinel return, which composes more naturally with
// `controlReturn` unwinding return-via-error through Exec.
package interp

import (
	"fmt"
	"io"

	"github.com/loxscript/lox/internal/ast"
	"github.com/loxscript/lox/internal/errors"
	"github.com/loxscript/lox/internal/resolver"
	"github.com/loxscript/lox/internal/runtime"
	"github.com/loxscript/lox/pkg/token"
)

// Interpreter walks an AST against the runtime value model: environments,
// callables, classes and instances.
type Interpreter struct {
	globals  *runtime.Environment
	env      *runtime.Environment
	locals   *resolver.Locals
	out      io.Writer
	reporter *errors.Reporter
}

// New creates an Interpreter that writes `print` output to out and
// reports runtime errors to reporter. The globals environment is seeded
// with the `clock` builtin, per spec.md §6.
func New(out io.Writer, reporter *errors.Reporter) *Interpreter {
	globals := runtime.New()
	globals.Define("clock", clockBuiltin())
	return &Interpreter{globals: globals, env: globals, out: out, reporter: reporter}
}

// Globals returns the fixed global environment, shared across successive
// REPL lines per spec.md §5.
func (i *Interpreter) Globals() *runtime.Environment { return i.globals }

// Interpret executes stmts using the locals table produced by the
// resolver. A *errors.RuntimeError aborts execution of the remainder of
// the program and is reported through the Reporter; the caller (the CLI
// driver) decides what to do with the process exit code.
func (i *Interpreter) Interpret(stmts []ast.Stmt, locals *resolver.Locals) {
	i.locals = locals
	for _, stmt := range stmts {
		if err := i.Exec(stmt); err != nil {
			if rerr, ok := err.(*errors.RuntimeError); ok {
				i.reporter.RuntimeError(rerr)
			}
			return
		}
	}
}

// ---- Statement execution ------------------------------------------------

// Exec executes a single statement. A non-nil, non-*errors.RuntimeError
// return value that is a *controlReturn is the `return` unwind signal;
// Exec never handles it itself, only propagates it up to the nearest
// LoxFunction.Call.
func (i *Interpreter) Exec(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.Block:
		return i.executeBlock(n.Statements, runtime.NewEnclosed(i.env))

	case *ast.Class:
		return i.execClass(n)

	case *ast.ExpressionStmt:
		_, err := i.Eval(n.Expression)
		return err

	case *ast.Function:
		fn := newLoxFunction(n, i.env, false)
		i.env.Define(n.Name.Lexeme, fn)
		return nil

	case *ast.If:
		cond, err := i.Eval(n.Condition)
		if err != nil {
			return err
		}
		if runtime.Truthy(cond) {
			return i.Exec(n.Then)
		} else if n.Else != nil {
			return i.Exec(n.Else)
		}
		return nil

	case *ast.Print:
		value, err := i.Eval(n.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, stringify(value))
		return nil

	case *ast.Return:
		var value runtime.Value = runtime.Nil
		if n.Value != nil {
			v, err := i.Eval(n.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &controlReturn{value: value}

	case *ast.Var:
		var value runtime.Value = runtime.Nil
		if n.Init != nil {
			v, err := i.Eval(n.Init)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(n.Name.Lexeme, value)
		return nil

	case *ast.While:
		for {
			cond, err := i.Eval(n.Condition)
			if err != nil {
				return err
			}
			if !runtime.Truthy(cond) {
				return nil
			}
			if err := i.Exec(n.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// environment on every exit path including a propagated error/unwind.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *runtime.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execClass(n *ast.Class) error {
	var superclass *LoxClass
	if n.Superclass != nil {
		v, err := i.Eval(n.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return errors.NewRuntimeError(n.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(n.Name.Lexeme, runtime.Nil)

	if n.Superclass != nil {
		i.env = runtime.NewEnclosed(i.env)
		i.env.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = newLoxFunction(m, i.env, m.Name.Lexeme == "init")
	}

	class := newLoxClass(n.Name.Lexeme, superclass, methods)

	if n.Superclass != nil {
		i.env = i.env.Enclosing()
	}

	return i.env.Assign(n.Name.Lexeme, class)
}

// ---- Expression evaluation ----------------------------------------------

// Eval evaluates an expression and returns its value.
func (i *Interpreter) Eval(e ast.Expr) (runtime.Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil

	case *ast.Grouping:
		return i.Eval(n.Expression)

	case *ast.Variable:
		return i.lookUpVariable(n.Name, n)

	case *ast.Assign:
		value, err := i.Eval(n.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := i.locals.Depth(n); ok {
			i.env.AssignAt(distance, n.Name.Lexeme, value)
		} else if err := i.globals.Assign(n.Name.Lexeme, value); err != nil {
			return nil, errors.NewRuntimeError(n.Name, "%s", err.Error())
		}
		return value, nil

	case *ast.Unary:
		return i.evalUnary(n)

	case *ast.Binary:
		return i.evalBinary(n)

	case *ast.Logical:
		return i.evalLogical(n)

	case *ast.Call:
		return i.evalCall(n)

	case *ast.Get:
		return i.evalGet(n)

	case *ast.Set:
		return i.evalSet(n)

	case *ast.This:
		return i.lookUpVariable(n.Keyword, n)

	case *ast.Super:
		return i.evalSuper(n)
	}
	return nil, fmt.Errorf("unhandled expression %T", e)
}

func literalValue(v any) runtime.Value {
	switch val := v.(type) {
	case nil:
		return runtime.Nil
	case bool:
		return runtime.BoolValue(val)
	case float64:
		return runtime.NumberValue(val)
	case string:
		return runtime.StringValue(val)
	default:
		return runtime.Nil
	}
}

func (i *Interpreter) lookUpVariable(name token.Token, node ast.Expr) (runtime.Value, error) {
	if distance, ok := i.locals.Depth(node); ok {
		return i.env.GetAt(distance, name.Lexeme), nil
	}
	v, err := i.globals.Get(name.Lexeme)
	if err != nil {
		return nil, errors.NewRuntimeError(name, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalUnary(n *ast.Unary) (runtime.Value, error) {
	right, err := i.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Kind {
	case token.MINUS:
		num, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, errors.NewRuntimeError(n.Operator, "Operand must be a number.")
		}
		return -num, nil
	case token.BANG:
		return runtime.BoolValue(!runtime.Truthy(right)), nil
	}
	return nil, fmt.Errorf("unhandled unary operator %s", n.Operator.Lexeme)
}

func (i *Interpreter) evalBinary(n *ast.Binary) (runtime.Value, error) {
	left, err := i.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Kind {
	case token.MINUS, token.SLASH, token.STAR, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		lnum, lok := left.(runtime.NumberValue)
		rnum, rok := right.(runtime.NumberValue)
		if !lok || !rok {
			return nil, errors.NewRuntimeError(n.Operator, "Operands must be numbers.")
		}
		switch n.Operator.Kind {
		case token.MINUS:
			return lnum - rnum, nil
		case token.SLASH:
			return lnum / rnum, nil
		case token.STAR:
			return lnum * rnum, nil
		case token.GREATER:
			return runtime.BoolValue(lnum > rnum), nil
		case token.GREATER_EQUAL:
			return runtime.BoolValue(lnum >= rnum), nil
		case token.LESS:
			return runtime.BoolValue(lnum < rnum), nil
		case token.LESS_EQUAL:
			return runtime.BoolValue(lnum <= rnum), nil
		}

	case token.PLUS:
		if lnum, ok := left.(runtime.NumberValue); ok {
			if rnum, ok := right.(runtime.NumberValue); ok {
				return lnum + rnum, nil
			}
		}
		if _, ok := left.(runtime.StringValue); ok {
			return runtime.StringValue(stringify(left) + stringify(right)), nil
		}
		if _, ok := right.(runtime.StringValue); ok {
			return runtime.StringValue(stringify(left) + stringify(right)), nil
		}
		return nil, errors.NewRuntimeError(n.Operator, "Operands must be two numbers or two strings.")

	case token.BANG_EQUAL:
		return runtime.BoolValue(!runtime.Equal(left, right)), nil
	case token.EQUAL_EQUAL:
		return runtime.BoolValue(runtime.Equal(left, right)), nil
	}
	return nil, fmt.Errorf("unhandled binary operator %s", n.Operator.Lexeme)
}

func (i *Interpreter) evalLogical(n *ast.Logical) (runtime.Value, error) {
	left, err := i.Eval(n.Left)
	if err != nil {
		return nil, err
	}

	if n.Operator.Kind == token.OR {
		if runtime.Truthy(left) {
			return left, nil
		}
	} else {
		if !runtime.Truthy(left) {
			return left, nil
		}
	}
	return i.Eval(n.Right)
}

func (i *Interpreter) evalCall(n *ast.Call) (runtime.Value, error) {
	callee, err := i.Eval(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := i.Eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewRuntimeError(n.ClosingParen, "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, errors.NewRuntimeError(n.ClosingParen, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(n *ast.Get) (runtime.Value, error) {
	target, err := i.Eval(n.Target)
	if err != nil {
		return nil, err
	}

	instance, ok := target.(*LoxInstance)
	if !ok {
		return nil, errors.NewRuntimeError(n.Name, "Only instances have properties.")
	}

	value, ok := instance.Get(n.Name.Lexeme)
	if !ok {
		return nil, errors.NewRuntimeError(n.Name, "Undefined property '%s'.", n.Name.Lexeme)
	}
	return value, nil
}

func (i *Interpreter) evalSet(n *ast.Set) (runtime.Value, error) {
	target, err := i.Eval(n.Target)
	if err != nil {
		return nil, err
	}

	instance, ok := target.(*LoxInstance)
	if !ok {
		return nil, errors.NewRuntimeError(n.Name, "Only instances have fields.")
	}

	value, err := i.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(n.Name.Lexeme, value)
	return value, nil
}

func (i *Interpreter) evalSuper(n *ast.Super) (runtime.Value, error) {
	distance, _ := i.locals.Depth(n)
	superVal := i.env.GetAt(distance, "super")
	superclass := superVal.(*LoxClass)

	instanceVal := i.env.GetAt(distance-1, "this")
	instance := instanceVal.(*LoxInstance)

	method, ok := superclass.FindMethod(n.Method.Lexeme)
	if !ok {
		return nil, errors.NewRuntimeError(n.Method, "Undefined property '%s'.", n.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

// stringify renders a value the way `print` does, per spec.md's
// stringification rule.
func stringify(v runtime.Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// Package resolver implements the static pass that runs after parsing and
// before interpretation (spec.md §4.3). It annotates every Variable,
// Assign, This and Super expression with the lexical distance to its
// binding, and reports the five static-error classes the teacher's
// internal/semantic.Analyzer reports for DWScript (duplicate bindings,
// reads of a local in its own initializer, misplaced `return`, misplaced
// `this`/`super`, self-inheriting classes) narrowed to Lox's scope rules. The
// currentFunction/currentClass context-enum pattern below is grounded on
// other_examples' iamsayantan-glox resolver, which uses the same two
// enums under the same names.
package resolver

import (
	"github.com/loxscript/lox/internal/ast"
	"github.com/loxscript/lox/internal/errors"
	"github.com/loxscript/lox/pkg/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Locals maps an AST node's identity to the lexical distance the resolver
// computed for it. Unresolved nodes (absent from the map) are late-bound
// to globals at runtime.
type Locals struct {
	depths map[uint64]int
}

// Depth returns the resolved distance for node and whether one was
// recorded.
func (l *Locals) Depth(node ast.Node) (int, bool) {
	d, ok := l.depths[node.ID()]
	return d, ok
}

// Resolver walks a parsed program once, computing Locals and reporting
// static errors through the shared Reporter.
type Resolver struct {
	reporter *errors.Reporter
	scopes   []map[string]bool // true once the binding's initializer has run
	locals   map[uint64]int

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports through reporter.
func New(reporter *errors.Reporter) *Resolver {
	return &Resolver{reporter: reporter, locals: make(map[uint64]int)}
}

// Resolve walks stmts and returns the computed Locals table.
func Resolve(stmts []ast.Stmt, reporter *errors.Reporter) *Locals {
	r := New(reporter)
	r.ResolveStmts(stmts)
	return &Locals{depths: r.locals}
}

// ResolveStmts resolves a sequence of statements in the current scope.
func (r *Resolver) ResolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.SyntaxErrorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(node ast.Node, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[node.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any local scope: leave unresolved, looked up in globals.
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.ResolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.ResolveStmts(n.Statements)
		r.endScope()

	case *ast.Class:
		enclosingClass := r.currentClass
		r.currentClass = classClass

		r.declare(n.Name)
		r.define(n.Name)

		if n.Superclass != nil {
			if n.Superclass.Name.Lexeme == n.Name.Lexeme {
				r.reporter.SyntaxErrorAt(n.Superclass.Name, "A class can't inherit from itself.")
			} else {
				r.currentClass = classSubclass
				r.resolveExpr(n.Superclass)
			}
		}

		if n.Superclass != nil {
			r.beginScope()
			r.scopes[len(r.scopes)-1]["super"] = true
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true

		for _, method := range n.Methods {
			kind := functionMethod
			if method.Name.Lexeme == "init" {
				kind = functionInitializer
			}
			r.resolveFunction(method, kind)
		}

		r.endScope()

		if n.Superclass != nil {
			r.endScope()
		}

		r.currentClass = enclosingClass

	case *ast.ExpressionStmt:
		r.resolveExpr(n.Expression)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, functionFunction)

	case *ast.If:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.Print:
		r.resolveExpr(n.Expression)

	case *ast.Return:
		if r.currentFunction == functionNone {
			r.reporter.SyntaxErrorAt(n.Keyword, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == functionInitializer {
				r.reporter.SyntaxErrorAt(n.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}

	case *ast.Var:
		r.declare(n.Name)
		if n.Init != nil {
			r.resolveExpr(n.Init)
		}
		r.define(n.Name)

	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)
	}
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(n.Target)

	case *ast.Grouping:
		r.resolveExpr(n.Expression)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Target)

	case *ast.Super:
		if r.currentClass == classNone {
			r.reporter.SyntaxErrorAt(n.Keyword, "Can't use 'super' outside of a class.")
		} else if r.currentClass != classSubclass {
			r.reporter.SyntaxErrorAt(n.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(n, "super")

	case *ast.This:
		if r.currentClass == classNone {
			r.reporter.SyntaxErrorAt(n.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n, "this")

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !defined {
				r.reporter.SyntaxErrorAt(n.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name.Lexeme)
	}
}

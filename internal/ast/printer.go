package ast

import (
	"fmt"
	"strings"
)

// Print renders stmts as a parenthesized Lisp-like dump, in the style of
// the teacher's AST .String() debug output, used by the `lox ast`
// subcommand.
func Print(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(printStmt(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func parenthesize(name string, parts ...any) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, p := range parts {
		sb.WriteByte(' ')
		switch v := p.(type) {
		case Expr:
			sb.WriteString(printExpr(v))
		case Stmt:
			sb.WriteString(printStmt(v))
		case []Stmt:
			for _, s := range v {
				sb.WriteString(printStmt(s))
			}
		case nil:
			sb.WriteString("nil")
		default:
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func printExpr(e Expr) string {
	if e == nil {
		return "nil"
	}
	switch n := e.(type) {
	case *Assign:
		return parenthesize("assign", n.Name.Lexeme, n.Value)
	case *Binary:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Call:
		parts := make([]any, 0, len(n.Args)+1)
		parts = append(parts, n.Callee)
		for _, a := range n.Args {
			parts = append(parts, a)
		}
		return parenthesize("call", parts...)
	case *Get:
		return parenthesize(".", n.Target, n.Name.Lexeme)
	case *Grouping:
		return parenthesize("group", n.Expression)
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Logical:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Set:
		return parenthesize("set", n.Target, n.Name.Lexeme, n.Value)
	case *Super:
		return parenthesize("super", n.Method.Lexeme)
	case *This:
		return "this"
	case *Unary:
		return parenthesize(n.Operator.Lexeme, n.Right)
	case *Variable:
		return n.Name.Lexeme
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func printStmt(s Stmt) string {
	if s == nil {
		return "nil"
	}
	switch n := s.(type) {
	case *Block:
		return parenthesize("block", n.Statements)
	case *Class:
		parts := []any{n.Name.Lexeme}
		if n.Superclass != nil {
			parts = append(parts, "<"+n.Superclass.Name.Lexeme)
		}
		for _, m := range n.Methods {
			parts = append(parts, m)
		}
		return parenthesize("class", parts...)
	case *ExpressionStmt:
		return parenthesize(";", n.Expression)
	case *Function:
		return parenthesize("fun "+n.Name.Lexeme, n.Body)
	case *If:
		if n.Else == nil {
			return parenthesize("if", n.Condition, n.Then)
		}
		return parenthesize("if-else", n.Condition, n.Then, n.Else)
	case *Print:
		return parenthesize("print", n.Expression)
	case *Return:
		return parenthesize("return", n.Value)
	case *Var:
		return parenthesize("var "+n.Name.Lexeme, n.Init)
	case *While:
		return parenthesize("while", n.Condition, n.Body)
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

package ast_test

import (
	"testing"

	"github.com/loxscript/lox/internal/ast"
	"github.com/loxscript/lox/pkg/token"
	"github.com/stretchr/testify/assert"
)

func tok(kind token.Kind, lexeme string) token.Token {
	return token.New(kind, lexeme, nil, 1)
}

func TestNodeIdentityIsUniquePerConstruction(t *testing.T) {
	a := ast.NewLiteral(1.0)
	b := ast.NewLiteral(1.0)

	assert.NotEqual(t, a.ID(), b.ID(), "structurally identical nodes must still have distinct identity")
	assert.Equal(t, a.ID(), a.ID(), "a node's identity must be stable across repeated reads")
}

func TestNodeIdentityIsStableAcrossResolverUse(t *testing.T) {
	// The resolver keys its depth table by Variable.ID(); two separate
	// reads of the same *Variable from an expression tree must agree.
	v := ast.NewVariable(tok(token.IDENTIFIER, "x"))
	assign := ast.NewAssign(tok(token.IDENTIFIER, "x"), v)

	first := assign.Value.(*ast.Variable).ID()
	second := assign.Value.(*ast.Variable).ID()
	assert.Equal(t, first, second)
	assert.Equal(t, v.ID(), first)
}

func TestResetIDsRewindsCounter(t *testing.T) {
	ast.ResetIDs()
	first := ast.NewLiteral(nil).ID()
	ast.ResetIDs()
	second := ast.NewLiteral(nil).ID()
	assert.Equal(t, first, second)
}

func TestPrintRendersLispStyleOutput(t *testing.T) {
	expr := ast.NewBinary(
		ast.NewLiteral(1.0),
		tok(token.PLUS, "+"),
		ast.NewLiteral(2.0),
	)
	stmts := []ast.Stmt{ast.NewPrint(expr)}

	out := ast.Print(stmts)
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
}

func TestPrintRendersClassWithSuperclass(t *testing.T) {
	superclass := ast.NewVariable(tok(token.IDENTIFIER, "Animal"))
	method := ast.NewFunction(tok(token.IDENTIFIER, "speak"), nil, nil)
	class := ast.NewClass(tok(token.IDENTIFIER, "Dog"), superclass, []*ast.Function{method})

	out := ast.Print([]ast.Stmt{class})
	assert.Contains(t, out, "Dog")
	assert.Contains(t, out, "Animal")
	assert.Contains(t, out, "speak")
}

package loxcmd

import (
	"fmt"
	"os"

	"github.com/loxscript/lox/internal/ast"
	"github.com/loxscript/lox/internal/errors"
	"github.com/loxscript/lox/internal/lexer"
	"github.com/loxscript/lox/internal/parser"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [script]",
	Short: "Parse a script and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func runAST(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	reporter := errors.New(os.Stderr)
	sc := lexer.New(string(source), reporter)
	tokens := sc.ScanTokens()

	p := parser.New(tokens, reporter, maxParams)
	stmts := p.ParseProgram()

	fmt.Print(ast.Print(stmts))

	if reporter.HadError {
		os.Exit(65)
	}
	return nil
}

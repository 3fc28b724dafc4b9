package loxcmd

import (
	"fmt"
	"os"

	"github.com/loxscript/lox/internal/errors"
	"github.com/loxscript/lox/internal/lexer"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [script]",
	Short: "Scan a script and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	reporter := errors.New(os.Stderr)
	sc := lexer.New(string(source), reporter)
	for _, tok := range sc.ScanTokens() {
		fmt.Println(tok.String())
	}

	if reporter.HadError {
		os.Exit(65)
	}
	return nil
}

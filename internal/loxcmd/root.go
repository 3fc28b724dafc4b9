// Package loxcmd wires the Lox interpreter into a cobra command tree,
// grounded on the teacher's cmd/dwscript/cmd package (same rootCmd +
// subcommand shape, same exitWithError idiom) narrowed to spec.md §6's
// CLI collaborator: zero args runs the REPL, one arg executes a file,
// more than one is a usage error (exit 64); syntax/static errors exit 65,
// a runtime error exits 70, a clean run exits 0.
package loxcmd

import (
	"fmt"
	"os"

	"github.com/loxscript/lox/internal/parser"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	maxParams int
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Lox interpreter",
	Long: `lox is a tree-walking interpreter for Lox, a small dynamically-typed
scripting language with closures, classes and single inheritance.

Run with no arguments to start a REPL, or pass a single script path to
execute a file. This is shorthand for "lox run"; "lox repl" starts the
REPL explicitly.`,
	Args: cobra.ArbitraryArgs,
	RunE: runMain,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print scan/parse/resolve/execute phase diagnostics to stderr")
	rootCmd.PersistentFlags().IntVar(&maxParams, "max-params", parser.DefaultMaxArgs, "maximum number of call arguments / function parameters")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(astCmd)
}

// Execute runs the root command. main() exits with whatever exit code
// runMain selected via os.Exit; Execute's own error return covers
// cobra-level argument/flag-parsing failures and the file-read errors
// returned by the tokenize and ast subcommands.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(64)
}

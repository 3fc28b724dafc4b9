package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/loxscript/lox/internal/errors"
	"github.com/loxscript/lox/internal/interp"
	"github.com/loxscript/lox/internal/lexer"
	"github.com/loxscript/lox/internal/parser"
	"github.com/loxscript/lox/internal/resolver"
)

// TestFixtures runs every .lox program under testdata/fixtures end to end
// and snapshots its stdout, in the style of the teacher's fixture-driven
// test suite (internal/interp/fixture_test.go) but against go-snaps
// snapshots instead of DWScript's .pas/.txt expected-output pairs.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/fixtures/*.lox")
	if err != nil {
		t.Fatalf("failed to list fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range files {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read %s: %v", path, err)
			}

			var out bytes.Buffer
			reporter := errors.New(&out)

			tokens := lexer.New(string(source), reporter).ScanTokens()
			stmts := parser.New(tokens, reporter, parser.DefaultMaxArgs).ParseProgram()
			if reporter.HadError {
				t.Fatalf("fixture %s failed to parse", name)
			}

			locals := resolver.Resolve(stmts, reporter)
			if reporter.HadError {
				t.Fatalf("fixture %s failed to resolve", name)
			}

			interp.New(&out, reporter).Interpret(stmts, locals)
			wantRuntimeError := name == "runtime_error.lox"
			if reporter.HadRuntimeError != wantRuntimeError {
				t.Fatalf("fixture %s: runtime error = %v, want %v:\n%s", name, reporter.HadRuntimeError, wantRuntimeError, out.String())
			}

			snaps.MatchSnapshot(t, out.String())
		})
	}
}

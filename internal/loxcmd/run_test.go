package loxcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/loxscript/lox/internal/parser"
)

// withFlags saves verbose/maxParams, sets them for the duration of the
// test, and restores them on cleanup, the way the teacher's CLI tests
// save/restore its package-level flag globals around runScript calls.
func withFlags(t *testing.T, v bool, m int) {
	t.Helper()
	oldVerbose, oldMaxParams := verbose, maxParams
	verbose, maxParams = v, m
	t.Cleanup(func() { verbose, maxParams = oldVerbose, oldMaxParams })
}

// TestRunScriptFixtures runs every .lox program under testdata/fixtures
// through runScript exactly as the run subcommand would, and snapshots
// stdout and the diagnostics stream side by side per fixture.
func TestRunScriptFixtures(t *testing.T) {
	withFlags(t, false, parser.DefaultMaxArgs)

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
			var stdout, stderr bytes.Buffer
			code := runScript(path, &stdout, &stderr)

			snaps.MatchSnapshot(t, struct {
				ExitCode int
				Stdout   string
				Stderr   string
			}{code, stdout.String(), stderr.String()})
		})
	}
}

// TestRunScriptVerboseEmitsPhaseBoundaries exercises the --verbose wiring:
// each pipeline phase must echo a boundary line to the diagnostics stream.
func TestRunScriptVerboseEmitsPhaseBoundaries(t *testing.T) {
	withFlags(t, true, parser.DefaultMaxArgs)

	var stdout, stderr bytes.Buffer
	code := runScript("../../testdata/fixtures/closures.lox", &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected clean exit, got %d; stderr: %s", code, stderr.String())
	}

	snaps.MatchSnapshot(t, stderr.String())
}

// TestRunScriptMaxParamsOverridesDefaultCap confirms --max-params is
// actually threaded into the parser rather than sitting unused: with the
// cap lowered to 1, a two-parameter function declaration must now fail to
// parse, even though it is well under spec.md's default cap of 8.
func TestRunScriptMaxParamsOverridesDefaultCap(t *testing.T) {
	withFlags(t, false, 1)

	var stdout, stderr bytes.Buffer
	code := runScript("../../testdata/fixtures/control_flow.lox", &stdout, &stderr)
	if code != 0 {
		t.Fatalf("control_flow.lox takes no parameters and should still parse with --max-params=1, got exit %d: %s", code, stderr.String())
	}

	withFlags(t, false, 1)
	tooManyParams := t.TempDir() + "/too_many_params.lox"
	writeFile(t, tooManyParams, "fun f(a, b) { return a + b; }\n")

	stdout.Reset()
	stderr.Reset()
	code = runScript(tooManyParams, &stdout, &stderr)
	if code != 65 {
		t.Fatalf("expected exit 65 once --max-params=1 is exceeded, got %d", code)
	}

	snaps.MatchSnapshot(t, stderr.String())
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

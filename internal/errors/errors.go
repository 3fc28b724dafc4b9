// Package errors is the interpreter's out-of-band error sink. It collects
// syntax, static and runtime errors the way the teacher's CompilerError
// formatter does, but renders them in the stable single-line formats
// spec.md fixes for tests instead of DWScript's multi-line caret diagnostics.
package errors

import (
	"fmt"
	"io"

	"github.com/loxscript/lox/pkg/token"
)

// Reporter accumulates diagnostics produced while scanning, parsing,
// resolving and executing a program. The CLI creates one per script, or
// one per REPL session; the REPL calls Reset before each line, clearing
// both HadError and HadRuntimeError.
type Reporter struct {
	out             io.Writer
	HadError        bool
	HadRuntimeError bool
}

// New creates a Reporter that writes formatted diagnostics to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Reset clears both error flags, e.g. at the start of a REPL prompt.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// SyntaxError reports an error tied only to a line number (used by the
// scanner, which has not yet produced a token for the offending input).
func (r *Reporter) SyntaxError(line int, msg string) {
	r.report(line, "", msg)
}

// SyntaxErrorAt reports a parser/resolver error tied to a specific token.
func (r *Reporter) SyntaxErrorAt(tok token.Token, msg string) {
	if tok.Kind == token.EOF {
		r.report(tok.Line, " at end", msg)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), msg)
	}
}

func (r *Reporter) report(line int, where, msg string) {
	fmt.Fprintf(r.out, "[line %d] Error%s: %s\n", line, where, msg)
	r.HadError = true
}

// RuntimeError is raised by the interpreter. It carries the offending
// token so the line can be reported, per spec §6's "<msg>\n[line: L]"
// format.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line: %d]", e.Message, e.Token.Line)
}

// NewRuntimeError constructs a RuntimeError tied to tok.
func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// RuntimeError reports a runtime error produced by the interpreter,
// setting HadRuntimeError and writing the "<msg>\n[line: L]" diagnostic.
func (r *Reporter) RuntimeError(err *RuntimeError) {
	fmt.Fprintf(r.out, "%s\n[line: %d]\n", err.Message, err.Token.Line)
	r.HadRuntimeError = true
}

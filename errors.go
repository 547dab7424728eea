// errors.go: diagnostic reporting and the typed error values used by the
// scanner, parser and interpreter.
//
// Diagnostic state is scoped to one Reporter instead of process globals, so
// independent runs (one file, or one REPL line) cannot interfere with each
// other. The driver owns a Reporter per run: it checks HadError after
// parsing to decide whether to evaluate at all, checks HadRuntimeError once
// per file run to pick an exit status, and calls ResetError between
// independent REPL lines.
package glox

import (
	"fmt"
	"io"
	"os"
)

// Reporter collects diagnostics for one top-level run. All output goes to
// Out, which is distinct from the interpreter's value output. Reporting
// never aborts; it records the failure and returns.
type Reporter struct {
	Out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

// NewReporter returns a Reporter writing to stderr.
func NewReporter() *Reporter {
	return &Reporter{Out: os.Stderr}
}

// Error reports a scan-level diagnostic with no location qualifier and sets
// the syntax-error flag.
func (r *Reporter) Error(line int, msg string) {
	r.report(line, "", msg)
}

// ErrorAt reports a parse-level diagnostic located at tok. An EOF token is
// rendered as "at end of input"; every other token as "at '<lexeme>'".
func (r *Reporter) ErrorAt(tok Token, msg string) {
	if tok.Type == EOF {
		r.report(tok.Line, " at end of input", msg)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), msg)
	}
}

// Runtime reports an evaluation failure and sets the runtime-error flag.
func (r *Reporter) Runtime(err *RuntimeError) {
	fmt.Fprintf(r.Out, "[line: %d] Error: %s\n", err.Token.Line, err.Msg)
	r.hadRuntimeError = true
}

func (r *Reporter) report(line int, where, msg string) {
	fmt.Fprintf(r.Out, "[line: %d] Error%s: %s\n", line, where, msg)
	r.hadError = true
}

// HadError reports whether a scan or parse diagnostic was emitted.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether an evaluation diagnostic was emitted.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// ResetError clears the syntax-error flag. The REPL calls this between
// lines so a failed line does not suppress evaluation of the next one. The
// runtime-error flag is deliberately left alone; it is inspected once per
// file run.
func (r *Reporter) ResetError() { r.hadError = false }

// ParseError is the typed failure returned by the parser. It carries the
// offending token so callers can render the source location.
type ParseError struct {
	Token Token
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at line %d: %s", e.Token.Line, e.Msg)
}

// RuntimeError is the typed failure returned by the evaluator when an
// operator is applied to operands of the wrong type. The token is the
// operator, kept for its source line.
type RuntimeError struct {
	Token Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at line %d: %s", e.Token.Line, e.Msg)
}

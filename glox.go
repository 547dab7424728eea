// Package glox implements the front end of the Lox expression language: a
// lexical scanner, a recursive-descent parser and a tree-walking evaluator.
// Data flows strictly forward, text -> tokens -> tree -> value, and control
// returns to the caller after each stage; errors are reported through a
// per-run Reporter rather than aborting the process.
package glox

// Version of the interpreter, printed by the CLI.
const Version = "0.1.0"

// Run pushes one source unit through the scan -> parse -> evaluate
// pipeline. A syntax error (from either the scanner or the parser)
// short-circuits evaluation for this unit; the caller inspects the
// Reporter for the outcome.
func Run(src string, ip *Interpreter, rep *Reporter) {
	tokens := NewLexer(src, rep).Scan()
	expr, err := NewParser(tokens, rep).Parse()
	if err != nil || rep.HadError() {
		return
	}
	ip.Interpret(expr)
}

package glox

import (
	"strconv"
	"strings"
)

// FormatAST renders expr in the Lisp-style parenthesized debug form, e.g.
// "(* (- 123) (group 45.67))". Used by the ast subcommand and in tests to
// assert tree shape.
func FormatAST(expr Expr) string {
	switch e := expr.(type) {
	case *Binary:
		return parenthesise(e.Operator.Lexeme, e.Left, e.Right)
	case *Grouping:
		return parenthesise("group", e.Expression)
	case *Literal:
		switch v := e.Value.(type) {
		case nil:
			return "nil"
		case bool:
			return strconv.FormatBool(v)
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64)
		case string:
			return v
		default:
			return "<unknown>"
		}
	case *Unary:
		return parenthesise(e.Operator.Lexeme, e.Right)
	}
	return "<unknown>"
}

func parenthesise(name string, parts ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(FormatAST(p))
	}
	b.WriteByte(')')
	return b.String()
}

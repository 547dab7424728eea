package glox

// Expr is a node in the expression tree produced by the parser. The tree is
// strictly owned: each node holds its children exclusively, with no sharing
// and no cycles, so the evaluator can walk it without bookkeeping.
//
// There are exactly four node kinds: Binary, Grouping, Literal and Unary.
type Expr interface {
	isExpr()
}

// Binary is a left-associative infix application: left op right.
type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// Grouping is a parenthesized sub-expression. It exists so the printer can
// show where explicit parentheses were; evaluation passes through.
type Grouping struct {
	Expression Expr
}

// Literal holds a scanned literal value: string, float64, bool, or nil for
// the nil keyword.
type Literal struct {
	Value interface{}
}

// Unary is a prefix application: op right. "- - x" nests as
// Unary(-, Unary(-, x)).
type Unary struct {
	Operator Token
	Right    Expr
}

func (*Binary) isExpr()   {}
func (*Grouping) isExpr() {}
func (*Literal) isExpr()  {}
func (*Unary) isExpr()    {}

// parser.go — recursive-descent expression parser.
//
// The grammar, lowest to highest precedence; every binary level is
// left-associative:
//
//	expression  := equality
//	equality    := comparison ( ("!=" | "==") comparison )*
//	comparison  := term ( (">" | ">=" | "<" | "<=") term )*
//	term        := factor ( ("+" | "-") factor )*
//	factor      := unary ( ("/" | "*") unary )*
//	unary       := ("!" | "-") unary | primary
//	primary     := NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//
// Each level parses the next-higher level, then folds trailing operators
// into Binary nodes with the accumulated expression on the left. A syntax
// error is reported once through the Reporter, the parser synchronises to a
// statement boundary, and the typed *ParseError is returned to the caller.
package glox

import "fmt"

// Parser consumes a token stream and produces a single expression tree. It
// holds read-only access to the tokens the lexer produced.
type Parser struct {
	toks []Token
	i    int
	rep  *Reporter
}

// NewParser creates a parser over tokens, which must end in an EOF token.
func NewParser(tokens []Token, rep *Reporter) *Parser {
	return &Parser{toks: tokens, rep: rep}
}

// Parse returns the expression tree, or nil and a *ParseError after
// reporting the error and synchronising. The grammar supports a single
// top-level expression per input unit; synchronising leaves the parser in a
// consistent state rather than resuming mid-expression.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.expression()
	if err != nil {
		perr := err.(*ParseError)
		p.rep.ErrorAt(perr.Token, perr.Msg)
		p.synchronise()
		return nil, err
	}
	return expr, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.equality()
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(NEQ, EQ) {
		op := p.prev()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQ, LESS, LESS_EQ) {
		op := p.prev()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := p.prev()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(DIV, MULT) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(FALSE):
		return &Literal{Value: false}, nil
	case p.match(TRUE):
		return &Literal{Value: true}, nil
	case p.match(NIL):
		return &Literal{Value: nil}, nil
	case p.match(NUMBER):
		// NUMBER tokens always carry a float64; anything else is a lexer bug.
		return &Literal{Value: p.prev().Literal.(float64)}, nil
	case p.match(STRING):
		return &Literal{Value: p.prev().Literal.(string)}, nil
	case p.match(LROUND):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(RROUND) {
			return nil, &ParseError{Token: p.peek(), Msg: "Expected ')' after expression."}
		}
		return &Grouping{Expression: expr}, nil
	}
	g := p.peek()
	return nil, &ParseError{Token: g, Msg: fmt.Sprintf("Expected an expression, got %v.", g.Type)}
}

// synchronise discards tokens until the previous token was a ';' or the
// current token starts a statement-level construct. This bounds error
// cascades to one diagnostic per erroneous region.
func (p *Parser) synchronise() {
	if p.atEnd() {
		return
	}
	p.advance()

	for !p.atEnd() {
		if p.prev().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		p.advance()
	}
}

// ----- token basics & helpers -----

func (p *Parser) atEnd() bool { return p.peek().Type == EOF }

// peek indexes directly: running past the EOF sentinel is a programmer
// error and should fail loudly.
func (p *Parser) peek() Token { return p.toks[p.i] }
func (p *Parser) prev() Token { return p.toks[p.i-1] }

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.i++
	}
	return p.prev()
}

func (p *Parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

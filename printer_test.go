package glox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatAST_HandBuiltTree(t *testing.T) {
	// -123 * (45.67)
	expr := &Binary{
		Left: &Unary{
			Operator: Token{Type: MINUS, Lexeme: "-", Line: 1},
			Right:    &Literal{Value: float64(123)},
		},
		Operator: Token{Type: MULT, Lexeme: "*", Line: 1},
		Right:    &Grouping{Expression: &Literal{Value: 45.67}},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", FormatAST(expr))
}

func Test_FormatAST_Literals(t *testing.T) {
	assert.Equal(t, "nil", FormatAST(&Literal{Value: nil}))
	assert.Equal(t, "true", FormatAST(&Literal{Value: true}))
	assert.Equal(t, "false", FormatAST(&Literal{Value: false}))
	assert.Equal(t, "1.5", FormatAST(&Literal{Value: 1.5}))
	assert.Equal(t, "abc", FormatAST(&Literal{Value: "abc"}))
}

func Test_FormatAST_FromParser(t *testing.T) {
	expr, err, _, _ := parseSrc(t, `1 + 2 * 3 == "x"`)
	assert.NoError(t, err)
	assert.Equal(t, "(== (+ 1 (* 2 3)) x)", FormatAST(expr))
}

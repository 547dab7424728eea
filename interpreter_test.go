package glox

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEval(t *testing.T, src string) Value {
	t.Helper()
	v, err := evalSrc(t, src)
	require.NoError(t, err, "eval error for %q", src)
	return v
}

func wantRuntimeError(t *testing.T, src string) *RuntimeError {
	t.Helper()
	_, err := evalSrc(t, src)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr, "want runtime error for %q", src)
	return rerr
}

func Test_Eval_Arithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1 + 2", 3},
		{"10 - 4", 6},
		{"3 * 4", 12},
		{"10 / 4", 2.5},
		{"(1 + 2) * 3", 9},
		{"10 - 4 / 2", 8},
		{"-5 + 2", -3},
		{"2 * -3", -6},
	}
	for _, tc := range cases {
		assert.Equal(t, Num(tc.want), mustEval(t, tc.src), "source %q", tc.src)
	}
}

func Test_Eval_StringConcatenation(t *testing.T) {
	assert.Equal(t, Str("ab"), mustEval(t, `"a" + "b"`))
	assert.Equal(t, Str("abc"), mustEval(t, `"a" + "b" + "c"`))
}

func Test_Eval_PlusTypeMismatch(t *testing.T) {
	err := wantRuntimeError(t, `"a" + 1`)
	assert.Equal(t, PLUS, err.Token.Type)
	assert.Contains(t, err.Msg, "'a'")
	assert.Contains(t, err.Msg, "'1'")

	wantRuntimeError(t, `1 + "a"`)
	wantRuntimeError(t, `nil + nil`)
	wantRuntimeError(t, `true + true`)
}

func Test_Eval_UnaryMinus(t *testing.T) {
	assert.Equal(t, Num(-7), mustEval(t, "-7"))
	assert.Equal(t, Num(7), mustEval(t, "--7"))

	err := wantRuntimeError(t, `-"abc"`)
	assert.Equal(t, MINUS, err.Token.Type)
	assert.Contains(t, err.Msg, "abc")
	assert.Contains(t, err.Msg, "'-'")
}

func Test_Eval_Truthiness(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"!nil", true},
		{"!false", true},
		{"!true", false},
		{"!0", false},       // zero is truthy
		{`!""`, false},      // the empty string is truthy
		{`!"abc"`, false},
		{"!!nil", false},
	}
	for _, tc := range cases {
		assert.Equal(t, Bool(tc.want), mustEval(t, tc.src), "source %q", tc.src)
	}
}

func Test_Eval_Comparisons(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"1 < 2", true},
		{"2 < 1", false},
		{"2 <= 2", true},
		{"3 > 4", false},
		{"4 >= 4", true},
	}
	for _, tc := range cases {
		assert.Equal(t, Bool(tc.want), mustEval(t, tc.src), "source %q", tc.src)
	}

	err := wantRuntimeError(t, `1 < "2"`)
	assert.Equal(t, LESS, err.Token.Type)
	assert.Contains(t, err.Msg, "must both be numbers")
}

func Test_Eval_Equality(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"1 == 1", true},
		{"1 == 1.0", true},
		{"1 == 2", false},
		{`1 == "1"`, false}, // no cross-type coercion
		{`"a" == "a"`, true},
		{`"a" != "b"`, true},
		{"nil == nil", true},
		{"nil == false", false},
		{"true == true", true},
	}
	for _, tc := range cases {
		assert.Equal(t, Bool(tc.want), mustEval(t, tc.src), "source %q", tc.src)
	}
}

func Test_Eval_DivisionByZero(t *testing.T) {
	// Not specially checked; IEEE 754 semantics apply.
	v := mustEval(t, "1 / 0")
	require.Equal(t, VTNum, v.Tag)
	assert.True(t, math.IsInf(v.Data.(float64), 1))

	v = mustEval(t, "-1 / 0")
	assert.True(t, math.IsInf(v.Data.(float64), -1))

	v = mustEval(t, "0 / 0")
	assert.True(t, math.IsNaN(v.Data.(float64)))
}

func Test_Eval_Grouping(t *testing.T) {
	assert.Equal(t, Num(3), mustEval(t, "(3)"))
	assert.Equal(t, Nil, mustEval(t, "(nil)"))
}

func Test_Value_Rendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Num(3), "3"},
		{Num(2.5), "2.5"},
		{Num(-0.5), "-0.5"},
		{Str("abc"), "abc"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.v.String())
	}
}

func Test_Interpret_PrintsValue(t *testing.T) {
	rep, errBuf := newTestReporter()
	ip := NewInterpreter(rep)
	var out bytes.Buffer
	ip.Out = &out

	tokens := NewLexer(`"a" + "b"`, rep).Scan()
	expr, err := NewParser(tokens, rep).Parse()
	require.NoError(t, err)

	ip.Interpret(expr)

	assert.Equal(t, "ab\n", out.String())
	assert.Empty(t, errBuf.String())
}

func Test_Interpret_ReportsRuntimeError(t *testing.T) {
	rep, errBuf := newTestReporter()
	ip := NewInterpreter(rep)
	var out bytes.Buffer
	ip.Out = &out

	tokens := NewLexer(`-"a"`, rep).Scan()
	expr, err := NewParser(tokens, rep).Parse()
	require.NoError(t, err)

	ip.Interpret(expr)

	assert.Empty(t, out.String())
	assert.True(t, rep.HadRuntimeError())
	assert.False(t, rep.HadError(), "runtime failure must not set the syntax flag")
	assert.Contains(t, errBuf.String(), "[line: 1] Error:")
}

package glox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- shared helpers --------------------------------------------------------

// newTestReporter returns a Reporter whose output is captured in a buffer.
func newTestReporter() (*Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Reporter{Out: &buf}, &buf
}

func scanSrc(t *testing.T, src string) ([]Token, *Reporter, *bytes.Buffer) {
	t.Helper()
	rep, buf := newTestReporter()
	return NewLexer(src, rep).Scan(), rep, buf
}

func parseSrc(t *testing.T, src string) (Expr, error, *Reporter, *bytes.Buffer) {
	t.Helper()
	rep, buf := newTestReporter()
	tokens := NewLexer(src, rep).Scan()
	expr, err := NewParser(tokens, rep).Parse()
	return expr, err, rep, buf
}

// evalSrc evaluates one expression that must scan and parse cleanly.
func evalSrc(t *testing.T, src string) (Value, error) {
	t.Helper()
	rep, buf := newTestReporter()
	tokens := NewLexer(src, rep).Scan()
	expr, err := NewParser(tokens, rep).Parse()
	require.NoError(t, err, "parse error for %q: %s", src, buf.String())
	require.False(t, rep.HadError(), "unexpected diagnostics for %q: %s", src, buf.String())
	return NewInterpreter(rep).Evaluate(expr)
}

// --- pipeline --------------------------------------------------------------

func Test_Run_EvaluatesExpression(t *testing.T) {
	rep, errBuf := newTestReporter()
	ip := NewInterpreter(rep)
	var out bytes.Buffer
	ip.Out = &out

	Run("1 + 2 * 3", ip, rep)

	assert.Equal(t, "7\n", out.String())
	assert.Empty(t, errBuf.String())
	assert.False(t, rep.HadError())
	assert.False(t, rep.HadRuntimeError())
}

func Test_Run_SyntaxErrorSkipsEvaluation(t *testing.T) {
	rep, errBuf := newTestReporter()
	ip := NewInterpreter(rep)
	var out bytes.Buffer
	ip.Out = &out

	Run("1 +", ip, rep)

	assert.Empty(t, out.String(), "evaluation must be short-circuited")
	assert.True(t, rep.HadError())
	assert.Contains(t, errBuf.String(), "at end of input")
}

func Test_Run_ScanErrorSkipsEvaluation(t *testing.T) {
	rep, _ := newTestReporter()
	ip := NewInterpreter(rep)
	var out bytes.Buffer
	ip.Out = &out

	Run("@", ip, rep)

	assert.Empty(t, out.String())
	assert.True(t, rep.HadError())
}

// A syntax error on one REPL line must not leave a stale flag that blocks
// the next, independent line.
func Test_Run_ResetBetweenLines(t *testing.T) {
	rep, _ := newTestReporter()
	ip := NewInterpreter(rep)
	var out bytes.Buffer
	ip.Out = &out

	Run("1 +", ip, rep)
	require.True(t, rep.HadError())
	rep.ResetError()

	Run("2 + 3", ip, rep)
	assert.False(t, rep.HadError())
	assert.Equal(t, "5\n", out.String())
}

package ast_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcoopers/poiboi/internal/ast"
	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/function"
	"github.com/bcoopers/poiboi/internal/parser"
	"github.com/bcoopers/poiboi/internal/scope"
)

func TestIsTrue(t *testing.T) {
	assert.True(t, ast.IsTrue("TRUE"))
	for _, v := range []string{"true", "1", "", "FALSE", "TRUEFALSE"} {
		assert.False(t, ast.IsTrue(v), "expected %q to be falsy", v)
	}
}

func TestDecodeStringUnescapesOnlyQuotes(t *testing.T) {
	assert.Equal(t, `say "hi"`, ast.DecodeString(`"say \"hi\""`))
	assert.Equal(t, `a\b`, ast.DecodeString(`"a\b"`))
	assert.Equal(t, "foobar", ast.DecodeString(`"foo""bar"`))
}

// buildTable parses a single-module program and returns its function
// table, for exercising ast nodes the way function.Function.Call does.
func buildTable(t *testing.T, code string) *function.Table {
	t.Helper()
	mod, err := parser.Parse(code)
	require.NoError(t, err)
	tbl, err := function.NewTable([]*cst.Node{mod})
	require.NoError(t, err)
	return tbl
}

func TestLocalShadowingInNestedBlockDoesNotLeakOut(t *testing.T) {
	tbl := buildTable(t, `
Main() {
    LOCAL a = "outer";
    IF ["TRUE"] {
        LOCAL a = "inner";
        PRINT(a);
    }
    PRINT(a);
}
`)
	fn, _ := tbl.Get("Main")
	var buf bytes.Buffer
	_, err := fn.Call(nil, scope.NewGlobals(), tbl, &buf)
	require.NoError(t, err)
	assert.Equal(t, "inner\nouter\n", buf.String())
}

func TestBreakOutsideLoopIsAnError(t *testing.T) {
	b := &ast.BreakEvaluator{}
	_, err := b.Evaluate(ast.EvalContext{}, false)
	assert.Error(t, err)
	_, err = b.Emit(ast.EmitContext{}, false)
	assert.Error(t, err)
}

func TestReturnEvaluatorSignalsReturnWithValue(t *testing.T) {
	tbl := buildTable(t, `Main() { RETURN "done"; }`)
	fn, _ := tbl.Get("Main")
	var buf bytes.Buffer
	out, err := fn.Call(nil, scope.NewGlobals(), tbl, &buf)
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestFunctionCallEmitRejectsArityMismatch(t *testing.T) {
	tbl := buildTable(t, `
FunctionOne(a) { RETURN a; }
Main() { PRINT(FunctionOne("x", "y")); }
`)
	main, ok := tbl.Get("Main")
	require.True(t, ok)
	_, err := main.Define(noopSink{}, tbl)
	assert.Error(t, err)
}

type noopSink struct{}

func (noopSink) MarkGlobal(string) {}
func (noopSink) Has(string) bool   { return false }

package poiboi_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcoopers/poiboi/internal/poiboi"
)

func init() {
	// keep test output quiet; driver-level logging is exercised by the
	// cmd/* binaries, not asserted on here.
	poiboi.Log.SetOutput(io.Discard)
	poiboi.Log.SetLevel(logrus.PanicLevel)
}

func TestInterpretModulesRunsMain(t *testing.T) {
	var buf bytes.Buffer
	_, err := poiboi.InterpretModules([]poiboi.Source{
		{Name: "a.poiboi", Text: `Main() { PRINT("hello"); }`},
	}, "", &buf)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", buf.String())
}

func TestInterpretModulesUnionsMultipleSources(t *testing.T) {
	var buf bytes.Buffer
	_, err := poiboi.InterpretModules([]poiboi.Source{
		{Name: "lib.poiboi", Text: `Greet(name) { RETURN CONCAT("hi ", name); }`},
		{Name: "main.poiboi", Text: `Main() { PRINT(Greet("world")); }`},
	}, "", &buf)
	require.NoError(t, err)
	assert.Equal(t, "hi world\n", buf.String())
}

func TestInterpretModulesPropagatesParseErrors(t *testing.T) {
	var buf bytes.Buffer
	_, err := poiboi.InterpretModules([]poiboi.Source{
		{Name: "broken.poiboi", Text: `Main() { PRINT( ; }`},
	}, "", &buf)
	assert.Error(t, err)
}

func TestCompileModulesEmitsCpp(t *testing.T) {
	code, err := poiboi.CompileModules([]poiboi.Source{
		{Name: "a.poiboi", Text: `Main() { PRINT("hi"); }`},
	})
	require.NoError(t, err)
	assert.Contains(t, code, "class PBString")
	assert.Contains(t, code, "int main()")
}

func TestCompileModulesWithMainArgument(t *testing.T) {
	code, err := poiboi.CompileModules([]poiboi.Source{
		{Name: "a.poiboi", Text: `Main(arg) { PRINT(arg); }`},
	})
	require.NoError(t, err)
	assert.Contains(t, code, "Main_poiboi_fn(PBString())")
}

package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcoopers/poiboi/internal/scanner"
	"github.com/bcoopers/poiboi/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanStructuralTokens(t *testing.T) {
	toks, err := scanner.Scan(`Main(){PRINT("hi");}`)
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.FunctionName,
		token.OpenFunctionCall,
		token.CloseFunctionCall,
		token.OpenCodeBlock,
		token.Builtin,
		token.OpenFunctionCall,
		token.String,
		token.CloseFunctionCall,
		token.EndStatement,
		token.CloseCodeBlock,
		token.EOF,
	}, kinds(toks))
}

func TestScanSkipsCommentsAndWhitespace(t *testing.T) {
	toks, err := scanner.Scan("foo = \"x\"; #a comment#\n   ;")
	require.NoError(t, err)
	for _, tk := range toks {
		assert.NotEqual(t, "a comment", tk.Text)
	}
	assert.Equal(t, []token.Kind{
		token.Variable, token.Assigner, token.String, token.EndStatement,
		token.EndStatement, token.EOF,
	}, kinds(toks))
}

func TestScanLineNumbers(t *testing.T) {
	toks, err := scanner.Scan("foo = \"a\";\nbar = \"b\";\n")
	require.NoError(t, err)
	require.True(t, len(toks) >= 2)
	assert.Equal(t, 1, toks[0].Line)
	var barTok token.Token
	for _, tk := range toks {
		if tk.Kind == token.Variable && tk.Text == "bar" {
			barTok = tk
		}
	}
	assert.Equal(t, 2, barTok.Line)
}

func TestScanKeywordsNotMistakenForIdentifiers(t *testing.T) {
	toks, err := scanner.Scan("IF WHILE ELSE ELIF RETURN BREAK LOCAL")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.KeywordIf, token.KeywordWhile, token.KeywordElse, token.KeywordElif,
		token.KeywordReturn, token.KeywordBreak, token.KeywordLocal, token.EOF,
	}, kinds(toks))
}

func TestScanRejectsUnmatchedInput(t *testing.T) {
	_, err := scanner.Scan("@@@")
	require.Error(t, err)
	var scanErr *scanner.Error
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, 1, scanErr.Line)
}

func TestScanAdjacentStringLiterals(t *testing.T) {
	toks, err := scanner.Scan(`"foo""bar"`)
	require.NoError(t, err)
	require.Len(t, toks, 2) // one combined String token + EOF
	assert.Equal(t, token.String, toks[0].Kind)
}

package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcoopers/poiboi/internal/grammar"
	"github.com/bcoopers/poiboi/internal/token"
)

func TestGrammarIsUnambiguous(t *testing.T) {
	require.NoError(t, grammar.Validate())
}

// TestNoTwoAlternativesAcceptTheSameLookahead is spec.md §8 property 2,
// implemented directly rather than via grammar.Validate: for every
// nonterminal and every token kind, at most one alternative accepts it.
func TestNoTwoAlternativesAcceptTheSameLookahead(t *testing.T) {
	allKinds := []token.Kind{
		token.OpenCodeBlock, token.CloseCodeBlock, token.EndStatement,
		token.OpenFunctionCall, token.CloseFunctionCall, token.ArgumentSeparator,
		token.OpenControlBlock, token.CloseControlBlock, token.Assigner,
		token.KeywordLocal, token.KeywordWhile, token.KeywordIf, token.KeywordElse,
		token.KeywordElif, token.KeywordReturn, token.KeywordBreak,
		token.String, token.Variable, token.Builtin, token.FunctionName, token.EOF,
	}
	for name, rules := range grammar.Table {
		for _, k := range allKinds {
			accepted := 0
			for _, r := range rules {
				if grammar.Accepts(r, k) {
					accepted++
				}
			}
			assert.LessOrEqualf(t, accepted, 1, "nonterminal %s has >1 alternative accepting %s", name, k.Name())
		}
	}
}

func TestFirstSetOfStatementCoversEveryStatementForm(t *testing.T) {
	set := grammar.FirstSet(grammar.Statement)
	for _, k := range []token.Kind{
		token.Variable, token.FunctionName, token.Builtin,
		token.KeywordWhile, token.KeywordIf, token.KeywordReturn, token.KeywordBreak,
	} {
		assert.True(t, set[k], "expected Statement's first-set to include %s", k.Name())
	}
}

func TestModuleAcceptsEOFAsEpsilonTerminator(t *testing.T) {
	rules := grammar.Table[grammar.Module]
	require.Len(t, rules, 2)
	assert.True(t, grammar.Accepts(rules[0], token.EOF))
}

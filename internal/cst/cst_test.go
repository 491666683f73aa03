package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/token"
)

func TestLeafWrapsToken(t *testing.T) {
	tok := token.Token{Kind: token.Variable, Text: "foo", Line: 3}
	node := cst.Leaf(tok)
	assert.True(t, node.IsTok)
	assert.Equal(t, tok, node.Token)
	assert.Empty(t, node.Nonterminal)
}

func TestNewNonterminalCarriesChildren(t *testing.T) {
	child := cst.Leaf(token.Token{Kind: token.EOF})
	node := cst.NewNonterminal("Module", []*cst.Node{child})
	assert.Equal(t, "Module", node.Nonterminal)
	assert.Same(t, child, node.Children[0])
}

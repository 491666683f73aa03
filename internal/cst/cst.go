// Package cst defines the concrete syntax tree node produced by the
// parser: a generic tree shaped by grammar.Nonterminal alternatives
// rather than a fixed set of per-production struct types.
package cst

import "github.com/bcoopers/poiboi/internal/token"

// Node is either a terminal (one scanned token.Token) or a nonterminal
// (a name plus the ordered children chosen by the parser for whichever
// grammar alternative matched). Exactly one of Token/Nonterminal is set.
type Node struct {
	// Nonterminal is the grammar symbol name ("Module", "Statement", ...)
	// for interior nodes; empty for terminal nodes.
	Nonterminal string

	// Token holds the scanned token for terminal nodes.
	Token token.Token
	IsTok bool

	// Children holds the parsed elements of whichever alternative RHS
	// the parser selected, in order. Empty for terminals and for
	// nonterminals that matched an empty (epsilon) alternative.
	Children []*Node
}

// Leaf wraps a scanned token as a terminal CST node.
func Leaf(tok token.Token) *Node {
	return &Node{Token: tok, IsTok: true}
}

// NewNonterminal creates an interior node for the named nonterminal,
// populated with its parsed children.
func NewNonterminal(name string, children []*Node) *Node {
	return &Node{Nonterminal: name, Children: children}
}

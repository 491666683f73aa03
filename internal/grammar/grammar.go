// Package grammar holds the PoiBoi grammar as data: a table of
// nonterminals, each with its alternative right-hand sides. The parser is
// a single generic driver over this table (spec.md §9, "Grammar as
// data") rather than one function per production.
package grammar

import "github.com/bcoopers/poiboi/internal/token"

// Nonterminal names, matching spec.md §3 exactly.
const (
	Module                 = "Module"
	FunctionDefinition     = "FunctionDefinition"
	VariablesList          = "VariablesList"
	VariablesListExpansion = "VariablesListExpansion"
	CodeBlock              = "CodeBlock"
	StatementList          = "StatementList"
	Statement              = "Statement"
	VariableAssignment     = "VariableAssignment"
	FunctionCall           = "FunctionCall"
	ConditionalEvaluator   = "ConditionalEvaluator"
	ElseStatement          = "ElseStatement"
	RValue                 = "RValue"
	RValueList             = "RValueList"
	RValueListExpansion    = "RValueListExpansion"
)

// SymbolKind distinguishes a grammar Symbol that refers to a token.Kind
// from one that refers to another nonterminal.
type SymbolKind int

const (
	SymToken SymbolKind = iota
	SymNonterminal
)

// Symbol is one element of an alternative's right-hand side.
type Symbol struct {
	Kind        SymbolKind
	TokenKind   token.Kind
	Nonterminal string
}

// Tok builds a Symbol that matches a single token kind.
func Tok(k token.Kind) Symbol { return Symbol{Kind: SymToken, TokenKind: k} }

// NT builds a Symbol that refers to another nonterminal.
func NT(name string) Symbol { return Symbol{Kind: SymNonterminal, Nonterminal: name} }

// Rule is one alternative expansion of a nonterminal: an ordered sequence
// of Symbols. A nil/empty Rule is the epsilon alternative.
type Rule []Symbol

// Table maps every nonterminal name to its alternative Rules, in the
// order spec.md §3 lists them.
var Table = map[string][]Rule{
	Module: {
		{Tok(token.EOF)},
		{NT(FunctionDefinition), NT(Module)},
	},
	FunctionDefinition: {
		{Tok(token.FunctionName), Tok(token.OpenFunctionCall), NT(VariablesList),
			Tok(token.CloseFunctionCall), NT(CodeBlock)},
	},
	VariablesList: {
		{Tok(token.Variable), NT(VariablesListExpansion)},
		{},
	},
	VariablesListExpansion: {
		{Tok(token.ArgumentSeparator), Tok(token.Variable), NT(VariablesListExpansion)},
		{},
	},
	CodeBlock: {
		{Tok(token.OpenCodeBlock), NT(StatementList), Tok(token.CloseCodeBlock)},
	},
	StatementList: {
		{NT(Statement), NT(StatementList)},
		{},
	},
	Statement: {
		{NT(VariableAssignment), Tok(token.EndStatement)},
		{NT(FunctionCall), Tok(token.EndStatement)},
		{Tok(token.KeywordWhile), NT(ConditionalEvaluator), NT(CodeBlock)},
		{Tok(token.KeywordIf), NT(ConditionalEvaluator), NT(CodeBlock), NT(ElseStatement)},
		{Tok(token.KeywordReturn), NT(RValue), Tok(token.EndStatement)},
		{Tok(token.KeywordBreak), Tok(token.EndStatement)},
	},
	VariableAssignment: {
		{Tok(token.KeywordLocal), Tok(token.Variable), Tok(token.Assigner), NT(RValue)},
		{Tok(token.Variable), Tok(token.Assigner), NT(RValue)},
	},
	FunctionCall: {
		{Tok(token.FunctionName), Tok(token.OpenFunctionCall), NT(RValueList), Tok(token.CloseFunctionCall)},
		{Tok(token.Builtin), Tok(token.OpenFunctionCall), NT(RValueList), Tok(token.CloseFunctionCall)},
	},
	ConditionalEvaluator: {
		{Tok(token.OpenControlBlock), NT(RValue), Tok(token.CloseControlBlock)},
	},
	ElseStatement: {
		{Tok(token.KeywordElse), NT(CodeBlock)},
		{Tok(token.KeywordElif), NT(ConditionalEvaluator), NT(CodeBlock), NT(ElseStatement)},
		{},
	},
	RValue: {
		{Tok(token.String)},
		{Tok(token.Variable)},
		{NT(FunctionCall)},
	},
	RValueList: {
		{NT(RValue), NT(RValueListExpansion)},
		{},
	},
	RValueListExpansion: {
		{Tok(token.ArgumentSeparator), NT(RValue), NT(RValueListExpansion)},
		{},
	},
}

var firstSetCache = map[string]map[token.Kind]bool{}

// FirstSet returns the set of token kinds that can begin the named
// nonterminal, memoized across calls. Epsilon alternatives contribute
// nothing to the set; they are selected only as a fallback when no
// non-empty alternative accepts the lookahead token.
func FirstSet(nonterminal string) map[token.Kind]bool {
	if cached, ok := firstSetCache[nonterminal]; ok {
		return cached
	}
	set := map[token.Kind]bool{}
	// Populate the cache before recursing so that a (non-existent, but
	// defensive) cycle terminates instead of looping forever.
	firstSetCache[nonterminal] = set
	for _, rule := range Table[nonterminal] {
		if len(rule) == 0 {
			continue
		}
		switch head := rule[0]; head.Kind {
		case SymToken:
			set[head.TokenKind] = true
		case SymNonterminal:
			for k := range FirstSet(head.Nonterminal) {
				set[k] = true
			}
		}
	}
	return set
}

// Accepts reports whether the given Rule can begin with the lookahead
// token kind t, i.e. whether its first symbol's first-set contains t. The
// epsilon alternative accepts nothing and always yields false; choosing
// it as the fallback is left to the parser.
func Accepts(rule Rule, t token.Kind) bool {
	if len(rule) == 0 {
		return false
	}
	switch head := rule[0]; head.Kind {
	case SymToken:
		return head.TokenKind == t
	case SymNonterminal:
		return FirstSet(head.Nonterminal)[t]
	}
	return false
}

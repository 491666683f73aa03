// Package parser implements the LL(1) predictive parser of spec.md §4.2:
// a single generic driver over the grammar.Table, rather than one
// recursive-descent function per nonterminal.
package parser

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/grammar"
	"github.com/bcoopers/poiboi/internal/scanner"
	"github.com/bcoopers/poiboi/internal/token"
)

// Error is a parse failure: what the parser expected (the nonterminal it
// was trying to expand, or the token kind it had to match), the offending
// token, and (when available) the source line text, per spec.md §7.
type Error struct {
	Expected string
	Got      token.Token
	LineText string
}

func (e *Error) Error() string {
	return errors.Errorf("parse error at line %d: expected %s, got %s %q",
		e.Got.Line, e.Expected, e.Got.Kind.Name(), e.Got.Text).Error()
}

// expectation is one pending item on the parser's worklist: either a
// terminal the cursor must match, or a nonterminal to expand.
type expectation struct {
	isToken   bool
	tokenKind token.Kind
	nt        string
	node      *cst.Node
}

// Parse scans code and drives the grammar to build a Module-rooted
// concrete syntax tree. It fails on the first lex or parse error.
func Parse(code string) (*cst.Node, error) {
	tokens, err := scanner.Scan(code)
	if err != nil {
		return nil, err
	}
	return ParseTokens(code, tokens)
}

// ParseTokens drives the grammar over an already-scanned token sequence.
// sourceText is used only to render the offending line in error messages.
func ParseTokens(sourceText string, tokens []token.Token) (*cst.Node, error) {
	lines := strings.Split(sourceText, "\n")
	pos := 0
	peek := func() token.Token { return tokens[pos] }

	root := &cst.Node{}
	work := []*expectation{{isToken: false, nt: grammar.Module, node: root}}

	for len(work) > 0 {
		cur := work[0]
		work = work[1:]
		t := peek()

		if cur.isToken {
			if t.Kind != cur.tokenKind {
				lineText := ""
				if t.Line-1 >= 0 && t.Line-1 < len(lines) {
					lineText = lines[t.Line-1]
				}
				return nil, &Error{Expected: cur.tokenKind.Name(), Got: t, LineText: lineText}
			}
			cur.node.IsTok = true
			cur.node.Token = t
			pos++
			continue
		}

		rules := grammar.Table[cur.nt]
		var chosen grammar.Rule
		found := false
		var emptyRule grammar.Rule
		hasEmpty := false
		for _, r := range rules {
			if len(r) == 0 {
				hasEmpty = true
				emptyRule = r
				continue
			}
			if grammar.Accepts(r, t.Kind) {
				chosen = r
				found = true
				break
			}
		}
		if !found {
			if hasEmpty {
				chosen = emptyRule
			} else {
				lineText := ""
				if t.Line-1 >= 0 && t.Line-1 < len(lines) {
					lineText = lines[t.Line-1]
				}
				return nil, &Error{Expected: cur.nt, Got: t, LineText: lineText}
			}
		}

		children := make([]*cst.Node, len(chosen))
		newWork := make([]*expectation, len(chosen))
		for i, sym := range chosen {
			child := &cst.Node{}
			children[i] = child
			switch sym.Kind {
			case grammar.SymToken:
				newWork[i] = &expectation{isToken: true, tokenKind: sym.TokenKind, node: child}
			case grammar.SymNonterminal:
				child.Nonterminal = sym.Nonterminal
				newWork[i] = &expectation{isToken: false, nt: sym.Nonterminal, node: child}
			}
		}
		cur.node.Nonterminal = cur.nt
		cur.node.Children = children
		work = append(newWork, work...)
	}

	return root, nil
}

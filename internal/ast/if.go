package ast

import (
	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/grammar"
	"github.com/bcoopers/poiboi/internal/token"
)

// IsTrue is PoiBoi's truthiness rule (spec.md §3): exact equality with
// the literal "TRUE"; everything else, including "FALSE" and "", is
// false.
func IsTrue(value string) bool {
	return value == "TRUE"
}

// IfEvaluator implements IF/ELIF/ELSE (spec.md §4.3/§4.6). Else is either
// another IfEvaluator (for an ELIF chain) or a StatementsEvaluator (for a
// trailing ELSE), or nil when absent.
type IfEvaluator struct {
	Condition *RValueEvaluator
	Then      *StatementsEvaluator
	Else      Statement // *StatementsEvaluator, *IfEvaluator, or nil
}

// NewIfEvaluator lowers the (ConditionalEvaluator, CodeBlock, ElseStatement)
// triple that follows an IF token in the grammar.
func NewIfEvaluator(cond, body, elseStmt *cst.Node) (*IfEvaluator, error) {
	if cond.Nonterminal != grammar.ConditionalEvaluator || len(cond.Children) != 3 {
		return nil, errors.Errorf("ast: expected ConditionalEvaluator node, got %+v", cond)
	}
	condRV, err := NewRValueEvaluator(cond.Children[1])
	if err != nil {
		return nil, err
	}
	if body.Nonterminal != grammar.CodeBlock || len(body.Children) != 3 {
		return nil, errors.Errorf("ast: expected CodeBlock node, got %+v", body)
	}
	thenStmts, err := NewStatementsEvaluator(body.Children[1])
	if err != nil {
		return nil, err
	}
	elseNode, err := lowerElse(elseStmt)
	if err != nil {
		return nil, err
	}
	return &IfEvaluator{Condition: condRV, Then: thenStmts, Else: elseNode}, nil
}

func lowerElse(node *cst.Node) (Statement, error) {
	if node.Nonterminal != grammar.ElseStatement {
		return nil, errors.Errorf("ast: expected ElseStatement node, got %+v", node)
	}
	children := node.Children
	if len(children) == 0 {
		return nil, nil
	}
	if children[0].Token.Kind == token.KeywordElse {
		block := children[1]
		if block.Nonterminal != grammar.CodeBlock || len(block.Children) != 3 {
			return nil, errors.Errorf("ast: expected CodeBlock node, got %+v", block)
		}
		return NewStatementsEvaluator(block.Children[1])
	}
	return NewIfEvaluator(children[1], children[2], children[3])
}

// Evaluate evaluates the condition once, then runs the chosen branch (if
// any) in a fresh child frame, per spec.md §4.6.
func (n *IfEvaluator) Evaluate(ctx EvalContext, inLoop bool) (Outcome, error) {
	cond, err := n.Condition.Evaluate(ctx)
	if err != nil {
		return Outcome{}, err
	}
	var branch Statement = n.Else
	if IsTrue(cond) {
		branch = n.Then
	}
	if branch == nil {
		return next, nil
	}
	return branch.Evaluate(ctx.withFrame(ctx.Frame.Child()), inLoop)
}

// Emit renders an `if (cond) { ... } else { ... }` chain, per spec.md
// §4.7. Both branches are emitted (the transpiler has no runtime
// condition to skip), each in its own fresh frame.
func (n *IfEvaluator) Emit(ctx EmitContext, inLoop bool) (string, error) {
	cond, err := n.Condition.Emit(ctx)
	if err != nil {
		return "", err
	}
	thenCode, err := n.Then.Emit(ctx.withFrame(ctx.Frame.Child()), inLoop)
	if err != nil {
		return "", err
	}
	code := "if (" + cond + ") {\n" + thenCode + "}"
	if n.Else == nil {
		return code + "\n", nil
	}
	elseCode, err := n.Else.Emit(ctx.withFrame(ctx.Frame.Child()), inLoop)
	if err != nil {
		return "", err
	}
	return code + " else {\n" + elseCode + "}\n", nil
}

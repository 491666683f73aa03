package ast

import (
	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/grammar"
)

// WhileEvaluator implements WHILE (spec.md §4.3/§4.6): re-evaluate the
// condition before every iteration, running the body in a fresh child
// frame each time; a SigBreak from the body ends the loop cleanly.
type WhileEvaluator struct {
	Condition *RValueEvaluator
	Body      *StatementsEvaluator
}

// NewWhileEvaluator lowers the (ConditionalEvaluator, CodeBlock) pair
// that follows a WHILE token in the grammar.
func NewWhileEvaluator(cond, body *cst.Node) (*WhileEvaluator, error) {
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
	stmts, err := NewStatementsEvaluator(body.Children[1])
	if err != nil {
		return nil, err
	}
	return &WhileEvaluator{Condition: condRV, Body: stmts}, nil
}

// Evaluate loops until the condition is no longer TRUE or the body
// signals break/return/error.
func (w *WhileEvaluator) Evaluate(ctx EvalContext, inLoop bool) (Outcome, error) {
	for {
		cond, err := w.Condition.Evaluate(ctx)
		if err != nil {
			return Outcome{}, err
		}
		if !IsTrue(cond) {
			return next, nil
		}
		out, err := w.Body.Evaluate(ctx.withFrame(ctx.Frame.Child()), true)
		if err != nil {
			return Outcome{}, err
		}
		switch out.Signal {
		case SigReturn:
			return out, nil
		case SigBreak:
			return next, nil
		}
	}
}

// Emit renders a `while (cond) { ... }` loop, per spec.md §4.7.
func (w *WhileEvaluator) Emit(ctx EmitContext, inLoop bool) (string, error) {
	cond, err := w.Condition.Emit(ctx)
	if err != nil {
		return "", err
	}
	body, err := w.Body.Emit(ctx.withFrame(ctx.Frame.Child()), true)
	if err != nil {
		return "", err
	}
	return "while (" + cond + ") {\n" + body + "}\n", nil
}

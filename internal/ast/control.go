package ast

import "github.com/pkg/errors"

// BreakEvaluator implements BREAK (spec.md §4.3/§4.6): it signals
// SigBreak when evaluated inside a loop, and is an error otherwise —
// spec.md's "control-flow error" (§7).
type BreakEvaluator struct{}

func (b *BreakEvaluator) Evaluate(ctx EvalContext, inLoop bool) (Outcome, error) {
	if !inLoop {
		return Outcome{}, errors.New("BREAK outside loop")
	}
	return Outcome{Signal: SigBreak}, nil
}

func (b *BreakEvaluator) Emit(ctx EmitContext, inLoop bool) (string, error) {
	if !inLoop {
		return "", errors.New("BREAK outside loop")
	}
	return "break;\n", nil
}

// ReturnEvaluator implements RETURN (spec.md §4.3/§4.6): it signals
// SigReturn carrying the evaluated RValue.
type ReturnEvaluator struct {
	Value *RValueEvaluator
}

func (r *ReturnEvaluator) Evaluate(ctx EvalContext, inLoop bool) (Outcome, error) {
	v, err := r.Value.Evaluate(ctx)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Signal: SigReturn, Result: v}, nil
}

func (r *ReturnEvaluator) Emit(ctx EmitContext, inLoop bool) (string, error) {
	v, err := r.Value.Emit(ctx)
	if err != nil {
		return "", err
	}
	return "return " + v + ";\n", nil
}

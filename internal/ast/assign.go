package ast

import (
	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/grammar"
	"github.com/bcoopers/poiboi/internal/token"
)

// VariableAssigner assigns an RValue to a local or global variable,
// per spec.md §4.4.
type VariableAssigner struct {
	IsLocalKeyword bool // the LOCAL keyword prefixed this assignment
	Name           string
	Value          *RValueEvaluator
}

// NewVariableAssigner lowers a parsed VariableAssignment cst.Node.
func NewVariableAssigner(node *cst.Node) (*VariableAssigner, error) {
	if node.Nonterminal != grammar.VariableAssignment {
		return nil, errors.Errorf("ast: expected VariableAssignment node, got %+v", node)
	}
	children := node.Children
	isLocal := false
	if len(children) == 4 {
		if children[0].Token.Kind != token.KeywordLocal {
			return nil, errors.Errorf("ast: malformed VariableAssignment node %+v", node)
		}
		isLocal = true
		children = children[1:]
	}
	if len(children) != 3 {
		return nil, errors.Errorf("ast: malformed VariableAssignment node %+v", node)
	}
	rv, err := NewRValueEvaluator(children[2])
	if err != nil {
		return nil, err
	}
	return &VariableAssigner{
		IsLocalKeyword: isLocal,
		Name:           children[0].Token.Text,
		Value:          rv,
	}, nil
}

// Evaluate implements spec.md §4.4's assignment resolution, with the
// LOCAL keyword always binding in the innermost frame (spec.md §8
// property 3: a LOCAL inside a nested block shadows an outer binding of
// the same name for exactly that block's duration). A bare assignment
// (no LOCAL) is local only when the chain already binds the name, and
// updates wherever that binding lives; otherwise it assigns the global.
func (a *VariableAssigner) Evaluate(ctx EvalContext, inLoop bool) (Outcome, error) {
	value, err := a.Value.Evaluate(ctx)
	if err != nil {
		return Outcome{}, err
	}
	switch {
	case a.IsLocalKeyword:
		ctx.Frame.Declare(a.Name, value)
	case ctx.Frame.Set(a.Name, value):
		// bare assignment found and updated an existing binding on the chain
	default:
		ctx.Globals.Set(a.Name, value)
	}
	return next, nil
}

// Emit implements spec.md §4.7's emission rule, mirroring Evaluate's
// shadowing behavior: the first LOCAL of a name in the current block's
// frame declares a fresh C++ local (shadowing any same-named binding from
// an enclosing block), even if the name is already bound higher up the
// chain; a repeat LOCAL in the same frame emits a plain update. A bare
// assignment found on the chain emits a plain update; one found nowhere
// emits (and registers) a global.
func (a *VariableAssigner) Emit(ctx EmitContext, inLoop bool) (string, error) {
	rvalueCode, err := a.Value.Emit(ctx)
	if err != nil {
		return "", err
	}
	switch {
	case a.IsLocalKeyword:
		isNewLocal := !ctx.Frame.HasLocal(a.Name)
		ctx.Frame.Declare(a.Name, "1")
		if isNewLocal {
			return "PBString " + a.Name + "_local_poiboivar = " + rvalueCode + ";", nil
		}
		return a.Name + "_local_poiboivar = " + rvalueCode + ";", nil
	case ctx.Frame.Set(a.Name, "1"):
		return a.Name + "_local_poiboivar = " + rvalueCode + ";", nil
	default:
		ctx.Globals.MarkGlobal(a.Name)
		return a.Name + "_global_poiboivar = " + rvalueCode + ";", nil
	}
}

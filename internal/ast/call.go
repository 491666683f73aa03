package ast

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/builtins"
	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/grammar"
	"github.com/bcoopers/poiboi/internal/token"
)

// FunctionCaller evaluates/emits a call to a builtin or a user-defined
// function (spec.md §4.3).
type FunctionCaller struct {
	Name      string
	IsBuiltin bool
	Args      []*RValueEvaluator
}

// NewFunctionCaller lowers a parsed FunctionCall cst.Node.
func NewFunctionCaller(node *cst.Node) (*FunctionCaller, error) {
	if node.Nonterminal != grammar.FunctionCall || len(node.Children) != 4 {
		return nil, errors.Errorf("ast: expected FunctionCall node, got %+v", node)
	}
	head := node.Children[0]
	args, err := rvaluesFromList(node.Children[2])
	if err != nil {
		return nil, err
	}
	return &FunctionCaller{
		Name:      head.Token.Text,
		IsBuiltin: head.Token.Kind == token.Builtin,
		Args:      args,
	}, nil
}

// Evaluate evaluates every argument left-to-right (spec.md §5 ordering)
// before invoking the callee, builtin or user function alike.
func (c *FunctionCaller) Evaluate(ctx EvalContext, inLoop bool) (Outcome, error) {
	values := make([]string, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Evaluate(ctx)
		if err != nil {
			return Outcome{}, err
		}
		values[i] = v
	}
	if c.IsBuiltin {
		result, err := builtins.Evaluate(ctx.Out, c.Name, values)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Signal: SigNext, Result: result}, nil
	}
	fn, ok := ctx.Funcs.Lookup(c.Name)
	if !ok {
		return Outcome{}, errors.Errorf("function %s not defined", c.Name)
	}
	result, err := fn.Call(values, ctx.Globals, ctx.Funcs, ctx.Out)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Signal: SigNext, Result: result}, nil
}

// Emit renders this call as a C++ expression (spec.md §4.7): a builtin
// call, or a call to `<Name>_poiboi_fn(...)` after checking arity against
// the function table.
func (c *FunctionCaller) Emit(ctx EmitContext, inLoop bool) (string, error) {
	values := make([]string, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Emit(ctx)
		if err != nil {
			return "", err
		}
		values[i] = v
	}
	if c.IsBuiltin {
		return builtins.Emit(c.Name, values)
	}
	fn, ok := ctx.Funcs.Lookup(c.Name)
	if !ok {
		return "", errors.Errorf("function %s not defined", c.Name)
	}
	if fn.ParamCount() != len(values) {
		return "", errors.Errorf("calling function %s with %d args, expected %d", c.Name, len(values), fn.ParamCount())
	}
	return c.Name + "_poiboi_fn(" + strings.Join(values, ", ") + ")", nil
}

func rvaluesFromList(node *cst.Node) ([]*RValueEvaluator, error) {
	if node.Nonterminal != grammar.RValueList {
		return nil, errors.Errorf("ast: expected RValueList node, got %+v", node)
	}
	if len(node.Children) == 0 {
		return nil, nil
	}
	first, err := NewRValueEvaluator(node.Children[0])
	if err != nil {
		return nil, err
	}
	rest, err := rvaluesFromExpansion(node.Children[1])
	if err != nil {
		return nil, err
	}
	return append([]*RValueEvaluator{first}, rest...), nil
}

func rvaluesFromExpansion(node *cst.Node) ([]*RValueEvaluator, error) {
	if node.Nonterminal != grammar.RValueListExpansion {
		return nil, errors.Errorf("ast: expected RValueListExpansion node, got %+v", node)
	}
	if len(node.Children) == 0 {
		return nil, nil
	}
	val, err := NewRValueEvaluator(node.Children[1])
	if err != nil {
		return nil, err
	}
	rest, err := rvaluesFromExpansion(node.Children[2])
	if err != nil {
		return nil, err
	}
	return append([]*RValueEvaluator{val}, rest...), nil
}

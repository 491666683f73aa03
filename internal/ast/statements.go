package ast

import (
	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/grammar"
	"github.com/bcoopers/poiboi/internal/token"
)

// Statement is any node that can appear in a StatementList: the common
// interface both back ends drive (spec.md §9's "single visitor trait").
type Statement interface {
	Evaluate(ctx EvalContext, inLoop bool) (Outcome, error)
	Emit(ctx EmitContext, inLoop bool) (string, error)
}

// StatementsEvaluator runs an ordered list of Statements, propagating
// SigReturn/SigBreak immediately (spec.md §4.6).
type StatementsEvaluator struct {
	Statements []Statement
}

// NewStatementsEvaluator lowers a parsed StatementList cst.Node.
func NewStatementsEvaluator(node *cst.Node) (*StatementsEvaluator, error) {
	var out []Statement
	for node.Nonterminal == grammar.StatementList && len(node.Children) > 0 {
		stmtNode := node.Children[0]
		if stmtNode.Nonterminal != grammar.Statement || len(stmtNode.Children) == 0 {
			return nil, errors.Errorf("ast: malformed Statement node %+v", stmtNode)
		}
		stmt, err := lowerStatement(stmtNode)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
		node = node.Children[1]
	}
	return &StatementsEvaluator{Statements: out}, nil
}

func lowerStatement(node *cst.Node) (Statement, error) {
	first := node.Children[0]
	switch {
	case first.Nonterminal == grammar.VariableAssignment:
		return NewVariableAssigner(first)
	case first.Nonterminal == grammar.FunctionCall:
		return NewFunctionCaller(first)
	case first.IsTok && first.Token.Kind == token.KeywordWhile:
		return NewWhileEvaluator(node.Children[1], node.Children[2])
	case first.IsTok && first.Token.Kind == token.KeywordIf:
		return NewIfEvaluator(node.Children[1], node.Children[2], node.Children[3])
	case first.IsTok && first.Token.Kind == token.KeywordBreak:
		return &BreakEvaluator{}, nil
	case first.IsTok && first.Token.Kind == token.KeywordReturn:
		rv, err := NewRValueEvaluator(node.Children[1])
		if err != nil {
			return nil, err
		}
		return &ReturnEvaluator{Value: rv}, nil
	default:
		return nil, errors.Errorf("ast: unrecognized Statement node %+v", node)
	}
}

// Evaluate runs every statement in order, stopping early on SigReturn,
// SigBreak, or an error.
func (s *StatementsEvaluator) Evaluate(ctx EvalContext, inLoop bool) (Outcome, error) {
	for _, stmt := range s.Statements {
		out, err := stmt.Evaluate(ctx, inLoop)
		if err != nil {
			return Outcome{}, err
		}
		if out.Signal != SigNext {
			return out, nil
		}
	}
	return next, nil
}

// Emit renders every statement's C++ text in order, appending a `;`
// after bare function-call statements (spec.md §4.7).
func (s *StatementsEvaluator) Emit(ctx EmitContext, inLoop bool) (string, error) {
	var out string
	for _, stmt := range s.Statements {
		code, err := stmt.Emit(ctx, inLoop)
		if err != nil {
			return "", err
		}
		out += code
		if _, isCall := stmt.(*FunctionCaller); isCall {
			out += ";\n"
		}
	}
	return out, nil
}

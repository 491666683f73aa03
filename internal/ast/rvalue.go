package ast

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/grammar"
	"github.com/bcoopers/poiboi/internal/token"
)

// RValueEvaluator is one of: a string literal, a variable read, or a
// function/builtin call — the only things that yield a value in PoiBoi
// (spec.md §3 RValue, §4.3).
type RValueEvaluator struct {
	stringContent string // decoded value; stringIsSet distinguishes "" from unset
	stringIsSet   bool
	stringRaw     string // the raw quoted token text, for Emit
	variableName  string
	call          *FunctionCaller
}

// NewRValueEvaluator lowers a parsed RValue cst.Node.
func NewRValueEvaluator(node *cst.Node) (*RValueEvaluator, error) {
	if node.Nonterminal != grammar.RValue || len(node.Children) != 1 {
		return nil, errors.Errorf("ast: expected RValue node, got %+v", node)
	}
	child := node.Children[0]
	switch {
	case child.IsTok && child.Token.Kind == token.String:
		return &RValueEvaluator{
			stringContent: DecodeString(child.Token.Text),
			stringIsSet:   true,
			stringRaw:     child.Token.Text,
		}, nil
	case child.IsTok && child.Token.Kind == token.Variable:
		return &RValueEvaluator{variableName: child.Token.Text}, nil
	default:
		caller, err := NewFunctionCaller(child)
		if err != nil {
			return nil, err
		}
		return &RValueEvaluator{call: caller}, nil
	}
}

// Evaluate returns the value of this RValue, per spec.md §4.4 (variable
// reads fall back to globals, then to "").
func (r *RValueEvaluator) Evaluate(ctx EvalContext) (string, error) {
	switch {
	case r.stringIsSet:
		return r.stringContent, nil
	case r.variableName != "":
		if v, ok := ctx.Frame.Get(r.variableName); ok {
			return v, nil
		}
		return ctx.Globals.Get(r.variableName), nil
	default:
		out, err := r.call.Evaluate(ctx, false)
		if err != nil {
			return "", err
		}
		return out.Result, nil
	}
}

// Emit renders this RValue as a C++ expression, per spec.md §4.7.
func (r *RValueEvaluator) Emit(ctx EmitContext) (string, error) {
	switch {
	case r.stringIsSet:
		return "PBString::NewStaticString(" + r.stringRaw + ")", nil
	case r.variableName != "":
		if _, ok := ctx.Frame.Get(r.variableName); ok {
			return r.variableName + "_local_poiboivar", nil
		}
		if ctx.Globals.Has(r.variableName) {
			return r.variableName + "_global_poiboivar", nil
		}
		return "PBString()", nil
	default:
		return r.call.Emit(ctx, false)
	}
}

// DecodeString turns a scanned String token's raw text — one or more
// adjacent "..." quoted runs, per spec.md §4.1 — into the literal value
// it denotes. The only supported escape is \" for a literal quote inside
// a run; every other character, including a lone backslash, is kept
// verbatim.
func DecodeString(raw string) string {
	var out strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] != '"' {
			i++
			continue
		}
		i++ // opening quote
		for i < len(raw) {
			if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '"' {
				out.WriteByte('"')
				i += 2
				continue
			}
			if raw[i] == '"' {
				i++
				break
			}
			out.WriteByte(raw[i])
			i++
		}
	}
	return out.String()
}

// Package ast lowers the parser's concrete syntax tree into the typed
// evaluator nodes shared by both back ends (spec.md §4.3): FunctionCaller,
// RValueEvaluator, VariableAssigner, IfEvaluator, WhileEvaluator,
// BreakEvaluator, ReturnEvaluator, StatementsEvaluator. Each node exposes
// an Evaluate method (the interpreter, internal/interp) and an Emit
// method (the transpiler, internal/transpile), per spec.md §9's "single
// visitor trait/interface with two implementations" design note.
//
// Grounded on _examples/original_source/py_src/evaluator.py, whose
// classes carry the same split (evaluate/compile) per node.
package ast

import (
	"io"

	"github.com/bcoopers/poiboi/internal/scope"
)

// Signal reports how a statement's evaluation should affect the
// enclosing control flow, per spec.md §4.6.
type Signal int

const (
	// SigNext means evaluation completed normally; continue with the
	// next statement.
	SigNext Signal = iota
	// SigReturn means a RETURN was evaluated; Result carries its payload
	// and propagation should stop at the nearest Function.Call.
	SigReturn
	// SigBreak means a BREAK was evaluated; propagation should stop at
	// the nearest enclosing WhileEvaluator.
	SigBreak
)

// Outcome is the result of evaluating one statement or statement list.
type Outcome struct {
	Signal Signal
	Result string
}

var next = Outcome{Signal: SigNext}

// Callable is anything that can be invoked by name with string
// arguments: a user-defined PoiBoi function. Defined here (rather than
// imported from internal/function) so this package has no dependency on
// the function table — internal/function depends on ast, not the reverse,
// mirroring how python's function.py imports evaluator.py and not vice
// versa.
type Callable interface {
	// ParamCount returns the number of declared parameters.
	ParamCount() int
	// Call invokes the function body with the given argument values,
	// writing any PRINT output to out.
	Call(args []string, globals *scope.Globals, funcs FunctionTable, out io.Writer) (string, error)
}

// FunctionTable resolves a user function name to its Callable.
type FunctionTable interface {
	Lookup(name string) (Callable, bool)
}

// GlobalSink records, during C++ emission, that a name is assigned as a
// global somewhere in the program, so the transpiler can emit a top-level
// `PBString <name>_global_poiboivar;` definition for it. Has reports
// whether a name has been marked global so far in this emission pass —
// the same accumulating-registry role Python's compiler.py plays with a
// plain dict threaded through every node's compile() call.
type GlobalSink interface {
	MarkGlobal(name string)
	Has(name string) bool
}

// EvalContext bundles everything a node's Evaluate method needs: the
// innermost local frame, the process-level globals, the function table
// for resolving calls, and the sink PRINT writes to.
type EvalContext struct {
	Frame   *scope.Frame
	Globals *scope.Globals
	Funcs   FunctionTable
	Out     io.Writer
}

// withFrame returns a copy of ctx pointing at a different frame, used
// whenever a node opens a new lexical block.
func (c EvalContext) withFrame(f *scope.Frame) EvalContext {
	c.Frame = f
	return c
}

// EmitContext bundles everything a node's Emit method needs during C++
// source generation: the innermost "has this name been declared locally"
// frame, the global-name sink, and the function table (for arity checks
// and call emission).
type EmitContext struct {
	Frame   *scope.Frame
	Globals GlobalSink
	Funcs   FunctionTable
}

func (c EmitContext) withFrame(f *scope.Frame) EmitContext {
	c.Frame = f
	return c
}

// Package function assembles the function table (spec.md §3/§4.3): it
// collects FunctionDefinition nodes out of one or more parsed Modules
// into a Function type (name, parameter names, lowered body), and a
// Table mapping name -> *Function, erroring on redefinition.
//
// Grounded on _examples/original_source/py_src/function.py.
package function

import (
	"io"

	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/ast"
	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/grammar"
	"github.com/bcoopers/poiboi/internal/scope"
	"github.com/bcoopers/poiboi/internal/token"
)

// Function is one top-level PoiBoi function definition: its name, its
// ordered parameter names, and its lowered body (spec.md §3).
type Function struct {
	Name       string
	Params     []string
	Statements *ast.StatementsEvaluator
}

// New lowers a parsed FunctionDefinition cst.Node into a Function.
func New(node *cst.Node) (*Function, error) {
	if node.Nonterminal != grammar.FunctionDefinition || len(node.Children) != 5 {
		return nil, errors.Errorf("function: expected FunctionDefinition node, got %+v", node)
	}
	name := node.Children[0].Token.Text
	params, err := variableNamesFromList(node.Children[2])
	if err != nil {
		return nil, err
	}
	block := node.Children[4]
	if block.Nonterminal != grammar.CodeBlock || len(block.Children) != 3 {
		return nil, errors.Errorf("function: expected CodeBlock node, got %+v", block)
	}
	stmts, err := ast.NewStatementsEvaluator(block.Children[1])
	if err != nil {
		return nil, err
	}
	return &Function{Name: name, Params: params, Statements: stmts}, nil
}

// ParamCount satisfies ast.Callable.
func (f *Function) ParamCount() int { return len(f.Params) }

// Call validates arity, binds each parameter to the matching argument in
// a fresh top-level frame, and evaluates the body with inLoop=false, per
// spec.md §4.6. A body that completes without RETURN yields "".
func (f *Function) Call(args []string, globals *scope.Globals, funcs ast.FunctionTable, w io.Writer) (string, error) {
	if len(args) != len(f.Params) {
		return "", errors.Errorf("can't call function %s; expected %d arguments, got %d", f.Name, len(f.Params), len(args))
	}
	frame := scope.NewFrame()
	for i, p := range f.Params {
		frame.Declare(p, args[i])
	}
	ctx := ast.EvalContext{Frame: frame, Globals: globals, Funcs: funcs, Out: w}
	out, err := f.Statements.Evaluate(ctx, false)
	if err != nil {
		return "", err
	}
	if out.Signal == ast.SigReturn {
		return out.Result, nil
	}
	return "", nil
}

// Declaration renders this function's C++ signature, per spec.md §4.7:
// `PBString <Name>_poiboi_fn(PBString a_local_poiboivar, ...)`, without a
// trailing `;` (the transpiler appends one for the forward declaration).
func (f *Function) Declaration() string {
	code := "PBString " + f.Name + "_poiboi_fn("
	for i, p := range f.Params {
		if i > 0 {
			code += ", "
		}
		code += "PBString " + p + "_local_poiboivar"
	}
	code += ")"
	return code
}

// Define renders this function's full C++ definition (forward
// declaration plus body), ending with a `return PBString();` safeguard
// for bodies that fall off the end (spec.md §4.7).
func (f *Function) Define(globals ast.GlobalSink, funcs ast.FunctionTable) (string, error) {
	frame := scope.NewFrame()
	for _, p := range f.Params {
		frame.Declare(p, "1")
	}
	ctx := ast.EmitContext{Frame: frame, Globals: globals, Funcs: funcs}
	body, err := f.Statements.Emit(ctx, false)
	if err != nil {
		return "", err
	}
	return f.Declaration() + " {\n" + body + "\nreturn PBString();\n}\n", nil
}

func variableNamesFromExpansion(node *cst.Node) ([]string, error) {
	if node.Nonterminal != grammar.VariablesListExpansion {
		return nil, errors.Errorf("function: expected VariablesListExpansion node, got %+v", node)
	}
	if len(node.Children) == 0 {
		return nil, nil
	}
	rest, err := variableNamesFromExpansion(node.Children[2])
	if err != nil {
		return nil, err
	}
	return append([]string{node.Children[1].Token.Text}, rest...), nil
}

func variableNamesFromList(node *cst.Node) ([]string, error) {
	if node.Nonterminal != grammar.VariablesList {
		return nil, errors.Errorf("function: expected VariablesList node, got %+v", node)
	}
	if len(node.Children) == 0 {
		return nil, nil
	}
	rest, err := variableNamesFromExpansion(node.Children[1])
	if err != nil {
		return nil, err
	}
	return append([]string{node.Children[0].Token.Text}, rest...), nil
}

// Table maps a function name to its *Function, built once from one or
// more parsed modules and immutable thereafter (spec.md §3).
type Table struct {
	byName map[string]*Function
	// order preserves the order functions were first encountered, so
	// the transpiler emits declarations/definitions deterministically.
	order []*Function
}

// NewTable collects every FunctionDefinition reachable from the given
// Module-rooted cst.Node trees and unions them into one Table, erroring
// if two functions share a name across the union (spec.md §3's "Function
// names are globally unique" invariant).
func NewTable(modules []*cst.Node) (*Table, error) {
	t := &Table{byName: map[string]*Function{}}
	for _, m := range modules {
		defs, err := functionDefsInModule(m)
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			fn, err := New(def)
			if err != nil {
				return nil, err
			}
			if _, exists := t.byName[fn.Name]; exists {
				return nil, errors.Errorf("multiple definitions of function %s", fn.Name)
			}
			t.byName[fn.Name] = fn
			t.order = append(t.order, fn)
		}
	}
	return t, nil
}

func functionDefsInModule(module *cst.Node) ([]*cst.Node, error) {
	var defs []*cst.Node
	cur := module
	for {
		if cur.Nonterminal != grammar.Module {
			return nil, errors.Errorf("function: expected Module node, got %+v", cur)
		}
		switch len(cur.Children) {
		case 1: // EOF
			if cur.Children[0].Token.Kind != token.EOF {
				return nil, errors.Errorf("function: malformed Module node %+v", cur)
			}
			return defs, nil
		case 2: // FunctionDefinition Module
			defs = append(defs, cur.Children[0])
			cur = cur.Children[1]
		default:
			return nil, errors.Errorf("function: malformed Module node %+v", cur)
		}
	}
}

// Lookup satisfies ast.FunctionTable.
func (t *Table) Lookup(name string) (ast.Callable, bool) {
	fn, ok := t.byName[name]
	return fn, ok
}

// Get returns the *Function for name, or nil if undefined.
func (t *Table) Get(name string) (*Function, bool) {
	fn, ok := t.byName[name]
	return fn, ok
}

// Has reports whether a function named name is defined.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// InOrder returns every function in first-encountered order, for
// deterministic transpiler output.
func (t *Table) InOrder() []*Function {
	return t.order
}

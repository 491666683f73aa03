// Package transpile is back end B of spec.md §4.7: it emits a single
// C++17 translation unit from a function.Table that, once compiled
// against the embedded PBString runtime (internal/runtime), reproduces
// internal/interp's behavior.
//
// Grounded on _examples/original_source/py_src/compiler.py.
package transpile

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/function"
	"github.com/bcoopers/poiboi/internal/runtime"
)

// globalRegistry accumulates the names assigned as globals anywhere in
// the program, in first-seen order, as emission proceeds function by
// function, statement by statement. It implements ast.GlobalSink.
type globalRegistry struct {
	seen  map[string]bool
	order []string
}

func newGlobalRegistry() *globalRegistry {
	return &globalRegistry{seen: map[string]bool{}}
}

func (g *globalRegistry) MarkGlobal(name string) {
	if !g.seen[name] {
		g.seen[name] = true
		g.order = append(g.order, name)
	}
}

func (g *globalRegistry) Has(name string) bool {
	return g.seen[name]
}

const sectionBreak = "\n\n\n\n\n"

// Compile emits the full C++17 translation unit for tbl, per spec.md
// §4.7's ordered layout: compile-time flags, the inlined runtime,
// forward declarations, global definitions, function bodies, and main.
func Compile(tbl *function.Table) (string, error) {
	var b strings.Builder
	b.WriteString("#define POIBOI_EXECUTABLE_\n")
	b.WriteString("#define POIBOI_INCLUDE_ASSERT_\n")
	b.WriteString(runtime.HeaderText)
	b.WriteString(runtime.SourceText)
	b.WriteString(sectionBreak)

	for _, fn := range tbl.InOrder() {
		b.WriteString(fn.Declaration())
		b.WriteString(";\n")
	}
	b.WriteString(sectionBreak)

	// A first pass only registers every name assigned as a global, so a
	// function emitted before the one assigning the global still reads it.
	globals := newGlobalRegistry()
	for _, fn := range tbl.InOrder() {
		if _, err := fn.Define(globals, tbl); err != nil {
			return "", errors.Wrapf(err, "couldn't compile function %s", fn.Name)
		}
	}
	fnCodes := make([]string, 0, len(tbl.InOrder()))
	for _, fn := range tbl.InOrder() {
		code, err := fn.Define(globals, tbl)
		if err != nil {
			return "", errors.Wrapf(err, "couldn't compile function %s", fn.Name)
		}
		fnCodes = append(fnCodes, code)
	}

	for _, name := range globals.order {
		b.WriteString("PBString " + name + "_global_poiboivar;\n")
	}
	b.WriteString(sectionBreak)

	for _, code := range fnCodes {
		b.WriteString(code)
		b.WriteString(sectionBreak)
	}

	mainCode, err := emitMain(tbl)
	if err != nil {
		return "", err
	}
	b.WriteString(mainCode)
	return b.String(), nil
}

func emitMain(tbl *function.Table) (string, error) {
	main, ok := tbl.Get("Main")
	if !ok {
		return "int main() { return 0; }", nil
	}
	switch main.ParamCount() {
	case 0:
		return "int main() { Main_poiboi_fn(); return 0; }", nil
	case 1:
		// TODO: command-line input isn't plumbed into the emitted
		// binary's main; Main always receives an empty PBString.
		return "int main() { Main_poiboi_fn(PBString()); return 0; }", nil
	default:
		return "", errors.Errorf("requires either 0 or 1 argument to Main, got %d", main.ParamCount())
	}
}

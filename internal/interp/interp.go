// Package interp is back end A of spec.md §4.6: the tree-walking
// interpreter. It wraps internal/function's Table/Function with the
// top-level "find and invoke Main" contract shared by the interpreter
// CLI (spec.md §6).
//
// Grounded on _examples/original_source/py_src/interpreter.py.
package interp

import (
	"io"

	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/function"
	"github.com/bcoopers/poiboi/internal/scope"
)

// Run invokes the table's Main function, if any, with zero or one
// argument (spec.md §6). A program with no Main returns "" and no error.
// A Main declared with more than one parameter is a "Main signature
// error" (spec.md §7); arg is passed only when Main takes exactly one
// parameter.
func Run(tbl *function.Table, arg string, out io.Writer) (string, error) {
	main, ok := tbl.Get("Main")
	if !ok {
		return "", nil
	}
	if main.ParamCount() > 1 {
		return "", errors.Errorf("requires either 0 or 1 argument to Main, got %d", main.ParamCount())
	}
	var args []string
	if main.ParamCount() == 1 {
		args = []string{arg}
	}
	globals := scope.NewGlobals()
	return main.Call(args, globals, tbl, out)
}

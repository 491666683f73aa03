// Package builtins implements the closed catalog of PoiBoi primitives
// (spec.md §4.5): EQUAL, NOT, AND, OR, CONCAT, STRLEN, SUBSTRING, PRINT.
// Each has a fixed arity, a runtime Evaluate, and a C++ expression Emit,
// per spec.md §9's "keep the builtin catalog the single source of truth
// for arity and name" design note.
//
// Grounded on _examples/original_source/py_src/builtins.py.
package builtins

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Builtin describes one primitive: its PoiBoi name, arity, runtime
// behavior, and C++ emission name.
type Builtin struct {
	Name    string
	Arity   int
	CppName string
	eval    func(w io.Writer, args []string) (string, error)
}

// catalog is the fixed, ordered set of builtins. Order matches
// spec.md §4.5's table.
var catalog = []Builtin{
	{Name: "EQUAL", Arity: 2, CppName: "Builtin_Equal", eval: func(_ io.Writer, a []string) (string, error) {
		if a[0] == a[1] {
			return "TRUE", nil
		}
		return "FALSE", nil
	}},
	{Name: "NOT", Arity: 1, CppName: "Builtin_Not", eval: func(_ io.Writer, a []string) (string, error) {
		if a[0] == "TRUE" {
			return "FALSE", nil
		}
		return "TRUE", nil
	}},
	{Name: "AND", Arity: 2, CppName: "Builtin_And", eval: func(_ io.Writer, a []string) (string, error) {
		if a[0] == "TRUE" && a[1] == "TRUE" {
			return "TRUE", nil
		}
		return "FALSE", nil
	}},
	{Name: "OR", Arity: 2, CppName: "Builtin_Or", eval: func(_ io.Writer, a []string) (string, error) {
		if a[0] == "TRUE" || a[1] == "TRUE" {
			return "TRUE", nil
		}
		return "FALSE", nil
	}},
	{Name: "CONCAT", Arity: 2, CppName: "Builtin_Concat", eval: func(_ io.Writer, a []string) (string, error) {
		return a[0] + a[1], nil
	}},
	{Name: "STRLEN", Arity: 1, CppName: "Builtin_Strlen", eval: func(_ io.Writer, a []string) (string, error) {
		return strconv.Itoa(len(a[0])), nil
	}},
	{Name: "SUBSTRING", Arity: 3, CppName: "Builtin_Substring", eval: func(_ io.Writer, a []string) (string, error) {
		return substring(a[0], a[1], a[2]), nil
	}},
	{Name: "PRINT", Arity: 1, CppName: "Builtin_Print", eval: func(w io.Writer, a []string) (string, error) {
		fmt.Fprintln(w, a[0])
		return a[0], nil
	}},
}

// substring implements spec.md §4.5/§8 scenario S6's clamping rules:
// a non-integer start clamps to 0, a non-integer end clamps to len(s),
// negative start clamps to 0, end beyond len(s) clamps to len(s), and
// start >= end yields "".
func substring(s, startStr, endStr string) string {
	start, err := strconv.Atoi(startStr)
	if err != nil {
		start = 0
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		end = len(s)
	}
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}

func find(name string) (Builtin, bool) {
	for _, b := range catalog {
		if b.Name == name {
			return b, true
		}
	}
	return Builtin{}, false
}

// Evaluate runs the named builtin against args, writing PRINT's output to
// w. Arity mismatch and unknown-name failures are evaluation errors per
// spec.md §4.5.
func Evaluate(w io.Writer, name string, args []string) (string, error) {
	b, ok := find(name)
	if !ok {
		return "", errors.Errorf("no builtin named %s", name)
	}
	if len(args) != b.Arity {
		return "", errors.Errorf("wrong number of arguments for %s; expected %d, got %d", name, b.Arity, len(args))
	}
	return b.eval(w, args)
}

// Emit renders a call to the named builtin as a C++ expression, e.g.
// "Builtin_Equal(a, b)". It fails the same way Evaluate does on an
// unknown name or arity mismatch, since the transpiler must reject those
// programs exactly like the interpreter does.
func Emit(name string, args []string) (string, error) {
	b, ok := find(name)
	if !ok {
		return "", errors.Errorf("no builtin named %s", name)
	}
	if len(args) != b.Arity {
		return "", errors.Errorf("wrong number of arguments for %s; expected %d, got %d", name, b.Arity, len(args))
	}
	return b.CppName + "(" + strings.Join(args, ", ") + ")", nil
}

// IsBuiltin reports whether name is in the closed catalog.
func IsBuiltin(name string) bool {
	_, ok := find(name)
	return ok
}

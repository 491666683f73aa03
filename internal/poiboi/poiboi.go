// Package poiboi glues the scanner/parser/function/interp/transpile
// packages into the convenience API both cmd/ drivers use: parse one
// or more source files into a unioned function table, then either
// interpret or compile it.
package poiboi

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/function"
	"github.com/bcoopers/poiboi/internal/interp"
	"github.com/bcoopers/poiboi/internal/parser"
	"github.com/bcoopers/poiboi/internal/transpile"
)

// Log is the package-level driver logger both cmd/* entrypoints share.
// Library packages (scanner, parser, interp, transpile) never log; only
// this package and the CLI drivers do.
var Log = logrus.New()

// Source pairs a source file's name (for log/error messages) with its text.
type Source struct {
	Name string
	Text string
}

// ParseSources parses each source independently and returns one
// Module-rooted cst.Node per source, unioned later by function.NewTable.
func ParseSources(sources []Source) ([]*cst.Node, error) {
	modules := make([]*cst.Node, 0, len(sources))
	for _, src := range sources {
		Log.Infof("lexing and parsing %s", src.Name)
		mod, err := parser.Parse(src.Text)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", src.Name)
		}
		modules = append(modules, mod)
	}
	return modules, nil
}

// InterpretModules unions the parsed modules' function definitions and
// invokes Main (spec.md §6), writing PRINT output to out.
func InterpretModules(sources []Source, arg string, out io.Writer) (string, error) {
	modules, err := ParseSources(sources)
	if err != nil {
		return "", err
	}
	tbl, err := function.NewTable(modules)
	if err != nil {
		return "", err
	}
	Log.Info("calling Main")
	return interp.Run(tbl, arg, out)
}

// CompileModules unions the parsed modules' function definitions and
// emits one C++17 translation unit (spec.md §4.7).
func CompileModules(sources []Source) (string, error) {
	modules, err := ParseSources(sources)
	if err != nil {
		return "", err
	}
	tbl, err := function.NewTable(modules)
	if err != nil {
		return "", err
	}
	Log.Info("compiling program")
	return transpile.Compile(tbl)
}

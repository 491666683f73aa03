// Command poiboic is the PoiBoi compiler driver (spec.md §6): it reads
// one or more .poiboi source files, unions their function definitions,
// and emits a single C++17 translation unit.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bcoopers/poiboi/internal/poiboi"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		poiboi.Log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poiboic <in1.poiboi> [in2.poiboi ...] <out.cc>",
		Short: "Compile one or more PoiBoi source files to C++17",
		// spec.md §6: fewer than two arguments prints a usage hint and
		// exits 0, not cobra's usual MinimumNArgs error exit.
		Args:          tooFewArgsIsUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCompile,
	}
	return cmd
}

func tooFewArgsIsUsage(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		cmd.Println(cmd.UseLine())
		os.Exit(0)
	}
	return nil
}

func runCompile(cmd *cobra.Command, args []string) error {
	inputs, outPath := args[:len(args)-1], args[len(args)-1]
	if hasPoiboiExt(outPath) {
		return errors.Errorf("output path %q must not end in .poiboi", outPath)
	}

	sources, err := readSources(inputs)
	if err != nil {
		return err
	}

	code, err := poiboi.CompileModules(sources)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(code), 0o644)
}

func hasPoiboiExt(path string) bool {
	return len(path) >= len(".poiboi") && path[len(path)-len(".poiboi"):] == ".poiboi"
}

func readSources(paths []string) ([]poiboi.Source, error) {
	sources := make([]poiboi.Source, 0, len(paths))
	for _, p := range paths {
		text, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", p)
		}
		sources = append(sources, poiboi.Source{Name: p, Text: string(text)})
	}
	return sources, nil
}

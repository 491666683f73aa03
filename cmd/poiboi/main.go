// Command poiboi is the PoiBoi interpreter driver (spec.md §6): it reads
// one or more .poiboi source files, unions their function definitions,
// and invokes Main with zero or one argument.
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
	var arg string
	cmd := &cobra.Command{
		Use:   "poiboi <in1.poiboi> [in2.poiboi ...]",
		Short: "Interpret one or more PoiBoi source files",
		// spec.md §6: fewer than one argument prints a usage hint and
		// exits 0.
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				cmd.Println(cmd.UseLine())
				os.Exit(0)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readSources(args)
			if err != nil {
				return err
			}
			_, err = poiboi.InterpretModules(sources, arg, os.Stdout)
			return err
		},
	}
	cmd.Flags().StringVar(&arg, "arg", "", "single string argument passed to Main, when Main declares exactly one parameter")
	return cmd
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

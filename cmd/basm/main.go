// Command basm assembles programmatic btern programs (package asm Builders)
// to the on-disk trit binary format (package trit). There is no textual
// assembly syntax yet -- the "build" subcommand writes the bundled Demo
// program, and "scenario" writes one of the named end-to-end scenarios used
// by the cpu package's own tests, so the same programs are reachable both
// from `go test` and from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hejops/btern/asm"
	"github.com/hejops/btern/trit"
)

func main() {
	var output string

	rootCmd := &cobra.Command{
		Use:   "basm",
		Short: "Assemble balanced-ternary btern programs",
	}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the bundled demonstration program",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeBuilder(asm.Demo(), output)
		},
	}
	buildCmd.Flags().StringVarP(&output, "output", "o", "test_program.bin", "output file path")

	scenarioCmd := &cobra.Command{
		Use:       "scenario <name>",
		Short:     "Assemble one of the named test scenarios",
		Args:      cobra.ExactArgs(1),
		ValidArgs: asm.Scenarios,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok := asm.Scenario(args[0])
			if !ok {
				return fmt.Errorf("basm: unknown scenario %q (want one of %v)", args[0], asm.Scenarios)
			}
			return writeBuilder(b, output)
		},
	}
	scenarioCmd.Flags().StringVarP(&output, "output", "o", "test_program.bin", "output file path")

	// With no subcommand, basm does what "basm build" does.
	rootCmd.RunE = buildCmd.RunE
	rootCmd.Flags().StringVarP(&output, "output", "o", "test_program.bin", "output file path")

	rootCmd.AddCommand(buildCmd, scenarioCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func writeBuilder(b *asm.Builder, path string) error {
	trits, err := b.Build()
	if err != nil {
		return fmt.Errorf("basm: %w", err)
	}

	if err := os.WriteFile(path, trit.Encode(trits), 0o644); err != nil {
		return fmt.Errorf("basm: %w", err)
	}

	fmt.Printf("wrote %d trits (%d trytes) to %s\n", len(trits), len(trits)/trit.TryteLen, path)
	return nil
}

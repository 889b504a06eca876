// Command bemu loads a btern binary (package trit's wire format) and runs
// it to completion, printing the final register dump. The --debug flag
// drops into the interactive bubbletea single-step debugger instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hejops/btern/cpu"
	"github.com/hejops/btern/mem"
	"github.com/hejops/btern/trit"
)

func main() {
	var budget int64
	var debug bool

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a btern binary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "test_program.bin"
			if len(args) == 1 {
				path = args[0]
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("bemu: %w", err)
			}
			trits, err := trit.Decode(raw)
			if err != nil {
				return fmt.Errorf("bemu: %w", err)
			}

			m := mem.New()
			if err := m.Load(trits); err != nil {
				return fmt.Errorf("bemu: %w", err)
			}

			c := cpu.New(m)
			c.InstructionBudget = budget

			if debug {
				return c.Debug(trits)
			}

			if err := c.Run(); err != nil {
				return fmt.Errorf("bemu: %w", err)
			}
			return c.Dump(os.Stdout)
		},
	}
	runCmd.Flags().Int64Var(&budget, "budget", 0, "instruction budget watchdog (0 = unbounded)")
	runCmd.Flags().BoolVar(&debug, "debug", false, "launch the interactive single-step debugger")

	rootCmd := &cobra.Command{
		Use:   "bemu",
		Short: "Run balanced-ternary btern programs",
	}
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ledbank/host/sim"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:     "run <scenario>...",
	Short:   "Run scenarios and print every output bank write",
	Example: "  ledbank-sim run full-sweep ./my-scenario.yaml",
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,
}

func run(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		sc, err := sim.Lookup(name)
		if err != nil {
			return err
		}
		trace, err := sim.Run(sc, cfg, log.Logger)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", sc.Name)
		for _, w := range trace.Writes {
			fmt.Fprintf(out, "%10.1fms  %08b  %s\n", float64(w.At.Microseconds())/1000, w.Bits, bar(w.Bits))
		}
		fmt.Fprintf(out, "final: position=%d direction=%s rate=%d/%d\n",
			trace.Final.Sweep.Position, trace.Final.Sweep.Direction,
			trace.Final.Rate.Threshold, trace.Final.Rate.Reload)
	}
	return nil
}

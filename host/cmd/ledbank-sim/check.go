package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ledbank/host/sim"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var (
	checkCmd = &cobra.Command{
		Use:   "check [scenario]...",
		Short: "Run scenarios and compare their writes with the expected trace",
		Long:  "Run scenarios and compare their writes with the expected trace.\nWith no arguments every built-in scenario is checked.",
		RunE:  check,
	}
	errCheckFailed = errors.New("check failed")
)

func check(cmd *cobra.Command, args []string) error {
	var scenarios []sim.Scenario
	if len(args) == 0 {
		all, err := sim.Builtin()
		if err != nil {
			return err
		}
		scenarios = all
	}
	for _, name := range args {
		sc, err := sim.Lookup(name)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
	}

	failed := 0
	for _, sc := range scenarios {
		if len(sc.Expect) == 0 {
			log.Warn().Str("scenario", sc.Name).Msg("no expected trace; skipped")
			continue
		}
		trace, err := sim.Run(sc, cfg, log.Logger)
		if err == nil {
			err = sim.Check(sc, trace)
		}
		if err != nil {
			failed++
			log.Error().Err(err).Str("scenario", sc.Name).Msg("FAIL")
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%d writes)\n", sc.Name, len(trace.Writes))
	}
	if failed > 0 {
		return fmt.Errorf("%d scenario(s): %w", failed, errCheckFailed)
	}
	return nil
}

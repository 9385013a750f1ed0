package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ledbank/host/sim"
)

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := sim.Builtin()
		if err != nil {
			return err
		}
		for _, sc := range all {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", sc.Name, sc.Description)
		}
		return nil
	},
}

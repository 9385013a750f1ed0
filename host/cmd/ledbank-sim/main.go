package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ledbank/core"
)

var (
	rootCmd = &cobra.Command{
		Use:   "ledbank-sim",
		Short: "ledbank-sim replays board events against the LED bank controller",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootOpts = struct {
		Config  string
		Verbose bool
		Debug   bool
	}{}

	cfg core.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.Config, "config", "c", "", "controller configuration (JSON)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "log every scenario step")
	rootCmd.PersistentFlags().BoolVar(&rootOpts.Debug, "debug", false, "forward controller debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() error {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if rootOpts.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg = core.DefaultConfig()
	if rootOpts.Config != "" {
		data, err := os.ReadFile(rootOpts.Config)
		if err != nil {
			return err
		}
		if cfg, err = core.LoadConfig(data); err != nil {
			return fmt.Errorf("config %s: %w", rootOpts.Config, err)
		}
	}
	if rootOpts.Debug {
		cfg.Debug = true
		core.SetDebugWriter(func(s string) {
			log.Debug().Str("src", "core").Msg(s)
		})
	}
	return nil
}

// bar renders an output bank value with bit 7 on the left.
func bar(v uint8) string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		if v&(1<<i) != 0 {
			sb.WriteString("●")
		} else {
			sb.WriteString("○")
		}
	}
	return sb.String()
}

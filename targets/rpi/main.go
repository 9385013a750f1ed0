//go:build linux

// ledbank-rpi runs the LED bank controller on a Raspberry Pi with eight LEDs,
// two buttons and an MCP3008.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/warthog618/gpio"

	"ledbank/core"
)

// pollInterval paces the foreground loop so it does not spin a core
const pollInterval = time.Millisecond

var (
	rootCmd = &cobra.Command{
		Use:   "ledbank-rpi",
		Short: "ledbank-rpi drives an 8-LED bank from two buttons and an MCP3008",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	opts = struct {
		Config  string
		Verbose bool
		Channel int
	}{}
)

func init() {
	rootCmd.Flags().StringVarP(&opts.Config, "config", "c", "", "controller configuration (JSON)")
	rootCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log controller debug output")
	rootCmd.Flags().IntVar(&opts.Channel, "channel", -1, "override the MCP3008 channel")
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (core.Config, error) {
	cfg := core.DefaultConfig()
	if opts.Config != "" {
		data, err := os.ReadFile(opts.Config)
		if err != nil {
			return cfg, err
		}
		if cfg, err = core.LoadConfig(data); err != nil {
			return cfg, fmt.Errorf("config %s: %w", opts.Config, err)
		}
	}
	if opts.Channel >= 0 {
		cfg.ADCChannel = core.ADCChannel(opts.Channel)
	}
	if opts.Verbose {
		cfg.Debug = true
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	core.SetDebugWriter(func(s string) {
		log.Debug().Str("src", "core").Msg(s)
	})

	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return err
	}

	if err := gpio.Open(); err != nil {
		log.Error().Err(err).Msg("gpio open")
		return err
	}
	defer gpio.Close()

	drv := NewDriver(DefaultDriverConfig())
	defer drv.Close()
	core.SetPeripheralDriver(drv)

	ctl, err := core.New(core.MustPeripheral(), cfg)
	if err != nil {
		log.Error().Err(err).Msg("controller")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		drv.Serve(ctx, ctl)
	}()

	ctl.Start()
	log.Info().
		Uint8("channel", uint8(cfg.ADCChannel)).
		Uint8("button_a", uint8(cfg.ButtonA)).
		Uint8("button_b", uint8(cfg.ButtonB)).
		Msg("running")

	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			<-done
			snap := ctl.Snapshot()
			log.Info().
				Str("mode", snap.Buttons.String()).
				Uint16("sample", snap.Sample).
				Msg("stopped")
			return nil
		case <-tick.C:
			ctl.Step()
		}
	}
}

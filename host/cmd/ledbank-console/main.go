package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ledbank/core"
	"ledbank/host/serial"
)

var (
	rootCmd = &cobra.Command{
		Use:   "ledbank-console",
		Short: "ledbank-console tails the controller debug UART",
		Args:  cobra.NoArgs,
		RunE:  console,
	}
	opts = struct {
		Device string
		Baud   int
		Raw    bool
	}{}
)

func init() {
	rootCmd.Flags().StringVarP(&opts.Device, "device", "d", "/dev/ttyUSB0", "serial device path")
	rootCmd.Flags().IntVarP(&opts.Baud, "baud", "b", 115200, "baud rate")
	rootCmd.Flags().BoolVar(&opts.Raw, "raw", false, "print lines without decoding events")
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.StampMilli})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func console(cmd *cobra.Command, args []string) error {
	cfg := serial.DefaultConfig(opts.Device)
	cfg.Baud = opts.Baud
	cfg.ReadTimeout = 0

	port, err := serial.Open(cfg)
	if err != nil {
		log.Error().Err(err).Msg("open")
		return err
	}
	defer port.Close()
	if err := port.Discard(); err != nil {
		log.Warn().Err(err).Msg("discard")
	}
	log.Info().Str("device", cfg.Device).Int("baud", cfg.Baud).Msg("listening")

	lines := make(chan serial.Line, 64)
	readErr := make(chan error, 1)
	go func() { readErr <- serial.ReadLines(port, lines) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	for {
		select {
		case l, ok := <-lines:
			if !ok {
				err := <-readErr
				if err != nil {
					log.Error().Err(err).Msg("read")
				}
				return err
			}
			show(l)
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			return nil
		}
	}
}

func show(l serial.Line) {
	if opts.Raw || l.Event == nil {
		log.Info().Msg(strings.TrimRight(l.Text, "\r"))
		return
	}
	evt := *l.Event
	ev := log.Info().Str("kind", core.EventName(evt.Kind)).Uint32("seq", evt.Seq)
	switch evt.Kind {
	case core.EvtSweepStep:
		ev = ev.Uint32("position", evt.Value1)
	case core.EvtThermo:
		ev = ev.Uint32("sample", evt.Value1)
	case core.EvtRateChange, core.EvtStart:
		ev = ev.Uint32("threshold", evt.Value1).Uint32("reload", evt.Value2)
	case core.EvtModeChange:
		ev = ev.Str("mode", core.ModeName(evt.Value1))
	}
	if p, ok := serial.Pattern(evt); ok {
		ev = ev.Str("bank", fmt.Sprintf("%08b", p))
	}
	ev.Msg("event")
}

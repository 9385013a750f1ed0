//go:build rp2040

package main

import (
	"device/rp"
	"ledbank/core"
	"machine"
	"runtime/interrupt"
	"time"
)

// Both handlers run at the same priority so neither preempts the other.
const irqPriority = 0xc0

// Button pins, active low with pull-ups
const (
	buttonA = machine.GPIO14
	buttonB = machine.GPIO15
)

var ctl *core.Controller

func main() {
	InitDebugUART()
	core.SetDebugWriter(DebugPrintln)

	bank, err := newBank(GetBankConfig())
	if err != nil {
		halt("output bank: " + err.Error())
	}

	drv := NewRPPeripheralDriver(bank)
	drv.ConfigureInputs(buttonA, buttonB)
	core.SetPeripheralDriver(drv)

	cfg := core.DefaultConfig()
	cfg.ButtonA = core.InputPin(buttonA)
	cfg.ButtonB = core.InputPin(buttonB)
	cfg.ADCChannel = 0
	cfg.Debug = debugEnabled

	ctl, err = core.New(core.MustPeripheral(), cfg)
	if err != nil {
		halt("config: " + err.Error())
	}

	drv.timerIRQ = interrupt.New(rp.IRQ_TIMER_IRQ_1, timerISR)
	drv.timerIRQ.SetPriority(irqPriority)
	drv.adcIRQ = interrupt.New(rp.IRQ_ADC_IRQ_FIFO, adcISR)
	drv.adcIRQ.SetPriority(irqPriority)

	ctl.Start()
	ctl.Run()
}

func timerISR(interrupt.Interrupt) {
	ackOverflow()
	ctl.TimerTick()
}

func adcISR(interrupt.Interrupt) {
	ctl.SampleComplete()
}

// halt reports a fatal startup error and parks the core
func halt(msg string) {
	for {
		DebugPrintln("FATAL: " + msg)
		core.DumpEventRing()
		time.Sleep(2 * time.Second)
	}
}

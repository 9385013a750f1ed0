//go:build rp2040

package main

import (
	"device/rp"
	"ledbank/core"
)

// The RP2040 has a free-running 1 MHz timer and no 8-bit overflow timer.
// Alarm 1 stands in for the overflow: each reload re-arms it for
// TimerCounterSpan-reload counts past the previous deadline. Alarm 0 belongs
// to the TinyGo runtime.
const (
	overflowAlarm    = 1
	overflowAlarmBit = 1 << overflowAlarm
)

// timer state, touched from the timer ISR and from Start before interrupts
// are enabled
var (
	countMicros uint32 // microseconds per emulated count
	deadline    uint32 // last armed alarm time, low 32 bits of the us counter
)

// initOverflowTimer sets the emulated count period and enables the alarm interrupt
func initOverflowTimer(period core.TimerPeriod) {
	countMicros = uint32(period) / 1000
	if countMicros == 0 {
		countMicros = 1
	}
	deadline = rp.TIMER.TIMERAWL.Get()
	rp.TIMER.INTE.SetBits(overflowAlarmBit)
}

// armOverflow schedules the next overflow. Deadlines advance from the previous
// one so the period does not drift with handler latency; a deadline already
// in the past restarts from now.
func armOverflow(reload uint8) {
	span := (core.TimerCounterSpan - uint32(reload)) * countMicros
	deadline += span
	now := rp.TIMER.TIMERAWL.Get()
	if int32(deadline-now) <= 0 {
		deadline = now + span
	}
	rp.TIMER.ALARM1.Set(deadline)
}

// ackOverflow clears the alarm interrupt
func ackOverflow() {
	rp.TIMER.INTR.Set(overflowAlarmBit)
}

//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// irqMu stands in for the CPU interrupt mask on regular Go. Handlers entered
// through EnterISR and critical sections in task context exclude each other,
// which is what a single-priority MCU gives us.
var irqMu sync.Mutex

// disableInterrupts masks simulated interrupts. Not reentrant on regular Go.
func disableInterrupts() State {
	irqMu.Lock()
	return 0
}

// restoreInterrupts unmasks simulated interrupts
func restoreInterrupts(state State) {
	irqMu.Unlock()
}

// EnterISR runs handler as if it had been dispatched by the interrupt
// controller. Host drivers (simulator, Linux target) must deliver timer and
// ADC events through here.
func EnterISR(handler func()) {
	irqMu.Lock()
	defer irqMu.Unlock()
	handler()
}

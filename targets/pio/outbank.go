//go:build rp2040

package pio

// Parallel output bank using tinygo-org/pio.
// One OUT instruction latches a whole byte onto eight consecutive pins, so
// every bank write changes all lines on the same PIO clock edge.

import (
	"errors"
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

var ErrNoStateMachine = errors.New("no free PIO state machine")

// bankWidth is the number of output lines driven by the program
const bankWidth = 8

// buildBankProgram creates the output program using AssemblerV0
func buildBankProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Out(rp2pio.OutDestPins, bankWidth).Encode(), // 0: out pins, 8 (autopull)
		// .wrap
	}
}

// OutputBank drives eight consecutive GPIOs from a PIO state machine
type OutputBank struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	base   machine.Pin
	offset uint8
	slot   slot
	last   uint8
}

// NewOutputBank claims a free state machine for a bank starting at base.
func NewOutputBank(base machine.Pin) (*OutputBank, error) {
	s, ok := claimSlot()
	if !ok {
		return nil, ErrNoStateMachine
	}

	pioHW := rp2pio.PIO0
	if s.pio == 1 {
		pioHW = rp2pio.PIO1
	}

	return &OutputBank{
		pio:  pioHW,
		sm:   pioHW.StateMachine(s.sm),
		base: base,
		slot: s,
	}, nil
}

// Init loads the program and starts the state machine with all lines low.
func (b *OutputBank) Init() error {
	b.sm.TryClaim()

	program := buildBankProgram()
	offset, err := b.pio.AddProgram(program, -1)
	if err != nil {
		return err
	}
	b.offset = offset

	for i := machine.Pin(0); i < bankWidth; i++ {
		(b.base + i).Configure(machine.PinConfig{Mode: b.pio.PinMode()})
	}

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetOutPins(b.base, bankWidth)

	// Shift right, autopull every 8 bits: one TxPut is one bank write.
	cfg.SetOutShift(true, true, bankWidth)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	cfg.SetClkDivIntFrac(1, 0)

	b.sm.Init(offset, cfg)

	// Pin directions must be set after Init
	b.sm.SetPindirsConsecutive(b.base, bankWidth, true)
	b.sm.SetPinsConsecutive(b.base, bankWidth, false)

	b.sm.SetEnabled(true)
	return nil
}

// Write queues one bank value. The FIFO is drained within a few PIO cycles.
func (b *OutputBank) Write(bits uint8) {
	for b.sm.IsTxFIFOFull() {
	}
	b.sm.TxPut(uint32(bits))
	b.last = bits
}

// Read returns the value last queued. The pins lag it while the FIFO drains,
// so sampling GPIO_IN here could hand back an older pattern.
func (b *OutputBank) Read() uint8 {
	return b.last
}

// Stop halts the state machine and releases its slot.
func (b *OutputBank) Stop() {
	b.sm.SetEnabled(false)
	b.sm.ClearFIFOs()
	b.sm.Restart()
	b.slot.release()
}

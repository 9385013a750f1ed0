//go:build rp2040

package pio

// slot is one PIO state machine: two blocks of four on the RP2040
type slot struct {
	pio, sm uint8
}

var (
	claimed  [2][4]bool
	nextSlot uint8 // round-robin start, 0..7
)

// claimSlot returns the next free state machine, searching round-robin from
// the slot after the last claim.
func claimSlot() (slot, bool) {
	for i := uint8(0); i < 8; i++ {
		n := (nextSlot + i) % 8
		s := slot{pio: n / 4, sm: n % 4}
		if !claimed[s.pio][s.sm] {
			claimed[s.pio][s.sm] = true
			nextSlot = (n + 1) % 8
			return s, true
		}
	}
	return slot{}, false
}

func (s slot) release() {
	claimed[s.pio][s.sm] = false
}

//go:build rp2040

package pio

import (
	"machine"
	"testing"
)

// Runs on a board with tinygo test -target=pico.
func TestOutputBankReadReturnsLastWrite(t *testing.T) {
	b, err := NewOutputBank(machine.GPIO6)
	if err != nil {
		t.Fatalf("NewOutputBank failed: %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer b.Stop()

	for _, v := range []uint8{0x80, 0x40, 0x8f, 0x00} {
		b.Write(v)
		if got := b.Read(); got != v {
			t.Errorf("Read after Write(%08b) = %08b", v, got)
		}
	}
}

func TestClaimSlotRoundRobin(t *testing.T) {
	a, ok := claimSlot()
	if !ok {
		t.Fatal("no free slot")
	}
	b, ok := claimSlot()
	if !ok {
		t.Fatal("no second slot")
	}
	if a == b {
		t.Errorf("claimed %+v twice", a)
	}
	a.release()
	b.release()
}

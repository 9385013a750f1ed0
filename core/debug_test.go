package core

import (
	"strings"
	"testing"
)

func TestEventRingDrain(t *testing.T) {
	ClearEventRing()

	RecordEvent(EvtSweepStep, 6, 0x40)
	RecordEvent(EvtRateChange, 9, 39)

	var got []Event
	DrainEvents(func(e Event) { got = append(got, e) })
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Kind != EvtSweepStep || got[0].Seq != 1 || got[0].Value2 != 0x40 {
		t.Errorf("unexpected first event %+v", got[0])
	}

	// Nothing new since the last drain.
	n := 0
	DrainEvents(func(Event) { n++ })
	if n != 0 {
		t.Errorf("expected empty drain, got %d events", n)
	}
}

func TestEventRingOverflowKeepsNewest(t *testing.T) {
	ClearEventRing()

	total := EventRingSize + 10
	for i := 0; i < total; i++ {
		RecordEvent(EvtThermo, uint32(i), 0)
	}

	var got []Event
	DrainEvents(func(e Event) { got = append(got, e) })
	if len(got) != EventRingSize {
		t.Fatalf("expected %d events, got %d", EventRingSize, len(got))
	}
	if first := got[0].Value1; first != uint32(total-EventRingSize) {
		t.Errorf("expected oldest surviving value %d, got %d", total-EventRingSize, first)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Seq != got[i-1].Seq+1 {
			t.Fatalf("events out of order at %d: %d after %d", i, got[i].Seq, got[i-1].Seq)
		}
	}
}

func TestFormatEvent(t *testing.T) {
	line := FormatEvent(Event{Kind: EvtThermo, Seq: 12, Value1: 1023, Value2: 255})
	want := "[EVT] THERMO seq=12 v1=1023 v2=255"
	if line != want {
		t.Errorf("expected %q, got %q", want, line)
	}
}

func TestDumpEventRing(t *testing.T) {
	ClearEventRing()
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	RecordEvent(EvtStart, 40, 61)
	DumpEventRing()

	if len(lines) != 3 {
		t.Fatalf("expected header, one event and footer, got %q", lines)
	}
	if !strings.Contains(lines[1], "START") {
		t.Errorf("expected START event, got %q", lines[1])
	}
}

func TestUtoa(t *testing.T) {
	for _, tc := range []struct {
		in   uint32
		want string
	}{{0, "0"}, {7, "7"}, {1023, "1023"}, {4294967295, "4294967295"}} {
		if got := utoa(tc.in); got != tc.want {
			t.Errorf("utoa(%d): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestStartAppliesDebugFlag(t *testing.T) {
	defer SetDebugEnabled(false)

	cfg := DefaultConfig()
	cfg.Debug = true
	ctl, err := New(newMockDriver(), cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctl.Start()
	if !IsDebugEnabled() {
		t.Error("expected debug enabled after Start with Debug set")
	}

	ctl, err = New(newMockDriver(), DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctl.Start()
	if IsDebugEnabled() {
		t.Error("expected debug disabled after Start without Debug")
	}
}

package core

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// splitBankDriver updates the output bank line by line, like a driver that
// has no single-store port, and counts writes that start while another is
// still in progress.
type splitBankDriver struct {
	*mockDriver
	writing  atomic.Int32
	overlaps atomic.Int32
}

func (d *splitBankDriver) WriteOutputBank(bits uint8) {
	if d.writing.Add(1) > 1 {
		d.overlaps.Add(1)
	}
	for i := 0; i < 8; i++ {
		runtime.Gosched()
	}
	d.mockDriver.WriteOutputBank(bits)
	d.writing.Add(-1)
}

func TestThermometerWriteNeverInterleavesWithSweep(t *testing.T) {
	drv := &splitBankDriver{mockDriver: newMockDriver()}
	cfg := DefaultConfig()
	cfg.Calibration.Fast = Rate{Threshold: 1, Reload: 39}
	cfg.Calibration.Slow = Rate{Threshold: 1, Reload: 61}
	ctl, err := New(drv, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctl.Start()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 4000; i++ {
			EnterISR(ctl.TimerTick)
		}
	}()

	for i := 0; i < 1000; i++ {
		drv.press(cfg.ButtonA)
		ctl.Step()
		drv.release(cfg.ButtonA)
		drv.setSample(uint16(600 + i%400))
		EnterISR(ctl.SampleComplete)
		ctl.Step()
	}
	wg.Wait()

	if n := drv.overlaps.Load(); n != 0 {
		t.Errorf("%d output bank writes overlapped", n)
	}
}

func TestEventDrainWithConcurrentTicks(t *testing.T) {
	ClearEventRing()
	defer ClearEventRing()

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})
	defer SetDebugEnabled(false)

	drv := newMockDriver()
	cfg := DefaultConfig()
	cfg.Debug = true
	ctl, err := New(drv, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	drv.press(cfg.ButtonA)
	ctl.Start()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20000; i++ {
			EnterISR(ctl.TimerTick)
		}
	}()
	for i := 0; i < 20000; i++ {
		ctl.Step()
	}
	wg.Wait()
	ctl.Step()

	var last uint32
	drained := 0
	for _, l := range lines {
		if !strings.HasPrefix(l, "[EVT] ") {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) != 5 || !strings.HasPrefix(fields[2], "seq=") {
			t.Fatalf("malformed event line %q", l)
		}
		seq, err := strconv.ParseUint(strings.TrimPrefix(fields[2], "seq="), 10, 32)
		if err != nil {
			t.Fatalf("bad seq in %q: %v", l, err)
		}
		if uint32(seq) <= last {
			t.Fatalf("seq %d drained after %d", seq, last)
		}
		last = uint32(seq)
		drained++
	}
	if drained == 0 {
		t.Fatal("no events drained")
	}
	if want := eventSeq.Load(); last != want {
		t.Errorf("last drained seq %d, want %d", last, want)
	}
}

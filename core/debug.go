package core

import "sync/atomic"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event captures a controller event for post-mortem analysis
type Event struct {
	Kind   uint8  // Event kind code
	Seq    uint32 // Global sequence number, starting at 1
	Value1 uint32 // Kind-dependent value
	Value2 uint32 // Kind-dependent value
}

// Event kind codes
const (
	EvtSweepStep  = 1 // v1=position v2=pattern
	EvtRateChange = 2 // v1=threshold v2=reload
	EvtThermo     = 3 // v1=sample v2=pattern
	EvtModeChange = 4 // v1=buttons word v2=0
	EvtStart      = 5 // v1=threshold v2=reload
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool

	// Event ring. Writers run in a handler or with interrupts masked, and
	// readers copy slots out under the mask, so no slot is seen half written.
	eventRing [EventRingSize]Event
	eventSeq  atomic.Uint32
	eventRead uint32 // last Seq drained; foreground only
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Never call it from a handler; UART writes are far too slow for ISR context.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures an event in the ring buffer. Call it from a handler
// or with interrupts masked; the drain copies slots under the same mask.
func RecordEvent(kind uint8, value1, value2 uint32) {
	seq := eventSeq.Add(1)
	eventRing[(seq-1)%EventRingSize] = Event{
		Kind:   kind,
		Seq:    seq,
		Value1: value1,
		Value2: value2,
	}
}

// snapshotEvents copies the recorded events with Seq > after into buf, oldest
// first, and returns them with the newest Seq. Slots already reused by a
// newer event are skipped.
func snapshotEvents(after uint32, buf *[EventRingSize]Event) ([]Event, uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	last := eventSeq.Load()
	if last-after > EventRingSize {
		after = last - EventRingSize
	}
	out := buf[:0]
	for seq := after + 1; seq <= last; seq++ {
		evt := eventRing[(seq-1)%EventRingSize]
		if evt.Seq == seq {
			out = append(out, evt)
		}
	}
	return out, last
}

// DrainEvents hands every event recorded since the previous drain to fn, oldest
// first. Events overwritten before they were drained are skipped. Call from
// the foreground loop only.
func DrainEvents(fn func(Event)) {
	var buf [EventRingSize]Event
	events, last := snapshotEvents(eventRead, &buf)
	eventRead = last
	for _, evt := range events {
		fn(evt)
	}
}

// EventName returns the log tag for an event kind.
func EventName(kind uint8) string {
	switch kind {
	case EvtSweepStep:
		return "SWEEP"
	case EvtRateChange:
		return "RATE"
	case EvtThermo:
		return "THERMO"
	case EvtModeChange:
		return "MODE"
	case EvtStart:
		return "START"
	default:
		return "UNKNOWN"
	}
}

// FormatEvent renders an event as one debug log line.
func FormatEvent(evt Event) string {
	return "[EVT] " + EventName(evt.Kind) +
		" seq=" + utoa(evt.Seq) +
		" v1=" + utoa(evt.Value1) +
		" v2=" + utoa(evt.Value2)
}

// DumpEventRing outputs the whole event ring, oldest first
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	var buf [EventRingSize]Event
	events, _ := snapshotEvents(0, &buf)
	debugPrintln("[EVT] === Event Ring Dump ===")
	for _, evt := range events {
		debugPrintln(FormatEvent(evt))
	}
	debugPrintln("[EVT] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventSeq.Store(0)
	eventRead = 0
}

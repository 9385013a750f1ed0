package serial

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"ledbank/core"
)

var ErrNotEvent = errors.New("not an event line")

const eventPrefix = "[EVT] "

// ParseEvent decodes a line produced by core.FormatEvent.
func ParseEvent(line string) (core.Event, error) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, eventPrefix) {
		return core.Event{}, ErrNotEvent
	}
	fields := strings.Fields(strings.TrimPrefix(line, eventPrefix))
	if len(fields) != 4 {
		return core.Event{}, ErrNotEvent
	}

	var evt core.Event
	for kind := uint8(1); ; kind++ {
		name := core.EventName(kind)
		if name == "UNKNOWN" {
			return core.Event{}, ErrNotEvent
		}
		if name == fields[0] {
			evt.Kind = kind
			break
		}
	}

	for _, f := range fields[1:] {
		key, val, ok := strings.Cut(f, "=")
		if !ok {
			return core.Event{}, ErrNotEvent
		}
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return core.Event{}, err
		}
		switch key {
		case "seq":
			evt.Seq = uint32(n)
		case "v1":
			evt.Value1 = uint32(n)
		case "v2":
			evt.Value2 = uint32(n)
		default:
			return core.Event{}, ErrNotEvent
		}
	}
	return evt, nil
}

// Pattern returns the output bank value carried by an event, if any.
func Pattern(evt core.Event) (uint8, bool) {
	switch evt.Kind {
	case core.EvtSweepStep, core.EvtThermo:
		return uint8(evt.Value2), true
	}
	return 0, false
}

// Line is one line read from the debug UART, decoded when it is an event.
type Line struct {
	Text  string
	Event *core.Event
}

// ReadLines splits r into lines and sends them on out until r fails or
// returns EOF. The error is nil on EOF.
func ReadLines(r io.Reader, out chan<- Line) error {
	defer close(out)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := sc.Text()
		l := Line{Text: text}
		if evt, err := ParseEvent(text); err == nil {
			l.Event = &evt
		}
		out <- l
	}
	return sc.Err()
}

package core

// Debouncer is a sample-and-hold filter over an InputReader. A pin's reported
// level only changes after the raw level has read the same for Samples
// consecutive polls. Pins it was not built for pass through unfiltered.
//
// A Debouncer keeps per-pin state and must only be polled from one context.
type Debouncer struct {
	in      InputReader
	samples uint8
	pins    []debouncedPin
}

type debouncedPin struct {
	pin       InputPin
	stable    bool
	candidate bool
	count     uint8
}

// NewDebouncer wraps in for the given pins. Each pin starts out stable at its
// current raw level.
func NewDebouncer(in InputReader, samples uint8, pins ...InputPin) *Debouncer {
	d := &Debouncer{
		in:      in,
		samples: samples,
		pins:    make([]debouncedPin, len(pins)),
	}
	for i, p := range pins {
		level := in.ReadDigitalInput(p)
		d.pins[i] = debouncedPin{pin: p, stable: level, candidate: level}
	}
	return d
}

// ReadDigitalInput polls the underlying input and returns the filtered level.
func (d *Debouncer) ReadDigitalInput(pin InputPin) bool {
	raw := d.in.ReadDigitalInput(pin)
	for i := range d.pins {
		p := &d.pins[i]
		if p.pin != pin {
			continue
		}
		if raw == p.stable {
			p.candidate = raw
			p.count = 0
			return p.stable
		}
		if raw != p.candidate {
			p.candidate = raw
			p.count = 0
		}
		p.count++
		if p.count >= d.samples {
			p.stable = raw
			p.count = 0
		}
		return p.stable
	}
	return raw
}

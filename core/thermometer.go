package core

// Resolution of the bar-graph display.
type Resolution uint8

const (
	EightLevel Resolution = iota // whole bank, 8 bins
	FourLevel                    // low nibble only, 4 bins
)

func (r Resolution) String() string {
	if r == FourLevel {
		return "4-level"
	}
	return "8-level"
}

// Levels returns the number of bins.
func (r Resolution) Levels() int {
	if r == FourLevel {
		return 4
	}
	return 8
}

// Bin returns the index of the half-open bin [k*w, (k+1)*w) holding sample,
// with w = (ADCMax+1)/Levels. Samples beyond ADCMax fall in the top bin.
func (r Resolution) Bin(sample uint16) int {
	levels := r.Levels()
	width := (ADCMax + 1) / levels
	bin := int(sample) / width
	if bin >= levels {
		bin = levels - 1
	}
	return bin
}

// Thermometer renders sample as a bar of bin+1 low bits. A zero sample
// renders an empty bar. EightLevel replaces the whole bank; FourLevel keeps
// bits 4-7 of prior.
func Thermometer(sample uint16, res Resolution, prior uint8) uint8 {
	var bar uint8
	if sample != 0 {
		bar = uint8(uint16(1)<<(res.Bin(sample)+1) - 1)
	}
	if res == FourLevel {
		return prior&0xf0 | bar&0x0f
	}
	return bar
}

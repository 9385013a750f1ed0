package core

// Direction of sweep travel.
type Direction uint8

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// BoundSet selects the pair of reversal positions for the sweep.
type BoundSet uint8

const (
	FullRange BoundSet = iota // reverse at 0 and 7
	HalfRange                 // reverse at 4 and 7
)

// SweepTop is the upper reversal position for every bound set.
const SweepTop = 7

// Lower returns the lower reversal position.
func (b BoundSet) Lower() uint8 {
	if b == HalfRange {
		return 4
	}
	return 0
}

func (b BoundSet) String() string {
	if b == HalfRange {
		return "half"
	}
	return "full"
}

// Sweep is the one-LED-at-a-time animation state. It is owned by the timer
// handler and only ever changed through Advance.
type Sweep struct {
	Position  uint8
	Direction Direction
}

// NewSweep returns the start-up state: top position, heading down.
func NewSweep() Sweep {
	return Sweep{Position: SweepTop, Direction: Down}
}

// Advance moves one step within bounds and returns the one-hot pattern to
// display. Direction flips on reaching a reversal position, so a position
// left outside a newly selected bound set is walked back in by the next
// reversal rather than clamped.
func (s *Sweep) Advance(bounds BoundSet) uint8 {
	lower := bounds.Lower()
	switch s.Direction {
	case Down:
		if s.Position > 0 {
			s.Position--
		}
		if s.Position <= lower {
			s.Direction = Up
		}
	default:
		if s.Position < SweepTop {
			s.Position++
		}
		if s.Position >= SweepTop {
			s.Direction = Down
		}
	}
	return s.Pattern()
}

// Pattern returns the output bank value with only the current position lit.
func (s Sweep) Pattern() uint8 {
	return 1 << (s.Position & SweepTop)
}

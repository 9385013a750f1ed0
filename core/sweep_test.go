package core

import "testing"

func TestSweepFullRangeSequence(t *testing.T) {
	s := NewSweep()

	wantPos := []uint8{6, 5, 4, 3, 2, 1, 0, 1}
	wantOut := []uint8{
		0b01000000, 0b00100000, 0b00010000, 0b00001000,
		0b00000100, 0b00000010, 0b00000001, 0b00000010,
	}
	for i := range wantPos {
		out := s.Advance(FullRange)
		if s.Position != wantPos[i] {
			t.Errorf("step %d: expected position %d, got %d", i, wantPos[i], s.Position)
		}
		if out != wantOut[i] {
			t.Errorf("step %d: expected output %08b, got %08b", i, wantOut[i], out)
		}
	}
	if s.Direction != Up {
		t.Errorf("expected direction up after reversal, got %s", s.Direction)
	}
}

func TestSweepHalfRangeSequence(t *testing.T) {
	s := NewSweep()

	want := []uint8{6, 5, 4, 5, 6, 7, 6, 5, 4}
	for i, pos := range want {
		s.Advance(HalfRange)
		if s.Position != pos {
			t.Errorf("step %d: expected position %d, got %d", i, pos, s.Position)
		}
	}
}

func TestSweepStaysInBounds(t *testing.T) {
	for _, bounds := range []BoundSet{FullRange, HalfRange} {
		t.Run(bounds.String(), func(t *testing.T) {
			s := NewSweep()
			lower := bounds.Lower()
			for i := 0; i < 1000; i++ {
				prev := s
				out := s.Advance(bounds)

				if s.Position < lower || s.Position > SweepTop {
					t.Fatalf("step %d: position %d outside [%d,%d]", i, s.Position, lower, SweepTop)
				}
				if out != 1<<s.Position {
					t.Fatalf("step %d: output %08b is not one-hot at %d", i, out, s.Position)
				}

				// Moves exactly one position per step.
				diff := int(s.Position) - int(prev.Position)
				if diff != 1 && diff != -1 {
					t.Fatalf("step %d: moved from %d to %d", i, prev.Position, s.Position)
				}

				// Direction flips at a bound and nowhere else.
				atBound := s.Position == lower || s.Position == SweepTop
				if flipped := s.Direction != prev.Direction; flipped != atBound {
					t.Fatalf("step %d: position %d flipped=%v", i, s.Position, flipped)
				}
			}
		})
	}
}

func TestSweepBoundChangeSelfCorrects(t *testing.T) {
	s := NewSweep()
	for i := 0; i < 6; i++ {
		s.Advance(FullRange)
	}
	if s.Position != 1 || s.Direction != Down {
		t.Fatalf("setup: expected position 1 heading down, got %d %s", s.Position, s.Direction)
	}

	// Switching to half range below its lower bound is not clamped; the
	// sweep reverses and climbs back in.
	s.Advance(HalfRange)
	if s.Position != 0 || s.Direction != Up {
		t.Errorf("expected reversal at 0, got %d %s", s.Position, s.Direction)
	}

	steps := 0
	for s.Position < HalfRange.Lower() {
		s.Advance(HalfRange)
		steps++
		if steps > SweepTop {
			t.Fatalf("sweep did not return within one reversal cycle")
		}
	}
	for i := 0; i < 50; i++ {
		s.Advance(HalfRange)
		if s.Position < HalfRange.Lower() {
			t.Fatalf("position %d left half range after recovery", s.Position)
		}
	}
}

func TestSweepNoUnderflowAtZero(t *testing.T) {
	s := Sweep{Position: 0, Direction: Down}
	if out := s.Advance(FullRange); out != 0b00000001 {
		t.Errorf("expected bit 0, got %08b", out)
	}
	if s.Direction != Up {
		t.Errorf("expected direction up, got %s", s.Direction)
	}
}

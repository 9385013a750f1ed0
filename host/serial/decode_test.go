package serial

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledbank/core"
)

func TestParseEventRoundTrip(t *testing.T) {
	evt := core.Event{Kind: core.EvtSweepStep, Seq: 42, Value1: 3, Value2: 8}
	got, err := ParseEvent(core.FormatEvent(evt) + "\r\n")
	require.NoError(t, err)
	assert.Equal(t, evt, got)

	p, ok := Pattern(got)
	assert.True(t, ok)
	assert.Equal(t, uint8(8), p)
}

func TestParseEventRejects(t *testing.T) {
	for _, line := range []string{
		"ledbank: start, step every 499 ms",
		"[EVT] === Event Ring Dump ===",
		"[EVT] BOGUS seq=1 v1=0 v2=0",
		"[EVT] RATE seq=1 v1=9 x=39",
	} {
		_, err := ParseEvent(line)
		assert.ErrorIs(t, err, ErrNotEvent, line)
	}

	_, err := ParseEvent("[EVT] RATE seq=1 v1=9 v2=-1")
	assert.Error(t, err)
}

func TestPatternOnlyForOutputEvents(t *testing.T) {
	_, ok := Pattern(core.Event{Kind: core.EvtRateChange, Value2: 39})
	assert.False(t, ok)
}

func TestReadLines(t *testing.T) {
	input := "ledbank: mode sweep full\r\n[EVT] THERMO seq=7 v1=1023 v2=255\r\n"
	out := make(chan Line, 4)
	require.NoError(t, ReadLines(strings.NewReader(input), out))

	var lines []Line
	for l := range out {
		lines = append(lines, l)
	}
	require.Len(t, lines, 2)
	assert.Nil(t, lines[0].Event)
	require.NotNil(t, lines[1].Event)
	assert.Equal(t, uint32(1023), lines[1].Event.Value1)
}

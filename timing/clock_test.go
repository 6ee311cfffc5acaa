package timing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/velanor/signoff/timing"
)

// TestClock_DefaultWaveform verifies a new clock rises at zero and falls
// at half the period.
func TestClock_DefaultWaveform(t *testing.T) {
	clk := timing.NewClock("clk", 10)

	assert.Equal(t, 0.0, clk.EdgeTime(timing.Rise), "default rise at 0")
	assert.Equal(t, 5.0, clk.EdgeTime(timing.Fall), "default fall at period/2")
	assert.Equal(t, 10.0, clk.Period(), "period preserved")
}

// TestClock_Uncertainty verifies zero is a valid configured value,
// distinct from "not configured".
func TestClock_Uncertainty(t *testing.T) {
	clk := timing.NewClock("clk", 10)

	_, ok := clk.Uncertainty(timing.Late)
	assert.False(t, ok, "unset uncertainty reports not configured")

	clk.SetUncertainty(timing.Late, 0)
	u, ok := clk.Uncertainty(timing.Late)
	assert.True(t, ok, "explicit zero is configured")
	assert.Equal(t, 0.0, u, "explicit zero is returned")

	_, ok = clk.Uncertainty(timing.Early)
	assert.False(t, ok, "views are configured independently")
}

// TestClockEdge_PulseWidth verifies pulse widths wrap into the next
// cycle when the opposite edge does not follow within the same one.
func TestClockEdge_PulseWidth(t *testing.T) {
	clk := timing.NewClock("clk", 10)
	clk.SetWaveform(0, 6)

	assert.Equal(t, 6.0, clk.Edge(timing.Rise).PulseWidth(), "high pulse rise to fall")
	assert.Equal(t, 4.0, clk.Edge(timing.Fall).PulseWidth(), "low pulse wraps to next rise")
}

// TestClockEdge_Same verifies structural edge identity: same clock name
// and transition, regardless of which Clock pointer produced the edge.
func TestClockEdge_Same(t *testing.T) {
	a := timing.NewClock("clk", 10)
	b := timing.NewClock("clk", 10)
	other := timing.NewClock("vclk", 8)

	assert.True(t, a.Edge(timing.Rise).Same(b.Edge(timing.Rise)), "same name and transition")
	assert.False(t, a.Edge(timing.Rise).Same(a.Edge(timing.Fall)), "transitions differ")
	assert.False(t, a.Edge(timing.Rise).Same(other.Edge(timing.Rise)), "clock names differ")
	assert.True(t, a.Edge(timing.Rise).SameClock(b.Edge(timing.Fall)), "same clock across transitions")
}

// TestPath_CloneIndependence verifies a clone shares nothing mutable
// with its source: arrival and trace mutations never leak across.
func TestPath_CloneIndependence(t *testing.T) {
	clk := timing.NewClock("clk", 10)
	p := timing.NewPath("reg/D", timing.Rise, timing.Late, 4, clk.Edge(timing.Rise))
	p.SetClkDelays(0.5, 1.5)
	p.SetClkTrace([]timing.ClkTreeNode{{Pin: "buf1", EarlyDelay: 1, LateDelay: 2}})

	cp := p.Clone()
	cp.SetArrival(9)
	cp.ClkTrace()[0].LateDelay = 99

	assert.Equal(t, 4.0, p.Arrival(), "source arrival untouched by clone mutation")
	assert.Equal(t, 2.0, p.ClkTrace()[0].LateDelay, "source trace untouched by clone mutation")
	assert.Equal(t, 0.5, cp.ClkInsertion(), "clone carries the delay decomposition")
	assert.Equal(t, 1.5, cp.ClkLatency(), "clone carries the delay decomposition")
}

// TestPath_CloneNil verifies cloning a nil path is a nil no-op.
func TestPath_CloneNil(t *testing.T) {
	var p *timing.Path
	assert.Nil(t, p.Clone(), "nil clones to nil")
}

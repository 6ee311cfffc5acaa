package pathend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velanor/signoff/pathend"
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// newCrprCheck builds a setup check whose launch and capture clock
// traces share a two-buffer prefix with a 1.0 early/late spread at the
// divergence pin.
func newCrprCheck(t *testing.T) *pathend.Check {
	t.Helper()

	clk := timing.NewClock("clk", 10)
	data := timing.NewPath("reg/D", timing.Rise, timing.Late, 4, clk.Edge(timing.Rise))
	data.SetClkTrace([]timing.ClkTreeNode{
		{Pin: "root", EarlyDelay: 0.2, LateDelay: 0.4},
		{Pin: "buf1", EarlyDelay: 1.0, LateDelay: 2.0},
		{Pin: "bufA", EarlyDelay: 1.5, LateDelay: 3.0},
	})
	capture := timing.NewPath("reg/CK", timing.Rise, timing.Early, 0, clk.Edge(timing.Rise))
	capture.SetClkTrace([]timing.ClkTreeNode{
		{Pin: "root", EarlyDelay: 0.2, LateDelay: 0.4},
		{Pin: "buf1", EarlyDelay: 1.0, LateDelay: 2.0},
		{Pin: "bufB", EarlyDelay: 1.8, LateDelay: 3.5},
	})
	arc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleSetup)
	arc.SetMargin(timing.Late, timing.Rise, 1)

	end, err := pathend.NewCheck(data, arc, nil, capture, nil)
	require.NoError(t, err)

	return end
}

// TestCrpr_SharedPrefix verifies the pessimism removed is the early/late
// spread at the deepest shared tree pin, relaxing the setup requirement.
func TestCrpr_SharedPrefix(t *testing.T) {
	end := newCrprCheck(t)
	ctx := pathend.NewContext(sdc.New())

	assert.InDelta(t, 1.0, end.Crpr(ctx), 1e-12, "spread at buf1: min(2,2) - max(1,1)")
	assert.InDelta(t, 11.0, end.RequiredTime(ctx), 1e-12, "correction relaxes the requirement")
	assert.InDelta(t, 6.0, end.Slack(ctx), 1e-12, "slack gains the correction")
	assert.InDelta(t, 5.0, end.SlackNoCrpr(ctx), 1e-12, "correction-free slack unchanged")
}

// TestCrpr_Disabled verifies no correction applies when pessimism
// removal is off.
func TestCrpr_Disabled(t *testing.T) {
	end := newCrprCheck(t)
	s := sdc.New()
	s.SetCrprEnabled(false)
	ctx := pathend.NewContext(s)

	assert.Equal(t, 0.0, end.Crpr(ctx), "disabled removal corrects nothing")
	assert.Equal(t, 5.0, end.Slack(ctx), "slack equals the correction-free value")
}

// TestCrpr_HoldSign verifies the correction tightens hold requirements:
// it carries the opposite sign of the setup correction.
func TestCrpr_HoldSign(t *testing.T) {
	clk := timing.NewClock("clk", 10)
	trace := []timing.ClkTreeNode{{Pin: "buf1", EarlyDelay: 1.0, LateDelay: 2.0}}
	data := timing.NewPath("reg/D", timing.Rise, timing.Early, 1.5, clk.Edge(timing.Rise))
	data.SetClkTrace(trace)
	capture := timing.NewPath("reg/CK", timing.Rise, timing.Late, 0, clk.Edge(timing.Rise))
	capture.SetClkTrace(trace)
	arc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleHold)
	arc.SetMargin(timing.Early, timing.Rise, 0.3)

	end, err := pathend.NewCheck(data, arc, nil, capture, nil)
	require.NoError(t, err)
	ctx := pathend.NewContext(sdc.New())

	assert.InDelta(t, -1.0, end.Crpr(ctx), 1e-12, "hold correction is negative")
	assert.InDelta(t, -1.0, end.RequiredTime(ctx), 1e-12, "requirement moves earlier")
	assert.InDelta(t, 2.2, end.Slack(ctx), 1e-12, "hold slack gains the correction magnitude")
}

// TestCrpr_SameTransitionMode verifies the default mode removes nothing
// between opposite-sense clock transitions, and the any-transition mode
// does.
func TestCrpr_SameTransitionMode(t *testing.T) {
	clk := timing.NewClock("clk", 10)
	trace := []timing.ClkTreeNode{{Pin: "buf1", EarlyDelay: 1.0, LateDelay: 2.0}}
	data := timing.NewPath("reg/D", timing.Rise, timing.Late, 4, clk.Edge(timing.Rise))
	data.SetClkTrace(trace)
	capture := timing.NewPath("reg/CK", timing.Fall, timing.Early, 0, clk.Edge(timing.Fall))
	capture.SetClkTrace(trace)
	arc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleSetup)

	same, err := pathend.NewCheck(data, arc, nil, capture, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, same.CheckCrpr(pathend.NewContext(sdc.New())),
		"same-transition mode skips opposite-sense pairs")

	s := sdc.New()
	s.SetCrprMode(sdc.CrprAnyTransition)
	any, err := pathend.NewCheck(data.Clone(), arc, nil, capture.Clone(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, any.CheckCrpr(pathend.NewContext(s)), 1e-12,
		"any-transition mode removes the shared spread")
}

// TestCrpr_MemoStable verifies the correction is forced at most once:
// later context changes never move an already-forced value.
func TestCrpr_MemoStable(t *testing.T) {
	end := newCrprCheck(t)
	s := sdc.New()
	ctx := pathend.NewContext(s)

	first := end.Crpr(ctx)
	s.SetCrprEnabled(false)

	assert.Equal(t, first, end.Crpr(ctx), "forced value is stable for the instance lifetime")
	assert.Equal(t, 0.0, end.CheckCrpr(ctx), "the unforced computation does see the change")
}

// TestCrpr_CopyCarriesMemo verifies a copy of an end with a forced
// correction reuses the forced value instead of rewalking.
func TestCrpr_CopyCarriesMemo(t *testing.T) {
	end := newCrprCheck(t)
	s := sdc.New()
	ctx := pathend.NewContext(s)

	forced := end.Crpr(ctx)
	s.SetCrprEnabled(false)
	cp := end.Copy()

	assert.Equal(t, forced, cp.Crpr(ctx), "copy carries the forced correction")

	s.SetCrprEnabled(true)
	assert.Equal(t, forced, cp.Slack(ctx)-cp.SlackNoCrpr(ctx), "carried value flows into the slack split")
}

// TestCrpr_WithCrprOption verifies a caller-supplied correction bypasses
// the walk entirely.
func TestCrpr_WithCrprOption(t *testing.T) {
	clk := timing.NewClock("clk", 10)
	data := timing.NewPath("reg/D", timing.Rise, timing.Late, 4, clk.Edge(timing.Rise))
	capture := timing.NewPath("reg/CK", timing.Rise, timing.Early, 0, clk.Edge(timing.Rise))
	arc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleSetup)

	end, err := pathend.NewCheck(data, arc, nil, capture, nil, pathend.WithCrpr(0.75))
	require.NoError(t, err)
	ctx := pathend.NewContext(sdc.New())

	assert.Equal(t, 0.75, end.Crpr(ctx), "supplied correction is used as-is")
	assert.InDelta(t, 10.75, end.RequiredTime(ctx), 1e-12, "requirement includes the supplied correction")
}

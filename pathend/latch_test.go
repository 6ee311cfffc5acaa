package pathend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velanor/signoff/pathend"
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// newLatchCheck builds a transparent-latch scenario: a 10-unit clock
// with a 0-to-5 high phase, the enable opening at the rise and closing
// at the fall, and a data path arriving at the given time.
func newLatchCheck(t *testing.T, arrival float64) *pathend.LatchCheck {
	t.Helper()

	clk := timing.NewClock("clk", 10)
	data := timing.NewPath("lat/D", timing.Rise, timing.Late, arrival, clk.Edge(timing.Rise))
	enable := timing.NewPath("lat/EN", timing.Rise, timing.Early, 0, clk.Edge(timing.Rise))
	disable := timing.NewPath("lat/EN", timing.Fall, timing.Late, 5, clk.Edge(timing.Fall))
	arc := timing.NewTimingArc("LATCH", "EN", "D", timing.RoleLatchSetup)

	end, err := pathend.NewLatchCheck(data, arc, nil, enable, disable, nil, nil)
	require.NoError(t, err, "valid latch check must construct")

	return end
}

// TestLatchCheck_NoBorrow verifies a path arriving before the open edge
// requirement borrows nothing and behaves like a plain setup check.
func TestLatchCheck_NoBorrow(t *testing.T) {
	end := newLatchCheck(t, 8)
	ctx := pathend.NewContext(sdc.New())

	required, borrow, adjusted, given := end.LatchRequired(ctx)
	assert.Equal(t, 10.0, required, "requirement is the open edge")
	assert.Equal(t, 0.0, borrow, "nothing borrowed")
	assert.Equal(t, 8.0, adjusted, "arrival unadjusted")
	assert.Equal(t, 0.0, given, "nothing handed downstream")
	assert.Equal(t, 2.0, end.Slack(ctx), "ordinary positive slack")
	assert.True(t, end.IsLatchCheck(), "variant predicate")
	assert.False(t, end.IsCheck(), "latch checks are their own kind")
}

// TestLatchCheck_BorrowWithinLimit verifies borrowing absorbs a late
// arrival: the requirement stretches to the arrival and slack is zero
// while the borrow stays within the enable pulse.
func TestLatchCheck_BorrowWithinLimit(t *testing.T) {
	end := newLatchCheck(t, 12)
	ctx := pathend.NewContext(sdc.New())

	required, borrow, adjusted, given := end.LatchRequired(ctx)
	assert.Equal(t, 2.0, borrow, "borrow covers the overshoot")
	assert.Equal(t, 12.0, required, "requirement stretches by the borrow")
	assert.Equal(t, 10.0, adjusted, "adjusted arrival returns to the open edge")
	assert.Equal(t, 2.0, given, "downstream sees the borrow")
	assert.Equal(t, 0.0, end.Slack(ctx), "borrowing zeroes the slack")
	assert.Equal(t, 2.0, end.Borrow(ctx), "Borrow matches the joint computation")
}

// TestLatchCheck_BorrowCapped verifies the borrow saturates at the
// enable pulse width and the residual overshoot becomes negative slack.
func TestLatchCheck_BorrowCapped(t *testing.T) {
	end := newLatchCheck(t, 16)
	ctx := pathend.NewContext(sdc.New())

	info := end.LatchBorrowInfo(ctx)
	assert.Equal(t, 5.0, info.NomPulseWidth, "nominal enable pulse")
	assert.Equal(t, 5.0, info.MaxBorrow, "cap derives from the pulse width")
	assert.False(t, info.BorrowLimitExists, "no explicit limit configured")

	assert.Equal(t, 5.0, end.Borrow(ctx), "borrow saturates at the cap")
	assert.Equal(t, 15.0, end.RequiredTime(ctx), "requirement stretches to the cap only")
	assert.Equal(t, -1.0, end.Slack(ctx), "residual overshoot violates")
}

// TestLatchCheck_ExplicitBorrowLimit verifies a configured max-borrow
// limit on the latch pin overrides the pulse-width derivation.
func TestLatchCheck_ExplicitBorrowLimit(t *testing.T) {
	end := newLatchCheck(t, 12)
	s := sdc.New()
	s.SetBorrowLimit("lat/D", 1)
	ctx := pathend.NewContext(s)

	info := end.LatchBorrowInfo(ctx)
	assert.Equal(t, 1.0, info.MaxBorrow, "explicit limit wins")
	assert.True(t, info.BorrowLimitExists, "limit origin is reported")

	assert.Equal(t, 1.0, end.Borrow(ctx), "borrow clamps at the explicit limit")
	assert.Equal(t, -1.0, end.Slack(ctx), "uncovered overshoot violates")
}

// TestLatchCheck_TargetClkWidth verifies the realized enable pulse is
// the close arrival minus the open arrival, wrapping when negative.
func TestLatchCheck_TargetClkWidth(t *testing.T) {
	end := newLatchCheck(t, 8)
	ctx := pathend.NewContext(sdc.New())

	assert.Equal(t, 5.0, end.TargetClkWidth(ctx), "close at 5 minus open at 0")
	assert.Equal(t, 5.0, end.LatchDisable().Arrival(), "owned disable path preserved")
}

// TestLatchCheck_CopyIndependence verifies the clone owns all three
// paths.
func TestLatchCheck_CopyIndependence(t *testing.T) {
	end := newLatchCheck(t, 12)
	ctx := pathend.NewContext(sdc.New())

	cp := end.Copy().(*pathend.LatchCheck)
	end.Path().SetArrival(8)
	end.LatchDisable().SetArrival(3)

	assert.Equal(t, 0.0, cp.Slack(ctx), "copy keeps the borrowed scenario")
	assert.Equal(t, 5.0, cp.LatchDisable().Arrival(), "copy owns its disable path")
}

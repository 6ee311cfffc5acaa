package pathend_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velanor/signoff/pathend"
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// TestUnconstrained_Sentinels verifies the unconstrained variant's
// never-violated sentinels under both views.
func TestUnconstrained_Sentinels(t *testing.T) {
	ctx := pathend.NewContext(sdc.New())

	late, err := pathend.NewUnconstrained(timing.NewPath("out", timing.Rise, timing.Late, 4, nil))
	require.NoError(t, err)
	assert.Equal(t, timing.Infinity, late.RequiredTime(ctx), "late requirement is +inf")
	assert.Equal(t, timing.Infinity, late.Slack(ctx), "slack is infinite")
	assert.True(t, late.IsUnconstrained(), "variant predicate")

	early, err := pathend.NewUnconstrained(timing.NewPath("out", timing.Rise, timing.Early, 4, nil))
	require.NoError(t, err)
	assert.Equal(t, -timing.Infinity, early.RequiredTime(ctx), "early requirement is -inf")
	assert.Equal(t, timing.Infinity, early.Slack(ctx), "slack is infinite under either view")
}

// newSlackEnd builds a setup check with the given endpoint pin whose
// slack comes out to exactly the requested value (period 10, margin 0).
func newSlackEnd(t *testing.T, pin string, slack float64) pathend.PathEnd {
	t.Helper()

	clk := timing.NewClock("clk", 10)
	data := timing.NewPath(pin, timing.Rise, timing.Late, 10-slack, clk.Edge(timing.Rise))
	capture := timing.NewPath("reg/CK", timing.Rise, timing.Early, 0, clk.Edge(timing.Rise))
	arc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleSetup)

	end, err := pathend.NewCheck(data, arc, nil, capture, nil)
	require.NoError(t, err)

	return end
}

// TestCmpSlack_Order verifies worst-first ordering and that
// unconstrained ends sort after every constrained end.
func TestCmpSlack_Order(t *testing.T) {
	ctx := pathend.NewContext(sdc.New())
	violating := newSlackEnd(t, "a/D", -1)
	passing := newSlackEnd(t, "b/D", 3)
	unconstrained, err := pathend.NewUnconstrained(timing.NewPath("c", timing.Rise, timing.Late, 0, nil))
	require.NoError(t, err)

	assert.Negative(t, pathend.CmpSlack(violating, passing, ctx), "worse slack sorts first")
	assert.Positive(t, pathend.CmpSlack(passing, violating, ctx), "order is antisymmetric")
	assert.Negative(t, pathend.CmpSlack(passing, unconstrained, ctx), "constrained before unconstrained")
	assert.Positive(t, pathend.CmpSlack(unconstrained, passing, ctx), "unconstrained sorts last")
}

// TestCmpSlack_UnconstrainedPair verifies two unconstrained ends fall
// back to the arrival order, worst first.
func TestCmpSlack_UnconstrainedPair(t *testing.T) {
	ctx := pathend.NewContext(sdc.New())
	slow, err := pathend.NewUnconstrained(timing.NewPath("a", timing.Rise, timing.Late, 9, nil))
	require.NoError(t, err)
	fast, err := pathend.NewUnconstrained(timing.NewPath("b", timing.Rise, timing.Late, 2, nil))
	require.NoError(t, err)

	assert.Negative(t, pathend.CmpSlack(slow, fast, ctx), "larger late arrival sorts first")
	assert.Negative(t, pathend.CmpArrival(slow, fast, ctx), "arrival order agrees")
}

// TestCmp_StructuralTiebreak verifies ends with identical slack order
// deterministically by endpoint identity, never by pointer.
func TestCmp_StructuralTiebreak(t *testing.T) {
	ctx := pathend.NewContext(sdc.New())
	a := newSlackEnd(t, "a/D", 2)
	b := newSlackEnd(t, "b/D", 2)

	assert.Negative(t, pathend.Cmp(a, b, ctx), "equal slack breaks ties on pin name")
	assert.Positive(t, pathend.Cmp(b, a, ctx), "tiebreak is antisymmetric")
	assert.Zero(t, pathend.Cmp(a, a, ctx), "an end ties with itself")
	assert.Zero(t, pathend.Cmp(a, a.Copy(), ctx), "a copy ties with its source")
}

// TestCmp_ExceptionTiebreak verifies a multi-cycle binding orders ahead
// of an unbound end when both slack and arrival tie.
func TestCmp_ExceptionTiebreak(t *testing.T) {
	ctx := pathend.NewContext(sdc.New())
	clk := timing.NewClock("clk", 10)

	// Multiplier 2 shifts the requirement a period; a period of extra
	// margin restores the same slack at the same arrival.
	boundArc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleSetup)
	boundArc.SetMargin(timing.Late, timing.Rise, 10)
	boundData := timing.NewPath("reg/D", timing.Rise, timing.Late, 4, clk.Edge(timing.Rise))
	boundCapture := timing.NewPath("reg/CK", timing.Rise, timing.Early, 0, clk.Edge(timing.Rise))
	bound, err := pathend.NewCheck(boundData, boundArc, nil, boundCapture, sdc.NewMultiCyclePathMinMax(2, timing.Late))
	require.NoError(t, err)

	plain := newSlackEnd(t, "reg/D", 6)

	require.Equal(t, plain.Slack(ctx), bound.Slack(ctx), "scenario ties on slack")
	require.Equal(t, plain.DataArrivalTime(ctx), bound.DataArrivalTime(ctx), "scenario ties on arrival")
	assert.Negative(t, pathend.Cmp(bound, plain, ctx), "exception-governed end sorts first")
}

// TestSlackLess_Sort verifies sorting a mixed set with the severity
// comparator yields worst-first order with unconstrained ends last.
func TestSlackLess_Sort(t *testing.T) {
	ctx := pathend.NewContext(sdc.New())
	unconstrained, err := pathend.NewUnconstrained(timing.NewPath("u", timing.Rise, timing.Late, 0, nil))
	require.NoError(t, err)

	ends := []pathend.PathEnd{
		newSlackEnd(t, "c/D", 5),
		unconstrained,
		newSlackEnd(t, "a/D", -2),
		newSlackEnd(t, "b/D", 1),
	}
	less := pathend.NewSlackLess(ctx)
	sort.Slice(ends, func(i, j int) bool { return less.Less(ends[i], ends[j]) })

	assert.Equal(t, "a/D", ends[0].Vertex(), "worst slack first")
	assert.Equal(t, "b/D", ends[1].Vertex(), "ascending slack")
	assert.Equal(t, "c/D", ends[2].Vertex(), "ascending slack")
	assert.True(t, ends[3].IsUnconstrained(), "unconstrained last")
}

// TestNoCrprLess_IgnoresCorrection verifies the correction-free
// comparator ranks by SlackNoCrpr: a correction that flips the Slack
// order does not flip this one.
func TestNoCrprLess_IgnoresCorrection(t *testing.T) {
	ctx := pathend.NewContext(sdc.New())

	clk := timing.NewClock("clk", 10)
	arc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleSetup)
	data := timing.NewPath("a/D", timing.Rise, timing.Late, 6, clk.Edge(timing.Rise))
	capture := timing.NewPath("a/CK", timing.Rise, timing.Early, 0, clk.Edge(timing.Rise))
	corrected, err := pathend.NewCheck(data, arc, nil, capture, nil, pathend.WithCrpr(2))
	require.NoError(t, err)

	plain := newSlackEnd(t, "b/D", 5)

	require.Greater(t, corrected.Slack(ctx), plain.Slack(ctx), "correction lifts the corrected slack above")
	assert.Negative(t, pathend.CmpNoCrpr(corrected, plain, ctx), "correction-free order keeps it below")

	less := pathend.NewNoCrprLess(ctx)
	assert.True(t, less.Less(corrected, plain), "comparator agrees with CmpNoCrpr")
}

package pathend

import (
	"math"

	"github.com/velanor/signoff/timing"
)

// clkConstrained extends the base with a capturing clock path (owned,
// like the constrained path), the lazily-memoized pessimism correction,
// and the capture clock arithmetic shared by every constrained variant.
type clkConstrained struct {
	pathEnd
	clkPath *timing.Path
	crpr    crprMemo
}

// initClk binds the owned paths, the concrete variant, and any
// precomputed pessimism correction supplied via options.
func (pe *clkConstrained) initClk(path, clkPath *timing.Path, end pathEndInternal, o *options) {
	pe.initBase(path, end)
	pe.clkPath = clkPath
	if o != nil && o.crprValid {
		pe.crpr.set(o.crpr)
	}
}

// crprOptions snapshots the memo into constructor options so Copy
// carries an already-forced correction to the clone.
func (pe *clkConstrained) crprOptions() []Option {
	if v, ok := pe.crpr.snapshot(); ok {
		return []Option{WithCrpr(v)}
	}

	return nil
}

// TargetClkPath returns the owned capturing clock path.
func (pe *clkConstrained) TargetClkPath() *timing.Path { return pe.clkPath }

// TargetClkEdge returns the capture clock edge, nil for an unclocked
// variant form.
func (pe *clkConstrained) TargetClkEdge(_ *Context) *timing.ClockEdge {
	if pe.clkPath == nil {
		return nil
	}

	return pe.clkPath.ClkEdge()
}

// SourceClkOffset is the launch-clock period shift that places the
// launch edge in the cycle the capture edge expects. It is zero for
// same-clock and unclocked paths; between differing clocks the launch
// is normalized to one source cycle before the last launch edge at or
// before the nominal capture edge.
func (pe *clkConstrained) SourceClkOffset(ctx *Context) float64 {
	role, _ := pe.end.CheckRole(ctx)

	return sourceClkOffset(pe.path.ClkEdge(), pe.end.TargetClkEdge(ctx), role)
}

// sourceClkOffset implements the cycle normalization shared by the
// clock-constrained variants.
func sourceClkOffset(srcEdge, tgtEdge *timing.ClockEdge, role timing.TimingRole) float64 {
	if srcEdge == nil || tgtEdge == nil || srcEdge.SameClock(tgtEdge) {
		return 0
	}
	srcPeriod := srcEdge.Clock().Period()
	if srcPeriod <= 0 {
		return 0
	}
	capture := tgtEdge.Time()
	if role.GenericRole() == timing.RoleSetup {
		capture += tgtEdge.Clock().Period()
	}
	cycles := math.Floor((capture-srcEdge.Time())/srcPeriod) - 1
	if cycles < 0 {
		cycles = 0
	}

	return cycles * srcPeriod
}

// TargetClkOffset accounts for the cycles the capture edge is shifted:
// the default setup cycle count in capture periods, plus any governing
// multi-cycle adjustment. Hold-generic checks keep the same-cycle edge.
func (pe *clkConstrained) TargetClkOffset(ctx *Context) float64 {
	tgtEdge := pe.end.TargetClkEdge(ctx)
	if tgtEdge == nil {
		return 0
	}
	offset := pe.end.TargetClkMcpAdjustment(ctx)
	role, ok := pe.end.CheckRole(ctx)
	if ok && role.GenericRole() == timing.RoleSetup {
		offset += float64(pe.end.SetupDefaultCycles()) * tgtEdge.Clock().Period()
	}

	return offset
}

// TargetClkTime is the capture edge time with cycle accounting applied.
func (pe *clkConstrained) TargetClkTime(ctx *Context) timing.Time {
	tgtEdge := pe.end.TargetClkEdge(ctx)
	if tgtEdge == nil {
		return 0
	}

	return tgtEdge.Time() + pe.end.TargetClkOffset(ctx)
}

// TargetClkDelay is the capture clock path's total tree delay.
func (pe *clkConstrained) TargetClkDelay(ctx *Context) timing.Delay {
	role, _ := pe.end.CheckRole(ctx)

	return CheckTgtClkDelay(pe.clkPath, pe.end.TargetClkEdge(ctx), role)
}

// TargetClkInsertionDelay is the defined insertion component alone.
func (pe *clkConstrained) TargetClkInsertionDelay(ctx *Context) timing.Delay {
	role, _ := pe.end.CheckRole(ctx)
	insertion, _ := CheckTgtClkDelaySplit(pe.clkPath, pe.end.TargetClkEdge(ctx), role)

	return insertion
}

// TargetNonInterClkUncertainty is the capture clock's own uncertainty.
func (pe *clkConstrained) TargetNonInterClkUncertainty(ctx *Context) float64 {
	role, _ := pe.end.CheckRole(ctx)

	return CheckTgtClkUncertainty(pe.end.TargetClkEdge(ctx), role)
}

// InterClkUncertainty is the user inter-clock uncertainty, zero when
// launch and capture clocks are the same or none is configured.
func (pe *clkConstrained) InterClkUncertainty(ctx *Context) float64 {
	role, _ := pe.end.CheckRole(ctx)
	u, _ := checkInterClkUncertainty(ctx, pe.path.ClkEdge(), pe.end.TargetClkEdge(ctx), role)

	return u
}

// TargetClkUncertainty folds per-clock and inter-clock uncertainty
// together exactly once.
func (pe *clkConstrained) TargetClkUncertainty(ctx *Context) float64 {
	return pe.TargetNonInterClkUncertainty(ctx) + pe.InterClkUncertainty(ctx)
}

// targetClkArrivalNoCrpr is the capture edge arrival before pessimism
// correction: edge time with cycle accounting, plus tree delay, plus the
// signed uncertainty.
func (pe *clkConstrained) targetClkArrivalNoCrpr(ctx *Context) timing.Time {
	role, _ := pe.end.CheckRole(ctx)

	return pe.end.TargetClkTime(ctx) +
		pe.end.TargetClkDelay(ctx) +
		CheckClkUncertainty(ctx, pe.path.ClkEdge(), pe.end.TargetClkEdge(ctx), role)
}

// TargetClkArrival is the pessimism-corrected capture edge arrival.
func (pe *clkConstrained) TargetClkArrival(ctx *Context) timing.Time {
	return pe.end.targetClkArrivalNoCrpr(ctx) + pe.end.Crpr(ctx)
}

// CheckCrpr computes the signed pessimism correction for this end.
func (pe *clkConstrained) CheckCrpr(ctx *Context) timing.Crpr {
	role, _ := pe.end.CheckRole(ctx)

	return checkCrpr(ctx, pe.path, pe.clkPath, role)
}

// Crpr returns the memoized pessimism correction, forcing the memo on
// first access. Derived quantities read the memo, never recompute.
func (pe *clkConstrained) Crpr(ctx *Context) timing.Crpr {
	return pe.crpr.force(func() timing.Crpr { return pe.end.CheckCrpr(ctx) })
}

// requiredTimeNoCrpr is the capture-derived requirement before the
// pessimism correction; the check margin is applied in Slack.
func (pe *clkConstrained) requiredTimeNoCrpr(ctx *Context) timing.Time {
	return pe.end.targetClkArrivalNoCrpr(ctx)
}

// RequiredTime is the pessimism-corrected requirement.
func (pe *clkConstrained) RequiredTime(ctx *Context) timing.Time {
	return pe.end.requiredTimeNoCrpr(ctx) + pe.end.Crpr(ctx)
}

// Slack is positive when the constraint is met.
func (pe *clkConstrained) Slack(ctx *Context) timing.Slack {
	return slackFrom(pe.end, ctx, pe.end.RequiredTime(ctx))
}

// SlackNoCrpr recomputes slack as if the pessimism correction were zero.
func (pe *clkConstrained) SlackNoCrpr(ctx *Context) timing.Slack {
	return slackFrom(pe.end, ctx, pe.end.requiredTimeNoCrpr(ctx))
}

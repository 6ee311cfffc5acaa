package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// pathEnd is the shared base of every variant: the exclusively owned
// constrained path plus the self-reference the bases dispatch through so
// variant overrides are honored inside shared formulas.
//
// The methods here are the default "not applicable" fallbacks of the
// capability-polymorphism contract; variants override the ones they
// give meaning to.
type pathEnd struct {
	path *timing.Path
	end  pathEndInternal
}

// initBase binds the owned path and the concrete variant.
func (pe *pathEnd) initBase(path *timing.Path, end pathEndInternal) {
	pe.path = path
	pe.end = end
}

// Path returns the owned constrained path.
func (pe *pathEnd) Path() *timing.Path { return pe.path }

// SetPath rebinds the owned constrained path.
func (pe *pathEnd) SetPath(p *timing.Path) { pe.path = p }

// Vertex returns the endpoint pin name.
func (pe *pathEnd) Vertex() string { return pe.path.Pin() }

// MinMax returns the analysis view of the constrained path.
func (pe *pathEnd) MinMax() timing.MinMax { return pe.path.MinMax() }

// Transition returns the endpoint transition sense.
func (pe *pathEnd) Transition() timing.RiseFall { return pe.path.Transition() }

// ClkEarlyLate returns the capture clock analysis view: the role's
// pairing when a check applies, the opposite of the path view otherwise.
func (pe *pathEnd) ClkEarlyLate(ctx *Context) timing.MinMax {
	if role, ok := pe.end.CheckRole(ctx); ok {
		return role.TgtClkEarlyLate()
	}

	return pe.path.MinMax().Opposite()
}

// Default predicates; variants override their own.
func (pe *pathEnd) IsUnconstrained() bool { return false }

func (pe *pathEnd) IsCheck() bool { return false }

func (pe *pathEnd) IsDataCheck() bool { return false }

func (pe *pathEnd) IsLatchCheck() bool { return false }

func (pe *pathEnd) IsOutputDelay() bool { return false }

func (pe *pathEnd) IsGatedClock() bool { return false }

func (pe *pathEnd) IsPathDelay() bool { return false }

// ExceptPathCmp default: no governing exception, always tied.
func (pe *pathEnd) ExceptPathCmp(_ PathEnd, _ *Context) int { return 0 }

// DataArrivalTime is the search-computed arrival at the endpoint.
func (pe *pathEnd) DataArrivalTime(_ *Context) timing.Time { return pe.path.Arrival() }

// DataArrivalTimeOffset normalizes the arrival by the source clock
// offset so paths launched in different absolute cycles compare.
func (pe *pathEnd) DataArrivalTimeOffset(ctx *Context) timing.Time {
	return pe.path.Arrival() + pe.end.SourceClkOffset(ctx)
}

// RequiredTimeOffset normalizes the requirement into the same frame as
// DataArrivalTimeOffset; slack is invariant between the two frames.
func (pe *pathEnd) RequiredTimeOffset(ctx *Context) timing.Time {
	return pe.end.RequiredTime(ctx) + pe.end.SourceClkOffset(ctx)
}

// MacroClkTreeDelay default: flat endpoint, no macro-internal tree.
func (pe *pathEnd) MacroClkTreeDelay(_ *Context) timing.Delay { return 0 }

// Borrow default: nothing borrowed.
func (pe *pathEnd) Borrow(_ *Context) timing.Delay { return 0 }

// SourceClkEdge returns the launch clock edge, nil for unclocked paths.
func (pe *pathEnd) SourceClkEdge(_ *Context) *timing.ClockEdge { return pe.path.ClkEdge() }

// SourceClkLatency returns the propagated launch clock tree latency,
// zeroed when a governing exception ignores launch latency.
func (pe *pathEnd) SourceClkLatency(ctx *Context) timing.Delay {
	if pe.end.IgnoreClkLatency(ctx) {
		return 0
	}

	return pe.path.ClkLatency()
}

// SourceClkInsertionDelay returns the defined launch insertion delay,
// zeroed when a governing exception ignores launch latency.
func (pe *pathEnd) SourceClkInsertionDelay(ctx *Context) timing.Delay {
	if pe.end.IgnoreClkLatency(ctx) {
		return 0
	}

	return pe.path.ClkInsertion()
}

// Capture clock defaults: no capture clock relationship.
func (pe *pathEnd) TargetClkPath() *timing.Path { return nil }

func (pe *pathEnd) TargetClk(ctx *Context) *timing.Clock {
	if edge := pe.end.TargetClkEdge(ctx); edge != nil {
		return edge.Clock()
	}

	return nil
}

func (pe *pathEnd) TargetClkEdge(_ *Context) *timing.ClockEdge { return nil }

// TargetClkEndTrans returns the capture edge transition sense; the
// endpoint's own sense when no capture edge exists.
func (pe *pathEnd) TargetClkEndTrans(ctx *Context) timing.RiseFall {
	if edge := pe.end.TargetClkEdge(ctx); edge != nil {
		return edge.Transition()
	}

	return pe.path.Transition()
}

func (pe *pathEnd) TargetClkTime(_ *Context) timing.Time { return 0 }

func (pe *pathEnd) TargetClkOffset(_ *Context) float64 { return 0 }

func (pe *pathEnd) TargetClkArrival(_ *Context) timing.Time { return 0 }

func (pe *pathEnd) TargetClkDelay(_ *Context) timing.Delay { return 0 }

func (pe *pathEnd) TargetClkInsertionDelay(_ *Context) timing.Delay { return 0 }

func (pe *pathEnd) TargetNonInterClkUncertainty(_ *Context) float64 { return 0 }

func (pe *pathEnd) InterClkUncertainty(_ *Context) float64 { return 0 }

func (pe *pathEnd) TargetClkUncertainty(_ *Context) float64 { return 0 }

func (pe *pathEnd) TargetClkMcpAdjustment(_ *Context) float64 { return 0 }

// CheckRole default: no check applies.
func (pe *pathEnd) CheckRole(_ *Context) (timing.TimingRole, bool) {
	return timing.RoleSetup, false
}

// CheckGenericRole collapses the variant's role onto setup or hold.
func (pe *pathEnd) CheckGenericRole(ctx *Context) (timing.TimingRole, bool) {
	role, ok := pe.end.CheckRole(ctx)
	if !ok {
		return timing.RoleSetup, false
	}

	return role.GenericRole(), true
}

func (pe *pathEnd) PathDelayMarginIsExternal() bool { return false }

func (pe *pathEnd) PathDelay() *sdc.PathDelay { return nil }

func (pe *pathEnd) CheckCrpr(_ *Context) timing.Crpr { return 0 }

func (pe *pathEnd) Crpr(_ *Context) timing.Crpr { return 0 }

func (pe *pathEnd) MultiCyclePath() *sdc.MultiCyclePath { return nil }

func (pe *pathEnd) CheckArc() *timing.TimingArc { return nil }

func (pe *pathEnd) DataClkPath() *timing.Path { return nil }

func (pe *pathEnd) SetupDefaultCycles() int { return 1 }

func (pe *pathEnd) ClkSkew(_ *Context) timing.Delay { return 0 }

func (pe *pathEnd) IgnoreClkLatency(_ *Context) bool { return false }

// targetClkArrivalNoCrpr default: no capture arrival.
func (pe *pathEnd) targetClkArrivalNoCrpr(_ *Context) timing.Time { return 0 }

// requiredTimeNoCrpr default: delegate to the full requirement (no
// pessimism correction exists at this level).
func (pe *pathEnd) requiredTimeNoCrpr(ctx *Context) timing.Time {
	return pe.end.RequiredTime(ctx)
}

// ReportShort hands the reporter the summary field bundle.
func (pe *pathEnd) ReportShort(ctx *Context, r Reporter) {
	r.ReportShort(collectFields(pe.end, ctx, false))
}

// ReportFull hands the reporter the complete field bundle.
func (pe *pathEnd) ReportFull(ctx *Context, r Reporter) {
	r.ReportFull(collectFields(pe.end, ctx, true))
}

// slackFrom applies the sign convention: positive slack means the
// constraint is met under either analysis view. The margin is applied
// here, against the offset-free arrival, because RequiredTime excludes
// it by contract.
func slackFrom(end PathEnd, ctx *Context, required timing.Time) timing.Slack {
	if end.MinMax() == timing.Late {
		return required - end.Margin(ctx) - end.DataArrivalTime(ctx)
	}

	return end.DataArrivalTime(ctx) - required - end.Margin(ctx)
}

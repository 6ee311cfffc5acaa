package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// clkConstrainedMcp extends the clock-constrained base with a non-owning
// multi-cycle exception binding and the setup/hold cycle resolution
// shared by the check, latch, output-delay and gated-clock variants.
type clkConstrainedMcp struct {
	clkConstrained
	mcp *sdc.MultiCyclePath
}

// initMcp binds the paths, the exception and the concrete variant.
func (pe *clkConstrainedMcp) initMcp(path, clkPath *timing.Path, mcp *sdc.MultiCyclePath, end pathEndInternal, o *options) {
	pe.initClk(path, clkPath, end, o)
	pe.mcp = mcp
}

// MultiCyclePath returns the bound exception, nil for default cycles.
func (pe *clkConstrainedMcp) MultiCyclePath() *sdc.MultiCyclePath { return pe.mcp }

// TargetClkMcpAdjustment is the whole-period shift the governing
// multi-cycle exception contributes for this end's check kind.
func (pe *clkConstrainedMcp) TargetClkMcpAdjustment(ctx *Context) float64 {
	return pe.checkMcpAdjustment(ctx, pe.end.TargetClkEdge(ctx))
}

// checkMcpAdjustment resolves the governing exception for the end's
// generic role and converts its multiplier into clock periods.
//
// Setup uses the bound exception directly. Hold resolution is
// deliberately asymmetric: an explicit hold exception shifts the hold
// edge by its full multiplier, but when only a setup exception exists
// the hold requirement follows it with one cycle removed. Changing this
// default silently changes timing results; it mirrors the constraint
// semantics the tables were written against.
func (pe *clkConstrainedMcp) checkMcpAdjustment(ctx *Context, tgtClkEdge *timing.ClockEdge) float64 {
	role, ok := pe.end.CheckRole(ctx)
	if !ok || tgtClkEdge == nil {
		return 0
	}
	srcClkEdge := pe.path.ClkEdge()
	if role.GenericRole() == timing.RoleSetup {
		return CheckSetupMcpAdjustment(srcClkEdge, tgtClkEdge, pe.mcp, pe.end.SetupDefaultCycles())
	}

	setupMcp, holdMcp := pe.findHoldMcps(tgtClkEdge, ctx)
	switch {
	case holdMcp != nil:
		return float64(holdMcp.PathMultiplier()) * mcpPeriod(holdMcp, srcClkEdge, tgtClkEdge)
	case setupMcp != nil:
		return float64(setupMcp.PathMultiplier()-1) * mcpPeriod(setupMcp, srcClkEdge, tgtClkEdge)
	default:
		return 0
	}
}

// findHoldMcps resolves the governing multi-cycle exceptions separately
// for setup and for hold at the given capture edge. The bound exception
// serves as the setup exception whenever it applies to the late view;
// it serves as the hold exception only when it applies exclusively to
// the early view. An explicit hold exception registered against the
// capture edge takes its place when the binding carries none.
func (pe *clkConstrainedMcp) findHoldMcps(tgtClkEdge *timing.ClockEdge, ctx *Context) (setupMcp, holdMcp *sdc.MultiCyclePath) {
	if pe.mcp != nil {
		if pe.mcp.MatchesMinMax(timing.Late) {
			setupMcp = pe.mcp
		} else if pe.mcp.MatchesMinMax(timing.Early) {
			holdMcp = pe.mcp
		}
	}
	if holdMcp == nil {
		holdMcp = ctx.Sdc().HoldMcp(tgtClkEdge)
	}

	return setupMcp, holdMcp
}

// mcpPeriod picks the clock period the exception counts cycles in.
func mcpPeriod(mcp *sdc.MultiCyclePath, srcClkEdge, tgtClkEdge *timing.ClockEdge) float64 {
	if !mcp.UseEndClk() && srcClkEdge != nil {
		return srcClkEdge.Clock().Period()
	}

	return tgtClkEdge.Clock().Period()
}

// ExceptPathCmp orders by the bound multi-cycle exceptions: an end
// governed by an exception sorts before an unbound one, and bound ends
// order by multiplier. Structural endpoint tie-breaking happens in Cmp.
func (pe *clkConstrainedMcp) ExceptPathCmp(other PathEnd, _ *Context) int {
	return cmpMcp(pe.mcp, other.MultiCyclePath())
}

// cmpMcp is the three-way exception order used by ExceptPathCmp.
func cmpMcp(a, b *sdc.MultiCyclePath) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.PathMultiplier() < b.PathMultiplier():
		return -1
	case a.PathMultiplier() > b.PathMultiplier():
		return 1
	default:
		return 0
	}
}

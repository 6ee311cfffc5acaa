package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// Check is a path end constrained by a register setup or hold check:
// the constrained path ends at the data pin of a timing check arc whose
// reference pin is fed by the capturing clock path.
type Check struct {
	clkConstrainedMcp
	arc       *timing.TimingArc
	checkEdge *timing.CheckEdge
}

// NewCheck builds a check-constrained path end. The check arc and the
// capture clock path are mandatory; mcp may be nil for default cycle
// accounting. Supply WithCrpr to skip the lazy pessimism walk.
func NewCheck(path *timing.Path, arc *timing.TimingArc, checkEdge *timing.CheckEdge, clkPath *timing.Path, mcp *sdc.MultiCyclePath, opts ...Option) (*Check, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if arc == nil {
		return nil, ErrNilArc
	}
	if clkPath == nil {
		return nil, ErrNilClkPath
	}
	pe := &Check{arc: arc, checkEdge: checkEdge}
	pe.initMcp(path, clkPath, mcp, pe, buildOptions(opts))

	return pe, nil
}

// Type returns TypeCheck.
func (pe *Check) Type() Type { return TypeCheck }

// TypeName returns the display name of the variant.
func (pe *Check) TypeName() string { return TypeCheck.String() }

// IsCheck reports true.
func (pe *Check) IsCheck() bool { return true }

// Copy returns an independent clone with its own owned paths; a forced
// pessimism memo is carried to the clone.
func (pe *Check) Copy() PathEnd {
	cp, _ := NewCheck(pe.path.Clone(), pe.arc, pe.checkEdge, pe.clkPath.Clone(), pe.mcp, pe.crprOptions()...)

	return cp
}

// CheckArc returns the bound check arc.
func (pe *Check) CheckArc() *timing.TimingArc { return pe.arc }

// CheckEdge returns the graph edge the check crosses.
func (pe *Check) CheckEdge() *timing.CheckEdge { return pe.checkEdge }

// CheckRole is the arc's check kind.
func (pe *Check) CheckRole(_ *Context) (timing.TimingRole, bool) {
	return pe.arc.Role(), true
}

// Margin is the arc's check limit for this path's view and transition,
// plus any macro-internal clock tree delay at the endpoint.
func (pe *Check) Margin(ctx *Context) timing.Delay {
	return pe.arc.Margin(pe.path.MinMax(), pe.path.Transition()) + pe.MacroClkTreeDelay(ctx)
}

// MacroClkTreeDelay is the extra capture tree delay hidden inside a
// timing macro abstraction containing the endpoint.
func (pe *Check) MacroClkTreeDelay(_ *Context) timing.Delay {
	return pe.arc.MacroClkTreeDelay()
}

// ClkSkew is the launch tree delay minus the capture tree delay, with
// the shared-prefix pessimism added back.
func (pe *Check) ClkSkew(ctx *Context) timing.Delay {
	srcDelay := pe.end.SourceClkInsertionDelay(ctx) + pe.end.SourceClkLatency(ctx)

	return srcDelay - pe.end.TargetClkDelay(ctx) + pe.end.Crpr(ctx)
}

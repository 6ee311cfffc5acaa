package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// PathDelay is a path end governed by an explicit min/max delay budget
// that replaces the clock-derived requirement. The budget may terminate
// at a plain pin, at a timing check (bind the capture side with
// WithTargetClk) or at a constrained output port (WithOutputDelay).
type PathDelay struct {
	clkConstrained
	pathDelay   *sdc.PathDelay
	arc         *timing.TimingArc
	checkEdge   *timing.CheckEdge
	outputDelay *sdc.OutputDelay

	// srcClkArrival caches the launch clock arrival so the offset under
	// ignore-launch-latency semantics survives path rebinding.
	srcClkArrival timing.Time
}

// NewPathDelay builds a path end governed by an explicit delay budget.
func NewPathDelay(path *timing.Path, pd *sdc.PathDelay, opts ...Option) (*PathDelay, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if pd == nil {
		return nil, ErrNilException
	}
	o := buildOptions(opts)
	pe := &PathDelay{
		pathDelay:   pd,
		arc:         o.arc,
		checkEdge:   o.checkEdge,
		outputDelay: o.outputDelay,
	}
	pe.srcClkArrival = findSrcClkArrival(path)
	pe.initClk(path, o.clkPath, pe, o)

	return pe, nil
}

// Type returns TypePathDelay.
func (pe *PathDelay) Type() Type { return TypePathDelay }

// TypeName returns the display name of the variant.
func (pe *PathDelay) TypeName() string { return TypePathDelay.String() }

// IsPathDelay reports true.
func (pe *PathDelay) IsPathDelay() bool { return true }

// Copy returns an independent clone with its own owned paths.
func (pe *PathDelay) Copy() PathEnd {
	opts := pe.crprOptions()
	if pe.clkPath != nil || pe.arc != nil || pe.checkEdge != nil {
		var clkPath *timing.Path
		if pe.clkPath != nil {
			clkPath = pe.clkPath.Clone()
		}
		opts = append(opts, WithTargetClk(clkPath, pe.arc, pe.checkEdge))
	}
	if pe.outputDelay != nil {
		opts = append(opts, WithOutputDelay(pe.outputDelay))
	}
	cp, _ := NewPathDelay(pe.path.Clone(), pe.pathDelay, opts...)

	return cp
}

// PathDelay returns the governing delay budget.
func (pe *PathDelay) PathDelay() *sdc.PathDelay { return pe.pathDelay }

// CheckArc returns the check arc the budget terminates at, if any.
func (pe *PathDelay) CheckArc() *timing.TimingArc { return pe.arc }

// CheckEdge returns the graph edge of the terminating check, if any.
func (pe *PathDelay) CheckEdge() *timing.CheckEdge { return pe.checkEdge }

// OutputDelay returns the output-delay constraint the budget terminates
// at, if any.
func (pe *PathDelay) OutputDelay() *sdc.OutputDelay { return pe.outputDelay }

// CheckRole is the terminating check's role when one binds, and the
// budget's own min/max-delay role otherwise.
func (pe *PathDelay) CheckRole(_ *Context) (timing.TimingRole, bool) {
	if pe.arc != nil {
		return pe.arc.Role(), true
	}
	if pe.path.MinMax() == timing.Late {
		return timing.RoleMaxDelay, true
	}

	return timing.RoleMinDelay, true
}

// PathDelayMarginIsExternal reports whether the margin comes from a
// user output-delay declaration rather than an intrinsic check arc.
func (pe *PathDelay) PathDelayMarginIsExternal() bool { return pe.arc == nil }

// Margin is the terminating check's margin when one binds, the declared
// output delay when the budget ends at a constrained port, and zero at
// a plain pin.
func (pe *PathDelay) Margin(ctx *Context) timing.Delay {
	switch {
	case pe.arc != nil:
		return pe.arc.Margin(pe.path.MinMax(), pe.path.Transition()) + pe.MacroClkTreeDelay(ctx)
	case pe.outputDelay != nil:
		return outputDelayMargin(pe.outputDelay, pe.path)
	default:
		return 0
	}
}

// MacroClkTreeDelay is the terminating check arc's macro-internal tree
// delay, zero without an arc.
func (pe *PathDelay) MacroClkTreeDelay(_ *Context) timing.Delay {
	if pe.arc == nil {
		return 0
	}

	return pe.arc.MacroClkTreeDelay()
}

// IgnoreClkLatency reports whether the budget zeroes launch clock
// latency terms.
func (pe *PathDelay) IgnoreClkLatency(_ *Context) bool {
	return pdIgnoreClkLatency(pe.path, pe.pathDelay)
}

// SourceClkOffset places the budget on the same time axis as the
// recorded arrival.
func (pe *PathDelay) SourceClkOffset(_ *Context) float64 {
	return pathDelaySrcClkOffset(pe.path, pe.pathDelay, pe.srcClkArrival)
}

// TargetClkOffset is zero: a budget carries no cycle accounting.
func (pe *PathDelay) TargetClkOffset(_ *Context) float64 { return 0 }

// targetClkArrivalNoCrpr is the capture edge arrival when a check binds
// the budget; uncertainty does not apply to an explicit budget.
func (pe *PathDelay) targetClkArrivalNoCrpr(ctx *Context) timing.Time {
	return pe.end.TargetClkTime(ctx) + pe.end.TargetClkDelay(ctx)
}

// RequiredTime is the budget itself, shifted by the launch offset.
func (pe *PathDelay) RequiredTime(ctx *Context) timing.Time {
	return pe.pathDelay.Delay() + pe.end.SourceClkOffset(ctx)
}

// requiredTimeNoCrpr equals RequiredTime: no pessimism correction
// applies to an explicit budget.
func (pe *PathDelay) requiredTimeNoCrpr(ctx *Context) timing.Time {
	return pe.RequiredTime(ctx)
}

// CheckCrpr is zero: the budget requirement is not derived from a
// capture clock walk.
func (pe *PathDelay) CheckCrpr(_ *Context) timing.Crpr { return 0 }

// ExceptPathCmp orders by the governing budgets.
func (pe *PathDelay) ExceptPathCmp(other PathEnd, _ *Context) int {
	return cmpPathDelay(pe.pathDelay, other.PathDelay())
}

// cmpPathDelay is the three-way budget order: a governed end sorts
// before an ungoverned one, and governed ends order by budget.
func cmpPathDelay(a, b *sdc.PathDelay) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Delay() < b.Delay():
		return -1
	case a.Delay() > b.Delay():
		return 1
	default:
		return 0
	}
}

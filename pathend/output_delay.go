package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// OutputDelay is a path end constrained by an output-delay declaration
// on a top-level port. The capture clock path is optional: when the
// reference clock is not propagated to the port, the reference edge
// alone supplies the capture relationship and the insertion delay falls
// back to the clock definition.
type OutputDelay struct {
	clkConstrainedMcp
	outputDelay *sdc.OutputDelay
}

// NewOutputDelay builds an output-delay-constrained path end. clkPath
// may be nil; mcp may be nil for default cycle accounting.
func NewOutputDelay(path *timing.Path, od *sdc.OutputDelay, clkPath *timing.Path, mcp *sdc.MultiCyclePath, opts ...Option) (*OutputDelay, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if od == nil {
		return nil, ErrNilException
	}
	pe := &OutputDelay{outputDelay: od}
	pe.initMcp(path, clkPath, mcp, pe, buildOptions(opts))

	return pe, nil
}

// Type returns TypeOutputDelay.
func (pe *OutputDelay) Type() Type { return TypeOutputDelay }

// TypeName returns the display name of the variant.
func (pe *OutputDelay) TypeName() string { return TypeOutputDelay.String() }

// IsOutputDelay reports true.
func (pe *OutputDelay) IsOutputDelay() bool { return true }

// Copy returns an independent clone with its own owned paths.
func (pe *OutputDelay) Copy() PathEnd {
	var clkPath *timing.Path
	if pe.clkPath != nil {
		clkPath = pe.clkPath.Clone()
	}
	cp, _ := NewOutputDelay(pe.path.Clone(), pe.outputDelay, clkPath, pe.mcp, pe.crprOptions()...)

	return cp
}

// TargetClkEdge is the realized capture edge when the reference clock is
// propagated to the port, and the declared reference edge otherwise.
func (pe *OutputDelay) TargetClkEdge(ctx *Context) *timing.ClockEdge {
	if edge := pe.clkConstrained.TargetClkEdge(ctx); edge != nil {
		return edge
	}

	return pe.outputDelay.RefEdge()
}

// CheckRole is setup under the late view, hold under the early view.
func (pe *OutputDelay) CheckRole(_ *Context) (timing.TimingRole, bool) {
	if pe.path.MinMax() == timing.Late {
		return timing.RoleSetup, true
	}

	return timing.RoleHold, true
}

// Margin is the declared output delay for this path's view and
// transition.
func (pe *OutputDelay) Margin(_ *Context) timing.Delay {
	return outputDelayMargin(pe.outputDelay, pe.path)
}

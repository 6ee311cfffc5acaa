package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// GatedClock is a clock-gate enable check: the enable signal is timed
// against the gated clock so the gate opens and closes without clipping
// pulses. The check role and margin are resolved by the search when the
// gate is discovered and fixed at construction.
type GatedClock struct {
	clkConstrainedMcp
	role   timing.TimingRole
	margin timing.Delay
}

// NewGatedClock builds a gated-clock path end. role must be one of the
// clock-gating roles; margin is the resolved enable setup or hold
// requirement against the gated clock edge.
func NewGatedClock(path *timing.Path, clkPath *timing.Path, role timing.TimingRole, margin timing.Delay, mcp *sdc.MultiCyclePath, opts ...Option) (*GatedClock, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if clkPath == nil {
		return nil, ErrNilClkPath
	}
	pe := &GatedClock{role: role, margin: margin}
	pe.initMcp(path, clkPath, mcp, pe, buildOptions(opts))

	return pe, nil
}

// Type returns TypeGatedClock.
func (pe *GatedClock) Type() Type { return TypeGatedClock }

// TypeName returns the display name of the variant.
func (pe *GatedClock) TypeName() string { return TypeGatedClock.String() }

// IsGatedClock reports true.
func (pe *GatedClock) IsGatedClock() bool { return true }

// Copy returns an independent clone with its own owned paths.
func (pe *GatedClock) Copy() PathEnd {
	cp, _ := NewGatedClock(pe.path.Clone(), pe.clkPath.Clone(), pe.role, pe.margin, pe.mcp, pe.crprOptions()...)

	return cp
}

// CheckRole is the clock-gating role fixed at construction.
func (pe *GatedClock) CheckRole(_ *Context) (timing.TimingRole, bool) {
	return pe.role, true
}

// Margin is the enable requirement fixed at construction.
func (pe *GatedClock) Margin(_ *Context) timing.Delay { return pe.margin }

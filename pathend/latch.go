package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// LatchCheck is a level-sensitive latch borrow check. The capture
// "clock path" is the latch enable's opening edge; the owned disable
// path is the closing edge that bounds how much time the latch can
// borrow from the following phase.
type LatchCheck struct {
	Check
	disablePath *timing.Path
	pathDelay   *sdc.PathDelay

	// srcClkArrival caches the launch clock arrival for governing
	// path-delay exceptions that ignore launch latency.
	srcClkArrival timing.Time
}

// BorrowInfo is the joint result of one borrow computation. Its fields
// are mutually derived; computing them independently risks inconsistent
// borrow versus required-time pairs.
type BorrowInfo struct {
	// NomPulseWidth is the nominal enable pulse width from the clock
	// waveform.
	NomPulseWidth float64

	// OpenLatency is the enable (open edge) clock tree delay.
	OpenLatency timing.Delay

	// LatencyDiff is the open latency minus the close latency.
	LatencyDiff timing.Delay

	// OpenUncertainty is the open edge clock uncertainty.
	OpenUncertainty float64

	// OpenCrpr is the pessimism correction at the open edge; CrprDiff
	// subtracts the close edge correction from it.
	OpenCrpr timing.Crpr
	CrprDiff timing.Crpr

	// MaxBorrow bounds the borrow: the explicit max-borrow setting when
	// one exists, otherwise derived from the pulse width.
	MaxBorrow timing.Delay

	// BorrowLimitExists reports whether MaxBorrow came from an explicit
	// setting rather than the pulse-width derivation.
	BorrowLimitExists bool
}

// NewLatchCheck builds a latch borrow check. enablePath is the latch
// enable's opening edge (the capturing clock path); disablePath is the
// owned closing edge path. pathDelay, when non-nil, is a governing
// min/max-delay exception whose ignore-launch-latency semantics apply
// here exactly as for path-delay ends.
func NewLatchCheck(path *timing.Path, arc *timing.TimingArc, checkEdge *timing.CheckEdge, enablePath, disablePath *timing.Path, mcp *sdc.MultiCyclePath, pathDelay *sdc.PathDelay, opts ...Option) (*LatchCheck, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if arc == nil {
		return nil, ErrNilArc
	}
	if enablePath == nil || disablePath == nil {
		return nil, ErrNilClkPath
	}
	pe := &LatchCheck{
		Check:       Check{arc: arc, checkEdge: checkEdge},
		disablePath: disablePath,
		pathDelay:   pathDelay,
	}
	pe.srcClkArrival = findSrcClkArrival(path)
	pe.initMcp(path, enablePath, mcp, pe, buildOptions(opts))

	return pe, nil
}

// Type returns TypeLatchCheck.
func (pe *LatchCheck) Type() Type { return TypeLatchCheck }

// TypeName returns the display name of the variant.
func (pe *LatchCheck) TypeName() string { return TypeLatchCheck.String() }

// IsCheck reports false: latch checks are reported as their own kind.
func (pe *LatchCheck) IsCheck() bool { return false }

// IsLatchCheck reports true.
func (pe *LatchCheck) IsLatchCheck() bool { return true }

// PathDelay returns the governing min/max-delay exception, if any.
func (pe *LatchCheck) PathDelay() *sdc.PathDelay { return pe.pathDelay }

// LatchDisable returns the owned closing-edge path.
func (pe *LatchCheck) LatchDisable() *timing.Path { return pe.disablePath }

// Copy returns an independent clone with its own owned paths.
func (pe *LatchCheck) Copy() PathEnd {
	cp, _ := NewLatchCheck(pe.path.Clone(), pe.arc, pe.checkEdge,
		pe.clkPath.Clone(), pe.disablePath.Clone(), pe.mcp, pe.pathDelay,
		pe.crprOptions()...)

	return cp
}

// IgnoreClkLatency reports whether the governing path-delay exception
// zeroes launch clock latency terms.
func (pe *LatchCheck) IgnoreClkLatency(_ *Context) bool {
	return pdIgnoreClkLatency(pe.path, pe.pathDelay)
}

// SourceClkOffset follows path-delay offset semantics when a path-delay
// exception governs this latch, and the normal cycle normalization
// otherwise.
func (pe *LatchCheck) SourceClkOffset(ctx *Context) float64 {
	if pe.pathDelay != nil {
		return pathDelaySrcClkOffset(pe.path, pe.pathDelay, pe.srcClkArrival)
	}

	return pe.clkConstrained.SourceClkOffset(ctx)
}

// TargetClkWidth is the realized enable pulse width: close arrival
// minus open arrival, wrapped into the next cycle when the closing edge
// precedes the opening one.
func (pe *LatchCheck) TargetClkWidth(ctx *Context) timing.Delay {
	width := pe.disablePath.Arrival() - pe.clkPath.Arrival()
	if width < 0 {
		if edge := pe.end.TargetClkEdge(ctx); edge != nil {
			width += edge.Clock().Period()
		}
	}

	return width
}

// LatchBorrowInfo performs the single borrow computation every latch
// quantity derives from.
func (pe *LatchCheck) LatchBorrowInfo(ctx *Context) BorrowInfo {
	var info BorrowInfo
	role, _ := pe.end.CheckRole(ctx)
	tgtEdge := pe.end.TargetClkEdge(ctx)
	if tgtEdge != nil {
		info.NomPulseWidth = tgtEdge.PulseWidth()
	}
	if !pe.IgnoreClkLatency(ctx) {
		info.OpenLatency = CheckTgtClkDelay(pe.clkPath, tgtEdge, role)
		closeLatency := pe.disablePath.ClkInsertion() + pe.disablePath.ClkLatency()
		info.LatencyDiff = info.OpenLatency - closeLatency
	}
	info.OpenUncertainty = pe.end.TargetNonInterClkUncertainty(ctx)
	info.OpenCrpr = pe.end.Crpr(ctx)
	closeCrpr := checkCrpr(ctx, pe.path, pe.disablePath, role)
	info.CrprDiff = info.OpenCrpr - closeCrpr

	if limit, ok := ctx.Sdc().BorrowLimit(pe.path.Pin()); ok {
		info.MaxBorrow = limit
		info.BorrowLimitExists = true
	} else {
		borrow := info.NomPulseWidth + info.LatencyDiff + info.CrprDiff - info.OpenUncertainty
		if borrow < 0 {
			borrow = 0
		}
		info.MaxBorrow = borrow
	}

	return info
}

// LatchRequired combines the borrow computation into the four mutually
// derived results: the effective required time, the borrow taken from
// the next phase, the data arrival adjusted for that borrow, and the
// residual time handed back to the launching logic.
func (pe *LatchCheck) LatchRequired(ctx *Context) (required timing.Time, borrow timing.Delay, adjustedArrival timing.Time, timeGiven timing.Delay) {
	return pe.latchRequired(ctx, true)
}

// latchRequired implements LatchRequired; withCrpr selects whether the
// pessimism correction participates, for the SlackNoCrpr view.
func (pe *LatchCheck) latchRequired(ctx *Context, withCrpr bool) (required timing.Time, borrow timing.Delay, adjustedArrival timing.Time, timeGiven timing.Delay) {
	nominal := pe.targetClkArrivalNoCrpr(ctx)
	info := pe.LatchBorrowInfo(ctx)
	openCrpr := info.OpenCrpr
	if !withCrpr {
		openCrpr = 0
	}
	nominal += openCrpr

	arrival := pe.end.DataArrivalTime(ctx)
	margin := pe.end.Margin(ctx)
	needed := arrival - (nominal - margin)
	if needed > 0 {
		borrow = needed
		if borrow > info.MaxBorrow {
			borrow = info.MaxBorrow
		}
		if borrow < 0 {
			borrow = 0
		}
	}
	required = nominal + borrow
	adjustedArrival = arrival - borrow
	if borrow > 0 {
		timeGiven = borrow + info.OpenUncertainty + openCrpr
	}

	return required, borrow, adjustedArrival, timeGiven
}

// RequiredTime is the borrow-adjusted requirement at the enable edge.
func (pe *LatchCheck) RequiredTime(ctx *Context) timing.Time {
	required, _, _, _ := pe.latchRequired(ctx, true)

	return required
}

// requiredTimeNoCrpr recomputes the borrow-adjusted requirement with
// the pessimism correction excluded, keeping the borrow and requirement
// consistent within the no-correction view.
func (pe *LatchCheck) requiredTimeNoCrpr(ctx *Context) timing.Time {
	required, _, _, _ := pe.latchRequired(ctx, false)

	return required
}

// Borrow is the time taken from the following phase.
func (pe *LatchCheck) Borrow(ctx *Context) timing.Delay {
	_, borrow, _, _ := pe.latchRequired(ctx, true)

	return borrow
}

// ExceptPathCmp orders by the governing path-delay exception first,
// then by the multi-cycle binding.
func (pe *LatchCheck) ExceptPathCmp(other PathEnd, ctx *Context) int {
	if c := cmpPathDelay(pe.pathDelay, other.PathDelay()); c != 0 {
		return c
	}

	return pe.clkConstrainedMcp.ExceptPathCmp(other, ctx)
}

package pathend

import "github.com/velanor/signoff/timing"

// Unconstrained is a path end with no terminating constraint: its
// required time is the "never violated" sentinel and its slack is
// infinite, so constrained ends always sort ahead of it.
type Unconstrained struct {
	pathEnd
}

// NewUnconstrained wraps a path that terminates without a constraint.
func NewUnconstrained(path *timing.Path) (*Unconstrained, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	pe := &Unconstrained{}
	pe.initBase(path, pe)

	return pe, nil
}

// Type returns TypeUnconstrained.
func (pe *Unconstrained) Type() Type { return TypeUnconstrained }

// TypeName returns the display name of the variant.
func (pe *Unconstrained) TypeName() string { return TypeUnconstrained.String() }

// IsUnconstrained reports true.
func (pe *Unconstrained) IsUnconstrained() bool { return true }

// Copy returns an independent clone with its own owned path.
func (pe *Unconstrained) Copy() PathEnd {
	cp, _ := NewUnconstrained(pe.path.Clone())

	return cp
}

// RequiredTime is the sentinel requirement: never violated under either
// analysis view.
func (pe *Unconstrained) RequiredTime(_ *Context) timing.Time {
	if pe.path.MinMax() == timing.Late {
		return timing.Infinity
	}

	return -timing.Infinity
}

// RequiredTimeOffset equals RequiredTime; no offset moves infinity.
func (pe *Unconstrained) RequiredTimeOffset(ctx *Context) timing.Time {
	return pe.RequiredTime(ctx)
}

// Margin is zero: no check contributes one.
func (pe *Unconstrained) Margin(_ *Context) timing.Delay { return 0 }

// Slack is infinite: timing is never violated.
func (pe *Unconstrained) Slack(_ *Context) timing.Slack { return timing.Infinity }

// SlackNoCrpr equals Slack; no pessimism correction applies.
func (pe *Unconstrained) SlackNoCrpr(_ *Context) timing.Slack { return timing.Infinity }

// SourceClkOffset is zero: there is no capture cycle to normalize into.
func (pe *Unconstrained) SourceClkOffset(_ *Context) float64 { return 0 }

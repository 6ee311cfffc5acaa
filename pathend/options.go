package pathend

import (
	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// options collects the optional constructor bindings. Every variant has
// exactly one constructor; the forms that differ only by an optional
// binding (a precomputed pessimism correction, a path-delay end's check
// or output-delay target) are expressed as functional options.
type options struct {
	crpr      timing.Crpr
	crprValid bool

	clkPath     *timing.Path
	arc         *timing.TimingArc
	checkEdge   *timing.CheckEdge
	outputDelay *sdc.OutputDelay
}

// Option configures a path-end constructor.
type Option func(*options)

// WithCrpr supplies a precomputed pessimism correction, installing it
// into the memo so the lazy walk never runs for this instance.
func WithCrpr(c timing.Crpr) Option {
	return func(o *options) {
		o.crpr = c
		o.crprValid = true
	}
}

// WithTargetClk binds a path-delay end to a timing check: the capture
// clock path of the checked register plus the check arc and edge.
func WithTargetClk(clkPath *timing.Path, arc *timing.TimingArc, checkEdge *timing.CheckEdge) Option {
	return func(o *options) {
		o.clkPath = clkPath
		o.arc = arc
		o.checkEdge = checkEdge
	}
}

// WithOutputDelay binds a path-delay end to an output port carrying an
// output-delay constraint.
func WithOutputDelay(od *sdc.OutputDelay) Option {
	return func(o *options) {
		o.outputDelay = od
	}
}

// buildOptions folds the option list into one options value.
func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

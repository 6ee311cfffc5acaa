package sdc

import "github.com/velanor/signoff/timing"

// MultiCyclePath is a resolved multi-cycle-path exception: a cycle
// multiplier, the analysis views it applies to, and whether cycles are
// counted in periods of the capture (end) or launch (start) clock.
// Applicability and precedence between overlapping exceptions are
// resolved by the constraint reader before one of these is bound to a
// path end; the path-end layer consumes a single resolved-or-absent
// reference.
type MultiCyclePath struct {
	multiplier int
	minMax     timing.MinMax
	allViews   bool
	useEndClk  bool
}

// NewMultiCyclePath creates a multi-cycle exception applying to every
// analysis view, counting capture-clock cycles.
func NewMultiCyclePath(multiplier int) *MultiCyclePath {
	return &MultiCyclePath{multiplier: multiplier, allViews: true, useEndClk: true}
}

// NewMultiCyclePathMinMax creates a multi-cycle exception restricted to
// one analysis view (Late for -setup, Early for -hold).
func NewMultiCyclePathMinMax(multiplier int, mm timing.MinMax) *MultiCyclePath {
	return &MultiCyclePath{multiplier: multiplier, minMax: mm, useEndClk: true}
}

// PathMultiplier returns the cycle multiplier.
func (m *MultiCyclePath) PathMultiplier() int { return m.multiplier }

// MatchesMinMax reports whether the exception applies to the view.
func (m *MultiCyclePath) MatchesMinMax(mm timing.MinMax) bool {
	return m.allViews || m.minMax == mm
}

// SetUseStartClk makes the multiplier count launch-clock periods instead
// of capture-clock periods.
func (m *MultiCyclePath) SetUseStartClk() { m.useEndClk = false }

// UseEndClk reports whether cycles are counted in capture-clock periods.
func (m *MultiCyclePath) UseEndClk() bool { return m.useEndClk }

// PathDelay is an explicit min/max delay budget overriding clock-derived
// requirements for the paths it governs.
type PathDelay struct {
	delay            timing.Delay
	minMax           timing.MinMax
	ignoreClkLatency bool
}

// NewPathDelay creates a path-delay exception with the given budget for
// one analysis view (Late for set_max_delay, Early for set_min_delay).
func NewPathDelay(delay timing.Delay, mm timing.MinMax) *PathDelay {
	return &PathDelay{delay: delay, minMax: mm}
}

// Delay returns the delay budget.
func (p *PathDelay) Delay() timing.Delay { return p.delay }

// MinMax returns the analysis view the budget applies to.
func (p *PathDelay) MinMax() timing.MinMax { return p.minMax }

// SetIgnoreClkLatency gives the budget ignore-launch-clock-latency
// semantics: launch clock tree terms are zeroed rather than computed.
func (p *PathDelay) SetIgnoreClkLatency() { p.ignoreClkLatency = true }

// IgnoreClkLatency reports whether launch clock latency is ignored.
func (p *PathDelay) IgnoreClkLatency() bool { return p.ignoreClkLatency }

// OutputDelay is an output-delay constraint on a top-level port: the
// externally required data window relative to a reference clock edge.
type OutputDelay struct {
	pin     string
	refEdge *timing.ClockEdge

	// delays[MinMax][RiseFall]
	delays [2][2]timing.Delay
}

// NewOutputDelay creates an output-delay constraint on pin relative to
// the given reference clock edge.
func NewOutputDelay(pin string, refEdge *timing.ClockEdge) *OutputDelay {
	return &OutputDelay{pin: pin, refEdge: refEdge}
}

// Pin returns the constrained port name.
func (o *OutputDelay) Pin() string { return o.pin }

// RefEdge returns the reference clock edge, nil when unreferenced.
func (o *OutputDelay) RefEdge() *timing.ClockEdge { return o.refEdge }

// SetDelay records the declared delay for one view and transition.
func (o *OutputDelay) SetDelay(mm timing.MinMax, rf timing.RiseFall, d timing.Delay) {
	o.delays[mm][rf] = d
}

// DelayValue returns the declared delay for the view and transition.
func (o *OutputDelay) DelayValue(mm timing.MinMax, rf timing.RiseFall) timing.Delay {
	return o.delays[mm][rf]
}

// DataCheck is a data-to-data setback constraint between two data pins,
// with no implicit clock cycle relationship.
type DataCheck struct {
	fromPin string
	toPin   string

	// margins[MinMax] — setup setback under Late, hold setback under Early.
	margins [2]timing.Delay
}

// NewDataCheck creates a data check from the related pin to the
// constrained pin.
func NewDataCheck(fromPin, toPin string) *DataCheck {
	return &DataCheck{fromPin: fromPin, toPin: toPin}
}

// FromPin returns the related (reference) data pin.
func (d *DataCheck) FromPin() string { return d.fromPin }

// ToPin returns the constrained data pin.
func (d *DataCheck) ToPin() string { return d.toPin }

// SetMargin records the setback for one analysis view.
func (d *DataCheck) SetMargin(mm timing.MinMax, margin timing.Delay) {
	d.margins[mm] = margin
}

// Margin returns the setback for the analysis view.
func (d *DataCheck) Margin(mm timing.MinMax) timing.Delay { return d.margins[mm] }

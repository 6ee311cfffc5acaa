package timing

// ClkTreeNode is one node of a clock path trace: the pin it crosses and
// the accumulated tree delay up to that pin under each analysis view.
// Traces are recorded root-first by the (out of scope) graph search and
// consumed by the pessimism-removal walk.
type ClkTreeNode struct {
	// Pin is the clock tree pin name.
	Pin string

	// EarlyDelay is the accumulated minimum tree delay at Pin.
	EarlyDelay Delay

	// LateDelay is the accumulated maximum tree delay at Pin.
	LateDelay Delay
}

// Path is a realized timing path terminating at a single pin: the
// endpoint identity, the transition and analysis view it was searched
// under, the arrival time the search computed, and the launch clock
// bookkeeping needed to re-derive clock-relative quantities.
//
// A Path is exclusively owned by the path end wrapping it; Clone produces
// an independent deep copy, trace included, so that mutating one never
// affects the other.
type Path struct {
	pin        string
	transition RiseFall
	minMax     MinMax
	arrival    Time

	// clkEdge is the clock edge that launched (or, for clock paths,
	// defines) this path; nil for unclocked paths.
	clkEdge *ClockEdge

	// clkInsertion and clkLatency decompose the clock tree delay seen by
	// this path into the defined insertion delay and the propagated
	// latency from the graph.
	clkInsertion Delay
	clkLatency   Delay

	clkTrace []ClkTreeNode
}

// NewPath creates a realized path ending at pin with the given
// transition, analysis view, arrival time and launch clock edge
// (nil for unclocked paths).
func NewPath(pin string, rf RiseFall, mm MinMax, arrival Time, clkEdge *ClockEdge) *Path {
	return &Path{
		pin:        pin,
		transition: rf,
		minMax:     mm,
		arrival:    arrival,
		clkEdge:    clkEdge,
	}
}

// Pin returns the endpoint pin name.
func (p *Path) Pin() string { return p.pin }

// Transition returns the transition sense at the endpoint.
func (p *Path) Transition() RiseFall { return p.transition }

// MinMax returns the analysis view the path was searched under.
func (p *Path) MinMax() MinMax { return p.minMax }

// Arrival returns the arrival time at the endpoint.
func (p *Path) Arrival() Time { return p.arrival }

// SetArrival overwrites the arrival time. Only the owning search (and
// tests) mutate paths; path ends treat them as read-only.
func (p *Path) SetArrival(t Time) { p.arrival = t }

// ClkEdge returns the launch clock edge, nil for unclocked paths.
func (p *Path) ClkEdge() *ClockEdge { return p.clkEdge }

// SetClkDelays records the clock tree delay decomposition for this path.
func (p *Path) SetClkDelays(insertion, latency Delay) {
	p.clkInsertion = insertion
	p.clkLatency = latency
}

// ClkInsertion returns the defined insertion delay component.
func (p *Path) ClkInsertion() Delay { return p.clkInsertion }

// ClkLatency returns the propagated clock tree latency component.
func (p *Path) ClkLatency() Delay { return p.clkLatency }

// SetClkTrace records the clock tree trace, root-first.
func (p *Path) SetClkTrace(nodes []ClkTreeNode) { p.clkTrace = nodes }

// ClkTrace returns the clock tree trace, root-first. The returned slice
// is the path's own storage; callers must not mutate it.
func (p *Path) ClkTrace() []ClkTreeNode { return p.clkTrace }

// Clone returns an independent deep copy of the path. The clock edge is
// shared (clock definitions are externally owned and immutable here);
// the trace slice is copied.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	cp := *p
	if p.clkTrace != nil {
		cp.clkTrace = make([]ClkTreeNode, len(p.clkTrace))
		copy(cp.clkTrace, p.clkTrace)
	}

	return &cp
}

// Package sdc models the design-constraint tables the path-end layer
// consumes read-only: timing exceptions (multi-cycle path, path delay,
// output delay, data check) and the global constraint lookups
// (inter-clock uncertainty, latch borrow limits, hold multi-cycle
// registry, pessimism-removal mode).
//
// All objects here are built once by the (out of scope) constraint
// reader and then only queried; the path-end layer never mutates them
// and holds non-owning references into these tables.
package sdc

import "github.com/velanor/signoff/timing"

// CrprMode selects how the pessimism-removal walk pairs clock path
// transitions at the divergence pin.
type CrprMode int

const (
	// CrprSameTransition removes pessimism only between same-sense
	// clock transitions.
	CrprSameTransition CrprMode = iota

	// CrprAnyTransition removes pessimism regardless of transition sense.
	CrprAnyTransition
)

// interClkKey identifies a directed clock pair and analysis view.
type interClkKey struct {
	src string
	tgt string
	mm  timing.MinMax
}

// Sdc is the constraint table: registered settings keyed by clock pair,
// pin or clock edge. Zero value is usable and means "nothing configured".
type Sdc struct {
	crprEnabled bool
	crprMode    CrprMode

	interClkUncertainty map[interClkKey]float64
	borrowLimits        map[string]timing.Delay
	holdMcps            map[string]*MultiCyclePath
}

// New returns an empty constraint table with pessimism removal enabled.
func New() *Sdc {
	return &Sdc{
		crprEnabled:         true,
		interClkUncertainty: make(map[interClkKey]float64),
		borrowLimits:        make(map[string]timing.Delay),
		holdMcps:            make(map[string]*MultiCyclePath),
	}
}

// SetCrprEnabled enables or disables common-path pessimism removal.
func (s *Sdc) SetCrprEnabled(enabled bool) { s.crprEnabled = enabled }

// CrprEnabled reports whether pessimism removal is active.
func (s *Sdc) CrprEnabled() bool { return s != nil && s.crprEnabled }

// SetCrprMode sets the transition pairing mode of the pessimism walk.
func (s *Sdc) SetCrprMode(mode CrprMode) { s.crprMode = mode }

// CrprMode returns the transition pairing mode.
func (s *Sdc) CrprMode() CrprMode {
	if s == nil {
		return CrprSameTransition
	}

	return s.crprMode
}

// SetInterClockUncertainty registers an inter-clock uncertainty between
// two clocks for one analysis view. Zero is a valid setting, distinct
// from "not configured".
func (s *Sdc) SetInterClockUncertainty(src, tgt *timing.Clock, mm timing.MinMax, u float64) {
	s.interClkUncertainty[interClkKey{src: src.Name(), tgt: tgt.Name(), mm: mm}] = u
}

// InterClockUncertainty returns the configured inter-clock uncertainty
// from src to tgt for the view, and whether one exists.
func (s *Sdc) InterClockUncertainty(src, tgt *timing.Clock, mm timing.MinMax) (float64, bool) {
	if s == nil || src == nil || tgt == nil {
		return 0, false
	}
	u, ok := s.interClkUncertainty[interClkKey{src: src.Name(), tgt: tgt.Name(), mm: mm}]

	return u, ok
}

// SetBorrowLimit registers an explicit max-borrow limit on a latch pin.
func (s *Sdc) SetBorrowLimit(pin string, limit timing.Delay) {
	s.borrowLimits[pin] = limit
}

// BorrowLimit returns the explicit borrow limit for a latch pin and
// whether one was configured.
func (s *Sdc) BorrowLimit(pin string) (timing.Delay, bool) {
	if s == nil {
		return 0, false
	}
	limit, ok := s.borrowLimits[pin]

	return limit, ok
}

// SetHoldMcp registers an explicit hold multi-cycle exception governing
// checks captured by the given clock edge.
func (s *Sdc) SetHoldMcp(tgtClkEdge *timing.ClockEdge, mcp *MultiCyclePath) {
	s.holdMcps[holdMcpKey(tgtClkEdge)] = mcp
}

// HoldMcp returns the explicit hold multi-cycle exception for checks
// captured by the edge, nil when none is configured.
func (s *Sdc) HoldMcp(tgtClkEdge *timing.ClockEdge) *MultiCyclePath {
	if s == nil || tgtClkEdge == nil {
		return nil
	}

	return s.holdMcps[holdMcpKey(tgtClkEdge)]
}

// holdMcpKey builds the registry key for a capture clock edge.
func holdMcpKey(e *timing.ClockEdge) string {
	return e.Clock().Name() + "/" + e.Transition().String()
}

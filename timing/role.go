package timing

// TimingRole identifies the kind of constraint a check arc or path end
// enforces. Every role maps onto a generic setup or hold role via
// GenericRole; the generic role decides the early/late pairing of the
// capture clock path and the sign conventions of uncertainty and
// pessimism-removal corrections.
type TimingRole int

const (
	// RoleSetup is a register setup check.
	RoleSetup TimingRole = iota

	// RoleHold is a register hold check.
	RoleHold

	// RoleLatchSetup is a level-sensitive latch setup (borrow) check.
	RoleLatchSetup

	// RoleLatchHold is a level-sensitive latch hold check.
	RoleLatchHold

	// RoleGatedClockSetup constrains a clock-gate enable against the
	// gated clock's closing edge.
	RoleGatedClockSetup

	// RoleGatedClockHold constrains a clock-gate enable against the
	// gated clock's opening edge.
	RoleGatedClockHold

	// RoleDataSetup is a data-to-data setup setback check.
	RoleDataSetup

	// RoleDataHold is a data-to-data hold setback check.
	RoleDataHold

	// RoleMaxDelay is an explicit maximum path-delay budget.
	RoleMaxDelay

	// RoleMinDelay is an explicit minimum path-delay budget.
	RoleMinDelay
)

// roleNames indexes the display names by TimingRole value.
var roleNames = [...]string{
	RoleSetup:           "setup",
	RoleHold:            "hold",
	RoleLatchSetup:      "latch setup",
	RoleLatchHold:       "latch hold",
	RoleGatedClockSetup: "clock gating setup",
	RoleGatedClockHold:  "clock gating hold",
	RoleDataSetup:       "data setup",
	RoleDataHold:        "data hold",
	RoleMaxDelay:        "max delay",
	RoleMinDelay:        "min delay",
}

// String returns the display name of the role.
func (r TimingRole) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}

	return "unknown"
}

// GenericRole collapses the role onto RoleSetup or RoleHold.
func (r TimingRole) GenericRole() TimingRole {
	switch r {
	case RoleSetup, RoleLatchSetup, RoleGatedClockSetup, RoleDataSetup, RoleMaxDelay:
		return RoleSetup
	default:
		return RoleHold
	}
}

// PathMinMax returns the analysis view of the constrained data path:
// Late for setup-generic roles, Early for hold-generic roles.
func (r TimingRole) PathMinMax() MinMax {
	if r.GenericRole() == RoleSetup {
		return Late
	}

	return Early
}

// TgtClkEarlyLate returns the analysis view of the capture clock path:
// Early for setup-generic roles (the capture edge is pessimistically
// early), Late for hold-generic roles.
func (r TimingRole) TgtClkEarlyLate() MinMax {
	if r.GenericRole() == RoleSetup {
		return Early
	}

	return Late
}

// CheckEdge identifies the graph edge a timing check crosses, by its
// endpoint pin names. Used for reporting and as a structural tiebreaker.
type CheckEdge struct {
	// From is the clock (reference) pin of the check.
	From string

	// To is the constrained data pin of the check.
	To string
}

// TimingArc is a check arc of a cell timing model: the role of the check
// plus its margin table indexed by analysis view and constrained
// transition. Margins are looked up, never recomputed, by the path-end
// layer.
type TimingArc struct {
	cell string
	from string
	to   string
	role TimingRole

	// margins[MinMax][RiseFall]
	margins [2][2]Delay

	// macroClkTreeDelay is the extra capture clock tree delay hidden
	// inside a timing macro abstraction, zero for flat endpoints.
	macroClkTreeDelay Delay
}

// NewTimingArc builds a check arc for the given cell and pin pair.
// Margins default to zero; populate them with SetMargin.
func NewTimingArc(cell, from, to string, role TimingRole) *TimingArc {
	return &TimingArc{cell: cell, from: from, to: to, role: role}
}

// Cell returns the owning cell name.
func (a *TimingArc) Cell() string { return a.cell }

// From returns the reference (clock) pin name.
func (a *TimingArc) From() string { return a.from }

// To returns the constrained pin name.
func (a *TimingArc) To() string { return a.to }

// Role returns the check role of the arc.
func (a *TimingArc) Role() TimingRole { return a.role }

// SetMargin records the check margin for one analysis view and
// constrained transition.
func (a *TimingArc) SetMargin(mm MinMax, rf RiseFall, margin Delay) {
	a.margins[mm][rf] = margin
}

// Margin returns the check margin for the analysis view and transition.
func (a *TimingArc) Margin(mm MinMax, rf RiseFall) Delay {
	return a.margins[mm][rf]
}

// SetMacroClkTreeDelay records extra clock tree delay internal to a
// timing macro abstraction containing the endpoint.
func (a *TimingArc) SetMacroClkTreeDelay(d Delay) { a.macroClkTreeDelay = d }

// MacroClkTreeDelay returns the macro-internal clock tree delay.
func (a *TimingArc) MacroClkTreeDelay() Delay { return a.macroClkTreeDelay }

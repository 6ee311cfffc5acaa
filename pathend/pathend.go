package pathend

import (
	"errors"

	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// Sentinel errors returned by path-end constructors.
var (
	// ErrNilPath indicates that the constrained path is missing.
	ErrNilPath = errors.New("pathend: path is nil")

	// ErrNilClkPath indicates that a mandatory capture clock path is missing.
	ErrNilClkPath = errors.New("pathend: capture clock path is nil")

	// ErrNilArc indicates that a mandatory check arc is missing.
	ErrNilArc = errors.New("pathend: check arc is nil")

	// ErrNilException indicates that a mandatory exception reference is missing.
	ErrNilException = errors.New("pathend: exception is nil")
)

// Context is the read-only analysis-state view handed to every query:
// it exposes the constraint tables the formulas consult. A nil Context
// behaves like an empty one.
type Context struct {
	sdc *sdc.Sdc
}

// NewContext wraps a constraint table into an analysis context.
func NewContext(s *sdc.Sdc) *Context {
	return &Context{sdc: s}
}

// Sdc returns the constraint table, nil when none is attached.
// All sdc lookups are nil-safe, so callers may chain directly.
func (c *Context) Sdc() *sdc.Sdc {
	if c == nil {
		return nil
	}

	return c.sdc
}

// Type tags the seven path-end variants. The tag is fixed at
// construction and consistent with the concrete type for the instance's
// whole lifetime.
type Type int

const (
	// TypeUnconstrained — no terminating constraint.
	TypeUnconstrained Type = iota

	// TypeCheck — register setup/hold check.
	TypeCheck

	// TypeDataCheck — data-to-data setback check.
	TypeDataCheck

	// TypeLatchCheck — level-sensitive latch borrow check.
	TypeLatchCheck

	// TypeOutputDelay — output-delay constraint on a port.
	TypeOutputDelay

	// TypeGatedClock — clock-gate enable check.
	TypeGatedClock

	// TypePathDelay — explicit min/max delay budget.
	TypePathDelay
)

// typeNames indexes display names by Type value.
var typeNames = [...]string{
	TypeUnconstrained: "unconstrained",
	TypeCheck:         "check",
	TypeDataCheck:     "data check",
	TypeLatchCheck:    "latch check",
	TypeOutputDelay:   "output delay",
	TypeGatedClock:    "gated clock",
	TypePathDelay:     "path delay",
}

// String returns the display name of the type tag.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	return "unknown"
}

// PathEnd is a search endpoint bound to exactly one realized Path,
// classified by its terminating constraint. Implementations are pure
// functions of their bound inputs; the only mutable state is the
// per-instance pessimism-removal memo, forced at most once.
//
// Generic accessors are total: querying a capability a variant lacks
// returns its "not applicable" sentinel (nil reference, zero delay,
// value-plus-false pair) rather than failing, so callers need the Is*
// predicates only to distinguish "not applicable" from "zero".
type PathEnd interface {
	// Copy returns a new instance with independent deep copies of every
	// owned path; mutations on either side never leak across.
	Copy() PathEnd

	// Path returns the constrained path this end owns.
	Path() *timing.Path

	// SetPath rebinds the constrained path. Only the owning search (and
	// tests) call this.
	SetPath(p *timing.Path)

	// Vertex returns the endpoint pin name.
	Vertex() string

	// MinMax returns the analysis view of the constrained path.
	MinMax() timing.MinMax

	// Transition returns the endpoint transition sense.
	Transition() timing.RiseFall

	// ClkEarlyLate returns the analysis view of the capture clock path.
	ClkEarlyLate(ctx *Context) timing.MinMax

	// ReportShort hands the reporter the summary field bundle.
	ReportShort(ctx *Context, r Reporter)

	// ReportFull hands the reporter the complete field bundle.
	ReportFull(ctx *Context, r Reporter)

	// Predicates for the concrete variant; false by default.
	IsUnconstrained() bool
	IsCheck() bool
	IsDataCheck() bool
	IsLatchCheck() bool
	IsOutputDelay() bool
	IsGatedClock() bool
	IsPathDelay() bool

	// Type returns the variant tag; TypeName its display name.
	Type() Type
	TypeName() string

	// ExceptPathCmp orders two path ends by the exceptions governing
	// them, for deterministic tie-breaking when slacks are equal.
	ExceptPathCmp(other PathEnd, ctx *Context) int

	// DataArrivalTime is the arrival at the endpoint;
	// DataArrivalTimeOffset advances it by SourceClkOffset so paths
	// launched in different absolute cycles compare in one frame.
	DataArrivalTime(ctx *Context) timing.Time
	DataArrivalTimeOffset(ctx *Context) timing.Time

	// RequiredTime is the capture-derived requirement (cycle accounting,
	// clock tree delay, uncertainty and pessimism correction included;
	// the check margin is applied in Slack).
	RequiredTime(ctx *Context) timing.Time
	RequiredTimeOffset(ctx *Context) timing.Time

	// Margin is the slack-contributing check margin of the variant.
	Margin(ctx *Context) timing.Delay

	// MacroClkTreeDelay is extra capture tree delay hidden inside a
	// timing macro abstraction; zero for flat endpoints.
	MacroClkTreeDelay(ctx *Context) timing.Delay

	// Slack is positive when timing is met; SlackNoCrpr recomputes it
	// as if the pessimism correction were zero.
	Slack(ctx *Context) timing.Slack
	SlackNoCrpr(ctx *Context) timing.Slack

	// Borrow is the time borrowed from the next phase; zero except for
	// latch checks.
	Borrow(ctx *Context) timing.Delay

	// Launch clock accessors.
	SourceClkEdge(ctx *Context) *timing.ClockEdge
	SourceClkOffset(ctx *Context) float64
	SourceClkLatency(ctx *Context) timing.Delay
	SourceClkInsertionDelay(ctx *Context) timing.Delay

	// Capture clock accessors.
	TargetClkPath() *timing.Path
	TargetClk(ctx *Context) *timing.Clock
	TargetClkEdge(ctx *Context) *timing.ClockEdge
	TargetClkEndTrans(ctx *Context) timing.RiseFall
	TargetClkTime(ctx *Context) timing.Time
	TargetClkOffset(ctx *Context) float64
	TargetClkArrival(ctx *Context) timing.Time
	TargetClkDelay(ctx *Context) timing.Delay
	TargetClkInsertionDelay(ctx *Context) timing.Delay

	// TargetNonInterClkUncertainty is the capture clock's own setting;
	// InterClkUncertainty applies only between differing clocks;
	// TargetClkUncertainty is their sum, folded in exactly once.
	TargetNonInterClkUncertainty(ctx *Context) float64
	InterClkUncertainty(ctx *Context) float64
	TargetClkUncertainty(ctx *Context) float64

	// TargetClkMcpAdjustment is the whole-period shift contributed by a
	// governing multi-cycle exception.
	TargetClkMcpAdjustment(ctx *Context) float64

	// CheckRole identifies the check kind; the boolean is false when no
	// check applies. CheckGenericRole collapses it to setup or hold.
	CheckRole(ctx *Context) (timing.TimingRole, bool)
	CheckGenericRole(ctx *Context) (timing.TimingRole, bool)

	// PathDelayMarginIsExternal reports whether the margin comes from a
	// user budget rather than an intrinsic check arc.
	PathDelayMarginIsExternal() bool

	// PathDelay returns the governing path-delay exception, if any.
	PathDelay() *sdc.PathDelay

	// CheckCrpr computes the signed pessimism correction; Crpr returns
	// the memoized value, forced at most once per instance.
	CheckCrpr(ctx *Context) timing.Crpr
	Crpr(ctx *Context) timing.Crpr

	// MultiCyclePath returns the bound multi-cycle exception, if any.
	MultiCyclePath() *sdc.MultiCyclePath

	// CheckArc returns the bound check arc, nil when not applicable.
	CheckArc() *timing.TimingArc

	// DataClkPath returns the data check's related-pin clock path,
	// nil for every other variant.
	DataClkPath() *timing.Path

	// SetupDefaultCycles is the default cycle count of the setup
	// requirement: 1 for ordinary checks, 0 for data checks.
	SetupDefaultCycles() int

	// ClkSkew is launch tree delay minus capture tree delay, pessimism
	// corrected.
	ClkSkew(ctx *Context) timing.Delay

	// IgnoreClkLatency reports whether a governing path-delay exception
	// zeroes launch clock latency terms.
	IgnoreClkLatency(ctx *Context) bool
}

// pathEndInternal extends PathEnd with the hooks the shared bases
// dispatch through, so variant overrides are honored by base formulas.
type pathEndInternal interface {
	PathEnd

	// targetClkArrivalNoCrpr is the capture edge arrival without the
	// pessimism correction; internal to SlackNoCrpr.
	targetClkArrivalNoCrpr(ctx *Context) timing.Time

	// requiredTimeNoCrpr is RequiredTime without the pessimism correction.
	requiredTimeNoCrpr(ctx *Context) timing.Time
}

// CheckTgtClkDelaySplit decomposes the capture clock path's tree delay
// into the defined insertion delay and the propagated latency. When no
// realized clock path exists (an output delay constrained only by a
// reference edge), the insertion delay falls back to the clock
// definition for the role's capture view and the latency is zero.
func CheckTgtClkDelaySplit(tgtClkPath *timing.Path, tgtClkEdge *timing.ClockEdge, role timing.TimingRole) (insertion, latency timing.Delay) {
	if tgtClkPath != nil {
		return tgtClkPath.ClkInsertion(), tgtClkPath.ClkLatency()
	}
	if tgtClkEdge != nil {
		return tgtClkEdge.Clock().InsertionDelay(role.TgtClkEarlyLate()), 0
	}

	return 0, 0
}

// CheckTgtClkDelay returns the capture clock path's total tree delay:
// insertion delay plus latency.
func CheckTgtClkDelay(tgtClkPath *timing.Path, tgtClkEdge *timing.ClockEdge, role timing.TimingRole) timing.Delay {
	insertion, latency := CheckTgtClkDelaySplit(tgtClkPath, tgtClkEdge, role)

	return insertion + latency
}

// CheckTgtClkUncertainty returns the capture clock's own uncertainty for
// the role's check kind, zero when none is configured. Inter-clock
// uncertainty is not included.
func CheckTgtClkUncertainty(tgtClkEdge *timing.ClockEdge, role timing.TimingRole) float64 {
	if tgtClkEdge == nil {
		return 0
	}
	u, ok := tgtClkEdge.Clock().Uncertainty(role.PathMinMax())
	if !ok {
		return 0
	}

	return u
}

// checkInterClkUncertainty looks up the user inter-clock uncertainty
// between the launch and capture clocks. It applies only when the two
// clocks differ; "not configured" is distinct from zero.
func checkInterClkUncertainty(ctx *Context, srcClkEdge, tgtClkEdge *timing.ClockEdge, role timing.TimingRole) (float64, bool) {
	if srcClkEdge == nil || tgtClkEdge == nil || srcClkEdge.SameClock(tgtClkEdge) {
		return 0, false
	}

	return ctx.Sdc().InterClockUncertainty(srcClkEdge.Clock(), tgtClkEdge.Clock(), role.PathMinMax())
}

// CheckClkUncertainty composes the capture clock uncertainty (per-clock
// plus inter-clock, folded in exactly once) and signs it for the check
// kind: uncertainty tightens the requirement, so it is negative for
// setup-generic roles and positive for hold-generic ones.
func CheckClkUncertainty(ctx *Context, srcClkEdge, tgtClkEdge *timing.ClockEdge, role timing.TimingRole) float64 {
	u := CheckTgtClkUncertainty(tgtClkEdge, role)
	if inter, ok := checkInterClkUncertainty(ctx, srcClkEdge, tgtClkEdge, role); ok {
		u += inter
	}
	if role.GenericRole() == timing.RoleSetup {
		return -u
	}

	return u
}

// CheckSetupMcpAdjustment converts a setup multi-cycle multiplier into
// the whole clock periods added to the default requirement: a multiplier
// of N contributes N−defaultCycles periods of the end clock (or of the
// start clock when the exception counts launch cycles).
func CheckSetupMcpAdjustment(srcClkEdge, tgtClkEdge *timing.ClockEdge, mcp *sdc.MultiCyclePath, defaultCycles int) float64 {
	if mcp == nil || tgtClkEdge == nil || !mcp.MatchesMinMax(timing.Late) {
		return 0
	}
	period := tgtClkEdge.Clock().Period()
	if !mcp.UseEndClk() && srcClkEdge != nil {
		period = srcClkEdge.Clock().Period()
	}

	return float64(mcp.PathMultiplier()-defaultCycles) * period
}

// outputDelayMargin is the user-declared output delay for the path's
// analysis view and endpoint transition, signed for the slack formula:
// positive under the late view (the external device needs the data that
// much earlier) and negated under the early view (the declared min
// delay is time the external device grants after the edge).
func outputDelayMargin(od *sdc.OutputDelay, path *timing.Path) timing.Delay {
	if od == nil {
		return 0
	}
	margin := od.DelayValue(path.MinMax(), path.Transition())
	if path.MinMax() == timing.Early {
		return -margin
	}

	return margin
}

// pathDelaySrcClkOffset is the launch-side offset added to a path-delay
// budget to place the requirement on the same time axis as the recorded
// arrival: the full source clock arrival when launch latency is ignored
// (so latency terms cancel), the nominal edge time when it is not, and
// zero for unclocked paths.
func pathDelaySrcClkOffset(path *timing.Path, pd *sdc.PathDelay, srcClkArrival timing.Time) float64 {
	clkEdge := path.ClkEdge()
	if clkEdge == nil {
		return 0
	}
	if pdIgnoreClkLatency(path, pd) {
		return srcClkArrival
	}

	return clkEdge.Time()
}

// pdIgnoreClkLatency reports whether a path-delay exception with
// ignore-launch-latency semantics governs a clocked path.
func pdIgnoreClkLatency(path *timing.Path, pd *sdc.PathDelay) bool {
	return pd != nil && pd.IgnoreClkLatency() && path.ClkEdge() != nil
}

// findSrcClkArrival resolves the launch clock arrival recorded on a
// path: nominal edge time plus the path's insertion and latency terms.
func findSrcClkArrival(path *timing.Path) timing.Time {
	clkEdge := path.ClkEdge()
	if clkEdge == nil {
		return 0
	}

	return clkEdge.Time() + path.ClkInsertion() + path.ClkLatency()
}

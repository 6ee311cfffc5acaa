package pathend

import "github.com/velanor/signoff/timing"

// Fields is the flattened field bundle handed to a Reporter: every
// reportable quantity of a path end evaluated once, so formatters never
// touch the end (or its memo) themselves. The summary bundle fills the
// identification and severity fields; the full bundle additionally
// evaluates the clock arithmetic breakdown.
type Fields struct {
	TypeName   string
	Vertex     string
	Transition timing.RiseFall
	MinMax     timing.MinMax

	Arrival      timing.Time
	RequiredTime timing.Time
	Margin       timing.Delay
	Slack        timing.Slack
	Borrow       timing.Delay

	// CheckRoleName is empty when no check applies.
	CheckRoleName string

	// TargetClkName is empty for unclocked ends.
	TargetClkName string

	// Full-bundle breakdown, zero in the summary bundle.
	ArrivalOffset           timing.Time
	RequiredOffset          timing.Time
	SourceClkOffset         float64
	TargetClkTime           timing.Time
	TargetClkOffset         float64
	TargetClkDelay          timing.Delay
	TargetClkInsertionDelay timing.Delay
	TargetClkUncertainty    float64
	TargetClkArrival        timing.Time
	Crpr                    timing.Crpr
	ClkSkew                 timing.Delay
	SlackNoCrpr             timing.Slack
}

// Reporter consumes evaluated field bundles. Implementations format or
// collect; they never query the path end directly.
type Reporter interface {
	// ReportShort consumes the summary bundle.
	ReportShort(f Fields)

	// ReportFull consumes the complete bundle.
	ReportFull(f Fields)
}

// collectFields evaluates the field bundle for reporting; full selects
// whether the clock arithmetic breakdown is included.
func collectFields(end PathEnd, ctx *Context, full bool) Fields {
	f := Fields{
		TypeName:     end.TypeName(),
		Vertex:       end.Vertex(),
		Transition:   end.Transition(),
		MinMax:       end.MinMax(),
		Arrival:      end.DataArrivalTime(ctx),
		RequiredTime: end.RequiredTime(ctx),
		Margin:       end.Margin(ctx),
		Slack:        end.Slack(ctx),
		Borrow:       end.Borrow(ctx),
	}
	if role, ok := end.CheckRole(ctx); ok {
		f.CheckRoleName = role.String()
	}
	if clk := end.TargetClk(ctx); clk != nil {
		f.TargetClkName = clk.Name()
	}
	if full {
		f.ArrivalOffset = end.DataArrivalTimeOffset(ctx)
		f.RequiredOffset = end.RequiredTimeOffset(ctx)
		f.SourceClkOffset = end.SourceClkOffset(ctx)
		f.TargetClkTime = end.TargetClkTime(ctx)
		f.TargetClkOffset = end.TargetClkOffset(ctx)
		f.TargetClkDelay = end.TargetClkDelay(ctx)
		f.TargetClkInsertionDelay = end.TargetClkInsertionDelay(ctx)
		f.TargetClkUncertainty = end.TargetClkUncertainty(ctx)
		f.TargetClkArrival = end.TargetClkArrival(ctx)
		f.Crpr = end.Crpr(ctx)
		f.ClkSkew = end.ClkSkew(ctx)
		f.SlackNoCrpr = end.SlackNoCrpr(ctx)
	}

	return f
}

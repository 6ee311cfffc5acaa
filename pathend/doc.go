// Package pathend classifies timing search endpoints by their
// terminating constraint and derives every clock-relative quantity a
// report needs: required times, slacks, skew, borrow and the
// common-path pessimism correction.
//
// # What lives here
//
//   - PathEnd — the polymorphic endpoint contract over one realized
//     timing.Path. Generic accessors are total: a variant that lacks a
//     capability returns its "not applicable" sentinel instead of
//     failing.
//   - Seven variants — Unconstrained, Check, DataCheck, LatchCheck,
//     OutputDelay, GatedClock and PathDelay — each bound at
//     construction to the exceptions and check arcs that govern it.
//   - Comparators — Cmp, CmpSlack, CmpArrival and CmpNoCrpr plus the
//     SlackLess / EndLess / NoCrprLess comparator types, giving
//     deterministic total orders for endpoint enumeration.
//   - Reporter / Fields — the evaluated field bundles handed to report
//     formatters, so formatting never re-queries an end.
//
// # Model
//
// A path end owns its constrained path (and, for clock-constrained
// variants, the capture clock path) exclusively; Copy deep-copies the
// owned paths so clones never share mutable state. All derived
// quantities are pure functions of the bound inputs and the Context's
// constraint tables; the single piece of mutable state is the
// per-instance pessimism-correction memo, forced at most once and
// stable thereafter.
//
// Sign conventions: slack is positive when timing is met under either
// analysis view; clock uncertainty tightens requirements, so it enters
// negatively for setup-generic checks and positively for hold-generic
// ones; the pessimism correction relaxes requirements with the opposite
// pairing.
//
// # Quick start
//
//	clk := timing.NewClock("clk", 10)
//	capture := timing.NewPath("reg/CK", timing.Rise, timing.Early, 0, clk.Edge(timing.Rise))
//	data := timing.NewPath("reg/D", timing.Rise, timing.Late, 4, clk.Edge(timing.Rise))
//
//	arc := timing.NewTimingArc("DFF", "CK", "D", timing.RoleSetup)
//	arc.SetMargin(timing.Late, timing.Rise, 1)
//
//	end, err := pathend.NewCheck(data, arc, nil, capture, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx := pathend.NewContext(sdc.New())
//	fmt.Println(end.Slack(ctx)) // 5
package pathend

package pathend

import (
	"strings"

	"github.com/velanor/signoff/timing"
)

// CmpSlack is the three-way slack order: smaller (more violating) slack
// sorts first. Unconstrained ends sort after every constrained end; two
// unconstrained ends fall back to the arrival order, which is the only
// meaningful severity left between them.
func CmpSlack(a, b PathEnd, ctx *Context) int {
	switch {
	case a.IsUnconstrained() && b.IsUnconstrained():
		return CmpArrival(a, b, ctx)
	case a.IsUnconstrained():
		return 1
	case b.IsUnconstrained():
		return -1
	}

	return cmpFloat(a.Slack(ctx), b.Slack(ctx))
}

// CmpNoCrpr orders by slack with the pessimism correction excluded,
// for enumerations that must stay stable while corrections refine.
func CmpNoCrpr(a, b PathEnd, ctx *Context) int {
	switch {
	case a.IsUnconstrained() && b.IsUnconstrained():
		return CmpArrival(a, b, ctx)
	case a.IsUnconstrained():
		return 1
	case b.IsUnconstrained():
		return -1
	}

	return cmpFloat(a.SlackNoCrpr(ctx), b.SlackNoCrpr(ctx))
}

// CmpArrival orders by normalized arrival, worst first: the larger
// arrival under the late view, the smaller under the early view.
func CmpArrival(a, b PathEnd, ctx *Context) int {
	arrivalA := a.DataArrivalTimeOffset(ctx)
	arrivalB := b.DataArrivalTimeOffset(ctx)
	if a.MinMax() == timing.Late {
		return cmpFloat(arrivalB, arrivalA)
	}

	return cmpFloat(arrivalA, arrivalB)
}

// Cmp is the deterministic total order over path ends: severity first
// (slack, worst first), then arrival, then the variant tag, then the
// governing exceptions, then structural identity (endpoint pin and
// transition). The variant tag precedes the exception comparison
// because ExceptPathCmp is only symmetric between ends of the same
// variant. Two distinct ends that tie on every key are equivalent under
// this order; pointer identity never participates, so the order is
// stable across runs.
func Cmp(a, b PathEnd, ctx *Context) int {
	if c := CmpSlack(a, b, ctx); c != 0 {
		return c
	}
	if c := CmpArrival(a, b, ctx); c != 0 {
		return c
	}
	if c := cmpInt(int(a.Type()), int(b.Type())); c != 0 {
		return c
	}
	if c := a.ExceptPathCmp(b, ctx); c != 0 {
		return c
	}
	if c := strings.Compare(a.Vertex(), b.Vertex()); c != 0 {
		return c
	}

	return cmpInt(int(a.Transition()), int(b.Transition()))
}

// Less reports whether a sorts strictly before b under Cmp.
func Less(a, b PathEnd, ctx *Context) bool {
	return Cmp(a, b, ctx) < 0
}

// SlackLess is the comparator for severity-ordered enumeration, with
// the full deterministic order as tiebreak. Use its Less method with
// sort.Slice and friends.
type SlackLess struct {
	ctx *Context
}

// NewSlackLess builds the severity comparator over an analysis context.
func NewSlackLess(ctx *Context) SlackLess { return SlackLess{ctx: ctx} }

// Less reports whether a sorts before b, worst slack first.
func (l SlackLess) Less(a, b PathEnd) bool {
	if c := CmpSlack(a, b, l.ctx); c != 0 {
		return c < 0
	}

	return Cmp(a, b, l.ctx) < 0
}

// EndLess is the comparator for the full deterministic order.
type EndLess struct {
	ctx *Context
}

// NewEndLess builds the deterministic-order comparator.
func NewEndLess(ctx *Context) EndLess { return EndLess{ctx: ctx} }

// Less reports whether a sorts strictly before b under Cmp.
func (l EndLess) Less(a, b PathEnd) bool { return Less(a, b, l.ctx) }

// NoCrprLess orders by correction-free slack, with the deterministic
// order as tiebreak, so rankings stay stable while pessimism
// corrections refine.
type NoCrprLess struct {
	ctx *Context
}

// NewNoCrprLess builds the correction-free comparator.
func NewNoCrprLess(ctx *Context) NoCrprLess { return NoCrprLess{ctx: ctx} }

// Less reports whether a sorts before b by correction-free slack.
func (l NoCrprLess) Less(a, b PathEnd) bool {
	if c := CmpNoCrpr(a, b, l.ctx); c != 0 {
		return c < 0
	}

	return Cmp(a, b, l.ctx) < 0
}

// cmpFloat is the three-way float order.
func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpInt is the three-way int order.
func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

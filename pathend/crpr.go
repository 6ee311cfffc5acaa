package pathend

import (
	"math"

	"github.com/velanor/signoff/sdc"
	"github.com/velanor/signoff/timing"
)

// checkCrpr computes the common-path pessimism correction between the
// launch path's clock trace and the capture clock path's trace.
//
// The walk starts at the common clock definition root and advances while
// both traces cross the same pin; the pessimism removed is the spread
// between the shared prefix's late and early delays at the deepest
// common pin, taking the minimum of the two late readings and the
// maximum of the two early readings so reconvergent traces never remove
// more than both paths actually share.
//
// The result is signed with respect to the check kind: positive for
// setup-generic roles (it relaxes the requirement), negative for
// hold-generic ones.
func checkCrpr(ctx *Context, path, tgtClkPath *timing.Path, role timing.TimingRole) timing.Crpr {
	if !ctx.Sdc().CrprEnabled() || path == nil || tgtClkPath == nil {
		return 0
	}
	srcEdge, tgtEdge := path.ClkEdge(), tgtClkPath.ClkEdge()
	if srcEdge == nil || tgtEdge == nil {
		return 0
	}
	if ctx.Sdc().CrprMode() == sdc.CrprSameTransition &&
		srcEdge.Transition() != tgtEdge.Transition() {
		return 0
	}
	pessimism := commonPrefixPessimism(path.ClkTrace(), tgtClkPath.ClkTrace())
	if role.GenericRole() == timing.RoleSetup {
		return pessimism
	}

	return -pessimism
}

// commonPrefixPessimism walks two root-first clock tree traces and
// returns the early/late delay spread of their longest common prefix,
// clamped to zero. Zero-length common prefixes remove nothing.
func commonPrefixPessimism(src, tgt []timing.ClkTreeNode) float64 {
	n := len(src)
	if len(tgt) < n {
		n = len(tgt)
	}
	last := -1
	for i := 0; i < n; i++ {
		if src[i].Pin != tgt[i].Pin {
			break
		}
		last = i
	}
	if last < 0 {
		return 0
	}
	late := math.Min(src[last].LateDelay, tgt[last].LateDelay)
	early := math.Max(src[last].EarlyDelay, tgt[last].EarlyDelay)
	if late <= early {
		return 0
	}

	return late - early
}

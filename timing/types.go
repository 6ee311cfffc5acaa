package timing

import "math"

// Time is an absolute instant on the analysis time axis, in library units
// (conventionally nanoseconds).
type Time = float64

// Delay is a signed duration between two instants.
type Delay = float64

// Slack is a timing margin: non-negative means the constraint is met.
type Slack = float64

// Crpr is a common-path pessimism correction, signed with respect to the
// check kind (positive for setup-generic checks, negative for hold-generic).
type Crpr = float64

// Infinity is the "never violated" sentinel used for unconstrained
// required times and degenerate slacks.
var Infinity = math.Inf(1)

// MinMax selects the early (min) or late (max) analysis view of a path.
//
//   - Early — minimum-delay view, used for hold-style analysis.
//   - Late  — maximum-delay view, used for setup-style analysis.
type MinMax int

const (
	// Early selects the minimum-delay analysis view.
	Early MinMax = iota

	// Late selects the maximum-delay analysis view.
	Late
)

// Opposite returns the other analysis view.
func (mm MinMax) Opposite() MinMax {
	if mm == Early {
		return Late
	}

	return Early
}

// Select picks the representative of a and b for this view:
// the minimum under Early, the maximum under Late.
func (mm MinMax) Select(a, b float64) float64 {
	if mm == Early {
		return math.Min(a, b)
	}

	return math.Max(a, b)
}

// String returns "early" or "late".
func (mm MinMax) String() string {
	if mm == Early {
		return "early"
	}

	return "late"
}

// RiseFall identifies the sense of a signal transition.
type RiseFall int

const (
	// Rise is a low-to-high transition.
	Rise RiseFall = iota

	// Fall is a high-to-low transition.
	Fall
)

// Opposite returns the other transition sense.
func (rf RiseFall) Opposite() RiseFall {
	if rf == Rise {
		return Fall
	}

	return Rise
}

// String returns "rise" or "fall".
func (rf RiseFall) String() string {
	if rf == Rise {
		return "rise"
	}

	return "fall"
}

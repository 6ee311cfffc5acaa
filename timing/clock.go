package timing

// Clock is a clock definition: name, period, waveform edge times, and the
// per-view defined insertion delay and uncertainty settings. Clocks are
// built once by the constraint reader and consumed read-only here.
type Clock struct {
	name   string
	period Delay

	// Waveform edge times within the first cycle.
	riseTime Time
	fallTime Time

	insertion [2]Delay

	uncertainty       [2]float64
	uncertaintyExists [2]bool
}

// NewClock creates a clock with the given name and period.
// The default waveform rises at 0 and falls at period/2.
func NewClock(name string, period Delay) *Clock {
	return &Clock{
		name:     name,
		period:   period,
		riseTime: 0,
		fallTime: period / 2,
	}
}

// Name returns the clock name.
func (c *Clock) Name() string { return c.name }

// Period returns the clock period.
func (c *Clock) Period() Delay { return c.period }

// SetWaveform overrides the rise and fall edge times within one cycle.
func (c *Clock) SetWaveform(rise, fall Time) {
	c.riseTime = rise
	c.fallTime = fall
}

// SetInsertionDelay records the defined clock tree insertion delay for
// one analysis view.
func (c *Clock) SetInsertionDelay(mm MinMax, d Delay) { c.insertion[mm] = d }

// InsertionDelay returns the defined insertion delay for the view.
func (c *Clock) InsertionDelay(mm MinMax) Delay { return c.insertion[mm] }

// SetUncertainty records the per-clock uncertainty for one analysis view.
// Zero is a valid setting, distinct from "not configured".
func (c *Clock) SetUncertainty(mm MinMax, u float64) {
	c.uncertainty[mm] = u
	c.uncertaintyExists[mm] = true
}

// Uncertainty returns the per-clock uncertainty for the view and whether
// one was configured.
func (c *Clock) Uncertainty(mm MinMax) (float64, bool) {
	return c.uncertainty[mm], c.uncertaintyExists[mm]
}

// EdgeTime returns the nominal time of the rise or fall edge within the
// first cycle.
func (c *Clock) EdgeTime(rf RiseFall) Time {
	if rf == Rise {
		return c.riseTime
	}

	return c.fallTime
}

// Edge returns the clock's rise or fall edge as a ClockEdge value.
func (c *Clock) Edge(rf RiseFall) *ClockEdge {
	return &ClockEdge{clock: c, rf: rf, time: c.EdgeTime(rf)}
}

// ClockEdge is one edge of a clock waveform. Identity is structural:
// two edges are the same edge when their clock names and transitions
// match, regardless of which Clock pointer produced them.
type ClockEdge struct {
	clock *Clock
	rf    RiseFall
	time  Time
}

// Clock returns the owning clock.
func (e *ClockEdge) Clock() *Clock { return e.clock }

// Transition returns the edge's transition sense.
func (e *ClockEdge) Transition() RiseFall { return e.rf }

// Time returns the nominal edge time within the first cycle.
func (e *ClockEdge) Time() Time { return e.time }

// OppositeEdge returns the other edge of the same waveform.
func (e *ClockEdge) OppositeEdge() *ClockEdge {
	return e.clock.Edge(e.rf.Opposite())
}

// PulseWidth returns the nominal width of the pulse that begins at this
// edge: the time to the opposite edge, wrapped into the next cycle when
// the opposite edge does not follow within the same one.
func (e *ClockEdge) PulseWidth() Delay {
	width := e.OppositeEdge().Time() - e.time
	if width <= 0 {
		width += e.clock.Period()
	}

	return width
}

// Same reports whether o is structurally the same edge: same clock name
// and same transition. Nil edges compare equal only to nil.
func (e *ClockEdge) Same(o *ClockEdge) bool {
	if e == nil || o == nil {
		return e == o
	}

	return e.clock.Name() == o.clock.Name() && e.rf == o.rf
}

// SameClock reports whether both edges belong to the same clock.
func (e *ClockEdge) SameClock(o *ClockEdge) bool {
	if e == nil || o == nil {
		return false
	}

	return e.clock.Name() == o.clock.Name()
}

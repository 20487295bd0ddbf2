package game

// Clock measures the time between frames.
type Clock struct {
	now  func() float64
	last float64
}

// NewClock starts a clock at the current reading of now.
func NewClock(now func() float64) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous Tick (or NewClock).
// A time source that runs backwards yields 0 rather than a negative delta.
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t - c.last
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

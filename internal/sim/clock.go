package sim

// Clock produces the fixed per-frame time step for a tick rate and tracks
// total driven time. The platform layer owns one clock per running game and
// feeds its step into Session.Tick, keeping the simulation independent of
// wall-clock jitter in the terminal event loop.
type Clock struct {
	dt      float64
	elapsed float64
}

// NewClock creates a clock for the given tick rate. Non-positive rates fall
// back to 60 ticks per second.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{dt: 1.0 / float64(tickRate)}
}

// Step advances the clock by one frame and returns the frame's dt in seconds.
func (c *Clock) Step() float64 {
	c.elapsed += c.dt
	return c.dt
}

// DT returns the fixed per-frame step without advancing.
func (c *Clock) DT() float64 {
	return c.dt
}

// Elapsed returns total driven time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

package sim

// Spawner accumulates tick time and signals when a new cow is due. The
// interval is read fresh each tick so difficulty changes take effect
// immediately for not-yet-triggered spawns.
type Spawner struct {
	accum float64
}

// NewSpawner creates a spawner with an empty accumulator.
func NewSpawner() *Spawner {
	return &Spawner{}
}

// Advance adds dt to the accumulator. Returns true when a spawn is due, in
// which case the accumulator resets to zero. At most one spawn is signaled
// per tick, even for a dt spanning several intervals.
func (s *Spawner) Advance(dt, interval float64) bool {
	s.accum += dt
	if s.accum >= interval {
		s.accum = 0
		return true
	}
	return false
}

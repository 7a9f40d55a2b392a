package sim

// CowState identifies where a cow is in its lifecycle. Transitions are
// one-directional except Drowning -> Wandering via a lasso rescue; Dead and
// Safe are terminal and remove the cow from the live set.
type CowState int

const (
	CowWandering CowState = iota
	CowDrowning
	CowDead
	CowSafe
)

// String returns a human-readable name for the cow state.
func (s CowState) String() string {
	switch s {
	case CowWandering:
		return "wandering"
	case CowDrowning:
		return "drowning"
	case CowDead:
		return "dead"
	case CowSafe:
		return "safe"
	default:
		return "unknown"
	}
}

// Cow is a strongly-typed record for one cow's kinematic and lifecycle state.
type Cow struct {
	ID     int
	Pos    Vec2
	Vel    Vec2
	Radius float64
	State  CowState

	// WanderTimer counts up to the wander interval; a heading re-roll resets it.
	WanderTimer float64
	// DrownTimer counts down while drowning; valid only in the Drowning state.
	// It is loaded once at ditch entry and not refreshed if difficulty rises
	// mid-countdown.
	DrownTimer float64
}

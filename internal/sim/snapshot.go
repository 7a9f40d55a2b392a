package sim

// Snapshot is the read-only view of one simulation frame, consumed by the
// rendering layer and by determinism tests. It copies out everything
// observable; mutating a snapshot never touches the live session.
type Snapshot struct {
	Farmer FarmerSnapshot
	Cows   []CowSnapshot
	Gate   GateSnapshot

	Score    int
	Lives    int
	GameOver bool
	Elapsed  float64
	Level    int
}

// FarmerSnapshot is the observable farmer state.
type FarmerSnapshot struct {
	X, Y     float64
	Radius   float64
	Dragging bool
}

// CowSnapshot is the observable state of one live cow.
type CowSnapshot struct {
	ID             int
	X, Y           float64
	Radius         float64
	State          CowState
	DrownRemaining float64 // Meaningful only while drowning
}

// GateSnapshot is the observable gate state.
type GateSnapshot struct {
	State      GateState
	OpenAmount float64
	CenterX    float64
	FullWidth  float64
}

// Snapshot captures the current observable state.
func (s *Session) Snapshot() Snapshot {
	cows := make([]CowSnapshot, 0, s.herd.Len())
	s.herd.Each(func(c *Cow) {
		cs := CowSnapshot{
			ID:     c.ID,
			X:      c.Pos.X,
			Y:      c.Pos.Y,
			Radius: c.Radius,
			State:  c.State,
		}
		if c.State == CowDrowning {
			cs.DrownRemaining = c.DrownTimer
		}
		cows = append(cows, cs)
	})

	return Snapshot{
		Farmer: FarmerSnapshot{
			X:        s.farmer.Pos.X,
			Y:        s.farmer.Pos.Y,
			Radius:   s.farmer.Radius,
			Dragging: s.farmer.Dragging,
		},
		Cows: cows,
		Gate: GateSnapshot{
			State:      s.gate.State(),
			OpenAmount: s.gate.OpenAmount(),
			CenterX:    s.cfg.Gate.CenterX,
			FullWidth:  s.cfg.Gate.FullWidth,
		},
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
		Elapsed:  s.elapsed,
		Level:    s.difficulty.Level(),
	}
}

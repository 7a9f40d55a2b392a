package sim

import "github.com/okarpov/cowherd/internal/config"

// GateState identifies the phase of the fence gate cycle.
type GateState int

const (
	GateClosed GateState = iota
	GateOpening
	GateOpen
	GateClosing
)

// String returns a human-readable name for the gate state.
func (s GateState) String() string {
	switch s {
	case GateClosed:
		return "closed"
	case GateOpening:
		return "opening"
	case GateOpen:
		return "open"
	case GateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Gate is the timer-driven state machine controlling the passable gap in the
// fence. Each state counts a timer down to zero, then advances to the next
// state and reloads the timer with that state's duration. The open amount is
// snapped to exactly 0 or 1 at the zero crossings so floating-point
// accumulation error cannot leave the gate fractionally open forever.
type Gate struct {
	cfg        config.GateConfig
	state      GateState
	timer      float64
	openAmount float64 // 0 = fully closed, 1 = fully open
}

// NewGate creates a gate in the Closed state with the configured initial
// delay, so the first opening happens shortly after session start.
func NewGate(cfg config.GateConfig) *Gate {
	return &Gate{
		cfg:   cfg,
		state: GateClosed,
		timer: cfg.InitialDelay,
	}
}

// Advance moves the gate forward by dt seconds. At most one state transition
// happens per call; leftover time past a zero crossing is not carried into
// the next phase.
func (g *Gate) Advance(dt float64) {
	g.timer -= dt

	switch g.state {
	case GateClosed:
		g.openAmount = 0
		if g.timer <= 0 {
			g.state = GateOpening
			g.timer = g.cfg.OpenDuration
		}
	case GateOpening:
		g.openAmount = clamp01(1 - g.timer/g.cfg.OpenDuration)
		if g.timer <= 0 {
			g.openAmount = 1
			g.state = GateOpen
			g.timer = g.cfg.StayOpenDuration
		}
	case GateOpen:
		g.openAmount = 1
		if g.timer <= 0 {
			g.state = GateClosing
			g.timer = g.cfg.CloseDuration
		}
	case GateClosing:
		g.openAmount = clamp01(g.timer / g.cfg.CloseDuration)
		if g.timer <= 0 {
			g.openAmount = 0
			g.state = GateClosed
			g.timer = g.cfg.StayClosedDuration
		}
	}
}

// State returns the current phase of the gate cycle.
func (g *Gate) State() GateState {
	return g.state
}

// OpenAmount returns the gate opening fraction in [0, 1].
func (g *Gate) OpenAmount() float64 {
	return g.openAmount
}

// Opening returns the current passable width in field units.
func (g *Gate) Opening() float64 {
	return g.cfg.FullWidth * g.openAmount
}

// CanPass reports whether a cow of the given radius fits through the gate at
// horizontal position x. The radius is shrunk by the pass fudge factor, a
// deliberate tolerance so a cow brushing the gate post still slips through.
func (g *Gate) CanPass(x, radius float64) bool {
	opening := g.Opening()
	r := radius * g.cfg.PassFudge
	return x-r >= g.cfg.CenterX-opening/2 && x+r <= g.cfg.CenterX+opening/2
}

package sim

import (
	"testing"

	"github.com/okarpov/cowherd/internal/config"
)

func newTestGate() *Gate {
	return NewGate(config.Default().Gate)
}

func TestGateInitialState(t *testing.T) {
	g := newTestGate()

	if g.State() != GateClosed {
		t.Errorf("New gate should be closed, got %v", g.State())
	}
	if g.OpenAmount() != 0 {
		t.Errorf("Closed gate should have openAmount 0, got %f", g.OpenAmount())
	}
}

func TestGateFirstOpening(t *testing.T) {
	// Default config starts Closed with a 1.0s delay. One 1.0s tick must
	// flip the gate into Opening with a full open timer and a near-zero
	// opening.
	g := newTestGate()
	g.Advance(1.0)

	if g.State() != GateOpening {
		t.Fatalf("Gate should be opening after 1.0s, got %v", g.State())
	}
	if g.OpenAmount() != 0 {
		t.Errorf("Opening should start at openAmount 0, got %f", g.OpenAmount())
	}

	// The open timer was reloaded to the full duration, so reaching fully
	// open takes the whole open_duration from here.
	g.Advance(2.5)
	if g.State() != GateOpen {
		t.Errorf("Gate should be open after the full open duration, got %v", g.State())
	}
	if g.OpenAmount() != 1 {
		t.Errorf("Open gate must snap to exactly 1, got %f", g.OpenAmount())
	}
}

func TestGateCycleClosure(t *testing.T) {
	// Regardless of dt granularity the gate must visit
	// Closed -> Opening -> Open -> Closing -> Closed with no skips, and
	// sit at exactly 0 / exactly 1 in the resting states.
	for _, dt := range []float64{0.016, 0.1, 1.0} {
		g := newTestGate()

		var visited []GateState
		last := g.State()
		visited = append(visited, last)

		// Long enough for the initial delay plus two full cycles at any of
		// the tested granularities.
		steps := int(30.0/dt) + 1
		for i := 0; i < steps; i++ {
			g.Advance(dt)
			if g.State() != last {
				last = g.State()
				visited = append(visited, last)
			}

			switch g.State() {
			case GateClosed:
				if g.OpenAmount() != 0 {
					t.Fatalf("dt=%v: closed gate has openAmount %f", dt, g.OpenAmount())
				}
			case GateOpen:
				if g.OpenAmount() != 1 {
					t.Fatalf("dt=%v: open gate has openAmount %f", dt, g.OpenAmount())
				}
			default:
				if g.OpenAmount() < 0 || g.OpenAmount() > 1 {
					t.Fatalf("dt=%v: openAmount %f outside [0,1]", dt, g.OpenAmount())
				}
			}
		}

		order := []GateState{GateClosed, GateOpening, GateOpen, GateClosing}
		if len(visited) < 5 {
			t.Fatalf("dt=%v: gate only visited %d states", dt, len(visited))
		}
		for i, st := range visited {
			if st != order[i%4] {
				t.Fatalf("dt=%v: visited[%d] = %v, expected %v (sequence %v)", dt, i, st, order[i%4], visited)
			}
		}
	}
}

func TestGateOpenAmountMonotonicWithinPhase(t *testing.T) {
	g := newTestGate()
	g.Advance(1.0) // -> Opening

	prev := g.OpenAmount()
	for g.State() == GateOpening {
		g.Advance(0.1)
		if g.OpenAmount() < prev {
			t.Fatalf("openAmount decreased while opening: %f -> %f", prev, g.OpenAmount())
		}
		prev = g.OpenAmount()
	}
}

func TestGateCanPass(t *testing.T) {
	cfg := config.Default().Gate
	g := NewGate(cfg)

	// Fully closed: nothing fits, not even at dead center.
	if g.CanPass(cfg.CenterX, 1) {
		t.Error("Closed gate should not be passable")
	}

	// Force fully open.
	g.Advance(1.0) // -> Opening
	g.Advance(2.5) // -> Open

	if !g.CanPass(cfg.CenterX, 14) {
		t.Error("Open gate should pass a cow at center")
	}
	if g.CanPass(5, 14) {
		t.Error("Open gate should not pass a cow far outside the opening")
	}

	// The fudge factor shrinks the effective radius: a cow whose true edge
	// pokes past the post still passes as long as 80% of it fits.
	left := cfg.CenterX - cfg.FullWidth/2
	r := 14.0
	x := left + r*0.8 // exactly at the tolerance limit
	if !g.CanPass(x, r) {
		t.Errorf("Cow at x=%f should pass with the fudge tolerance", x)
	}
	if g.CanPass(left+r*0.8-1, r) {
		t.Error("Cow past the tolerance limit should be blocked")
	}
}

package sim

import (
	"fmt"

	"github.com/okarpov/cowherd/internal/config"
)

// Session is the top-level game controller. It owns the score, lives and
// game-over latch, the farmer, the gate and the live herd, and advances all
// of them in a fixed order once per tick.
//
// The session is single-threaded by contract: Tick and the pointer handlers
// must be called from the same goroutine, with pointer events landing between
// ticks. There is no internal locking.
type Session struct {
	cfg config.Config

	rng        *Rand
	gate       *Gate
	difficulty *Difficulty
	spawner    *Spawner
	farmer     *Farmer
	herd       *Herd

	score    int
	lives    int
	elapsed  float64
	gameOver bool

	listener EventListener
}

// NewSession validates the configuration and builds a fresh session. A bad
// configuration is a construction-time failure, never a runtime one.
func NewSession(cfg config.Config, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return &Session{
		cfg:        cfg,
		rng:        NewRand(seed),
		gate:       NewGate(cfg.Gate),
		difficulty: NewDifficulty(cfg.Difficulty),
		spawner:    NewSpawner(),
		farmer:     NewFarmer(cfg.Field, cfg.Farmer),
		herd:       NewHerd(),
		lives:      cfg.Session.StartLives,
	}, nil
}

// SetListener registers the event listener. Pass nil to discard events.
func (s *Session) SetListener(l EventListener) {
	s.listener = l
}

func (s *Session) emit(ev Event) {
	if s.listener != nil {
		s.listener(ev)
	}
}

// Tick advances the simulation by dt seconds. Once the game is over every
// tick is a no-op; the latch never resets within a session.
func (s *Session) Tick(dt float64) {
	if s.gameOver || dt <= 0 {
		return
	}

	s.elapsed += dt
	s.difficulty.Advance(s.elapsed)
	s.gate.Advance(dt)

	if s.spawner.Advance(dt, s.difficulty.SpawnInterval()) {
		s.spawnCow()
	}

	// Walk a snapshot of ids so removals cannot skip a cow mid-tick.
	for _, id := range s.herd.IDs() {
		c := s.herd.Get(id)
		if c == nil {
			continue
		}
		switch c.State {
		case CowWandering:
			s.updateWandering(c, dt)
		case CowDrowning:
			s.updateDrowning(c, dt)
		}
		if c.State == CowDead || c.State == CowSafe {
			s.herd.Remove(c.ID)
		}
	}
}

// spawnCow creates one cow at a random x just below the fence, drifting down
// toward the ditch at the current difficulty speed.
func (s *Session) spawnCow() {
	r := s.cfg.Cow.Radius
	cow := &Cow{
		Pos: Vec2{
			X: s.rng.FloatRange(2*r, s.cfg.Field.Width-2*r),
			Y: s.cfg.Field.FenceY - 2*r,
		},
		Vel: Vec2{
			X: s.rng.FloatRange(-s.cfg.Cow.SpawnVXMax, s.cfg.Cow.SpawnVXMax),
			Y: -s.difficulty.CowSpeed(),
		},
		Radius: r,
		State:  CowWandering,
	}
	s.herd.Add(cow)
}

// PointerDown handles a press at field point (x, y). A lasso rescue is tried
// first; if no drowning cow is in reach the press may start a farmer drag.
// Out-of-field coordinates are clamped, never rejected.
func (s *Session) PointerDown(x, y float64) {
	if s.gameOver {
		return
	}
	p := s.clampPoint(Vec2{x, y})

	if s.farmer.LassoReady() {
		if cow := s.firstDrowningCowNear(p); cow != nil {
			s.rescue(cow)
			return
		}
	}

	s.farmer.StartDrag(p)
}

// PointerMove handles pointer motion, dragging the farmer when a drag is
// active.
func (s *Session) PointerMove(x, y float64) {
	if s.gameOver {
		return
	}
	s.farmer.Drag(s.clampPoint(Vec2{x, y}))
}

// PointerUp ends any active drag.
func (s *Session) PointerUp() {
	s.farmer.EndDrag()
}

// NudgeFarmer moves the farmer by a field-space delta, clamped to bounds.
// Keyboard fallback for terminals without pointer reporting.
func (s *Session) NudgeFarmer(dx, dy float64) {
	if s.gameOver {
		return
	}
	s.farmer.MoveTo(s.farmer.Pos.Add(Vec2{dx, dy}))
}

func (s *Session) clampPoint(p Vec2) Vec2 {
	return Vec2{
		X: clampF(p.X, 0, s.cfg.Field.Width),
		Y: clampF(p.Y, 0, s.cfg.Field.Height),
	}
}

// firstDrowningCowNear returns the first drowning cow within lasso reach of
// p, in herd iteration order. First match wins; there is deliberately no
// nearest-cow tie-break.
func (s *Session) firstDrowningCowNear(p Vec2) *Cow {
	var found *Cow
	s.herd.Each(func(c *Cow) {
		if found == nil && c.State == CowDrowning && Dist(p, c.Pos) <= s.cfg.Cow.LassoScale*c.Radius {
			found = c
		}
	})
	return found
}

// rescue pulls a drowning cow out of the ditch: the drown timer is cancelled,
// the cow is reborn wandering at a random mid-field spot with a fresh
// heading, and the rescue bonus is awarded.
func (s *Session) rescue(c *Cow) {
	c.State = CowWandering
	c.DrownTimer = 0
	c.WanderTimer = 0
	c.Pos = Vec2{
		X: s.rng.FloatRange(s.cfg.Session.RescueXMin*s.cfg.Field.Width, s.cfg.Session.RescueXMax*s.cfg.Field.Width),
		Y: (s.cfg.Field.DitchTop + s.cfg.Field.FenceY) / 2,
	}
	c.Vel = Vec2{
		X: s.rng.FloatRange(-s.cfg.Cow.SpawnVXMax, s.cfg.Cow.SpawnVXMax),
		Y: -s.difficulty.CowSpeed(),
	}
	s.score += s.cfg.Session.RescueBonus
	s.emit(CowRescuedEvent{CowID: c.ID, Bonus: s.cfg.Session.RescueBonus})
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Elapsed returns total simulated time in seconds.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// Level returns the current difficulty level.
func (s *Session) Level() int {
	return s.difficulty.Level()
}

package sim

// Cow lifecycle updates. Wandering cows meander under periodic heading
// re-rolls and the farmer's herding repulsion; the fence blocks them unless
// the gate opening fits, and the ditch claims any cow that strays too low.

// Vertical jitter added to the difficulty speed on each heading re-roll.
// Biased downward so the herd keeps drifting toward the ditch.
const (
	wanderVYJitterLo = -10.0
	wanderVYJitterHi = 5.0
)

// updateWandering advances one wandering cow by dt.
func (s *Session) updateWandering(c *Cow, dt float64) {
	field := s.cfg.Field

	// Periodic heading re-roll keeps the meander alive.
	c.WanderTimer += dt
	if c.WanderTimer > s.cfg.Cow.WanderInterval {
		c.WanderTimer = 0
		c.Vel.X = s.rng.FloatRange(-s.cfg.Cow.WanderVXMax, s.cfg.Cow.WanderVXMax)
		c.Vel.Y = -s.difficulty.CowSpeed() + s.rng.FloatRange(wanderVYJitterLo, wanderVYJitterHi)
		if s.rng.Chance(s.cfg.Cow.MooChance) {
			s.emit(CowMooedEvent{CowID: c.ID})
		}
	}

	// Herding repulsion: the closer the farmer, the harder the push away.
	// A zero distance contributes nothing rather than a non-finite velocity.
	away := c.Pos.Sub(s.farmer.Pos)
	if d := away.Len(); d > 0 && d < s.cfg.Herding.Radius {
		strength := s.cfg.Herding.Force * (1 - d/s.cfg.Herding.Radius)
		c.Vel = c.Vel.Add(away.Scale(strength * s.cfg.Herding.Scale / d))
	}

	next := c.Pos.Add(c.Vel.Scale(dt))

	// Side walls: clamp and bounce.
	if next.X < c.Radius {
		next.X = c.Radius
		c.Vel.X = abs(c.Vel.X)
	} else if next.X > field.Width-c.Radius {
		next.X = field.Width - c.Radius
		c.Vel.X = -abs(c.Vel.X)
	}

	// Fence crossing. Live cows are always at or below the fence line, so
	// reaching it this tick means a crossing attempt: through the gate if the
	// opening fits, otherwise a damped bounce back into the field.
	if next.Y >= field.FenceY-c.Radius {
		if s.gate.CanPass(next.X, c.Radius) {
			c.State = CowSafe
			s.score += s.cfg.Session.SafeBonus
			s.emit(CowReachedSafetyEvent{CowID: c.ID, Bonus: s.cfg.Session.SafeBonus})
			return
		}
		next.Y = field.FenceY - c.Radius
		c.Vel.Y = -abs(c.Vel.Y) * s.cfg.Cow.FenceBounce
	}

	c.Pos = next

	// Ditch crossing.
	if c.Pos.Y <= field.DitchTop+c.Radius {
		s.enterDrowning(c)
	}
}

// enterDrowning drops a cow into the ditch. The drowning duration is captured
// once here; a difficulty increase mid-countdown does not shorten the window
// for a cow already in the water.
func (s *Session) enterDrowning(c *Cow) {
	c.State = CowDrowning
	c.Pos.Y = s.cfg.Field.DitchTop / 2
	c.Vel = Vec2{}
	c.DrownTimer = s.difficulty.DrowningDuration()
	s.emit(SplashOccurredEvent{CowID: c.ID})
}

// updateDrowning counts a drowning cow toward its end. Expiry costs a life
// and, on the last life, latches the game over.
func (s *Session) updateDrowning(c *Cow, dt float64) {
	c.DrownTimer -= dt
	if c.DrownTimer > 0 {
		return
	}

	c.State = CowDead
	if s.lives > 0 {
		s.lives--
	}
	s.emit(CowDrownedEvent{CowID: c.ID, LivesRemaining: s.lives})

	if s.lives == 0 && !s.gameOver {
		s.gameOver = true
		s.emit(GameOverEvent{FinalScore: s.score})
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package sim

import (
	"math"

	"github.com/okarpov/cowherd/internal/config"
)

// Difficulty derives spawn interval, cow speed and drowning duration from
// elapsed play time. The level steps up once per configured interval and is
// latched so it never moves backwards.
type Difficulty struct {
	cfg   config.DifficultyConfig
	level int
}

// NewDifficulty creates a scheduler at level 0.
func NewDifficulty(cfg config.DifficultyConfig) *Difficulty {
	return &Difficulty{cfg: cfg}
}

// Advance recomputes the level from elapsed time. The level only ever
// increases.
func (d *Difficulty) Advance(elapsed float64) {
	lvl := int(math.Floor(elapsed / d.cfg.LevelInterval))
	if lvl > d.level {
		d.level = lvl
	}
}

// Level returns the current difficulty level.
func (d *Difficulty) Level() int {
	return d.level
}

// SpawnInterval returns seconds between cow spawns, floored so spawning never
// becomes a flood.
func (d *Difficulty) SpawnInterval() float64 {
	return math.Max(d.cfg.MinSpawnInterval, d.cfg.BaseSpawnInterval-float64(d.level)*d.cfg.SpawnIntervalStep)
}

// CowSpeed returns the downward drift speed magnitude for newly spawned or
// re-rolled cow headings.
func (d *Difficulty) CowSpeed() float64 {
	return d.cfg.BaseCowSpeed + float64(d.level)*d.cfg.CowSpeedStep
}

// DrowningDuration returns how long a cow survives in the ditch, floored so a
// rescue always has a window.
func (d *Difficulty) DrowningDuration() float64 {
	return math.Max(d.cfg.MinDrowningDuration, d.cfg.BaseDrowningDuration-float64(d.level)*d.cfg.DrowningDurationStep)
}

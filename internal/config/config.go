// Package config provides YAML-based game configuration loading and
// validation for Cowherd.
package config

import "fmt"

// Config contains all tuning parameters for the Cowherd simulation.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Farmer     FarmerConfig     `yaml:"farmer"`
	Cow        CowConfig        `yaml:"cow"`
	Gate       GateConfig       `yaml:"gate"`
	Herding    HerdingConfig    `yaml:"herding"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Session    SessionConfig    `yaml:"session"`
}

// FieldConfig defines the playfield geometry, in field units with y up.
// The ditch spans [0, DitchTop]; the fence with its gate sits at FenceY.
type FieldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	DitchTop float64 `yaml:"ditch_top"`
	FenceY   float64 `yaml:"fence_y"`
}

// FarmerConfig defines the player avatar.
type FarmerConfig struct {
	Radius     float64 `yaml:"radius"`
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	GrabScale  float64 `yaml:"grab_scale"`  // Drag pick-up radius as a multiple of Radius
	LassoRange float64 `yaml:"lasso_range"` // Max distance above the ditch for lasso eligibility
}

// CowConfig defines per-cow behavior parameters.
type CowConfig struct {
	Radius         float64 `yaml:"radius"`
	WanderInterval float64 `yaml:"wander_interval"` // Seconds between heading re-rolls
	WanderVXMax    float64 `yaml:"wander_vx_max"`   // Re-rolled vx drawn from [-max, max]
	SpawnVXMax     float64 `yaml:"spawn_vx_max"`    // Initial vx drawn from [-max, max]
	MooChance      float64 `yaml:"moo_chance"`      // Probability of a moo on each re-roll
	FenceBounce    float64 `yaml:"fence_bounce"`    // Velocity retained after a fence bounce
	LassoScale     float64 `yaml:"lasso_scale"`     // Lasso hit radius as a multiple of Radius
}

// GateConfig defines the fence gate state machine.
type GateConfig struct {
	CenterX            float64 `yaml:"center_x"`
	FullWidth          float64 `yaml:"full_width"`
	OpenDuration       float64 `yaml:"open_duration"`
	CloseDuration      float64 `yaml:"close_duration"`
	StayOpenDuration   float64 `yaml:"stay_open_duration"`
	StayClosedDuration float64 `yaml:"stay_closed_duration"`
	InitialDelay       float64 `yaml:"initial_delay"` // Time in Closed before the first opening
	PassFudge          float64 `yaml:"pass_fudge"`    // Radius fraction used in the passability check
}

// HerdingConfig defines the repulsive force the farmer exerts on nearby cows.
type HerdingConfig struct {
	Radius float64 `yaml:"radius"`
	Force  float64 `yaml:"force"`
	Scale  float64 `yaml:"scale"`
}

// DifficultyConfig defines how parameters scale with the difficulty level.
// The level increases by one every LevelInterval seconds of play.
type DifficultyConfig struct {
	LevelInterval        float64 `yaml:"level_interval"`
	BaseSpawnInterval    float64 `yaml:"base_spawn_interval"`
	SpawnIntervalStep    float64 `yaml:"spawn_interval_step"`
	MinSpawnInterval     float64 `yaml:"min_spawn_interval"`
	BaseCowSpeed         float64 `yaml:"base_cow_speed"`
	CowSpeedStep         float64 `yaml:"cow_speed_step"`
	BaseDrowningDuration float64 `yaml:"base_drowning_duration"`
	DrowningDurationStep float64 `yaml:"drowning_duration_step"`
	MinDrowningDuration  float64 `yaml:"min_drowning_duration"`
}

// SessionConfig defines scoring and lives.
type SessionConfig struct {
	StartLives  int     `yaml:"start_lives"`
	SafeBonus   int     `yaml:"safe_bonus"`
	RescueBonus int     `yaml:"rescue_bonus"`
	RescueXMin  float64 `yaml:"rescue_x_min"` // Respawn x range after a rescue, as field fractions
	RescueXMax  float64 `yaml:"rescue_x_max"`
}

// Validate checks the configuration for programmer/config errors.
// Out-of-range values here are construction-time failures, not something the
// simulation recovers from at runtime.
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field dimensions must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.Field.DitchTop <= 0 || c.Field.DitchTop >= c.Field.FenceY {
		return fmt.Errorf("config: ditch_top must lie in (0, fence_y), got %g", c.Field.DitchTop)
	}
	if c.Field.FenceY >= c.Field.Height {
		return fmt.Errorf("config: fence_y must be below field height, got %g", c.Field.FenceY)
	}
	if c.Farmer.Radius <= 0 || c.Cow.Radius <= 0 {
		return fmt.Errorf("config: entity radii must be positive")
	}
	for name, d := range map[string]float64{
		"gate.open_duration":        c.Gate.OpenDuration,
		"gate.close_duration":       c.Gate.CloseDuration,
		"gate.stay_open_duration":   c.Gate.StayOpenDuration,
		"gate.stay_closed_duration": c.Gate.StayClosedDuration,
		"cow.wander_interval":       c.Cow.WanderInterval,
		"difficulty.level_interval": c.Difficulty.LevelInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("config: %s must be positive, got %g", name, d)
		}
	}
	if c.Gate.FullWidth <= 0 {
		return fmt.Errorf("config: gate.full_width must be positive, got %g", c.Gate.FullWidth)
	}
	if c.Gate.CenterX <= 0 || c.Gate.CenterX >= c.Field.Width {
		return fmt.Errorf("config: gate.center_x must lie inside the field, got %g", c.Gate.CenterX)
	}
	if c.Difficulty.MinSpawnInterval <= 0 || c.Difficulty.MinDrowningDuration <= 0 {
		return fmt.Errorf("config: difficulty floors must be positive")
	}
	if c.Session.StartLives <= 0 {
		return fmt.Errorf("config: session.start_lives must be positive, got %d", c.Session.StartLives)
	}
	if c.Session.RescueXMin < 0 || c.Session.RescueXMax > 1 || c.Session.RescueXMin >= c.Session.RescueXMax {
		return fmt.Errorf("config: rescue x range must satisfy 0 <= min < max <= 1")
	}
	return nil
}

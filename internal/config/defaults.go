package config

import (
	_ "embed"
)

//go:embed defaults/cowherd.yaml
var defaultYAML []byte

// Default returns the built-in Cowherd configuration. The numbers mirror the
// original tuning: a 400x640 field, the ditch spanning the bottom 80 units,
// the fence at 560 with a 120-unit gate centered on mid-field.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:    400,
			Height:   640,
			DitchTop: 80,
			FenceY:   560,
		},
		Farmer: FarmerConfig{
			Radius:     20,
			StartX:     200,
			StartY:     300,
			GrabScale:  2.5,
			LassoRange: 100,
		},
		Cow: CowConfig{
			Radius:         14,
			WanderInterval: 1.5,
			WanderVXMax:    20,
			SpawnVXMax:     15,
			MooChance:      0.15,
			FenceBounce:    0.5,
			LassoScale:     3.0,
		},
		Gate: GateConfig{
			CenterX:            200,
			FullWidth:          120,
			OpenDuration:       2.5,
			CloseDuration:      2.5,
			StayOpenDuration:   3.0,
			StayClosedDuration: 3.0,
			InitialDelay:       1.0,
			PassFudge:          0.8,
		},
		Herding: HerdingConfig{
			Radius: 70,
			Force:  3.0,
			Scale:  60,
		},
		Difficulty: DifficultyConfig{
			LevelInterval:        30,
			BaseSpawnInterval:    2.5,
			SpawnIntervalStep:    0.3,
			MinSpawnInterval:     0.8,
			BaseCowSpeed:         40,
			CowSpeedStep:         8,
			BaseDrowningDuration: 10.0,
			DrowningDurationStep: 1.5,
			MinDrowningDuration:  1.0,
		},
		Session: SessionConfig{
			StartLives:  3,
			SafeBonus:   1,
			RescueBonus: 3,
			RescueXMin:  0.2,
			RescueXMax:  0.8,
		},
	}
}

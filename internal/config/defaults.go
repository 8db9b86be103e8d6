package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:         0.015,
			JumpImpulse:     0.25,
			GroundY:         0.5,
			AirborneEpsilon: 0.1,
			BounceThreshold: 0.1,
			BounceDamping:   0.2,
			HitRadiusSq:     1.0,
		},
		Lanes: LanesConfig{
			Positions:       []float64{-3, 0, 3},
			TransitionSpeed: 0.2,
			SnapEpsilon:     0.01,
		},
		Spawn: SpawnConfig{
			Distance:          20,
			ExitDistance:      1,
			BaseSpeed:         0.12,
			ObstacleRate:      0.015,
			CollectibleRate:   0.015,
			PowerUpRate:       0.003,
			ObstacleHeight:    0.5,
			CollectibleHeight: 1.0,
			PowerUpHeight:     1.5,
		},
		Scoring: ScoringConfig{
			PickupValue:        10,
			ComboTimeout:       2 * time.Second,
			BonusPowerUpChance: 0.2,
		},
		Effects: EffectsConfig{
			PowerUpDuration:    5 * time.Second,
			InvincibleDuration: 3 * time.Second,
		},
		Health: HealthConfig{
			Max:            100,
			ObstacleDamage: 20,
		},
		Progression: ProgressionConfig{
			LevelUpScore:       1000,
			SpeedIncrement:     0.05,
			MaxLevelUpsPerTick: 0,
		},
		Timing: TimingConfig{
			NominalRate:   60,
			MaxFrameDelta: 250 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

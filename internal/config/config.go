// Package config provides YAML-based runner configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// LaneCount is the fixed number of lanes the player can occupy.
const LaneCount = 3

// RunnerConfig contains all tunables of the runner simulation.
type RunnerConfig struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Lanes       LanesConfig       `yaml:"lanes"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Effects     EffectsConfig     `yaml:"effects"`
	Health      HealthConfig      `yaml:"health"`
	Progression ProgressionConfig `yaml:"progression"`
	Timing      TimingConfig      `yaml:"timing"`
}

// PhysicsConfig defines vertical motion and collision parameters.
// Velocities are in units per nominal tick (see TimingConfig.NominalRate).
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	GroundY         float64 `yaml:"ground_y"`
	AirborneEpsilon float64 `yaml:"airborne_epsilon"` // Max distance from ground that still counts as grounded
	BounceThreshold float64 `yaml:"bounce_threshold"` // Landing speed above which the player bounces
	BounceDamping   float64 `yaml:"bounce_damping"`
	HitRadiusSq     float64 `yaml:"hit_radius_sq"` // Squared player/entity distance that counts as contact
}

// LanesConfig defines lane geometry and lateral motion.
type LanesConfig struct {
	Positions       []float64 `yaml:"positions"`        // Lateral coordinate per lane, left to right
	TransitionSpeed float64   `yaml:"transition_speed"` // Fraction of remaining distance covered per tick
	SnapEpsilon     float64   `yaml:"snap_epsilon"`
}

// SpawnConfig defines where entities appear and how often.
// Rates are per-nominal-tick probabilities.
type SpawnConfig struct {
	Distance          float64 `yaml:"distance"`
	ExitDistance      float64 `yaml:"exit_distance"` // Distance behind the player at which entities are pruned
	BaseSpeed         float64 `yaml:"base_speed"`
	ObstacleRate      float64 `yaml:"obstacle_rate"`
	CollectibleRate   float64 `yaml:"collectible_rate"`
	PowerUpRate       float64 `yaml:"powerup_rate"`
	ObstacleHeight    float64 `yaml:"obstacle_height"`
	CollectibleHeight float64 `yaml:"collectible_height"`
	PowerUpHeight     float64 `yaml:"powerup_height"`
}

// ScoringConfig defines pickup value and combo decay.
type ScoringConfig struct {
	PickupValue        int           `yaml:"pickup_value"`
	ComboTimeout       time.Duration `yaml:"combo_timeout"`
	BonusPowerUpChance float64       `yaml:"bonus_powerup_chance"`
}

// EffectsConfig defines the status window durations.
type EffectsConfig struct {
	PowerUpDuration    time.Duration `yaml:"powerup_duration"`
	InvincibleDuration time.Duration `yaml:"invincible_duration"`
}

// HealthConfig defines player health.
type HealthConfig struct {
	Max            int `yaml:"max"`
	ObstacleDamage int `yaml:"obstacle_damage"`
}

// ProgressionConfig defines level thresholds and speed scaling.
type ProgressionConfig struct {
	LevelUpScore       int     `yaml:"level_up_score"`
	SpeedIncrement     float64 `yaml:"speed_increment"`
	MaxLevelUpsPerTick int     `yaml:"max_level_ups_per_tick"` // 0 = unlimited
}

// TimingConfig defines the frame-rate normalisation.
type TimingConfig struct {
	NominalRate   float64       `yaml:"nominal_rate"`    // Updates per second all per-tick values are tuned for
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // Longer frame gaps are clamped
}

// Validate checks the config for values the simulation cannot work with.
func (c RunnerConfig) Validate() error {
	if len(c.Lanes.Positions) != LaneCount {
		return fmt.Errorf("%w: lanes.positions needs %d entries, got %d", ErrInvalid, LaneCount, len(c.Lanes.Positions))
	}
	for i := 1; i < len(c.Lanes.Positions); i++ {
		if c.Lanes.Positions[i] <= c.Lanes.Positions[i-1] {
			return fmt.Errorf("%w: lanes.positions must be increasing", ErrInvalid)
		}
	}
	if c.Lanes.TransitionSpeed <= 0 || c.Lanes.TransitionSpeed > 1 {
		return fmt.Errorf("%w: lanes.transition_speed must be in (0, 1]", ErrInvalid)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalid)
	}
	if c.Physics.HitRadiusSq <= 0 {
		return fmt.Errorf("%w: physics.hit_radius_sq must be positive", ErrInvalid)
	}
	if c.Spawn.Distance <= 0 || c.Spawn.BaseSpeed <= 0 {
		return fmt.Errorf("%w: spawn.distance and spawn.base_speed must be positive", ErrInvalid)
	}
	if c.Spawn.ExitDistance < 0 {
		return fmt.Errorf("%w: spawn.exit_distance must not be negative", ErrInvalid)
	}
	for name, rate := range map[string]float64{
		"obstacle_rate":    c.Spawn.ObstacleRate,
		"collectible_rate": c.Spawn.CollectibleRate,
		"powerup_rate":     c.Spawn.PowerUpRate,
	} {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%w: spawn.%s must be in [0, 1]", ErrInvalid, name)
		}
	}
	if c.Scoring.PickupValue <= 0 {
		return fmt.Errorf("%w: scoring.pickup_value must be positive", ErrInvalid)
	}
	if c.Scoring.ComboTimeout <= 0 {
		return fmt.Errorf("%w: scoring.combo_timeout must be positive", ErrInvalid)
	}
	if c.Scoring.BonusPowerUpChance < 0 || c.Scoring.BonusPowerUpChance > 1 {
		return fmt.Errorf("%w: scoring.bonus_powerup_chance must be in [0, 1]", ErrInvalid)
	}
	if c.Effects.PowerUpDuration <= 0 || c.Effects.InvincibleDuration <= 0 {
		return fmt.Errorf("%w: effect durations must be positive", ErrInvalid)
	}
	if c.Effects.InvincibleDuration > c.Effects.PowerUpDuration {
		return fmt.Errorf("%w: effects.invincible_duration must not exceed effects.powerup_duration", ErrInvalid)
	}
	if c.Health.Max <= 0 || c.Health.ObstacleDamage < 0 {
		return fmt.Errorf("%w: health.max must be positive and health.obstacle_damage non-negative", ErrInvalid)
	}
	if c.Progression.LevelUpScore <= 0 {
		return fmt.Errorf("%w: progression.level_up_score must be positive", ErrInvalid)
	}
	if c.Progression.MaxLevelUpsPerTick < 0 {
		return fmt.Errorf("%w: progression.max_level_ups_per_tick must not be negative", ErrInvalid)
	}
	if c.Timing.NominalRate <= 0 {
		return fmt.Errorf("%w: timing.nominal_rate must be positive", ErrInvalid)
	}
	return nil
}

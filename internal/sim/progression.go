package sim

import "github.com/vovakirdan/lane-runner/internal/config"

// Progression derives level and world speed from cumulative score.
type Progression struct {
	threshold  int
	increment  float64
	maxPerTick int

	level int
	speed float64
}

// NewProgression starts at level 1 with speed multiplier 1.
func NewProgression(cfg config.ProgressionConfig) Progression {
	return Progression{
		threshold:  cfg.LevelUpScore,
		increment:  cfg.SpeedIncrement,
		maxPerTick: cfg.MaxLevelUpsPerTick,
		level:      1,
		speed:      1,
	}
}

// Advance levels up once per threshold crossed and returns each new level.
// A score jump across several thresholds yields several level-ups in one call
// unless capped by MaxLevelUpsPerTick.
func (p *Progression) Advance(score int) []int {
	var levels []int
	for score >= p.level*p.threshold {
		if p.maxPerTick > 0 && len(levels) >= p.maxPerTick {
			break
		}
		p.level++
		p.speed += p.increment
		levels = append(levels, p.level)
	}
	return levels
}

// Level returns the current level (>= 1).
func (p *Progression) Level() int { return p.level }

// SpeedMultiplier returns the current world speed multiplier.
func (p *Progression) SpeedMultiplier() float64 { return p.speed }

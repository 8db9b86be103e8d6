package sim

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Rand is the random source used for spawning and pickup bonuses.
// *rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded Rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not security
}

// Spawner creates new entities each tick.
type Spawner struct {
	cfg config.SpawnConfig
	rng Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.SpawnConfig, rng Rand) Spawner {
	return Spawner{cfg: cfg, rng: rng}
}

// Spawn rolls once per category, in kind order, and adds at most one entity
// of each to reg. step is the tick delta in nominal ticks, which keeps spawn
// density independent of the frame rate.
func (s *Spawner) Spawn(reg *Registry, step float64, tick uint64) []Entity {
	var spawned []Entity
	for kind := KindObstacle; kind < kindCount; kind++ {
		if s.rng.Float64() >= s.rate(kind)*step {
			continue
		}

		variants := variantsByKind[kind]
		e := reg.Add(Entity{
			Kind:      kind,
			Lane:      Lane(s.rng.Intn(config.LaneCount)),
			Variant:   variants[s.rng.Intn(len(variants))],
			Height:    s.height(kind),
			Distance:  s.cfg.Distance,
			SpawnTick: tick,
		})
		spawned = append(spawned, e)
	}
	return spawned
}

func (s *Spawner) rate(kind Kind) float64 {
	switch kind {
	case KindObstacle:
		return s.cfg.ObstacleRate
	case KindCollectible:
		return s.cfg.CollectibleRate
	case KindPowerUp:
		return s.cfg.PowerUpRate
	default:
		return 0
	}
}

func (s *Spawner) height(kind Kind) float64 {
	switch kind {
	case KindObstacle:
		return s.cfg.ObstacleHeight
	case KindCollectible:
		return s.cfg.CollectibleHeight
	case KindPowerUp:
		return s.cfg.PowerUpHeight
	default:
		return 0
	}
}

package autopilot

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/sim"
)

// Look-ahead tuning for the dodger, in world units of forward distance.
const (
	dodgeHorizon   = 6.0 // Obstacles closer than this make a lane unsafe
	jumpWindowNear = 1.6 // Jump when the blocking obstacle is inside this band
	jumpWindowFar  = 2.4
	seekHorizon    = 12.0 // Collectibles closer than this attract the dodger
)

func init() {
	Register("idle", "never acts; useful as a baseline", func(int64) Policy {
		return idle{}
	})
	Register("random", "random lane changes and jumps", func(seed int64) Policy {
		return &random{rng: rand.New(rand.NewSource(seed))} //#nosec G404 -- gameplay randomness
	})
	Register("dodger", "avoids obstacles, chases collectibles, jumps when boxed in", func(int64) Policy {
		return dodger{}
	})
}

type idle struct{}

func (idle) Name() string                     { return "idle" }
func (idle) Decide(sim.Snapshot) []sim.Intent { return nil }

// random presses keys with fixed per-tick probabilities.
type random struct {
	rng *rand.Rand
}

func (*random) Name() string { return "random" }

func (r *random) Decide(sim.Snapshot) []sim.Intent {
	var intents []sim.Intent
	switch roll := r.rng.Float64(); {
	case roll < 0.02:
		intents = append(intents, sim.IntentMoveLeft)
	case roll < 0.04:
		intents = append(intents, sim.IntentMoveRight)
	}
	if r.rng.Float64() < 0.01 {
		intents = append(intents, sim.IntentJump)
	}
	return intents
}

// dodger is a greedy lane picker. It holds no state between ticks.
type dodger struct{}

func (dodger) Name() string { return "dodger" }

func (dodger) Decide(snap sim.Snapshot) []sim.Intent {
	p := snap.Player
	threat := nearest(snap.Entities, sim.KindObstacle, dodgeHorizon)

	if snap.Invincibility.Active {
		// Obstacles pass through; only chase collectibles
		return steer(p.Lane, bestCollectibleLane(snap, p.Lane, nil))
	}

	if d := threat[p.Lane]; d < dodgeHorizon {
		for _, lane := range []sim.Lane{p.Lane - 1, p.Lane + 1} {
			if lane.Valid() && threat[lane] >= dodgeHorizon {
				return steer(p.Lane, lane)
			}
		}
		// Boxed in: jump when the obstacle is close enough to clear it
		if d > jumpWindowNear && d < jumpWindowFar && !p.Airborne {
			return []sim.Intent{sim.IntentJump}
		}
		return nil
	}

	return steer(p.Lane, bestCollectibleLane(snap, p.Lane, &threat))
}

// nearest returns, per lane, the smallest non-negative distance of an
// entity of kind closer than horizon, or horizon if there is none.
func nearest(entities []sim.Entity, kind sim.Kind, horizon float64) [3]float64 {
	d := [3]float64{horizon, horizon, horizon}
	for _, e := range entities {
		if e.Kind != kind || e.Distance < 0 || !e.Lane.Valid() {
			continue
		}
		d[e.Lane] = math.Min(d[e.Lane], e.Distance)
	}
	return d
}

// bestCollectibleLane picks the adjacent or current lane with the closest
// collectible, skipping lanes with a nearby obstacle when threat is given.
func bestCollectibleLane(snap sim.Snapshot, current sim.Lane, threat *[3]float64) sim.Lane {
	coins := nearest(snap.Entities, sim.KindCollectible, seekHorizon)
	best, bestD := current, coins[current]
	for _, lane := range []sim.Lane{current - 1, current + 1} {
		if !lane.Valid() {
			continue
		}
		if threat != nil && threat[lane] < dodgeHorizon {
			continue
		}
		if coins[lane] < bestD {
			best, bestD = lane, coins[lane]
		}
	}
	return best
}

func steer(from, to sim.Lane) []sim.Intent {
	switch {
	case to < from:
		return []sim.Intent{sim.IntentMoveLeft}
	case to > from:
		return []sim.Intent{sim.IntentMoveRight}
	default:
		return nil
	}
}

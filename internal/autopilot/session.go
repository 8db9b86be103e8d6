package autopilot

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/lane-runner/internal/sim"
)

// Session plays one headless run: the policy decides, the simulation
// ticks on a fixed step derived from TickRate.
type Session struct {
	Sim      *sim.Simulation
	Policy   Policy
	TickRate int           // Ticks per simulated second
	Limit    time.Duration // Simulated time cap; 0 plays until game over

	// OnEvent, if set, sees every event in emission order.
	OnEvent func(sim.Event)
}

// Result summarizes a finished session.
type Result struct {
	Ticks        uint64
	Elapsed      time.Duration
	Score        int
	HighestCombo int
	Level        int
	Health       int
	GameOver     bool
	Events       map[sim.EventKind]int
}

// Run starts the simulation and ticks it until game over, the time limit
// or ctx is done. On cancellation it returns the partial result and
// ctx.Err().
func (s Session) Run(ctx context.Context) (Result, error) {
	if s.Sim == nil || s.Policy == nil {
		return Result{}, errors.New("autopilot: session needs a simulation and a policy")
	}
	rate := s.TickRate
	if rate <= 0 {
		rate = 60
	}

	res := Result{Events: make(map[sim.EventKind]int)}
	s.Sim.Start(0)

	var err error
	for tick := uint64(1); ; tick++ {
		if err = ctx.Err(); err != nil {
			break
		}

		now := time.Duration(tick) * time.Second / time.Duration(rate)
		if s.Limit > 0 && now > s.Limit {
			break
		}

		for _, e := range s.Sim.Tick(s.Policy.Decide(s.Sim.Snapshot()), now) {
			res.Events[e.Kind]++
			if s.OnEvent != nil {
				s.OnEvent(e)
			}
		}
		res.Ticks = tick

		if s.Sim.Phase() == sim.PhaseGameOver {
			break
		}
	}

	res.Elapsed = s.Sim.Elapsed()
	res.Score = s.Sim.Score()
	res.HighestCombo = s.Sim.HighestCombo()
	res.Level = s.Sim.Level()
	res.Health = s.Sim.Health()
	res.GameOver = s.Sim.Phase() == sim.PhaseGameOver
	return res, err
}

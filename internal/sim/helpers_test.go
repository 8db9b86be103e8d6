package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// frame is one tick at the nominal 60 Hz.
const frame = time.Second / 60

// scriptedRand replays fixed values, then falls back to values that never
// trigger a spawn or bonus.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// quietConfig is the default configuration with random spawning and bonus
// rolls switched off, so tests place entities by hand.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.ObstacleRate = 0
	cfg.Spawn.CollectibleRate = 0
	cfg.Spawn.PowerUpRate = 0
	cfg.Scoring.BonusPowerUpChance = 0
	return cfg
}

// harness drives a Simulation with a synthetic clock.
type harness struct {
	t   *testing.T
	sim *Simulation
	now time.Duration
}

func newHarness(t *testing.T, cfg config.RunnerConfig, opts ...Option) *harness {
	t.Helper()
	s, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Start(0)
	return &harness{t: t, sim: s}
}

func (h *harness) tick(intents ...Intent) []Event {
	h.now += frame
	return h.sim.Tick(intents, h.now)
}

// run ticks n times and returns all events in order.
func (h *harness) run(n int) []Event {
	var all []Event
	for i := 0; i < n; i++ {
		all = append(all, h.tick()...)
	}
	return all
}

// place adds an entity directly in the player's current target lane.
func (h *harness) place(kind Kind, distance float64) Entity {
	lane := h.sim.st.motion.State().Lane
	heights := h.sim.cfg.Spawn
	height := heights.ObstacleHeight
	switch kind {
	case KindCollectible:
		height = heights.CollectibleHeight
	case KindPowerUp:
		height = heights.PowerUpHeight
	}
	return h.sim.st.registry.Add(Entity{
		Kind:     kind,
		Variant:  variantsByKind[kind][0],
		Lane:     lane,
		Height:   height,
		Distance: distance,
	})
}

// findEntity looks up a live entity by ID.
func findEntity(r *Registry, id uint64) (Entity, bool) {
	for _, e := range r.Entities() {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

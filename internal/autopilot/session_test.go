package autopilot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/sim"
)

func newSession(t *testing.T, policy string, limit time.Duration) Session {
	t.Helper()
	s, err := sim.New(config.DefaultRunnerConfig(), sim.WithSeed(3))
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	p, err := Create(policy, 3)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return Session{Sim: s, Policy: p, TickRate: 60, Limit: limit}
}

func TestSessionStopsAtLimit(t *testing.T) {
	res, err := newSession(t, "idle", 2*time.Second).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks != 120 {
		t.Errorf("Ticks = %d, want 120", res.Ticks)
	}
	if res.GameOver {
		t.Error("nothing can reach the player within two seconds")
	}
	if res.Health != config.DefaultRunnerConfig().Health.Max {
		t.Errorf("Health = %d, want full", res.Health)
	}
}

func TestSessionPlaysToGameOver(t *testing.T) {
	sess := newSession(t, "idle", 30*time.Minute)
	seen := 0
	sess.OnEvent = func(sim.Event) { seen++ }

	res, err := sess.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.GameOver {
		t.Fatalf("idle policy survived %v", res.Elapsed)
	}
	if res.Health != 0 {
		t.Errorf("Health = %d at game over", res.Health)
	}
	if res.Events[sim.EventGameOver] != 1 {
		t.Errorf("GameOver events = %d, want 1", res.Events[sim.EventGameOver])
	}

	cfg := config.DefaultRunnerConfig()
	if want := cfg.Health.Max / cfg.Health.ObstacleDamage; res.Events[sim.EventDamage] != want {
		t.Errorf("Damage events = %d, want %d", res.Events[sim.EventDamage], want)
	}

	total := 0
	for _, n := range res.Events {
		total += n
	}
	if seen != total {
		t.Errorf("OnEvent saw %d events, result counted %d", seen, total)
	}
}

func TestSessionDeterministic(t *testing.T) {
	a, _ := newSession(t, "dodger", time.Minute).Run(context.Background())
	b, _ := newSession(t, "dodger", time.Minute).Run(context.Background())

	if a.Ticks != b.Ticks || a.Score != b.Score || a.Health != b.Health || a.Level != b.Level {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}

func TestSessionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newSession(t, "idle", 0).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if res.Ticks != 0 {
		t.Errorf("Ticks = %d after cancellation", res.Ticks)
	}
}

func TestSessionRequiresPolicy(t *testing.T) {
	s, _ := sim.New(config.DefaultRunnerConfig())
	if _, err := (Session{Sim: s}).Run(context.Background()); err == nil {
		t.Error("expected an error without a policy")
	}
}

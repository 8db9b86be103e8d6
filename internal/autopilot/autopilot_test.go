package autopilot

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/sim"
)

func TestRegistryList(t *testing.T) {
	var names []string
	for _, info := range List() {
		names = append(names, info.Name)
		if info.Description == "" {
			t.Errorf("policy %q has no description", info.Name)
		}
	}

	want := []string{"dodger", "idle", "random"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List() = %v, want %v", names, want)
	}
}

func TestRegistryCreate(t *testing.T) {
	p, err := Create("dodger", 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name() != "dodger" {
		t.Errorf("Name() = %q", p.Name())
	}

	if _, err := Create("nope", 1); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("idle", "again", func(int64) Policy { return idle{} })
}

func TestRandomPolicyIsSeeded(t *testing.T) {
	a, _ := Create("random", 9)
	b, _ := Create("random", 9)

	acted := false
	for i := 0; i < 500; i++ {
		ia := a.Decide(sim.Snapshot{})
		ib := b.Decide(sim.Snapshot{})
		if !reflect.DeepEqual(ia, ib) {
			t.Fatalf("tick %d: %v vs %v", i, ia, ib)
		}
		if len(ia) > 0 {
			acted = true
		}
	}
	if !acted {
		t.Error("random policy never acted in 500 ticks")
	}
}

func snapshotWith(lane sim.Lane, entities ...sim.Entity) sim.Snapshot {
	return sim.Snapshot{
		Phase:    sim.PhaseRunning,
		Player:   sim.PlayerState{Lane: lane},
		Entities: entities,
	}
}

func obstacle(lane sim.Lane, d float64) sim.Entity {
	return sim.Entity{Kind: sim.KindObstacle, Lane: lane, Distance: d}
}

func coin(lane sim.Lane, d float64) sim.Entity {
	return sim.Entity{Kind: sim.KindCollectible, Lane: lane, Distance: d}
}

func TestDodgerDecisions(t *testing.T) {
	tests := []struct {
		name string
		snap sim.Snapshot
		want []sim.Intent
	}{
		{
			name: "clear road",
			snap: snapshotWith(sim.LaneCenter),
			want: nil,
		},
		{
			name: "obstacle ahead, left free",
			snap: snapshotWith(sim.LaneCenter, obstacle(sim.LaneCenter, 4)),
			want: []sim.Intent{sim.IntentMoveLeft},
		},
		{
			name: "obstacle ahead, only right free",
			snap: snapshotWith(sim.LaneCenter, obstacle(sim.LaneCenter, 4), obstacle(sim.LaneLeft, 3)),
			want: []sim.Intent{sim.IntentMoveRight},
		},
		{
			name: "edge lane dodges inward",
			snap: snapshotWith(sim.LaneLeft, obstacle(sim.LaneLeft, 5)),
			want: []sim.Intent{sim.IntentMoveRight},
		},
		{
			name: "boxed in, too far to jump",
			snap: snapshotWith(sim.LaneLeft, obstacle(sim.LaneLeft, 4), obstacle(sim.LaneCenter, 4)),
			want: nil,
		},
		{
			name: "boxed in, inside jump window",
			snap: snapshotWith(sim.LaneLeft, obstacle(sim.LaneLeft, 2), obstacle(sim.LaneCenter, 4)),
			want: []sim.Intent{sim.IntentJump},
		},
		{
			name: "obstacle behind is ignored",
			snap: snapshotWith(sim.LaneCenter, obstacle(sim.LaneCenter, -0.5)),
			want: nil,
		},
		{
			name: "chase collectible",
			snap: snapshotWith(sim.LaneCenter, coin(sim.LaneRight, 8)),
			want: []sim.Intent{sim.IntentMoveRight},
		},
		{
			name: "collectible behind an obstacle is skipped",
			snap: snapshotWith(sim.LaneCenter, coin(sim.LaneRight, 8), obstacle(sim.LaneRight, 3)),
			want: nil,
		},
	}

	p := dodger{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Decide(tt.snap); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDodgerIgnoresObstaclesWhileInvincible(t *testing.T) {
	snap := snapshotWith(sim.LaneCenter, obstacle(sim.LaneCenter, 2), coin(sim.LaneCenter, 3))
	snap.Invincibility = sim.Window{Active: true}

	if got := (dodger{}).Decide(snap); got != nil {
		t.Errorf("Decide() = %v, want to hold the lane", got)
	}
}

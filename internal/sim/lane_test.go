package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func newTestMotion() LaneMotion {
	cfg := config.DefaultRunnerConfig()
	return NewLaneMotion(cfg.Physics, cfg.Lanes)
}

// settle advances until the lane change in progress has finished.
func settle(t *testing.T, m *LaneMotion) {
	t.Helper()
	for i := 0; i < 200 && m.State().Moving; i++ {
		m.Advance(1)
	}
	if m.State().Moving {
		t.Fatal("lane change never finished")
	}
}

func TestLaneChangeBounds(t *testing.T) {
	tests := []struct {
		name     string
		moves    []int
		wantLane Lane
		wantOK   []bool
	}{
		{"left once", []int{-1}, LaneLeft, []bool{true}},
		{"left past edge", []int{-1, -1}, LaneLeft, []bool{true, false}},
		{"right past edge", []int{1, 1, 1}, LaneRight, []bool{true, false, false}},
		{"right then left", []int{1, -1}, LaneCenter, []bool{true, true}},
		{"zero direction", []int{0}, LaneCenter, []bool{false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMotion()
			for i, dir := range tt.moves {
				if got := m.RequestLaneChange(dir); got != tt.wantOK[i] {
					t.Errorf("move %d (dir %d): got %v, want %v", i, dir, got, tt.wantOK[i])
				}
				settle(t, &m)
			}
			if m.State().Lane != tt.wantLane {
				t.Errorf("lane = %v, want %v", m.State().Lane, tt.wantLane)
			}
		})
	}
}

func TestLaneChangeIgnoredDuringTransition(t *testing.T) {
	m := newTestMotion()
	m.RequestLaneChange(-1)
	settle(t, &m)

	if !m.RequestLaneChange(1) {
		t.Fatal("change from rest was rejected")
	}
	m.Advance(1)
	if !m.State().Moving {
		t.Fatal("expected to still be moving after one tick")
	}

	for _, dir := range []int{1, -1} {
		if m.RequestLaneChange(dir) {
			t.Errorf("dir %d accepted mid-transition", dir)
		}
		if m.State().Lane != LaneCenter {
			t.Fatalf("lane = %v, want center", m.State().Lane)
		}
	}

	settle(t, &m)
	if got := m.State().X; got != m.LaneX(LaneCenter) {
		t.Errorf("X = %f, want %f", got, m.LaneX(LaneCenter))
	}
	if !m.RequestLaneChange(1) || m.State().Lane != LaneRight {
		t.Error("change after settling should reach the right lane")
	}
}

func TestLateralConvergence(t *testing.T) {
	m := newTestMotion()
	m.RequestLaneChange(-1)

	prev := math.Abs(m.State().X - m.LaneX(LaneLeft))
	for i := 0; i < 120 && m.State().Moving; i++ {
		m.Advance(1)
		d := math.Abs(m.State().X - m.LaneX(LaneLeft))
		if d > prev {
			t.Fatalf("tick %d: distance to target grew from %f to %f", i, prev, d)
		}
		prev = d
	}

	st := m.State()
	if st.Moving {
		t.Fatal("never settled on the target lane")
	}
	if st.X != m.LaneX(LaneLeft) {
		t.Errorf("X = %f, want exactly %f after snap", st.X, m.LaneX(LaneLeft))
	}
}

func TestLateralLargeStepDoesNotOvershoot(t *testing.T) {
	m := newTestMotion()
	m.RequestLaneChange(1)
	m.Advance(50)

	if got := m.State().X; got != m.LaneX(LaneRight) {
		t.Errorf("X = %f, want %f", got, m.LaneX(LaneRight))
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	m := newTestMotion()
	if !m.RequestJump() {
		t.Fatal("jump from the ground was rejected")
	}
	m.Advance(1)
	if !m.State().Airborne {
		t.Fatal("expected airborne after jump")
	}

	// Climb out of the grounded band
	for i := 0; i < 5; i++ {
		m.Advance(1)
	}
	v := m.State().VelocityY
	if m.RequestJump() {
		t.Error("jump accepted while airborne")
	}
	if m.State().VelocityY != v {
		t.Error("rejected jump changed velocity")
	}
}

func TestJumpGroundedBand(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ground := cfg.Physics.GroundY

	tests := []struct {
		name   string
		y      float64
		vy     float64
		wantOK bool
	}{
		{"on the ground", ground, 0, true},
		{"falling inside the band", ground + 0.05, -0.05, true},
		{"rising inside the band", ground + 0.05, 0.04, true},
		{"falling above the band", ground + 0.15, -0.05, false},
		{"rising above the band", ground + 0.15, 0.05, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMotion()
			m.state.Y = tt.y
			m.state.VelocityY = tt.vy

			if got := m.RequestJump(); got != tt.wantOK {
				t.Fatalf("RequestJump() = %v, want %v", got, tt.wantOK)
			}
			want := tt.vy
			if tt.wantOK {
				want = cfg.Physics.JumpImpulse
			}
			if got := m.State().VelocityY; got != want {
				t.Errorf("VelocityY = %f, want %f", got, want)
			}
		})
	}
}

func TestJumpLandsAndSettles(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	m := newTestMotion()
	m.RequestJump()

	landings := 0
	bounced := false
	for i := 0; i < 200; i++ {
		if m.Advance(1) {
			landings++
			if m.State().VelocityY > 0 {
				bounced = true
			}
		}
		if st := m.State(); st.Y < cfg.Physics.GroundY {
			t.Fatalf("tick %d: Y = %f below ground", i, st.Y)
		}
	}

	if landings == 0 {
		t.Fatal("never landed")
	}
	if !bounced {
		t.Error("expected a bounce on a fast landing")
	}

	st := m.State()
	if st.Y != cfg.Physics.GroundY || st.VelocityY != 0 || st.Airborne {
		t.Errorf("not settled: %+v", st)
	}
}

package sim

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Lane identifies one of the three lateral tracks.
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight
)

// String returns a human-readable name for the lane.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneCenter:
		return "center"
	case LaneRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether l is one of the three lanes.
func (l Lane) Valid() bool {
	return l >= LaneLeft && l <= LaneRight
}

// PlayerState is the player's kinematic state.
type PlayerState struct {
	X          float64 // Lateral position, converges to the target lane coordinate
	Y          float64 // Height, GroundY when standing
	VelocityY  float64 // Vertical velocity per nominal tick
	Lane       Lane    // Target lane
	Moving     bool    // Still converging on the target lane
	Airborne   bool    // Above ground level
	Invincible bool    // Mirrors the invincibility window
}

// LaneMotion is the player's lateral and vertical state machine.
type LaneMotion struct {
	physics config.PhysicsConfig
	lanes   config.LanesConfig
	state   PlayerState
}

// NewLaneMotion creates a player standing in the center lane.
func NewLaneMotion(physics config.PhysicsConfig, lanes config.LanesConfig) LaneMotion {
	m := LaneMotion{physics: physics, lanes: lanes}
	m.Reset()
	return m
}

// Reset puts the player back on the ground in the center lane.
func (m *LaneMotion) Reset() {
	m.state = PlayerState{
		X:    m.lanes.Positions[LaneCenter],
		Y:    m.physics.GroundY,
		Lane: LaneCenter,
	}
}

// State returns a copy of the player state.
func (m *LaneMotion) State() PlayerState {
	return m.state
}

// LaneX returns the lateral coordinate of a lane.
func (m *LaneMotion) LaneX(l Lane) float64 {
	return m.lanes.Positions[l]
}

// RequestLaneChange targets the neighbour of the lane the player rests in.
// dir < 0 moves left, dir > 0 moves right. Returns false at the boundaries
// and while a previous change is still in progress.
func (m *LaneMotion) RequestLaneChange(dir int) bool {
	if m.state.Moving {
		return false
	}
	next := m.state.Lane
	switch {
	case dir < 0:
		next--
	case dir > 0:
		next++
	default:
		return false
	}
	if !next.Valid() {
		return false
	}

	m.state.Lane = next
	m.state.Moving = true
	return true
}

// Grounded reports whether the player is within AirborneEpsilon of the ground.
func (m *LaneMotion) Grounded() bool {
	return math.Abs(m.state.Y-m.physics.GroundY) < m.physics.AirborneEpsilon
}

// RequestJump applies the jump impulse if the player is grounded.
// Requests while airborne are dropped, not queued.
func (m *LaneMotion) RequestJump() bool {
	if !m.Grounded() {
		return false
	}
	m.state.VelocityY = m.physics.JumpImpulse
	return true
}

// Advance integrates one tick of motion. step is the delta in nominal ticks.
// Returns true if the player touched down this tick after being in the air.
func (m *LaneMotion) Advance(step float64) (landed bool) {
	m.advanceLateral(step)
	return m.advanceVertical(step)
}

func (m *LaneMotion) advanceLateral(step float64) {
	if !m.state.Moving {
		return
	}

	targetX := m.lanes.Positions[m.state.Lane]
	frac := math.Min(m.lanes.TransitionSpeed*step, 1)
	m.state.X += (targetX - m.state.X) * frac

	if math.Abs(targetX-m.state.X) < m.lanes.SnapEpsilon {
		m.state.X = targetX
		m.state.Moving = false
	}
}

func (m *LaneMotion) advanceVertical(step float64) bool {
	wasAirborne := m.state.Y > m.physics.GroundY

	m.state.VelocityY -= m.physics.Gravity * step
	m.state.Y += m.state.VelocityY * step

	touched := false
	if m.state.Y < m.physics.GroundY {
		touched = true
		m.state.Y = m.physics.GroundY
		if m.state.VelocityY < -m.physics.BounceThreshold {
			m.state.VelocityY = -m.state.VelocityY * m.physics.BounceDamping
		} else {
			m.state.VelocityY = 0
		}
	}

	m.state.Airborne = m.state.Y > m.physics.GroundY
	return touched && wasAirborne
}

func (m *LaneMotion) setInvincible(on bool) {
	m.state.Invincible = on
}

package sim

import (
	"time"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// ScoreCombo tracks score and the decaying pickup multiplier.
type ScoreCombo struct {
	baseValue int
	timeout   time.Duration

	score    int
	combo    int
	highest  int
	deadline time.Duration
	armed    bool
}

// NewScoreCombo creates a tracker at zero score and combo 1.
func NewScoreCombo(cfg config.ScoringConfig) ScoreCombo {
	return ScoreCombo{
		baseValue: cfg.PickupValue,
		timeout:   cfg.ComboTimeout,
		combo:     1,
		highest:   1,
	}
}

// Pickup scores a collectible at the current multiplier, bumps the
// multiplier and re-arms its reset deadline.
func (s *ScoreCombo) Pickup(now time.Duration) (value, comboAfter int) {
	value = s.baseValue * s.combo
	s.score += value

	s.combo++
	if s.combo > s.highest {
		s.highest = s.combo
	}

	s.deadline = now + s.timeout
	s.armed = true
	return value, s.combo
}

// Expire resets the multiplier to 1 once its deadline has passed.
// Returns true if a reset happened.
func (s *ScoreCombo) Expire(now time.Duration) bool {
	if !s.armed || now <= s.deadline {
		return false
	}
	s.combo = 1
	s.armed = false
	s.deadline = 0
	return true
}

// Score returns the accumulated score.
func (s *ScoreCombo) Score() int { return s.score }

// Combo returns the current multiplier (always >= 1).
func (s *ScoreCombo) Combo() int { return s.combo }

// HighestCombo returns the highest multiplier reached.
func (s *ScoreCombo) HighestCombo() int { return s.highest }

// Deadline returns the pending reset deadline, if any.
func (s *ScoreCombo) Deadline() (time.Duration, bool) {
	return s.deadline, s.armed
}

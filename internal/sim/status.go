package sim

import (
	"time"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Window is a timed boolean effect with an absolute expiry.
type Window struct {
	Active    bool
	ExpiresAt time.Duration
}

// Remaining returns how long the window stays active after now.
func (w Window) Remaining(now time.Duration) time.Duration {
	if !w.Active || now >= w.ExpiresAt {
		return 0
	}
	return w.ExpiresAt - now
}

// expire deactivates the window once now is past its expiry.
func (w *Window) expire(now time.Duration) bool {
	if !w.Active || now <= w.ExpiresAt {
		return false
	}
	*w = Window{}
	return true
}

// StatusEffects tracks the power-up and invincibility windows.
// Both are armed by the same trigger but expire independently.
type StatusEffects struct {
	powerUpDuration    time.Duration
	invincibleDuration time.Duration

	powerUp    Window
	invincible Window
}

// NewStatusEffects creates inactive windows.
func NewStatusEffects(cfg config.EffectsConfig) StatusEffects {
	return StatusEffects{
		powerUpDuration:    cfg.PowerUpDuration,
		invincibleDuration: cfg.InvincibleDuration,
	}
}

// Activate (re)arms both windows from now.
func (s *StatusEffects) Activate(now time.Duration) {
	s.powerUp = Window{Active: true, ExpiresAt: now + s.powerUpDuration}
	s.invincible = Window{Active: true, ExpiresAt: now + s.invincibleDuration}
}

// Expire closes elapsed windows and reports which ones ended.
func (s *StatusEffects) Expire(now time.Duration) (powerUpEnded, invincibilityEnded bool) {
	return s.powerUp.expire(now), s.invincible.expire(now)
}

// Immune reports whether obstacle damage is suppressed.
func (s *StatusEffects) Immune() bool { return s.powerUp.Active }

// Invincible reports whether obstacles pass through harmlessly.
func (s *StatusEffects) Invincible() bool { return s.invincible.Active }

// PowerUp returns the power-up window.
func (s *StatusEffects) PowerUp() Window { return s.powerUp }

// Invincibility returns the invincibility window.
func (s *StatusEffects) Invincibility() Window { return s.invincible }

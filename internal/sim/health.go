package sim

// Health is the player's hit points, clamped to [0, max].
type Health struct {
	max     int
	current int
}

// NewHealth creates full health.
func NewHealth(maxHP int) Health {
	return Health{max: maxHP, current: maxHP}
}

// Damage subtracts amount and reports whether the player is out of health.
func (h *Health) Damage(amount int) (dead bool) {
	h.current -= amount
	if h.current < 0 {
		h.current = 0
	}
	return h.current <= 0
}

// Current returns remaining health.
func (h *Health) Current() int { return h.current }

// Max returns full health.
func (h *Health) Max() int { return h.max }

// Dead reports whether health is exhausted.
func (h *Health) Dead() bool { return h.current <= 0 }

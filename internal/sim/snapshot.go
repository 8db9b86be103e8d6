package sim

import "time"

// Snapshot is a read-only copy of everything a renderer or HUD needs.
type Snapshot struct {
	Phase   Phase
	Tick    uint64
	Now     time.Duration
	Elapsed time.Duration

	Score         int
	Health        int
	MaxHealth     int
	Combo         int
	HighestCombo  int
	ComboDeadline time.Duration
	ComboArmed    bool

	Level           int
	SpeedMultiplier float64

	Player   PlayerState
	Entities []Entity

	PowerUp       Window
	Invincibility Window
}

// Snapshot copies the current session state.
func (s *Simulation) Snapshot() Snapshot {
	st := &s.st
	deadline, armed := st.combo.Deadline()
	return Snapshot{
		Phase:           st.phase,
		Tick:            st.clock.Ticks(),
		Now:             st.clock.Now(),
		Elapsed:         st.clock.Elapsed(),
		Score:           st.combo.Score(),
		Health:          st.health.Current(),
		MaxHealth:       st.health.Max(),
		Combo:           st.combo.Combo(),
		HighestCombo:    st.combo.HighestCombo(),
		ComboDeadline:   deadline,
		ComboArmed:      armed,
		Level:           st.progression.Level(),
		SpeedMultiplier: st.progression.SpeedMultiplier(),
		Player:          st.motion.State(),
		Entities:        st.registry.Entities(),
		PowerUp:         st.status.PowerUp(),
		Invincibility:   st.status.Invincibility(),
	}
}

// ComboRemaining returns time left before the combo resets, zero if unarmed.
func (s Snapshot) ComboRemaining() time.Duration {
	if !s.ComboArmed || s.Now >= s.ComboDeadline {
		return 0
	}
	return s.ComboDeadline - s.Now
}

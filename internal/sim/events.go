package sim

import "fmt"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventRemoved
	EventDamage
	EventPickup
	EventPowerUpActivated
	EventPowerUpEnded
	EventInvincibilityEnded
	EventComboReset
	EventLevelUp
	EventGameOver
	EventCollisionFX // Visual hint: obstacle struck
	EventCollectFX   // Visual hint: collectible taken
	EventPowerUpFX   // Visual hint: power-up taken
	EventLanded      // Visual hint: player touched down
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventRemoved:
		return "removed"
	case EventDamage:
		return "damage"
	case EventPickup:
		return "pickup"
	case EventPowerUpActivated:
		return "powerup_activated"
	case EventPowerUpEnded:
		return "powerup_ended"
	case EventInvincibilityEnded:
		return "invincibility_ended"
	case EventComboReset:
		return "combo_reset"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventCollisionFX:
		return "collision_fx"
	case EventCollectFX:
		return "collect_fx"
	case EventPowerUpFX:
		return "powerup_fx"
	case EventLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// RemovalReason says why an entity left the registry.
type RemovalReason int

const (
	RemovalConsumed RemovalReason = iota // Touched by the player
	RemovalExited                        // Passed the player untouched
)

// String returns the name of the reason.
func (r RemovalReason) String() string {
	switch r {
	case RemovalConsumed:
		return "consumed"
	case RemovalExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Event is one entry of the per-tick output stream. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind EventKind

	Entity   Entity        // Spawned, Removed
	Reason   RemovalReason // Removed
	Position Vec3          // FX hints, Landed

	Amount       int  // Damage
	Value        int  // Pickup: points scored
	Combo        int  // Pickup: multiplier after the pickup
	Bonus        bool // PowerUpActivated: triggered by a pickup roll rather than a power-up entity
	Level        int  // LevelUp
	FinalScore   int  // GameOver
	HighestCombo int  // GameOver
}

// String renders the event as a compact log line.
func (e Event) String() string {
	switch e.Kind {
	case EventSpawned:
		return fmt.Sprintf("spawned #%d %s/%s lane=%s d=%.1f", e.Entity.ID, e.Entity.Kind, e.Entity.Variant, e.Entity.Lane, e.Entity.Distance)
	case EventRemoved:
		return fmt.Sprintf("removed #%d %s (%s)", e.Entity.ID, e.Entity.Kind, e.Reason)
	case EventDamage:
		return fmt.Sprintf("damage %d", e.Amount)
	case EventPickup:
		return fmt.Sprintf("pickup +%d combo x%d", e.Value, e.Combo)
	case EventPowerUpActivated:
		if e.Bonus {
			return "powerup_activated (bonus)"
		}
		return "powerup_activated"
	case EventLevelUp:
		return fmt.Sprintf("level_up %d", e.Level)
	case EventGameOver:
		return fmt.Sprintf("game_over score=%d highest_combo=x%d", e.FinalScore, e.HighestCombo)
	default:
		return e.Kind.String()
	}
}

package sim

import (
	"math"
	"sort"
)

// Vec3 is a point in world space: X lateral, Y up, Z toward the camera.
// The player sits at Z = 0; entities approach from negative Z.
type Vec3 struct {
	X, Y, Z float64
}

// DistSq returns the squared distance between two points.
func (v Vec3) DistSq(o Vec3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return dx*dx + dy*dy + dz*dz
}

// Contact is one entity the player touched this tick.
type Contact struct {
	Entity   Entity
	Position Vec3
	Harmful  bool // Obstacle hit while not invincible
}

// CollisionSystem tests the player against the registry.
type CollisionSystem struct {
	hitRadiusSq float64
	lanes       []float64
}

// NewCollisionSystem creates a collision system for the given lane layout.
func NewCollisionSystem(hitRadiusSq float64, lanes []float64) CollisionSystem {
	return CollisionSystem{hitRadiusSq: hitRadiusSq, lanes: lanes}
}

// Reach returns the contact radius along a single axis.
func (c *CollisionSystem) Reach() float64 {
	return math.Sqrt(c.hitRadiusSq)
}

// Position returns the world position of an entity.
func (c *CollisionSystem) Position(e Entity) Vec3 {
	return Vec3{X: c.lanes[e.Lane], Y: e.Height, Z: -e.Distance}
}

// Resolve finds every entity touching the player, removes them all from reg
// and returns them as contacts. Contacts are ordered obstacles first, then
// collectibles, then power-ups, ascending ID within a kind.
func (c *CollisionSystem) Resolve(player Vec3, reg *Registry, invincible bool) []Contact {
	var contacts []Contact
	for kind := KindObstacle; kind < kindCount; kind++ {
		for _, e := range reg.entities {
			if e.Kind != kind {
				continue
			}
			pos := c.Position(e)
			if player.DistSq(pos) >= c.hitRadiusSq {
				continue
			}
			contacts = append(contacts, Contact{
				Entity:   e,
				Position: pos,
				Harmful:  kind == KindObstacle && !invincible,
			})
		}
	}

	if len(contacts) > 0 {
		ids := make([]uint64, len(contacts))
		for i, ct := range contacts {
			ids[i] = ct.Entity.ID
		}
		reg.RemoveAll(ids)
	}
	return contacts
}

// sortContacts restores kind then ID order over contacts gathered in
// several passes.
func sortContacts(contacts []Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		a, b := contacts[i].Entity, contacts[j].Entity
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.ID < b.ID
	})
}

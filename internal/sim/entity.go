package sim

// Kind is the gameplay category of an entity.
type Kind int

const (
	KindObstacle Kind = iota
	KindCollectible
	KindPowerUp
	kindCount
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Variant is a cosmetic subtype. The simulation never branches on it.
type Variant int

const (
	VariantBox Variant = iota
	VariantPyramid
	VariantCylinder
	VariantCoin
	VariantGem
	VariantStar
	VariantOrb
)

var variantsByKind = [kindCount][]Variant{
	KindObstacle:    {VariantBox, VariantPyramid, VariantCylinder},
	KindCollectible: {VariantCoin, VariantGem, VariantStar},
	KindPowerUp:     {VariantOrb},
}

// String returns the name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantBox:
		return "box"
	case VariantPyramid:
		return "pyramid"
	case VariantCylinder:
		return "cylinder"
	case VariantCoin:
		return "coin"
	case VariantGem:
		return "gem"
	case VariantStar:
		return "star"
	case VariantOrb:
		return "orb"
	default:
		return "?"
	}
}

// Entity is an obstacle, collectible or power-up travelling toward the player.
type Entity struct {
	ID        uint64
	Kind      Kind
	Variant   Variant // Rendering hint only
	Lane      Lane
	Height    float64
	Distance  float64 // Forward distance to the player; decreases every tick
	SpawnTick uint64
}

// Registry owns the live entities. Entities are kept in spawn order,
// which is also ascending ID order.
type Registry struct {
	entities []Entity
	nextID   uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() Registry {
	return Registry{
		entities: make([]Entity, 0, 32),
		nextID:   1,
	}
}

// Add assigns an ID to e, stores it and returns the stored copy.
func (r *Registry) Add(e Entity) Entity {
	e.ID = r.nextID
	r.nextID++
	r.entities = append(r.entities, e)
	return e
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Entities returns a copy of the live entities in spawn order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// Remove deletes the entity with the given ID. Returns false if it was not live.
func (r *Registry) Remove(id uint64) bool {
	removed := r.removeWhere(func(e *Entity) bool { return e.ID == id })
	return len(removed) > 0
}

// RemoveAll deletes every entity whose ID is in ids, in one pass.
func (r *Registry) RemoveAll(ids []uint64) []Entity {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return r.removeWhere(func(e *Entity) bool {
		_, ok := set[e.ID]
		return ok
	})
}

// Advance moves every entity delta closer to the player and prunes those
// more than exitDistance behind it. Pruned entities are returned in spawn order.
func (r *Registry) Advance(delta, exitDistance float64) []Entity {
	return r.removeWhere(func(e *Entity) bool {
		e.Distance -= delta
		return e.Distance < -exitDistance
	})
}

// removeWhere visits every entity exactly once, lets fn mutate it, and
// compacts the slice in place dropping entities for which fn returns true.
func (r *Registry) removeWhere(fn func(e *Entity) bool) []Entity {
	var removed []Entity
	kept := r.entities[:0]
	for i := range r.entities {
		e := r.entities[i]
		if fn(&e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so stale entries don't linger in the backing array
	for i := len(kept); i < len(r.entities); i++ {
		r.entities[i] = Entity{}
	}
	r.entities = kept
	return removed
}

package sprite

// Tick carries what entity updates need for one simulation step
type Tick struct {
	// Colliders is the collision group consulted by movement
	Colliders *Group
	// Bounds is the playable surface in world pixels
	Bounds Rect
	// FX receives effects produced during the step
	FX *Effects
}

// NewTick creates a tick context with an empty effect list
func NewTick(colliders *Group, bounds Rect) *Tick {
	return &Tick{
		Colliders: colliders,
		Bounds:    bounds,
		FX:        &Effects{},
	}
}

// Updater is implemented by entities with per-tick behaviour
type Updater interface {
	Update(t *Tick)
}

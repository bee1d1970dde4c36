package sprite

// EffectKind identifies a side effect requested by the core
type EffectKind int

const (
	// EffectFire is emitted when a player fires a projectile
	EffectFire EffectKind = iota
	// EffectShake asks the presentation layer to shake the view
	EffectShake
	// EffectHurt is emitted when a living entity takes damage and survives
	EffectHurt
	// EffectDeath is emitted when a living entity dies
	EffectDeath
	// EffectImpact is emitted when a projectile hits a damageable entity
	EffectImpact
)

// String returns the string representation of the effect kind
func (k EffectKind) String() string {
	switch k {
	case EffectFire:
		return "Fire"
	case EffectShake:
		return "Shake"
	case EffectHurt:
		return "Hurt"
	case EffectDeath:
		return "Death"
	case EffectImpact:
		return "Impact"
	default:
		return "Unknown"
	}
}

// Effect is a fire-and-forget request for audio or visual feedback
type Effect struct {
	Kind      EffectKind
	Source    Entity
	Magnitude float64
}

// Effects collects the effects produced during a tick.
// A nil *Effects discards everything emitted into it.
type Effects struct {
	list []Effect
}

// Emit appends an effect
func (f *Effects) Emit(kind EffectKind, src Entity, magnitude float64) {
	if f == nil {
		return
	}
	f.list = append(f.list, Effect{Kind: kind, Source: src, Magnitude: magnitude})
}

// Outcome appends the hurt or death effect matching a damage outcome
func (f *Effects) Outcome(o Outcome, target Entity) {
	switch o {
	case Hurt:
		f.Emit(EffectHurt, target, 0)
	case Died:
		f.Emit(EffectDeath, target, 0)
	}
}

// Len returns the number of pending effects
func (f *Effects) Len() int {
	if f == nil {
		return 0
	}
	return len(f.list)
}

// Drain returns the pending effects and clears the list
func (f *Effects) Drain() []Effect {
	if f == nil {
		return nil
	}
	out := f.list
	f.list = nil
	return out
}

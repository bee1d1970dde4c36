package sprite

// AIControlled is implemented by entities that act on a target
type AIControlled interface {
	Entity
	Target() Damageable
}

// Strategy computes a follower's movement delta toward its target
type Strategy func(f *Follower, target Entity) Vec

// MoveToTarget steps straight toward the target's centre at the follower's speed
func MoveToTarget(f *Follower, target Entity) Vec {
	d := target.Rect().Center().Sub(f.Center())
	dist := d.Len()
	if dist == 0 {
		return Vec{}
	}
	if dist <= f.Speed {
		return d
	}
	return d.Scale(f.Speed / dist)
}

// FollowerConfig holds the tunables for creating a follower
type FollowerConfig struct {
	MaxHealth      int
	BaseHurtTime   int
	Speed          float64
	AttackStrength int
}

// Follower is an enemy that chases a target and hurts it on contact
type Follower struct {
	Living

	AttackStrength int
	MoveTowards    Strategy

	target Damageable
}

// NewFollower creates a follower chasing target. The target is not owned:
// once it dies the follower stops acting on it.
func NewFollower(x, y float64, skin Skin, scale float64, cfg FollowerConfig, target Damageable) *Follower {
	f := &Follower{
		AttackStrength: cfg.AttackStrength,
		MoveTowards:    MoveToTarget,
		target:         target,
	}
	f.Init(x, y, KindEnemy, skin, scale)
	f.Speed = cfg.Speed
	f.BaseHurtTime = cfg.BaseHurtTime
	f.SetMaxHealth(cfg.MaxHealth)
	return f
}

// Target returns the chased entity, or nil when it is gone
func (f *Follower) Target() Damageable {
	if f.target == nil || f.target.Dead() {
		return nil
	}
	return f.target
}

// SetTarget replaces the chased entity
func (f *Follower) SetTarget(t Damageable) { f.target = t }

// Update advances the hurt timer and moves toward the target
func (f *Follower) Update(t *Tick) {
	f.Living.Update(t)
	if !f.Alive() {
		return
	}
	target := f.Target()
	if target == nil || f.MoveTowards == nil {
		return
	}
	d := f.MoveTowards(f, target)
	Move(f, d.X, d.Y, t.Colliders, t.FX)
}

// Collide stops at obstacles and damages the target on contact
func (f *Follower) Collide(other Entity, step Step, _ *Group, fx *Effects) {
	Block(f, other, step)
	target := f.Target()
	if target != nil && other.base() == target.base() {
		fx.Outcome(target.Damage(f.AttackStrength, Hit{}), target)
	}
}

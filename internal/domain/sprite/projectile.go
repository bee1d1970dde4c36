package sprite

import "math"

// Projectile travels along a fixed direction and damages what it hits
type Projectile struct {
	Movable

	Strength int
	Origin   Kind
}

// Direction converts a firing angle in degrees and a speed into per-tick deltas.
// Angle 0 points up the screen and angles grow counter-clockwise.
func Direction(angle, speed float64) (dx, dy float64) {
	rad := (-angle - 90) * math.Pi / 180
	return speed * math.Cos(rad), speed * math.Sin(rad)
}

// NewProjectile creates a projectile at x, y heading along angle.
// It never collides with entities of the origin kind.
func NewProjectile(x, y, angle, speed float64, strength int, origin Kind, skin Skin, scale float64) *Projectile {
	p := &Projectile{
		Strength: strength,
		Origin:   origin,
	}
	p.Init(x, y, KindProjectile, skin, scale)
	p.Angle = angle
	p.Speed = speed
	p.DX, p.DY = Direction(angle, speed)
	return p
}

// Update moves the projectile by its direction vector
func (p *Projectile) Update(t *Tick) {
	Move(p, p.DX, p.DY, t.Colliders, t.FX)
}

// Collide destroys the projectile on anything but its origin kind and
// damages the other entity when it can take damage.
func (p *Projectile) Collide(other Entity, _ Step, _ *Group, fx *Effects) {
	if other.Kind() == p.Origin {
		return
	}
	p.Kill()
	if d, ok := other.(Damageable); ok {
		fx.Emit(EffectImpact, other, float64(p.Strength))
		fx.Outcome(d.Damage(p.Strength, Hit{ByProjectile: true}), other)
	}
}

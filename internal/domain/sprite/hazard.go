package sprite

// Hazard is a falling living obstacle that breaks on contact (asteroid)
type Hazard struct {
	Living

	// Size is the score weight; it also sets starting health
	Size     int
	Strength int
	RotSpeed float64
}

// NewHazard creates a hazard of the given size falling at speed
func NewHazard(x, y float64, size int, speed, rotSpeed float64, skin Skin, scale float64) *Hazard {
	h := &Hazard{
		Size:     size,
		Strength: 1,
		RotSpeed: rotSpeed,
	}
	h.Init(x, y, KindHazard, skin, scale)
	h.Speed = speed
	h.SetMaxHealth(size)
	return h
}

// Weight returns the score weight
func (h *Hazard) Weight() int { return h.Size }

// Update spins and drops the hazard while it is still collidable
func (h *Hazard) Update(t *Tick) {
	if t.Colliders != nil && t.Colliders.Has(h) {
		h.Rotate(h.Angle + h.RotSpeed)
		Move(h, 0, h.Speed, t.Colliders, t.FX)
	}
	h.Living.Update(t)
}

// Collide breaks the hazard and passes its strength on as unflagged damage
func (h *Hazard) Collide(other Entity, _ Step, _ *Group, fx *Effects) {
	h.Kill()
	if d, ok := other.(Damageable); ok {
		fx.Outcome(d.Damage(h.Strength, Hit{}), other)
	}
}

// OffSurface ignores the top edge since hazards spawn above the surface
func (h *Hazard) OffSurface(bounds Rect) bool {
	r := h.Rect()
	return r.Right() < bounds.X || r.X > bounds.Right() || r.Y > bounds.Bottom()
}

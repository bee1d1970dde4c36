package sprite

// Axis selects the horizontal or vertical movement component
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Step is the single-axis displacement being resolved when a collision fires
type Step struct {
	Axis  Axis
	Delta float64
}

// Collider is a movable entity with a collision response.
// Collide is called once per overlapping member of the collision group
// after each axis step.
type Collider interface {
	Entity
	Collide(other Entity, step Step, colliders *Group, fx *Effects)
}

// Movable is an entity that moves by per-step deltas
type Movable struct {
	Sprite
	DX, DY float64
	Speed  float64
}

// Collide is the default response: stop at the other entity's edge
func (m *Movable) Collide(other Entity, step Step, _ *Group, _ *Effects) {
	Block(m, other, step)
}

// Move displaces e by (dx, dy) resolving each axis separately.
// X is applied and checked first, then Y. Zero axes are skipped, so
// Move(dx, dy) behaves exactly like Move(dx, 0) followed by Move(0, dy).
// Moving a dead entity is a no-op.
func Move(e Collider, dx, dy float64, colliders *Group, fx *Effects) {
	if e.Dead() {
		return
	}
	if dx != 0 {
		moveAxis(e, Step{Axis: AxisX, Delta: dx}, colliders, fx)
	}
	if dy != 0 && !e.Dead() {
		moveAxis(e, Step{Axis: AxisY, Delta: dy}, colliders, fx)
	}
}

func moveAxis(e Collider, step Step, colliders *Group, fx *Effects) {
	self := e.base()
	switch step.Axis {
	case AxisX:
		self.X += step.Delta
	case AxisY:
		self.Y += step.Delta
	}
	if colliders == nil {
		return
	}

	for _, other := range colliders.Entities() {
		if e.Dead() {
			return
		}
		if other.base() == self || !colliders.Has(other) {
			continue
		}
		// Rect is re-read each time: an earlier response may have moved us
		if e.Rect().Overlaps(other.Rect()) {
			e.Collide(other, step, colliders, fx)
		}
	}
}

// Block pushes e back against other's edge along the step axis
func Block(e Entity, other Entity, step Step) {
	self := e.base()
	r := other.Rect()
	w, h := self.Size()
	switch step.Axis {
	case AxisX:
		if step.Delta > 0 {
			self.X = r.X - w
		} else if step.Delta < 0 {
			self.X = r.Right()
		}
	case AxisY:
		if step.Delta > 0 {
			self.Y = r.Y - h
		} else if step.Delta < 0 {
			self.Y = r.Bottom()
		}
	}
}

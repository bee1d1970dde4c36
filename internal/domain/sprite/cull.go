package sprite

// Surfaced is implemented by entities that can tell when they left the surface
type Surfaced interface {
	Entity
	OffSurface(bounds Rect) bool
}

// CullOffSurface kills every moving member of g lying outside bounds.
// Static entities are never culled. Returns the number killed.
func CullOffSurface(g *Group, bounds Rect) int {
	n := 0
	g.Each(func(e Entity) {
		if _, moving := e.(Collider); !moving {
			return
		}
		s, ok := e.(Surfaced)
		if !ok || !s.OffSurface(bounds) {
			return
		}
		if e.Kill() {
			n++
		}
	})
	return n
}

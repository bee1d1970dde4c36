package sprite

// Static is an entity that never moves after placement
type Static struct {
	Sprite
}

// NewStatic creates a static entity at x, y
func NewStatic(x, y float64, kind Kind, skin Skin, scale float64) *Static {
	s := &Static{}
	s.Init(x, y, kind, skin, scale)
	return s
}

package controller

import "github.com/younwookim/spritecore/internal/domain/sprite"

// Heart layout in screen pixels
const (
	HeartSpacing = 36
	HeartMargin  = 14
	HeartScale   = 2
)

// HeartContainer keeps one heart sprite per point of the tracked health
type HeartContainer struct {
	group  *sprite.Group
	target sprite.Vital
	skin   sprite.Skin
}

// NewHeartContainer creates a heart row for target
func NewHeartContainer(target sprite.Vital, skin sprite.Skin) *HeartContainer {
	h := &HeartContainer{
		group:  sprite.NewGroup(),
		target: target,
		skin:   skin,
	}
	h.Update()
	return h
}

// Group returns the heart sprites
func (h *HeartContainer) Group() *sprite.Group { return h.group }

// Len returns the number of hearts shown
func (h *HeartContainer) Len() int { return h.group.Len() }

// Update reconciles the heart count with the tracked health.
// Hearts are removed from the end and appended at their slot position.
func (h *HeartContainer) Update() {
	want := 0
	if h.target != nil {
		want = max(h.target.Health(), 0)
	}
	for h.group.Len() > want {
		h.group.Last().Kill()
	}
	for i := h.group.Len(); i < want; i++ {
		x, y := HeartPosition(i)
		h.group.Add(sprite.NewStatic(x, y, sprite.KindUI, h.skin, HeartScale))
	}
}

// HeartPosition returns the top-left corner of heart slot i
func HeartPosition(i int) (x, y float64) {
	return float64(HeartSpacing*i + HeartMargin), HeartMargin
}

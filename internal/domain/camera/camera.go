// Package camera maps world positions to view positions and back.
package camera

import "github.com/younwookim/spritecore/internal/domain/sprite"

// minShake is the jitter amplitude below which shaking stops (pixels)
const minShake = 0.5

// DefaultShakeDecay is the per-tick multiplier applied to the shake amplitude
const DefaultShakeDecay = 0.8

// Target is anything the camera can follow
type Target interface {
	Rect() sprite.Rect
}

// CenterFunc computes the next camera offset.
// current is the present offset, view the view size, target the followed rect.
type CenterFunc func(current, view sprite.Vec, target sprite.Rect) sprite.Vec

// Camera holds the world-to-view offset.
// View position = world position + offset + shake jitter.
type Camera struct {
	center CenterFunc
	view   sprite.Vec
	offset sprite.Vec

	shake      float64
	shakeDecay float64
	jitter     sprite.Vec
	flip       bool
}

// New creates a camera for a view of width x height using the given strategy.
// A nil strategy keeps the camera fixed at the origin.
func New(center CenterFunc, width, height float64) *Camera {
	if center == nil {
		center = Fixed(sprite.Vec{})
	}
	return &Camera{
		center:     center,
		view:       sprite.Vec{X: width, Y: height},
		shakeDecay: DefaultShakeDecay,
	}
}

// Offset returns the current translation, without shake
func (c *Camera) Offset() sprite.Vec { return c.offset }

// SetOffset places the camera directly
func (c *Camera) SetOffset(o sprite.Vec) { c.offset = o }

// SetStrategy swaps the centering function without touching the offset
func (c *Camera) SetStrategy(center CenterFunc) {
	if center != nil {
		c.center = center
	}
}

// SetShakeDecay sets the per-tick shake decay multiplier (0..1)
func (c *Camera) SetShakeDecay(decay float64) { c.shakeDecay = decay }

// Apply returns the view position of an entity's top-left corner
func (c *Camera) Apply(t Target) sprite.Vec {
	return c.ApplyVec(t.Rect().Min())
}

// ApplyVec translates a world point into view space
func (c *Camera) ApplyVec(world sprite.Vec) sprite.Vec {
	return world.Add(c.offset).Add(c.jitter)
}

// ApplyRect translates a world rect into view space
func (c *Camera) ApplyRect(r sprite.Rect) sprite.Rect {
	return r.Translate(c.offset.Add(c.jitter))
}

// Reverse maps a view point (e.g. the cursor) back into world space.
// It is the exact inverse of ApplyVec.
func (c *Camera) Reverse(view sprite.Vec) sprite.Vec {
	return view.Sub(c.offset).Sub(c.jitter)
}

// Update recentres on target and advances the shake.
// A nil target only advances the shake.
func (c *Camera) Update(target Target) {
	if target != nil {
		c.offset = c.center(c.offset, c.view, target.Rect())
	}
	c.stepShake()
}

// Shake starts a decaying jitter. A weaker shake never cuts a stronger one short.
func (c *Camera) Shake(intensity float64) {
	if intensity > c.shake {
		c.shake = intensity
	}
}

// Shaking reports whether jitter is active
func (c *Camera) Shaking() bool { return c.shake > 0 }

func (c *Camera) stepShake() {
	if c.shake <= 0 {
		c.jitter = sprite.Vec{}
		return
	}
	c.flip = !c.flip
	s := c.shake
	if !c.flip {
		s = -s
	}
	c.jitter = sprite.Vec{X: s, Y: s}
	c.shake *= c.shakeDecay
	if c.shake < minShake {
		c.shake = 0
	}
}

package camera

import "github.com/younwookim/spritecore/internal/domain/sprite"

// Simple keeps the target's centre at the centre of the view
func Simple(_, view sprite.Vec, target sprite.Rect) sprite.Vec {
	c := target.Center()
	return sprite.Vec{X: view.X/2 - c.X, Y: view.Y/2 - c.Y}
}

// Fixed never moves the camera from offset
func Fixed(offset sprite.Vec) CenterFunc {
	return func(_, _ sprite.Vec, _ sprite.Rect) sprite.Vec {
		return offset
	}
}

// Bounded clamps the inner strategy so the view stays inside world.
// A world smaller than the view is centred on that axis.
func Bounded(world sprite.Rect, inner CenterFunc) CenterFunc {
	return func(current, view sprite.Vec, target sprite.Rect) sprite.Vec {
		o := inner(current, view, target)
		o.X = clampAxis(o.X, world.X, world.W, view.X)
		o.Y = clampAxis(o.Y, world.Y, world.H, view.Y)
		return o
	}
}

func clampAxis(o, start, size, view float64) float64 {
	if size <= view {
		return (view-size)/2 - start
	}
	hi := -start
	lo := view - (start + size)
	if o > hi {
		return hi
	}
	if o < lo {
		return lo
	}
	return o
}

// Lerp moves a fraction of the way toward the inner strategy each update.
// factor is clamped to [0, 1]; 1 behaves like inner.
func Lerp(factor float64, inner CenterFunc) CenterFunc {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return func(current, view sprite.Vec, target sprite.Rect) sprite.Vec {
		goal := inner(current, view, target)
		return current.Add(goal.Sub(current).Scale(factor))
	}
}

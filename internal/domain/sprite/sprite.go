// Package sprite implements the entity core shared by both games:
// capability interfaces, entity groups, axis-separated movement and
// the living-entity damage state machine.
//
// Entities are composed by embedding. Every concrete entity embeds
// Sprite (directly or through Movable/Living), which carries position,
// frame-derived size and group membership. Behaviour that differs per
// entity kind is reached through small optional interfaces (Collider,
// Damageable, Updater) rather than concrete type checks.
package sprite

import "image"

// Frame is a drawable image. Only its bounds matter to the core.
// *ebiten.Image and every image.Image satisfy it.
type Frame interface {
	Bounds() image.Rectangle
}

// Logical frame keys supplied by the asset collaborator
const (
	FrameBase = "base"
	FrameHurt = "hurt"
)

// Skin maps logical frame keys to frames
type Skin map[string]Frame

// Kind tags an entity with its role. Projectiles use it to ignore their origin.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindHazard
	KindProjectile
	KindScenery
	KindUI
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindHazard:
		return "Hazard"
	case KindProjectile:
		return "Projectile"
	case KindScenery:
		return "Scenery"
	case KindUI:
		return "UI"
	default:
		return "None"
	}
}

// Entity is any positioned, drawable object in the simulation.
// The interface is sealed: implementations must embed Sprite.
type Entity interface {
	Rect() Rect
	Kind() Kind
	Image() Frame
	Dead() bool
	Kill() bool
	base() *Sprite
}

// Sprite is the positionable base embedded by every entity
type Sprite struct {
	// Position of the top-left corner in world pixels
	X, Y float64
	// Angle is the visual orientation in degrees. Collision ignores it.
	Angle float64
	// Scale multiplies the frame size
	Scale float64

	kind   Kind
	skin   Skin
	key    string
	dead   bool
	groups map[*Group]struct{}
}

// Init prepares s with a position, kind, skin and scale.
// A scale of 0 means 1. A killed sprite stays dead: Init is then a no-op.
func (s *Sprite) Init(x, y float64, kind Kind, skin Skin, scale float64) {
	if s.dead {
		return
	}
	if scale == 0 {
		scale = 1
	}
	s.X, s.Y = x, y
	s.kind = kind
	s.skin = skin
	s.key = FrameBase
	s.Scale = scale
}

func (s *Sprite) base() *Sprite { return s }

// Kind returns the entity role
func (s *Sprite) Kind() Kind { return s.kind }

// Size returns width and height derived from the current frame
func (s *Sprite) Size() (w, h float64) {
	f := s.Image()
	if f == nil {
		return 0, 0
	}
	b := f.Bounds()
	return float64(b.Dx()) * s.Scale, float64(b.Dy()) * s.Scale
}

// Rect returns the bounding rectangle recomputed from the current position
func (s *Sprite) Rect() Rect {
	w, h := s.Size()
	return Rect{X: s.X, Y: s.Y, W: w, H: h}
}

// Center returns the centre of the bounding rectangle
func (s *Sprite) Center() Vec {
	return s.Rect().Center()
}

// Image returns the frame for the current visual key, falling back to base
func (s *Sprite) Image() Frame {
	if f, ok := s.skin[s.key]; ok {
		return f
	}
	return s.skin[FrameBase]
}

// FrameKey returns the current logical frame key
func (s *Sprite) FrameKey() string { return s.key }

// SetFrameKey selects which skin frame is shown (and sized from)
func (s *Sprite) SetFrameKey(key string) { s.key = key }

// SetFrame replaces the frame stored under key. Used for animation playback.
func (s *Sprite) SetFrame(key string, f Frame) {
	if s.skin == nil {
		s.skin = make(Skin)
	}
	s.skin[key] = f
}

// Pose returns the draw scale and angle
func (s *Sprite) Pose() (scale, angle float64) { return s.Scale, s.Angle }

// Rotate sets the visual angle
func (s *Sprite) Rotate(angle float64) { s.Angle = angle }

// Dead reports whether the entity has been killed
func (s *Sprite) Dead() bool { return s.dead }

// Alive reports whether the entity is still part of the simulation
func (s *Sprite) Alive() bool { return !s.dead }

// Kill marks the entity dead and removes it from every group holding it.
// Returns true only on the call that performed the transition.
func (s *Sprite) Kill() bool {
	if s.dead {
		return false
	}
	s.dead = true
	for g := range s.groups {
		g.removeBase(s)
	}
	return true
}

// Groups returns the number of groups currently holding the entity
func (s *Sprite) Groups() int { return len(s.groups) }

// InGroup reports whether g holds the entity
func (s *Sprite) InGroup(g *Group) bool {
	_, ok := s.groups[g]
	return ok
}

func (s *Sprite) join(g *Group) {
	if s.groups == nil {
		s.groups = make(map[*Group]struct{})
	}
	s.groups[g] = struct{}{}
}

func (s *Sprite) leave(g *Group) {
	delete(s.groups, g)
}

// OffSurface reports whether the entity lies entirely outside bounds
func (s *Sprite) OffSurface(bounds Rect) bool {
	r := s.Rect()
	return r.Right() < bounds.X || r.X > bounds.Right() ||
		r.Bottom() < bounds.Y || r.Y > bounds.Bottom()
}

package controller

import (
	"image"

	"github.com/younwookim/spritecore/internal/domain/sprite"
)

// vitals is a tracked-player stand-in with settable health
type vitals struct {
	health, max int
}

func (v *vitals) Health() int    { return v.health }
func (v *vitals) MaxHealth() int { return v.max }

func box(w, h int) sprite.Skin {
	return sprite.Skin{sprite.FrameBase: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// shoot kills e with a projectile-flagged hit
func shoot(e sprite.Damageable) {
	for e.Damage(1, sprite.Hit{ByProjectile: true}) != sprite.Died {
	}
}

package scene

import (
	"log"

	"github.com/younwookim/spritecore/internal/domain/camera"
	"github.com/younwookim/spritecore/internal/domain/sprite"
	"github.com/younwookim/spritecore/internal/infrastructure/config"
)

// Sink consumes the effects of one tick, typically an audio dispatcher
type Sink interface {
	Play(fx []sprite.Effect)
}

// Dispatch applies shake effects to cam and hands every effect to sink
func Dispatch(fx []sprite.Effect, cam *camera.Camera, sink Sink) {
	for _, e := range fx {
		if e.Kind == sprite.EffectShake && cam != nil {
			cam.Shake(e.Magnitude)
		}
	}
	if sink != nil && len(fx) > 0 {
		sink.Play(fx)
	}
}

// CameraStrategy maps a camera config to a centering function.
// world bounds the "bounded" and "lerp" strategies.
func CameraStrategy(cfg config.CameraConfig, world sprite.Rect) camera.CenterFunc {
	switch cfg.Strategy {
	case "fixed":
		return camera.Fixed(sprite.Vec{})
	case "bounded":
		return camera.Bounded(world, camera.Simple)
	case "lerp":
		return camera.Bounded(world, camera.Lerp(cfg.Lerp, camera.Simple))
	case "simple", "":
		return camera.Simple
	default:
		log.Printf("Unknown camera strategy %q, using simple", cfg.Strategy)
		return camera.Simple
	}
}

// NewCamera creates a view-sized camera configured by cfg
func NewCamera(cfg config.CameraConfig, viewW, viewH float64, world sprite.Rect) *camera.Camera {
	cam := camera.New(CameraStrategy(cfg, world), viewW, viewH)
	if cfg.ShakeDecay > 0 {
		cam.SetShakeDecay(cfg.ShakeDecay)
	}
	return cam
}

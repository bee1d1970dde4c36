package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/spritecore/internal/domain/camera"
	"github.com/younwookim/spritecore/internal/domain/sprite"
)

// debug overlay colour, drawn over every bounding box
var colorBox = color.RGBA{255, 0, 0, 96}

// posed entities carry a draw scale and angle
type posed interface {
	Pose() (scale, angle float64)
}

// debugTextWidth approximates the width of one DebugPrint glyph
const debugTextWidth = 6

// DrawOptions returns the image options placing e on screen.
// The frame is scaled, then rotated around its centre; collision is
// unaffected by the rotation.
func DrawOptions(cam *camera.Camera, e sprite.Entity, scale, angle float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	f := e.Image()
	if f == nil {
		return op
	}
	b := f.Bounds()
	w, h := float64(b.Dx())*scale, float64(b.Dy())*scale

	op.GeoM.Scale(scale, scale)
	if angle != 0 {
		op.GeoM.Translate(-w/2, -h/2)
		// Angles are counter-clockwise, ebiten rotates clockwise
		op.GeoM.Rotate(-angle * math.Pi / 180)
		op.GeoM.Translate(w/2, h/2)
	}
	at := cam.Apply(e)
	op.GeoM.Translate(at.X, at.Y)
	return op
}

// DrawEntity draws e through cam. Entities whose frame is not an ebiten
// image are skipped.
func DrawEntity(screen *ebiten.Image, cam *camera.Camera, e sprite.Entity, debug bool) {
	img, ok := e.Image().(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	scale, angle := 1.0, 0.0
	if p, ok := e.(posed); ok {
		scale, angle = p.Pose()
	}
	screen.DrawImage(img, DrawOptions(cam, e, scale, angle))

	if debug {
		r := cam.ApplyRect(e.Rect())
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, colorBox)
	}
}

// DrawGroup draws every live member of g in insertion order
func DrawGroup(screen *ebiten.Image, cam *camera.Camera, g *sprite.Group, debug bool) {
	g.Each(func(e sprite.Entity) {
		if e.Dead() {
			return
		}
		DrawEntity(screen, cam, e, debug)
	})
}

// CenteredText prints text horizontally centred on the screen at y
func CenteredText(screen *ebiten.Image, text string, y int) {
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, text, (w-len(text)*debugTextWidth)/2, y)
}

// Overlay dims the whole screen with c
func Overlay(screen *ebiten.Image, c color.Color) {
	b := screen.Bounds()
	ebitenutil.DrawRect(screen, 0, 0, float64(b.Dx()), float64(b.Dy()), c)
}

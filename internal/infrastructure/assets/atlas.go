// Package assets supplies the frames entities are drawn with.
// Every key has a generated placeholder; PNG files configured for a key
// replace it.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/spritecore/internal/domain/sprite"
	"github.com/younwookim/spritecore/internal/infrastructure/config"
)

// Frame keys
const (
	Ship       = "ship"
	ShipHurt   = "ship-hurt"
	Laser      = "laser"
	Asteroid1  = "asteroid1"
	Asteroid2  = "asteroid2"
	Asteroid3  = "asteroid3"
	Heart      = "heart"
	Player     = "player"
	PlayerHurt = "player-hurt"
	Enemy      = "enemy"
	EnemyHurt  = "enemy-hurt"
	Bullet     = "bullet"
	Wall       = "wall"
	Floor      = "floor"
	Beacon     = "beacon"
)

// Beacon sheet layout
const (
	BeaconFrames    = 7
	BeaconSequences = 2
	BeaconSize      = 16
)

// Placeholder describes a generated solid frame
type Placeholder struct {
	W, H  int
	Color color.RGBA
}

// DefaultPlaceholders are the generated frames for every key
var DefaultPlaceholders = map[string]Placeholder{
	Ship:       {W: 16, H: 16, Color: color.RGBA{0x60, 0xc0, 0xff, 0xff}},
	ShipHurt:   {W: 16, H: 16, Color: color.RGBA{0xff, 0x60, 0x60, 0xff}},
	Laser:      {W: 4, H: 8, Color: color.RGBA{0xff, 0xff, 0x80, 0xff}},
	Asteroid1:  {W: 12, H: 12, Color: color.RGBA{0x82, 0x78, 0x50, 0xff}},
	Asteroid2:  {W: 20, H: 20, Color: color.RGBA{0x82, 0x78, 0x50, 0xff}},
	Asteroid3:  {W: 28, H: 28, Color: color.RGBA{0x82, 0x78, 0x50, 0xff}},
	Heart:      {W: 8, H: 8, Color: color.RGBA{0xe0, 0x20, 0x40, 0xff}},
	Player:     {W: 24, H: 24, Color: color.RGBA{0x20, 0x80, 0x20, 0xff}},
	PlayerHurt: {W: 24, H: 24, Color: color.RGBA{0xc0, 0x20, 0x20, 0xff}},
	Enemy:      {W: 24, H: 24, Color: color.RGBA{0x80, 0x20, 0x80, 0xff}},
	EnemyHurt:  {W: 24, H: 24, Color: color.RGBA{0xff, 0x80, 0xff, 0xff}},
	Bullet:     {W: 8, H: 8, Color: color.RGBA{0x20, 0x20, 0x20, 0xff}},
	Wall:       {W: 32, H: 32, Color: color.RGBA{0x50, 0x50, 0x50, 0xff}},
	Floor:      {W: 32, H: 32, Color: color.RGBA{0xd8, 0xd8, 0xd0, 0xff}},
}

// Atlas holds frames by key
type Atlas struct {
	images map[string]*ebiten.Image
}

// NewAtlas creates an atlas filled with the default placeholders
func NewAtlas() *Atlas {
	a := &Atlas{images: make(map[string]*ebiten.Image)}
	for key, p := range DefaultPlaceholders {
		img := ebiten.NewImage(p.W, p.H)
		img.Fill(p.Color)
		a.images[key] = img
	}
	a.images[Beacon] = beaconSheet()
	return a
}

// Load replaces placeholders with the PNG files named in cfg
func (a *Atlas) Load(cfg config.AssetConfig) error {
	keys := make([]string, 0, len(cfg.Files))
	for key := range cfg.Files {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := filepath.Join(cfg.Dir, cfg.Files[key])
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to load asset %s from %s: %w", key, path, err)
		}
		a.images[key] = img
	}
	return nil
}

// Image returns the frame for key, or nil
func (a *Atlas) Image(key string) *ebiten.Image {
	return a.images[key]
}

// Skin builds a skin from keys: the first is the base frame, the second
// (optional) the hurt frame. Unknown keys are left out.
func (a *Atlas) Skin(keys ...string) sprite.Skin {
	skin := sprite.Skin{}
	slots := []string{sprite.FrameBase, sprite.FrameHurt}
	for i, key := range keys {
		if i >= len(slots) {
			break
		}
		if img, ok := a.images[key]; ok {
			skin[slots[i]] = img
		}
	}
	return skin
}

// Sheet slices the image at key into frames of w x h, row by row
func (a *Atlas) Sheet(key string, w, h int) []*ebiten.Image {
	img, ok := a.images[key]
	if !ok {
		return nil
	}
	return Slice(img, w, h)
}

// Slice cuts sheet into w x h frames in row-major order.
// Partial frames at the right and bottom edges are dropped.
func Slice(sheet *ebiten.Image, w, h int) []*ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	b := sheet.Bounds()
	var frames []*ebiten.Image
	for y := b.Min.Y; y+h <= b.Max.Y; y += h {
		for x := b.Min.X; x+w <= b.Max.X; x += w {
			frames = append(frames, sheet.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image))
		}
	}
	return frames
}

// beaconSheet has one row per sequence; frames in a row pulse in brightness
func beaconSheet() *ebiten.Image {
	sheet := ebiten.NewImage(BeaconSize*BeaconFrames, BeaconSize*BeaconSequences)
	for i, frame := range Slice(sheet, BeaconSize, BeaconSize) {
		v := uint8(0x40 + (i%BeaconFrames)*0x20)
		if i/BeaconFrames == 0 {
			frame.Fill(color.RGBA{v, v / 2, 0x10, 0xff})
		} else {
			frame.Fill(color.RGBA{0x10, v / 2, v, 0xff})
		}
	}
	return sheet
}

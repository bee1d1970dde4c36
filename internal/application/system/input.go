package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/spritecore/internal/domain/sprite"
)

// InputSystem polls keyboard and pointer state
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	// Fire is held, not edge-triggered: the player cooldown paces shots
	Fire      bool
	MouseX    int
	MouseY    int
	MouseFire bool
	Pause     bool
	Restart   bool
	Debug     bool
	NextStrip bool
	Quit      bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:      ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD),
		Up:        ebiten.IsKeyPressed(ebiten.KeyW),
		Down:      ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
		MouseX:    mx,
		MouseY:    my,
		MouseFire: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pause:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Debug:     inpututil.IsKeyJustPressed(ebiten.KeyF1),
		NextStrip: inpututil.IsKeyJustReleased(ebiten.KeyTab),
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Horizontal returns the x delta for the held A/D keys
func (in InputState) Horizontal(speed float64) float64 {
	dx := 0.0
	if in.Left {
		dx -= speed
	}
	if in.Right {
		dx += speed
	}
	return dx
}

// Vertical returns the y delta for the held W/S keys
func (in InputState) Vertical(speed float64) float64 {
	dy := 0.0
	if in.Up {
		dy -= speed
	}
	if in.Down {
		dy += speed
	}
	return dy
}

// Mouse returns the pointer position in view coordinates
func (in InputState) Mouse() sprite.Vec {
	return sprite.Vec{X: float64(in.MouseX), Y: float64(in.MouseY)}
}

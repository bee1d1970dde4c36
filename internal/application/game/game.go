// Package game drives the active scene and handles scene switches.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spritecore/internal/application/scene"
)

// Game implements ebiten.Game on top of a scene
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a game running initial at the given tick rate.
// initial.OnEnter is called immediately.
func New(initial scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update steps the current scene and switches to the scene it returns.
// scene.ErrQuit ends the run cleanly.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Scene returns the active scene
func (g *Game) Scene() scene.Scene { return g.current }

// DT returns the seconds passed to each scene update
func (g *Game) DT() float64 { return g.dt }

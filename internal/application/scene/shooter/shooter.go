// Package shooter provides the vertical shooter scene: a ship at the bottom
// of the screen fires at waves of falling asteroids.
package shooter

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spritecore/internal/application/controller"
	"github.com/younwookim/spritecore/internal/application/scene"
	"github.com/younwookim/spritecore/internal/application/state"
	"github.com/younwookim/spritecore/internal/application/system"
	"github.com/younwookim/spritecore/internal/domain/camera"
	"github.com/younwookim/spritecore/internal/domain/sprite"
	"github.com/younwookim/spritecore/internal/infrastructure/assets"
	"github.com/younwookim/spritecore/internal/infrastructure/config"
)

var (
	colorBG       = color.RGBA{0, 0, 0, 255}
	colorPause    = color.RGBA{0, 0, 0, 128}
	colorGameOver = color.RGBA{60, 0, 0, 160}
)

// Scene is the shooter gameplay scene
type Scene struct {
	cfg    *config.ShooterConfig
	atlas  *assets.Atlas
	sink   scene.Sink
	input  func() system.InputState
	state  *state.Machine
	rng    *rand.Rand
	bounds sprite.Rect
	debug  bool

	colliders *sprite.Group
	all       *sprite.Group
	player    *sprite.Player
	spawner   *controller.Spawner
	hearts    *controller.HeartContainer
	score     *controller.ScoreCounter
	cam       *camera.Camera
	fx        sprite.Effects
}

// New creates the shooter scene. sink may be nil to run silently.
func New(cfg *config.ShooterConfig, display *config.DisplayConfig, atlas *assets.Atlas, sink scene.Sink) *Scene {
	in := system.NewInputSystem()
	s := &Scene{
		cfg:    cfg,
		atlas:  atlas,
		sink:   sink,
		input:  in.GetInput,
		state:  state.NewMachine(),
		bounds: sprite.Rect{W: float64(display.ScreenWidth), H: float64(display.ScreenHeight)},
		debug:  display.Debug.BoundingBoxes,
	}
	s.SetSeed(time.Now().UnixNano())
	return s
}

// SetInput replaces the input source
func (s *Scene) SetInput(fn func() system.InputState) { s.input = fn }

// SetSeed reseeds the spawner and rebuilds the world
func (s *Scene) SetSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.reset()
}

// reset builds a fresh world
func (s *Scene) reset() {
	s.colliders = sprite.NewGroup()
	s.all = sprite.NewGroup()

	pc := s.cfg.Player
	skin := s.atlas.Skin(assets.Ship, assets.ShipHurt)
	w, h := frameSize(skin, pc.Scale)
	s.player = sprite.NewPlayer(s.bounds.W/2-w/2, s.bounds.H-s.bounds.H/10-h, skin, pc.Scale, pc.Sprite(), s.atlas.Skin(assets.Laser))
	s.player.Muzzle = pc.MuzzleFunc()
	s.colliders.Add(s.player)
	s.all.Add(s.player)

	skins := []sprite.Skin{
		s.atlas.Skin(assets.Asteroid1),
		s.atlas.Skin(assets.Asteroid2),
		s.atlas.Skin(assets.Asteroid3),
	}
	s.spawner = controller.NewSpawner(controller.SpawnerConfig{
		CoolDown: s.cfg.Spawner.CoolDown,
		Factor:   s.cfg.Spawner.Factor,
		Bounds:   s.bounds,
	}, controller.HazardFactory(controller.HazardConfig{
		Scale:    s.cfg.Hazard.Scale,
		RotSpeed: s.cfg.Hazard.RotSpeed,
	}, skins), s.player, s.rng, s.colliders, s.all)

	s.hearts = controller.NewHeartContainer(s.player, s.atlas.Skin(assets.Heart))
	s.score = controller.NewScoreCounter()
	s.cam = scene.NewCamera(s.cfg.Camera, s.bounds.W, s.bounds.H, s.bounds)
	s.fx.Drain()
}

// Update proceeds the game state (implements scene.Scene).
// Q ends the run with scene.ErrQuit.
func (s *Scene) Update(_ float64) (scene.Scene, error) {
	in := s.input()
	if in.Quit {
		return nil, scene.ErrQuit
	}
	s.Step(in)
	return nil, nil
}

// Step runs one tick with the given input
func (s *Scene) Step(in system.InputState) {
	if in.Debug {
		s.debug = !s.debug
	}
	s.state.Tick()

	switch s.state.Current() {
	case state.StatePlaying:
		if in.Pause {
			s.state.TogglePause()
			return
		}
		s.updatePlaying(in)
	case state.StatePaused:
		if in.Pause {
			s.state.TogglePause()
		}
	case state.StateGameOver:
		s.cam.Update(nil)
		if in.Restart {
			s.state.Restart()
			s.reset()
			log.Printf("Shooter restarted")
		}
	}
}

func (s *Scene) updatePlaying(in system.InputState) {
	tick := &sprite.Tick{Colliders: s.colliders, Bounds: s.bounds, FX: &s.fx}

	if dx := in.Horizontal(s.player.Speed); dx != 0 {
		s.player.Move(dx, 0, s.colliders, &s.fx)
		s.clampPlayer()
	}
	if in.Fire {
		s.player.Attack(&s.fx)
	}

	s.all.Update(tick)

	sprite.CullOffSurface(s.all, s.bounds)
	sprite.CullOffSurface(s.player.Projectiles(), s.bounds)

	delta, mult := s.spawner.Update(s.bounds)
	s.score.Add(delta, mult)
	s.spawner.SetFactor(controller.FactorFor(mult))

	s.hearts.Update()
	s.cam.Update(s.player)

	if !s.player.Alive() {
		s.state.GameOver()
		s.all.KillAll()
		log.Printf("Shooter game over: score %d", s.score.Score())
	}

	scene.Dispatch(s.fx.Drain(), s.cam, s.sink)
}

// clampPlayer keeps the ship on screen
func (s *Scene) clampPlayer() {
	r := s.player.Rect()
	switch {
	case r.X < s.bounds.X:
		s.player.X = s.bounds.X
	case r.Right() > s.bounds.Right():
		s.player.X = s.bounds.Right() - r.W
	}
}

// Draw renders the scene
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	scene.DrawGroup(screen, s.cam, s.player.Projectiles(), s.debug)
	scene.DrawGroup(screen, s.cam, s.all, s.debug)
	scene.DrawGroup(screen, s.cam, s.hearts.Group(), false)

	scene.CenteredText(screen, s.score.Text(), 14)
	scene.CenteredText(screen, s.score.MultiplierText(), 28)
	scene.CenteredText(screen, s.score.LevelText(), 56)

	switch s.state.Current() {
	case state.StatePaused:
		scene.Overlay(screen, colorPause)
		scene.CenteredText(screen, "PAUSED\n\nPress ESC to resume", int(s.bounds.H)/2-20)
	case state.StateGameOver:
		scene.Overlay(screen, colorGameOver)
		scene.CenteredText(screen, "Game Over", int(s.bounds.H)/2-20)
		scene.CenteredText(screen, fmt.Sprintf("Score %s  |  Z to restart", s.score.Text()), int(s.bounds.H)/2)
	}
}

// OnEnter is called when the scene becomes active
func (s *Scene) OnEnter() {
	log.Printf("Entering shooter (factor %d)", s.spawner.Factor())
}

// OnExit is called when the scene is left
func (s *Scene) OnExit() {}

// State returns the active game state
func (s *Scene) State() state.GameState { return s.state.Current() }

// Player returns the ship
func (s *Scene) Player() *sprite.Player { return s.player }

// Score returns the score counter
func (s *Scene) Score() *controller.ScoreCounter { return s.score }

// Spawner returns the asteroid spawner
func (s *Scene) Spawner() *controller.Spawner { return s.spawner }

// Hearts returns the heart row
func (s *Scene) Hearts() *controller.HeartContainer { return s.hearts }

// Colliders returns the collision group
func (s *Scene) Colliders() *sprite.Group { return s.colliders }

// Debug reports whether bounding boxes are drawn
func (s *Scene) Debug() bool { return s.debug }

func frameSize(skin sprite.Skin, scale float64) (w, h float64) {
	f, ok := skin[sprite.FrameBase]
	if !ok {
		return 0, 0
	}
	if scale == 0 {
		scale = 1
	}
	b := f.Bounds()
	return float64(b.Dx()) * scale, float64(b.Dy()) * scale
}

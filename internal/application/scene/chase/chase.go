// Package chase provides the top-down scene: the player walks a walled
// level, aims with the mouse and shoots a follower that hunts them.
package chase

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/spritecore/internal/application/scene"
	"github.com/younwookim/spritecore/internal/application/state"
	"github.com/younwookim/spritecore/internal/application/system"
	"github.com/younwookim/spritecore/internal/domain/anim"
	"github.com/younwookim/spritecore/internal/domain/camera"
	"github.com/younwookim/spritecore/internal/domain/sprite"
	"github.com/younwookim/spritecore/internal/infrastructure/assets"
	"github.com/younwookim/spritecore/internal/infrastructure/config"
)

// RespawnDelay is the number of ticks before a killed follower returns
const RespawnDelay = 120

var (
	colorBG       = color.RGBA{255, 255, 255, 255}
	colorPause    = color.RGBA{0, 0, 0, 128}
	colorGameOver = color.RGBA{60, 0, 0, 160}
)

// Scene is the chase gameplay scene
type Scene struct {
	cfg     *config.ChaseConfig
	atlas   *assets.Atlas
	sink    scene.Sink
	input   func() system.InputState
	state   *state.Machine
	walls   int
	view    sprite.Rect
	world   sprite.Rect
	debug   bool
	beaconH int

	floors    *sprite.Group
	colliders *sprite.Group
	all       *sprite.Group
	player    *sprite.Player
	follower  *sprite.Follower
	kills     int
	respawn   int
	cam       *camera.Camera
	beacon    *anim.Strip[*ebiten.Image]
	fx        sprite.Effects
}

// New creates the chase scene. The level must already be validated.
// sink may be nil to run silently.
func New(cfg *config.ChaseConfig, display *config.DisplayConfig, atlas *assets.Atlas, sink scene.Sink) *Scene {
	in := system.NewInputSystem()
	w, h := cfg.Level.Size()
	hold := display.Framerate / 6
	s := &Scene{
		cfg:     cfg,
		atlas:   atlas,
		sink:    sink,
		input:   in.GetInput,
		state:   state.NewMachine(),
		view:    sprite.Rect{W: float64(display.ScreenWidth), H: float64(display.ScreenHeight)},
		world:   sprite.Rect{W: float64(w), H: float64(h)},
		debug:   display.Debug.BoundingBoxes,
		beaconH: hold,
	}
	s.reset()
	return s
}

// SetInput replaces the input source
func (s *Scene) SetInput(fn func() system.InputState) { s.input = fn }

// Reset rebuilds the world and returns to play
func (s *Scene) Reset() {
	s.state.Restart()
	s.reset()
}

// reset builds a fresh world from the level grid
func (s *Scene) reset() {
	s.floors = sprite.NewGroup()
	s.colliders = sprite.NewGroup()
	s.all = sprite.NewGroup()
	s.walls = 0
	s.kills = 0
	s.respawn = 0

	wall := s.atlas.Skin(assets.Wall)
	floor := s.atlas.Skin(assets.Floor)
	size := float64(s.cfg.Level.TileSize)
	for _, t := range s.cfg.Level.Tiles() {
		if t.Solid {
			w, _ := frameSize(wall, 1)
			e := sprite.NewStatic(t.X, t.Y, sprite.KindScenery, wall, tileScale(size, w))
			s.colliders.Add(e)
			s.all.Add(e)
			s.walls++
			continue
		}
		w, _ := frameSize(floor, 1)
		s.floors.Add(sprite.NewStatic(t.X, t.Y, sprite.KindScenery, floor, tileScale(size, w)))
	}

	pc := s.cfg.Player
	skin := s.atlas.Skin(assets.Player, assets.PlayerHurt)
	s.player = sprite.NewPlayer(s.view.W/2, s.view.H/2, skin, pc.Scale, pc.Sprite(), s.atlas.Skin(assets.Bullet))
	s.player.Muzzle = pc.MuzzleFunc()
	s.colliders.Add(s.player)
	s.all.Add(s.player)

	s.spawnFollower()

	s.cam = scene.NewCamera(s.cfg.Camera, s.view.W, s.view.H, s.world)
	s.cam.Update(s.player)
	if s.beacon == nil {
		frames := s.atlas.Sheet(assets.Beacon, assets.BeaconSize, assets.BeaconSize)
		s.beacon = anim.New(frames, s.beaconH, anim.WithSequence(assets.BeaconFrames), anim.Manual())
	}
	s.beacon.Reset()
	s.fx.Drain()
}

func (s *Scene) spawnFollower() {
	fc := s.cfg.Follower
	skin := s.atlas.Skin(assets.Enemy, assets.EnemyHurt)
	s.follower = sprite.NewFollower(fc.Spawn.X, fc.Spawn.Y, skin, fc.Scale, fc.Sprite(), s.player)
	s.colliders.Add(s.follower)
	s.all.Add(s.follower)
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
	if in.NextStrip {
		s.beacon.RestartAtNextSequence()
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
			s.Reset()
			log.Printf("Chase restarted")
		}
	}
}

func (s *Scene) updatePlaying(in system.InputState) {
	tick := &sprite.Tick{Colliders: s.colliders, Bounds: s.world, FX: &s.fx}

	s.player.RotateToTarget(s.cam.Reverse(in.Mouse()))
	s.player.Move(in.Horizontal(s.player.Speed), in.Vertical(s.player.Speed), s.colliders, &s.fx)
	if in.MouseFire || in.Fire {
		s.player.Attack(&s.fx)
	}

	s.all.Update(tick)
	sprite.CullOffSurface(s.player.Projectiles(), s.world)
	s.updateFollower()

	s.cam.Update(s.player)
	s.beacon.Next()

	if !s.player.Alive() {
		s.state.GameOver()
		s.all.KillAll()
		log.Printf("Chase game over: %d kills", s.kills)
	}

	scene.Dispatch(s.fx.Drain(), s.cam, s.sink)
}

// updateFollower counts kills and brings the follower back after a delay
func (s *Scene) updateFollower() {
	if s.follower != nil {
		if s.follower.Dead() {
			s.kills++
			s.follower = nil
			s.respawn = RespawnDelay
		}
		return
	}
	s.respawn--
	if s.respawn <= 0 {
		s.spawnFollower()
	}
}

// Draw renders the scene
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	scene.DrawGroup(screen, s.cam, s.floors, false)
	scene.DrawGroup(screen, s.cam, s.player.Projectiles(), s.debug)
	scene.DrawGroup(screen, s.cam, s.all, s.debug)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d  Kills %d", s.player.Health(), s.player.MaxHealth(), s.kills), 8, 8)
	if frame := s.beacon.Current(); frame != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(s.view.W-float64(assets.BeaconSize)-8, 8)
		screen.DrawImage(frame, op)
	}

	switch s.state.Current() {
	case state.StatePaused:
		scene.Overlay(screen, colorPause)
		scene.CenteredText(screen, "PAUSED\n\nPress ESC to resume", int(s.view.H)/2-20)
	case state.StateGameOver:
		scene.Overlay(screen, colorGameOver)
		scene.CenteredText(screen, "Game Over", int(s.view.H)/2-20)
		scene.CenteredText(screen, fmt.Sprintf("Kills %d  |  Z to restart", s.kills), int(s.view.H)/2)
	}
}

// OnEnter is called when the scene becomes active
func (s *Scene) OnEnter() {
	log.Printf("Entering chase (%d walls)", s.walls)
}

// OnExit is called when the scene is left
func (s *Scene) OnExit() {}

// State returns the active game state
func (s *Scene) State() state.GameState { return s.state.Current() }

// Player returns the controlled entity
func (s *Scene) Player() *sprite.Player { return s.player }

// Follower returns the live follower, or nil while it waits to respawn
func (s *Scene) Follower() *sprite.Follower { return s.follower }

// Kills returns how many followers were destroyed
func (s *Scene) Kills() int { return s.kills }

// Colliders returns the collision group
func (s *Scene) Colliders() *sprite.Group { return s.colliders }

// Floors returns the non-solid tiles
func (s *Scene) Floors() *sprite.Group { return s.floors }

// Camera returns the scene camera
func (s *Scene) Camera() *camera.Camera { return s.cam }

// Beacon returns the HUD animation strip
func (s *Scene) Beacon() *anim.Strip[*ebiten.Image] { return s.beacon }

// World returns the level bounds in pixels
func (s *Scene) World() sprite.Rect { return s.world }

func tileScale(tile, frame float64) float64 {
	if frame == 0 {
		return 1
	}
	return tile / frame
}

func frameSize(skin sprite.Skin, scale float64) (w, h float64) {
	f, ok := skin[sprite.FrameBase]
	if !ok {
		return 0, 0
	}
	b := f.Bounds()
	return float64(b.Dx()) * scale, float64(b.Dy()) * scale
}

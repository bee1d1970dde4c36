package shooter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spritecore/internal/application/scene"
	"github.com/younwookim/spritecore/internal/application/state"
	"github.com/younwookim/spritecore/internal/application/system"
	"github.com/younwookim/spritecore/internal/domain/sprite"
	"github.com/younwookim/spritecore/internal/infrastructure/assets"
	"github.com/younwookim/spritecore/internal/infrastructure/config"
)

type recordingSink struct {
	effects []sprite.Effect
}

func (r *recordingSink) Play(fx []sprite.Effect) { r.effects = append(r.effects, fx...) }

func (r *recordingSink) kinds() []sprite.EffectKind {
	var out []sprite.EffectKind
	for _, e := range r.effects {
		out = append(out, e.Kind)
	}
	return out
}

func newTestScene(t *testing.T) (*Scene, *recordingSink) {
	t.Helper()
	loader := config.NewLoader("../../../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	sink := &recordingSink{}
	s := New(cfg.Shooter, cfg.Display, assets.NewAtlas(), sink)
	s.SetSeed(1)
	s.SetInput(func() system.InputState { return system.InputState{} })
	return s, sink
}

func TestNew(t *testing.T) {
	s, _ := newTestScene(t)

	p := s.Player()
	r := p.Rect()
	assert.Equal(t, 32.0, r.W, "ship is drawn at scale 2")
	assert.Equal(t, 400.0, r.Center().X)
	assert.Equal(t, 360.0, r.Bottom())
	assert.Equal(t, 3, p.Health())
	assert.Equal(t, 3, s.Hearts().Len())
	assert.Equal(t, state.StatePlaying, s.State())
	assert.True(t, s.Colliders().Has(p))
}

func TestScene_Update(t *testing.T) {
	s, _ := newTestScene(t)

	next, err := s.Update(1.0 / 60)

	assert.NoError(t, err)
	assert.Nil(t, next)
}

func TestScene_Quit(t *testing.T) {
	s, _ := newTestScene(t)
	s.SetInput(func() system.InputState { return system.InputState{Quit: true} })

	_, err := s.Update(1.0 / 60)
	assert.ErrorIs(t, err, scene.ErrQuit)
}

func TestScene_MoveAndClamp(t *testing.T) {
	s, _ := newTestScene(t)
	x := s.Player().X

	s.Step(system.InputState{Left: true})
	assert.Equal(t, x-3, s.Player().X)

	// Waves are cleared so nothing blocks the ship
	for range 300 {
		s.Step(system.InputState{Left: true})
		s.Spawner().Group().KillAll()
	}
	assert.Equal(t, 0.0, s.Player().X, "ship stays on screen")

	for range 400 {
		s.Step(system.InputState{Right: true})
		s.Spawner().Group().KillAll()
	}
	assert.Equal(t, 800.0, s.Player().Rect().Right())
}

func TestScene_Pause(t *testing.T) {
	s, _ := newTestScene(t)

	s.Step(system.InputState{Pause: true})
	require.Equal(t, state.StatePaused, s.State())

	x := s.Player().X
	cd := s.Spawner().CoolDown()
	s.Step(system.InputState{Left: true})
	assert.Equal(t, x, s.Player().X, "nothing moves while paused")
	assert.Equal(t, cd, s.Spawner().CoolDown())

	s.Step(system.InputState{Pause: true})
	assert.Equal(t, state.StatePlaying, s.State())
}

func TestScene_Fire(t *testing.T) {
	s, sink := newTestScene(t)
	p := s.Player()

	s.Step(system.InputState{Fire: true})
	assert.Equal(t, 0, p.Projectiles().Len(), "cooldown runs from the start")

	p.CoolDown = 0
	s.Step(system.InputState{Fire: true})

	require.Equal(t, 1, p.Projectiles().Len())
	assert.Equal(t, []sprite.EffectKind{sprite.EffectFire, sprite.EffectShake}, sink.kinds())

	bullet := p.Projectiles().Last()
	assert.Less(t, bullet.Rect().Bottom(), p.Rect().Y, "fired from the nose, moving up")
}

func TestScene_ShotScores(t *testing.T) {
	s, sink := newTestScene(t)
	p := s.Player()

	// Directly above the muzzle; the bullet reaches it on its first step
	h := sprite.NewHazard(390, 296, 1, 0, 0, s.atlas.Skin(assets.Asteroid1), 1)
	s.Spawner().Group().Add(h)
	s.colliders.Add(h)
	s.all.Add(h)

	p.CoolDown = 0
	s.Step(system.InputState{Fire: true})

	assert.True(t, h.Dead())
	assert.True(t, h.ShotDown())
	assert.Equal(t, 2, s.Score().Score(), "weight 1 at multiplier 2")
	assert.Equal(t, 2, s.Spawner().Multiplier())
	assert.Contains(t, sink.kinds(), sprite.EffectDeath)
	assert.Equal(t, 0, p.Projectiles().Len())
}

func TestScene_HazardHurtsShip(t *testing.T) {
	s, _ := newTestScene(t)
	p := s.Player()
	r := p.Rect()

	h := sprite.NewHazard(r.X, r.Y-12, 1, 4, 0, s.atlas.Skin(assets.Asteroid1), 1)
	s.Spawner().Group().Add(h)
	s.colliders.Add(h)
	s.all.Add(h)

	s.Step(system.InputState{})

	assert.True(t, h.Dead())
	assert.Equal(t, 2, p.Health())
	assert.Equal(t, 2, s.Hearts().Len())
	assert.Equal(t, 0, s.Score().Score(), "rammed hazards do not score")
}

func TestScene_GameOverAndRestart(t *testing.T) {
	s, _ := newTestScene(t)

	s.Player().Kill()
	s.Step(system.InputState{})

	require.Equal(t, state.StateGameOver, s.State())
	assert.Equal(t, 0, s.Hearts().Len())
	assert.Equal(t, 0, s.Colliders().Len(), "everything is cleared")

	s.Step(system.InputState{Pause: true})
	assert.Equal(t, state.StateGameOver, s.State(), "game over cannot be paused")

	s.Step(system.InputState{Restart: true})
	assert.Equal(t, state.StatePlaying, s.State())
	assert.True(t, s.Player().Alive())
	assert.Equal(t, 3, s.Hearts().Len())
	assert.Equal(t, 0, s.Score().Score())
}

func TestScene_HeldFireKeepsGameOver(t *testing.T) {
	s, _ := newTestScene(t)
	s.Player().Kill()

	for range 5 {
		s.Step(system.InputState{Fire: true})
		assert.Equal(t, state.StateGameOver, s.State())
	}

	s.Step(system.InputState{Restart: true})
	assert.Equal(t, state.StatePlaying, s.State())
}

func TestScene_DebugToggle(t *testing.T) {
	s, _ := newTestScene(t)
	require.False(t, s.Debug())

	s.Step(system.InputState{Debug: true})
	assert.True(t, s.Debug())

	s.Step(system.InputState{Debug: true})
	assert.False(t, s.Debug())
}

func TestScene_WavesSpawn(t *testing.T) {
	s, _ := newTestScene(t)

	for range 30 {
		s.Step(system.InputState{})
	}

	assert.Greater(t, s.Spawner().Group().Len(), 0)
	for _, e := range s.Spawner().Group().Entities() {
		assert.True(t, s.Colliders().Has(e), "spawned hazards are collidable")
	}
}

// The same seed and input sequence must lead to the same world
func TestScene_Deterministic(t *testing.T) {
	run := func() *Scene {
		s, _ := newTestScene(t)
		s.SetSeed(7)
		pick := rand.New(rand.NewSource(3))
		for range 400 {
			s.Step(system.InputState{
				Left:  pick.Intn(3) == 0,
				Right: pick.Intn(3) == 0,
				Fire:  pick.Intn(2) == 0,
			})
		}
		return s
	}

	a, b := run(), run()
	assert.Equal(t, a.State(), b.State())
	assert.Equal(t, a.Player().Rect(), b.Player().Rect())
	assert.Equal(t, a.Player().Health(), b.Player().Health())
	assert.Equal(t, a.Score().Score(), b.Score().Score())
	assert.Equal(t, a.Colliders().Len(), b.Colliders().Len())
}

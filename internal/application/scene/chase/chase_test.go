package chase

import (
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

func newTestScene(t *testing.T) (*Scene, *config.ChaseConfig, *recordingSink) {
	t.Helper()
	loader := config.NewLoader("../../../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	sink := &recordingSink{}
	s := New(cfg.Chase, cfg.Display, assets.NewAtlas(), sink)
	s.SetInput(func() system.InputState { return system.InputState{} })
	return s, cfg.Chase, sink
}

// killFollower keeps the follower out of the way of movement tests
func killFollower(s *Scene) {
	if f := s.Follower(); f != nil {
		f.Kill()
	}
}

// aim returns input pointing the cursor dx, dy view pixels away from the player's centre
func aim(s *Scene, dx, dy float64) system.InputState {
	c := s.Camera().ApplyVec(s.Player().Center())
	return system.InputState{MouseX: int(c.X + dx), MouseY: int(c.Y + dy)}
}

func TestChase_New(t *testing.T) {
	s, cfg, _ := newTestScene(t)

	walls := 0
	for _, tile := range cfg.Level.Tiles() {
		if tile.Solid {
			walls++
		}
	}
	assert.Positive(t, walls)
	assert.Equal(t, walls+2, s.Colliders().Len(), "walls plus player and follower")
	assert.Equal(t, len(cfg.Level.Tiles())-walls, s.Floors().Len())
	assert.Equal(t, sprite.Rect{W: 31 * 32, H: 14 * 32}, s.World())

	p := s.Player()
	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.Equal(t, 100, p.Health())

	f := s.Follower()
	require.NotNil(t, f)
	assert.Equal(t, 100.0, f.X)
	assert.Equal(t, 100.0, f.Y)
	assert.Same(t, p, f.Target())
	assert.Equal(t, state.StatePlaying, s.State())
}

func TestChase_Update(t *testing.T) {
	s, _, _ := newTestScene(t)
	next, err := s.Update(1.0 / 60)
	assert.NoError(t, err)
	assert.Nil(t, next)

	s.SetInput(func() system.InputState { return system.InputState{Quit: true} })
	_, err = s.Update(1.0 / 60)
	assert.ErrorIs(t, err, scene.ErrQuit)
}

func TestChase_WallsBlockPlayer(t *testing.T) {
	s, _, _ := newTestScene(t)

	for range 200 {
		s.Step(system.InputState{Left: true})
		killFollower(s)
	}
	assert.Equal(t, 32.0, s.Player().X, "stopped at the right edge of the left wall")

	for range 200 {
		s.Step(system.InputState{Up: true})
		killFollower(s)
	}
	assert.Equal(t, 32.0, s.Player().Y, "stopped under the top wall")
}

func TestChase_AimAndFire(t *testing.T) {
	s, _, sink := newTestScene(t)
	p := s.Player()
	p.CoolDown = 0

	in := aim(s, 100, 0)
	in.MouseFire = true
	s.Step(in)

	assert.Equal(t, -90.0, p.Angle, "cursor to the right")
	require.Equal(t, 1, p.Projectiles().Len())
	b := p.Projectiles().Last().(*sprite.Projectile)
	start := p.Center()
	assert.InDelta(t, start.X+4, b.X, 1e-9)
	assert.InDelta(t, start.Y, b.Y, 1e-9)

	require.Len(t, sink.effects, 1)
	assert.Equal(t, sprite.EffectFire, sink.effects[0].Kind)
}

func TestChase_ShotsStopAtWalls(t *testing.T) {
	s, _, _ := newTestScene(t)
	p := s.Player()
	p.CoolDown = 0

	in := aim(s, -100, 0)
	in.MouseFire = true
	s.Step(in)
	killFollower(s)
	require.Equal(t, 1, p.Projectiles().Len())

	for range 150 {
		s.Step(system.InputState{})
		killFollower(s)
	}
	assert.Zero(t, p.Projectiles().Len())
	assert.Equal(t, 100, p.Health())
}

func TestChase_FollowerHurtsOnContact(t *testing.T) {
	s, _, _ := newTestScene(t)
	p := s.Player()
	f := s.Follower()
	f.X = p.Rect().Right()
	f.Y = p.Y

	s.Step(system.InputState{})

	assert.Equal(t, 99, p.Health())
	assert.Equal(t, p.Rect().Right(), f.X, "blocked at the player's edge")
}

func TestChase_FollowerRespawns(t *testing.T) {
	s, _, _ := newTestScene(t)
	f := s.Follower()
	assert.Equal(t, sprite.Died, f.Damage(100, sprite.Hit{ByProjectile: true}))

	s.Step(system.InputState{})
	assert.Equal(t, 1, s.Kills())
	assert.Nil(t, s.Follower())

	for range RespawnDelay - 1 {
		s.Step(system.InputState{})
	}
	assert.Nil(t, s.Follower())

	s.Step(system.InputState{})
	next := s.Follower()
	require.NotNil(t, next)
	assert.NotSame(t, f, next)
	assert.True(t, s.Colliders().Has(next))
	assert.Equal(t, 1, s.Kills())
}

func TestChase_Pause(t *testing.T) {
	s, _, _ := newTestScene(t)

	s.Step(system.InputState{Pause: true})
	assert.Equal(t, state.StatePaused, s.State())

	x := s.Player().X
	s.Step(system.InputState{Right: true})
	assert.Equal(t, x, s.Player().X)

	s.Step(system.InputState{Pause: true})
	assert.Equal(t, state.StatePlaying, s.State())
}

func TestChase_GameOverAndRestart(t *testing.T) {
	s, _, _ := newTestScene(t)
	old := s.Player()
	old.Kill()

	s.Step(system.InputState{})
	assert.Equal(t, state.StateGameOver, s.State())
	assert.Zero(t, s.Colliders().Len(), "everything is killed")

	s.Step(system.InputState{Restart: true})
	assert.Equal(t, state.StatePlaying, s.State())
	assert.NotSame(t, old, s.Player())
	assert.Equal(t, 100, s.Player().Health())
	assert.Zero(t, s.Kills())
}

func TestChase_Beacon(t *testing.T) {
	s, _, _ := newTestScene(t)
	b := s.Beacon()
	require.Equal(t, assets.BeaconFrames*assets.BeaconSequences, b.Len())
	require.Equal(t, assets.BeaconSequences, b.Sequences())

	for range 10 {
		s.Step(system.InputState{})
		killFollower(s)
	}
	assert.Equal(t, 1, b.Index(), "60 fps holds each frame for 10 ticks")

	s.Step(system.InputState{NextStrip: true})
	assert.Equal(t, 1, b.Sequence())
	assert.Equal(t, assets.BeaconFrames, b.Index(), "first frame of the second row")

	for range 10 {
		s.Step(system.InputState{})
		killFollower(s)
	}
	assert.Equal(t, 1, b.Sequence(), "manual strips stay on their sequence")
	assert.Equal(t, assets.BeaconFrames+1, b.Index())

	s.Step(system.InputState{NextStrip: true})
	assert.Zero(t, b.Sequence(), "wraps to the first sequence")

	s.Step(system.InputState{NextStrip: true})
	s.Player().Kill()
	s.Step(system.InputState{})
	s.Step(system.InputState{Restart: true})
	assert.Zero(t, s.Beacon().Sequence(), "restart rewinds the strip")
	assert.Zero(t, s.Beacon().Index())
}

func TestChase_HeldFireKeepsGameOver(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Player().Kill()

	for range 5 {
		s.Step(system.InputState{MouseFire: true, Fire: true})
		assert.Equal(t, state.StateGameOver, s.State())
	}

	s.Step(system.InputState{Restart: true})
	assert.Equal(t, state.StatePlaying, s.State())
}

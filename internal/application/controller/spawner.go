// Package controller holds the bookkeeping objects that sit between the
// entity core and a scene: the hazard spawner, the heart row and the
// score counter.
package controller

import (
	"math/rand"

	"github.com/younwookim/spritecore/internal/domain/sprite"
)

// DefaultCoolDown is the number of updates between spawn waves
const DefaultCoolDown = 10

// SpawnerConfig configures a Spawner
type SpawnerConfig struct {
	CoolDown int
	Factor   int
	// Bounds is the surface used for the spawn wave run at construction
	Bounds sprite.Rect
}

// Factory creates one entity for a spawn wave
type Factory func(rng *rand.Rand, bounds sprite.Rect, factor int) sprite.Entity

// Spawner periodically spawns waves of entities and scores the ones that
// were shot down once they leave its group.
type Spawner struct {
	group   *sprite.Group
	extra   []*sprite.Group
	factory Factory
	rng     *rand.Rand

	baseCoolDown int
	coolDown     int
	factor       int
	multiplier   int

	player     sprite.Vital
	lastHealth int
	removed    []sprite.Entity
}

// NewSpawner creates a spawner feeding every wave into its own group and
// into groups. player is observed for health loss, which resets the
// multiplier. One Update runs immediately.
func NewSpawner(cfg SpawnerConfig, factory Factory, player sprite.Vital, rng *rand.Rand, groups ...*sprite.Group) *Spawner {
	if cfg.CoolDown <= 0 {
		cfg.CoolDown = DefaultCoolDown
	}
	if cfg.Factor <= 0 {
		cfg.Factor = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &Spawner{
		group:        sprite.NewGroup(),
		extra:        groups,
		factory:      factory,
		rng:          rng,
		baseCoolDown: cfg.CoolDown,
		coolDown:     cfg.CoolDown,
		factor:       cfg.Factor,
		multiplier:   1,
		player:       player,
	}
	if player != nil {
		s.lastHealth = player.Health()
	}
	s.group.OnRemove = func(e sprite.Entity) {
		s.removed = append(s.removed, e)
	}

	s.Update(cfg.Bounds)
	return s
}

// Update runs one controller step and returns the score earned since the
// previous step together with the current multiplier.
func (s *Spawner) Update(bounds sprite.Rect) (score, multiplier int) {
	if s.coolDown <= 0 {
		s.coolDown = s.baseCoolDown
		s.spawn(bounds)
	} else {
		s.coolDown--
	}

	removed := s.removed
	s.removed = nil
	for _, e := range removed {
		sd, ok := e.(sprite.ShotDowner)
		if !ok || !sd.ShotDown() {
			continue
		}
		if w, ok := e.(sprite.Weighted); ok {
			score += w.Weight()
		}
		s.multiplier++
	}

	if s.player != nil && s.lastHealth > s.player.Health() {
		s.lastHealth = s.player.Health()
		s.multiplier = 1
	}

	return score, s.multiplier
}

func (s *Spawner) spawn(bounds sprite.Rect) {
	if s.factory == nil {
		return
	}
	wave := make([]sprite.Entity, 0, s.factor)
	for range s.factor {
		if e := s.factory(s.rng, bounds, s.factor); e != nil {
			wave = append(wave, e)
		}
	}
	s.group.Add(wave...)
	for _, g := range s.extra {
		g.Add(wave...)
	}
}

// Group returns the group of live spawned entities
func (s *Spawner) Group() *sprite.Group { return s.group }

// Factor returns the wave size
func (s *Spawner) Factor() int { return s.factor }

// SetFactor changes the wave size. Values below 1 are ignored.
func (s *Spawner) SetFactor(f int) {
	if f >= 1 {
		s.factor = f
	}
}

// Multiplier returns the current score multiplier
func (s *Spawner) Multiplier() int { return s.multiplier }

// CoolDown returns the updates left until the next wave
func (s *Spawner) CoolDown() int { return s.coolDown }

// FactorFor maps a multiplier to a wave size: one more hazard every ten
// consecutive hits, never less than one.
func FactorFor(multiplier int) int {
	if f := multiplier / 10; f > 0 {
		return f
	}
	return 1
}

// HazardConfig configures the hazards built by HazardFactory
type HazardConfig struct {
	Scale float64
	// RotSpeed bounds the random spin in degrees per tick
	RotSpeed float64
}

// HazardFactory returns a Factory producing falling hazards.
// Each hazard picks a size in [1, len(skins)] and the matching skin,
// spawns at a random x half a surface above the top and falls at a
// random speed below factor.
func HazardFactory(cfg HazardConfig, skins []sprite.Skin) Factory {
	if cfg.RotSpeed == 0 {
		cfg.RotSpeed = 1
	}
	return func(rng *rand.Rand, bounds sprite.Rect, factor int) sprite.Entity {
		if len(skins) == 0 {
			return nil
		}
		x := bounds.X + float64(rng.Intn(int(bounds.W)+1))
		y := bounds.Y - bounds.H/2
		speed := rng.Float64() * float64(factor)
		rot := rng.Float64() * cfg.RotSpeed
		if rng.Intn(2) == 0 {
			rot = -rot
		}
		size := rng.Intn(len(skins)) + 1
		return sprite.NewHazard(x, y, size, speed, rot, skins[size-1], cfg.Scale)
	}
}

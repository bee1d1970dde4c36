package config

import "github.com/younwookim/spritecore/internal/domain/sprite"

// ShooterConfig is the root config for shooter.yaml
type ShooterConfig struct {
	Player  PlayerConfig  `json:"player" yaml:"player"`
	Spawner SpawnerConfig `json:"spawner" yaml:"spawner"`
	Hazard  HazardConfig  `json:"hazard" yaml:"hazard"`
	Camera  CameraConfig  `json:"camera" yaml:"camera"`
}

// ChaseConfig is the root config for chase.yaml
type ChaseConfig struct {
	Player   PlayerConfig   `json:"player" yaml:"player"`
	Follower FollowerConfig `json:"follower" yaml:"follower"`
	Camera   CameraConfig   `json:"camera" yaml:"camera"`
	Level    LevelConfig    `json:"level" yaml:"level"`
}

// LivingConfig holds the fields shared by every living entity
type LivingConfig struct {
	MaxHealth       int     `json:"maxHealth" yaml:"maxHealth"`
	BaseHurtTime    int     `json:"baseHurtTime" yaml:"baseHurtTime"`
	IgnoreWhileHurt bool    `json:"ignoreWhileHurt" yaml:"ignoreWhileHurt"`
	Speed           float64 `json:"speed" yaml:"speed"`
	Scale           float64 `json:"scale" yaml:"scale"`
}

type PlayerConfig struct {
	LivingConfig `yaml:",inline"`

	AttackStrength  int     `json:"attackStrength" yaml:"attackStrength"`
	CoolDown        int     `json:"coolDown" yaml:"coolDown"`
	ShootSpeed      float64 `json:"shootSpeed" yaml:"shootSpeed"`
	Shake           float64 `json:"shake" yaml:"shake"`
	ProjectileScale float64 `json:"projectileScale" yaml:"projectileScale"`
	// Muzzle is "center" or "nose"
	Muzzle string `json:"muzzle" yaml:"muzzle"`
}

// Sprite converts to the entity constructor config
func (c PlayerConfig) Sprite() sprite.PlayerConfig {
	return sprite.PlayerConfig{
		MaxHealth:       c.MaxHealth,
		BaseHurtTime:    c.BaseHurtTime,
		IgnoreWhileHurt: c.IgnoreWhileHurt,
		Speed:           c.Speed,
		AttackStrength:  c.AttackStrength,
		CoolDown:        c.CoolDown,
		ShootSpeed:      c.ShootSpeed,
		Shake:           c.Shake,
		ProjectileScale: c.ProjectileScale,
	}
}

// MuzzleFunc returns the projectile spawn point rule
func (c PlayerConfig) MuzzleFunc() sprite.MuzzleFunc {
	if c.Muzzle == "nose" {
		return sprite.NoseMuzzle
	}
	return sprite.CenterMuzzle
}

type FollowerConfig struct {
	LivingConfig `yaml:",inline"`

	AttackStrength int            `json:"attackStrength" yaml:"attackStrength"`
	Spawn          PositionConfig `json:"spawn" yaml:"spawn"`
}

// Sprite converts to the entity constructor config
func (c FollowerConfig) Sprite() sprite.FollowerConfig {
	return sprite.FollowerConfig{
		MaxHealth:      c.MaxHealth,
		BaseHurtTime:   c.BaseHurtTime,
		Speed:          c.Speed,
		AttackStrength: c.AttackStrength,
	}
}

type SpawnerConfig struct {
	CoolDown int `json:"coolDown" yaml:"coolDown"`
	Factor   int `json:"factor" yaml:"factor"`
}

type HazardConfig struct {
	Scale    float64 `json:"scale" yaml:"scale"`
	RotSpeed float64 `json:"rotSpeed" yaml:"rotSpeed"`
}

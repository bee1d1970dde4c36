package sprite

import "math"

// PlayerConfig holds the tunables for creating a player
type PlayerConfig struct {
	MaxHealth       int
	BaseHurtTime    int // ticks
	IgnoreWhileHurt bool
	Speed           float64 // pixels per tick
	AttackStrength  int
	CoolDown        int     // ticks between shots
	ShootSpeed      float64 // pixels per tick
	Shake           float64 // shake intensity emitted per shot
	ProjectileScale float64
}

// MuzzleFunc returns where a player's projectile spawns
type MuzzleFunc func(p *Player, projectile Frame) Vec

// CenterMuzzle spawns projectiles at the player's centre
func CenterMuzzle(p *Player, _ Frame) Vec {
	return p.Center()
}

// NoseMuzzle spawns projectiles above the player, horizontally centred
func NoseMuzzle(p *Player, projectile Frame) Vec {
	r := p.Rect()
	c := r.Center()
	half := 0.0
	if projectile != nil {
		half = float64(projectile.Bounds().Dx()) * p.cfg.ProjectileScale / 2
	}
	return Vec{X: c.X - half, Y: c.Y - r.H}
}

// Player is the input-controlled living entity that fires projectiles
type Player struct {
	Living

	AttackStrength int
	BaseCoolDown   int
	CoolDown       int
	ShootSpeed     float64
	ShakeIntensity float64
	Muzzle         MuzzleFunc

	cfg         PlayerConfig
	bullet      Skin
	projectiles *Group
}

// NewPlayer creates a player at x, y. bullet is the projectile skin.
func NewPlayer(x, y float64, skin Skin, scale float64, cfg PlayerConfig, bullet Skin) *Player {
	p := &Player{
		AttackStrength: cfg.AttackStrength,
		BaseCoolDown:   cfg.CoolDown,
		CoolDown:       cfg.CoolDown,
		ShootSpeed:     cfg.ShootSpeed,
		ShakeIntensity: cfg.Shake,
		Muzzle:         CenterMuzzle,
		cfg:            cfg,
		bullet:         bullet,
		projectiles:    NewGroup(),
	}
	p.Init(x, y, KindPlayer, skin, scale)
	p.Speed = cfg.Speed
	p.BaseHurtTime = cfg.BaseHurtTime
	p.IgnoreWhileHurt = cfg.IgnoreWhileHurt
	p.SetMaxHealth(cfg.MaxHealth)
	return p
}

// Projectiles returns the group of projectiles the player has fired
func (p *Player) Projectiles() *Group { return p.projectiles }

// Move moves the player with axis-separated collision resolution
func (p *Player) Move(dx, dy float64, colliders *Group, fx *Effects) {
	Move(p, dx, dy, colliders, fx)
}

// Attack fires a projectile if the cooldown has elapsed.
// Emits EffectFire and EffectShake on success.
func (p *Player) Attack(fx *Effects) bool {
	if !p.Alive() || p.CoolDown > 0 {
		return false
	}
	p.CoolDown = p.BaseCoolDown
	p.shoot(fx)
	return true
}

func (p *Player) shoot(fx *Effects) {
	var frame Frame
	if p.bullet != nil {
		frame = p.bullet[FrameBase]
	}
	at := p.Muzzle(p, frame)
	b := NewProjectile(at.X, at.Y, p.Angle, p.ShootSpeed, p.AttackStrength, KindPlayer, p.bullet, p.cfg.ProjectileScale)
	p.projectiles.Add(b)

	fx.Emit(EffectFire, p, 0)
	if p.ShakeIntensity > 0 {
		fx.Emit(EffectShake, p, p.ShakeIntensity)
	}
}

// RotateToTarget turns the player so that shots travel toward target
func (p *Player) RotateToTarget(target Vec) {
	d := target.Sub(p.Center())
	if d.X == 0 && d.Y == 0 {
		return
	}
	p.Angle = -math.Atan2(d.Y, d.X)*180/math.Pi - 90
}

// Update advances the hurt timer, moves projectiles and counts the cooldown down
func (p *Player) Update(t *Tick) {
	p.Living.Update(t)
	p.projectiles.Update(t)
	if p.CoolDown >= 0 {
		p.CoolDown--
	}
}

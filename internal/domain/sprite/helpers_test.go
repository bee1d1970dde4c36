package sprite

import "image"

func box(w, h int) Skin {
	return Skin{FrameBase: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func hurtBox(w, h int) Skin {
	s := box(w, h)
	s[FrameHurt] = image.NewRGBA(image.Rect(0, 0, w, h))
	return s
}

func wall(x, y float64) *Static {
	return NewStatic(x, y, KindScenery, box(32, 32), 1)
}

func testPlayer(x, y float64) *Player {
	return NewPlayer(x, y, hurtBox(16, 16), 1, PlayerConfig{
		MaxHealth:       3,
		BaseHurtTime:    50,
		IgnoreWhileHurt: true,
		Speed:           3,
		AttackStrength:  1,
		CoolDown:        30,
		ShootSpeed:      8,
		Shake:           4,
		ProjectileScale: 1,
	}, box(2, 2))
}

func testLiving(health, hurtTime int) *Living {
	l := &Living{BaseHurtTime: hurtTime}
	l.Init(0, 0, KindEnemy, hurtBox(10, 10), 1)
	l.SetMaxHealth(health)
	return l
}

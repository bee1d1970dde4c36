package sprite

// Outcome is the result of a damage call
type Outcome int

const (
	// Ignored means the call changed nothing (dead, immune or zero damage)
	Ignored Outcome = iota
	// Hurt means health dropped and the entity survived
	Hurt
	// Died means health reached zero and the entity was removed
	Died
)

// State is the living-entity lifecycle state
type State int

const (
	AliveNormal State = iota
	AliveHurt
	Dead
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case AliveNormal:
		return "AliveNormal"
	case AliveHurt:
		return "AliveHurt"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Hit describes where damage came from
type Hit struct {
	// ByProjectile marks the hit as a shot, which makes the kill score
	ByProjectile bool
}

// Damageable is implemented by entities that accept damage
type Damageable interface {
	Entity
	Damage(amount int, hit Hit) Outcome
}

// Vital exposes health for observers such as controllers and UI
type Vital interface {
	Health() int
	MaxHealth() int
}

// ShotDowner reports whether an entity has been hit by a projectile
type ShotDowner interface {
	ShotDown() bool
}

// Weighted is implemented by entities worth a score weight
type Weighted interface {
	Weight() int
}

// Living is a movable entity with health and a hurt timer
type Living struct {
	Movable

	// BaseHurtTime is the hurt-timer value set by each surviving hit (ticks)
	BaseHurtTime int
	// IgnoreWhileHurt makes the entity immune while the hurt timer runs
	IgnoreWhileHurt bool

	health    int
	maxHealth int
	hurt      int
	shot      bool
}

// SetMaxHealth sets max health and refills health to it
func (l *Living) SetMaxHealth(max int) {
	if max < 0 {
		max = 0
	}
	l.maxHealth = max
	l.health = max
}

// Health returns current health
func (l *Living) Health() int { return l.health }

// MaxHealth returns max health
func (l *Living) MaxHealth() int { return l.maxHealth }

// HurtTimer returns the remaining hurt ticks
func (l *Living) HurtTimer() int { return l.hurt }

// ShotDown reports whether a projectile has hit the entity
func (l *Living) ShotDown() bool { return l.shot }

// Alive reports whether the entity has health left and was not killed
func (l *Living) Alive() bool { return !l.dead && l.health > 0 }

// State returns the lifecycle state
func (l *Living) State() State {
	switch {
	case !l.Alive():
		return Dead
	case l.hurt > 0:
		return AliveHurt
	default:
		return AliveNormal
	}
}

// Damage subtracts amount from health.
// Health is floored at 0; reaching 0 kills the entity. A surviving hit
// restarts the hurt timer.
func (l *Living) Damage(amount int, hit Hit) Outcome {
	if !l.Alive() || amount <= 0 {
		return Ignored
	}
	if l.IgnoreWhileHurt && l.hurt > 0 {
		return Ignored
	}
	if hit.ByProjectile {
		l.shot = true
	}

	l.health -= amount
	if l.health <= 0 {
		l.Kill()
		return Died
	}

	l.hurt = l.BaseHurtTime
	l.syncFrame()
	return Hurt
}

// Heal restores health up to max
func (l *Living) Heal(amount int) {
	if !l.Alive() || amount <= 0 {
		return
	}
	l.health += amount
	if l.health > l.maxHealth {
		l.health = l.maxHealth
	}
}

// Kill forces death regardless of health. Killing twice is a no-op.
func (l *Living) Kill() bool {
	if l.dead {
		return false
	}
	l.health = 0
	l.hurt = 0
	return l.Sprite.Kill()
}

// Tick counts the hurt timer down by one
func (l *Living) Tick() {
	if l.hurt > 0 {
		l.hurt--
	}
	l.syncFrame()
}

// Update advances the hurt timer
func (l *Living) Update(_ *Tick) {
	l.Tick()
}

func (l *Living) syncFrame() {
	if l.hurt > 0 {
		if _, ok := l.skin[FrameHurt]; ok {
			l.key = FrameHurt
			return
		}
	}
	l.key = FrameBase
}

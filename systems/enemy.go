package systems

import (
	"math"
	"time"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateEnemy moves the enemy, aims at the player, advances the attack state
// machine by one step and runs the enemy's spawner.
func UpdateEnemy(s *Simulation, e *donburi.Entry, dt time.Duration) {
	UpdateMobile(e, dt, s.Bounds())

	if p := s.Player(); p != nil {
		SetTarget(e, SpriteRect(p))
	}
	AdvanceAttack(e, dt)

	enemy := components.Enemy.Get(e)
	if enemy.Spawner != nil && enemy.Spawner.Valid() {
		UpdateSpawner(s, enemy.Spawner, dt)
	}
}

// AdvanceAttack moves the attack state machine forward by dt. It never waits:
// an attack lasts across as many ticks as its window needs.
func AdvanceAttack(e *donburi.Entry, dt time.Duration) {
	enemy := components.Enemy.Get(e)

	switch enemy.State() {
	case components.AttackAttacking:
		enemy.ElapsedAttack += dt
		if enemy.ElapsedAttack >= enemy.AttackWindow {
			setSpawning(enemy.Spawner, false)
			enemy.Attacking = false
			enemy.ElapsedAttack = 0
			enemy.ElapsedCooldown = 0
		}
	case components.AttackCooldown:
		enemy.ElapsedCooldown += dt
	case components.AttackIdle:
		if enemy.CanAttack() {
			enemy.Attacking = true
			setSpawning(enemy.Spawner, true)
		}
	}
}

func setSpawning(spawner *donburi.Entry, on bool) {
	if spawner == nil || !spawner.Valid() {
		return
	}
	sp := components.Spawner.Get(spawner)
	if on {
		sp.Start()
	} else {
		sp.Stop()
	}
}

// SetTarget points the enemy's bullets at the centre of target, keeping
// their speed. A target on the enemy's own centre leaves the aim unchanged.
func SetTarget(e *donburi.Entry, target gamemath.Rect) {
	enemy := components.Enemy.Get(e)
	if enemy.Spawner == nil || !enemy.Spawner.Valid() {
		return
	}
	sp := components.Spawner.Get(enemy.Spawner)
	speed := math.Hypot(sp.BulletVelocity.X, sp.BulletVelocity.Y)

	fromX, fromY := SpriteRect(e).Center()
	toX, toY := target.Center()
	if vx, vy, ok := gamemath.AimVelocity(fromX, fromY, toX, toY, speed); ok {
		sp.BulletVelocity.X = vx
		sp.BulletVelocity.Y = vy
	}
}

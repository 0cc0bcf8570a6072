package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// AttackState is derived from the enemy's timers, see EnemyData.State.
type AttackState int

const (
	AttackIdle AttackState = iota
	AttackAttacking
	AttackCooldown
)

func (s AttackState) String() string {
	switch s {
	case AttackAttacking:
		return "Attacking"
	case AttackCooldown:
		return "Cooldown"
	}
	return "Idle"
}

type EnemyData struct {
	Archetype string
	Spawner   *donburi.Entry // nil for unarmed enemies

	AttackWindow    time.Duration
	AttackCooldown  time.Duration
	ElapsedAttack   time.Duration
	ElapsedCooldown time.Duration
	Attacking       bool

	ScoreValue    int
	ContactDamage int
}

func (e *EnemyData) InCooldown() bool {
	return e.ElapsedCooldown < e.AttackCooldown
}

// State reports exactly one of the three attack states. Cooldown wins over
// an attack flag left set.
func (e *EnemyData) State() AttackState {
	switch {
	case e.InCooldown():
		return AttackCooldown
	case e.Attacking:
		return AttackAttacking
	default:
		return AttackIdle
	}
}

func (e *EnemyData) CanAttack() bool {
	return e.Spawner != nil && !e.InCooldown() && e.ElapsedAttack < e.AttackWindow
}

var Enemy = donburi.NewComponentType[EnemyData]()

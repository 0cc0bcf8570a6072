package factory

import (
	"fmt"
	"time"

	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyConfig struct {
	Archetype string
	X, Y      float64
	Health    int
	Velocity  math.Vec2 // pixels per tick, positive Y up
	Bounce    bool
	Animation string

	// A nil Spawner makes an unarmed enemy.
	Spawner        *SpawnerConfig
	AttackWindow   time.Duration
	AttackCooldown time.Duration

	ContactDamage int
	ScoreValue    int
}

// EnemyConfigFor turns an archetype into a config placed at (x, y).
func EnemyConfigFor(a config.EnemyArchetype, x, y float64) EnemyConfig {
	c := EnemyConfig{
		Archetype:      a.Name,
		X:              x,
		Y:              y,
		Health:         a.Health,
		Velocity:       math.Vec2{X: a.SpeedX, Y: a.SpeedY},
		Bounce:         a.Bounce,
		Animation:      a.Animation,
		AttackWindow:   a.AttackWindow(),
		AttackCooldown: a.AttackCooldown(),
		ContactDamage:  a.ContactDamage,
		ScoreValue:     a.ScoreValue,
	}
	if a.Armed {
		// Fires straight down until aimed.
		c.Spawner = &SpawnerConfig{
			Delay:           a.FireDelay(),
			Damage:          a.BulletDamage,
			BulletVelocity:  math.Vec2{X: 0, Y: -a.BulletSpeed},
			BulletAnimation: a.BulletAnimation,
			Hostile:         true,
		}
	}
	return c
}

// CreateEnemy builds an enemy that starts in its attack cooldown.
func CreateEnemy(env Env, c EnemyConfig) (*donburi.Entry, error) {
	health, err := components.NewHealth(c.Health, c.Health)
	if err != nil {
		return nil, fmt.Errorf("enemy %s: %w", c.Archetype, err)
	}
	if c.Spawner != nil && c.AttackWindow <= 0 {
		return nil, fmt.Errorf("enemy %s: attack window must be positive: %w", c.Archetype, ErrInvalidConfig)
	}
	if c.AttackCooldown < 0 {
		return nil, fmt.Errorf("enemy %s: attack cooldown cannot be negative: %w", c.Archetype, ErrInvalidConfig)
	}

	enemy := archetypes.Enemy.Spawn(env.World)
	attachBody(env, enemy, components.KindEnemy, c.X, c.Y, c.Animation, tags.ResolvEnemy)
	components.Health.SetValue(enemy, health)
	components.Mobile.SetValue(enemy, components.MobileData{
		Velocity:      c.Velocity,
		ClampToBounds: true,
		Bounce:        c.Bounce,
	})
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	data := components.EnemyData{
		Archetype:      c.Archetype,
		AttackWindow:   c.AttackWindow,
		AttackCooldown: c.AttackCooldown,
		ContactDamage:  c.ContactDamage,
		ScoreValue:     c.ScoreValue,
	}

	if c.Spawner != nil {
		sc := *c.Spawner
		sc.Owner = enemy
		sc.Spawning = false
		if sc.Offset == (math.Vec2{}) {
			// Muzzle at the sprite centre.
			w, h := components.Animation.Get(enemy).Size()
			sc.Offset = math.Vec2{X: float64(w) / 2, Y: float64(h) / 2}
		}
		spawner, err := CreateSpawner(env, sc)
		if err != nil {
			Destroy(env, enemy)
			return nil, fmt.Errorf("enemy %s: %w", c.Archetype, err)
		}
		data.Spawner = spawner
	}

	components.Enemy.SetValue(enemy, data)
	return enemy, nil
}

package factory

import (
	"fmt"
	"time"

	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnerConfig describes a bullet spawner attached to an owner entity.
type SpawnerConfig struct {
	Owner           *donburi.Entry
	Offset          math.Vec2
	Delay           time.Duration
	Damage          int
	BulletVelocity  math.Vec2 // pixels per tick, positive Y up
	BulletAnimation string
	Hostile         bool
	Spawning        bool
}

func (c SpawnerConfig) validate() error {
	if c.Delay <= 0 {
		return fmt.Errorf("spawner delay must be positive, got %v: %w", c.Delay, ErrInvalidConfig)
	}
	if c.Damage < 0 {
		return fmt.Errorf("spawner damage cannot be negative, got %d: %w", c.Damage, ErrInvalidConfig)
	}
	return nil
}

// CreateSpawner panics on a nil owner.
func CreateSpawner(env Env, c SpawnerConfig) (*donburi.Entry, error) {
	if c.Owner == nil {
		panic("spawner created without an owner")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	// Fail on an unknown bullet animation now rather than on the first shot.
	if c.BulletAnimation != "" {
		env.Library.MustGet(c.BulletAnimation)
	}

	spawner := archetypes.Spawner.Spawn(env.World)

	pos := components.Entity.Get(c.Owner).Position
	components.Entity.SetValue(spawner, components.EntityData{
		Kind:      components.KindSpawner,
		Position:  math.Vec2{X: pos.X + c.Offset.X, Y: pos.Y + c.Offset.Y},
		Invisible: true,
	})
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Owner:           c.Owner,
		Offset:          c.Offset,
		Spawning:        c.Spawning,
		Damage:          c.Damage,
		BulletVelocity:  c.BulletVelocity,
		BulletAnimation: c.BulletAnimation,
		Delay:           c.Delay,
		Hostile:         c.Hostile,
	})
	return spawner, nil
}

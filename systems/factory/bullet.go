package factory

import (
	"fmt"

	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type BulletConfig struct {
	X, Y      float64
	Velocity  math.Vec2 // pixels per tick, positive Y up
	Damage    int
	Animation string
	Owner     *donburi.Entry
	Hostile   bool
}

// CreateBullet builds a bullet that flies freely; it is never clamped to the
// play surface so the bullet manager can discard it once it leaves.
func CreateBullet(env Env, c BulletConfig) (*donburi.Entry, error) {
	if c.Damage < 0 {
		return nil, fmt.Errorf("bullet damage cannot be negative, got %d: %w", c.Damage, ErrInvalidConfig)
	}

	side := tags.ResolvFriendly
	if c.Hostile {
		side = tags.ResolvHostile
	}

	bullet := archetypes.Bullet.Spawn(env.World)
	attachBody(env, bullet, components.KindBullet, c.X, c.Y, c.Animation, tags.ResolvBullet, side)

	health, _ := components.NewHealth(1, 1)
	components.Health.SetValue(bullet, health)
	components.Mobile.SetValue(bullet, components.MobileData{Velocity: c.Velocity})
	components.Bullet.SetValue(bullet, components.BulletData{
		Owner:   c.Owner,
		Damage:  c.Damage,
		Hostile: c.Hostile,
	})
	return bullet, nil
}

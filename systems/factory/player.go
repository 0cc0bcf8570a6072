package factory

import (
	"fmt"
	"time"

	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerConfig struct {
	X, Y      float64
	Health    int
	Speed     float64
	Animation string

	BulletAnimation string
	BulletDamage    int
	BulletSpeed     float64
	FireDelay       time.Duration
	MuzzleOffset    math.Vec2

	InvulnDuration time.Duration
}

// CreatePlayer builds the player and its blaster. The blaster fires straight
// up and only spawns while the player holds fire.
func CreatePlayer(env Env, c PlayerConfig) (*donburi.Entry, error) {
	health, err := components.NewHealth(c.Health, c.Health)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	if c.Speed < 0 {
		return nil, fmt.Errorf("player speed cannot be negative, got %v: %w", c.Speed, ErrInvalidConfig)
	}

	player := archetypes.Player.Spawn(env.World)
	attachBody(env, player, components.KindPlayer, c.X, c.Y, c.Animation, tags.ResolvPlayer)
	components.Health.SetValue(player, health)
	components.Mobile.SetValue(player, components.MobileData{ClampToBounds: true})
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 0.3, B: 0.3})

	spawner, err := CreateSpawner(env, SpawnerConfig{
		Owner:           player,
		Offset:          c.MuzzleOffset,
		Delay:           c.FireDelay,
		Damage:          c.BulletDamage,
		BulletVelocity:  math.Vec2{X: 0, Y: c.BulletSpeed},
		BulletAnimation: c.BulletAnimation,
	})
	if err != nil {
		Destroy(env, player)
		return nil, fmt.Errorf("player blaster: %w", err)
	}

	components.Player.SetValue(player, components.PlayerData{
		Spawner:        spawner,
		Speed:          c.Speed,
		InvulnDuration: c.InvulnDuration,
	})
	return player, nil
}

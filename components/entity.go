package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Kind identifies what an entity is. Every entity carries exactly one.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindBullet
	KindSpawner
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindBullet:
		return "Bullet"
	case KindSpawner:
		return "Spawner"
	case KindEffect:
		return "Effect"
	}
	return "None"
}

// EntityData is the state shared by every simulated entity.
type EntityData struct {
	Kind       Kind
	Position   math.Vec2 // top-left corner of the sprite, screen space
	Invisible  bool
	Collidable bool
	// FixedHitbox keeps the hitbox size set at construction instead of
	// following the current sprite frame.
	FixedHitbox bool
}

var Entity = donburi.NewComponentType[EntityData]()

package archetypes

import (
	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Entity,
		components.Player,
		components.Object,
		components.Health,
		components.Animation,
		components.Mobile,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Entity,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animation,
		components.Mobile,
		components.Flash,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Entity,
		components.Bullet,
		components.Object,
		components.Health,
		components.Animation,
		components.Mobile,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Entity,
		components.Spawner,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Entity,
		components.Animation,
		components.AutoDestroy,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}

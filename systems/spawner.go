package systems

import (
	"log"
	"time"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateSpawner follows the owner and emits one bullet per whole Delay of
// accumulated time. A spawner whose owner is gone is removed.
func UpdateSpawner(s *Simulation, e *donburi.Entry, dt time.Duration) {
	sp := components.Spawner.Get(e)
	if sp.Owner == nil || !sp.Owner.Valid() {
		s.destroy(e)
		return
	}

	owner := components.Entity.Get(sp.Owner).Position
	ent := components.Entity.Get(e)
	ent.Position.X = owner.X + sp.Offset.X
	ent.Position.Y = owner.Y + sp.Offset.Y

	if !sp.Spawning {
		return
	}
	sp.Elapsed += dt
	for sp.Elapsed >= sp.Delay {
		SpawnBullet(s, e)
		sp.Elapsed -= sp.Delay
	}
}

// SpawnBullet emits one bullet centred on the spawner. Each call builds a
// fresh config, so bullets never share state.
func SpawnBullet(s *Simulation, e *donburi.Entry) *donburi.Entry {
	sp := components.Spawner.Get(e)
	pos := components.Entity.Get(e).Position
	w, h := s.templateSize(sp.BulletAnimation)

	bullet, err := s.Bullets.Spawn(factory.BulletConfig{
		X:         pos.X - w/2,
		Y:         pos.Y - h/2,
		Velocity:  sp.BulletVelocity,
		Damage:    sp.Damage,
		Animation: sp.BulletAnimation,
		Owner:     sp.Owner,
		Hostile:   sp.Hostile,
	})
	if err != nil {
		log.Printf("Warning: could not spawn bullet: %v", err)
		return nil
	}
	return bullet
}

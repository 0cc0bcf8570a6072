package systems

import (
	"time"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
)

// resolveCollisions runs after all movement for the tick. Bullets that hit
// are consumed, enemies touching the player deal contact damage, and
// unarmed enemies are destroyed by the impact.
func (s *Simulation) resolveCollisions(_ time.Duration) {
	var spent []*donburi.Entry
	s.Bullets.Each(func(b *donburi.Entry) {
		bullet := components.Bullet.Get(b)
		target := tags.ResolvEnemy
		if bullet.Hostile {
			target = tags.ResolvPlayer
		}
		if hit := firstHit(b, target); hit != nil {
			queueDamage(hit, bullet.Damage, false)
			spent = append(spent, b)
		}
	})
	for _, b := range spent {
		s.Bullets.Remove(b)
	}

	if p := s.Player(); p != nil {
		for _, e := range overlapping(p, tags.ResolvEnemy) {
			enemy := components.Enemy.Get(e)
			queueDamage(p, enemy.ContactDamage, false)
			if enemy.Spawner == nil {
				queueDamage(e, 0, true)
			}
		}
	}

	s.applyDamage()
}

// overlapping uses the collision space to find candidates and keeps the ones
// whose hitboxes actually intersect e's. Dead entities are skipped.
func overlapping(e *donburi.Entry, tag string) []*donburi.Entry {
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}
	c := obj.Check(0, 0, tag)
	if c == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, o := range c.ObjectsByTags(tag) {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == nil || !other.Valid() {
			continue
		}
		if other.HasComponent(components.Health) && components.Health.Get(other).Dead() {
			continue
		}
		if CollidesWith(e, other) {
			hits = append(hits, other)
		}
	}
	return hits
}

func firstHit(e *donburi.Entry, tag string) *donburi.Entry {
	hits := overlapping(e, tag)
	if len(hits) == 0 {
		return nil
	}
	return hits[0]
}

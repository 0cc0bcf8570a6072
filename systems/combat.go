package systems

import (
	"github.com/automoto/blaster/components"
	"github.com/yohamta/donburi"
)

func queueDamage(e *donburi.Entry, amount int, lethal bool) {
	if e.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(e)
		dmg.Amount += amount
		dmg.Lethal = dmg.Lethal || lethal
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{
		Amount: amount,
		Lethal: lethal,
	})
}

// applyDamage drains the queued damage events. A player inside the
// invulnerability window ignores non-lethal damage.
func (s *Simulation) applyDamage() {
	var hit []*donburi.Entry
	components.DamageEvent.Each(s.world, func(e *donburi.Entry) {
		hit = append(hit, e)
	})

	for _, e := range hit {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		hp := components.Health.Get(e)
		if dmg.Lethal {
			hp.Damage(hp.Current())
			continue
		}
		if dmg.Amount <= 0 {
			continue
		}

		if e.HasComponent(components.Player) {
			player := components.Player.Get(e)
			if player.InvulnTimer > 0 {
				continue
			}
			hp.Damage(dmg.Amount)
			player.InvulnTimer = player.InvulnDuration
			PlayerHitEvent.Publish(s.world, PlayerHit{Damage: dmg.Amount, Remaining: hp.Current()})
		} else {
			hp.Damage(dmg.Amount)
		}
		TriggerFlash(e, s.settings.Combat.FlashDuration)
	}
}

package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on an entity during the collision pass and
// applied once per tick. Hits in the same tick add up.
type DamageEventData struct {
	Amount int
	Lethal bool // ignore health and invulnerability
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

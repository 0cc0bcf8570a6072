package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateExplosion plays a one-shot animation centred at (cx, cy). The entity
// is removed once the animation stops.
func CreateExplosion(env Env, cx, cy float64, animation string) *donburi.Entry {
	effect := archetypes.Effect.Spawn(env.World)
	anim := components.AnimationData{Instance: env.Library.NewInstance(animation)}
	w, h := anim.Size()

	components.Entity.SetValue(effect, components.EntityData{
		Kind:     components.KindEffect,
		Position: math.Vec2{X: cx - float64(w)/2, Y: cy - float64(h)/2},
	})
	components.Animation.SetValue(effect, anim)
	return effect
}

func CreateSession(w donburi.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{State: components.SessionIdle})
	return session
}

package factory

import (
	"errors"

	"github.com/automoto/blaster/assets/animations"
	"github.com/automoto/blaster/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

var ErrInvalidConfig = errors.New("invalid entity config")

// Env is everything a factory needs to build an entity.
type Env struct {
	World   donburi.World
	Space   *resolv.Space
	Library *animations.Library
}

// CreateSpace builds the broad-phase collision space covering the play surface.
func CreateSpace(width, height, cellWidth, cellHeight int) *resolv.Space {
	return resolv.NewSpace(width, height, cellWidth, cellHeight)
}

// attachBody sets up position, sprite and hitbox on a freshly spawned entry.
// The hitbox starts at the size of the first frame.
func attachBody(env Env, entry *donburi.Entry, kind components.Kind, x, y float64, animation string, resolvTags ...string) {
	components.Entity.SetValue(entry, components.EntityData{
		Kind:       kind,
		Position:   math.Vec2{X: x, Y: y},
		Collidable: true,
	})

	anim := components.AnimationData{Instance: env.Library.NewInstance(animation)}
	components.Animation.SetValue(entry, anim)

	w, h := anim.Size()
	obj := resolv.NewObject(x, y, float64(w), float64(h), resolvTags...)
	obj.Data = entry
	env.Space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
}

// Destroy removes an entity and its hitbox. Invalid entries are ignored.
func Destroy(env Env, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
			env.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}

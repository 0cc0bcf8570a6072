package components

import (
	"github.com/automoto/blaster/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData is the sprite of an entity. A nil Instance means the entity
// has no sprite: it is never drawn and its hitbox collapses to zero size.
type AnimationData struct {
	Instance *animations.Instance
}

// Size returns the pixel size of the current frame.
func (a *AnimationData) Size() (int, int) {
	if a == nil || a.Instance == nil {
		return 0, 0
	}
	return a.Instance.Size()
}

var Animation = donburi.NewComponentType[AnimationData]()

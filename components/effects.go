package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the damage flash. Tween runs from full intensity to 0.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float32
	R, G, B   float32 // tint at full intensity
}

func (f *FlashData) Active() bool {
	return f.Tween != nil
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData marks entities removed once their animation stops playing.
type AutoDestroyData struct{}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

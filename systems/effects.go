package systems

import (
	"time"

	"github.com/automoto/blaster/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// updateEffects fades damage flashes and plays one-shot effects, removing
// each effect once its animation stops.
func (s *Simulation) updateEffects(dt time.Duration) {
	updateFlashEffects(s.world, dt)

	var done []*donburi.Entry
	components.AutoDestroy.Each(s.world, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Instance != nil {
			anim.Instance.Update(dt)
		}
		if anim.Instance == nil || !anim.Instance.Playing() {
			done = append(done, e)
		}
	})
	for _, e := range done {
		s.destroy(e)
	}
}

func updateFlashEffects(w donburi.World, dt time.Duration) {
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		v, finished := flash.Tween.Update(float32(dt.Seconds()))
		flash.Intensity = v
		if finished {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})
}

// TriggerFlash restarts the damage flash at full intensity.
func TriggerFlash(e *donburi.Entry, d time.Duration) {
	if d <= 0 || !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Tween = gween.New(1, 0, float32(d.Seconds()), ease.OutQuad)
	flash.Intensity = 1
}

package systems

import (
	"github.com/automoto/blaster/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Back to front
var renderQueries = []*donburi.Query{
	donburi.NewQuery(filter.Contains(tags.Enemy)),
	donburi.NewQuery(filter.Contains(tags.Player)),
	donburi.NewQuery(filter.Contains(tags.Bullet)),
	donburi.NewQuery(filter.Contains(tags.Effect)),
}

// RenderAll draws every visible entity. It never changes simulation state.
func (s *Simulation) RenderAll(surface Surface) {
	for _, q := range renderQueries {
		q.Each(s.world, func(e *donburi.Entry) {
			RenderEntity(e, surface)
		})
	}
	if s.Debug {
		if screen, ok := surface.(*ebiten.Image); ok {
			DrawHitboxes(s, screen)
		}
	}
}

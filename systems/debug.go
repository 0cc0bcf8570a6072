package systems

import (
	"image/color"

	"github.com/automoto/blaster/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawHitboxes outlines every object in the collision space.
func DrawHitboxes(s *Simulation, screen *ebiten.Image) {
	for _, obj := range s.space.Objects() {
		if obj.W <= 0 || obj.H <= 0 {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvHostile) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		} else if obj.HasTags(tags.ResolvFriendly) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		x, y := obj.X, obj.Y
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}

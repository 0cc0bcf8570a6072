package systems

import (
	"time"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteRect is the area covered by the entity's current frame.
func SpriteRect(e *donburi.Entry) gamemath.Rect {
	ent := components.Entity.Get(e)
	var w, h int
	if e.HasComponent(components.Animation) {
		w, h = components.Animation.Get(e).Size()
	}
	return gamemath.Rect{X: ent.Position.X, Y: ent.Position.Y, W: float64(w), H: float64(h)}
}

// Hitbox returns the collision rectangle, or an empty one for entities
// without a body.
func Hitbox(e *donburi.Entry) gamemath.Rect {
	if !e.HasComponent(components.Object) {
		return gamemath.Rect{}
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return gamemath.Rect{}
	}
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// UpdateEntity advances the sprite animation and moves the hitbox to the
// entity's position, resizing it to the current frame.
func UpdateEntity(e *donburi.Entry, dt time.Duration) {
	if e.HasComponent(components.Animation) {
		if anim := components.Animation.Get(e); anim.Instance != nil {
			anim.Instance.Update(dt)
		}
	}

	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	ent := components.Entity.Get(e)
	obj.X = ent.Position.X
	obj.Y = ent.Position.Y
	if !ent.FixedHitbox {
		r := SpriteRect(e)
		obj.W, obj.H = r.W, r.H
	}
	obj.Update()
}

// UpdateMobile runs the entity update, applies velocity and keeps the sprite
// on the surface when the entity asks for it.
func UpdateMobile(e *donburi.Entry, dt time.Duration, bounds gamemath.Rect) {
	UpdateEntity(e, dt)

	ent := components.Entity.Get(e)
	mob := components.Mobile.Get(e)
	ent.Position.X += mob.Velocity.X
	ent.Position.Y -= mob.Velocity.Y // velocity is +y up, screen is +y down

	if !mob.ClampToBounds {
		return
	}
	r := SpriteRect(e)
	x, clampedX := gamemath.ClampAxis(ent.Position.X, bounds.X, bounds.Right()-r.W)
	y, clampedY := gamemath.ClampAxis(ent.Position.Y, bounds.Y, bounds.Bottom()-r.H)
	ent.Position.X, ent.Position.Y = x, y

	if mob.Bounce {
		if clampedX {
			mob.Velocity.X = -mob.Velocity.X
		}
		if clampedY {
			mob.Velocity.Y = -mob.Velocity.Y
		}
	}
}

func FullyWithinBounds(e *donburi.Entry, bounds gamemath.Rect) bool {
	return bounds.Contains(SpriteRect(e))
}

// FullyOutsideBounds reports whether no part of the sprite is on the surface.
// A sprite without area counts as its top-left point.
func FullyOutsideBounds(e *donburi.Entry, bounds gamemath.Rect) bool {
	r := SpriteRect(e)
	if r.Empty() {
		return r.X < bounds.X || r.Y < bounds.Y || r.X >= bounds.Right() || r.Y >= bounds.Bottom()
	}
	return !r.Intersects(bounds)
}

// CollidesWith is symmetric. Entities that are not collidable or have an
// empty hitbox never collide.
func CollidesWith(a, b *donburi.Entry) bool {
	if a == b || !a.Valid() || !b.Valid() {
		return false
	}
	if !components.Entity.Get(a).Collidable || !components.Entity.Get(b).Collidable {
		return false
	}
	return Hitbox(a).Intersects(Hitbox(b))
}

// RenderEntity draws the current frame at the entity's position.
func RenderEntity(e *donburi.Entry, surface Surface) {
	ent := components.Entity.Get(e)
	if ent.Invisible || !e.HasComponent(components.Animation) {
		return
	}
	anim := components.Animation.Get(e)
	if anim.Instance == nil {
		return
	}
	img := anim.Instance.Image()
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ent.Position.X, ent.Position.Y)
	if e.HasComponent(components.Flash) {
		if f := components.Flash.Get(e); f.Active() {
			i := f.Intensity
			op.ColorScale.Scale(1+(f.R-1)*i, 1+(f.G-1)*i, 1+(f.B-1)*i, 1)
		}
	}
	surface.DrawImage(img, op)
}

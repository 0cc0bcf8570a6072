package systems

import (
	"math"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/yohamta/donburi"
)

const (
	botDangerRadius = 120.0 // hostile bullets closer than this are dodged
	botAimTolerance = 16.0  // fire when the target is this close horizontally
)

// UpdateBot fills in with the actions an autopilot would press this tick. It
// drives the player through the same path as the keyboard.
func UpdateBot(s *Simulation, in *Input) {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	p := s.Player()
	if p == nil {
		return
	}
	px, py := SpriteRect(p).Center()

	if dodge := botDodge(s, px, py); dodge != 0 {
		pressDirection(in, dodge)
		in.Current[cfg.ActionFire] = true
		return
	}

	target, ok := botTarget(s, px)
	if !ok {
		// Nothing to shoot: drift back to the middle.
		mid := s.Bounds().W / 2
		if math.Abs(px-mid) > botAimTolerance {
			pressDirection(in, math.Copysign(1, mid-px))
		}
		return
	}

	if math.Abs(target-px) > botAimTolerance/2 {
		pressDirection(in, math.Copysign(1, target-px))
	}
	in.Current[cfg.ActionFire] = math.Abs(target-px) <= botAimTolerance
}

func pressDirection(in *Input, dx float64) {
	if dx < 0 {
		in.Current[cfg.ActionMoveLeft] = true
	} else if dx > 0 {
		in.Current[cfg.ActionMoveRight] = true
	}
}

// botTarget returns the centre X of the live enemy closest to x.
func botTarget(s *Simulation, x float64) (float64, bool) {
	best, found := 0.0, false
	s.Enemies.Each(func(e *donburi.Entry) {
		if components.Health.Get(e).Dead() {
			return
		}
		ex, _ := SpriteRect(e).Center()
		if !found || math.Abs(ex-x) < math.Abs(best-x) {
			best, found = ex, true
		}
	})
	return best, found
}

// botDodge returns the direction to step away from the nearest threatening
// hostile bullet, or 0 when none is close.
func botDodge(s *Simulation, px, py float64) float64 {
	nearest := botDangerRadius
	dir := 0.0
	s.Bullets.Each(func(b *donburi.Entry) {
		if !components.Bullet.Get(b).Hostile {
			return
		}
		bx, by := SpriteRect(b).Center()
		d := math.Hypot(bx-px, by-py)
		if d < nearest && by < py {
			nearest = d
			dir = math.Copysign(1, px-bx)
		}
	})
	return dir
}

package systems

import (
	"time"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/shared/gamemath"
)

func (s *Simulation) updatePlayer(dt time.Duration) {
	p := s.Player()
	if p == nil {
		return
	}
	player := components.Player.Get(p)
	if player.InvulnTimer > 0 {
		player.InvulnTimer -= dt
		if player.InvulnTimer < 0 {
			player.InvulnTimer = 0
		}
	}

	UpdateMobile(p, dt, s.Bounds())

	if player.Spawner == nil || !player.Spawner.Valid() {
		return
	}
	setSpawning(player.Spawner, player.Firing)
	UpdateSpawner(s, player.Spawner, dt)
}

// SetPlayerVelocity sets the player's velocity in pixels per tick, positive
// Y up.
func (s *Simulation) SetPlayerVelocity(vx, vy float64) {
	p := s.Player()
	if p == nil {
		return
	}
	mob := components.Mobile.Get(p)
	mob.Velocity.X = vx
	mob.Velocity.Y = vy
}

// MovePlayer steers the player in a digital direction (each axis -1, 0 or 1,
// positive Y up) at the player's speed.
func (s *Simulation) MovePlayer(dx, dy float64) {
	p := s.Player()
	if p == nil {
		return
	}
	speed := components.Player.Get(p).Speed
	dx, dy = gamemath.Normalize8(gamemath.ClampSpeed(dx, 1), gamemath.ClampSpeed(dy, 1))
	s.SetPlayerVelocity(dx*speed, dy*speed)
}

func (s *Simulation) SetPlayerFiring(firing bool) {
	if p := s.Player(); p != nil {
		components.Player.Get(p).Firing = firing
	}
}

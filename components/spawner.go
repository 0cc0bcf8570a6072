package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnerData emits bullets at a fixed rate while Spawning is set.
type SpawnerData struct {
	Owner  *donburi.Entry
	Offset math.Vec2 // from the owner's position

	Spawning        bool
	Damage          int
	BulletVelocity  math.Vec2 // pixels per tick, positive Y up
	BulletAnimation string
	Delay           time.Duration
	Elapsed         time.Duration
	Hostile         bool // bullets hurt the player
}

// Start and Stop leave the accumulated time untouched.
func (s *SpawnerData) Start() { s.Spawning = true }
func (s *SpawnerData) Stop()  { s.Spawning = false }

var Spawner = donburi.NewComponentType[SpawnerData]()

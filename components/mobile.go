package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type MobileData struct {
	// Velocity in pixels per tick. Positive Y points up the screen.
	Velocity      math.Vec2
	ClampToBounds bool
	Bounce        bool // reverse the clamped axis
}

var Mobile = donburi.NewComponentType[MobileData]()

package systems

import (
	cfg "github.com/automoto/blaster/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Input holds the action state of this frame and the previous one.
type Input struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (in *Input) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *Input) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// ReadKeyboard polls the keyboard and any standard-layout gamepads into in.
func ReadKeyboard(in *Input) {
	// Swap buffers: current becomes previous, then zero out current
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}

	// Merge the left stick into the directional actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		dz := cfg.Input.AnalogDeadzone
		if h < -dz {
			in.Current[cfg.ActionMoveLeft] = true
		}
		if h > dz {
			in.Current[cfg.ActionMoveRight] = true
		}
		if v < -dz {
			in.Current[cfg.ActionMoveUp] = true
		}
		if v > dz {
			in.Current[cfg.ActionMoveDown] = true
		}
	}
}

// ApplyInput steers the player from the held actions.
func ApplyInput(s *Simulation, in *Input) {
	var dx, dy float64
	if in.Pressed(cfg.ActionMoveLeft) {
		dx--
	}
	if in.Pressed(cfg.ActionMoveRight) {
		dx++
	}
	if in.Pressed(cfg.ActionMoveUp) {
		dy++
	}
	if in.Pressed(cfg.ActionMoveDown) {
		dy--
	}
	s.MovePlayer(dx, dy)
	s.SetPlayerFiring(in.Pressed(cfg.ActionFire))
}

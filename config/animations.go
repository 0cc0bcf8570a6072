package config

import (
	"image/color"
	"time"
)

// AnimationDef describes one horizontal sprite sheet strip.
type AnimationDef struct {
	Sheet         string // path inside the asset directory
	FrameWidth    int
	FrameHeight   int
	Frames        int
	FrameDuration time.Duration
	Loop          bool
	Placeholder   color.RGBA // fill colour used when the sheet cannot be loaded
}

// Animations maps a template name to its sprite sheet definition.
var Animations map[string]AnimationDef

func init() {
	Animations = map[string]AnimationDef{
		"player": {
			Sheet: "spritesheets/player.png", FrameWidth: 48, FrameHeight: 48,
			Frames: 4, FrameDuration: 90 * time.Millisecond, Loop: true, Placeholder: LightBlue,
		},
		"player_bullet": {
			Sheet: "spritesheets/player_bullet.png", FrameWidth: 8, FrameHeight: 16,
			Frames: 2, FrameDuration: 60 * time.Millisecond, Loop: true, Placeholder: Yellow,
		},
		"enemy_bullet": {
			Sheet: "spritesheets/enemy_bullet.png", FrameWidth: 10, FrameHeight: 10,
			Frames: 2, FrameDuration: 80 * time.Millisecond, Loop: true, Placeholder: Magenta,
		},
		"drone": {
			Sheet: "spritesheets/drone.png", FrameWidth: 40, FrameHeight: 32,
			Frames: 4, FrameDuration: 100 * time.Millisecond, Loop: true, Placeholder: LightRed,
		},
		"gunship": {
			Sheet: "spritesheets/gunship.png", FrameWidth: 64, FrameHeight: 48,
			Frames: 4, FrameDuration: 120 * time.Millisecond, Loop: true, Placeholder: Orange,
		},
		"sentinel": {
			Sheet: "spritesheets/sentinel.png", FrameWidth: 48, FrameHeight: 48,
			Frames: 6, FrameDuration: 80 * time.Millisecond, Loop: true, Placeholder: Purple,
		},
		"kamikaze": {
			Sheet: "spritesheets/kamikaze.png", FrameWidth: 32, FrameHeight: 32,
			Frames: 2, FrameDuration: 50 * time.Millisecond, Loop: true, Placeholder: Red,
		},
		// Non-looping: holds its last frame until the effect is removed
		"explosion": {
			Sheet: "spritesheets/explosion.png", FrameWidth: 48, FrameHeight: 48,
			Frames: 6, FrameDuration: 60 * time.Millisecond, Loop: false, Placeholder: BrightOrange,
		},
	}
}

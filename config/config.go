package config

import (
	"image/color"
	"time"
)

// Config holds the play surface and loop cadence.
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// TickDuration is the simulated time that passes in one tick.
func (c Config) TickDuration() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health    int
	Speed     float64 // pixels per tick
	Animation string

	// Blaster
	BulletAnimation string
	BulletDamage    int
	BulletSpeed     float64 // pixels per tick, fired straight up
	FireDelay       time.Duration
	MuzzleOffsetX   float64 // muzzle point relative to the sprite's top-left corner
	MuzzleOffsetY   float64

	// Invulnerability after being hit
	InvulnDuration time.Duration
}

// SpawningConfig controls the enemy population.
type SpawningConfig struct {
	MaxEnemies       int
	CreationCooldown time.Duration
}

// CombatConfig contains combat feedback values
type CombatConfig struct {
	FlashDuration      time.Duration // damage flash fade-out
	ExplosionAnimation string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	Seed         uint64 // 0 = seed from the clock
	AssetDir     string // directory holding sprite sheets; empty = placeholders only
}

// ScoresConfig controls the persisted high-score table.
type ScoresConfig struct {
	AppName    string
	MaxEntries int
}

// Settings is the full configuration handed to a simulation. It is a value:
// callers copy and tweak it without touching the package defaults.
type Settings struct {
	Surface  Config
	Player   PlayerConfig
	Spawning SpawningConfig
	Combat   CombatConfig
	Enemies  []EnemyArchetype
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Spawning SpawningConfig
var Combat CombatConfig
var Debug DebugConfig
var Scores ScoresConfig

// Defaults returns a copy of the package defaults.
func Defaults() Settings {
	enemies := make([]EnemyArchetype, len(Enemies))
	copy(enemies, Enemies)
	return Settings{
		Surface:  *C,
		Player:   Player,
		Spawning: Spawning,
		Combat:   Combat,
		Enemies:  enemies,
	}
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Background   = color.RGBA{R: 10, G: 12, B: 28, A: 255}
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 720,
		TPS:    60,
		Title:  "Blaster",
	}

	Player = PlayerConfig{
		Health:    100,
		Speed:     6.0,
		Animation: "player",

		BulletAnimation: "player_bullet",
		BulletDamage:    10,
		BulletSpeed:     12.0,
		FireDelay:       150 * time.Millisecond,
		MuzzleOffsetX:   24, // top centre of the 48px sprite
		MuzzleOffsetY:   0,

		InvulnDuration: 750 * time.Millisecond,
	}

	Spawning = SpawningConfig{
		MaxEnemies:       8,
		CreationCooldown: 1200 * time.Millisecond,
	}

	Combat = CombatConfig{
		FlashDuration:      250 * time.Millisecond,
		ExplosionAnimation: "explosion",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes: false,
		Seed:         0,
		AssetDir:     "",
	}

	Scores = ScoresConfig{
		AppName:    "blaster",
		MaxEntries: 10,
	}
}

package systems

import (
	"testing"
	"time"

	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/assets/animations"
	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const testTick = time.Second / 60

func testLibrary() *animations.Library {
	lib := animations.NewLibrary()
	add := func(name string, w, h, frames int, loop bool) {
		fs := make([]animations.Frame, frames)
		for i := range fs {
			fs[i] = animations.Frame{Image: ebiten.NewImage(w, h), Duration: 50 * time.Millisecond}
		}
		lib.Add(animations.MustTemplate(name, fs, loop))
	}
	add("player", 48, 48, 2, true)
	add("player_bullet", 4, 10, 1, true)
	add("enemy_bullet", 6, 6, 1, true)
	add("drone", 32, 32, 2, true)
	add("gunship", 64, 40, 2, true)
	add("sentinel", 40, 40, 2, true)
	add("kamikaze", 24, 24, 2, true)
	add("explosion", 32, 32, 3, false)
	return lib
}

func testArena() assets.Arena {
	return assets.Arena{
		Name:        "test",
		Width:       1024,
		Height:      720,
		PlayerSpawn: math.Vec2{X: 488, Y: 640},
		EnemyBand:   gamemath.Rect{X: 32, Y: 32, W: 960, H: 224},
	}
}

// newTestSim returns a running simulation that never creates enemies on its
// own.
func newTestSim(t *testing.T) *Simulation {
	t.Helper()
	settings := config.Defaults()
	settings.Spawning.MaxEnemies = 0
	return startSim(t, settings)
}

func startSim(t *testing.T, settings config.Settings) *Simulation {
	t.Helper()
	s := NewSimulation(settings, testLibrary(), testArena(), 1)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return s
}

func archetype(t *testing.T, name string) config.EnemyArchetype {
	t.Helper()
	for _, a := range config.Enemies {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("archetype %q not found", name)
	return config.EnemyArchetype{}
}

func setPosition(e *donburi.Entry, x, y float64) {
	components.Entity.Get(e).Position = math.Vec2{X: x, Y: y}
	UpdateEntity(e, 0)
}

func expectPanic(t *testing.T, name string, fn func()) any {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	if got == nil {
		t.Errorf("%s: expected panic", name)
	}
	return got
}

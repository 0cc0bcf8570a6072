package scenes

import (
	"testing"

	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/systems"
)

func newTestScene(t *testing.T) *ArenaScene {
	t.Helper()
	library, err := assets.NewLoader(nil).Load(cfg.Animations)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	settings := cfg.Defaults()
	settings.Spawning.MaxEnemies = 0
	as := NewArenaScene(ArenaOptions{
		Settings: settings,
		Library:  library,
		Seed:     3,
		Scores:   systems.NewHighScores(nil, 5),
	})
	as.configure()
	return as
}

func press(in *systems.Input, a cfg.ActionID) {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Current[a] = true
}

func TestPauseToggle(t *testing.T) {
	as := newTestScene(t)
	var in systems.Input

	press(&in, cfg.ActionPause)
	as.handleInput(&in)
	if !as.Paused() {
		t.Fatal("expected the scene to pause")
	}

	// Held, not pressed again.
	as.handleInput(&in)
	if !as.Paused() {
		t.Error("holding pause should not toggle it back")
	}

	in = systems.Input{}
	press(&in, cfg.ActionPause)
	as.handleInput(&in)
	if as.Paused() {
		t.Error("a second press should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	as := newTestScene(t)
	sim := as.Simulation()

	var in systems.Input
	press(&in, cfg.ActionRestart)
	as.handleInput(&in)
	if sim.Session().Tick != 0 || sim.State() != components.SessionRunning {
		t.Fatal("restart should do nothing during a run")
	}

	if err := components.Health.Get(sim.Player()).Set(0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	sim.UpdateAll(cfg.C.TickDuration())
	if sim.State() != components.SessionGameOver {
		t.Fatalf("expected game over, got %v", sim.State())
	}
	if best := as.opts.Scores.Best(); best != 0 || len(as.opts.Scores.Entries()) != 1 {
		t.Errorf("the finished run should be recorded, got %d entries", len(as.opts.Scores.Entries()))
	}

	in = systems.Input{}
	press(&in, cfg.ActionRestart)
	as.handleInput(&in)
	if sim.State() != components.SessionRunning {
		t.Errorf("expected a new run after restart, got %v", sim.State())
	}
}

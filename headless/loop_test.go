package headless

import (
	"testing"
	"time"

	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/systems"
)

func newTestLoop(t *testing.T, maxTicks uint64) *GameLoop {
	t.Helper()
	library, err := assets.NewLoader(nil).Load(config.Animations)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	arena, err := assets.LoadArena(assets.DefaultArena)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	sim := systems.NewSimulation(config.Defaults(), library, arena, 7)
	return NewGameLoop(sim, 60, maxTicks)
}

func TestRunFastStopsAtMaxTicks(t *testing.T) {
	loop := newTestLoop(t, 120)

	res := loop.RunFast()

	if res.Reason != StopMaxTicks {
		t.Fatalf("expected %q, got %q", StopMaxTicks, res.Reason)
	}
	if res.Snapshot.Tick != 120 {
		t.Errorf("expected 120 ticks, got %d", res.Snapshot.Tick)
	}
	if want := 120 * (time.Second / 60); res.Snapshot.Elapsed != want {
		t.Errorf("expected %v simulated, got %v", want, res.Snapshot.Elapsed)
	}
}

func TestStopBeforeRun(t *testing.T) {
	loop := newTestLoop(t, 0)
	loop.Stop()
	loop.Stop()

	res := loop.RunFast()
	if res.Reason != StopSignal {
		t.Errorf("expected %q, got %q", StopSignal, res.Reason)
	}
	if res.Snapshot.Tick != 0 {
		t.Errorf("no tick should run after Stop, got %d", res.Snapshot.Tick)
	}
}

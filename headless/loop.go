package headless

import (
	"image"
	"log"
	"sync"
	"time"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// NullSurface discards every draw call.
type NullSurface struct {
	Rect image.Rectangle
}

func (n NullSurface) Bounds() image.Rectangle { return n.Rect }
func (n NullSurface) DrawImage(*ebiten.Image, *ebiten.DrawImageOptions) {}

type StopReason string

const (
	StopMaxTicks StopReason = "max ticks"
	StopGameOver StopReason = "game over"
	StopSignal   StopReason = "stopped"
)

type Result struct {
	Reason   StopReason
	Snapshot systems.Snapshot
}

// GameLoop drives a simulation without a window, with the autopilot at the
// controls.
type GameLoop struct {
	sim      *systems.Simulation
	tickRate int
	maxTicks uint64
	input    systems.Input
	surface  systems.Surface
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop runs sim for at most maxTicks ticks (0 = until game over).
func NewGameLoop(sim *systems.Simulation, tickRate int, maxTicks uint64) *GameLoop {
	b := sim.Bounds()
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		maxTicks: maxTicks,
		surface:  NullSurface{Rect: image.Rect(0, 0, int(b.W), int(b.H))},
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) tickDuration() time.Duration {
	if g.tickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(g.tickRate)
}

// Run paces ticks in real time.
func (g *GameLoop) Run() Result {
	ticker := time.NewTicker(g.tickDuration())
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return g.result(StopSignal)
		case <-ticker.C:
			if reason, done := g.tick(); done {
				return g.result(reason)
			}
		}
	}
}

// RunFast ticks as fast as possible, still checking for Stop between ticks.
func (g *GameLoop) RunFast() Result {
	for {
		select {
		case <-g.stopChan:
			return g.result(StopSignal)
		default:
		}
		if reason, done := g.tick(); done {
			return g.result(reason)
		}
	}
}

// Stop may be called from any goroutine, more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) tick() (StopReason, bool) {
	if err := g.sim.Start(); err != nil {
		log.Printf("Warning: could not start simulation: %v", err)
		return StopSignal, true
	}

	systems.UpdateBot(g.sim, &g.input)
	systems.ApplyInput(g.sim, &g.input)
	g.sim.Tick(g.tickDuration(), g.surface)

	if g.sim.State() == components.SessionGameOver {
		return StopGameOver, true
	}
	if g.maxTicks > 0 && g.sim.Session().Tick >= g.maxTicks {
		return StopMaxTicks, true
	}
	return "", false
}

func (g *GameLoop) result(reason StopReason) Result {
	return Result{Reason: reason, Snapshot: g.sim.Snapshot()}
}

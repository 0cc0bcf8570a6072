package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/assets/animations"
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/systems"
	"github.com/automoto/blaster/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ArenaOptions is everything the arena scene needs to build a run.
type ArenaOptions struct {
	Settings cfg.Settings
	Library  *animations.Library
	Arena    assets.Arena
	Seed     uint64
	Scores   *systems.HighScores
	Debug    bool
}

// ArenaScene is the playable game: keyboard in, simulation, HUD out.
type ArenaScene struct {
	opts   ArenaOptions
	sim    *systems.Simulation
	input  systems.Input
	paused bool
	once   sync.Once
}

func NewArenaScene(opts ArenaOptions) *ArenaScene {
	return &ArenaScene{opts: opts}
}

func (as *ArenaScene) configure() {
	as.sim = systems.NewSimulation(as.opts.Settings, as.opts.Library, as.opts.Arena, as.opts.Seed)
	as.sim.Debug = as.opts.Debug

	systems.GameOverEvent.Subscribe(as.sim.World(), func(_ donburi.World, run systems.GameOver) {
		if as.opts.Scores == nil {
			return
		}
		if rank := as.opts.Scores.Record(run, time.Now()); rank > 0 {
			log.Printf("New high score #%d: %d", rank, run.Score)
		}
	})

	if err := as.sim.Start(); err != nil {
		panic("failed to start arena: " + err.Error())
	}
}

// Update reads input and advances the simulation by one tick unless paused.
func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	systems.ReadKeyboard(&as.input)
	as.handleInput(&as.input)

	if as.paused {
		return
	}
	systems.ApplyInput(as.sim, &as.input)
	as.sim.UpdateAll(as.opts.Settings.Surface.TickDuration())
}

func (as *ArenaScene) handleInput(in *systems.Input) {
	if in.JustPressed(cfg.ActionDebug) {
		as.sim.Debug = !as.sim.Debug
	}

	switch as.sim.State() {
	case components.SessionRunning:
		if in.JustPressed(cfg.ActionPause) {
			as.paused = !as.paused
		}
	case components.SessionGameOver:
		as.paused = false
		if in.JustPressed(cfg.ActionRestart) {
			if err := as.sim.Reset(); err != nil {
				log.Printf("Warning: could not restart: %v", err)
			}
		}
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if as.sim == nil {
		return
	}
	as.sim.RenderAll(screen)

	best := 0
	if as.opts.Scores != nil {
		best = as.opts.Scores.Best()
	}
	ui.DrawHUD(screen, ui.HUDState{
		Snapshot:  as.sim.Snapshot(),
		HighScore: best,
		Paused:    as.paused,
		Debug:     as.sim.Debug,
	})
}

func (as *ArenaScene) Paused() bool {
	return as.paused
}

// Simulation is nil until the first Update.
func (as *ArenaScene) Simulation() *systems.Simulation {
	return as.sim
}

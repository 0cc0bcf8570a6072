package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/headless"
	"github.com/automoto/blaster/systems"
)

func main() {
	seed := flag.Uint64("seed", 1, "Random seed")
	ticks := flag.Uint64("ticks", 3600, "Stop after this many ticks (0 = until game over)")
	tickRate := flag.Int("tickrate", config.C.TPS, "Tick rate (updates per second)")
	fast := flag.Bool("fast", true, "Tick as fast as possible instead of in real time")
	flag.Parse()

	arena, err := assets.LoadArena(assets.DefaultArena)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	library, err := assets.NewLoader(nil).Load(config.Animations)
	if err != nil {
		log.Fatalf("Failed to build animations: %v", err)
	}

	settings := config.Defaults()
	settings.Surface.TPS = *tickRate
	sim := systems.NewSimulation(settings, library, arena, *seed)
	loop := headless.NewGameLoop(sim, *tickRate, *ticks)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Running %s headless (seed %d, %d ticks/s)", arena.Name, *seed, *tickRate)
	start := time.Now()
	var res headless.Result
	if *fast {
		res = loop.RunFast()
	} else {
		res = loop.Run()
	}

	snap := res.Snapshot
	log.Printf("Finished (%s) after %d ticks / %v simulated in %v: score %d, kills %d, health %d/%d",
		res.Reason, snap.Tick, snap.Elapsed, time.Since(start).Round(time.Millisecond),
		snap.Score, snap.Kills, snap.Health, snap.MaxHealth)
}

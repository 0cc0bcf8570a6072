package main

import (
	"flag"
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/fonts"
	"github.com/automoto/blaster/scenes"
	"github.com/automoto/blaster/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts scenes.ArenaOptions) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.Uint64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "Random seed (0 = from the clock)")
	flag.StringVar(&config.Debug.AssetDir, "assets", config.Debug.AssetDir, "Directory holding sprite sheets (empty = placeholders)")
	flag.BoolVar(&config.Debug.ShowHitboxes, "debug", config.Debug.ShowHitboxes, "Show hitboxes and counters")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	arena, err := assets.LoadArena(assets.DefaultArena)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	config.C.Width, config.C.Height = arena.Width, arena.Height

	loader := assets.NewLoader(nil)
	if config.Debug.AssetDir != "" {
		loader = assets.NewLoader(os.DirFS(config.Debug.AssetDir))
	}
	library, err := loader.Load(config.Animations)
	if err != nil {
		log.Fatalf("Failed to build animations: %v", err)
	}

	seed := config.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	opts := scenes.ArenaOptions{
		Settings: config.Defaults(),
		Library:  library,
		Arena:    arena,
		Seed:     seed,
		Scores:   systems.OpenHighScores(config.Scores.AppName, config.Scores.MaxEntries),
		Debug:    config.Debug.ShowHitboxes,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}

package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/fonts"
	"github.com/automoto/blaster/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 160
	hudBarHeight = 13
	hudMargin    = 10
	hudLine      = 20
)

// HUDState is what the HUD shows besides the simulation snapshot.
type HUDState struct {
	Snapshot  systems.Snapshot
	HighScore int
	Paused    bool
	Debug     bool
}

// DrawHUD renders health, score and the pause / game over banners.
func DrawHUD(screen *ebiten.Image, s HUDState) {
	snap := s.Snapshot
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	if snap.MaxHealth > 0 {
		ratio := float32(snap.Health) / float32(snap.MaxHealth)
		vector.FillRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)
	}

	hud := fonts.HUD.Get()
	y := hudMargin + hudBarHeight + hudLine
	text.Draw(screen, fmt.Sprintf("SCORE %d", snap.Score), fonts.HUDBold.Get(), hudMargin, y, cfg.White)
	text.Draw(screen, fmt.Sprintf("KILLS %d", snap.Kills), hud, hudMargin, y+hudLine, cfg.White)
	text.Draw(screen, fmt.Sprintf("BEST %d", s.HighScore), hud, hudMargin, y+2*hudLine, cfg.Yellow)

	if s.Debug {
		debug := fmt.Sprintf("enemies %d  bullets %d  tick %d", snap.Enemies, snap.Bullets, snap.Tick)
		text.Draw(screen, debug, hud, hudMargin, height-hudMargin, cfg.LightGreen)
	}

	switch {
	case snap.State == components.SessionGameOver:
		drawBanner(screen, width, height, "GAME OVER", "Press Enter to play again")
	case s.Paused:
		drawBanner(screen, width, height, "PAUSED", "Press P to resume")
	}
}

func drawBanner(screen *ebiten.Image, width, height int, title, hint string) {
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.HUDTitle.Get()
	titleX := (width - textWidth(titleFont, title)) / 2
	text.Draw(screen, title, titleFont, titleX, height/2, cfg.White)

	hintFont := fonts.HUD.Get()
	hintX := (width - textWidth(hintFont, hint)) / 2
	text.Draw(screen, hint, hintFont, hintX, height/2+2*hudLine, cfg.White)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

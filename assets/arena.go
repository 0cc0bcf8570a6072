package assets

import (
	"embed"
	"errors"
	"fmt"

	"github.com/automoto/blaster/shared/gamemath"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var levelFS embed.FS

// DefaultArena is the map shipped with the game.
const DefaultArena = "levels/arena.tmx"

var ErrInvalidArena = errors.New("invalid arena")

// Arena is the play surface layout read from a Tiled map.
type Arena struct {
	Name        string
	Width       int
	Height      int
	PlayerSpawn math.Vec2      // top-left of the player sprite
	EnemyBand   gamemath.Rect // enemies spawn fully inside this area
}

func (a Arena) Bounds() gamemath.Rect {
	return gamemath.Rect{W: float64(a.Width), H: float64(a.Height)}
}

// LoadArena reads an arena map from the embedded levels.
func LoadArena(path string) (Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return Arena{}, fmt.Errorf("failed to load arena %s: %w", path, err)
	}
	return arenaFromMap(path, levelMap)
}

func MustLoadArena(path string) Arena {
	arena, err := LoadArena(path)
	if err != nil {
		panic(err)
	}
	return arena
}

func arenaFromMap(path string, levelMap *tiled.Map) (Arena, error) {
	arena := Arena{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	var haveSpawn, haveBand bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.PlayerSpawn = math.Vec2{X: o.X, Y: o.Y}
				haveSpawn = true
			}
		case "EnemySpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.EnemyBand = gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				haveBand = true
			}
		}
	}

	if arena.Width <= 0 || arena.Height <= 0 {
		return Arena{}, fmt.Errorf("arena %s has no area: %w", path, ErrInvalidArena)
	}
	if !haveSpawn {
		return Arena{}, fmt.Errorf("arena %s has no PlayerSpawn object: %w", path, ErrInvalidArena)
	}
	if !haveBand || arena.EnemyBand.Empty() {
		return Arena{}, fmt.Errorf("arena %s has no EnemySpawn area: %w", path, ErrInvalidArena)
	}
	if !arena.Bounds().Contains(arena.EnemyBand) {
		return Arena{}, fmt.Errorf("arena %s: enemy spawn area leaves the map: %w", path, ErrInvalidArena)
	}
	return arena, nil
}

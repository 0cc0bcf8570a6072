package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Spawner *donburi.Entry
	Firing  bool
	Speed   float64 // pixels per tick at full input

	InvulnDuration time.Duration
	InvulnTimer    time.Duration // remaining invulnerability after a hit
}

var Player = donburi.NewComponentType[PlayerData]()

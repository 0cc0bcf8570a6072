package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type SessionState int

const (
	SessionIdle SessionState = iota
	SessionRunning
	SessionGameOver
)

func (s SessionState) String() string {
	switch s {
	case SessionRunning:
		return "Running"
	case SessionGameOver:
		return "GameOver"
	}
	return "Idle"
}

// SessionData is the single per-run state entry.
type SessionData struct {
	State   SessionState
	Score   int
	Kills   int
	Elapsed time.Duration
	Tick    uint64
}

var Session = donburi.NewComponentType[SessionData]()

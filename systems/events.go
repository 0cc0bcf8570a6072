package systems

import (
	"time"

	"github.com/yohamta/donburi/features/events"
)

type EnemyDied struct {
	Archetype  string
	X, Y       float64 // sprite centre
	ScoreValue int
}

type PlayerHit struct {
	Damage    int
	Remaining int
}

type ScoreChanged struct {
	Score int
	Kills int
}

type GameOver struct {
	Score   int
	Kills   int
	Elapsed time.Duration
}

// Events are queued during a tick and dispatched once at its end.
var (
	EnemyDiedEvent    = events.NewEventType[EnemyDied]()
	PlayerHitEvent    = events.NewEventType[PlayerHit]()
	ScoreChangedEvent = events.NewEventType[ScoreChanged]()
	GameOverEvent     = events.NewEventType[GameOver]()
)

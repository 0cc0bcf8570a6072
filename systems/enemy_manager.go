package systems

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/systems/factory"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	ErrPopulationCap    = errors.New("enemy population cap reached")
	ErrCreationCooldown = errors.New("enemy creation cooling down")
	ErrNoArchetypes     = errors.New("no enemy archetypes configured")
)

// EnemyManager owns the enemy population: it throttles creation, updates
// every enemy and removes the dead.
type EnemyManager struct {
	sim        *Simulation
	query      *donburi.Query
	archetypes []config.EnemyArchetype

	MaxEnemies       int
	CreationCooldown time.Duration
	sinceCreation    time.Duration
}

func newEnemyManager(s *Simulation) *EnemyManager {
	return &EnemyManager{
		sim:              s,
		query:            donburi.NewQuery(filter.Contains(tags.Enemy)),
		archetypes:       s.settings.Enemies,
		MaxEnemies:       s.settings.Spawning.MaxEnemies,
		CreationCooldown: s.settings.Spawning.CreationCooldown,
	}
}

func (m *EnemyManager) reset() {
	m.sinceCreation = 0
}

// CreateRandomEnemy places an enemy of a random archetype inside the spawn
// band and aims it at player, which may be nil.
func (m *EnemyManager) CreateRandomEnemy(player *donburi.Entry) (*donburi.Entry, error) {
	m.sim.mustBeRunning("EnemyManager.CreateRandomEnemy")

	if m.Count() >= m.MaxEnemies {
		return nil, ErrPopulationCap
	}
	if m.sinceCreation < m.CreationCooldown {
		return nil, ErrCreationCooldown
	}
	if len(m.archetypes) == 0 {
		return nil, ErrNoArchetypes
	}

	rng := m.sim.rng
	a := m.archetypes[rng.IntN(len(m.archetypes))]

	band := m.sim.arena.EnemyBand
	w, h := m.sim.templateSize(a.Animation)
	x := band.X + rng.Float64()*max(0, band.W-w)
	y := band.Y + rng.Float64()*max(0, band.H-h)

	enemy, err := factory.CreateEnemy(m.sim.env(), factory.EnemyConfigFor(a, x, y))
	if err != nil {
		return nil, fmt.Errorf("failed to create enemy: %w", err)
	}
	if player != nil && player.Valid() {
		SetTarget(enemy, SpriteRect(player))
	}
	m.sinceCreation = 0
	return enemy, nil
}

// Update tries one creation, updates every live enemy and removes the dead.
func (m *EnemyManager) Update(dt time.Duration) {
	m.sim.mustBeRunning("EnemyManager.Update")

	m.sinceCreation += dt
	if _, err := m.CreateRandomEnemy(m.sim.Player()); err != nil &&
		!errors.Is(err, ErrPopulationCap) && !errors.Is(err, ErrCreationCooldown) {
		log.Printf("Warning: %v", err)
	}

	// Enemies spawn bullets while updating, so iterate a snapshot.
	enemies := m.snapshot()
	for _, e := range enemies {
		if components.Health.Get(e).Dead() {
			continue
		}
		UpdateEnemy(m.sim, e, dt)
	}
	for _, e := range enemies {
		if components.Health.Get(e).Dead() {
			m.kill(e)
		}
	}
}

func (m *EnemyManager) snapshot() []*donburi.Entry {
	enemies := make([]*donburi.Entry, 0, m.Count())
	m.query.Each(m.sim.world, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	return enemies
}

// kill removes an enemy and its spawner, awards its score and leaves an
// explosion behind.
func (m *EnemyManager) kill(e *donburi.Entry) {
	s := m.sim
	enemy := components.Enemy.Get(e)
	cx, cy := SpriteRect(e).Center()

	session := components.Session.Get(s.session)
	session.Score += enemy.ScoreValue
	session.Kills++

	EnemyDiedEvent.Publish(s.world, EnemyDied{
		Archetype:  enemy.Archetype,
		X:          cx,
		Y:          cy,
		ScoreValue: enemy.ScoreValue,
	})
	ScoreChangedEvent.Publish(s.world, ScoreChanged{Score: session.Score, Kills: session.Kills})

	factory.CreateExplosion(s.env(), cx, cy, s.settings.Combat.ExplosionAnimation)
	if enemy.Spawner != nil {
		s.destroy(enemy.Spawner)
	}
	s.destroy(e)
}

func (m *EnemyManager) Count() int {
	return m.query.Count(m.sim.world)
}

func (m *EnemyManager) Each(fn func(*donburi.Entry)) {
	m.query.Each(m.sim.world, fn)
}

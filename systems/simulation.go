package systems

import (
	"image"
	"math/rand/v2"
	"time"

	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/assets/animations"
	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/automoto/blaster/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// Broad-phase cell size in pixels
const spaceCellSize = 32

// Surface is where a tick's frame is drawn. *ebiten.Image satisfies it.
type Surface interface {
	Bounds() image.Rectangle
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// Simulation owns everything that lives during a run: the entity world, the
// collision space, the animation library and both managers.
type Simulation struct {
	settings config.Settings
	arena    assets.Arena
	world    donburi.World
	ecs      *ecs.ECS
	space    *resolv.Space
	library  *animations.Library
	rng      *rand.Rand

	session  *donburi.Entry
	player   *donburi.Entry
	entities *donburi.Query

	Enemies *EnemyManager
	Bullets *BulletManager

	// Debug draws hitboxes on top of the frame.
	Debug bool

	delta time.Duration
}

// NewSimulation builds an idle simulation. An arena without area falls back
// to the configured surface with enemies spawning in its top third.
func NewSimulation(settings config.Settings, library *animations.Library, arena assets.Arena, seed uint64) *Simulation {
	if arena.Width <= 0 || arena.Height <= 0 {
		arena = fallbackArena(settings.Surface)
	}

	world := donburi.NewWorld()
	s := &Simulation{
		settings: settings,
		arena:    arena,
		world:    world,
		space:    factory.CreateSpace(arena.Width, arena.Height, spaceCellSize, spaceCellSize),
		library:  library,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		entities: donburi.NewQuery(filter.Contains(components.Entity)),
	}
	s.session = factory.CreateSession(world)
	s.Enemies = newEnemyManager(s)
	s.Bullets = newBulletManager(s)

	s.ecs = ecs.NewECS(world)
	s.ecs.AddSystem(s.whileRunning(s.advanceSession))
	s.ecs.AddSystem(s.whileRunning(s.updatePlayer))
	s.ecs.AddSystem(s.whileRunning(s.Enemies.Update))
	s.ecs.AddSystem(s.whileRunning(s.Bullets.Update))
	s.ecs.AddSystem(s.whileRunning(s.resolveCollisions))
	s.ecs.AddSystem(s.always(s.updateEffects))
	s.ecs.AddSystem(s.whileRunning(s.checkGameOver))
	s.ecs.AddSystem(func(e *ecs.ECS) {
		events.ProcessAllEvents(e.World)
	})
	return s
}

func fallbackArena(c config.Config) assets.Arena {
	w, h := float64(c.Width), float64(c.Height)
	return assets.Arena{
		Name:        "default",
		Width:       c.Width,
		Height:      c.Height,
		PlayerSpawn: math.Vec2{X: w/2 - 24, Y: h - 80},
		EnemyBand:   gamemath.Rect{X: 0, Y: 0, W: w, H: h / 3},
	}
}

func (s *Simulation) whileRunning(fn func(dt time.Duration)) ecs.System {
	return func(_ *ecs.ECS) {
		if s.State() == components.SessionRunning {
			fn(s.delta)
		}
	}
}

func (s *Simulation) always(fn func(dt time.Duration)) ecs.System {
	return func(_ *ecs.ECS) {
		fn(s.delta)
	}
}

// Start begins a run. It does nothing if a run is already in progress.
func (s *Simulation) Start() error {
	if s.State() == components.SessionRunning {
		return nil
	}
	return s.Reset()
}

// Reset removes every entity and begins a fresh run with a new player.
func (s *Simulation) Reset() error {
	var all []*donburi.Entry
	s.entities.Each(s.world, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		s.destroy(e)
	}
	s.player = nil
	s.Enemies.reset()

	session := components.Session.Get(s.session)
	*session = components.SessionData{State: components.SessionIdle}

	p := s.settings.Player
	player, err := factory.CreatePlayer(s.env(), factory.PlayerConfig{
		X:               s.arena.PlayerSpawn.X,
		Y:               s.arena.PlayerSpawn.Y,
		Health:          p.Health,
		Speed:           p.Speed,
		Animation:       p.Animation,
		BulletAnimation: p.BulletAnimation,
		BulletDamage:    p.BulletDamage,
		BulletSpeed:     p.BulletSpeed,
		FireDelay:       p.FireDelay,
		MuzzleOffset:    math.Vec2{X: p.MuzzleOffsetX, Y: p.MuzzleOffsetY},
		InvulnDuration:  p.InvulnDuration,
	})
	if err != nil {
		return err
	}
	s.player = player
	session.State = components.SessionRunning
	return nil
}

// Stop ends the run without clearing the world.
func (s *Simulation) Stop() {
	components.Session.Get(s.session).State = components.SessionIdle
}

// Tick runs one update followed by one render.
func (s *Simulation) Tick(dt time.Duration, surface Surface) {
	s.UpdateAll(dt)
	s.RenderAll(surface)
}

// UpdateAll advances the run by dt. Outside a running session only effects
// and event dispatch run.
func (s *Simulation) UpdateAll(dt time.Duration) {
	s.delta = dt
	s.ecs.Update()
}

func (s *Simulation) advanceSession(dt time.Duration) {
	session := components.Session.Get(s.session)
	session.Tick++
	session.Elapsed += dt
}

func (s *Simulation) checkGameOver(_ time.Duration) {
	if s.player == nil || !s.player.Valid() || !components.Health.Get(s.player).Dead() {
		return
	}

	session := components.Session.Get(s.session)
	session.State = components.SessionGameOver

	cx, cy := SpriteRect(s.player).Center()
	factory.CreateExplosion(s.env(), cx, cy, s.settings.Combat.ExplosionAnimation)

	ent := components.Entity.Get(s.player)
	ent.Invisible = true
	ent.Collidable = false
	pd := components.Player.Get(s.player)
	pd.Firing = false
	if pd.Spawner != nil && pd.Spawner.Valid() {
		components.Spawner.Get(pd.Spawner).Stop()
	}

	GameOverEvent.Publish(s.world, GameOver{
		Score:   session.Score,
		Kills:   session.Kills,
		Elapsed: session.Elapsed,
	})
}

func (s *Simulation) env() factory.Env {
	return factory.Env{World: s.world, Space: s.space, Library: s.library}
}

func (s *Simulation) destroy(e *donburi.Entry) {
	factory.Destroy(s.env(), e)
}

func (s *Simulation) World() donburi.World { return s.world }
func (s *Simulation) Space() *resolv.Space { return s.space }
func (s *Simulation) Library() *animations.Library { return s.library }
func (s *Simulation) Settings() config.Settings { return s.settings }
func (s *Simulation) Arena() assets.Arena { return s.arena }
func (s *Simulation) Bounds() gamemath.Rect { return s.arena.Bounds() }
func (s *Simulation) Session() components.SessionData { return *components.Session.Get(s.session) }

func (s *Simulation) State() components.SessionState {
	return components.Session.Get(s.session).State
}

// Player returns the player entry, or nil before the first run.
func (s *Simulation) Player() *donburi.Entry {
	if s.player == nil || !s.player.Valid() {
		return nil
	}
	return s.player
}

// templateSize returns the first-frame size of a named animation.
func (s *Simulation) templateSize(name string) (float64, float64) {
	t, ok := s.library.Get(name)
	if !ok || t.Len() == 0 {
		return 0, 0
	}
	img := t.Frame(0).Image
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Snapshot is a read-only view of the run for the HUD.
type Snapshot struct {
	State     components.SessionState
	Health    int
	MaxHealth int
	Score     int
	Kills     int
	Enemies   int
	Bullets   int
	Elapsed   time.Duration
	Tick      uint64
}

func (s *Simulation) Snapshot() Snapshot {
	session := s.Session()
	snap := Snapshot{
		State:   session.State,
		Score:   session.Score,
		Kills:   session.Kills,
		Enemies: s.Enemies.Count(),
		Bullets: s.Bullets.Count(),
		Elapsed: session.Elapsed,
		Tick:    session.Tick,
	}
	if p := s.Player(); p != nil {
		h := components.Health.Get(p)
		snap.Health = h.Current()
		snap.MaxHealth = h.Max()
	}
	return snap
}

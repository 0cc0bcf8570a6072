package systems

import (
	"testing"
	"time"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func newSpawner(t *testing.T, s *Simulation, owner *donburi.Entry, delay time.Duration) *donburi.Entry {
	t.Helper()
	sp, err := factory.CreateSpawner(s.env(), factory.SpawnerConfig{
		Owner:           owner,
		Offset:          math.Vec2{X: 24, Y: 0},
		Delay:           delay,
		Damage:          3,
		BulletVelocity:  math.Vec2{X: 0, Y: 10},
		BulletAnimation: "player_bullet",
		Spawning:        true,
	})
	if err != nil {
		t.Fatalf("CreateSpawner failed: %v", err)
	}
	return sp
}

func TestSpawnerCarriesRemainder(t *testing.T) {
	s := newTestSim(t)
	sp := newSpawner(t, s, s.Player(), 50*time.Millisecond)

	for i := 0; i < 3; i++ {
		UpdateSpawner(s, sp, 20*time.Millisecond)
	}

	if got := s.Bullets.Count(); got != 1 {
		t.Errorf("expected 1 bullet after 60ms at 50ms delay, got %d", got)
	}
	if got := components.Spawner.Get(sp).Elapsed; got != 10*time.Millisecond {
		t.Errorf("expected 10ms carried over, got %v", got)
	}
}

func TestSpawnerCatchesUpAfterStall(t *testing.T) {
	s := newTestSim(t)
	sp := newSpawner(t, s, s.Player(), 50*time.Millisecond)

	UpdateSpawner(s, sp, 200*time.Millisecond)

	if got := s.Bullets.Count(); got != 4 {
		t.Errorf("expected 4 bullets from a 200ms step, got %d", got)
	}
	if got := components.Spawner.Get(sp).Elapsed; got != 0 {
		t.Errorf("expected no remainder, got %v", got)
	}
}

func TestStoppedSpawnerKeepsElapsed(t *testing.T) {
	s := newTestSim(t)
	sp := newSpawner(t, s, s.Player(), 50*time.Millisecond)

	UpdateSpawner(s, sp, 30*time.Millisecond)
	components.Spawner.Get(sp).Stop()
	UpdateSpawner(s, sp, time.Second)

	if got := s.Bullets.Count(); got != 0 {
		t.Errorf("stopped spawner fired %d bullets", got)
	}
	data := components.Spawner.Get(sp)
	if data.Elapsed != 30*time.Millisecond {
		t.Errorf("expected elapsed to stay at 30ms, got %v", data.Elapsed)
	}

	data.Start()
	UpdateSpawner(s, sp, 20*time.Millisecond)
	if got := s.Bullets.Count(); got != 1 {
		t.Errorf("expected the restarted spawner to fire once, got %d", got)
	}
}

func TestSpawnerFollowsOwner(t *testing.T) {
	s := newTestSim(t)
	sp := newSpawner(t, s, s.Player(), 50*time.Millisecond)

	setPosition(s.Player(), 100, 200)
	UpdateSpawner(s, sp, 50*time.Millisecond)

	pos := components.Entity.Get(sp).Position
	if pos.X != 124 || pos.Y != 200 {
		t.Errorf("expected spawner at (124, 200), got (%v, %v)", pos.X, pos.Y)
	}

	var bullet *donburi.Entry
	s.Bullets.Each(func(e *donburi.Entry) { bullet = e })
	if bullet == nil {
		t.Fatal("expected a bullet")
	}
	cx, cy := SpriteRect(bullet).Center()
	if cx != 124 || cy != 200 {
		t.Errorf("expected bullet centred on the spawner, got (%v, %v)", cx, cy)
	}
	data := components.Bullet.Get(bullet)
	if data.Owner != s.Player() || data.Damage != 3 || data.Hostile {
		t.Errorf("unexpected bullet data %+v", data)
	}
}

func TestSpawnerRemovedWithOwner(t *testing.T) {
	s := newTestSim(t)
	enemy, err := factory.CreateEnemy(s.env(), factory.EnemyConfigFor(archetype(t, "drone"), 100, 100))
	if err != nil {
		t.Fatalf("CreateEnemy failed: %v", err)
	}
	sp := components.Enemy.Get(enemy).Spawner

	s.destroy(enemy)
	UpdateSpawner(s, sp, testTick)

	if sp.Valid() {
		t.Error("spawner should be removed once its owner is gone")
	}
}

func TestCreateSpawnerValidation(t *testing.T) {
	s := newTestSim(t)

	expectPanic(t, "nil owner", func() {
		_, _ = factory.CreateSpawner(s.env(), factory.SpawnerConfig{Delay: time.Second})
	})
	expectPanic(t, "unknown bullet animation", func() {
		_, _ = factory.CreateSpawner(s.env(), factory.SpawnerConfig{
			Owner:           s.Player(),
			Delay:           time.Second,
			BulletAnimation: "missing",
		})
	})

	cases := []factory.SpawnerConfig{
		{Owner: s.Player(), Delay: 0},
		{Owner: s.Player(), Delay: -time.Millisecond},
		{Owner: s.Player(), Delay: time.Second, Damage: -1},
	}
	for i, c := range cases {
		if _, err := factory.CreateSpawner(s.env(), c); err == nil {
			t.Errorf("case %d: expected an error for %+v", i, c)
		}
	}
}

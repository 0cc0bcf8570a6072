package systems

import (
	"time"

	"github.com/automoto/blaster/systems/factory"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// BulletManager owns every bullet in flight.
type BulletManager struct {
	sim   *Simulation
	query *donburi.Query
}

func newBulletManager(s *Simulation) *BulletManager {
	return &BulletManager{
		sim:   s,
		query: donburi.NewQuery(filter.Contains(tags.Bullet)),
	}
}

// Spawn creates and registers a bullet.
func (m *BulletManager) Spawn(c factory.BulletConfig) (*donburi.Entry, error) {
	m.sim.mustBeRunning("BulletManager.Spawn")
	return factory.CreateBullet(m.sim.env(), c)
}

// Update moves every bullet and removes those that left the play surface.
func (m *BulletManager) Update(dt time.Duration) {
	m.sim.mustBeRunning("BulletManager.Update")

	bounds := m.sim.Bounds()
	var gone []*donburi.Entry
	m.query.Each(m.sim.world, func(e *donburi.Entry) {
		UpdateMobile(e, dt, bounds)
		if FullyOutsideBounds(e, bounds) {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		m.sim.destroy(e)
	}
}

func (m *BulletManager) Remove(e *donburi.Entry) {
	m.sim.destroy(e)
}

func (m *BulletManager) Count() int {
	return m.query.Count(m.sim.world)
}

func (m *BulletManager) Each(fn func(*donburi.Entry)) {
	m.query.Each(m.sim.world, fn)
}

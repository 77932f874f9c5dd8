package metrics

import (
	"math"

	"github.com/san-kum/collide/internal/collision"
)

// MomentumDrift is the largest change in total linear momentum across an impact.
type MomentumDrift struct {
	name     string
	maxDrift float64
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(r collision.Resolution) {
	px0, py0 := r.MomentumBefore()
	px1, py1 := r.MomentumAfter()
	drift := math.Hypot(px1-px0, py1-py0)
	if !finite(drift) {
		return
	}
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.maxDrift = 0
}

// CollisionRate is the fraction of observations that collided.
type CollisionRate struct {
	name     string
	hits     int
	observed int
}

func NewCollisionRate() *CollisionRate {
	return &CollisionRate{name: "collision_rate"}
}

func (c *CollisionRate) Name() string { return c.name }

func (c *CollisionRate) Observe(r collision.Resolution) {
	c.observed++
	if r.Collided {
		c.hits++
	}
}

func (c *CollisionRate) Value() float64 {
	if c.observed == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.observed)
}

func (c *CollisionRate) Reset() {
	c.hits = 0
	c.observed = 0
}

// Defaults returns one of each metric.
func Defaults() []Metric {
	return []Metric{NewEnergy(), NewEnergyDrift(), NewMomentumDrift(), NewCollisionRate()}
}

package metrics

import (
	"math"

	"github.com/san-kum/collide/internal/collision"
)

// Metric accumulates a value over a series of resolutions.
type Metric interface {
	Name() string
	Observe(r collision.Resolution)
	Value() float64
	Reset()
}

// Energy is the mean post-impact kinetic energy over observed collisions.
type Energy struct {
	name        string
	samples     int
	totalEnergy float64
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(r collision.Resolution) {
	if !r.Collided {
		return
	}
	energy := r.EnergyAfter()
	if !finite(energy) {
		return
	}
	e.totalEnergy += energy
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift is the largest relative change in kinetic energy across an impact.
type EnergyDrift struct {
	name     string
	maxDrift float64
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(r collision.Resolution) {
	before, after := r.EnergyBefore(), r.EnergyAfter()
	if !finite(before) || !finite(after) || before == 0 {
		return
	}
	drift := math.Abs(after-before) / math.Abs(before)
	e.maxDrift = math.Max(e.maxDrift, drift)
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.maxDrift = 0
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

package dynamo

import (
	"fmt"
	"math"
)

// Velocity is the linear and angular velocity of a body.
type Velocity struct {
	vx, vy   float64
	vangular float64
}

func NewVelocity(vx, vy, vangular float64) Velocity {
	return Velocity{vx: vx, vy: vy, vangular: vangular}
}

// Linear returns the (vx, vy) components.
func (v Velocity) Linear() (float64, float64) {
	return v.vx, v.vy
}

func (v Velocity) Angular() float64 {
	return v.vangular
}

// Speed is the magnitude of the linear component.
func (v Velocity) Speed() float64 {
	return math.Sqrt(v.vx*v.vx + v.vy*v.vy)
}

// KineticEnergy is the mass-normalised linear kinetic energy. The angular
// component does not contribute.
func (v Velocity) KineticEnergy() float64 {
	return 0.5*v.vx*v.vx + 0.5*v.vy*v.vy
}

// IsValid reports whether every component is finite.
func (v Velocity) IsValid() bool {
	return isFinite(v.vx) && isFinite(v.vy) && isFinite(v.vangular)
}

func (v Velocity) String() string {
	return fmt.Sprintf("(%.4g, %.4g, ω=%.4g)", v.vx, v.vy, v.vangular)
}

// Acceleration is the linear and angular acceleration of a body.
type Acceleration struct {
	ax, ay   float64
	aangular float64
}

func NewAcceleration(ax, ay, aangular float64) Acceleration {
	return Acceleration{ax: ax, ay: ay, aangular: aangular}
}

func (a Acceleration) Linear() (float64, float64) {
	return a.ax, a.ay
}

func (a Acceleration) Angular() float64 {
	return a.aangular
}

func (a Acceleration) String() string {
	return fmt.Sprintf("(%.4g, %.4g, α=%.4g)", a.ax, a.ay, a.aangular)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

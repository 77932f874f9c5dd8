package collision

import "github.com/san-kum/collide/internal/dynamo"

// Elastic applies the 1-D elastic collision formula to each linear axis.
// Angular components pass through unchanged. m1+m2 == 0 yields NaN.
func Elastic(m1, m2 float64, v1, v2 dynamo.Velocity) (dynamo.Velocity, dynamo.Velocity) {
	v1x, v1y := v1.Linear()
	v2x, v2y := v2.Linear()

	total := m1 + m2
	k := (m1 - m2) / total
	c1 := 2 * m2 / total
	c2 := 2 * m1 / total

	n1 := dynamo.NewVelocity(k*v1x+c1*v2x, k*v1y+c1*v2y, v1.Angular())
	n2 := dynamo.NewVelocity(c2*v1x-k*v2x, c2*v1y-k*v2y, v2.Angular())
	return n1, n2
}

// Momentum returns the total linear momentum of two bodies.
func Momentum(m1, m2 float64, v1, v2 dynamo.Velocity) (float64, float64) {
	v1x, v1y := v1.Linear()
	v2x, v2y := v2.Linear()
	return m1*v1x + m2*v2x, m1*v1y + m2*v2y
}

// Energy returns the total mass-weighted linear kinetic energy.
func Energy(m1, m2 float64, v1, v2 dynamo.Velocity) float64 {
	return m1*v1.KineticEnergy() + m2*v2.KineticEnergy()
}

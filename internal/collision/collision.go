package collision

import (
	"math"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/geom"
)

// Collision is an ordered pair of bodies for one query. It never mutates
// the bodies it holds.
type Collision[B Body] struct {
	body1 B
	body2 B
}

func New[B Body](body1, body2 B) Collision[B] {
	return Collision[B]{body1: body1, body2: body2}
}

func (c Collision[B]) Bodies() (B, B) {
	return c.body1, c.body2
}

// Contacts returns where the two boundaries cross.
func (c Collision[B]) Contacts() geom.Intersection {
	return geom.CircleIntersection(c.body1, c.body2)
}

func (c Collision[B]) IsCollision() bool {
	return c.Contacts().Type == geom.Intersecting
}

func (c Collision[B]) Velocities() (dynamo.Velocity, dynamo.Velocity) {
	return c.body1.Velocity(), c.body2.Velocity()
}

func (c Collision[B]) Accelerations() (dynamo.Acceleration, dynamo.Acceleration) {
	return c.body1.Acceleration(), c.body2.Acceleration()
}

// Masses returns the area of each body.
func (c Collision[B]) Masses() (float64, float64) {
	return c.body1.Area(), c.body2.Area()
}

// NewVelocities returns the post-impact velocities, or the current ones
// unchanged when the bodies do not overlap.
func (c Collision[B]) NewVelocities() (dynamo.Velocity, dynamo.Velocity) {
	v1, v2 := c.Velocities()
	if !c.IsCollision() {
		return v1, v2
	}
	m1, m2 := c.Masses()
	return Elastic(m1, m2, v1, v2)
}

// Resolution is the full outcome of one query.
type Resolution struct {
	Collided bool
	Contacts geom.Intersection
	Masses   [2]float64
	Before   [2]dynamo.Velocity
	After    [2]dynamo.Velocity
}

func (r Resolution) MomentumBefore() (float64, float64) {
	return Momentum(r.Masses[0], r.Masses[1], r.Before[0], r.Before[1])
}

func (r Resolution) MomentumAfter() (float64, float64) {
	return Momentum(r.Masses[0], r.Masses[1], r.After[0], r.After[1])
}

func (r Resolution) EnergyBefore() float64 {
	return Energy(r.Masses[0], r.Masses[1], r.Before[0], r.Before[1])
}

func (r Resolution) EnergyAfter() float64 {
	return Energy(r.Masses[0], r.Masses[1], r.After[0], r.After[1])
}

// Resolve computes the same result as Contacts and NewVelocities, and
// additionally reports degenerate input as an error. The Resolution is
// always populated, including when an error is returned.
func (c Collision[B]) Resolve() (Resolution, error) {
	v1, v2 := c.Velocities()
	m1, m2 := c.Masses()
	contacts := c.Contacts()

	res := Resolution{
		Collided: contacts.Type == geom.Intersecting,
		Contacts: contacts,
		Masses:   [2]float64{m1, m2},
		Before:   [2]dynamo.Velocity{v1, v2},
		After:    [2]dynamo.Velocity{v1, v2},
	}
	if !res.Collided {
		return res, nil
	}

	n1, n2 := Elastic(m1, m2, v1, v2)
	res.After = [2]dynamo.Velocity{n1, n2}

	switch {
	case contacts.Degenerate():
		return res, &dynamo.ResolutionError{Stage: "contacts", Before: res.Before, Wrapped: dynamo.ErrDegenerateGeometry}
	case m1+m2 == 0 || math.IsNaN(m1+m2):
		return res, &dynamo.ResolutionError{Stage: "elastic", Before: res.Before, Wrapped: dynamo.ErrZeroMass}
	case !n1.IsValid() || !n2.IsValid():
		return res, &dynamo.ResolutionError{Stage: "elastic", Before: res.Before, Wrapped: dynamo.ErrNonFinite}
	}
	return res, nil
}

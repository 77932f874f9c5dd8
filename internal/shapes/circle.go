// Package shapes defines the rigid bodies that can take part in a collision.
package shapes

import (
	"fmt"
	"math"

	"github.com/san-kum/collide/internal/dynamo"
)

// Circle is an immutable circular body with its kinematic state.
// Its area doubles as the mass proxy (unit areal density).
type Circle struct {
	x, y         float64
	radius       float64
	angle        float64
	velocity     dynamo.Velocity
	acceleration dynamo.Acceleration
}

// NewCircle builds a circle. A nil angle means 0.
func NewCircle(x, y, radius float64, angle *float64, v dynamo.Velocity, a dynamo.Acceleration) Circle {
	c := Circle{x: x, y: y, radius: radius, velocity: v, acceleration: a}
	if angle != nil {
		c.angle = *angle
	}
	return c
}

// NewCircleAt builds a circle with zero orientation.
func NewCircleAt(x, y, radius float64, v dynamo.Velocity, a dynamo.Acceleration) Circle {
	return NewCircle(x, y, radius, nil, v, a)
}

func (c Circle) Position() (float64, float64) {
	return c.x, c.y
}

func (c Circle) Radius() float64 {
	return c.radius
}

func (c Circle) Area() float64 {
	return math.Pi * (c.radius * c.radius)
}

func (c Circle) Angle() float64 {
	return c.angle
}

func (c Circle) Velocity() dynamo.Velocity {
	return c.velocity
}

func (c Circle) Acceleration() dynamo.Acceleration {
	return c.acceleration
}

// MovedTo returns a copy of c centred at (x, y).
func (c Circle) MovedTo(x, y float64) Circle {
	c.x, c.y = x, y
	return c
}

func (c Circle) String() string {
	return fmt.Sprintf("circle{(%.4g, %.4g) r=%.4g v=%s}", c.x, c.y, c.radius, c.velocity)
}

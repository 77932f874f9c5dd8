package collision

import (
	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/geom"
)

// Body is the capability set a shape needs to take part in a collision.
type Body interface {
	geom.Disc
	Area() float64
	Velocity() dynamo.Velocity
	Acceleration() dynamo.Acceleration
}

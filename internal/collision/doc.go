// Package collision pairs two bodies for a single discrete-time query.
//
// A [Collision] answers whether its bodies overlap, where their boundaries
// cross, and what their velocities become after a perfectly elastic impact:
//
//	c := collision.New(circle1, circle2)
//	if c.IsCollision() {
//		v1, v2 := c.NewVelocities()
//	}
//
// The elastic formula is applied independently along the global x and y
// axes with area as mass. It is exact only when the centre line is parallel
// to an axis. Angular velocity is never exchanged.
//
// Degenerate input (contained circles, two zero-radius bodies) surfaces as
// NaN through [Collision.NewVelocities]; [Collision.Resolve] reports the same
// cases as errors from package dynamo.
package collision

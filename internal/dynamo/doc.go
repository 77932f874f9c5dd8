// Package dynamo provides the kinematic primitives shared by every body.
//
// The package defines the value types that describe how a body is moving
// at a single time sample:
//
//   - [Velocity]: linear (vx, vy) plus angular velocity
//   - [Acceleration]: linear (ax, ay) plus angular acceleration
//
// It also carries the domain errors used when a collision resolution is
// asked to report degenerate geometry explicitly instead of through NaN.
//
// # Example
//
//	v := dynamo.NewVelocity(10, 5, 0)
//	v.Speed()         // sqrt(125)
//	v.KineticEnergy() // 62.5
//
// # Thread Safety
//
// All types are immutable values and safe to share between goroutines.
package dynamo

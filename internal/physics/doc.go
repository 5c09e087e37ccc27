// Package physics provides the rotational dynamics behind the dial carousel.
//
//   - [AngularParticle]: implicit-velocity (Verlet style) integrator on the
//     circle with per-tick friction and a shortest-path spring ([AngularParticle.Lerp])
//   - [LerpAngular]: free-function form of the shortest-path interpolation
//   - [WrapAngle], [RegularPolyRadius]: ring geometry helpers
//
// # Example
//
//	rot := physics.NewAngularParticle(0, 0.3)
//	rot.Angle += 0.4 // impulse from the dial
//	for i := 0; i < 10; i++ {
//	    rot.Step()
//	}
//	rot.Lerp(math.Pi/2, 0.3) // settle toward a slot
//
// # Precondition
//
// LerpAngular assumes the target is within one revolution of the current
// angle. Callers only ever pass a nearby slot angle; multi-turn deltas are
// not normalised.
package physics

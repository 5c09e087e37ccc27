package physics

import "math"

const TwoPi = 2 * math.Pi

// AngularParticle is a damped rotational integrator with implicit velocity.
// Velocity is the difference between the current and previous angle, so
// moving Angle directly (Turn, Lerp) also imparts momentum.
type AngularParticle struct {
	Angle     float64
	AnglePrev float64

	// Friction in [0, 1]: 0 spins forever, 1 stops on the next step.
	Friction float64
}

func NewAngularParticle(angle, friction float64) *AngularParticle {
	return &AngularParticle{
		Angle:     angle,
		AnglePrev: angle,
		Friction:  friction,
	}
}

// Step advances the rotation by one tick and wraps Angle into [0, 2π).
// AnglePrev is shifted by the same wrap delta so velocity survives the wrap.
func (p *AngularParticle) Step() {
	vel := (p.Angle - p.AnglePrev) * (1 - p.Friction)

	p.AnglePrev = p.Angle
	p.Angle += vel

	wrapped := WrapAngle(p.Angle)
	if wrapped != p.Angle {
		p.AnglePrev += wrapped - p.Angle
		p.Angle = wrapped
	}
}

// Lerp moves Angle toward target by fraction t along the shorter arc.
// See LerpAngular for the precondition on target.
func (p *AngularParticle) Lerp(target, t float64) {
	p.Angle = LerpAngular(p.Angle, target, t)
}

// Velocity returns the implicit velocity the next Step would apply before friction.
func (p *AngularParticle) Velocity() float64 {
	return p.Angle - p.AnglePrev
}

// SetAngle places the particle at rest at angle.
func (p *AngularParticle) SetAngle(angle float64) {
	p.Angle = WrapAngle(angle)
	p.AnglePrev = p.Angle
}

// LerpAngular interpolates from angle toward target by t along the shorter arc.
//
// Both angles are assumed to lie in [0, 2π), i.e. target is within one turn
// of angle. Larger deltas are not normalised and may take the long way round.
func LerpAngular(angle, target, t float64) float64 {
	diff := math.Abs(target - angle)
	if math.Abs(angle-(target+TwoPi)) < diff {
		target += TwoPi
	} else if math.Abs(angle-(target-TwoPi)) < diff {
		target -= TwoPi
	}
	return angle + (target-angle)*t
}

// WrapAngle maps any finite angle into [0, 2π).
func WrapAngle(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// -tiny + 2π rounds up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// RegularPolyRadius returns the circumradius of a regular polygon with
// numSides sides of length sideLen. Carousel tiles sit on its vertices.
func RegularPolyRadius(sideLen float64, numSides int) float64 {
	if numSides < 2 {
		return 0
	}
	return sideLen / (2 * math.Sin(math.Pi/float64(numSides)))
}

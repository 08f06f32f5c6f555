package qhm

import (
	"math"

	"github.com/san-kum/entropix/internal/units"
)

// Softening evaluates the Langevin function L(x) = coth(x) - 1/x.
//
// L(x) is the ratio of the thermally averaged restoring curvature of the
// orientational well V(theta) = muE*(1 - cos theta) to its zero-temperature
// harmonic limit. Direct evaluation cancels catastrophically near zero and
// coth saturates for large arguments, so three branches are used.
func Softening(x float64) float64 {
	ax := math.Abs(x)
	switch {
	case ax < 1.0e-3:
		// x/3 - x^3/45 + 2 x^5/945
		x2 := x * x
		return x/3.0 - x*x2/45.0 + 2.0*x*x2*x2/945.0
	case ax > 50.0:
		// coth(x) is +-1 to machine precision here
		return math.Copysign(1.0, x) - 1.0/x
	default:
		return 1.0/math.Tanh(x) - 1.0/x
	}
}

// EffectiveCurvature maps the orientational interaction energy muE (J) onto
// an effective quadratic force constant (J/rad^2) at temperature T by
// averaging the curvature of the cosine well over the thermally populated
// angular range. Non-positive muE carries no restoring force and returns 0.
func EffectiveCurvature(muE, T float64) float64 {
	if muE <= 0.0 {
		return 0.0
	}
	x := muE / (units.Kb * T)
	return muE * Softening(x)
}

package qhm

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/entropix/internal/units"
)

// Options select model variants for the librational modes.
type Options struct {
	// NuFloor clamps computed librational wavenumbers (cm^-1) from below,
	// suppressing spuriously soft modes from nearly-free rotors. 0 disables.
	NuFloor float64
	// AvgCurvature softens the librational force constant by the thermally
	// averaged curvature of the cosine well instead of using the
	// zero-temperature value.
	AvgCurvature bool
}

// DefaultOptions enables average-curvature softening with no floor.
func DefaultOptions() Options {
	return Options{AvgCurvature: true}
}

// Moment of inertia assigned to a non-rotating axis (zero rotational
// constant, e.g. a linear molecule) so its wavenumber comes out ~0.
const inertiaSentinel = 1e99

// RotWavenumbers returns the three librational wavenumbers (cm^-1) of the
// hindered reorientation of the solvation-induced dipole.
//
// The reaction-field dipole difference dmu = muLiq - muGas sets the axis;
// projecting the gas-phase polarizability alpha onto it gives the
// interaction-energy scale muE = |dmu|^2 / (u^T alpha u). Each rotational
// constant (cm^-1, A >= B >= C by upstream convention, not validated here)
// supplies the moment of inertia for one axis.
//
// Identical dipoles or a non-positive polarizability projection mean no
// librational restoring force: all three wavenumbers are 0.
func RotWavenumbers(rot [3]float64, muLiq, muGas *mat.VecDense, alpha *mat.Dense, T float64, opts Options) [3]float64 {
	dmu := mat.NewVecDense(3, nil)
	dmu.SubVec(muLiq, muGas)
	n := mat.Norm(dmu, 2)
	if n == 0.0 {
		return [3]float64{}
	}
	u := mat.NewVecDense(3, nil)
	u.ScaleVec(1.0/n, dmu)

	p := mat.Inner(u, alpha, u)
	if p <= 0.0 {
		return [3]float64{}
	}

	muE := n * n / p * units.HartreeJ
	keff := muE
	if opts.AvgCurvature {
		keff = EffectiveCurvature(muE, T)
	}

	var nu [3]float64
	for i, b := range rot {
		nu[i] = wavenumberFromInertia(keff, inertiaFromRotConstant(b), opts.NuFloor)
	}
	return nu
}

// RotEntropy sums the harmonic-oscillator entropy over the three
// librational wavenumbers.
func RotEntropy(nu [3]float64, T float64) float64 {
	return ModeEntropy(nu[0], T) + ModeEntropy(nu[1], T) + ModeEntropy(nu[2], T)
}

func inertiaFromRotConstant(bCm float64) float64 {
	if bCm == 0.0 {
		return inertiaSentinel
	}
	bM := bCm * 100.0
	return units.H / (8.0 * math.Pi * math.Pi * units.CM * bM)
}

func wavenumberFromInertia(keff, inertia, floor float64) float64 {
	if inertia == 0.0 {
		return 0.0
	}
	nuHz := math.Sqrt(keff/inertia) / (2.0 * math.Pi)
	nuCm := nuHz / units.CCm
	if floor > 0.0 && nuCm < floor {
		return floor
	}
	return nuCm
}

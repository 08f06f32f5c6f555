package qhm

import (
	"math"

	"github.com/san-kum/entropix/internal/units"
)

// FreeVolume returns the cavity free volume (Bohr^3) from two cavity volumes
// computed at scaled and unscaled solvent-probe radii.
func FreeVolume(vScaled, vUnscaled float64) float64 {
	d := math.Cbrt(vScaled) - math.Cbrt(vUnscaled)
	return d * d * d
}

// TransWavenumber returns the effective wavenumber (cm^-1) of center-of-mass
// rattling in a cage of free volume vFree (Bohr^3) for a molecule of mwAmu
// atomic mass units at temperature T. A conformer that fills its cavity
// exactly has no translational freedom and returns 0.
func TransWavenumber(vFree, mwAmu, T float64) float64 {
	l := math.Cbrt(3.0*vFree/(4.0*math.Pi)) * units.BohrM
	if l <= 0.0 {
		return 0.0
	}
	m := mwAmu * units.AmuKg
	omega := math.Sqrt(2.0*math.Pi*units.Kb*T/m) / l
	nuHz := omega / (2.0 * math.Pi)
	return nuHz / units.CCm
}

// TransEntropy is the translational entropy (J/mol/K): three degenerate
// cage modes at the quasi-translational wavenumber.
func TransEntropy(vFree, mwAmu, T float64) float64 {
	return 3.0 * ModeEntropy(TransWavenumber(vFree, mwAmu, T), T)
}

package qhm

import (
	"math"

	"github.com/san-kum/entropix/internal/units"
)

// ModeEntropy returns the quantum harmonic-oscillator entropy (J/mol/K) of a
// single mode with wavenumber nuCm (cm^-1) at temperature T (K).
//
// Non-positive wavenumbers are failure/floor sentinels, not vibrations, and
// contribute nothing. A mode stiff enough to overflow exp(x) is frozen out
// and likewise contributes nothing.
func ModeEntropy(nuCm, T float64) float64 {
	if nuCm <= 0.0 {
		return 0.0
	}
	x := units.H * units.CCm * nuCm / (units.Kb * T)
	ex := math.Exp(x)
	if math.IsInf(ex, 1) {
		return 0.0
	}
	return units.R * (x/(ex-1.0) - math.Log(1.0-math.Exp(-x)))
}

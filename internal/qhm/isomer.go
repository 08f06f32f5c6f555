package qhm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/entropix/internal/units"
)

// IsomerEntropy returns the configurational entropy (J/mol/K) of a Boltzmann
// ensemble of conformers given their electronic energies (Hartree).
//
// Energies are referenced to the ensemble minimum before exponentiating, so
// arbitrarily large absolute energies stay in range; the reference conformer
// contributes exp(0), so the partition sum is always >= 1. The result is the
// same for every conformer in the run.
func IsomerEntropy(energies map[string]float64, T float64) float64 {
	if len(energies) == 0 {
		return 0.0
	}
	evs := make([]float64, 0, len(energies))
	for _, e := range energies {
		evs = append(evs, e)
	}
	emin := floats.Min(evs)

	de := make([]float64, len(evs))
	ex := make([]float64, len(evs))
	for i, e := range evs {
		de[i] = (e - emin) * units.HartreeJmol
		ex[i] = -de[i] / (units.R * T)
	}
	lnq := floats.LogSumExp(ex)

	var avg float64
	for i := range de {
		avg += de[i] * math.Exp(ex[i]-lnq)
	}
	return units.R * (lnq + avg/(units.R*T))
}

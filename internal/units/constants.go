// Package units holds the physical constants and conversion factors used by
// the quasi-harmonic entropy model. All values are CODATA 2018.
package units

const (
	// Boltzmann constant, J/K.
	Kb = 1.380649e-23
	// Planck constant, J*s.
	H = 6.62607015e-34
	// Speed of light, m/s.
	CM = 299792458.0
	// Speed of light, cm/s. Wavenumbers are cm^-1 throughout.
	CCm = CM * 100.0
	// Molar gas constant, J/mol/K.
	R = 8.31446261815324
	// Avogadro constant, 1/mol.
	NA = 6.02214076e23
)

// Conversion factors.
const (
	AmuKg    = 1.66053906660e-27 // atomic mass unit -> kg
	BohrM    = 5.29177210903e-11 // Bohr radius -> m
	HartreeJ = 4.3597447222071e-18
	// Hartree -> J/mol.
	HartreeJmol = HartreeJ * NA
	// Debye -> atomic units of dipole moment.
	DebyeAu = 0.393430307
	// kcal -> J.
	KcalJ = 4184.0
)

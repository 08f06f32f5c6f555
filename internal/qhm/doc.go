// Package qhm implements the quasi-harmonic entropy model for solvated
// conformers.
//
// Anharmonic motions are mapped onto effective harmonic oscillators with
// temperature-dependent frequencies:
//
//   - translation: center-of-mass rattling in the free volume of the solvent
//     cavity, three degenerate modes ([TransWavenumber])
//   - libration: hindered reorientation of the solvation-induced dipole
//     about the three principal axes ([RotWavenumbers])
//   - configuration: Boltzmann mixing over the conformer ensemble
//     ([IsomerEntropy])
//
// Each effective wavenumber feeds the quantum harmonic-oscillator entropy
// [ModeEntropy]. Librational force constants may optionally be softened by
// the thermally averaged curvature of the cosine well ([EffectiveCurvature]).
//
// All functions are pure; degenerate inputs (zero free volume, identical
// dipoles, non-positive polarizability projection, frozen-out modes) yield
// zero contributions rather than errors.
package qhm

package qhm

import "gonum.org/v1/gonum/mat"

// Quantities bundles the values extracted for one conformer. All fields must
// be populated before ComputeRow.
type Quantities struct {
	Energy         float64    // final single-point electronic energy, Hartree
	MolWeight      float64    // amu
	VolUnscaled    float64    // cavity volume at probe scale 1.0, Bohr^3
	VolScaled      float64    // cavity volume at probe scale 1.2, Bohr^3
	RotConstants   [3]float64 // A, B, C in cm^-1
	DipoleLiquid   *mat.VecDense
	DipoleGas      *mat.VecDense
	Polarizability *mat.Dense // 3x3, a.u., gas phase
	VibEntropy     float64    // J/mol/K, converted upstream
}

// Row is the per-conformer entropy breakdown, J/mol/K.
type Row struct {
	Name   string  `json:"conformer"`
	Trans  float64 `json:"s_trans"`
	Rot    float64 `json:"s_rot"`
	Vib    float64 `json:"s_vib"`
	Isomer float64 `json:"s_isomer"`
	Total  float64 `json:"s_total"`
}

// ComputeRow assembles one conformer's entropy row at temperature T.
// sIsomer is the ensemble-wide configurational entropy, computed once with
// IsomerEntropy and broadcast into every row of the run.
func ComputeRow(name string, q Quantities, T, sIsomer float64, opts Options) Row {
	vFree := FreeVolume(q.VolScaled, q.VolUnscaled)
	sTrans := TransEntropy(vFree, q.MolWeight, T)

	nu := RotWavenumbers(q.RotConstants, q.DipoleLiquid, q.DipoleGas, q.Polarizability, T, opts)
	sRot := RotEntropy(nu, T)

	return Row{
		Name:   name,
		Trans:  sTrans,
		Rot:    sRot,
		Vib:    q.VibEntropy,
		Isomer: sIsomer,
		Total:  sTrans + sRot + q.VibEntropy + sIsomer,
	}
}

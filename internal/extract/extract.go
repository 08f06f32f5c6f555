// Package extract pulls physical quantities out of ORCA report files. The
// reports are free-form text, so extraction is pattern matching against the
// phrasing ORCA prints; a quantity that cannot be matched is reported as a
// MissingQuantityError naming what was looked for.
package extract

import (
	"fmt"
	"regexp"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/entropix/internal/units"
)

const num = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[Ee][-+]?\d+)?`

var (
	energyRe = regexp.MustCompile(`(?i)FINAL\s+SINGLE\s+POINT\s+ENERGY.*?(` + num + `)`)
	massRe   = regexp.MustCompile(`(?i)Total\s+Mass.*?(` + num + `)`)
	cavityRe = regexp.MustCompile(`(?i)Cavity\s+Volume.*?(` + num + `)`)
	rotRe    = regexp.MustCompile(`(?i)Rotational\s+constants\s+in\s+cm-1:.*?(` + num + `)\s+(` + num + `)\s+(` + num + `)`)
	dipoleRe = regexp.MustCompile(`(?i)Total\s+Dipole\s+Moment.*?(` + num + `)\s+(` + num + `)\s+(` + num + `)`)
	polarRe  = regexp.MustCompile(`(?i)The\s+raw\s+cartesian\s+tensor\s*\((?:atomic\s+units|a\.u\.)\)`)
	tripleRe = regexp.MustCompile(`(` + num + `)\s+(` + num + `)\s+(` + num + `)`)
	vibRe    = regexp.MustCompile(`(?i)Vibrational\s+entropy.*?(` + num + `)\s*kcal/mol`)
)

// MissingQuantityError reports a quantity that could not be extracted from a
// report. It aborts only the conformer it belongs to, never the run.
type MissingQuantityError struct {
	Quantity string
}

func (e *MissingQuantityError) Error() string {
	return fmt.Sprintf("%s not found", e.Quantity)
}

// FinalEnergy returns the final single-point electronic energy in Hartree.
func FinalEnergy(text string) (float64, error) {
	m := energyRe.FindStringSubmatch(text)
	if m == nil {
		return 0, &MissingQuantityError{Quantity: "FINAL SINGLE POINT ENERGY"}
	}
	return strconv.ParseFloat(m[1], 64)
}

// MolWeight returns the total molecular mass in amu.
func MolWeight(text string) (float64, error) {
	m := massRe.FindStringSubmatch(text)
	if m == nil {
		return 0, &MissingQuantityError{Quantity: "total mass"}
	}
	return strconv.ParseFloat(m[1], 64)
}

// CavityVolume returns the solvent cavity volume in Bohr^3.
func CavityVolume(text string) (float64, error) {
	m := cavityRe.FindStringSubmatch(text)
	if m == nil {
		return 0, &MissingQuantityError{Quantity: "cavity volume"}
	}
	return strconv.ParseFloat(m[1], 64)
}

// RotConstants returns the three rotational constants in cm^-1, in the order
// printed (A, B, C).
func RotConstants(text string) ([3]float64, error) {
	m := rotRe.FindStringSubmatch(text)
	if m == nil {
		return [3]float64{}, &MissingQuantityError{Quantity: "rotational constants"}
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return [3]float64{}, err
		}
		out[i] = v
	}
	return out, nil
}

// DipoleVec returns the total dipole moment vector in atomic units.
func DipoleVec(text string) (*mat.VecDense, error) {
	m := dipoleRe.FindStringSubmatch(text)
	if m == nil {
		return nil, &MissingQuantityError{Quantity: "total dipole moment"}
	}
	v := make([]float64, 3)
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return mat.NewVecDense(3, v), nil
}

// PolarTensor returns the raw cartesian polarizability tensor (3x3, atomic
// units): the first three rows of three numbers following the tensor header.
func PolarTensor(text string) (*mat.Dense, error) {
	loc := polarRe.FindStringIndex(text)
	if loc == nil {
		return nil, &MissingQuantityError{Quantity: "polarizability tensor"}
	}
	rows := tripleRe.FindAllStringSubmatch(text[loc[1]:], 3)
	if len(rows) < 3 {
		return nil, &MissingQuantityError{Quantity: "polarizability tensor rows"}
	}
	data := make([]float64, 0, 9)
	for _, r := range rows {
		for i := 1; i <= 3; i++ {
			v, err := strconv.ParseFloat(r[i], 64)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(3, 3, data), nil
}

// VibEntropy returns the vibrational entropy in J/mol/K. ORCA reports the
// T*S product in kcal/mol, so the value is divided back out by T.
func VibEntropy(text string, T float64) (float64, error) {
	m := vibRe.FindStringSubmatch(text)
	if m == nil {
		return 0, &MissingQuantityError{Quantity: "vibrational entropy"}
	}
	ts, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, err
	}
	return ts * units.KcalJ / T, nil
}

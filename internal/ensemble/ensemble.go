// Package ensemble walks a conformer directory tree, extracts per-conformer
// quantities and assembles the entropy summary for one temperature.
//
// A root is either a single conformer (it contains a gas/ subrun) or a
// collection of numbered conformer directories (001-*, 002-*, ...). Each
// conformer needs five completed calculations:
//
//	gas/orca.out             gas-phase single point (energy, mass)
//	gas/polar/orca.out       gas-phase dipole and polarizability
//	scale_1.0/orca.out       cavity volume at probe scale 1.0
//	scale_1.2/orca.out       cavity volume at probe scale 1.2, rot constants
//	scale_1.2/polar/orca.out solvated dipole
//
// A conformer with a missing or unparseable quantity is skipped with a
// warning; the rest of the run proceeds.
package ensemble

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/san-kum/entropix/internal/extract"
	"github.com/san-kum/entropix/internal/qhm"
)

const (
	gasOut      = "gas/orca.out"
	gasPolarOut = "gas/polar/orca.out"
	unscaledOut = "scale_1.0/orca.out"
	scaledOut   = "scale_1.2/orca.out"
	liqPolarOut = "scale_1.2/polar/orca.out"
)

// Config selects a run.
type Config struct {
	Root        string
	Temperature float64
	Options     qhm.Options
}

// Result is a finished run: one row per processed conformer, the broadcast
// isomer entropy, and warnings for anything skipped along the way.
type Result struct {
	Temperature float64
	SIsomer     float64
	Rows        []qhm.Row
	Warnings    []string
}

// Discover lists candidate conformer directories under root in lexicographic
// order. A root that is itself a conformer yields just itself.
func Discover(root string) ([]string, error) {
	if info, err := os.Stat(filepath.Join(root, "gas")); err == nil && info.IsDir() {
		return []string{root}, nil
	}
	matches, err := filepath.Glob(filepath.Join(root, "[0-9][0-9][0-9]-*"))
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			dirs = append(dirs, m)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// complete reports whether all five calculation outputs resolve.
func complete(dir string) bool {
	for _, rel := range []string{gasOut, gasPolarOut, unscaledOut, scaledOut, liqPolarOut} {
		if _, err := extract.FindOut(dir, rel); err != nil {
			return false
		}
	}
	return true
}

// Run executes the whole pipeline for one temperature.
func Run(cfg Config) (*Result, error) {
	dirs, err := Discover(cfg.Root)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no conformer directories found in %s", cfg.Root)
	}

	var confs []string
	for _, d := range dirs {
		if complete(d) {
			confs = append(confs, d)
		}
	}
	if len(confs) == 0 {
		return nil, fmt.Errorf("no complete conformer directories in %s", cfg.Root)
	}

	res := &Result{Temperature: cfg.Temperature}

	// Isomer entropy first, over the gas energies of every complete
	// conformer. A failed energy read drops the conformer from the mixing
	// term only; its own row is still attempted below.
	energies := make(map[string]float64, len(confs))
	for _, d := range confs {
		name := filepath.Base(d)
		e, err := gasEnergy(d)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("failed to read energy for %s: %v", name, err))
			continue
		}
		energies[name] = e
	}
	res.SIsomer = qhm.IsomerEntropy(energies, cfg.Temperature)

	for _, d := range confs {
		name := filepath.Base(d)
		q, err := loadQuantities(d, cfg.Temperature)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipping %s: %v", name, err))
			continue
		}
		res.Rows = append(res.Rows, qhm.ComputeRow(name, q, cfg.Temperature, res.SIsomer, cfg.Options))
	}

	return res, nil
}

func gasEnergy(dir string) (float64, error) {
	text, err := readOut(dir, gasOut)
	if err != nil {
		return 0, err
	}
	return extract.FinalEnergy(text)
}

// loadQuantities reads and parses the four reports one conformer row needs.
func loadQuantities(dir string, T float64) (qhm.Quantities, error) {
	var q qhm.Quantities

	tGas, err := readOut(dir, gasOut)
	if err != nil {
		return q, err
	}
	tUnscaled, err := readOut(dir, unscaledOut)
	if err != nil {
		return q, err
	}
	tScaled, err := readOut(dir, scaledOut)
	if err != nil {
		return q, err
	}
	tLiqPolar, err := readOut(dir, liqPolarOut)
	if err != nil {
		return q, err
	}
	tGasPolar, err := readOut(dir, gasPolarOut)
	if err != nil {
		return q, err
	}

	if q.Energy, err = extract.FinalEnergy(tGas); err != nil {
		return q, wrap(gasOut, err)
	}
	if q.VolUnscaled, err = extract.CavityVolume(tUnscaled); err != nil {
		return q, wrap(unscaledOut, err)
	}
	if q.VolScaled, err = extract.CavityVolume(tScaled); err != nil {
		return q, wrap(scaledOut, err)
	}
	if q.MolWeight, err = extract.MolWeight(tScaled); err != nil {
		return q, wrap(scaledOut, err)
	}
	if q.RotConstants, err = extract.RotConstants(tScaled); err != nil {
		return q, wrap(scaledOut, err)
	}
	if q.DipoleLiquid, err = extract.DipoleVec(tLiqPolar); err != nil {
		return q, wrap(liqPolarOut, err)
	}
	if q.DipoleGas, err = extract.DipoleVec(tGasPolar); err != nil {
		return q, wrap(gasPolarOut, err)
	}
	if q.Polarizability, err = extract.PolarTensor(tGasPolar); err != nil {
		return q, wrap(gasPolarOut, err)
	}
	if q.VibEntropy, err = extract.VibEntropy(tScaled, T); err != nil {
		return q, wrap(scaledOut, err)
	}

	return q, nil
}

func readOut(dir, rel string) (string, error) {
	path, err := extract.FindOut(dir, rel)
	if err != nil {
		return "", err
	}
	return extract.ReadText(path)
}

func wrap(rel string, err error) error {
	return fmt.Errorf("%s: %w", rel, err)
}

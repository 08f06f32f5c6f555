package ensemble

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/entropix/internal/qhm"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// writeConformer lays down the five synthetic ORCA reports of one conformer.
func writeConformer(t *testing.T, dir string, energy float64) {
	t.Helper()
	write(t, filepath.Join(dir, "gas/orca.out"), fmt.Sprintf(
		"FINAL SINGLE POINT ENERGY   %.9f\n", energy))
	write(t, filepath.Join(dir, "gas/polar/orca.out"),
		"Total Dipole Moment    :   0.000000   0.000000   0.000000\n"+
			"The raw cartesian tensor (atomic units):\n"+
			"  10.0   0.0   0.0\n"+
			"   0.0  10.0   0.0\n"+
			"   0.0   0.0  10.0\n")
	write(t, filepath.Join(dir, "scale_1.0/orca.out"),
		"Cavity Volume  ...  1000.000000\n")
	write(t, filepath.Join(dir, "scale_1.2/orca.out"),
		"Total Mass    ...   18.015280\n"+
			"Cavity Volume  ...  1200.000000\n"+
			"Rotational constants in cm-1:   1.000000   0.500000   0.200000\n"+
			"Vibrational entropy   ...   10.000 kcal/mol\n")
	write(t, filepath.Join(dir, "scale_1.2/polar/orca.out"),
		"Total Dipole Moment    :   0.050000   0.000000   0.000000\n")
}

func TestDiscoverNumbered(t *testing.T) {
	root := t.TempDir()
	writeConformer(t, filepath.Join(root, "002-beta"), -100.0)
	writeConformer(t, filepath.Join(root, "001-alpha"), -100.0)
	write(t, filepath.Join(root, "notes.txt"), "ignored")

	dirs, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(dirs) != 2 {
		t.Fatalf("expected 2 directories, got %d", len(dirs))
	}
	if filepath.Base(dirs[0]) != "001-alpha" || filepath.Base(dirs[1]) != "002-beta" {
		t.Errorf("expected lexicographic order, got %v", dirs)
	}
}

func TestDiscoverSingleConformerRoot(t *testing.T) {
	root := t.TempDir()
	writeConformer(t, root, -100.0)

	dirs, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(dirs) != 1 || dirs[0] != root {
		t.Errorf("expected root itself, got %v", dirs)
	}
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writeConformer(t, filepath.Join(root, "001-alpha"), -100.0)
	writeConformer(t, filepath.Join(root, "002-beta"), -100.0)
	writeConformer(t, filepath.Join(root, "003-gamma"), -99.0)
	// incomplete: no solvated polar run
	writeConformer(t, filepath.Join(root, "004-broken"), -100.0)
	if err := os.RemoveAll(filepath.Join(root, "004-broken/scale_1.2/polar")); err != nil {
		t.Fatal(err)
	}

	res, err := Run(Config{Root: root, Temperature: 298.15, Options: qhm.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(res.Rows))
	}
	if res.Rows[0].Name != "001-alpha" || res.Rows[2].Name != "003-gamma" {
		t.Errorf("unexpected row order: %v %v %v", res.Rows[0].Name, res.Rows[1].Name, res.Rows[2].Name)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", res.Warnings)
	}

	// two degenerate minima, one 1 Eh up: ~R ln 2 of mixing entropy,
	// broadcast into every row
	if res.SIsomer <= 0 {
		t.Errorf("expected positive isomer entropy, got %g", res.SIsomer)
	}
	for _, r := range res.Rows {
		if r.Isomer != res.SIsomer {
			t.Errorf("%s: isomer entropy %g, expected broadcast %g", r.Name, r.Isomer, res.SIsomer)
		}
		if r.Trans <= 0 || r.Rot <= 0 || r.Vib <= 0 {
			t.Errorf("%s: expected positive components, got %+v", r.Name, r)
		}
		sum := r.Trans + r.Rot + r.Vib + r.Isomer
		if math.Abs(r.Total-sum) > 1e-12 {
			t.Errorf("%s: total %g != sum %g", r.Name, r.Total, sum)
		}
	}
}

func TestRunSkipsUnparseableConformer(t *testing.T) {
	root := t.TempDir()
	writeConformer(t, filepath.Join(root, "001-good"), -100.0)
	writeConformer(t, filepath.Join(root, "002-bad"), -100.0)
	// files present but the solvated report lost its cavity line
	write(t, filepath.Join(root, "002-bad/scale_1.2/orca.out"),
		"Total Mass    ...   18.015280\n")

	res, err := Run(Config{Root: root, Temperature: 298.15, Options: qhm.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 1 || res.Rows[0].Name != "001-good" {
		t.Fatalf("expected only the good conformer, got %+v", res.Rows)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected one skip warning, got %v", res.Warnings)
	}
	// the bad conformer's energy still counts toward the mixing term
	if res.SIsomer <= 0 {
		t.Errorf("expected positive isomer entropy from both energies, got %g", res.SIsomer)
	}
}

func TestRunEmptyRoot(t *testing.T) {
	root := t.TempDir()
	if _, err := Run(Config{Root: root, Temperature: 298.15}); err == nil {
		t.Fatal("expected error for empty root")
	}
}

func TestRunSingleConformer(t *testing.T) {
	root := t.TempDir()
	writeConformer(t, root, -100.0)

	res, err := Run(Config{Root: root, Temperature: 298.15, Options: qhm.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	if res.SIsomer != 0 {
		t.Errorf("expected zero isomer entropy for a single conformer, got %g", res.SIsomer)
	}
}

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/entropix/internal/qhm"
)

var testRows = []qhm.Row{
	{Name: "001-alpha", Trans: 12.5, Rot: 8.25, Vib: 140.0, Isomer: 3.5, Total: 164.25},
	{Name: "002-beta", Trans: 11.0, Rot: 7.75, Vib: 138.5, Isomer: 3.5, Total: 160.75},
}

func TestWriteReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entropy_summary.csv")

	if err := WriteCSV(path, testRows); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(string(data), "\n", 2)[0]
	want := "conformer,S_trans(J/mol/K),S_rot(J/mol/K),S_vib(J/mol/K),S_isomer(J/mol/K),S_total(J/mol/K)"
	if first != want {
		t.Errorf("header mismatch:\n got %q\nwant %q", first, want)
	}
	if !strings.Contains(string(data), "001-alpha,12.500000,8.250000,140.000000,3.500000,164.250000") {
		t.Errorf("row not formatted as expected:\n%s", data)
	}

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rows) != len(testRows) {
		t.Fatalf("expected %d rows, got %d", len(testRows), len(rows))
	}
	for i := range rows {
		if rows[i] != testRows[i] {
			t.Errorf("row %d mismatch: %+v vs %+v", i, rows[i], testRows[i])
		}
	}
}

func TestReadCSVBadColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("conformer,a\nx,1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadCSV(path); err == nil {
		t.Error("expected error for wrong column count")
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintSummary(&buf, 298.15, 3.5, testRows); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"298.15", "001-alpha", "002-beta", "164.250000"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	PrintWarnings(&buf, []string{"skipping 003-gamma: cavity volume not found"})
	if !strings.Contains(buf.String(), "003-gamma") {
		t.Errorf("warning not printed: %q", buf.String())
	}
}

func TestCharts(t *testing.T) {
	if TotalsChart(nil) != "" {
		t.Error("expected empty chart for no rows")
	}
	chart := TotalsChart(testRows)
	if chart == "" {
		t.Fatal("expected non-empty chart")
	}
	if !strings.Contains(chart, "S_total") {
		t.Errorf("chart missing caption:\n%s", chart)
	}
	if c := ComponentChart(testRows, "rot"); !strings.Contains(c, "S_rot") {
		t.Errorf("component chart missing caption:\n%s", c)
	}
}

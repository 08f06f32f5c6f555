// Package report writes the per-temperature entropy summary: a CSV file, a
// console mirror of the same table, and terminal charts.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/entropix/internal/qhm"
)

var csvHeader = []string{
	"conformer",
	"S_trans(J/mol/K)",
	"S_rot(J/mol/K)",
	"S_vib(J/mol/K)",
	"S_isomer(J/mol/K)",
	"S_total(J/mol/K)",
}

// WriteCSV writes the summary table to path.
func WriteCSV(path string, rows []qhm.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Name,
			fmtF(r.Trans),
			fmtF(r.Rot),
			fmtF(r.Vib),
			fmtF(r.Isomer),
			fmtF(r.Total),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// ReadCSV reads a summary table back; used by the plot and export commands.
func ReadCSV(path string) ([]qhm.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) < 1 {
		return nil, fmt.Errorf("%s: empty summary", path)
	}

	var rows []qhm.Row
	for _, rec := range recs[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("%s: expected %d columns, got %d", path, len(csvHeader), len(rec))
		}
		vals := make([]float64, 5)
		for i := range vals {
			v, err := strconv.ParseFloat(rec[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			vals[i] = v
		}
		rows = append(rows, qhm.Row{
			Name:   rec[0],
			Trans:  vals[0],
			Rot:    vals[1],
			Vib:    vals[2],
			Isomer: vals[3],
			Total:  vals[4],
		})
	}
	return rows, nil
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

package report

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/entropix/internal/qhm"
)

// TotalsChart plots total entropy across the conformer sequence.
func TotalsChart(rows []qhm.Row) string {
	if len(rows) == 0 {
		return ""
	}
	data := make([]float64, len(rows))
	for i, r := range rows {
		data[i] = r.Total
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("S_total (J/mol/K) by conformer index"),
	)
}

// ComponentChart plots one entropy component across the conformer sequence.
func ComponentChart(rows []qhm.Row, component string) string {
	if len(rows) == 0 {
		return ""
	}
	data := make([]float64, len(rows))
	for i, r := range rows {
		switch component {
		case "trans":
			data[i] = r.Trans
		case "rot":
			data[i] = r.Rot
		case "vib":
			data[i] = r.Vib
		default:
			data[i] = r.Total
		}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("S_"+component+" (J/mol/K) by conformer index"),
	)
}

package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/entropix/internal/qhm"
)

var componentColors = [4]string{
	"#00ff00", // trans
	"#00bfff", // rot
	"#ff8c00", // vib
	"#ff00ff", // isomer
}

// RowsToSVG renders the per-conformer entropy breakdown as a stacked bar
// chart, one bar per conformer, segments for the four components.
func RowsToSVG(rows []qhm.Row, width, height int) string {
	if len(rows) == 0 {
		return ""
	}

	maxTotal := rows[0].Total
	for _, r := range rows {
		if r.Total > maxTotal {
			maxTotal = r.Total
		}
	}
	if maxTotal <= 0 {
		maxTotal = 1
	}

	margin := 30.0
	plotH := float64(height) - 2*margin
	barSpace := (float64(width) - 2*margin) / float64(len(rows))
	barW := barSpace * 0.7

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, r := range rows {
		x := margin + float64(i)*barSpace + (barSpace-barW)/2
		y := float64(height) - margin

		segments := [4]float64{r.Trans, r.Rot, r.Vib, r.Isomer}
		for j, s := range segments {
			if s <= 0 {
				continue
			}
			h := s / maxTotal * plotH
			y -= h
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barW, h, componentColors[j]))
		}

		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="9" fill="#aaaaaa" text-anchor="middle">%s</text>
`, x+barW/2, float64(height)-margin+12, r.Name))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="10" fill="#aaaaaa">S max = %.2f J/mol/K</text>
`, margin, margin-10, maxTotal))
	sb.WriteString("</svg>")
	return sb.String()
}

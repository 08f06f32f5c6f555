package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/entropix/internal/qhm"
)

var (
	title = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	warn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// PrintSummary mirrors the CSV table to the console.
func PrintSummary(w io.Writer, temperature, sIsomer float64, rows []qhm.Row) error {
	fmt.Fprintln(w, title.Render(fmt.Sprintf("T = %.2f K, S_isomer = %.6f J/mol/K", temperature, sIsomer)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CONFORMER\tS_TRANS\tS_ROT\tS_VIB\tS_ISOMER\tS_TOTAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\n",
			r.Name, r.Trans, r.Rot, r.Vib, r.Isomer, r.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w, dim.Render(fmt.Sprintf("%d conformers, entropies in J/mol/K", len(rows))))
	return nil
}

// PrintWarnings writes skip/read warnings, one per line.
func PrintWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintln(w, warn.Render("warning: "+msg))
	}
}

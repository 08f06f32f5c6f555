package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/san-kum/entropix/internal/config"
	"github.com/san-kum/entropix/internal/ensemble"
	"github.com/san-kum/entropix/internal/export"
	"github.com/san-kum/entropix/internal/qhm"
	"github.com/san-kum/entropix/internal/report"
	"github.com/san-kum/entropix/internal/store"
)

var (
	temperature float64
	nuFloorRot  float64
	noAvgCurv   bool
	output      string
	jsonOut     string
	configFile  string
	preset      string
	// plot / export-svg
	component string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "entropix",
		Short: "quasi-harmonic conformer entropy from ORCA outputs",
	}

	runCmd := &cobra.Command{
		Use:   "run [root]",
		Short: "scan conformer directories and compute the entropy summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEnsemble,
	}
	runCmd.Flags().Float64Var(&temperature, "temp", config.DefaultTemperature, "temperature (K)")
	runCmd.Flags().Float64Var(&nuFloorRot, "nu-floor-rot", 0.0, "minimum librational wavenumber (cm^-1), 0 disables")
	runCmd.Flags().BoolVar(&noAvgCurv, "no-avg-curv", false, "disable average-curvature softening; use plain HO k=muE")
	runCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "summary CSV file name (relative to root)")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "also export the run as JSON to this path")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	plotCmd := &cobra.Command{
		Use:   "plot [summary.csv]",
		Short: "plot an entropy component across conformers",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSummary,
	}
	plotCmd.Flags().StringVar(&component, "component", "total", "component to plot: total, trans, rot, vib")

	svgCmd := &cobra.Command{
		Use:   "export-svg [summary.csv] [out.svg]",
		Short: "render the entropy breakdown as an SVG bar chart",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, svgCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// Config file overrides preset; explicit CLI flags override both.
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	if !cmd.Flags().Changed("temp") {
		temperature = cfg.Temperature
	}
	if !cmd.Flags().Changed("nu-floor-rot") {
		nuFloorRot = cfg.NuFloorRot
	}
	if !cmd.Flags().Changed("no-avg-curv") {
		noAvgCurv = !cfg.AvgCurvature
	}
	if !cmd.Flags().Changed("out") {
		output = cfg.Output
	}

	root := cfg.Root
	if len(args) > 0 {
		root = args[0]
	}

	if temperature <= 0 {
		return fmt.Errorf("temperature must be positive, got %g", temperature)
	}
	if nuFloorRot < 0 {
		return fmt.Errorf("nu-floor-rot must be non-negative, got %g", nuFloorRot)
	}

	opts := qhm.Options{NuFloor: nuFloorRot, AvgCurvature: !noAvgCurv}

	res, err := ensemble.Run(ensemble.Config{
		Root:        root,
		Temperature: temperature,
		Options:     opts,
	})
	if err != nil {
		return err
	}

	report.PrintWarnings(os.Stderr, res.Warnings)

	outPath := output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(root, outPath)
	}
	if err := report.WriteCSV(outPath, res.Rows); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	fmt.Printf("wrote %s\n", outPath)

	if err := report.PrintSummary(os.Stdout, res.Temperature, res.SIsomer, res.Rows); err != nil {
		return err
	}

	if jsonOut != "" {
		if err := store.ExportJSON(jsonOut, res, opts); err != nil {
			return fmt.Errorf("failed to export json: %w", err)
		}
		fmt.Printf("wrote %s\n", jsonOut)
	}

	return nil
}

func plotSummary(cmd *cobra.Command, args []string) error {
	rows, err := report.ReadCSV(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows to plot")
	}
	fmt.Println(report.ComponentChart(rows, component))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	rows, err := report.ReadCSV(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows to render")
	}
	svg := export.RowsToSVG(rows, svgWidth, svgHeight)
	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

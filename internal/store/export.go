package store

import (
	"encoding/json"
	"os"

	"github.com/san-kum/entropix/internal/ensemble"
	"github.com/san-kum/entropix/internal/qhm"
)

type ExportData struct {
	Temperature  float64   `json:"temperature"`
	SIsomer      float64   `json:"s_isomer"`
	NuFloorRot   float64   `json:"nu_floor_rot"`
	AvgCurvature bool      `json:"avg_curvature"`
	Conformers   int       `json:"conformers"`
	Rows         []qhm.Row `json:"rows"`
}

func build(res *ensemble.Result, opts qhm.Options) ExportData {
	return ExportData{
		Temperature:  res.Temperature,
		SIsomer:      res.SIsomer,
		NuFloorRot:   opts.NuFloor,
		AvgCurvature: opts.AvgCurvature,
		Conformers:   len(res.Rows),
		Rows:         res.Rows,
	}
}

func ExportJSON(path string, res *ensemble.Result, opts qhm.Options) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(build(res, opts))
}

func ExportJSONStdout(res *ensemble.Result, opts qhm.Options) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(build(res, opts))
}

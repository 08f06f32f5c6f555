package config

import "sort"

// Presets are named model-variant configurations.
var Presets = map[string]*Config{
	// quasi-harmonic model with average-curvature softening, the default
	"standard": {
		Root: ".", Temperature: 298.15,
		AvgCurvature: true, Output: DefaultOutput,
	},
	// plain harmonic libration, k = muE at all temperatures
	"plain-ho": {
		Root: ".", Temperature: 298.15,
		AvgCurvature: false, Output: DefaultOutput,
	},
	// clamp librational modes at 5 cm^-1 for nearly-free rotors
	"floored": {
		Root: ".", Temperature: 298.15,
		NuFloorRot: 5.0, AvgCurvature: true, Output: DefaultOutput,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

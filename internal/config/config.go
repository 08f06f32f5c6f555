package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/entropix/internal/qhm"
)

const (
	DefaultTemperature = 298.15
	DefaultOutput      = "entropy_summary.csv"
)

type Config struct {
	Root         string  `yaml:"root"`
	Temperature  float64 `yaml:"temperature"`
	NuFloorRot   float64 `yaml:"nu_floor_rot"`
	AvgCurvature bool    `yaml:"avg_curvature"`
	Output       string  `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Root:         ".",
		Temperature:  DefaultTemperature,
		AvgCurvature: true,
		Output:       DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options maps the model-tuning fields onto qhm.Options.
func (c *Config) Options() qhm.Options {
	return qhm.Options{
		NuFloor:      c.NuFloorRot,
		AvgCurvature: c.AvgCurvature,
	}
}

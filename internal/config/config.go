package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cansim/internal/physics"
	"github.com/san-kum/cansim/internal/solver"
)

const (
	DefaultCdA      = physics.DefaultCdA
	DefaultDt       = 1e-6
	DefaultMaxTime  = 5.0
	DefaultTarget   = physics.TargetDisplacement
	DefaultBaseMass = physics.BaseMass
	DefaultPoints   = 1000
)

type Config struct {
	CdA      float64 `yaml:"cda"`
	Dt       float64 `yaml:"dt"`
	MaxTime  float64 `yaml:"max_time"`
	Target   float64 `yaml:"target"`
	BaseMass float64 `yaml:"base_mass"`
	Points   int     `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		CdA:      DefaultCdA,
		Dt:       DefaultDt,
		MaxTime:  DefaultMaxTime,
		Target:   DefaultTarget,
		BaseMass: DefaultBaseMass,
		Points:   DefaultPoints,
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

// SolverConfig converts the file representation into a run config.
func (c *Config) SolverConfig() solver.Config {
	return solver.Config{
		CdA:      c.CdA,
		MaxTime:  c.MaxTime,
		Dt:       c.Dt,
		Target:   c.Target,
		BaseMass: c.BaseMass,
	}
}

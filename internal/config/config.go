package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hg7643/reentrycool/internal/thermo"
)

// Config mirrors the estimate constants in YAML form. Field names follow
// the conventional symbols for the reentry heating model.
type Config struct {
	Vehicle            string  `yaml:"vehicle"`
	VehicleMassKg      float64 `yaml:"m_vehicle"`
	OrbitalVelocity    float64 `yaml:"v_orbital"`
	MaxHeatingFraction float64 `yaml:"fraction_max_heating"`
	HeatFraction       float64 `yaml:"heat_fraction"`
	TempFraction       float64 `yaml:"temp_fraction"`
	LatentHeat         float64 `yaml:"lv"`
	PayloadTonnes      float64 `yaml:"payload_per_flight"`
	FlightCostUSD      int64   `yaml:"propellant_cost_per_flight"`
}

func DefaultConfig() *Config {
	return FromParameters("starship", thermo.Defaults())
}

func FromParameters(vehicle string, p thermo.Parameters) *Config {
	return &Config{
		Vehicle:            vehicle,
		VehicleMassKg:      p.VehicleMassKg,
		OrbitalVelocity:    p.OrbitalVelocity,
		MaxHeatingFraction: p.MaxHeatingFraction,
		HeatFraction:       p.HeatFraction,
		TempFraction:       p.TempFraction,
		LatentHeat:         p.LatentHeat,
		PayloadTonnes:      p.PayloadTonnes,
		FlightCostUSD:      p.FlightCostUSD,
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

// Parameters converts the config back into estimate constants.
func (c *Config) Parameters() thermo.Parameters {
	return thermo.Parameters{
		VehicleMassKg:      c.VehicleMassKg,
		OrbitalVelocity:    c.OrbitalVelocity,
		MaxHeatingFraction: c.MaxHeatingFraction,
		HeatFraction:       c.HeatFraction,
		TempFraction:       c.TempFraction,
		LatentHeat:         c.LatentHeat,
		PayloadTonnes:      c.PayloadTonnes,
		FlightCostUSD:      c.FlightCostUSD,
	}
}

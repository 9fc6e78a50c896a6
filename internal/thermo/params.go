package thermo

import "fmt"

// Default assumptions for a Starship-class upper stage returning from LEO.
// All of these are editable, either through the config file or per-flag.
const (
	DefaultVehicleMassKg      = 120000.0  // dry mass ~120 t
	DefaultOrbitalVelocity    = 7800.0    // m/s at entry interface
	DefaultMaxHeatingFraction = 0.3       // share of KE shed during peak heating
	DefaultHeatFraction       = 0.01      // 0.01-0.03 typical for blunt bodies
	DefaultTempFraction       = 0.8       // tile temperature / max tolerable
	DefaultLatentHeat         = 2260000.0 // J/kg, water at boiling point
	DefaultPayloadTonnes      = 150.0     // tanker capacity to LEO
	DefaultFlightCostUSD      = 500000    // propellant cost per tanker flight
)

// Parameters holds the input constants of the cooling estimate.
type Parameters struct {
	VehicleMassKg      float64 // kg, mass entering the atmosphere
	OrbitalVelocity    float64 // m/s
	MaxHeatingFraction float64 // ratio in [0,1]
	HeatFraction       float64 // ratio in [0,1]
	TempFraction       float64 // ratio in [0,1]
	LatentHeat         float64 // J/kg
	PayloadTonnes      float64 // tonnes per tanker flight
	FlightCostUSD      int64   // USD per tanker flight
}

func Defaults() Parameters {
	return Parameters{
		VehicleMassKg:      DefaultVehicleMassKg,
		OrbitalVelocity:    DefaultOrbitalVelocity,
		MaxHeatingFraction: DefaultMaxHeatingFraction,
		HeatFraction:       DefaultHeatFraction,
		TempFraction:       DefaultTempFraction,
		LatentHeat:         DefaultLatentHeat,
		PayloadTonnes:      DefaultPayloadTonnes,
		FlightCostUSD:      DefaultFlightCostUSD,
	}
}

// ParamNames lists the adjustable parameters in display order.
func ParamNames() []string {
	return []string{
		"m_vehicle",
		"v_orbital",
		"fraction_max_heating",
		"heat_fraction",
		"temp_fraction",
		"lv",
		"payload_per_flight",
		"propellant_cost_per_flight",
	}
}

func (p Parameters) GetParams() map[string]float64 {
	return map[string]float64{
		"m_vehicle":                  p.VehicleMassKg,
		"v_orbital":                  p.OrbitalVelocity,
		"fraction_max_heating":       p.MaxHeatingFraction,
		"heat_fraction":              p.HeatFraction,
		"temp_fraction":              p.TempFraction,
		"lv":                         p.LatentHeat,
		"payload_per_flight":         p.PayloadTonnes,
		"propellant_cost_per_flight": float64(p.FlightCostUSD),
	}
}

func (p *Parameters) SetParam(name string, value float64) error {
	switch name {
	case "m_vehicle":
		p.VehicleMassKg = value
	case "v_orbital":
		p.OrbitalVelocity = value
	case "fraction_max_heating":
		p.MaxHeatingFraction = value
	case "heat_fraction":
		p.HeatFraction = value
	case "temp_fraction":
		p.TempFraction = value
	case "lv":
		p.LatentHeat = value
	case "payload_per_flight":
		p.PayloadTonnes = value
	case "propellant_cost_per_flight":
		p.FlightCostUSD = int64(value)
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Validate rejects constants the estimate is meaningless for.
func (p Parameters) Validate() error {
	switch {
	case p.VehicleMassKg <= 0:
		return fmt.Errorf("%w: vehicle mass %g kg", ErrParameterBounds, p.VehicleMassKg)
	case p.OrbitalVelocity <= 0:
		return fmt.Errorf("%w: orbital velocity %g m/s", ErrParameterBounds, p.OrbitalVelocity)
	case p.MaxHeatingFraction < 0 || p.MaxHeatingFraction > 1:
		return fmt.Errorf("%w: fraction_max_heating %g", ErrParameterBounds, p.MaxHeatingFraction)
	case p.HeatFraction < 0 || p.HeatFraction > 1:
		return fmt.Errorf("%w: heat_fraction %g", ErrParameterBounds, p.HeatFraction)
	case p.TempFraction < 0 || p.TempFraction > 1:
		return fmt.Errorf("%w: temp_fraction %g", ErrParameterBounds, p.TempFraction)
	case p.LatentHeat <= 0:
		return fmt.Errorf("%w: latent heat %g J/kg", ErrParameterBounds, p.LatentHeat)
	case p.PayloadTonnes <= 0:
		return fmt.Errorf("%w: payload per flight %g t", ErrParameterBounds, p.PayloadTonnes)
	case p.FlightCostUSD < 0:
		return fmt.Errorf("%w: flight cost %d USD", ErrParameterBounds, p.FlightCostUSD)
	}
	return nil
}

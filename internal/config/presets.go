package config

// Presets are named vehicle scenarios. "starship" matches the published
// baseline assumptions; the others bend one or two knobs in plausible
// directions (hotter tiles, pessimistic heat flux, different tankers).
var Presets = map[string]*Config{
	"starship": {
		Vehicle: "starship",
		VehicleMassKg: 120000, OrbitalVelocity: 7800,
		MaxHeatingFraction: 0.3, HeatFraction: 0.01, TempFraction: 0.8,
		LatentHeat: 2260000, PayloadTonnes: 150, FlightCostUSD: 500000,
	},
	"starship-cool-tiles": {
		Vehicle: "starship",
		VehicleMassKg: 120000, OrbitalVelocity: 7800,
		MaxHeatingFraction: 0.3, HeatFraction: 0.01, TempFraction: 0.6,
		LatentHeat: 2260000, PayloadTonnes: 150, FlightCostUSD: 500000,
	},
	"starship-pessimistic": {
		Vehicle: "starship",
		VehicleMassKg: 120000, OrbitalVelocity: 7800,
		MaxHeatingFraction: 0.4, HeatFraction: 0.03, TempFraction: 0.8,
		LatentHeat: 2260000, PayloadTonnes: 150, FlightCostUSD: 500000,
	},
	"shuttle": {
		Vehicle: "shuttle",
		VehicleMassKg: 78000, OrbitalVelocity: 7800,
		MaxHeatingFraction: 0.3, HeatFraction: 0.015, TempFraction: 0.8,
		LatentHeat: 2260000, PayloadTonnes: 150, FlightCostUSD: 500000,
	},
	"expensive-tanker": {
		Vehicle: "starship",
		VehicleMassKg: 120000, OrbitalVelocity: 7800,
		MaxHeatingFraction: 0.3, HeatFraction: 0.01, TempFraction: 0.8,
		LatentHeat: 2260000, PayloadTonnes: 100, FlightCostUSD: 2000000,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

package thermo

import "math"

// Breakdown contains every intermediate and final value of the estimate:
// the kinetic-energy chain in joules, the radiative split, the required
// water mass, and the tanker logistics derived from it.
// ReentriesPerLaunch stays zero when no water is required.
type Breakdown struct {
	KineticEnergy      float64 `json:"kinetic_energy_j"`
	PeakKineticEnergy  float64 `json:"peak_kinetic_energy_j"`
	PeakHeatLoad       float64 `json:"peak_heat_load_j"`
	TileFraction       float64 `json:"tile_fraction"`
	AbsorbedFraction   float64 `json:"absorbed_fraction"`
	SteamEnergy        float64 `json:"steam_energy_j"`
	WaterMassKg        float64 `json:"water_mass_kg"`
	WaterMassTonnes    float64 `json:"water_mass_tonnes"`
	Flights            int     `json:"flights"`
	TotalCostUSD       int64   `json:"total_cost_usd"`
	ReentriesPerLaunch int     `json:"reentries_per_launch"`
}

// Compute evaluates the estimate chain for the given constants.
//
// The tile fraction follows the radiative equilibrium assumption: the share
// of heat re-radiated scales with the fourth power of the tile temperature
// fraction, and the water only has to soak up the remainder.
//
// When the absorbed heat is zero (temp_fraction = 1) the returned breakdown
// is complete except for ReentriesPerLaunch, and the error is
// ErrNoWaterRequired rather than a division by zero.
func Compute(p Parameters) (Breakdown, error) {
	if err := p.Validate(); err != nil {
		return Breakdown{}, err
	}

	var b Breakdown
	b.KineticEnergy = 0.5 * p.VehicleMassKg * p.OrbitalVelocity * p.OrbitalVelocity
	b.PeakKineticEnergy = p.MaxHeatingFraction * b.KineticEnergy
	b.PeakHeatLoad = p.HeatFraction * b.PeakKineticEnergy
	b.TileFraction = math.Pow(p.TempFraction, 4)
	b.AbsorbedFraction = 1 - b.TileFraction
	b.SteamEnergy = b.AbsorbedFraction * b.PeakHeatLoad
	b.WaterMassKg = b.SteamEnergy / p.LatentHeat
	b.WaterMassTonnes = b.WaterMassKg / 1000
	b.Flights = int(math.Ceil(b.WaterMassTonnes / p.PayloadTonnes))
	b.TotalCostUSD = int64(b.Flights) * p.FlightCostUSD

	if b.WaterMassTonnes == 0 {
		return b, ErrNoWaterRequired
	}
	b.ReentriesPerLaunch = int(math.Floor(p.PayloadTonnes / b.WaterMassTonnes))
	return b, nil
}

// Package thermo estimates evaporative-cooling water budgets for reentry.
//
// The model is a closed-form energy chain: orbital kinetic energy, the slice
// of it shed during peak heating, the slice of that arriving as heat flux,
// and the remainder after the tiles re-radiate their share. Dividing by the
// latent heat of vaporization gives the water mass; tanker payload and
// per-flight propellant cost turn that into delivery logistics.
//
//	b, err := thermo.Compute(thermo.Defaults())
//
// Compute is a total function over valid constants except for the single
// degenerate case of zero required water, which is reported as
// [ErrNoWaterRequired] instead of dividing by zero.
package thermo

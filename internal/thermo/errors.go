package thermo

import "errors"

// Domain errors for the cooling estimate.
var (
	// ErrParameterBounds indicates an input constant outside its valid range.
	ErrParameterBounds = errors.New("thermo: parameter out of valid bounds")

	// ErrNoWaterRequired indicates the absorbed heat load is zero, so no
	// coolant is needed and reentries-per-launch is undefined.
	ErrNoWaterRequired = errors.New("thermo: no water required (absorbed heat is zero)")
)

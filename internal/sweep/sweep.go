// Package sweep evaluates the estimate across a range of one constant.
package sweep

import (
	"errors"
	"fmt"

	"github.com/hg7643/reentrycool/internal/thermo"
)

type Range struct {
	Param string
	From  float64
	To    float64
	Steps int
}

// Point is one evaluated sample of the sweep. Err carries the degenerate
// no-water case through instead of aborting the whole sweep.
type Point struct {
	Value     float64
	Breakdown thermo.Breakdown
	Err       error
}

// Outputs maps selectable output names to breakdown accessors.
var Outputs = map[string]func(thermo.Breakdown) float64{
	"water_tonnes": func(b thermo.Breakdown) float64 { return b.WaterMassTonnes },
	"water_kg":     func(b thermo.Breakdown) float64 { return b.WaterMassKg },
	"steam_energy": func(b thermo.Breakdown) float64 { return b.SteamEnergy },
	"heat_load":    func(b thermo.Breakdown) float64 { return b.PeakHeatLoad },
	"flights":      func(b thermo.Breakdown) float64 { return float64(b.Flights) },
	"cost":         func(b thermo.Breakdown) float64 { return float64(b.TotalCostUSD) },
	"reentries":    func(b thermo.Breakdown) float64 { return float64(b.ReentriesPerLaunch) },
}

func OutputNames() []string {
	names := make([]string, 0, len(Outputs))
	for name := range Outputs {
		names = append(names, name)
	}
	return names
}

// Run evaluates the estimate at Steps evenly spaced values of r.Param,
// holding every other constant of base fixed.
func Run(base thermo.Parameters, r Range) ([]Point, error) {
	if r.Steps < 2 {
		return nil, fmt.Errorf("sweep: need at least 2 steps, got %d", r.Steps)
	}
	if _, ok := base.GetParams()[r.Param]; !ok {
		return nil, fmt.Errorf("sweep: unknown param: %s", r.Param)
	}

	points := make([]Point, 0, r.Steps)
	step := (r.To - r.From) / float64(r.Steps-1)

	for i := 0; i < r.Steps; i++ {
		v := r.From + float64(i)*step
		if i == r.Steps-1 {
			// pin the endpoint so accumulated rounding cannot push it
			// past a bounds check
			v = r.To
		}
		p := base
		if err := p.SetParam(r.Param, v); err != nil {
			return nil, err
		}

		b, err := thermo.Compute(p)
		if err != nil && !errors.Is(err, thermo.ErrNoWaterRequired) {
			return nil, fmt.Errorf("sweep: %s=%g: %w", r.Param, v, err)
		}
		points = append(points, Point{Value: v, Breakdown: b, Err: err})
	}

	return points, nil
}

// Series extracts one output column from the sweep for plotting.
func Series(points []Point, output func(thermo.Breakdown) float64) []float64 {
	data := make([]float64, len(points))
	for i, pt := range points {
		data[i] = output(pt.Breakdown)
	}
	return data
}

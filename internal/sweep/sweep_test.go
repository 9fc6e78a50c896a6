package sweep

import (
	"errors"
	"testing"

	"github.com/hg7643/reentrycool/internal/thermo"
)

func TestRunSpacing(t *testing.T) {
	points, err := Run(thermo.Defaults(), Range{
		Param: "fraction_max_heating", From: 0.1, To: 0.5, Steps: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	if points[0].Value != 0.1 || points[4].Value != 0.5 {
		t.Errorf("endpoints wrong: %g .. %g", points[0].Value, points[4].Value)
	}
}

func TestRunMonotonic(t *testing.T) {
	points, err := Run(thermo.Defaults(), Range{
		Param: "fraction_max_heating", From: 0.05, To: 0.95, Steps: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Breakdown.WaterMassTonnes <= points[i-1].Breakdown.WaterMassTonnes {
			t.Errorf("water mass not strictly increasing at point %d", i)
		}
		if points[i].Breakdown.SteamEnergy <= points[i-1].Breakdown.SteamEnergy {
			t.Errorf("steam energy not strictly increasing at point %d", i)
		}
	}
}

func TestRunDegeneratePointSurvives(t *testing.T) {
	// Sweeping temp_fraction up to 1.0 hits the no-water case at the top end.
	points, err := Run(thermo.Defaults(), Range{
		Param: "temp_fraction", From: 0.5, To: 1.0, Steps: 6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := points[len(points)-1]
	if !errors.Is(last.Err, thermo.ErrNoWaterRequired) {
		t.Errorf("expected ErrNoWaterRequired at temp_fraction 1.0, got %v", last.Err)
	}
	for _, pt := range points[:len(points)-1] {
		if pt.Err != nil {
			t.Errorf("unexpected error at %g: %v", pt.Value, pt.Err)
		}
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	if _, err := Run(thermo.Defaults(), Range{Param: "fraction_max_heating", From: 0, To: 1, Steps: 1}); err == nil {
		t.Error("expected error for too few steps")
	}
	if _, err := Run(thermo.Defaults(), Range{Param: "warp_factor", From: 0, To: 1, Steps: 3}); err == nil {
		t.Error("expected error for unknown param")
	}
	if _, err := Run(thermo.Defaults(), Range{Param: "m_vehicle", From: -1, To: 1, Steps: 3}); err == nil {
		t.Error("expected error for out-of-bounds sweep values")
	}
}

func TestSeries(t *testing.T) {
	points, err := Run(thermo.Defaults(), Range{
		Param: "heat_fraction", From: 0.01, To: 0.03, Steps: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := Series(points, Outputs["water_tonnes"])
	if len(data) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(data))
	}
	if data[0] >= data[2] {
		t.Errorf("expected increasing series, got %v", data)
	}
}

package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/hg7643/reentrycool/internal/thermo"
)

func TestRenderDefaults(t *testing.T) {
	p := thermo.Defaults()
	b, err := thermo.Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Total kinetic energy: 3.65e+12 J",
		"KE during max heating (30.0%): 1.10e+12 J",
		"Heat during max heating (heat_fraction 0.01): 1.10e+10 J",
		"Fraction absorbed by water: 0.59",
		"Energy to steam: 6.47e+09 J",
		"Required water mass: 3 metric tonnes",
		"Number of flights needed: 1",
		"Total cost to deliver water to orbit: $500,000 USD",
		"Reentries supplied per launch (including freighter): 52",
		"",
	}, "\n")

	got := Render(p, b)
	if got != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	p := thermo.Defaults()
	b, err := thermo.Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Render(p, b) != Render(p, b) {
		t.Error("identical inputs rendered differently")
	}
}

func TestRenderNoWater(t *testing.T) {
	p := thermo.Defaults()
	p.TempFraction = 1.0

	b, err := thermo.Compute(p)
	if !errors.Is(err, thermo.ErrNoWaterRequired) {
		t.Fatalf("expected ErrNoWaterRequired, got %v", err)
	}

	got := Render(p, b)
	if !strings.Contains(got, "Fraction absorbed by water: 0.00") {
		t.Errorf("missing zero absorbed fraction:\n%s", got)
	}
	if !strings.Contains(got, "undefined (no water required)") {
		t.Errorf("undefined reentries not reported:\n%s", got)
	}
	if lines := strings.Count(got, "\n"); lines != 9 {
		t.Errorf("expected 9 lines, got %d", lines)
	}
}

func TestTinyHeatFractionLabel(t *testing.T) {
	p := thermo.Defaults()
	p.HeatFraction = 1e-05

	b, err := thermo.Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Render(p, b)
	if !strings.Contains(got, "heat_fraction 1e-05") {
		t.Errorf("expected exponent-form label for tiny heat fraction:\n%s", got)
	}
}

func TestCostGrouping(t *testing.T) {
	p := thermo.Defaults()
	p.HeatFraction = 0.03
	p.PayloadTonnes = 2
	p.FlightCostUSD = 500000

	b, err := thermo.Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Flights < 3 {
		t.Fatalf("expected several flights, got %d", b.Flights)
	}

	got := Render(p, b)
	if !strings.Contains(got, "$2,500,000 USD") {
		t.Errorf("expected grouped cost in report:\n%s", got)
	}
}

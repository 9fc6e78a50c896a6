package storage

import (
	"strings"
	"testing"

	"github.com/hg7643/reentrycool/internal/sweep"
	"github.com/hg7643/reentrycool/internal/thermo"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p := thermo.Defaults()
	b, err := thermo.Compute(p)
	if err != nil {
		t.Fatal(err)
	}

	id, err := st.Save("starship", p, b)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(id, "starship_") {
		t.Errorf("unexpected run id: %s", id)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Vehicle != "starship" {
		t.Errorf("expected vehicle starship, got %s", meta.Vehicle)
	}
	if meta.Breakdown != b {
		t.Errorf("breakdown mismatch: %+v vs %+v", meta.Breakdown, b)
	}
	if meta.Params["m_vehicle"] != p.VehicleMassKg {
		t.Errorf("params not persisted: %+v", meta.Params)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	p := thermo.Defaults()
	b, _ := thermo.Compute(p)
	if _, err := st.Save("starship", p, b); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestSaveSweepUnknownOutput(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p := thermo.Defaults()
	r := sweep.Range{Param: "heat_fraction", From: 0.01, To: 0.03, Steps: 3}
	points, err := sweep.Run(p, r)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := st.SaveSweep("starship", p, r, "warp_factor", points); err == nil {
		t.Error("expected error for unknown output name")
	}

	// Nothing should have been written for the rejected run.
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no persisted runs, got %d", len(runs))
	}
}

func TestSweepRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p := thermo.Defaults()
	r := sweep.Range{Param: "heat_fraction", From: 0.01, To: 0.03, Steps: 3}
	points, err := sweep.Run(p, r)
	if err != nil {
		t.Fatal(err)
	}

	id, err := st.SaveSweep("starship", p, r, "water_tonnes", points)
	if err != nil {
		t.Fatalf("save sweep failed: %v", err)
	}

	values, outputs, err := st.LoadSweep(id)
	if err != nil {
		t.Fatalf("load sweep failed: %v", err)
	}
	if len(values) != 3 || len(outputs) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d", len(values), len(outputs))
	}
	if values[0] != 0.01 || values[2] != 0.03 {
		t.Errorf("sweep values wrong: %v", values)
	}
	if outputs[0] >= outputs[2] {
		t.Errorf("expected increasing water mass, got %v", outputs)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.SweepParam != "heat_fraction" || meta.SweepOut != "water_tonnes" {
		t.Errorf("sweep metadata wrong: %+v", meta)
	}
}

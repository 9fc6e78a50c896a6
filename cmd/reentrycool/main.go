package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/hg7643/reentrycool/internal/config"
	"github.com/hg7643/reentrycool/internal/export"
	"github.com/hg7643/reentrycool/internal/report"
	"github.com/hg7643/reentrycool/internal/storage"
	"github.com/hg7643/reentrycool/internal/sweep"
	"github.com/hg7643/reentrycool/internal/thermo"
	"github.com/hg7643/reentrycool/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	saveRun    bool
	// Constant overrides
	mVehicle   float64
	vOrbital   float64
	fracMax    float64
	heatFrac   float64
	tempFrac   float64
	latentHeat float64
	payload    float64
	flightCost int64
	// Sweep range
	sweepFrom   float64
	sweepTo     float64
	sweepSteps  int
	sweepOutput string
	// SVG output
	svgOut    string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reentrycool",
		Short: "reentry water cooling and delivery cost estimator",
		RunE:  runEstimate,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".reentrycool", "data directory")

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "compute the water budget and print the report",
		RunE:  runEstimate,
	}

	for _, cmd := range []*cobra.Command{rootCmd, estimateCmd} {
		addParamFlags(cmd)
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
		cmd.Flags().BoolVar(&saveRun, "save", false, "persist the run to the data directory")
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one constant and plot the response",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	sweepCmd.Flags().BoolVar(&saveRun, "save", false, "persist the sweep to the data directory")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.1, "sweep start value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.9, "sweep end value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 40, "number of samples")
	sweepCmd.Flags().StringVar(&sweepOutput, "output", "water_tonnes", "output to plot")

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [preset] ...",
		Short: "compare scenarios side by side",
		Args:  cobra.MinimumNArgs(2),
		RunE:  comparePresets,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := storage.New(dataDir).Load(args[0])
			if err != nil {
				return err
			}
			return storage.ExportJSONStdout(meta)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export sweep samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a sweep curve to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "interactively tune the constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := resolveParams(cmd)
			if err != nil {
				return err
			}
			return tui.Run(p)
		},
	}
	addParamFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	tuneCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	rootCmd.AddCommand(estimateCmd, sweepCmd, compareCmd, presetsCmd, listCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, tuneCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mVehicle, "m-vehicle", thermo.DefaultVehicleMassKg, "vehicle mass (kg)")
	cmd.Flags().Float64Var(&vOrbital, "v-orbital", thermo.DefaultOrbitalVelocity, "orbital velocity (m/s)")
	cmd.Flags().Float64Var(&fracMax, "fraction-max-heating", thermo.DefaultMaxHeatingFraction, "KE fraction shed during max heating")
	cmd.Flags().Float64Var(&heatFrac, "heat-fraction", thermo.DefaultHeatFraction, "KE fraction arriving as heat flux")
	cmd.Flags().Float64Var(&tempFrac, "temp-fraction", thermo.DefaultTempFraction, "tile temperature fraction")
	cmd.Flags().Float64Var(&latentHeat, "lv", thermo.DefaultLatentHeat, "latent heat of vaporization (J/kg)")
	cmd.Flags().Float64Var(&payload, "payload", thermo.DefaultPayloadTonnes, "payload per flight (t)")
	cmd.Flags().Int64Var(&flightCost, "flight-cost", thermo.DefaultFlightCostUSD, "propellant cost per flight (USD)")
}

// resolveParams merges preset, config file, and flags in that precedence
// order (flags win) and returns the constants plus a scenario label.
func resolveParams(cmd *cobra.Command) (thermo.Parameters, string, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return thermo.Parameters{}, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return thermo.Parameters{}, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	p := cfg.Parameters()
	if cmd.Flags().Changed("m-vehicle") {
		p.VehicleMassKg = mVehicle
	}
	if cmd.Flags().Changed("v-orbital") {
		p.OrbitalVelocity = vOrbital
	}
	if cmd.Flags().Changed("fraction-max-heating") {
		p.MaxHeatingFraction = fracMax
	}
	if cmd.Flags().Changed("heat-fraction") {
		p.HeatFraction = heatFrac
	}
	if cmd.Flags().Changed("temp-fraction") {
		p.TempFraction = tempFrac
	}
	if cmd.Flags().Changed("lv") {
		p.LatentHeat = latentHeat
	}
	if cmd.Flags().Changed("payload") {
		p.PayloadTonnes = payload
	}
	if cmd.Flags().Changed("flight-cost") {
		p.FlightCostUSD = flightCost
	}

	return p, cfg.Vehicle, nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	p, vehicle, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	b, err := thermo.Compute(p)
	if err != nil && !errors.Is(err, thermo.ErrNoWaterRequired) {
		// out-of-bounds constants produce no breakdown worth printing
		return err
	}
	report.Write(os.Stdout, p, b)
	if err != nil {
		return err
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(vehicle, p, b)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	p, vehicle, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	extract, ok := sweep.Outputs[sweepOutput]
	if !ok {
		names := sweep.OutputNames()
		sort.Strings(names)
		return fmt.Errorf("unknown output: %s (available: %v)", sweepOutput, names)
	}

	r := sweep.Range{Param: args[0], From: sweepFrom, To: sweepTo, Steps: sweepSteps}
	points, err := sweep.Run(p, r)
	if err != nil {
		return err
	}

	data := sweep.Series(points, extract)

	fmt.Printf("sweeping %s from %g to %g (%d samples)\n\n", r.Param, r.From, r.To, r.Steps)
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", sweepOutput, r.Param)),
	)
	fmt.Println(graph)
	fmt.Printf("\nat %g: %g  at %g: %g\n", r.From, data[0], r.To, data[len(data)-1])

	for _, pt := range points {
		if pt.Err != nil {
			fmt.Printf("note: %s=%g needs no water (reentries per launch undefined)\n", r.Param, pt.Value)
			break
		}
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSweep(vehicle, p, r, sweepOutput, points)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func comparePresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tVEHICLE\tWATER_T\tFLIGHTS\tCOST_USD\tREENTRIES")

	for _, name := range args {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s", name)
		}

		p := cfg.Parameters()
		b, err := thermo.Compute(p)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%d\t%s\n",
				name, cfg.Vehicle, b.WaterMassTonnes, b.Flights, b.TotalCostUSD, "n/a")
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%d\t%d\n",
			name, cfg.Vehicle, b.WaterMassTonnes, b.Flights, b.TotalCostUSD, b.ReentriesPerLaunch)
	}

	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tTIME\tWATER_T\tFLIGHTS\tCOST_USD")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%d\n",
			run.ID,
			run.Vehicle,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Breakdown.WaterMassTonnes,
			run.Breakdown.Flights,
			run.Breakdown.TotalCostUSD,
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if meta.SweepParam == "" {
		return fmt.Errorf("run %s has no sweep data", args[0])
	}

	values, outputs, err := st.LoadSweep(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{meta.SweepParam, meta.SweepOut}); err != nil {
		return err
	}
	for i := range values {
		row := []string{
			strconv.FormatFloat(values[i], 'f', 6, 64),
			strconv.FormatFloat(outputs[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if meta.SweepParam == "" {
		return fmt.Errorf("run %s has no sweep data", args[0])
	}

	values, outputs, err := st.LoadSweep(args[0])
	if err != nil {
		return err
	}

	svg := export.CurveSVG(values, outputs, svgWidth, svgHeight, meta.SweepParam, meta.SweepOut)
	if svg == "" {
		return fmt.Errorf("not enough samples to draw")
	}

	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

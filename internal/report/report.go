// Package report renders the estimate in the fixed nine-line console form.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hg7643/reentrycool/internal/thermo"
)

// usd groups thousands in cost figures ("1,500,000").
var usd = message.NewPrinter(language.English)

// Write prints the nine result lines in their fixed order. When the estimate
// needs no water at all, the final line says so instead of reporting an
// undefined reentries-per-launch figure.
func Write(w io.Writer, p thermo.Parameters, b thermo.Breakdown) {
	fmt.Fprintf(w, "Total kinetic energy: %.2e J\n", b.KineticEnergy)
	fmt.Fprintf(w, "KE during max heating (%s%%): %.2e J\n", decimal(p.MaxHeatingFraction*100), b.PeakKineticEnergy)
	fmt.Fprintf(w, "Heat during max heating (heat_fraction %s): %.2e J\n", decimal(p.HeatFraction), b.PeakHeatLoad)
	fmt.Fprintf(w, "Fraction absorbed by water: %.2f\n", b.AbsorbedFraction)
	fmt.Fprintf(w, "Energy to steam: %.2e J\n", b.SteamEnergy)
	fmt.Fprintf(w, "Required water mass: %.0f metric tonnes\n", b.WaterMassTonnes)
	fmt.Fprintf(w, "Number of flights needed: %d\n", b.Flights)
	usd.Fprintf(w, "Total cost to deliver water to orbit: $%d USD\n", b.TotalCostUSD)
	if b.WaterMassTonnes == 0 {
		fmt.Fprintln(w, "Reentries supplied per launch (including freighter): undefined (no water required)")
		return
	}
	fmt.Fprintf(w, "Reentries supplied per launch (including freighter): %d\n", b.ReentriesPerLaunch)
}

// Render returns the nine lines as one string.
func Render(p thermo.Parameters, b thermo.Breakdown) string {
	var sb strings.Builder
	Write(&sb, p, b)
	return sb.String()
}

// decimal renders a float with its shortest exact form, switching to
// exponent notation for small magnitudes ("1e-05") and keeping one decimal
// place for whole values ("30.0", "0.01").
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

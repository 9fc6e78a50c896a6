package export

import (
	"strings"
	"testing"
)

func TestCurveSVG(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3}
	outputs := []float64{1.0, 2.0, 3.0}

	svg := CurveSVG(values, outputs, 640, 480, "fraction_max_heating", "water_tonnes")
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, "water_tonnes vs fraction_max_heating") {
		t.Error("missing axis label")
	}
	if !strings.Contains(svg, "<path") || !strings.Contains(svg, " L") {
		t.Error("missing polyline segments")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestCurveSVGDegenerate(t *testing.T) {
	if svg := CurveSVG([]float64{1}, []float64{1}, 640, 480, "x", "y"); svg != "" {
		t.Error("expected empty output for a single point")
	}
	if svg := CurveSVG([]float64{1, 2}, []float64{1}, 640, 480, "x", "y"); svg != "" {
		t.Error("expected empty output for mismatched lengths")
	}
	// A flat series must still render without dividing by zero.
	svg := CurveSVG([]float64{1, 2, 3}, []float64{5, 5, 5}, 640, 480, "x", "y")
	if svg == "" {
		t.Error("expected output for flat series")
	}
}

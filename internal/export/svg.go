// Package export renders sweep curves as standalone SVG files.
package export

import (
	"fmt"
	"strings"
)

// CurveSVG draws one sweep series (parameter value on x, output on y) as an
// SVG polyline with axis labels. Returns "" when there are too few points.
func CurveSVG(values, outputs []float64, width, height int, xLabel, yLabel string) string {
	if len(values) < 2 || len(values) != len(outputs) {
		return ""
	}

	minX, maxX := values[0], values[0]
	minY, maxY := outputs[0], outputs[0]
	for i := range values {
		if values[i] < minX {
			minX = values[i]
		}
		if values[i] > maxX {
			maxX = values[i]
		}
		if outputs[i] < minY {
			minY = outputs[i]
		}
		if outputs[i] > maxY {
			maxY = outputs[i]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="8" y="16" fill="#888899" font-size="12">%s vs %s</text>
<path fill="none" stroke="#00ccff" stroke-width="1.5" d="M`,
		width, height, width, height, yLabel, xLabel))

	for i := range values {
		x := (values[i] - minX) / rangeX * float64(width)
		y := float64(height) - (outputs[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

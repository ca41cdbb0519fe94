package components

import "strconv"

const svgCoordinatePrecision = 2

// coord formats an SVG coordinate.
func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', svgCoordinatePrecision, 64)
}

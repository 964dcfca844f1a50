package pathloss

import "math"

// NLOSMode identifies the scattering geometry class of a UV link.
type NLOSMode int

const (
	// NLOSA is vertical tx and vertical rx, omnidirectional coverage.
	NLOSA NLOSMode = iota
	// NLOSB is tilted tx with vertical rx.
	NLOSB
	// NLOSC is tilted tx and tilted rx, the most directional class.
	NLOSC
)

var nlosModes = [...]string{
	"NLOS-a",
	"NLOS-b",
	"NLOS-c",
}

func (m NLOSMode) String() string {
	if int(m) >= len(nlosModes) {
		return "Unknown-NLOSMode"
	}
	return nlosModes[m]
}

// verticalToleranceDeg is how close to 90 degrees an elevation must be
// to count as vertical.
const verticalToleranceDeg = 5.0

// ClassifyMode maps the elevation geometry to its NLOS class.
func ClassifyMode(theta1Deg, theta2Deg float64) NLOSMode {
	txVertical := math.Abs(theta1Deg-90) < verticalToleranceDeg
	rxVertical := math.Abs(theta2Deg-90) < verticalToleranceDeg
	switch {
	case txVertical && rxVertical:
		return NLOSA
	case !txVertical && !rxVertical:
		return NLOSC
	default:
		return NLOSB
	}
}

// CoverageShape describes the footprint of each mode.
func (m NLOSMode) CoverageShape() string {
	switch m {
	case NLOSA:
		return "circular"
	case NLOSB:
		return "elliptical"
	case NLOSC:
		return "cone"
	}
	return "unknown"
}

// ScatteringEfficiency returns a relative 0..1 figure of how strongly
// the common volume couples tx to rx for the given mode.
func (m NLOSMode) ScatteringEfficiency(theta1Deg, theta2Deg float64) float64 {
	var eff float64
	switch m {
	case NLOSA:
		eff = 0.5
	case NLOSB:
		eff = 0.6 * math.Sin(radians(theta1Deg))
	case NLOSC:
		eff = 0.7 * (math.Sin(radians(theta1Deg)) + math.Sin(radians(theta2Deg))) / 2
	default:
		eff = 0.5
	}
	if eff < 0.1 {
		eff = 0.1
	}
	if eff > 1.0 {
		eff = 1.0
	}
	return eff
}

// ScatterAngle returns the scattering angle of the common volume in
// degrees, 180 - (theta1 + theta2).
func ScatterAngle(theta1Deg, theta2Deg float64) float64 {
	return 180.0 - (theta1Deg + theta2Deg)
}

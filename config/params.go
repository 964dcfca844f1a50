// Package config holds the physical constants, engineering parameter
// ranges and network defaults of the UV NLOS planning model, with
// validation helpers and sweep-range generators.
package config

import (
	"fmt"
	"math"

	"github.com/wiless/vlib"
)

// Physical constants of the photon-counting link budget.
const (
	PlanckConstant    = 6.62607015e-34 // J.s
	SpeedOfLight      = 2.99792458e8   // m/s
	Wavelength        = 265e-9         // m, solar-blind UV-C band
	QuantumEfficiency = 0.15           // PMT detector
	ErrorProbability  = 1e-6           // OOK target BER
)

// Engineering bounds of the link parameters.
const (
	PtMinW     = 0.1
	PtMaxW     = 0.5
	PtDefaultW = 0.5
	PtStepW    = 0.05

	RdMinBps     = 10e3
	RdMaxBps     = 120e3
	RdDefaultBps = 50e3
	RdStepBps    = 10e3

	Phi1MinDeg     = 5.0
	Phi1MaxDeg     = 20.0
	Phi1DefaultDeg = 15.0

	Theta1MinDeg     = 30.0
	Theta1MaxDeg     = 50.0
	Theta1DefaultDeg = 30.0

	Theta2MinDeg     = 30.0
	Theta2MaxDeg     = 50.0
	Theta2DefaultDeg = 50.0
)

// Network-level defaults.
const (
	RegionAreaDefault  = 1e6 // m^2, 1km x 1km ROI
	NodeCountMin       = 10
	NodeCountMax       = 400
	NodeCountDefault   = 300
	NodeCountStep      = 10
	ConnectivityTarget = 0.90
	CoverageEfficiency = 0.5545 // single node effective area / full circle
	FourNodeSideFactor = 3.0    // square side in units of comm distance
)

// ElevationCombinations lists the (theta1,theta2) pairs evaluated in
// deployment studies.
var ElevationCombinations = [][2]float64{
	{30, 30},
	{30, 50},
	{50, 30},
	{50, 50},
}

// Theta1Options and Theta2Options are the discrete sweep grids.
var Theta1Options = vlib.VectorF{30, 40, 50}
var Theta2Options = vlib.VectorF{30, 50}

// PhotonEnergy returns hc/lambda in joules.
func PhotonEnergy() float64 {
	return PlanckConstant * SpeedOfLight / Wavelength
}

// RegionSide returns the side of the square ROI of the given area.
func RegionSide(area float64) float64 {
	return math.Sqrt(area)
}

// NodeDensity returns nodes per square meter.
func NodeDensity(n int, area float64) float64 {
	if area <= 0 {
		return 0
	}
	return float64(n) / area
}

// PtRange returns the transmit power sweep grid in watts.
func PtRange() vlib.VectorF {
	return stepRange(PtMinW, PtMaxW, PtStepW)
}

// RdRange returns the data rate sweep grid in bps.
func RdRange() vlib.VectorF {
	return stepRange(RdMinBps, RdMaxBps, RdStepBps)
}

// NodeCountRange returns the node count sweep grid.
func NodeCountRange() vlib.VectorI {
	var result vlib.VectorI
	for n := NodeCountMin; n <= NodeCountMax; n += NodeCountStep {
		result = append(result, n)
	}
	return result
}

func stepRange(from, to, step float64) vlib.VectorF {
	var result vlib.VectorF
	for v := from; v <= to+step/2; v += step {
		result = append(result, v)
	}
	return result
}

// ValidateLink checks the link parameters against the engineering
// bounds and returns (false, reason) on the first violation.
func ValidateLink(ptW, rdBps, phi1Deg, theta1Deg, theta2Deg float64) (bool, string) {
	if ptW < PtMinW || ptW > PtMaxW {
		return false, fmt.Sprintf("transmit power %.3f W outside [%.2f, %.2f] W", ptW, PtMinW, PtMaxW)
	}
	if rdBps < RdMinBps || rdBps > RdMaxBps {
		return false, fmt.Sprintf("data rate %.0f bps outside [%.0f, %.0f] bps", rdBps, RdMinBps, RdMaxBps)
	}
	if phi1Deg < Phi1MinDeg || phi1Deg > Phi1MaxDeg {
		return false, fmt.Sprintf("divergence angle %.1f deg outside [%.1f, %.1f] deg", phi1Deg, Phi1MinDeg, Phi1MaxDeg)
	}
	if theta1Deg < Theta1MinDeg || theta1Deg > Theta1MaxDeg {
		return false, fmt.Sprintf("tx elevation %.1f deg outside [%.1f, %.1f] deg", theta1Deg, Theta1MinDeg, Theta1MaxDeg)
	}
	if theta2Deg < Theta2MinDeg || theta2Deg > Theta2MaxDeg {
		return false, fmt.Sprintf("rx elevation %.1f deg outside [%.1f, %.1f] deg", theta2Deg, Theta2MinDeg, Theta2MaxDeg)
	}
	return true, "ok"
}

// ValidateNetwork checks the deployment parameters.
func ValidateNetwork(n int, area float64) (bool, string) {
	if n < NodeCountMin || n > NodeCountMax {
		return false, fmt.Sprintf("node count %d outside [%d, %d]", n, NodeCountMin, NodeCountMax)
	}
	if area <= 0 || math.IsInf(area, 0) || math.IsNaN(area) {
		return false, fmt.Sprintf("region area %v is not a positive finite value", area)
	}
	return true, "ok"
}

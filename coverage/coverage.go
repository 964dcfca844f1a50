// Package coverage implements the effective-coverage geometry of UV
// nodes deployed on a square lattice: the corner and edge overlap
// corrections, per-node effective area and the minimum node count for
// a region.
package coverage

import (
	"math"

	"github.com/wiless/vlib"
)

// CornerArea returns S1, the area of one square corner left outside
// the inscribed quarter circle of radius l.
func CornerArea(l float64) float64 {
	return l * l * (1 - math.Pi/4)
}

// EdgeOverlapArea returns S2, the pairwise overlap correction between
// adjacent nodes spaced l apart on the lattice.
func EdgeOverlapArea(l float64) float64 {
	return (1 - math.Pi/6 - math.Sqrt(3)/4) * l * l
}

// Circular returns the unconstrained footprint pi*l^2.
func Circular(l float64) float64 {
	return math.Pi * l * l
}

// SingleNodeEffective returns the effective area one node contributes
// on the lattice, half a disc plus the corner term minus the edge
// overlap.
func SingleNodeEffective(l float64) float64 {
	return 0.5*math.Pi*l*l + CornerArea(l) - EdgeOverlapArea(l)
}

// FourNodeEffective returns the area covered by the canonical
// four-node square of side 3l.
func FourNodeEffective(l float64) float64 {
	side := 3 * l
	return side*side - 4*CornerArea(l) - 4*EdgeOverlapArea(l)
}

// Efficiency returns the ratio of single-node effective area to the
// full circle, a constant of the lattice geometry (about 0.5545).
func Efficiency() float64 {
	return SingleNodeEffective(1) / math.Pi
}

// MinimumNodes returns the smallest node count whose combined
// effective area covers regionArea. ok is false for degenerate inputs.
func MinimumNodes(regionArea, l float64) (n int, ok bool) {
	if regionArea <= 0 || l <= 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return 0, false
	}
	eff := SingleNodeEffective(l)
	if eff <= 0 {
		return 0, false
	}
	return int(math.Ceil(regionArea / eff)), true
}

// LensOverlap returns the intersection area of two circles of radii
// r1, r2 whose centers are d apart.
func LensOverlap(r1, r2, d float64) float64 {
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		rmin := math.Min(r1, r2)
		return math.Pi * rmin * rmin
	}
	d1 := (d*d - r2*r2 + r1*r1) / (2 * d)
	d2 := d - d1
	a1 := r1*r1*math.Acos(d1/r1) - d1*math.Sqrt(r1*r1-d1*d1)
	a2 := r2*r2*math.Acos(d2/r2) - d2*math.Sqrt(r2*r2-d2*d2)
	return a1 + a2
}

// SingleNodeCurve evaluates SingleNodeEffective over a distance sweep.
func SingleNodeCurve(lRange vlib.VectorF) vlib.VectorF {
	result := vlib.NewVectorF(len(lRange))
	for i, l := range lRange {
		result[i] = SingleNodeEffective(l)
	}
	return result
}

// MinimumNodeCurve evaluates MinimumNodes over a distance sweep.
// Degenerate points appear as 0.
func MinimumNodeCurve(regionArea float64, lRange vlib.VectorF) vlib.VectorI {
	result := make(vlib.VectorI, len(lRange))
	for i, l := range lRange {
		n, ok := MinimumNodes(regionArea, l)
		if ok {
			result[i] = n
		}
	}
	return result
}

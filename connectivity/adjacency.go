// Package connectivity implements the spatial adjacency and
// m-connectivity probability model of a uniformly deployed UV network
// in a square region.
package connectivity

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BoundaryFloor is the lowest truncation factor applied to nodes whose
// coverage disc spills past the region edge.
const BoundaryFloor = 0.5

// AdjacencyProbability returns the probability that a node at polar
// position (txM, phiRad) from the region origin is adjacent to one
// given other node, among n uniformly placed nodes in a square region
// of the given area. Discs near the boundary are truncated by a factor
// of distance-to-edge over l, floored at BoundaryFloor.
func AdjacencyProbability(txM, phiRad, l float64, n int, area float64) float64 {
	if n < 2 || area <= 0 || l <= 0 {
		return 0
	}
	x := txM * math.Cos(phiRad)
	y := txM * math.Sin(phiRad)
	side := math.Sqrt(area)

	distToEdge := math.Min(math.Min(x, y), math.Min(side-x, side-y))

	p := float64(n-1) / area * math.Pi * l * l
	if distToEdge < l {
		p *= math.Max(BoundaryFloor, distToEdge/l)
	}
	return clamp01(p)
}

// ProbabilityExactly returns P(node has exactly m neighbors).
func ProbabilityExactly(txM, phiRad, l float64, n, m int, area float64) float64 {
	if m < 0 || m >= n {
		return 0
	}
	p := AdjacencyProbability(txM, phiRad, l, n, area)
	b := distuv.Binomial{N: float64(n - 1), P: p}
	return clamp01(b.Prob(float64(m)))
}

// ProbabilityAtLeast returns P(node has at least m neighbors).
// m <= 0 is certain, m >= n impossible.
func ProbabilityAtLeast(txM, phiRad, l float64, n, m int, area float64) float64 {
	if m <= 0 {
		return 1
	}
	if m >= n {
		return 0
	}
	p := AdjacencyProbability(txM, phiRad, l, n, area)
	b := distuv.Binomial{N: float64(n - 1), P: p}
	return clamp01(1 - b.CDF(float64(m-1)))
}

// ExpectedNeighbors returns the mean neighbor count of an interior
// node, (n-1)/area * pi*l^2.
func ExpectedNeighbors(n int, area, l float64) float64 {
	if n < 2 || area <= 0 {
		return 0
	}
	return float64(n-1) / area * math.Pi * l * l
}

// IsolationProbability returns the Poisson probability of a node
// having no neighbor at all, exp(-ExpectedNeighbors).
func IsolationProbability(n int, area, l float64) float64 {
	return math.Exp(-ExpectedNeighbors(n, area, l))
}

// PositionProfile bundles the neighbor statistics of one position.
type PositionProfile struct {
	X, Y              float64
	BaseProbability   float64
	ExpectedNeighbors float64
	Exactly           map[int]float64
	AtLeast           map[int]float64
}

// ProfileAt evaluates the neighbor distribution at a position for
// m = 1..maxM.
func ProfileAt(txM, phiRad, l float64, n int, area float64, maxM int) PositionProfile {
	p := AdjacencyProbability(txM, phiRad, l, n, area)
	profile := PositionProfile{
		X:                 txM * math.Cos(phiRad),
		Y:                 txM * math.Sin(phiRad),
		BaseProbability:   p,
		ExpectedNeighbors: float64(n-1) * p,
		Exactly:           make(map[int]float64),
		AtLeast:           make(map[int]float64),
	}
	for m := 1; m <= maxM; m++ {
		profile.Exactly[m] = ProbabilityExactly(txM, phiRad, l, n, m, area)
		profile.AtLeast[m] = ProbabilityAtLeast(txM, phiRad, l, n, m, area)
	}
	return profile
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

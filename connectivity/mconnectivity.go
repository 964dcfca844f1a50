package connectivity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSamplePoints is the nominal spatial sample budget for the Q
// estimate.
const DefaultSamplePoints = 20

// Q returns the region-averaged probability that a node has at least m
// neighbors, estimated on a deterministic interior grid of roughly
// samplePoints positions. samplePoints <= 0 selects the default.
func Q(l float64, n, m int, area float64, samplePoints int) float64 {
	if samplePoints <= 0 {
		samplePoints = DefaultSamplePoints
	}
	side := math.Sqrt(area)
	grid := int(math.Ceil(math.Sqrt(float64(samplePoints))))
	spacing := side / float64(grid+1)

	probs := make([]float64, 0, grid*grid)
	for i := 1; i <= grid; i++ {
		for j := 1; j <= grid; j++ {
			x := float64(i) * spacing
			y := float64(j) * spacing
			txM := math.Hypot(x, y)
			phi := math.Atan2(y, x)
			probs = append(probs, ProbabilityAtLeast(txM, phi, l, n, m, area))
		}
	}
	return floats.Sum(probs) / float64(len(probs))
}

// NetworkProbability returns the probability that every node of the
// network has at least m neighbors, Q^n under the independence
// approximation.
func NetworkProbability(l float64, n, m int, area float64, samplePoints int) float64 {
	q := clamp01(Q(l, n, m, area, samplePoints))
	return math.Pow(q, float64(n))
}

// Level bundles the per-node and network-wide probabilities of one
// connectivity order.
type Level struct {
	M       int
	Q       float64
	Network float64
}

// Levels evaluates connectivity orders 1..maxM.
func Levels(l float64, n int, area float64, maxM, samplePoints int) []Level {
	result := make([]Level, 0, maxM)
	for m := 1; m <= maxM; m++ {
		result = append(result, Level{
			M:       m,
			Q:       Q(l, n, m, area, samplePoints),
			Network: NetworkProbability(l, n, m, area, samplePoints),
		})
	}
	return result
}

// NodeSearchResult reports the outcome of FindRequiredNodes.
type NodeSearchResult struct {
	Feasible bool
	Nodes    int
	Achieved float64
	Target   float64
	Message  string
}

// FindRequiredNodes searches [nMin, nMax] for the smallest node count
// whose m-connectivity network probability meets target, by integer
// bisection down to the given tolerance. When even nMax falls short
// the result is marked infeasible and carries nMax.
func FindRequiredNodes(l, area float64, m int, target float64, nMin, nMax, tol int, samplePoints int) NodeSearchResult {
	if tol < 1 {
		tol = 1
	}
	result := NodeSearchResult{Target: target}

	atMax := NetworkProbability(l, nMax, m, area, samplePoints)
	if atMax < target {
		result.Feasible = false
		result.Nodes = nMax
		result.Achieved = atMax
		result.Message = fmt.Sprintf("target %.2f not reachable with %d nodes (achieved %.4f)", target, nMax, atMax)
		return result
	}

	lo, hi := nMin, nMax
	for hi-lo > tol {
		mid := (lo + hi) / 2
		if NetworkProbability(l, mid, m, area, samplePoints) < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	result.Feasible = true
	result.Nodes = hi
	result.Achieved = NetworkProbability(l, hi, m, area, samplePoints)
	result.Message = "ok"
	return result
}

// RequiredAdjacencyProbability inverts the binomial tail: the per-pair
// adjacency probability a node needs so that P(at least m neighbors)
// reaches target, found by bisection on [0,1].
func RequiredAdjacencyProbability(n, m int, target float64) float64 {
	if m <= 0 {
		return 0
	}
	if m >= n {
		return 1
	}
	lo, hi := 0.0, 1.0
	for hi-lo > 0.01 {
		mid := (lo + hi) / 2
		if atLeastWithP(mid, n, m) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

func atLeastWithP(p float64, n, m int) float64 {
	b := distuv.Binomial{N: float64(n - 1), P: p}
	return clamp01(1 - b.CDF(float64(m-1)))
}

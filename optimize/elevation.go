package optimize

import (
	"math"
	"sort"

	"github.com/wiless/uvnlos/channel"
	"github.com/wiless/uvnlos/config"
	"github.com/wiless/uvnlos/connectivity"
	"github.com/wiless/uvnlos/coverage"
)

// ElevationOptimizer ranks the discrete (theta1, theta2) combinations.
type ElevationOptimizer struct {
	Model  *channel.Model
	Combos [][2]float64
}

// NewElevationOptimizer returns an optimizer over the Table I
// elevation combinations.
func NewElevationOptimizer(m *channel.Model) *ElevationOptimizer {
	return &ElevationOptimizer{
		Model:  m,
		Combos: config.ElevationCombinations,
	}
}

// ComboMetrics is the evaluation of one elevation pair.
type ComboMetrics struct {
	Theta1Deg    float64
	Theta2Deg    float64
	DistanceM    float64
	MinNodes     int
	Connectivity float64 // 2-connectivity at MinNodes
	Valid        bool
}

// Compare evaluates every combination for the given power, rate and
// region, ranked by node count ascending.
func (o *ElevationOptimizer) Compare(ptW, rdBps, area float64) []ComboMetrics {
	results := make([]ComboMetrics, 0, len(o.Combos))
	for _, c := range o.Combos {
		cm := ComboMetrics{Theta1Deg: c[0], Theta2Deg: c[1]}
		l, ok := o.Model.Distance(ptW, rdBps, c[0], c[1])
		if ok {
			if n, nok := coverage.MinimumNodes(area, l); nok {
				cm.Valid = true
				cm.DistanceM = l
				cm.MinNodes = n
				cm.Connectivity = connectivity.NetworkProbability(l, n, 2, area, connectivity.DefaultSamplePoints)
			}
		}
		results = append(results, cm)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Valid != results[j].Valid {
			return results[i].Valid
		}
		return results[i].MinNodes < results[j].MinNodes
	})
	return results
}

// BestForNodeBudget returns the highest-connectivity combination whose
// node count fits the budget. ok is false when none fits.
func (o *ElevationOptimizer) BestForNodeBudget(maxNodes int, ptW, rdBps, area float64) (ComboMetrics, bool) {
	var best ComboMetrics
	found := false
	for _, cm := range o.Compare(ptW, rdBps, area) {
		if !cm.Valid || cm.MinNodes > maxNodes {
			continue
		}
		if !found || cm.Connectivity > best.Connectivity {
			best = cm
			found = true
		}
	}
	return best, found
}

// BestForDistance returns the combination whose reach is closest to,
// and at least, targetM. ok is false when no combination reaches it.
func (o *ElevationOptimizer) BestForDistance(targetM, ptW, rdBps float64) (ComboMetrics, bool) {
	var best ComboMetrics
	found := false
	for _, c := range o.Combos {
		l, ok := o.Model.Distance(ptW, rdBps, c[0], c[1])
		if !ok || l < targetM {
			continue
		}
		if !found || l < best.DistanceM {
			best = ComboMetrics{Theta1Deg: c[0], Theta2Deg: c[1], DistanceM: l, Valid: true}
			found = true
		}
	}
	return best, found
}

// AngleSensitivity reports how much the reach varies across the
// combinations, as (min, max, relative spread).
func (o *ElevationOptimizer) AngleSensitivity(ptW, rdBps float64) (minM, maxM, spread float64) {
	minM = math.Inf(1)
	for _, c := range o.Combos {
		l, ok := o.Model.Distance(ptW, rdBps, c[0], c[1])
		if !ok {
			continue
		}
		if l < minM {
			minM = l
		}
		if l > maxM {
			maxM = l
		}
	}
	if maxM > 0 {
		spread = (maxM - minM) / maxM
	}
	return minM, maxM, spread
}

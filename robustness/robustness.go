// Package robustness scores the resilience of a UV network deployment
// from its connectivity statistics and derives improvement
// recommendations and failure-tolerance figures.
package robustness

import (
	"fmt"
	"math"

	"github.com/wiless/uvnlos/connectivity"
)

// Score weights and level thresholds.
const (
	weightConn1      = 20.0
	weightConn2      = 40.0
	weightConn3      = 20.0
	weightIsolation  = 10.0
	weightNeighbors  = 10.0
	neighborSaturate = 5.0

	LevelExcellent = 85.0
	LevelGood      = 70.0
	LevelFair      = 50.0
)

// Metrics are the raw connectivity figures feeding the score.
type Metrics struct {
	Conn1             float64
	Conn2             float64
	Conn3             float64
	ExpectedNeighbors float64
	Isolation         float64
}

// Report is a scored robustness evaluation.
type Report struct {
	Score   float64
	Level   string
	Metrics Metrics
}

// Score combines the metrics into a 0..100 figure. 2-connectivity
// dominates since it is the usual design target.
func Score(m Metrics) float64 {
	s := m.Conn1*weightConn1 +
		m.Conn2*weightConn2 +
		m.Conn3*weightConn3 +
		(1-m.Isolation)*weightIsolation +
		math.Min(m.ExpectedNeighbors/neighborSaturate, 1)*weightNeighbors
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// LevelFor maps a score to its qualitative level.
func LevelFor(score float64) string {
	switch {
	case score >= LevelExcellent:
		return "Excellent"
	case score >= LevelGood:
		return "Good"
	case score >= LevelFair:
		return "Fair"
	default:
		return "Poor"
	}
}

// EvaluateMetrics computes the raw figures for a deployment.
func EvaluateMetrics(l float64, n int, area float64) Metrics {
	return Metrics{
		Conn1:             connectivity.NetworkProbability(l, n, 1, area, connectivity.DefaultSamplePoints),
		Conn2:             connectivity.NetworkProbability(l, n, 2, area, connectivity.DefaultSamplePoints),
		Conn3:             connectivity.NetworkProbability(l, n, 3, area, connectivity.DefaultSamplePoints),
		ExpectedNeighbors: connectivity.ExpectedNeighbors(n, area, l),
		Isolation:         connectivity.IsolationProbability(n, area, l),
	}
}

// Evaluate scores a deployment of n nodes with reach l in a square
// region.
func Evaluate(l float64, n int, area float64) Report {
	m := EvaluateMetrics(l, n, area)
	s := Score(m)
	return Report{Score: s, Level: LevelFor(s), Metrics: m}
}

// Recommendations inspects the metrics and lists concrete
// improvements, or confirms the design when none apply.
func Recommendations(l float64, n int, area float64) []string {
	m := EvaluateMetrics(l, n, area)
	var recs []string

	if m.Conn1 < 0.9 {
		recs = append(recs, fmt.Sprintf("basic connectivity is %.1f%%, add nodes or extend reach to pass 90%%", m.Conn1*100))
	}
	if m.Conn2 < 0.9 {
		recs = append(recs, fmt.Sprintf("2-connectivity is %.1f%%, increase node count for redundant paths", m.Conn2*100))
	}
	if m.ExpectedNeighbors < 3 {
		recs = append(recs, fmt.Sprintf("expected neighbor count %.1f is low, densify the deployment", m.ExpectedNeighbors))
	}
	if m.Isolation > 0.05 {
		recs = append(recs, fmt.Sprintf("isolation probability %.1f%% exceeds 5%%, raise transmit power or node density", m.Isolation*100))
	}
	if len(recs) == 0 {
		recs = append(recs, "network meets all robustness targets")
	} else if s := Score(m); s < LevelExcellent && m.Conn2 >= 0.8 {
		recs = append(recs, "consider a parameter sweep to trade node count against connectivity margin")
	}
	return recs
}

package robustness

import (
	"math"
	"sort"
)

// Failure survival thresholds.
const (
	surviveConn1 = 0.8
	resilientC2  = 0.7
)

// FailureReport describes how a deployment degrades when a fraction of
// nodes is lost.
type FailureReport struct {
	FailureRate      float64
	ExpectedFailures int
	RemainingNodes   int
	Metrics          Metrics
	Survives         bool
	Resilience       string
}

// FailureTolerance removes the expected failed fraction and
// re-evaluates the survivors.
func FailureTolerance(l float64, n int, area, failureRate float64) FailureReport {
	failed := int(math.Round(float64(n) * failureRate))
	remaining := n - failed

	r := FailureReport{
		FailureRate:      failureRate,
		ExpectedFailures: failed,
		RemainingNodes:   remaining,
	}
	if remaining < 2 {
		r.Resilience = "Low"
		return r
	}
	r.Metrics = EvaluateMetrics(l, remaining, area)
	r.Survives = r.Metrics.Conn1 >= surviveConn1
	switch {
	case r.Survives && r.Metrics.Conn2 >= resilientC2:
		r.Resilience = "High"
	case r.Survives:
		r.Resilience = "Medium"
	default:
		r.Resilience = "Low"
	}
	return r
}

// Scenario is one candidate deployment in a comparison.
type Scenario struct {
	Name     string
	Distance float64
	Nodes    int
	Area     float64
}

// ScenarioResult pairs a scenario with its evaluation.
type ScenarioResult struct {
	Scenario Scenario
	Report   Report
}

// CompareScenarios evaluates all candidates and returns them ranked by
// score, best first.
func CompareScenarios(scenarios []Scenario) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		results = append(results, ScenarioResult{
			Scenario: sc,
			Report:   Evaluate(sc.Distance, sc.Nodes, sc.Area),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Report.Score > results[j].Report.Score
	})
	return results
}

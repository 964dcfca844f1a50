// Package uvnlos plans ultraviolet non-line-of-sight mesh networks: a
// parametric link model feeding coverage, connectivity and robustness
// analysis, with optimizers that turn deployment requirements into a
// complete operating point.
package uvnlos

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/wiless/uvnlos/channel"
	"github.com/wiless/uvnlos/config"
	"github.com/wiless/uvnlos/optimize"
	"github.com/wiless/uvnlos/robustness"
)

// Priority selects the design objective.
type Priority int

const (
	// Balanced trades node count against connectivity margin.
	Balanced Priority = iota
	// Cost minimizes the node count.
	Cost
	// Reliability maximizes connectivity within the node budget.
	Reliability
)

var priorities = [...]string{
	"Balanced",
	"Cost",
	"Reliability",
}

func (p Priority) String() string {
	if int(p) >= len(priorities) {
		return "Unknown-Priority"
	}
	return priorities[p]
}

// Requirements is the input to DesignNetwork. Zero values fall back to
// the Table I defaults.
type Requirements struct {
	Name               string
	AreaM2             float64
	NodeBudget         int // 0 means unbounded
	TargetConnectivity float64
	Priority           Priority
}

func (r *Requirements) setDefaults() {
	if r.AreaM2 <= 0 {
		r.AreaM2 = config.RegionAreaDefault
	}
	if r.TargetConnectivity <= 0 {
		r.TargetConnectivity = config.ConnectivityTarget
	}
}

// Design is the selected operating point.
type Design struct {
	PowerW       float64
	RateBps      float64
	Theta1Deg    float64
	Theta2Deg    float64
	DistanceM    float64
	Nodes        int
	Connectivity float64 // 2-connectivity
}

// DesignResult is the full outcome of a design run.
type DesignResult struct {
	Success           bool
	Message           string
	Requirements      Requirements
	Design            Design
	Robustness        robustness.Report
	Recommendations   []string
	MeetsConnectivity bool
	MeetsBudget       bool
}

// Designer composes the optimizers behind a single entry point.
type Designer struct {
	Model *channel.Model
}

// NewDesigner returns a Designer on the default channel calibration.
func NewDesigner() *Designer {
	return &Designer{Model: channel.NewModel()}
}

// DesignNetwork sweeps the engineering grid for the configuration that
// best serves the requirements, then scores its robustness.
func (d *Designer) DesignNetwork(req Requirements) DesignResult {
	req.setDefaults()
	result := DesignResult{Requirements: req}

	sweep := optimize.NewParameterSweep(d.Model, req.AreaM2, req.TargetConnectivity)

	var obj optimize.Objective
	var cons optimize.Constraints
	switch req.Priority {
	case Cost:
		obj = optimize.MinimizeNodes
		cons.MinConnectivity2 = req.TargetConnectivity
	case Reliability:
		obj = optimize.MaximizeConnectivity
		cons.MaxNodes = req.NodeBudget
	default:
		obj = optimize.Balanced
		cons.MinConnectivity2 = req.TargetConnectivity
	}

	best, ok := sweep.Optimum(obj, cons)
	if !ok {
		result.Message = fmt.Sprintf("no configuration meets %s requirements in %.0f m2", req.Priority, req.AreaM2)
		log.Infof("DesignNetwork: %s", result.Message)
		return result
	}

	result.Success = true
	result.Message = "ok"
	result.Design = Design{
		PowerW:       best.Params.PtW,
		RateBps:      best.Params.RdBps,
		Theta1Deg:    best.Params.Theta1Deg,
		Theta2Deg:    best.Params.Theta2Deg,
		DistanceM:    best.DistanceM,
		Nodes:        best.MinNodes,
		Connectivity: best.Connectivity,
	}
	result.Robustness = robustness.Evaluate(best.DistanceM, best.MinNodes, req.AreaM2)
	result.Recommendations = robustness.Recommendations(best.DistanceM, best.MinNodes, req.AreaM2)
	result.MeetsConnectivity = best.Connectivity >= req.TargetConnectivity
	result.MeetsBudget = req.NodeBudget == 0 || best.MinNodes <= req.NodeBudget
	return result
}

// OptimizeForCost is DesignNetwork with the cost priority.
func (d *Designer) OptimizeForCost(areaM2, targetConnectivity float64) DesignResult {
	return d.DesignNetwork(Requirements{
		AreaM2:             areaM2,
		TargetConnectivity: targetConnectivity,
		Priority:           Cost,
	})
}

// OptimizeForReliability is DesignNetwork with the reliability
// priority under a node budget.
func (d *Designer) OptimizeForReliability(areaM2 float64, nodeBudget int) DesignResult {
	return d.DesignNetwork(Requirements{
		AreaM2:     areaM2,
		NodeBudget: nodeBudget,
		Priority:   Reliability,
	})
}

// Comparison ranks several designs.
type Comparison struct {
	Results            []DesignResult
	BestForCost        *DesignResult
	BestForReliability *DesignResult
}

// CompareDesigns runs every requirement set and identifies the
// cheapest and the most robust successful design.
func (d *Designer) CompareDesigns(reqs []Requirements) Comparison {
	var cmp Comparison
	for _, req := range reqs {
		res := d.DesignNetwork(req)
		if !res.Success {
			log.Infof("CompareDesigns: %s skipped, %s", req.Name, res.Message)
			continue
		}
		cmp.Results = append(cmp.Results, res)
	}
	for i := range cmp.Results {
		r := &cmp.Results[i]
		if cmp.BestForCost == nil || r.Design.Nodes < cmp.BestForCost.Design.Nodes {
			cmp.BestForCost = r
		}
		if cmp.BestForReliability == nil || r.Robustness.Score > cmp.BestForReliability.Robustness.Score {
			cmp.BestForReliability = r
		}
	}
	return cmp
}

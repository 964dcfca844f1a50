// Package optimize searches the engineering parameter space of the UV
// link for minimum-power, maximum-rate and best-elevation operating
// points, and sweeps the full grid for network-level optima.
package optimize

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/wiless/uvnlos/channel"
	"github.com/wiless/uvnlos/config"
	"github.com/wiless/uvnlos/connectivity"
	"github.com/wiless/uvnlos/coverage"
)

// PowerOptimizer searches transmit power inside the engineering
// bounds.
type PowerOptimizer struct {
	Model *channel.Model
	PtMin float64
	PtMax float64
	TolW  float64
}

// NewPowerOptimizer returns an optimizer over the Table I power range.
func NewPowerOptimizer(m *channel.Model) *PowerOptimizer {
	return &PowerOptimizer{
		Model: m,
		PtMin: config.PtMinW,
		PtMax: config.PtMaxW,
		TolW:  0.01,
	}
}

// PowerResult reports a power search outcome.
type PowerResult struct {
	Feasible  bool
	PowerW    float64
	DistanceM float64
	TargetM   float64
	Message   string
}

// MinPowerForDistance finds the least power reaching targetM within
// the engineering bounds, bisecting to TolW.
func (o *PowerOptimizer) MinPowerForDistance(targetM, rdBps, theta1Deg, theta2Deg float64) PowerResult {
	res := PowerResult{TargetM: targetM}

	lMax, ok := o.Model.Distance(o.PtMax, rdBps, theta1Deg, theta2Deg)
	if !ok || lMax < targetM {
		res.PowerW = o.PtMax
		res.DistanceM = lMax
		res.Message = fmt.Sprintf("target %.1f m exceeds %.1f m reach at max power %.2f W", targetM, lMax, o.PtMax)
		log.Debugf("MinPowerForDistance: %s", res.Message)
		return res
	}
	if lMin, ok := o.Model.Distance(o.PtMin, rdBps, theta1Deg, theta2Deg); ok && lMin >= targetM {
		res.Feasible = true
		res.PowerW = o.PtMin
		res.DistanceM = lMin
		res.Message = "ok"
		return res
	}

	lo, hi := o.PtMin, o.PtMax
	for hi-lo > o.TolW {
		mid := (lo + hi) / 2
		if l, ok := o.Model.Distance(mid, rdBps, theta1Deg, theta2Deg); ok && l >= targetM {
			hi = mid
		} else {
			lo = mid
		}
	}
	res.Feasible = true
	res.PowerW = hi
	res.DistanceM, _ = o.Model.Distance(hi, rdBps, theta1Deg, theta2Deg)
	res.Message = "ok"
	return res
}

// CoveragePowerResult extends PowerResult with the node budget check.
type CoveragePowerResult struct {
	PowerResult
	Nodes       int
	MaxNodes    int
	MeetsBudget bool
}

// MinPowerForCoverage finds the least power whose reach covers area
// within maxNodes lattice nodes.
func (o *PowerOptimizer) MinPowerForCoverage(area float64, maxNodes int, rdBps, theta1Deg, theta2Deg float64) CoveragePowerResult {
	res := CoveragePowerResult{MaxNodes: maxNodes}

	lo, hi := o.PtMin, o.PtMax
	nodesAt := func(pt float64) (int, float64, bool) {
		l, ok := o.Model.Distance(pt, rdBps, theta1Deg, theta2Deg)
		if !ok {
			return 0, 0, false
		}
		n, ok := coverage.MinimumNodes(area, l)
		return n, l, ok
	}

	nMax, lMax, ok := nodesAt(hi)
	if !ok || nMax > maxNodes {
		res.PowerW = hi
		res.DistanceM = lMax
		res.Nodes = nMax
		res.Message = fmt.Sprintf("even max power needs %d nodes for %.0f m2, budget is %d", nMax, area, maxNodes)
		log.Debugf("MinPowerForCoverage: %s", res.Message)
		return res
	}

	for hi-lo > o.TolW {
		mid := (lo + hi) / 2
		if n, _, ok := nodesAt(mid); ok && n <= maxNodes {
			hi = mid
		} else {
			lo = mid
		}
	}
	res.Feasible = true
	res.MeetsBudget = true
	res.PowerW = hi
	res.Nodes, res.DistanceM, _ = nodesAt(hi)
	res.Message = "ok"
	return res
}

// ConnectivityPowerResult extends PowerResult with the achieved
// m-connectivity.
type ConnectivityPowerResult struct {
	PowerResult
	Connectivity float64
	TargetProb   float64
}

// MinPowerForConnectivity finds the least power whose reach gives n
// nodes at least the target m-connectivity network probability.
func (o *PowerOptimizer) MinPowerForConnectivity(area float64, n, m int, targetProb, rdBps, theta1Deg, theta2Deg float64) ConnectivityPowerResult {
	res := ConnectivityPowerResult{TargetProb: targetProb}

	connAt := func(pt float64) (float64, float64, bool) {
		l, ok := o.Model.Distance(pt, rdBps, theta1Deg, theta2Deg)
		if !ok {
			return 0, 0, false
		}
		return connectivity.NetworkProbability(l, n, m, area, connectivity.DefaultSamplePoints), l, true
	}

	cMax, lMax, ok := connAt(o.PtMax)
	if !ok || cMax < targetProb {
		res.PowerW = o.PtMax
		res.DistanceM = lMax
		res.Connectivity = cMax
		res.Message = fmt.Sprintf("connectivity %.4f at max power misses target %.2f", cMax, targetProb)
		log.Debugf("MinPowerForConnectivity: %s", res.Message)
		return res
	}

	lo, hi := o.PtMin, o.PtMax
	for hi-lo > o.TolW {
		mid := (lo + hi) / 2
		if c, _, ok := connAt(mid); ok && c >= targetProb {
			hi = mid
		} else {
			lo = mid
		}
	}
	res.Feasible = true
	res.PowerW = hi
	res.Connectivity, res.DistanceM, _ = connAt(hi)
	res.Message = "ok"
	return res
}

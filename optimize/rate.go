package optimize

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/wiless/uvnlos/channel"
	"github.com/wiless/uvnlos/config"
	"github.com/wiless/uvnlos/connectivity"
)

// RateOptimizer searches data rate inside the engineering bounds.
type RateOptimizer struct {
	Model  *channel.Model
	RdMin  float64
	RdMax  float64
	TolBps float64
}

// NewRateOptimizer returns an optimizer over the Table I rate range.
func NewRateOptimizer(m *channel.Model) *RateOptimizer {
	return &RateOptimizer{
		Model:  m,
		RdMin:  config.RdMinBps,
		RdMax:  config.RdMaxBps,
		TolBps: 1000,
	}
}

// RateResult reports a rate search outcome.
type RateResult struct {
	Feasible  bool
	RateBps   float64
	DistanceM float64
	TargetM   float64
	Message   string
}

// MaxRateForDistance finds the highest rate that still spans targetM
// at the given power, bisecting to TolBps.
func (o *RateOptimizer) MaxRateForDistance(targetM, ptW, theta1Deg, theta2Deg float64) RateResult {
	res := RateResult{TargetM: targetM}

	lSlow, ok := o.Model.Distance(ptW, o.RdMin, theta1Deg, theta2Deg)
	if !ok || lSlow < targetM {
		res.RateBps = o.RdMin
		res.DistanceM = lSlow
		res.Message = fmt.Sprintf("distance %.1f m unreachable even at %.0f kbps", targetM, o.RdMin/1e3)
		log.Debugf("MaxRateForDistance: %s", res.Message)
		return res
	}
	if lFast, ok := o.Model.Distance(ptW, o.RdMax, theta1Deg, theta2Deg); ok && lFast >= targetM {
		res.Feasible = true
		res.RateBps = o.RdMax
		res.DistanceM = lFast
		res.Message = "ok"
		return res
	}

	lo, hi := o.RdMin, o.RdMax
	for hi-lo > o.TolBps {
		mid := (lo + hi) / 2
		if l, ok := o.Model.Distance(ptW, mid, theta1Deg, theta2Deg); ok && l >= targetM {
			lo = mid
		} else {
			hi = mid
		}
	}
	res.Feasible = true
	res.RateBps = lo
	res.DistanceM, _ = o.Model.Distance(ptW, lo, theta1Deg, theta2Deg)
	res.Message = "ok"
	return res
}

// ConnectivityRateResult extends RateResult with the achieved
// m-connectivity.
type ConnectivityRateResult struct {
	RateResult
	Connectivity float64
	TargetProb   float64
}

// MaxRateForConnectivity finds the highest rate whose shorter reach
// still keeps n nodes above the target m-connectivity.
func (o *RateOptimizer) MaxRateForConnectivity(area float64, n, m int, targetProb, ptW, theta1Deg, theta2Deg float64) ConnectivityRateResult {
	res := ConnectivityRateResult{TargetProb: targetProb}

	connAt := func(rd float64) (float64, float64, bool) {
		l, ok := o.Model.Distance(ptW, rd, theta1Deg, theta2Deg)
		if !ok {
			return 0, 0, false
		}
		return connectivity.NetworkProbability(l, n, m, area, connectivity.DefaultSamplePoints), l, true
	}

	cSlow, lSlow, ok := connAt(o.RdMin)
	if !ok || cSlow < targetProb {
		res.RateBps = o.RdMin
		res.DistanceM = lSlow
		res.Connectivity = cSlow
		res.Message = fmt.Sprintf("connectivity %.4f at min rate misses target %.2f", cSlow, targetProb)
		log.Debugf("MaxRateForConnectivity: %s", res.Message)
		return res
	}
	if cFast, lFast, ok := connAt(o.RdMax); ok && cFast >= targetProb {
		res.Feasible = true
		res.RateBps = o.RdMax
		res.DistanceM = lFast
		res.Connectivity = cFast
		res.Message = "ok"
		return res
	}

	lo, hi := o.RdMin, o.RdMax
	for hi-lo > o.TolBps {
		mid := (lo + hi) / 2
		if c, _, ok := connAt(mid); ok && c >= targetProb {
			lo = mid
		} else {
			hi = mid
		}
	}
	res.Feasible = true
	res.RateBps = lo
	res.Connectivity, res.DistanceM, _ = connAt(lo)
	res.Message = "ok"
	return res
}

package optimize

import (
	log "github.com/sirupsen/logrus"

	"github.com/wiless/uvnlos/channel"
	"github.com/wiless/uvnlos/connectivity"
	"github.com/wiless/uvnlos/coverage"
	"github.com/wiless/vlib"
)

// sweepSamplePoints trades Q accuracy for grid throughput during
// sweeps.
const sweepSamplePoints = 10

// LinkParams is one operating point of the link.
type LinkParams struct {
	PtW       float64
	RdBps     float64
	Theta1Deg float64
	Theta2Deg float64
}

// SweepPoint is one evaluated grid configuration.
type SweepPoint struct {
	Params       LinkParams
	DistanceM    float64
	MinNodes     int
	Connectivity float64 // 2-connectivity at MinNodes
}

// Objective selects what Optimum minimizes or maximizes.
type Objective int

const (
	// MinimizeNodes picks the cheapest deployment.
	MinimizeNodes Objective = iota
	// MaximizeConnectivity picks the most reliable deployment.
	MaximizeConnectivity
	// Balanced trades node count against connectivity margin.
	Balanced
)

var objectives = [...]string{
	"MinimizeNodes",
	"MaximizeConnectivity",
	"Balanced",
}

func (o Objective) String() string {
	if int(o) >= len(objectives) {
		return "Unknown-Objective"
	}
	return objectives[o]
}

// Constraints bound the admissible sweep points. Zero values disable a
// constraint.
type Constraints struct {
	MinConnectivity2 float64
	MaxNodes         int
}

// ParameterSweep walks the engineering grid of one region.
type ParameterSweep struct {
	Model  *channel.Model
	Area   float64
	Target float64

	PtValues     vlib.VectorF
	RdValues     vlib.VectorF
	Theta1Values vlib.VectorF
	Theta2Values vlib.VectorF
}

// NewParameterSweep returns a sweep over the standard grid.
func NewParameterSweep(m *channel.Model, area, target float64) *ParameterSweep {
	return &ParameterSweep{
		Model:        m,
		Area:         area,
		Target:       target,
		PtValues:     vlib.VectorF{0.1, 0.2, 0.3, 0.4, 0.5},
		RdValues:     vlib.VectorF{10e3, 30e3, 50e3, 70e3, 100e3, 120e3},
		Theta1Values: vlib.VectorF{30, 40, 50},
		Theta2Values: vlib.VectorF{30, 50},
	}
}

// evaluate returns the sweep point for one configuration, skipping
// degenerate reaches below one meter.
func (s *ParameterSweep) evaluate(p LinkParams) (SweepPoint, bool) {
	l, ok := s.Model.Distance(p.PtW, p.RdBps, p.Theta1Deg, p.Theta2Deg)
	if !ok || l < 1 {
		return SweepPoint{}, false
	}
	n, ok := coverage.MinimumNodes(s.Area, l)
	if !ok {
		return SweepPoint{}, false
	}
	return SweepPoint{
		Params:       p,
		DistanceM:    l,
		MinNodes:     n,
		Connectivity: connectivity.NetworkProbability(l, n, 2, s.Area, sweepSamplePoints),
	}, true
}

// Run evaluates the full Cartesian grid.
func (s *ParameterSweep) Run() []SweepPoint {
	var points []SweepPoint
	skipped := 0
	for _, pt := range s.PtValues {
		for _, rd := range s.RdValues {
			for _, t1 := range s.Theta1Values {
				for _, t2 := range s.Theta2Values {
					p, ok := s.evaluate(LinkParams{PtW: pt, RdBps: rd, Theta1Deg: t1, Theta2Deg: t2})
					if !ok {
						skipped++
						continue
					}
					points = append(points, p)
				}
			}
		}
	}
	if skipped > 0 {
		log.Debugf("sweep skipped %d degenerate configurations", skipped)
	}
	return points
}

// Curve1D sweeps a single parameter, holding base fixed. Degenerate
// points carry DistanceM 0.
func (s *ParameterSweep) Curve1D(set func(*LinkParams, float64), values vlib.VectorF, base LinkParams) []SweepPoint {
	points := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		p := base
		set(&p, v)
		sp, ok := s.evaluate(p)
		if !ok {
			sp = SweepPoint{Params: p}
		}
		points = append(points, sp)
	}
	return points
}

// PowerCurve sweeps transmit power with the remaining parameters from
// base.
func (s *ParameterSweep) PowerCurve(base LinkParams) []SweepPoint {
	return s.Curve1D(func(p *LinkParams, v float64) { p.PtW = v }, s.PtValues, base)
}

// RateCurve sweeps data rate with the remaining parameters from base.
func (s *ParameterSweep) RateCurve(base LinkParams) []SweepPoint {
	return s.Curve1D(func(p *LinkParams, v float64) { p.RdBps = v }, s.RdValues, base)
}

func (s *ParameterSweep) admissible(p SweepPoint, c Constraints) bool {
	if c.MinConnectivity2 > 0 && p.Connectivity < c.MinConnectivity2 {
		return false
	}
	if c.MaxNodes > 0 && p.MinNodes > c.MaxNodes {
		return false
	}
	return true
}

// balancedScore rewards few nodes with a healthy connectivity margin.
// Lower is better.
func balancedScore(p SweepPoint) float64 {
	return float64(p.MinNodes) * (1.1 - p.Connectivity)
}

// Optimum runs the sweep and picks the best admissible point for the
// objective. ok is false when no point satisfies the constraints.
func (s *ParameterSweep) Optimum(obj Objective, c Constraints) (best SweepPoint, ok bool) {
	for _, p := range s.Run() {
		if !s.admissible(p, c) {
			continue
		}
		if !ok {
			best, ok = p, true
			continue
		}
		switch obj {
		case MinimizeNodes:
			if p.MinNodes < best.MinNodes {
				best = p
			}
		case MaximizeConnectivity:
			if p.Connectivity > best.Connectivity {
				best = p
			}
		case Balanced:
			if balancedScore(p) < balancedScore(best) {
				best = p
			}
		}
	}
	return best, ok
}

// ImpactOfPower reports the connectivity of a fixed 300-node
// deployment as power varies, isolating the power term.
func (s *ParameterSweep) ImpactOfPower(base LinkParams, n int) vlib.VectorF {
	result := vlib.NewVectorF(len(s.PtValues))
	for i, pt := range s.PtValues {
		l, ok := s.Model.Distance(pt, base.RdBps, base.Theta1Deg, base.Theta2Deg)
		if !ok {
			continue
		}
		result[i] = connectivity.NetworkProbability(l, n, 2, s.Area, sweepSamplePoints)
	}
	return result
}

// ImpactOfRate reports the connectivity of a fixed deployment as rate
// varies.
func (s *ParameterSweep) ImpactOfRate(base LinkParams, n int) vlib.VectorF {
	result := vlib.NewVectorF(len(s.RdValues))
	for i, rd := range s.RdValues {
		l, ok := s.Model.Distance(base.PtW, rd, base.Theta1Deg, base.Theta2Deg)
		if !ok {
			continue
		}
		result[i] = connectivity.NetworkProbability(l, n, 2, s.Area, sweepSamplePoints)
	}
	return result
}

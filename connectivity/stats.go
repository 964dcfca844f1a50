package connectivity

import "math"

// DensityStats summarizes a uniform deployment of n nodes in a square
// region.
type DensityStats struct {
	Nodes             int
	AreaM2            float64
	SideM             float64
	Density           float64 // nodes per m^2
	AvgSpacingM       float64 // 1/sqrt(density)
	ExpectedNeighbors float64
	Isolation         float64
}

// DeploymentStats evaluates the density summary for the given comm
// distance.
func DeploymentStats(n int, area, l float64) DensityStats {
	s := DensityStats{
		Nodes:  n,
		AreaM2: area,
		SideM:  math.Sqrt(area),
	}
	if area > 0 {
		s.Density = float64(n) / area
	}
	if s.Density > 0 {
		s.AvgSpacingM = 1 / math.Sqrt(s.Density)
	}
	s.ExpectedNeighbors = ExpectedNeighbors(n, area, l)
	s.Isolation = IsolationProbability(n, area, l)
	return s
}

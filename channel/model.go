// Package channel evaluates the OOK UV NLOS link: the maximum
// communication distance as a function of transmit power, data rate
// and elevation geometry, with sweep helpers and inverse searches.
package channel

import (
	"math"

	"github.com/wiless/uvnlos/config"
	"github.com/wiless/uvnlos/pathloss"
	"github.com/wiless/vlib"
)

// Model holds the photon-budget constants and the path-loss
// calibration. Zero value is not usable; create with NewModel.
type Model struct {
	PlanckJs     float64
	SpeedOfLight float64
	WavelengthM  float64
	QuantumEff   float64
	ErrorProb    float64
	PL           *pathloss.Setting
}

// NewModel returns a Model with the Table I constants and the default
// path-loss calibration.
func NewModel() *Model {
	return &Model{
		PlanckJs:     config.PlanckConstant,
		SpeedOfLight: config.SpeedOfLight,
		WavelengthM:  config.Wavelength,
		QuantumEff:   config.QuantumEfficiency,
		ErrorProb:    config.ErrorProbability,
		PL:           pathloss.NewSetting(),
	}
}

// Distance returns the maximum communication distance in meters,
//
//	l = [ -eta*lambda*Pt / (h*c*xi*Rd*ln(2*Pe)) ]^(1/alpha)
//
// ok is false when the inputs make the expression degenerate
// (non-positive power or rate, or a non-finite result).
func (m *Model) Distance(ptW, rdBps, theta1Deg, theta2Deg float64) (l float64, ok bool) {
	if ptW <= 0 || rdBps <= 0 {
		return 0, false
	}
	alpha := m.PL.Exponent(theta1Deg, theta2Deg)
	xi := m.PL.Factor(theta1Deg, theta2Deg)

	num := -m.QuantumEff * m.WavelengthM * ptW
	den := m.PlanckJs * m.SpeedOfLight * xi * rdBps * math.Log(2*m.ErrorProb)
	if den == 0 {
		return 0, false
	}
	ratio := num / den
	if ratio <= 0 {
		return 0, false
	}
	l = math.Pow(ratio, 1.0/alpha)
	if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
		return 0, false
	}
	return l, true
}

// DistanceVsPower sweeps distance over the given powers. Degenerate
// points appear as 0.
func (m *Model) DistanceVsPower(ptW vlib.VectorF, rdBps, theta1Deg, theta2Deg float64) vlib.VectorF {
	result := vlib.NewVectorF(len(ptW))
	for i, pt := range ptW {
		l, ok := m.Distance(pt, rdBps, theta1Deg, theta2Deg)
		if ok {
			result[i] = l
		}
	}
	return result
}

// DistanceVsRate sweeps distance over the given data rates.
func (m *Model) DistanceVsRate(ptW float64, rdBps vlib.VectorF, theta1Deg, theta2Deg float64) vlib.VectorF {
	result := vlib.NewVectorF(len(rdBps))
	for i, rd := range rdBps {
		l, ok := m.Distance(ptW, rd, theta1Deg, theta2Deg)
		if ok {
			result[i] = l
		}
	}
	return result
}

// DistanceVsElevation sweeps distance over tx elevations at a fixed rx
// elevation.
func (m *Model) DistanceVsElevation(ptW, rdBps float64, theta1Deg vlib.VectorF, theta2Deg float64) vlib.VectorF {
	result := vlib.NewVectorF(len(theta1Deg))
	for i, t1 := range theta1Deg {
		l, ok := m.Distance(ptW, rdBps, t1, theta2Deg)
		if ok {
			result[i] = l
		}
	}
	return result
}

// DistanceMatrix evaluates distance over the (theta1, theta2) grid.
// Row i corresponds to theta1Deg[i].
func (m *Model) DistanceMatrix(ptW, rdBps float64, theta1Deg, theta2Deg vlib.VectorF) []vlib.VectorF {
	result := make([]vlib.VectorF, len(theta1Deg))
	for i, t1 := range theta1Deg {
		result[i] = vlib.NewVectorF(len(theta2Deg))
		for j, t2 := range theta2Deg {
			l, ok := m.Distance(ptW, rdBps, t1, t2)
			if ok {
				result[i][j] = l
			}
		}
	}
	return result
}

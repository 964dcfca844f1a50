// Package pathloss implements the single-scattering UV NLOS path-loss
// parameter model: the geometry-dependent exponent alpha and the
// attenuation factor xi as functions of the tx/rx elevation angles.
package pathloss

import (
	"encoding/json"
	"log"
	"math"
)

// Setting carries the calibration constants of the path-loss model.
// All fields are overridable per instance; NewSetting returns the
// canonical calibration.
type Setting struct {
	AlphaBase    float64 // nominal path-loss exponent
	AlphaMin     float64 // clamp floor on alpha
	AlphaMax     float64 // clamp ceiling on alpha
	XiBase       float64 // attenuation scale, calibrated (see Calibrate)
	WavelengthM  float64 // operating wavelength
	ScatterCoeff float64 // atmospheric scattering coefficient, relative
	GeomFloor    float64 // floor on sin(theta1)*sin(theta2)
}

// Params is the evaluated (alpha, xi) pair for one elevation geometry.
type Params struct {
	Theta1Deg float64
	Theta2Deg float64
	Alpha     float64
	Xi        float64
}

// NewSetting returns the default calibration. XiBase reproduces the
// 75.1 m reference distance at 0.5 W, 50 kbps, 30/50 degree elevations.
func NewSetting() *Setting {
	return &Setting{
		AlphaBase:    3.0,
		AlphaMin:     2.5,
		AlphaMax:     4.0,
		XiBase:       40388.2,
		WavelengthM:  265e-9,
		ScatterCoeff: 1.0,
		GeomFloor:    0.1,
	}
}

// Exponent returns the path-loss exponent alpha(theta1,theta2).
// Larger elevation sums steer more energy through longer scattering
// paths, so alpha grows with the angle sum.
func (s *Setting) Exponent(theta1Deg, theta2Deg float64) float64 {
	sum := radians(theta1Deg) + radians(theta2Deg)
	angleFactor := sum / (2 * radians(45))
	alpha := s.AlphaBase * (0.9 + 0.2*angleFactor)
	if alpha < s.AlphaMin {
		alpha = s.AlphaMin
	}
	if alpha > s.AlphaMax {
		alpha = s.AlphaMax
	}
	return alpha
}

// Factor returns the attenuation factor xi(theta1,theta2). The
// wavelength term follows the Rayleigh lambda^-4 dependence relative
// to the 280 nm band edge; the geometry term floors at GeomFloor to
// keep shallow elevations finite.
func (s *Setting) Factor(theta1Deg, theta2Deg float64) float64 {
	wavelengthNm := s.WavelengthM * 1e9
	wavelengthFactor := math.Pow(280.0/wavelengthNm, 4)
	geomFactor := math.Sin(radians(theta1Deg)) * math.Sin(radians(theta2Deg))
	if geomFactor < s.GeomFloor {
		geomFactor = s.GeomFloor
	}
	return s.XiBase * wavelengthFactor * s.ScatterCoeff / geomFactor
}

// Params evaluates both alpha and xi for the given geometry.
func (s *Setting) Params(theta1Deg, theta2Deg float64) Params {
	return Params{
		Theta1Deg: theta1Deg,
		Theta2Deg: theta2Deg,
		Alpha:     s.Exponent(theta1Deg, theta2Deg),
		Xi:        s.Factor(theta1Deg, theta2Deg),
	}
}

// Set loads the setting from a JSON string.
func (s *Setting) Set(str string) {
	err := json.Unmarshal([]byte(str), s)
	if err != nil {
		log.Print("Error ", err)
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

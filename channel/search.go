package channel

// Inverse link searches. Distance is monotonic in power and rate, so a
// plain bisection on the bracket converges; the brackets here are the
// physical search windows of the model, wider than the engineering
// bounds enforced by the optimizers.

const (
	// FindRequiredPower bracket and tolerance, watts.
	PowerSearchMinW = 0.01
	PowerSearchMaxW = 2.0
	PowerTolW       = 0.001

	// FindSupportedRate bracket and tolerance, bps.
	RateSearchMinBps = 1e3
	RateSearchMaxBps = 200e3
	RateTolBps       = 1000.0
)

// FindRequiredPower returns the minimum transmit power reaching
// targetM at the given rate and geometry. ok is false when even the
// top of the search bracket falls short.
func (m *Model) FindRequiredPower(targetM, rdBps, theta1Deg, theta2Deg float64) (ptW float64, ok bool) {
	if targetM <= 0 {
		return 0, false
	}
	if l, valid := m.Distance(PowerSearchMaxW, rdBps, theta1Deg, theta2Deg); !valid || l < targetM {
		return PowerSearchMaxW, false
	}
	lo, hi := PowerSearchMinW, PowerSearchMaxW
	for hi-lo > PowerTolW {
		mid := (lo + hi) / 2
		l, valid := m.Distance(mid, rdBps, theta1Deg, theta2Deg)
		if valid && l >= targetM {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, true
}

// FindSupportedRate returns the maximum data rate sustainable over
// distanceM at the given power and geometry. ok is false when even the
// slowest rate in the bracket cannot span the distance.
func (m *Model) FindSupportedRate(distanceM, ptW, theta1Deg, theta2Deg float64) (rdBps float64, ok bool) {
	if distanceM <= 0 {
		return 0, false
	}
	if l, valid := m.Distance(ptW, RateSearchMinBps, theta1Deg, theta2Deg); !valid || l < distanceM {
		return RateSearchMinBps, false
	}
	lo, hi := RateSearchMinBps, RateSearchMaxBps
	for hi-lo > RateTolBps {
		mid := (lo + hi) / 2
		l, valid := m.Distance(ptW, mid, theta1Deg, theta2Deg)
		if valid && l >= distanceM {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, true
}

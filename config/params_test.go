package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotonEnergy(t *testing.T) {
	// hc/lambda at 265 nm is about 7.5e-19 J
	assert.InDelta(t, 7.497e-19, PhotonEnergy(), 1e-21)
}

func TestRanges(t *testing.T) {
	pts := PtRange()
	assert.Equal(t, 9, len(pts))
	assert.InDelta(t, 0.1, pts[0], 1e-12)
	assert.InDelta(t, 0.5, pts[len(pts)-1], 1e-9)

	rds := RdRange()
	assert.Equal(t, 12, len(rds))
	assert.InDelta(t, 10e3, rds[0], 1e-9)
	assert.InDelta(t, 120e3, rds[len(rds)-1], 1e-6)

	ns := NodeCountRange()
	assert.Equal(t, 10, ns[0])
	assert.Equal(t, 400, ns[len(ns)-1])
	assert.Equal(t, 40, len(ns))
}

func TestValidateLink(t *testing.T) {
	ok, msg := ValidateLink(0.5, 50e3, 15, 30, 50)
	assert.True(t, ok)
	assert.Equal(t, "ok", msg)

	ok, msg = ValidateLink(0.6, 50e3, 15, 30, 50)
	assert.False(t, ok)
	assert.Contains(t, msg, "transmit power")

	ok, _ = ValidateLink(0.5, 5e3, 15, 30, 50)
	assert.False(t, ok)

	ok, _ = ValidateLink(0.5, 50e3, 25, 30, 50)
	assert.False(t, ok)

	ok, _ = ValidateLink(0.5, 50e3, 15, 20, 50)
	assert.False(t, ok)

	ok, _ = ValidateLink(0.5, 50e3, 15, 30, 60)
	assert.False(t, ok)
}

func TestValidateNetwork(t *testing.T) {
	ok, _ := ValidateNetwork(300, 1e6)
	assert.True(t, ok)

	ok, _ = ValidateNetwork(5, 1e6)
	assert.False(t, ok)

	ok, _ = ValidateNetwork(500, 1e6)
	assert.False(t, ok)

	ok, _ = ValidateNetwork(300, -1)
	assert.False(t, ok)
}

func TestRegionHelpers(t *testing.T) {
	assert.InDelta(t, 1000, RegionSide(1e6), 1e-9)
	assert.InDelta(t, 3e-4, NodeDensity(300, 1e6), 1e-12)
	assert.Equal(t, 0.0, NodeDensity(300, 0))
}

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	assert.InDelta(t, RegionAreaDefault, cfg.RegionArea, 1e-9)
	assert.InDelta(t, ConnectivityTarget, cfg.TargetConnectivity, 1e-12)
	assert.Equal(t, NodeCountMax, cfg.NodeBudget)
}

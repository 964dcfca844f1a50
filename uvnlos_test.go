package uvnlos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeForCost(t *testing.T) {
	d := NewDesigner()

	res := d.OptimizeForCost(1e6, 0.9)
	assert.True(t, res.Success)
	assert.True(t, res.MeetsConnectivity)
	assert.True(t, res.MeetsBudget)
	assert.Equal(t, 33, res.Design.Nodes)
	assert.True(t, res.Design.Connectivity >= 0.9)
	assert.NotEmpty(t, res.Recommendations)
	assert.NotEmpty(t, res.Robustness.Level)
}

func TestOptimizeForReliability(t *testing.T) {
	d := NewDesigner()

	res := d.OptimizeForReliability(1e6, 100)
	assert.True(t, res.Success)
	assert.True(t, res.Design.Nodes <= 100)
	assert.True(t, res.MeetsBudget)
}

func TestDesignNetworkDefaults(t *testing.T) {
	d := NewDesigner()

	res := d.DesignNetwork(Requirements{})
	assert.True(t, res.Success)
	assert.InDelta(t, 1e6, res.Requirements.AreaM2, 1e-6)
	assert.InDelta(t, 0.9, res.Requirements.TargetConnectivity, 1e-9)
}

func TestDesignNetworkInfeasible(t *testing.T) {
	d := NewDesigner()

	res := d.DesignNetwork(Requirements{
		AreaM2:     1e6,
		NodeBudget: 5,
		Priority:   Reliability,
	})
	assert.False(t, res.Success)
	assert.NotEqual(t, "ok", res.Message)
}

func TestCompareDesigns(t *testing.T) {
	d := NewDesigner()

	cmp := d.CompareDesigns([]Requirements{
		{Name: "budget", AreaM2: 1e6, TargetConnectivity: 0.9, Priority: Cost},
		{Name: "premium", AreaM2: 1e6, NodeBudget: 150, Priority: Reliability},
		{Name: "broken", AreaM2: 1e6, NodeBudget: 5, Priority: Reliability},
	})

	assert.Len(t, cmp.Results, 2)
	assert.NotNil(t, cmp.BestForCost)
	assert.NotNil(t, cmp.BestForReliability)
	assert.True(t, cmp.BestForCost.Design.Nodes <= cmp.BestForReliability.Design.Nodes)
}

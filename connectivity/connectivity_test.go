package connectivity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testArea = 1e6

func center() (txM, phiRad float64) {
	return math.Hypot(500, 500), math.Atan2(500, 500)
}

func TestAdjacencyProbability(t *testing.T) {
	tx, phi := center()

	p := AdjacencyProbability(tx, phi, 60, 50, testArea)
	assert.InDelta(t, 0.5542, p, 1e-3)

	// deep corner position is floored at half the interior value
	pc := AdjacencyProbability(math.Hypot(30, 30), math.Atan2(30, 30), 60, 50, testArea)
	assert.InDelta(t, p*BoundaryFloor, pc, 1e-9)

	// saturation clamps at 1
	assert.Equal(t, 1.0, AdjacencyProbability(tx, phi, 95, 300, testArea))

	// degenerate inputs
	assert.Equal(t, 0.0, AdjacencyProbability(tx, phi, 60, 1, testArea))
	assert.Equal(t, 0.0, AdjacencyProbability(tx, phi, 0, 50, testArea))
}

func TestBoundaryTruncationMonotonic(t *testing.T) {
	// walking in from the edge never lowers the probability
	prev := 0.0
	for _, x := range []float64{5, 20, 40, 60, 80} {
		p := AdjacencyProbability(math.Hypot(x, 500), math.Atan2(500, x), 60, 50, testArea)
		assert.True(t, p >= prev, "x=%v", x)
		prev = p
	}
}

func TestProbabilityBounds(t *testing.T) {
	tx, phi := center()

	assert.Equal(t, 1.0, ProbabilityAtLeast(tx, phi, 60, 50, 0, testArea))
	assert.Equal(t, 1.0, ProbabilityAtLeast(tx, phi, 60, 50, -3, testArea))
	assert.Equal(t, 0.0, ProbabilityAtLeast(tx, phi, 60, 50, 50, testArea))
	assert.Equal(t, 0.0, ProbabilityExactly(tx, phi, 60, 50, -1, testArea))
	assert.Equal(t, 0.0, ProbabilityExactly(tx, phi, 60, 50, 50, testArea))

	for m := 1; m <= 5; m++ {
		pe := ProbabilityExactly(tx, phi, 60, 20, m, testArea)
		pa := ProbabilityAtLeast(tx, phi, 60, 20, m, testArea)
		assert.True(t, pe >= 0 && pe <= 1)
		assert.True(t, pa >= 0 && pa <= 1)
	}

	// at-least is non-increasing in m
	prev := 1.0
	for m := 1; m <= 6; m++ {
		pa := ProbabilityAtLeast(tx, phi, 60, 20, m, testArea)
		assert.True(t, pa <= prev+1e-12)
		prev = pa
	}
}

func TestQOrdering(t *testing.T) {
	q1 := Q(60, 20, 1, testArea, 20)
	q2 := Q(60, 20, 2, testArea, 20)
	q3 := Q(60, 20, 3, testArea, 20)

	assert.InDelta(t, 0.9899, q1, 1e-3)
	assert.InDelta(t, 0.9375, q2, 1e-3)
	assert.InDelta(t, 0.8083, q3, 1e-3)
	assert.True(t, q1 > q2 && q2 > q3)
}

func TestNetworkProbability(t *testing.T) {
	assert.InDelta(t, 0.2748, NetworkProbability(60, 20, 2, testArea, 20), 1e-3)
	assert.InDelta(t, 0.9327, NetworkProbability(60, 26, 2, testArea, 20), 1e-3)

	// monotone in node count
	n20 := NetworkProbability(60, 20, 2, testArea, 20)
	n26 := NetworkProbability(60, 26, 2, testArea, 20)
	n40 := NetworkProbability(60, 40, 2, testArea, 20)
	assert.True(t, n20 < n26 && n26 < n40)

	// monotone in distance
	l50 := NetworkProbability(50, 26, 2, testArea, 20)
	l70 := NetworkProbability(70, 26, 2, testArea, 20)
	assert.True(t, l50 < n26 && n26 < l70)
}

func TestLevels(t *testing.T) {
	levels := Levels(60, 20, testArea, 3, 20)
	assert.Len(t, levels, 3)
	for i, lv := range levels {
		assert.Equal(t, i+1, lv.M)
		assert.True(t, lv.Network <= lv.Q+1e-12)
	}
	assert.True(t, levels[0].Q > levels[2].Q)
}

func TestFindRequiredNodes(t *testing.T) {
	res := FindRequiredNodes(60, testArea, 2, 0.9, 10, 400, 1, 20)
	assert.True(t, res.Feasible)
	assert.Equal(t, 26, res.Nodes)
	assert.True(t, res.Achieved >= 0.9)

	// one fewer node misses the target
	assert.True(t, NetworkProbability(60, res.Nodes-1, 2, testArea, 20) < 0.9)
}

func TestFindRequiredNodesInfeasible(t *testing.T) {
	// short reach with a tight node cap cannot meet the target
	res := FindRequiredNodes(20, testArea, 2, 0.9, 10, 50, 1, 20)
	assert.False(t, res.Feasible)
	assert.Equal(t, 50, res.Nodes)
	assert.True(t, res.Achieved < 0.9)
	assert.NotEqual(t, "ok", res.Message)
}

func TestRequiredAdjacencyProbability(t *testing.T) {
	p := RequiredAdjacencyProbability(100, 2, 0.9)
	assert.True(t, p > 0 && p < 1)
	assert.True(t, atLeastWithP(p, 100, 2) >= 0.9)
	assert.True(t, atLeastWithP(p-0.02, 100, 2) < 0.9)

	assert.Equal(t, 0.0, RequiredAdjacencyProbability(100, 0, 0.9))
	assert.Equal(t, 1.0, RequiredAdjacencyProbability(5, 5, 0.9))
}

func TestExpectedNeighborsAndIsolation(t *testing.T) {
	exp := ExpectedNeighbors(26, testArea, 60)
	assert.InDelta(t, 0.2827, exp, 1e-3)
	assert.InDelta(t, math.Exp(-exp), IsolationProbability(26, testArea, 60), 1e-12)

	s := DeploymentStats(26, testArea, 60)
	assert.Equal(t, 26, s.Nodes)
	assert.InDelta(t, 1000.0, s.SideM, 1e-9)
	assert.InDelta(t, 26.0/testArea, s.Density, 1e-15)
	assert.InDelta(t, exp, s.ExpectedNeighbors, 1e-12)
}

func TestProfileAt(t *testing.T) {
	tx, phi := center()
	prof := ProfileAt(tx, phi, 60, 20, testArea, 5)

	assert.InDelta(t, 500, prof.X, 1e-9)
	assert.InDelta(t, 500, prof.Y, 1e-9)
	assert.Len(t, prof.Exactly, 5)
	assert.Len(t, prof.AtLeast, 5)
	assert.True(t, prof.AtLeast[1] >= prof.AtLeast[5])
	assert.InDelta(t, prof.BaseProbability*19, prof.ExpectedNeighbors, 1e-9)
}

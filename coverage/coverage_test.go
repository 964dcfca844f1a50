package coverage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wiless/vlib"
)

func TestEfficiencyConstant(t *testing.T) {
	assert.InDelta(t, 0.5545, Efficiency(), 0.001)

	// scale invariance
	for _, l := range []float64{10, 75.1, 200} {
		assert.InDelta(t, Efficiency(), SingleNodeEffective(l)/Circular(l), 1e-12)
	}
}

func TestCornerAndEdgeTerms(t *testing.T) {
	l := 75.1
	s1 := CornerArea(l)
	s2 := EdgeOverlapArea(l)

	assert.InDelta(t, (1-math.Pi/4)*l*l, s1, 1e-9)
	assert.True(t, s1 > 0 && s2 > 0)
	assert.True(t, s1 < Circular(l) && s2 < Circular(l))
}

func TestFourNodeEffective(t *testing.T) {
	area := FourNodeEffective(75.1)
	assert.InDelta(t, 44800, area, 4480)

	// the four-node square never covers more than its own side^2
	assert.True(t, area < 9*75.1*75.1)
}

func TestMinimumNodes(t *testing.T) {
	want := map[float64]int{
		50:  230,
		75:  103,
		100: 58,
		150: 26,
	}
	for l, ref := range want {
		n, ok := MinimumNodes(1e6, l)
		assert.True(t, ok)
		assert.Equal(t, ref, n, "l=%v", l)
		assert.True(t, float64(n)*SingleNodeEffective(l) >= 1e6)
	}

	// longer reach never needs more nodes
	prev := math.MaxInt32
	for _, l := range []float64{50, 75, 100, 150} {
		n, _ := MinimumNodes(1e6, l)
		assert.True(t, n <= prev)
		prev = n
	}
}

func TestMinimumNodesDegenerate(t *testing.T) {
	_, ok := MinimumNodes(1e6, 0)
	assert.False(t, ok)
	_, ok = MinimumNodes(1e6, -5)
	assert.False(t, ok)
	_, ok = MinimumNodes(1e6, math.NaN())
	assert.False(t, ok)
	_, ok = MinimumNodes(0, 75)
	assert.False(t, ok)
}

func TestLensOverlap(t *testing.T) {
	// disjoint
	assert.Equal(t, 0.0, LensOverlap(10, 10, 25))
	// contained
	assert.InDelta(t, math.Pi*25, LensOverlap(20, 5, 2), 1e-9)
	// coincident equal circles overlap fully
	assert.InDelta(t, math.Pi*100, LensOverlap(10, 10, 0), 1e-9)
	// half spacing overlap is between 0 and a full circle
	a := LensOverlap(10, 10, 10)
	assert.True(t, a > 0 && a < math.Pi*100)
}

func TestCurves(t *testing.T) {
	ls := vlib.VectorF{50, 75, 100, 150}
	eff := SingleNodeCurve(ls)
	assert.Len(t, eff, 4)
	for i := 1; i < len(eff); i++ {
		assert.True(t, eff[i] > eff[i-1])
	}

	ns := MinimumNodeCurve(1e6, ls)
	assert.Equal(t, vlib.VectorI{230, 103, 58, 26}, ns)
}

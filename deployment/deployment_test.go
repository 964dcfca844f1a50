package deployment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wiless/uvnlos/coverage"
)

func TestNewFourNodeSquare(t *testing.T) {
	nw := NewFourNodeSquare(75.1)

	assert.Len(t, nw.Nodes, 4)
	assert.InDelta(t, 3*75.1, nw.SideM, 1e-9)
	assert.Equal(t, FourNodeSquare, nw.Layout)

	// opposite corners sit a diagonal apart
	d := nw.Nodes[0].Location.Distance2DFrom(nw.Nodes[2].Location)
	assert.InDelta(t, nw.SideM*1.41421356, d, 1e-6)
}

func TestNewGrid(t *testing.T) {
	nw := NewGrid(1e6, 100)

	want, _ := coverage.MinimumNodes(1e6, 100)
	assert.Len(t, nw.Nodes, want)
	assert.Equal(t, Grid, nw.Layout)

	for _, n := range nw.Nodes {
		assert.True(t, n.Location.X >= 0 && n.Location.X <= nw.SideM)
		assert.True(t, n.Location.Y >= 0 && n.Location.Y <= nw.SideM)
	}
}

func TestNewGridDegenerate(t *testing.T) {
	nw := NewGrid(1e6, 0)
	assert.Empty(t, nw.Nodes)
}

func TestNewUniformRandom(t *testing.T) {
	nw := NewUniformRandom(50, 1e6, 60)

	assert.Len(t, nw.Nodes, 50)
	for _, n := range nw.Nodes {
		assert.True(t, n.Location.X >= 0 && n.Location.X <= 1000)
		assert.True(t, n.Location.Y >= 0 && n.Location.Y <= 1000)
	}
}

func lineNetwork(spacing, l float64, count int) Network {
	nw := Network{SideM: spacing * float64(count), CommDistance: l, Layout: Grid}
	for i := 0; i < count; i++ {
		n := Node{ID: i, Active: true}
		n.Location.SetXY(float64(i)*spacing, 0)
		nw.Nodes = append(nw.Nodes, n)
	}
	return nw
}

func TestNeighbors(t *testing.T) {
	// five nodes on a line, 50 m apart, 60 m reach: chain topology
	nw := lineNetwork(50, 60, 5)

	assert.Equal(t, []int{1}, []int(nw.Neighbors(0)))
	assert.Equal(t, []int{1, 3}, []int(nw.Neighbors(2)))
	assert.Empty(t, nw.Neighbors(99))
}

func TestConnectivityStats(t *testing.T) {
	nw := lineNetwork(50, 60, 5)
	s := nw.ConnectivityStats()

	assert.Equal(t, 1, s.MinNeighbors)
	assert.Equal(t, 2, s.MaxNeighbors)
	assert.InDelta(t, 8.0/5.0, s.AvgNeighbors, 1e-9)
	assert.Empty(t, s.Isolated)
}

func TestFail(t *testing.T) {
	nw := lineNetwork(50, 60, 5)
	nw.Fail(1)

	assert.Equal(t, 4, nw.ActiveCount())
	assert.Empty(t, nw.Neighbors(0))

	s := nw.ConnectivityStats()
	assert.Equal(t, []int{0}, []int(s.Isolated))
	assert.Equal(t, 0, s.MinNeighbors)
}

func TestDecodeDropParameter(t *testing.T) {
	d, err := DecodeDropParameter(map[string]interface{}{
		"aream2":       1e6,
		"commdistance": 75.1,
		"ncount":       300,
		"layout":       "Grid",
	})
	assert.NoError(t, err)
	assert.Equal(t, 300, d.NCount)
	assert.InDelta(t, 75.1, d.CommDistance, 1e-9)
}

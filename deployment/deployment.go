// Package deployment places UV nodes in a square region: the canonical
// four-node square, coverage-efficient grids and uniform random drops,
// with neighbor analysis over the resulting topology.
package deployment

import (
	"math"
	"math/rand"

	ms "github.com/mitchellh/mapstructure"

	"github.com/wiless/uvnlos/coverage"
	"github.com/wiless/vlib"
)

// Node is one UV transceiver of the deployment.
type Node struct {
	ID       int
	Location vlib.Location3D
	Meta     string
	Active   bool
}

// LayoutType identifies how a network was generated.
type LayoutType int

const (
	FourNodeSquare LayoutType = iota
	Grid
	UniformRandom
)

var layoutTypes = [...]string{
	"FourNodeSquare",
	"Grid",
	"UniformRandom",
}

func (l LayoutType) String() string {
	if int(l) >= len(layoutTypes) {
		return "Unknown-LayoutType"
	}
	return layoutTypes[l]
}

// Network is a set of placed nodes with the comm distance that links
// them.
type Network struct {
	Nodes        []Node
	SideM        float64
	CommDistance float64
	Layout       LayoutType
}

// DropParameter configures a deployment drop. Decodable from generic
// config maps.
type DropParameter struct {
	AreaM2       float64 `mapstructure:"aream2"`
	CommDistance float64 `mapstructure:"commdistance"`
	NCount       int     `mapstructure:"ncount"`
	Layout       string  `mapstructure:"layout"`
}

// DecodeDropParameter fills a DropParameter from a settings map.
func DecodeDropParameter(settings map[string]interface{}) (DropParameter, error) {
	var d DropParameter
	err := ms.Decode(settings, &d)
	return d, err
}

// NewFourNodeSquare places four nodes at the corners of a square of
// side 3l, the canonical unit of the coverage analysis.
func NewFourNodeSquare(l float64) Network {
	side := 3 * l
	nw := Network{
		SideM:        side,
		CommDistance: l,
		Layout:       FourNodeSquare,
	}
	corners := [][2]float64{{0, 0}, {side, 0}, {side, side}, {0, side}}
	for i, c := range corners {
		n := Node{ID: i, Active: true}
		n.Location.SetXY(c[0], c[1])
		nw.Nodes = append(nw.Nodes, n)
	}
	return nw
}

// NewGrid covers a square region of the given area with the minimum
// node count on a regular lattice spaced by the effective coverage.
func NewGrid(area, l float64) Network {
	side := math.Sqrt(area)
	nw := Network{
		SideM:        side,
		CommDistance: l,
		Layout:       Grid,
	}
	count, ok := coverage.MinimumNodes(area, l)
	if !ok {
		return nw
	}
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := int(math.Ceil(float64(count) / float64(cols)))
	dx := side / float64(cols)
	dy := side / float64(rows)

	id := 0
	for r := 0; r < rows && id < count; r++ {
		for c := 0; c < cols && id < count; c++ {
			n := Node{ID: id, Active: true}
			n.Location.SetXY((float64(c)+0.5)*dx, (float64(r)+0.5)*dy)
			nw.Nodes = append(nw.Nodes, n)
			id++
		}
	}
	return nw
}

// NewUniformRandom drops n nodes uniformly in a square region of the
// given area.
func NewUniformRandom(n int, area, l float64) Network {
	side := math.Sqrt(area)
	nw := Network{
		SideM:        side,
		CommDistance: l,
		Layout:       UniformRandom,
	}
	for i := 0; i < n; i++ {
		node := Node{ID: i, Active: true}
		node.Location.SetXY(rand.Float64()*side, rand.Float64()*side)
		nw.Nodes = append(nw.Nodes, node)
	}
	return nw
}

// Neighbors returns the IDs of the nodes within CommDistance of node i.
func (nw Network) Neighbors(i int) vlib.VectorI {
	var result vlib.VectorI
	if i < 0 || i >= len(nw.Nodes) {
		return result
	}
	src := nw.Nodes[i]
	for j, other := range nw.Nodes {
		if j == i || !other.Active {
			continue
		}
		if src.Location.Distance2DFrom(other.Location) <= nw.CommDistance {
			result = append(result, other.ID)
		}
	}
	return result
}

// Stats summarizes the neighbor structure of a deployment.
type Stats struct {
	MinNeighbors int
	MaxNeighbors int
	AvgNeighbors float64
	Isolated     vlib.VectorI
}

// ConnectivityStats scans all active nodes.
func (nw Network) ConnectivityStats() Stats {
	s := Stats{MinNeighbors: math.MaxInt32}
	active := 0
	total := 0
	for i, n := range nw.Nodes {
		if !n.Active {
			continue
		}
		active++
		deg := len(nw.Neighbors(i))
		total += deg
		if deg < s.MinNeighbors {
			s.MinNeighbors = deg
		}
		if deg > s.MaxNeighbors {
			s.MaxNeighbors = deg
		}
		if deg == 0 {
			s.Isolated = append(s.Isolated, n.ID)
		}
	}
	if active == 0 {
		s.MinNeighbors = 0
		return s
	}
	s.AvgNeighbors = float64(total) / float64(active)
	return s
}

// Fail deactivates the given node IDs, modelling node loss.
func (nw *Network) Fail(ids ...int) {
	for _, id := range ids {
		for i := range nw.Nodes {
			if nw.Nodes[i].ID == id {
				nw.Nodes[i].Active = false
			}
		}
	}
}

// ActiveCount returns the number of surviving nodes.
func (nw Network) ActiveCount() int {
	c := 0
	for _, n := range nw.Nodes {
		if n.Active {
			c++
		}
	}
	return c
}

package Euler2D

import (
	"fmt"
	"math"

	"github.com/notargets/gofd/types"
)

type BoundaryCondition struct {
	Type      types.BoundaryType
	WallSpeed float64 // Tangential wall velocity, reflective edges only
}

func (bc BoundaryCondition) String() string {
	if bc.Type == types.BC_Reflective && bc.WallSpeed != 0 {
		return fmt.Sprintf("%s(wall speed %v)", bc.Type, bc.WallSpeed)
	}
	return bc.Type.String()
}

// BoundarySpec is the condition on each edge of the grid, indexed by types.Edge.
type BoundarySpec struct {
	edges [4]BoundaryCondition
}

func NewBoundarySpec(west, east, south, north BoundaryCondition) (bs *BoundarySpec, err error) {
	edges := [4]BoundaryCondition{}
	edges[types.West], edges[types.East] = west, east
	edges[types.South], edges[types.North] = south, north
	for _, e := range types.Edges {
		bc := edges[e]
		switch {
		case !bc.Type.IsValid():
			err = NewConfigurationError("bc."+e.String(), "unknown boundary type %s", bc.Type)
		case math.IsNaN(bc.WallSpeed) || math.IsInf(bc.WallSpeed, 0):
			err = NewConfigurationError("bc."+e.String(), "wall speed must be finite, have %v", bc.WallSpeed)
		case bc.WallSpeed != 0 && bc.Type != types.BC_Reflective:
			err = NewConfigurationError("bc."+e.String(), "wall speed is only valid on a reflective edge")
		case (bc.Type == types.BC_Periodic) != (edges[e.Opposite()].Type == types.BC_Periodic):
			err = NewConfigurationError("bc."+e.String(), "periodic edges must be paired, opposite edge %s is %s",
				e.Opposite(), edges[e.Opposite()].Type)
		}
		if err != nil {
			return
		}
	}
	bs = &BoundarySpec{edges: edges}
	return
}

// NewUniformBoundarySpec uses one boundary type on all four edges.
func NewUniformBoundarySpec(bt types.BoundaryType) (bs *BoundarySpec, err error) {
	bc := BoundaryCondition{Type: bt}
	return NewBoundarySpec(bc, bc, bc, bc)
}

// ParseBoundarySpec builds a spec from boundary names keyed by edge name, with
// optional wall speeds keyed the same way.
func ParseBoundarySpec(names map[string]string, wallSpeedsO ...map[string]float64) (bs *BoundarySpec, err error) {
	var (
		edges [4]BoundaryCondition
		seen  [4]bool
	)
	for edgeName, bcName := range names {
		var (
			e  types.Edge
			bt types.BoundaryType
		)
		if e, err = types.ParseEdge(edgeName); err != nil {
			err = NewConfigurationError("bc", "%v", err)
			return
		}
		if bt, err = types.ParseBoundaryType(bcName); err != nil {
			err = NewConfigurationError("bc."+e.String(), "%v", err)
			return
		}
		edges[e].Type, seen[e] = bt, true
	}
	for _, e := range types.Edges {
		if !seen[e] {
			err = NewConfigurationError("bc."+e.String(), "missing boundary condition")
			return
		}
	}
	if len(wallSpeedsO) > 0 {
		for edgeName, speed := range wallSpeedsO[0] {
			var e types.Edge
			if e, err = types.ParseEdge(edgeName); err != nil {
				err = NewConfigurationError("wallSpeed", "%v", err)
				return
			}
			edges[e].WallSpeed = speed
		}
	}
	return NewBoundarySpec(edges[types.West], edges[types.East], edges[types.South], edges[types.North])
}

func (bs *BoundarySpec) Edge(e types.Edge) BoundaryCondition {
	return bs.edges[e]
}

func (bs *BoundarySpec) IsPeriodic(e types.Edge) bool {
	return bs.edges[e].Type == types.BC_Periodic
}

func (bs *BoundarySpec) String() string {
	return fmt.Sprintf("west: %s, east: %s, south: %s, north: %s",
		bs.edges[types.West], bs.edges[types.East], bs.edges[types.South], bs.edges[types.North])
}

/*
Apply fills every edge cell of q. West and East are set over all rows first, then
South and North over all columns, so the corner cells take the y boundary values.
Applying twice gives the same result as applying once.
*/
func (bs *BoundarySpec) Apply(g *Grid, q *State) {
	for j := 0; j < g.NyT; j++ {
		bs.applyX(g, q, types.West, j)
		bs.applyX(g, q, types.East, j)
	}
	for i := 0; i < g.NxT; i++ {
		bs.applyY(g, q, types.South, i)
		bs.applyY(g, q, types.North, i)
	}
}

func (bs *BoundarySpec) applyX(g *Grid, q *State, e types.Edge, j int) {
	var (
		edge, adj, wrap int
	)
	if e == types.West {
		edge, adj, wrap = g.Index(0, j), g.Index(1, j), g.Index(g.Nx, j)
	} else {
		edge, adj, wrap = g.Index(g.Nx+1, j), g.Index(g.Nx, j), g.Index(1, j)
	}
	bs.fill(q, bs.edges[e], edge, adj, wrap, 1, 2)
}

func (bs *BoundarySpec) applyY(g *Grid, q *State, e types.Edge, i int) {
	var (
		edge, adj, wrap int
	)
	if e == types.South {
		edge, adj, wrap = g.Index(i, 0), g.Index(i, 1), g.Index(i, g.Ny)
	} else {
		edge, adj, wrap = g.Index(i, g.Ny+1), g.Index(i, g.Ny), g.Index(i, 1)
	}
	bs.fill(q, bs.edges[e], edge, adj, wrap, 2, 1)
}

// fill sets storage index edge from the adjacent interior cell adj, or from wrap
// when periodic. normal and tangent index the momentum components.
func (bs *BoundarySpec) fill(q *State, bc BoundaryCondition, edge, adj, wrap, normal, tangent int) {
	Q := q.Q
	switch bc.Type {
	case types.BC_Periodic:
		for n := 0; n < 4; n++ {
			Q[n].DataP[edge] = Q[n].DataP[wrap]
		}
	case types.BC_Extrapolated:
		for n := 0; n < 4; n++ {
			Q[n].DataP[edge] = Q[n].DataP[adj]
		}
	case types.BC_Reflective:
		rho := Q[0].DataP[adj]
		Q[0].DataP[edge] = rho
		Q[3].DataP[edge] = Q[3].DataP[adj]
		Q[normal].DataP[edge] = 0
		if bc.WallSpeed != 0 {
			Q[tangent].DataP[edge] = rho * bc.WallSpeed
		} else {
			Q[tangent].DataP[edge] = Q[tangent].DataP[adj]
		}
	}
}

package Euler2D

import (
	"fmt"

	"github.com/notargets/gofd/utils"
)

// State is the conserved solution (rho, rhoU, rhoV, E), each NyT x NxT.
type State struct {
	Q [4]utils.Matrix
}

var stateFieldNames = [4]string{"rho", "rhoU", "rhoV", "E"}

func NewState(g *Grid) (q *State) {
	q = &State{}
	for n := 0; n < 4; n++ {
		q.Q[n] = utils.NewMatrix(g.NyT, g.NxT)
	}
	return
}

// CheckShape verifies that every conserved array has the grid storage shape.
func (q *State) CheckShape(g *Grid) (err error) {
	for n := 0; n < 4; n++ {
		var nr, nc int
		if !q.Q[n].IsEmpty() {
			nr, nc = q.Q[n].Dims()
		}
		if nr != g.NyT || nc != g.NxT {
			err = &BoundsError{
				Field:    stateFieldNames[n],
				Rows:     nr,
				Cols:     nc,
				WantRows: g.NyT,
				WantCols: g.NxT,
			}
			return
		}
	}
	return
}

func (q *State) Copy() (R *State) {
	R = &State{}
	for n := 0; n < 4; n++ {
		R.Q[n] = q.Q[n].Copy()
	}
	return
}

func (q *State) CopyFrom(src *State) {
	for n := 0; n < 4; n++ {
		q.Q[n].CopyFrom(src.Q[n])
	}
}

// Cell returns the conserved variables at storage index (i,j).
func (q *State) Cell(g *Grid, i, j int) (Q [4]float64) {
	ind := g.Index(i, j)
	for n := 0; n < 4; n++ {
		Q[n] = q.Q[n].DataP[ind]
	}
	return
}

func (q *State) SetCell(g *Grid, i, j int, Q [4]float64) {
	ind := g.Index(i, j)
	for n := 0; n < 4; n++ {
		q.Q[n].DataP[ind] = Q[n]
	}
}

// Validate returns the first storage cell, in row order, that is not physical.
func (q *State) Validate(g *Grid, gas GasModel) (err error) {
	for j := 0; j < g.NyT; j++ {
		if err = q.validateRows(g, gas, j, j+1); err != nil {
			return
		}
	}
	return
}

func (q *State) validateRows(g *Grid, gas GasModel, jMin, jMax int) (err error) {
	for j := jMin; j < jMax; j++ {
		for i := 0; i < g.NxT; i++ {
			ind := g.Index(i, j)
			if _, err = gas.Pressure(q.Q[0].DataP[ind], q.Q[1].DataP[ind],
				q.Q[2].DataP[ind], q.Q[3].DataP[ind]); err != nil {
				return locate(err, i, j)
			}
		}
	}
	return
}

// Primitive holds velocity, pressure and temperature (p/rho) on the grid storage.
type Primitive struct {
	U, V, P, T utils.Matrix
}

func (q *State) Primitive(g *Grid, gas GasModel) (pr *Primitive, err error) {
	if err = q.CheckShape(g); err != nil {
		return
	}
	pr = &Primitive{
		U: utils.NewMatrix(g.NyT, g.NxT),
		V: utils.NewMatrix(g.NyT, g.NxT),
		P: utils.NewMatrix(g.NyT, g.NxT),
		T: utils.NewMatrix(g.NyT, g.NxT),
	}
	for ind := range q.Q[0].DataP {
		rho, rhoU, rhoV, E := q.Q[0].DataP[ind], q.Q[1].DataP[ind], q.Q[2].DataP[ind], q.Q[3].DataP[ind]
		var p float64
		if p, err = gas.Pressure(rho, rhoU, rhoV, E); err != nil {
			pr = nil
			err = locate(err, ind%g.NxT, ind/g.NxT)
			return
		}
		pr.U.DataP[ind] = rhoU / rho
		pr.V.DataP[ind] = rhoV / rho
		pr.P.DataP[ind] = p
		pr.T.DataP[ind] = p / rho
	}
	return
}

// Totals integrates mass, momentum and energy over the interior cells.
func (q *State) Totals(g *Grid) (tot [4]float64) {
	for n := 0; n < 4; n++ {
		tot[n] = q.Q[n].SubMatrixSum(1, g.Ny+1, 1, g.Nx+1) * g.CellArea()
	}
	return
}

// PressureProfile returns interior x coordinates and pressure along interior row j.
func (q *State) PressureProfile(g *Grid, gas GasModel, j int) (X, P []float64, err error) {
	if j < 1 || j > g.Ny {
		err = fmt.Errorf("row %d is outside the interior rows [1,%d]", j, g.Ny)
		return
	}
	X = g.XCoords()
	P = make([]float64, g.Nx)
	for i := 1; i <= g.Nx; i++ {
		Q := q.Cell(g, i, j)
		if P[i-1], err = gas.Pressure(Q[0], Q[1], Q[2], Q[3]); err != nil {
			err = locate(err, i, j)
			return
		}
	}
	return
}

// FlowField evaluates pf on the interior cells. The result is Ny x Nx, row j-1 holds
// interior row j.
func (q *State) FlowField(g *Grid, gas GasModel, pf FlowFunction) (F utils.Matrix, err error) {
	if err = q.CheckShape(g); err != nil {
		return
	}
	F = utils.NewMatrix(g.Ny, g.Nx)
	for j := 1; j <= g.Ny; j++ {
		for i := 1; i <= g.Nx; i++ {
			Q := q.Cell(g, i, j)
			if _, err = gas.Pressure(Q[0], Q[1], Q[2], Q[3]); err != nil {
				F, err = utils.Matrix{}, locate(err, i, j)
				return
			}
			F.DataP[(i-1)+(j-1)*g.Nx] = gas.GetFlowFunctionQQ(Q, pf)
		}
	}
	return
}

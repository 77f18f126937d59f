package Euler2D

import (
	"github.com/notargets/gofd/utils"
)

// FluxCalc returns the x and y inviscid fluxes of one cell.
func (gas GasModel) FluxCalc(rho, rhoU, rhoV, E float64) (Fx, Fy [4]float64, err error) {
	var (
		p    float64
		u, v float64
	)
	// From https://www.theoretical-physics.net/dev/fluid-dynamics/euler.html
	if p, err = gas.Pressure(rho, rhoU, rhoV, E); err != nil {
		return
	}
	u, v = rhoU/rho, rhoV/rho
	Fx, Fy =
		[4]float64{rhoU, rhoU*u + p, rhoU * v, u * (E + p)},
		[4]float64{rhoV, rhoV * u, rhoV*v + p, v * (E + p)}
	return
}

// FluxField holds cell centered fluxes and pressure over the full storage.
type FluxField struct {
	F, G [4]utils.Matrix
	P    utils.Matrix
}

func NewFluxField(g *Grid) (ff *FluxField) {
	ff = &FluxField{P: utils.NewMatrix(g.NyT, g.NxT)}
	for n := 0; n < 4; n++ {
		ff.F[n] = utils.NewMatrix(g.NyT, g.NxT)
		ff.G[n] = utils.NewMatrix(g.NyT, g.NxT)
	}
	return
}

// Compute fills storage rows [jMin,jMax). The error carries the first failing cell.
func (ff *FluxField) Compute(g *Grid, gas GasModel, q *State, jMin, jMax int) (err error) {
	var (
		Q      = q.Q
		Fx, Fy [4]float64
		p      float64
		ind    int
	)
	for j := jMin; j < jMax; j++ {
		for i := 0; i < g.NxT; i++ {
			ind = g.Index(i, j)
			rho, rhoU, rhoV, E := Q[0].DataP[ind], Q[1].DataP[ind], Q[2].DataP[ind], Q[3].DataP[ind]
			if p, err = gas.Pressure(rho, rhoU, rhoV, E); err != nil {
				return locate(err, i, j)
			}
			if Fx, Fy, err = gas.FluxCalc(rho, rhoU, rhoV, E); err != nil {
				return locate(err, i, j)
			}
			ff.P.DataP[ind] = p
			for n := 0; n < 4; n++ {
				ff.F[n].DataP[ind] = Fx[n]
				ff.G[n].DataP[ind] = Fy[n]
			}
		}
	}
	return
}

// ForwardDivergence is (F[i+1]-F[i])/Dx + (G[j+1]-G[j])/Dy at interior cell (i,j).
func (ff *FluxField) ForwardDivergence(g *Grid, n, i, j int) float64 {
	var (
		ind = g.Index(i, j)
		F   = ff.F[n].DataP
		G   = ff.G[n].DataP
	)
	return (F[ind+1]-F[ind])/g.Dx + (G[ind+g.NxT]-G[ind])/g.Dy
}

// BackwardDivergence is (F[i]-F[i-1])/Dx + (G[j]-G[j-1])/Dy at interior cell (i,j).
func (ff *FluxField) BackwardDivergence(g *Grid, n, i, j int) float64 {
	var (
		ind = g.Index(i, j)
		F   = ff.F[n].DataP
		G   = ff.G[n].DataP
	)
	return (F[ind]-F[ind-1])/g.Dx + (G[ind]-G[ind-g.NxT])/g.Dy
}

func locate(err error, i, j int) error {
	if nb, ok := err.(*NumericalBreakdownError); ok {
		nb.I, nb.J = i, j
	}
	return err
}

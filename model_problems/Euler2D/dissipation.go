package Euler2D

import (
	"math"

	"github.com/notargets/gofd/types"
	"github.com/notargets/gofd/utils"
)

/*
ArtificialViscosity is a pressure switched second difference added to every
conserved variable:

	nu[i]    = |p[i+1] - 2p[i] + p[i-1]| / (p[i+1] + 2p[i] + p[i-1])
	eps[i+½] = C * max(nu[i], nu[i+1])
	D[i]     = eps[i+½]*(q[i+1]-q[i]) - eps[i-½]*(q[i]-q[i-1])

with Cx along x and Cy along y. The increment telescopes, so it adds nothing to the
interior totals when both edges of an axis are periodic.
*/
type ArtificialViscosity struct {
	Cx, Cy   float64
	NuX, NuY utils.Matrix // Sensors on the grid storage
	D        [4]utils.Matrix
	pm       *utils.PartitionMap // Over interior rows
}

func NewArtificialViscosity(g *Grid, Cx, Cy float64, ParallelDegreeO ...int) (av *ArtificialViscosity) {
	var (
		NP = 1
	)
	if len(ParallelDegreeO) > 0 {
		NP = ParallelDegreeO[0]
	}
	av = &ArtificialViscosity{
		Cx:  Cx,
		Cy:  Cy,
		NuX: utils.NewMatrix(g.NyT, g.NxT),
		NuY: utils.NewMatrix(g.NyT, g.NxT),
		pm:  utils.NewPartitionMap(NP, g.Ny),
	}
	for n := 0; n < 4; n++ {
		av.D[n] = utils.NewMatrix(g.NyT, g.NxT)
	}
	return
}

// Compute fills av.D on the interior cells from q and its pressure P. Both must
// have their edge cells set.
func (av *ArtificialViscosity) Compute(g *Grid, q *State, P utils.Matrix, bc *BoundarySpec) {
	if av.Cx == 0 && av.Cy == 0 {
		for n := 0; n < 4; n++ {
			av.D[n].Fill(0)
		}
		return
	}
	av.pm.Run(func(np, kMin, kMax int) {
		av.sensors(g, P, kMin+1, kMax+1)
	})
	av.fillSensorEdges(g, bc)
	av.pm.Run(func(np, kMin, kMax int) {
		av.increment(g, q, kMin+1, kMax+1)
	})
}

func (av *ArtificialViscosity) sensors(g *Grid, P utils.Matrix, jMin, jMax int) {
	var (
		p   = P.DataP
		sw  = g.NxT
		ind int
	)
	for j := jMin; j < jMax; j++ {
		for i := 1; i <= g.Nx; i++ {
			ind = g.Index(i, j)
			av.NuX.DataP[ind] = switchPressure(p[ind-1], p[ind], p[ind+1])
			av.NuY.DataP[ind] = switchPressure(p[ind-sw], p[ind], p[ind+sw])
		}
	}
}

func switchPressure(pm, p0, pp float64) float64 {
	return math.Abs(pp-2.*p0+pm) / (pp + 2.*p0 + pm)
}

// fillSensorEdges wraps the sensor across periodic edges and copies the adjacent
// interior value elsewhere.
func (av *ArtificialViscosity) fillSensorEdges(g *Grid, bc *BoundarySpec) {
	var (
		nx, ny = av.NuX.DataP, av.NuY.DataP
	)
	for j := 1; j <= g.Ny; j++ {
		if bc.IsPeriodic(types.West) {
			nx[g.Index(0, j)] = nx[g.Index(g.Nx, j)]
			nx[g.Index(g.Nx+1, j)] = nx[g.Index(1, j)]
		} else {
			nx[g.Index(0, j)] = nx[g.Index(1, j)]
			nx[g.Index(g.Nx+1, j)] = nx[g.Index(g.Nx, j)]
		}
	}
	for i := 1; i <= g.Nx; i++ {
		if bc.IsPeriodic(types.South) {
			ny[g.Index(i, 0)] = ny[g.Index(i, g.Ny)]
			ny[g.Index(i, g.Ny+1)] = ny[g.Index(i, 1)]
		} else {
			ny[g.Index(i, 0)] = ny[g.Index(i, 1)]
			ny[g.Index(i, g.Ny+1)] = ny[g.Index(i, g.Ny)]
		}
	}
}

func (av *ArtificialViscosity) increment(g *Grid, q *State, jMin, jMax int) {
	var (
		nx, ny = av.NuX.DataP, av.NuY.DataP
		sw     = g.NxT
	)
	for j := jMin; j < jMax; j++ {
		for i := 1; i <= g.Nx; i++ {
			var (
				ind        = g.Index(i, j)
				epsE, epsW = av.Cx * math.Max(nx[ind], nx[ind+1]), av.Cx * math.Max(nx[ind-1], nx[ind])
				epsN, epsS = av.Cy * math.Max(ny[ind], ny[ind+sw]), av.Cy * math.Max(ny[ind-sw], ny[ind])
			)
			for n := 0; n < 4; n++ {
				Q := q.Q[n].DataP
				av.D[n].DataP[ind] = epsE*(Q[ind+1]-Q[ind]) - epsW*(Q[ind]-Q[ind-1]) +
					epsN*(Q[ind+sw]-Q[ind]) - epsS*(Q[ind]-Q[ind-sw])
			}
		}
	}
}

package Euler2D

import (
	"math"
)

/*
Grid is a uniform cell centered grid with one layer of edge (ghost) cells on each
side. Storage is NyT x NxT, row j and column i, with interior cells at
i = 1..Nx, j = 1..Ny. A one dimensional problem uses Ny = 1.
*/
type Grid struct {
	Nx, Ny   int     // Interior cell counts
	NxT, NyT int     // Storage dimensions including edge cells
	Lx, Ly   float64 // Physical extents of the interior
	X0, Y0   float64 // Physical location of the lower left corner of the interior
	Dx, Dy   float64
}

func NewGrid(Nx, Ny int, Lx, Ly float64, originO ...float64) (g *Grid, err error) {
	var (
		X0, Y0 float64
	)
	if len(originO) > 0 {
		X0 = originO[0]
	}
	if len(originO) > 1 {
		Y0 = originO[1]
	}
	switch {
	case Nx < 1 || Ny < 1:
		err = NewConfigurationError("grid", "interior cell counts must be >= 1, have Nx=%d, Ny=%d", Nx, Ny)
	case !(Lx > 0) || !(Ly > 0) || math.IsInf(Lx, 0) || math.IsInf(Ly, 0):
		err = NewConfigurationError("grid", "extents must be positive and finite, have Lx=%v, Ly=%v", Lx, Ly)
	case math.IsNaN(X0) || math.IsNaN(Y0) || math.IsInf(X0, 0) || math.IsInf(Y0, 0):
		err = NewConfigurationError("grid", "origin must be finite, have [%v,%v]", X0, Y0)
	}
	if err != nil {
		return
	}
	g = &Grid{
		Nx:  Nx,
		Ny:  Ny,
		NxT: Nx + 2,
		NyT: Ny + 2,
		Lx:  Lx,
		Ly:  Ly,
		X0:  X0,
		Y0:  Y0,
		Dx:  Lx / float64(Nx),
		Dy:  Ly / float64(Ny),
	}
	if !(g.Dx > 0) || !(g.Dy > 0) {
		err = NewConfigurationError("grid", "spacing must be positive, have Dx=%v, Dy=%v", g.Dx, g.Dy)
		g = nil
	}
	return
}

// X is the cell center coordinate of storage column i.
func (g *Grid) X(i int) float64 {
	return g.X0 + (float64(i)-0.5)*g.Dx
}

// Y is the cell center coordinate of storage row j.
func (g *Grid) Y(j int) float64 {
	return g.Y0 + (float64(j)-0.5)*g.Dy
}

// XCoords returns the interior cell center x coordinates.
func (g *Grid) XCoords() (X []float64) {
	X = make([]float64, g.Nx)
	for i := range X {
		X[i] = g.X(i + 1)
	}
	return
}

// YCoords returns the interior cell center y coordinates.
func (g *Grid) YCoords() (Y []float64) {
	Y = make([]float64, g.Ny)
	for j := range Y {
		Y[j] = g.Y(j + 1)
	}
	return
}

func (g *Grid) Index(i, j int) int {
	return i + j*g.NxT
}

func (g *Grid) CellArea() float64 {
	return g.Dx * g.Dy
}

func (g *Grid) MinSpacing() float64 {
	return math.Min(g.Dx, g.Dy)
}

// IsInterior reports whether storage index (i,j) is an interior cell.
func (g *Grid) IsInterior(i, j int) bool {
	return i >= 1 && i <= g.Nx && j >= 1 && j <= g.Ny
}

package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-major dense matrix. DataP aliases the backing storage of M, so
// element (i,j) is DataP[j+i*nc].
type Matrix struct {
	M     *mat.Dense
	DataP []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		data = dataO[0]
	} else {
		data = make([]float64, nr*nc)
	}
	R = Matrix{
		M:     mat.NewDense(nr, nc, data),
		DataP: data,
	}
	return
}

func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) IsEmpty() bool       { return m.M == nil }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) CopyFrom(A Matrix) Matrix { // Changes receiver
	if !m.SameDims(A) {
		nr, nc := m.Dims()
		nrA, ncA := A.Dims()
		panic(fmt.Errorf("dimension mismatch in CopyFrom: [%d,%d] <- [%d,%d]", nr, nc, nrA, ncA))
	}
	copy(m.DataP, A.DataP)
	return m
}

func (m Matrix) SameDims(A Matrix) bool {
	nr, nc := m.Dims()
	nrA, ncA := A.Dims()
	return nr == nrA && nc == ncA
}

func (m Matrix) Fill(val float64) Matrix { // Changes receiver
	for i := range m.DataP {
		m.DataP[i] = val
	}
	return m
}

func (m Matrix) Row(i int) []float64 { // Aliases receiver storage
	_, nc := m.Dims()
	return m.DataP[i*nc : (i+1)*nc]
}

func (m Matrix) Min() (min float64) {
	return floats.Min(m.DataP)
}

func (m Matrix) Max() (max float64) {
	return floats.Max(m.DataP)
}

// SubMatrixSum returns the sum over rows [i1,i2) and columns [j1,j2).
func (m Matrix) SubMatrixSum(i1, i2, j1, j2 int) (sum float64) {
	for i := i1; i < i2; i++ {
		sum += floats.Sum(m.Row(i)[j1:j2])
	}
	return
}

// MaxAbsDiff returns the largest absolute elementwise difference between m and A.
func (m Matrix) MaxAbsDiff(A Matrix) (d float64) {
	for i, val := range m.DataP {
		d = math.Max(d, math.Abs(val-A.DataP[i]))
	}
	return
}

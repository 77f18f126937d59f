package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	A := NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	nr, nc := A.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 3, nc)
	assert.Equal(t, 6., A.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, A.Row(1))
	// DataP aliases the dense storage
	A.M.Set(0, 1, 7)
	assert.Equal(t, 7., A.DataP[1])
	A.Row(1)[0] = -4
	assert.Equal(t, -4., A.At(1, 0))
	assert.Equal(t, -4., A.Min())
	assert.Equal(t, 7., A.Max())
	assert.Equal(t, 7.+3.+5.+6., A.SubMatrixSum(0, 2, 1, 3))

	B := A.Copy()
	B.DataP[0] = -1
	assert.Equal(t, 1., A.DataP[0])
	assert.Equal(t, 2., A.MaxAbsDiff(B))

	C := NewMatrix(2, 3).Fill(0.5)
	assert.Equal(t, 0.5, C.At(1, 1))
	C.CopyFrom(A)
	assert.Equal(t, A.DataP, C.DataP)
	assert.False(t, C.IsEmpty())
	assert.True(t, Matrix{}.IsEmpty())
	assert.Panics(t, func() { C.CopyFrom(NewMatrix(3, 2)) })
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.NotEmpty(t, GetMemUsage())
}

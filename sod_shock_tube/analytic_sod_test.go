package sod_shock_tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOD(t *testing.T) {
	sod := NewSOD(0.1)
	// Canonical values from Toro, table 4.2 (test 1)
	assert.InDelta(t, 0.30313, sod.PPost, 0.00001)
	assert.InDelta(t, 0.92745, sod.UPost, 0.00001)
	assert.InDelta(t, 0.42632, sod.RhoMiddle, 0.00001)
	assert.InDelta(t, 0.26557, sod.RhoPost, 0.00001)
	assert.True(t, math.Abs(sod.X4-0.6752) < 0.0001)
	assert.True(t, sod.X1 < sod.X2 && sod.X2 < sod.X3 && sod.X3 < sod.X4)
	sod = NewSOD(0.2)
	assert.True(t, math.Abs(sod.X4-0.8504) < 0.0001)
	assert.InDelta(t, 0.2634, sod.X1, 0.0001)
	assert.InDelta(t, 0.4859, sod.X2, 0.0001)
	assert.InDelta(t, 0.6855, sod.X3, 0.0001)

	X, Rho, P, RhoU, E := sod.Get()
	require.Equal(t, len(X), len(Rho))
	require.Equal(t, len(X), len(P))
	require.Equal(t, len(X), len(RhoU))
	require.Equal(t, len(X), len(E))
	assert.Equal(t, 0., X[0])
	assert.Equal(t, 1., X[len(X)-1])
	for i := 1; i < len(X); i++ {
		assert.True(t, X[i] >= X[i-1])
		// Density never increases from left to right in the Sod problem
		assert.True(t, Rho[i] <= Rho[i-1]+1.e-12)
	}
	assert.Equal(t, 1., Rho[0])
	assert.Equal(t, 0.125, Rho[len(Rho)-1])
	assert.InDelta(t, 1/0.4, E[0], 1.e-12)

	// The fan joins continuously to the plateau states
	rho, u, p := sod.Sample(sod.X2 - 1.e-9)
	assert.InDelta(t, sod.RhoMiddle, rho, 1.e-6)
	assert.InDelta(t, sod.UPost, u, 1.e-6)
	assert.InDelta(t, sod.PPost, p, 1.e-6)
	rho, u, _ = sod.Sample(sod.X1 + 1.e-9)
	assert.InDelta(t, 1., rho, 1.e-6)
	assert.InDelta(t, 0., u, 1.e-6)
}

func TestSODParams(t *testing.T) {
	sp := DefaultSODParams()
	sp.X0 = 0.3
	sod := NewSOD(0.2, sp)
	// Moving the diaphragm translates the solution
	assert.InDelta(t, 0.8504-0.2, sod.X4, 0.0001)

	bad := DefaultSODParams()
	bad.PL = 0.05
	_, err := NewSODWithError(0.1, bad)
	assert.Error(t, err)
	bad = DefaultSODParams()
	bad.X0 = 2
	_, err = NewSODWithError(0.1, bad)
	assert.Error(t, err)
	_, err = NewSODWithError(0, DefaultSODParams())
	assert.Error(t, err)
	assert.Panics(t, func() { NewSOD(-1) })
}

package Euler2D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGasModel(t *testing.T) {
	{ // Gamma must exceed one
		for _, gamma := range []float64{1, 0.5, math.NaN(), math.Inf(1)} {
			_, err := NewGasModel(gamma)
			assert.True(t, errors.Is(err, ErrConfiguration))
		}
	}
	gas, err := NewGasModel(1.4)
	require.NoError(t, err)
	Q := gas.ConsFromPrim(1.2, 0.3, -0.4, 2.5)
	{ // Round trip through the conserved variables
		p, err := gas.Pressure(Q[0], Q[1], Q[2], Q[3])
		require.NoError(t, err)
		assert.InDelta(t, 2.5, p, 1.e-14)
		assert.InDelta(t, 0.3, gas.GetFlowFunctionQQ(Q, XVelocity), 1.e-15)
		assert.InDelta(t, -0.4, gas.GetFlowFunctionQQ(Q, YVelocity), 1.e-15)
		assert.InDelta(t, 0.5, gas.GetFlowFunctionQQ(Q, Velocity), 1.e-15)
		assert.InDelta(t, 2.5, gas.GetFlowFunctionQQ(Q, StaticPressure), 1.e-14)
		assert.InDelta(t, 2.5/1.2, gas.GetFlowFunctionQQ(Q, Temperature), 1.e-14)
		c := math.Sqrt(1.4 * 2.5 / 1.2)
		assert.InDelta(t, c, gas.GetFlowFunctionQQ(Q, SoundSpeed), 1.e-14)
		assert.InDelta(t, c, gas.SoundSpeed(1.2, 2.5), 1.e-14)
		assert.InDelta(t, 0.5/c, gas.GetFlowFunctionQQ(Q, Mach), 1.e-14)
		assert.Equal(t, "Static Pressure", StaticPressure.String())
	}
	{ // Fluxes
		Fx, Fy, err := gas.FluxCalc(Q[0], Q[1], Q[2], Q[3])
		require.NoError(t, err)
		var (
			rho, u, v, p = 1.2, 0.3, -0.4, 2.5
			E            = Q[3]
		)
		assert.True(t, nearVec(Fx[:], []float64{rho * u, rho*u*u + p, rho * u * v, u * (E + p)}, 1.e-14))
		assert.True(t, nearVec(Fy[:], []float64{rho * v, rho * u * v, rho*v*v + p, v * (E + p)}, 1.e-14))
	}
	{ // Non-physical states are breakdowns
		cases := [][4]float64{
			{0, 0, 0, 1},            // zero density
			{-1, 0, 0, 1},           // negative density
			{1, 3, 0, 1},            // kinetic energy exceeds total
			{1, 0, 0, math.NaN()},   // NaN
			{1, math.Inf(1), 0, 10}, // Inf
		}
		for _, c := range cases {
			_, err := gas.Pressure(c[0], c[1], c[2], c[3])
			assert.True(t, errors.Is(err, ErrNumericalBreakdown), "%v", c)
			_, _, err = gas.FluxCalc(c[0], c[1], c[2], c[3])
			assert.True(t, errors.Is(err, ErrNumericalBreakdown), "%v", c)
		}
	}
}

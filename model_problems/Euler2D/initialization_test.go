package Euler2D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofd/model_problems/Euler2D/isentropic_vortex"
)

func TestInitType(t *testing.T) {
	for label, want := range map[string]InitType{
		"freestream": FREESTREAM, "ShockTube": SHOCKTUBE, "IVORTEX": IVORTEX, "shockvortex": SHOCKVORTEX,
	} {
		it, err := NewInitType(label)
		require.NoError(t, err)
		assert.Equal(t, want, it)
	}
	assert.Equal(t, "Shock Tube", SHOCKTUBE.Print())
	for _, label := range []string{"", "sod", "vortex"} {
		_, err := NewInitType(label)
		assert.True(t, errors.Is(err, ErrConfiguration), "%q", label)
	}
}

func TestInitializeShockTube(t *testing.T) {
	g, err := NewGrid(10, 2, 1., 0.2)
	require.NoError(t, err)
	gas, err := NewGasModel(1.4)
	require.NoError(t, err)
	{ // The diaphragm location is a parameter
		params := DefaultShockTubeParams()
		params.DiaphragmX = 0.3
		q, err := InitializeShockTube(g, gas, params)
		require.NoError(t, err)
		for j := 0; j < g.NyT; j++ {
			for i := 0; i < g.NxT; i++ {
				want := 1.
				if g.X(i) > 0.3 {
					want = 0.125
				}
				assert.Equal(t, want, q.Q[0].At(j, i))
			}
		}
		assert.InDelta(t, 1/0.4, q.Q[3].At(1, 3), 1.e-15)
		assert.InDelta(t, 0.1/0.4, q.Q[3].At(1, 4), 1.e-15)
	}
	{ // Bad parameters
		params := DefaultShockTubeParams()
		params.DiaphragmX = 1.5
		_, err := InitializeShockTube(g, gas, params)
		assert.True(t, errors.Is(err, ErrConfiguration))
		params = DefaultShockTubeParams()
		params.Right.P = 0
		_, err = InitializeShockTube(g, gas, params)
		assert.True(t, errors.Is(err, ErrConfiguration))
		_, err = InitializeFreestream(g, gas, -1, 0, 0, 1)
		assert.True(t, errors.Is(err, ErrConfiguration))
	}
}

func TestInitializeIVortexAt(t *testing.T) {
	g, err := NewGrid(20, 20, 10., 10., 0., -5.)
	require.NoError(t, err)
	iv := isentropic_vortex.NewIVortex(5, 5, 0, 1.4).SetPeriodic(10, 10)
	q0, err := InitializeIVortex(g, iv)
	require.NoError(t, err)
	{ // After one period the exact solution is the initial state
		q1, err := InitializeIVortexAt(g, iv, 10)
		require.NoError(t, err)
		for n := 0; n < 4; n++ {
			assert.True(t, q0.Q[n].MaxAbsDiff(q1.Q[n]) < 1.e-12)
		}
	}
	{ // Half way through, the core sits at the periodic image across the domain
		q5, err := InitializeIVortexAt(g, iv, 5)
		require.NoError(t, err)
		// Core at x = 0 (= 10), cell 1 center is x = 0.25
		assert.True(t, q5.Q[0].At(10, 1) < 0.6)
		assert.True(t, q0.Q[0].At(10, 1) > 0.99)
	}
	_, err = InitializeIVortexAt(g, nil, 1)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestRankineHugoniot(t *testing.T) {
	gas, err := NewGasModel(1.4)
	require.NoError(t, err)
	up, down, err := RankineHugoniot(gas, 2, 1, 1/1.4)
	require.NoError(t, err)
	assert.InDelta(t, 2., up.U, 1.e-14)
	assert.InDelta(t, 8./3., down.Rho, 1.e-14)
	assert.InDelta(t, 4.5/1.4, down.P, 1.e-14)
	{ // Mass, momentum and energy fluxes are continuous across the shock
		flux := func(pv PrimitiveValues) (Fx [4]float64) {
			Q := gas.ConsFromPrim(pv.Rho, pv.U, pv.V, pv.P)
			Fx, _, err = gas.FluxCalc(Q[0], Q[1], Q[2], Q[3])
			require.NoError(t, err)
			return
		}
		fUp, fDown := flux(up), flux(down)
		assert.True(t, nearVec(fUp[:], fDown[:], 1.e-13))
	}
	{ // Downstream is subsonic
		cDown := gas.SoundSpeed(down.Rho, down.P)
		assert.True(t, down.U/cDown < 1)
	}
	_, _, err = RankineHugoniot(gas, 0.9, 1, 1)
	assert.True(t, errors.Is(err, ErrConfiguration))

	g, err := NewGrid(20, 4, 2., 1., -1., 0.)
	require.NoError(t, err)
	q, err := InitializeStationaryShock(g, gas, StationaryShockParams{Mach: 2, ShockX: 0, Rho: 1, P: 1 / 1.4})
	require.NoError(t, err)
	assert.InDelta(t, 2., q.Q[1].At(2, 5), 1.e-14)
	assert.InDelta(t, 2., q.Q[1].At(2, 15), 1.e-13)
	assert.InDelta(t, 8./3., q.Q[0].At(2, 15), 1.e-14)
}

func TestInjectVortex(t *testing.T) {
	g, err := NewGrid(40, 40, 10., 10., 0., -5.)
	require.NoError(t, err)
	gas, err := NewGasModel(1.4)
	require.NoError(t, err)
	{ // Injecting into the unit freestream reproduces the analytic vortex
		var (
			iv = isentropic_vortex.NewIVortex(5, 5, 0, 1.4, 0)
		)
		q, err := InitializeFreestream(g, gas, 1, 0, 0, 1)
		require.NoError(t, err)
		require.NoError(t, InjectVortex(q, g, gas, iv))
		exact, err := InitializeIVortex(g, iv)
		require.NoError(t, err)
		for n := 0; n < 4; n++ {
			assert.True(t, q.Q[n].MaxAbsDiff(exact.Q[n]) < 1.e-13, "variable %d", n)
		}
	}
	{ // The injected state is isentropic with the base state, p/rho^gamma is unchanged
		var (
			iv = isentropic_vortex.NewIVortex(1, 3, 1, 1.4, 0)
		)
		q, err := InitializeFreestream(g, gas, 1, 1.2, 0, 1/1.4)
		require.NoError(t, err)
		require.NoError(t, InjectVortex(q, g, gas, iv))
		pr, err := q.Primitive(g, gas)
		require.NoError(t, err)
		s0 := (1 / 1.4) / math.Pow(1, 1.4)
		for ind, rho := range q.Q[0].DataP {
			assert.InDelta(t, s0, pr.P.DataP[ind]/math.Pow(rho, 1.4), 1.e-12)
		}
		ind := g.Index(13, 20)
		assert.True(t, q.Q[0].DataP[ind] < 1)
	}
	{ // A vortex too strong for the local temperature fails and leaves q untouched
		var (
			iv = isentropic_vortex.NewIVortex(20, 5, 0, 1.4, 0)
		)
		q, err := InitializeFreestream(g, gas, 1, 0, 0, 1)
		require.NoError(t, err)
		before := q.Copy()
		err = InjectVortex(q, g, gas, iv)
		assert.True(t, errors.Is(err, ErrNumericalBreakdown))
		assert.Equal(t, before.Q[0].DataP, q.Q[0].DataP)
	}
}

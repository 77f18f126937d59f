package Euler2D

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofd/model_problems/Euler2D/isentropic_vortex"
	"github.com/notargets/gofd/types"
)

func shockVortexCase(t *testing.T) (c *ShockVortexController) {
	var (
		ext = BoundaryCondition{Type: types.BC_Extrapolated}
		ref = BoundaryCondition{Type: types.BC_Reflective}
		per = BoundaryCondition{Type: types.BC_Periodic}
		cfg = DefaultSimulationConfig()
	)
	g, err := NewGrid(40, 20, 4., 2., -2., -1.)
	require.NoError(t, err)
	convergeBC, err := NewBoundarySpec(ext, ext, ref, ref)
	require.NoError(t, err)
	runBC, err := NewBoundarySpec(ext, ext, per, per)
	require.NoError(t, err)
	cfg.Cx, cfg.Cy = 0.3, 0.3
	cfg.MaxSteps = 10
	params := ShockVortexParams{
		Shock:         StationaryShockParams{Mach: 1.2, ShockX: 0, Rho: 1, P: 1 / cfg.Gamma},
		Vortex:        isentropic_vortex.NewIVortex(1, -1, 0, cfg.Gamma, 0),
		ConvergeSteps: 30,
		ConvergeTol:   1.e-12,
	}
	c, err = NewShockVortexController(g, cfg, params, convergeBC, runBC)
	require.NoError(t, err)
	c.Log, _ = test.NewNullLogger()
	return
}

func TestShockVortexController(t *testing.T) {
	ctx := context.Background()
	{ // Phases in order
		c := shockVortexCase(t)
		assert.Equal(t, PhaseConverging, c.Phase())
		steps, err := c.Converge(ctx)
		require.NoError(t, err)
		assert.True(t, steps > 0 && steps <= 30)
		assert.Equal(t, PhaseConverging, c.Phase())
		rhoBefore := c.State.Q[0].At(10, 10)
		require.NoError(t, c.Inject())
		assert.Equal(t, PhaseInjected, c.Phase())
		assert.NotEqual(t, rhoBefore, c.State.Q[0].At(10, 10))
		tInject := c.Integrator.Time
		var observed int
		c.Observer = func(step int, time, dt float64, q *State) error {
			observed++
			assert.True(t, time > tInject)
			return nil
		}
		sum, err := c.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, sum.Steps)
		assert.Equal(t, 10, observed)
		assert.Equal(t, PhaseFinished, c.Phase())
		assert.Equal(t, steps+10, c.Integrator.Steps)
	}
	{ // Out of order transitions
		c := shockVortexCase(t)
		assert.True(t, errors.Is(c.Inject(), ErrPhase))
		_, err := c.Run(ctx)
		assert.True(t, errors.Is(err, ErrPhase))
		_, err = c.Converge(ctx)
		require.NoError(t, err)
		_, err = c.Converge(ctx)
		assert.True(t, errors.Is(err, ErrPhase))
		_, err = c.Run(ctx)
		assert.True(t, errors.Is(err, ErrPhase))
		require.NoError(t, c.Inject())
		assert.True(t, errors.Is(c.Inject(), ErrPhase))
		_, err = c.Run(ctx)
		require.NoError(t, err)
		_, err = c.Run(ctx)
		assert.True(t, errors.Is(err, ErrPhase))
		_, err = c.Converge(ctx)
		assert.True(t, errors.Is(err, ErrPhase))
	}
	{ // Invalid set ups
		g, err := NewGrid(10, 10, 1., 1.)
		require.NoError(t, err)
		bc, err := NewUniformBoundarySpec(types.BC_Extrapolated)
		require.NoError(t, err)
		cfg := DefaultSimulationConfig()
		cfg.MaxSteps = 1
		params := ShockVortexParams{
			Shock:         StationaryShockParams{Mach: 1.2, ShockX: 0.5, Rho: 1, P: 1},
			ConvergeSteps: 10,
		}
		_, err = NewShockVortexController(g, cfg, params, bc, bc)
		assert.True(t, errors.Is(err, ErrConfiguration))
		params.Vortex = isentropic_vortex.NewIVortex(1, 0.5, 0.5, 1.4)
		params.Shock.Mach = 0.5
		_, err = NewShockVortexController(g, cfg, params, bc, bc)
		assert.True(t, errors.Is(err, ErrConfiguration))
		params.Shock.Mach = 1.2
		_, err = NewShockVortexController(g, cfg, params, bc, nil)
		assert.True(t, errors.Is(err, ErrConfiguration))
		_, err = NewShockVortexController(g, cfg, params, bc, bc)
		assert.NoError(t, err)
	}
}

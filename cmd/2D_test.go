package cmd

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofd/InputParameters"
	"github.com/notargets/gofd/model_problems/Euler2D"
)

func parseInput(t *testing.T, data string) (ip *InputParameters.InputParameters2D) {
	ip = &InputParameters.InputParameters2D{}
	require.NoError(t, ip.Parse([]byte(data)))
	return
}

func TestRun2D(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctx := context.Background()
	{ // Freestream is preserved
		ip := parseInput(t, `
Title: Test Case
InitType: Freestream
CFL: 0.8
Cx: 0.2
Cy: 0.2
MaxIterations: 5
Grid: {Nx: 10, Ny: 8, Lx: 1, Ly: 1}
BCs: {West: periodic, East: periodic, South: extrapolated, North: extrapolated}
Freestream: {Rho: 1, U: 0.5, V: 0.1, P: 0.7}
`)
		res, err := Run2D(ctx, ip, log)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Summary.Steps)
		assert.InDelta(t, 1., res.Totals[0], 1.e-13)
		assert.InDelta(t, 0.5, res.Totals[1], 1.e-13)
		mach := math.Sqrt(0.26 / 0.98)
		assert.InDelta(t, mach, res.Mach[0], 1.e-12)
		assert.InDelta(t, mach, res.Mach[1], 1.e-12)
		assert.Zero(t, res.DensityError)
	}
	{ // Convected vortex tracks the exact solution
		ip := parseInput(t, `
InitType: IVortex
MaxIterations: 5
Grid: {Nx: 20, Ny: 20, Lx: 10, Ly: 10, Y0: -5}
BCs: {West: periodic, East: periodic, South: periodic, North: periodic}
Vortex: {Beta: 5, X0: 5}
`)
		res, err := Run2D(ctx, ip, log)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Summary.Steps)
		assert.Greater(t, res.DensityError, 0.)
		assert.Less(t, res.DensityError, 0.25)
		assert.Less(t, res.Mach[0], res.Mach[1])
	}
	{ // Shock tube on a short run
		ip := parseInput(t, `
InitType: ShockTube
Cx: 0.3
FinalTime: 0.05
Grid: {Nx: 50, Ny: 2, Lx: 1, Ly: 0.04}
BCs: {West: extrapolated, East: extrapolated, South: periodic, North: periodic}
ShockTube:
  DiaphragmX: 0.5
  Left: {Rho: 1, P: 1}
  Right: {Rho: 0.125, P: 0.1}
`)
		res, err := Run2D(ctx, ip, log)
		require.NoError(t, err)
		assert.Equal(t, 0.05, res.Summary.Time)
		// Nothing has reached the ends, so mass is unchanged
		assert.InDelta(t, 0.5625*0.04, res.Totals[0], 1.e-12)
	}
	{ // Shock vortex in two phases
		ip := parseInput(t, `
InitType: ShockVortex
Cx: 0.3
Cy: 0.3
MaxIterations: 5
Grid: {Nx: 40, Ny: 20, Lx: 4, Ly: 2, X0: -2, Y0: -1}
BCs: {West: extrapolated, East: extrapolated, South: periodic, North: periodic}
Shock: {Mach: 1.2}
Vortex: {Beta: 1, X0: -1}
Converge:
  Steps: 10
  BCs: {West: extrapolated, East: extrapolated, South: reflective, North: reflective}
`)
		res, err := Run2D(ctx, ip, log)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Summary.Steps)
	}
	{ // Configuration errors surface before any step
		ip := parseInput(t, `
InitType: Freestream
MaxIterations: 5
Grid: {Nx: 10, Ny: 8, Lx: 1, Ly: 1}
BCs: {West: periodic, East: extrapolated, South: extrapolated, North: extrapolated}
Freestream: {Rho: 1, P: 1}
`)
		_, err := Run2D(ctx, ip, log)
		assert.True(t, errors.Is(err, Euler2D.ErrConfiguration))
		ip.InitType = "Laplace"
		_, err = Run2D(ctx, ip, log)
		assert.True(t, errors.Is(err, Euler2D.ErrConfiguration))
	}
}

func TestProcessInput(t *testing.T) {
	_, err := processInput(&Model2D{})
	assert.Error(t, err)
	file := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(file, []byte(exampleFile), 0644))
	ip, err := processInput(&Model2D{ICFile: file})
	require.NoError(t, err)
	assert.Equal(t, "IVortex", ip.InitType)
	assert.Equal(t, 80, ip.Grid.Nx)
	assert.Equal(t, "periodic", ip.BCs["North"])
}

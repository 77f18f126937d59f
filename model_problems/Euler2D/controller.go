package Euler2D

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gofd/model_problems/Euler2D/isentropic_vortex"
)

type Phase uint8

const (
	PhaseConverging Phase = iota
	PhaseInjected
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	return [4]string{"Converging", "Injected", "Running", "Finished"}[p]
}

type ShockVortexParams struct {
	Shock         StationaryShockParams
	Vortex        *isentropic_vortex.IVortex
	ConvergeSteps int
	ConvergeTol   float64
}

/*
ShockVortexController runs the shock vortex interaction in two phases on one
Integrator and State. A stationary shock is first relaxed with ConvergeBC, then
the vortex is injected and the run continues with RunBC:

	Converging --Converge--> Converging (converged) --Inject--> Injected --Run--> Running --> Finished
*/
type ShockVortexController struct {
	Params     ShockVortexParams
	Integrator *Integrator
	State      *State
	ConvergeBC *BoundarySpec
	RunBC      *BoundarySpec
	Observer   Observer
	Log        logrus.FieldLogger

	phase     Phase
	converged bool // Converge has completed
}

func NewShockVortexController(g *Grid, cfg SimulationConfig, params ShockVortexParams,
	convergeBC, runBC *BoundarySpec) (c *ShockVortexController, err error) {
	var (
		it *Integrator
		q  *State
	)
	switch {
	case params.Vortex == nil:
		err = NewConfigurationError("shockvortex.vortex", "missing vortex")
	case params.ConvergeSteps < 1:
		err = NewConfigurationError("shockvortex.convergeSteps", "must be >= 1, have %d", params.ConvergeSteps)
	case params.ConvergeTol < 0 || badFloat(params.ConvergeTol):
		err = NewConfigurationError("shockvortex.convergeTol", "must be finite and >= 0, have %v", params.ConvergeTol)
	case convergeBC == nil || runBC == nil:
		err = NewConfigurationError("shockvortex.bc", "both converge and run boundary specifications are required")
	}
	if err != nil {
		return
	}
	if err = cfg.validateTermination(); err != nil {
		return
	}
	if it, err = NewIntegrator(g, cfg); err != nil {
		return
	}
	if q, err = InitializeStationaryShock(g, it.Gas, params.Shock); err != nil {
		return
	}
	c = &ShockVortexController{
		Params:     params,
		Integrator: it,
		State:      q,
		ConvergeBC: convergeBC,
		RunBC:      runBC,
		Log:        logrus.StandardLogger(),
	}
	return
}

func (c *ShockVortexController) Phase() Phase {
	return c.phase
}

func (c *ShockVortexController) phaseError(op string, want Phase) error {
	return fmt.Errorf("%w: %s requires phase %s, controller is %s", ErrPhase, op, want, c.phase)
}

// Converge steps until Residual() < ConvergeTol or ConvergeSteps steps are taken.
// Reaching the step limit is logged but is not an error.
func (c *ShockVortexController) Converge(ctx context.Context) (steps int, err error) {
	var (
		it  = c.Integrator
		tol = c.Params.ConvergeTol
	)
	if c.phase != PhaseConverging || c.converged {
		return 0, c.phaseError("Converge", PhaseConverging)
	}
	for steps < c.Params.ConvergeSteps {
		if err = ctx.Err(); err != nil {
			return
		}
		if _, err = it.Step(c.State, c.ConvergeBC); err != nil {
			return
		}
		steps++
		if it.Residual() < tol {
			break
		}
	}
	c.converged = true
	fields := logrus.Fields{"steps": steps, "residual": it.Residual(), "tolerance": tol}
	if it.Residual() < tol {
		c.Log.WithFields(fields).Info("shock converged")
	} else {
		c.Log.WithFields(fields).Warn("shock did not reach convergence tolerance")
	}
	return
}

func (c *ShockVortexController) Inject() (err error) {
	if c.phase != PhaseConverging || !c.converged {
		return c.phaseError("Inject", PhaseConverging)
	}
	if err = InjectVortex(c.State, c.Integrator.Grid, c.Integrator.Gas, c.Params.Vortex); err != nil {
		return
	}
	c.phase = PhaseInjected
	c.Log.WithFields(logrus.Fields{
		"x0": c.Params.Vortex.X0, "y0": c.Params.Vortex.Y0, "beta": c.Params.Vortex.Beta,
	}).Info("vortex injected")
	return
}

// Run continues from the injected state with RunBC. StopTime is measured from the
// time of injection.
func (c *ShockVortexController) Run(ctx context.Context) (sum RunSummary, err error) {
	if c.phase != PhaseInjected {
		return sum, c.phaseError("Run", PhaseInjected)
	}
	c.phase = PhaseRunning
	var (
		it   = c.Integrator
		orig = it.Config
	)
	if orig.StopTime > 0 {
		it.Config.StopTime = orig.StopTime + it.Time
	}
	s := &Solver{
		Integrator: it,
		State:      c.State,
		BC:         c.RunBC,
		Observer:   c.Observer,
		Log:        c.Log,
	}
	sum, err = s.Run(ctx)
	it.Config = orig
	if err == nil {
		c.phase = PhaseFinished
	}
	return
}

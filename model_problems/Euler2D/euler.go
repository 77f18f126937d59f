package Euler2D

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gofd/utils"
)

// Observer is called after every completed step. A non nil error stops the run.
type Observer func(step int, time, dt float64, q *State) error

type RunSummary struct {
	Steps   int
	Time    float64
	Elapsed time.Duration
}

func (rs RunSummary) String() string {
	return fmt.Sprintf("%d steps to time %8.5f in %v", rs.Steps, rs.Time, rs.Elapsed)
}

// Solver runs an Integrator on one State until MaxSteps or StopTime is reached.
type Solver struct {
	Integrator *Integrator
	State      *State
	BC         *BoundarySpec
	Observer   Observer
	Log        logrus.FieldLogger
}

func NewSolver(g *Grid, cfg SimulationConfig, q *State, bc *BoundarySpec) (s *Solver, err error) {
	var (
		it *Integrator
	)
	if err = cfg.validateTermination(); err != nil {
		return
	}
	if it, err = NewIntegrator(g, cfg); err != nil {
		return
	}
	if q == nil {
		err = NewConfigurationError("state", "missing initial state")
		return
	}
	if err = q.CheckShape(g); err != nil {
		return
	}
	if bc == nil {
		err = NewConfigurationError("bc", "missing boundary specification")
		return
	}
	s = &Solver{
		Integrator: it,
		State:      q,
		BC:         bc,
		Log:        logrus.StandardLogger(),
	}
	return
}

func (s *Solver) CheckIfFinished(Time, FinalTime float64, steps int) (finished bool) {
	var (
		cfg = s.Integrator.Config
	)
	if (FinalTime > 0 && Time >= FinalTime) || (cfg.MaxSteps > 0 && steps >= cfg.MaxSteps) {
		finished = true
	}
	return
}

// Run steps until finished. The context is checked between steps only.
func (s *Solver) Run(ctx context.Context) (sum RunSummary, err error) {
	var (
		it        = s.Integrator
		cfg       = it.Config
		g         = it.Grid
		start     = time.Now()
		tEnd      = cfg.StopTime
		dt        float64
		steps     int
		finished  bool
		logFields = func() logrus.Fields {
			return logrus.Fields{"step": it.Steps, "time": it.Time, "dt": dt, "residual": it.Residual()}
		}
	)
	if tEnd == 0 {
		tEnd = math.Inf(1)
	}
	finished = cfg.StopTime > 0 && it.Time >= cfg.StopTime
	s.PrintInitialization()
	defer func() {
		sum = RunSummary{Steps: steps, Time: it.Time, Elapsed: time.Since(start)}
	}()
	for !finished {
		if err = ctx.Err(); err != nil {
			s.Log.WithFields(logFields()).Warn("run cancelled")
			return
		}
		if dt, err = it.StepTo(s.State, s.BC, tEnd); err != nil {
			s.Log.WithFields(logFields()).WithError(err).Error("step failed")
			return
		}
		steps++
		if s.Observer != nil {
			if err = s.Observer(it.Steps, it.Time, dt, s.State); err != nil {
				return
			}
		}
		finished = s.CheckIfFinished(it.Time, cfg.StopTime, steps)
		if cfg.LogFrequency > 0 && (steps%cfg.LogFrequency == 0 || finished) {
			s.Log.WithFields(logFields()).Info("progress")
		}
	}
	s.PrintFinal(time.Since(start), steps, g)
	return
}

func (s *Solver) PrintInitialization() {
	var (
		g   = s.Integrator.Grid
		cfg = s.Integrator.Config
	)
	s.Log.WithFields(logrus.Fields{
		"grid": fmt.Sprintf("%dx%d", g.Nx, g.Ny),
		"dx":   g.Dx,
		"dy":   g.Dy,
		"bc":   s.BC.String(),
	}).Infof("solving with %s", cfg)
}

func (s *Solver) PrintFinal(elapsed time.Duration, steps int, g *Grid) {
	if steps == 0 {
		return
	}
	rate := float64(elapsed.Microseconds()) / float64(g.Nx*g.Ny*steps)
	s.Log.WithFields(logrus.Fields{
		"steps":   steps,
		"time":    s.Integrator.Time,
		"elapsed": elapsed,
	}).Infof("rate of execution = %8.5f us/(cell*iteration)", rate)
	s.Log.Debug(utils.GetMemUsage())
}

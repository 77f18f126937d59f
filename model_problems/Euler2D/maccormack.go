package Euler2D

import (
	"math"

	"github.com/notargets/gofd/utils"
)

/*
Integrator advances a State with the MacCormack predictor corrector scheme:

	q*     = q - dt*(forward divergence of F(q)) + D(q)
	q(n+1) = ½(q + q* - dt*(backward divergence of F(q*))) + D(q*)

where D is the artificial viscosity increment. Boundary conditions are applied
after each stage and each stage is checked for non-physical cells.
*/
type Integrator struct {
	Grid   *Grid
	Gas    GasModel
	Config SimulationConfig
	AV     *ArtificialViscosity
	Steps  int
	Time   float64

	qOrig, qPred *State
	flux         *FluxField
	pmAll        *utils.PartitionMap // Over all storage rows
	pmInt        *utils.PartitionMap // Over interior rows, offset by one
	residual     float64
	maxSpeeds    []float64
}

func NewIntegrator(g *Grid, cfg SimulationConfig) (it *Integrator, err error) {
	var (
		gas GasModel
	)
	if g == nil {
		err = NewConfigurationError("grid", "missing grid")
		return
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	if gas, err = NewGasModel(cfg.Gamma); err != nil {
		return
	}
	cfg.ParallelDegree = ParallelDegree(cfg.ParallelDegree, g.Ny)
	it = &Integrator{
		Grid:      g,
		Gas:       gas,
		Config:    cfg,
		AV:        NewArtificialViscosity(g, cfg.Cx, cfg.Cy, cfg.ParallelDegree),
		qOrig:     NewState(g),
		qPred:     NewState(g),
		flux:      NewFluxField(g),
		pmAll:     utils.NewPartitionMap(cfg.ParallelDegree, g.NyT),
		pmInt:     utils.NewPartitionMap(cfg.ParallelDegree, g.Ny),
		maxSpeeds: make([]float64, cfg.ParallelDegree),
	}
	return
}

// Residual is max|rho(n+1) - rho(n)|/dt over the interior for the last step.
func (it *Integrator) Residual() float64 {
	return it.residual
}

// Step advances q by one time step. On failure q holds the state it had on entry.
func (it *Integrator) Step(q *State, bc *BoundarySpec) (dt float64, err error) {
	return it.step(q, bc, math.Inf(1))
}

// StepTo is Step with dt clipped so that Time does not pass tEnd.
func (it *Integrator) StepTo(q *State, bc *BoundarySpec, tEnd float64) (dt float64, err error) {
	return it.step(q, bc, tEnd)
}

func (it *Integrator) step(q *State, bc *BoundarySpec, tEnd float64) (dt float64, err error) {
	var (
		g = it.Grid
	)
	if err = q.CheckShape(g); err != nil {
		return
	}
	if bc == nil {
		err = NewConfigurationError("bc", "missing boundary specification")
		return
	}
	it.qOrig.CopyFrom(q)
	bc.Apply(g, q)

	// Predictor
	if err = it.computeFlux(q); err != nil {
		return 0, it.breakdown(q, err, StagePredictor)
	}
	dt = it.timeStep(q)
	clipped := false
	if it.Time+dt >= tEnd {
		dt, clipped = tEnd-it.Time, true
	}
	if !(dt > 0) {
		return 0, it.breakdown(q, newBreakdown("non-positive time step %v", dt), StagePredictor)
	}
	it.AV.Compute(g, q, it.flux.P, bc)
	it.pmInt.Run(func(np, kMin, kMax int) {
		it.predict(q, dt, kMin+1, kMax+1)
	})
	bc.Apply(g, it.qPred)
	if err = it.validate(it.qPred); err != nil {
		return 0, it.breakdown(q, err, StagePredictor)
	}

	// Corrector
	if err = it.computeFlux(it.qPred); err != nil {
		return 0, it.breakdown(q, err, StageCorrector)
	}
	it.AV.Compute(g, it.qPred, it.flux.P, bc)
	it.pmInt.Run(func(np, kMin, kMax int) {
		it.correct(q, dt, kMin+1, kMax+1)
	})
	bc.Apply(g, q)
	if err = it.validate(q); err != nil {
		return 0, it.breakdown(q, err, StageCorrector)
	}

	it.residual = it.densityChange(q) / dt
	it.Steps++
	if clipped {
		it.Time = tEnd
	} else {
		it.Time += dt
	}
	return
}

func (it *Integrator) computeFlux(q *State) (err error) {
	return it.pmAll.Execute(func(np, kMin, kMax int) error {
		return it.flux.Compute(it.Grid, it.Gas, q, kMin, kMax)
	})
}

func (it *Integrator) validate(q *State) (err error) {
	return it.pmAll.Execute(func(np, kMin, kMax int) error {
		return q.validateRows(it.Grid, it.Gas, kMin, kMax)
	})
}

// timeStep is the fixed DT or CFL*min(Dx,Dy)/max(|u|+c) over the interior, where
// |u| is the velocity magnitude. Requires it.flux.P for q.
func (it *Integrator) timeStep(q *State) (dt float64) {
	var (
		g = it.Grid
	)
	if it.Config.DT > 0 {
		return it.Config.DT
	}
	it.pmInt.Run(func(np, kMin, kMax int) {
		var sMax float64
		for j := kMin + 1; j < kMax+1; j++ {
			for i := 1; i <= g.Nx; i++ {
				ind := g.Index(i, j)
				rho := q.Q[0].DataP[ind]
				u, v := q.Q[1].DataP[ind]/rho, q.Q[2].DataP[ind]/rho
				s := math.Sqrt(u*u+v*v) + it.Gas.SoundSpeed(rho, it.flux.P.DataP[ind])
				sMax = math.Max(sMax, s)
			}
		}
		it.maxSpeeds[np] = sMax
	})
	var sMax float64
	for _, s := range it.maxSpeeds {
		sMax = math.Max(sMax, s)
	}
	dt = it.Config.CFL * g.MinSpacing() / sMax
	return
}

func (it *Integrator) predict(q *State, dt float64, jMin, jMax int) {
	var (
		g = it.Grid
	)
	for j := jMin; j < jMax; j++ {
		for i := 1; i <= g.Nx; i++ {
			ind := g.Index(i, j)
			for n := 0; n < 4; n++ {
				it.qPred.Q[n].DataP[ind] = q.Q[n].DataP[ind] - dt*it.flux.ForwardDivergence(g, n, i, j) +
					it.AV.D[n].DataP[ind]
			}
		}
	}
}

// correct overwrites the interior of q, which only reads q at the same cell.
func (it *Integrator) correct(q *State, dt float64, jMin, jMax int) {
	var (
		g = it.Grid
	)
	for j := jMin; j < jMax; j++ {
		for i := 1; i <= g.Nx; i++ {
			ind := g.Index(i, j)
			for n := 0; n < 4; n++ {
				q.Q[n].DataP[ind] = 0.5*(q.Q[n].DataP[ind]+it.qPred.Q[n].DataP[ind]-
					dt*it.flux.BackwardDivergence(g, n, i, j)) + it.AV.D[n].DataP[ind]
			}
		}
	}
}

func (it *Integrator) densityChange(q *State) (dRho float64) {
	var (
		g = it.Grid
	)
	for j := 1; j <= g.Ny; j++ {
		for i := 1; i <= g.Nx; i++ {
			ind := g.Index(i, j)
			dRho = math.Max(dRho, math.Abs(q.Q[0].DataP[ind]-it.qOrig.Q[0].DataP[ind]))
		}
	}
	return
}

// breakdown restores q to the start of the step and fills in the error context.
func (it *Integrator) breakdown(q *State, err error, stage Stage) error {
	q.CopyFrom(it.qOrig)
	nb, ok := err.(*NumericalBreakdownError)
	if !ok {
		nb = newBreakdown("%v", err)
	}
	nb.Step = it.Steps + 1
	nb.Time = it.Time
	nb.Stage = stage
	nb.LastGood = it.qOrig.Copy()
	return nb
}
